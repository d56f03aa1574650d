package transaction

import (
	"encoding/json"

	"golang.org/x/text/unicode/norm"

	"github.com/nemtech/nem2-sdk-go/pkg/codec"
)

// MessageType is the first byte of an encoded message.
type MessageType uint8

const (
	MessageTypePlain     MessageType = 0x00
	MessageTypeEncrypted MessageType = 0x01
	MessageTypePersonal  MessageType = 0xFE
)

// Message is the payload attached to a transfer.
type Message struct {
	Type    MessageType
	Payload []byte
}

// NewPlainMessage returns plain message with NFC normalized text.
func NewPlainMessage(text string) Message {
	if text == "" {
		return Message{Type: MessageTypePlain}
	}
	return Message{
		Type:    MessageTypePlain,
		Payload: []byte(norm.NFC.String(text)),
	}
}

// Text returns the payload as string.
func (m Message) Text() string {
	return string(m.Payload)
}

func (m Message) MarshalJSON() ([]byte, error) {
	payload := interface{}(codec.Hex(m.Payload))
	if m.Type == MessageTypePlain {
		payload = m.Text()
	}
	return json.Marshal(struct {
		Type    MessageType `json:"type"`
		Payload interface{} `json:"payload"`
	}{
		Type:    m.Type,
		Payload: payload,
	})
}
