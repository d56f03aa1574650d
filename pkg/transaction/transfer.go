package transaction

import (
	"github.com/nemtech/nem2-sdk-go/pkg/codec"
)

// TransferBody moves mosaics and an optional message to a recipient.
// A nil Message encodes as a zero message size.
type TransferBody struct {
	Recipient UnresolvedAddress `json:"recipientAddress"`
	Mosaics   []Mosaic          `json:"mosaics"`
	Message   *Message          `json:"message,omitempty"`
}

func (b *TransferBody) Type() Type { return TypeTransfer }

func (b *TransferBody) ResolveAliases(r AliasResolver) (Body, error) {
	recipient, err := r.ResolveAddress(b.Recipient)
	if err != nil {
		return nil, err
	}
	resolved := &TransferBody{Recipient: recipient}
	if b.Message != nil {
		resolved.Message = &Message{Type: b.Message.Type, Payload: copyBytes(b.Message.Payload)}
	}
	if b.Mosaics != nil {
		resolved.Mosaics = make([]Mosaic, len(b.Mosaics))
		for i, mosaic := range b.Mosaics {
			if resolved.Mosaics[i], err = resolveMosaic(r, mosaic); err != nil {
				return nil, err
			}
		}
	}
	return resolved, nil
}

func (b *TransferBody) encode(w *codec.Writer) error {
	w.WriteBytes(b.Recipient[:])
	messageSize := 0
	if b.Message != nil {
		messageSize = len(b.Message.Payload) + 1
	}
	if err := writeUInt16Count(w, "message", messageSize); err != nil {
		return err
	}
	if err := writeUInt8Count(w, "mosaics", len(b.Mosaics)); err != nil {
		return err
	}
	if b.Message != nil {
		w.WriteUInt8(uint8(b.Message.Type))
		w.WriteBytes(b.Message.Payload)
	}
	for _, mosaic := range b.Mosaics {
		writeMosaic(w, mosaic)
	}
	return nil
}

func (b *TransferBody) decode(r *codec.Reader) error {
	var err error
	if b.Recipient, err = readUnresolvedAddress(r); err != nil {
		return err
	}
	messageSize, err := r.ReadUInt16()
	if err != nil {
		return err
	}
	mosaicsCount, err := r.ReadUInt8()
	if err != nil {
		return err
	}
	if messageSize > 0 {
		messageType, err := r.ReadUInt8()
		if err != nil {
			return err
		}
		b.Message = &Message{Type: MessageType(messageType)}
		if b.Message.Payload, err = r.ReadBytes(int(messageSize) - 1); err != nil {
			return err
		}
	}
	if mosaicsCount > 0 {
		b.Mosaics = make([]Mosaic, mosaicsCount)
		for i := range b.Mosaics {
			if b.Mosaics[i], err = readMosaic(r); err != nil {
				return err
			}
		}
	}
	return nil
}

func copyBytes(val []byte) []byte {
	if val == nil {
		return nil
	}
	res := make([]byte, len(val))
	copy(res, val)
	return res
}
