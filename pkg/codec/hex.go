package codec

import (
	"encoding/hex"
	"encoding/json"
	"strings"
)

// Hex is byte slice represented as hex string in json.
type Hex []byte

// HexToBytes decodes upper or lower case hex string.
func HexToBytes(str string) ([]byte, error) {
	return hex.DecodeString(strings.TrimPrefix(str, "0x"))
}

func (h *Hex) UnmarshalJSON(b []byte) error {
	str := ""
	if err := json.Unmarshal(b, &str); err != nil {
		return err
	}
	res, err := HexToBytes(str)
	if err != nil {
		return err
	}
	*h = res
	return nil
}

func (h Hex) String() string {
	return strings.ToUpper(hex.EncodeToString(h))
}

func (h Hex) MarshalJSON() ([]byte, error) {
	return json.Marshal(h.String())
}
