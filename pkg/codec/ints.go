package codec

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// UInt64Str type for marshal and unmarshal uint64 json string.
type UInt64Str uint64

func (i UInt64Str) MarshalJSON() ([]byte, error) {
	return json.Marshal(strconv.FormatUint(uint64(i), 10))
}

func (i *UInt64Str) UnmarshalJSON(b []byte) error {
	// Try string first
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		value, err := strconv.ParseUint(s, 10, 64)
		if err != nil {
			return err
		}
		*i = UInt64Str(value)
		return nil
	}

	// Fallback to number
	return json.Unmarshal(b, (*uint64)(i))
}

// UInt64DTO is uint64 represented as [lower, higher] 32 bit words.
// The gateway uses this form so that values survive 53 bit json numbers.
type UInt64DTO [2]uint32

// NewUInt64DTO splits value into lower and higher words.
func NewUInt64DTO(value uint64) UInt64DTO {
	return UInt64DTO{uint32(value), uint32(value >> 32)}
}

// UInt64 joins the words back.
func (d UInt64DTO) UInt64() uint64 {
	return uint64(d[1])<<32 | uint64(d[0])
}

func (d UInt64DTO) String() string {
	return fmt.Sprintf("[%d,%d]", d[0], d[1])
}
