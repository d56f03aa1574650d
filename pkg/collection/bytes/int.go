package bytes

import "encoding/binary"

// FromUint32 converts uint32 to big endian byte slice with length 4.
// Big endian keeps numeric order when used as a key prefix.
func FromUint32(val uint32) []byte {
	result := make([]byte, 4)
	binary.BigEndian.PutUint32(result, val)
	return result
}

// FromUint64 converts uint64 to big endian byte slice with length 8.
func FromUint64(val uint64) []byte {
	result := make([]byte, 8)
	binary.BigEndian.PutUint64(result, val)
	return result
}

// ToUint32 converts big endian byte slice to uint32. bytes[4:] will be ignored.
func ToUint32(val []byte) uint32 {
	return binary.BigEndian.Uint32(val)
}

// ToUint64 converts big endian byte slice to uint64. bytes[8:] will be ignored.
func ToUint64(val []byte) uint64 {
	return binary.BigEndian.Uint64(val)
}
