// Package bytes provides utility functions for byte slices.
package bytes

import "bytes"

// Equal reports whether a and b are the same length and contain the same bytes.
//
// Equal is alias for the function from standard library "bytes".
func Equal(a, b []byte) bool {
	return bytes.Equal(a, b)
}

// Compare returns an integer comparing two byte slices lexicographically.
//
// Compare is alias for the function from standard library "bytes".
func Compare(a, b []byte) int {
	return bytes.Compare(a, b)
}

// Copy is utility function to copy the bytes to a new slice.
func Copy(val []byte) []byte {
	dest := make([]byte, len(val))
	copy(dest, val)
	return dest
}

// Join joins multiple different bytes.
func Join(s ...[]byte) []byte {
	n := 0
	for _, v := range s {
		n += len(v)
	}

	b, i := make([]byte, n), 0
	for _, v := range s {
		i += copy(b[i:], v)
	}
	return b
}

// IsZero returns true if every byte is zero. Empty slice is zero.
func IsZero(val []byte) bool {
	for _, b := range val {
		if b != 0 {
			return false
		}
	}
	return true
}

// PaddingSize returns number of bytes needed to extend size to a multiple of alignment.
func PaddingSize(size, alignment int) int {
	if alignment <= 0 {
		return 0
	}
	rem := size % alignment
	if rem == 0 {
		return 0
	}
	return alignment - rem
}

// NewReader returns a new Reader reading from b.
//
// NewReader is alias for the function from standard library "bytes".
func NewReader(b []byte) *bytes.Reader {
	return bytes.NewReader(b)
}
