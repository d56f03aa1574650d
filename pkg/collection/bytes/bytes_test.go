package bytes

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestJoin(t *testing.T) {
	assert.Equal(t, []byte{1, 2, 3, 4}, Join([]byte{1, 2}, nil, []byte{3, 4}))
	assert.Equal(t, []byte{}, Join())
}

func TestCopy(t *testing.T) {
	original := []byte{1, 2, 3}
	copied := Copy(original)
	original[0] = 9
	assert.Equal(t, []byte{1, 2, 3}, copied)
}

func TestIsZero(t *testing.T) {
	assert.True(t, IsZero(nil))
	assert.True(t, IsZero(make([]byte, 32)))
	assert.False(t, IsZero([]byte{0, 0, 1}))
}

func TestPaddingSize(t *testing.T) {
	cases := []struct {
		size     int
		expected int
	}{
		{size: 0, expected: 0},
		{size: 1, expected: 7},
		{size: 8, expected: 0},
		{size: 45, expected: 3},
		{size: 129, expected: 7},
	}
	for _, testCase := range cases {
		assert.Equal(t, testCase.expected, PaddingSize(testCase.size, 8), "size %d", testCase.size)
	}
	assert.Equal(t, 0, PaddingSize(13, 0))
}
