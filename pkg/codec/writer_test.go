package codec

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWriter(t *testing.T) {
	writer := NewWriter()
	writer.WriteUInt8(1)
	writer.WriteUInt16(0x1234)
	writer.WriteUInt32(0x78800000)
	writer.WriteUInt64(0x7766554433221112)
	writer.WriteInt8(-1)
	writer.WriteInt16(-2)
	assert.Equal(t, "013412000080781211223344556677fffeff", hex.EncodeToString(writer.Result()))
}

func TestWriterZeros(t *testing.T) {
	writer := NewWriterSize(8)
	writer.WriteBytes([]byte{1, 2})
	writer.WriteZeros(2)
	writer.WriteBytes([]byte{3, 4})
	writer.WriteZeros(2)
	assert.Equal(t, []byte{1, 2, 0, 0, 3, 4, 0, 0}, writer.Result())
	assert.Equal(t, 8, writer.Len())
}

func TestPutUInt32At(t *testing.T) {
	writer := NewWriter()
	writer.WriteUInt32(0)
	writer.WriteBytes([]byte{9, 9})
	writer.PutUInt32At(0, uint32(writer.Len()))
	assert.Equal(t, []byte{6, 0, 0, 0, 9, 9}, writer.Result())
}

func TestRoundTripThroughReader(t *testing.T) {
	writer := NewWriter()
	writer.WriteUInt64(1<<63 | 42)
	writer.WriteInt16(-300)
	reader := NewReader(writer.Result())
	u64, err := reader.ReadUInt64()
	assert.NoError(t, err)
	assert.Equal(t, uint64(1<<63|42), u64)
	i16, err := reader.ReadInt16()
	assert.NoError(t, err)
	assert.Equal(t, int16(-300), i16)
}
