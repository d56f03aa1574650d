package codec

import (
	"encoding/binary"
	"fmt"
)

// Reader is responsible for reading little-endian fixed layout data.
type Reader struct {
	index int
	data  []byte
}

// NewReader returns reader with the data given.
func NewReader(data []byte) *Reader {
	return &Reader{
		data:  data,
		index: 0,
	}
}

// Offset returns number of bytes consumed so far.
func (r *Reader) Offset() int { return r.index }

// Remaining returns number of bytes not consumed yet.
func (r *Reader) Remaining() int { return len(r.data) - r.index }

// Peek returns next size bytes without consuming them.
func (r *Reader) Peek(size int) ([]byte, error) {
	if err := r.require(size); err != nil {
		return nil, err
	}
	return r.data[r.index : r.index+size], nil
}

// PeekAt returns size bytes at offset from the current position without consuming them.
func (r *Reader) PeekAt(offset, size int) ([]byte, error) {
	if offset < 0 || size < 0 || r.Remaining() < offset+size {
		return nil, fmt.Errorf("%w: need %d bytes at %d but %d remain", ErrOutOfRange, size, offset, r.Remaining())
	}
	start := r.index + offset
	return r.data[start : start+size], nil
}

// Sub consumes size bytes and returns a reader limited to them.
func (r *Reader) Sub(size int) (*Reader, error) {
	data, err := r.ReadBytes(size)
	if err != nil {
		return nil, err
	}
	return NewReader(data), nil
}

// Skip consumes size bytes.
func (r *Reader) Skip(size int) error {
	if err := r.require(size); err != nil {
		return err
	}
	r.index += size
	return nil
}

// ReadBytes reads size bytes. Returned slice is a copy, nil when size is zero.
func (r *Reader) ReadBytes(size int) ([]byte, error) {
	if err := r.require(size); err != nil {
		return nil, err
	}
	if size == 0 {
		return nil, nil
	}
	result := make([]byte, size)
	copy(result, r.data[r.index:r.index+size])
	r.index += size
	return result, nil
}

// ReadFixed fills dst completely.
func (r *Reader) ReadFixed(dst []byte) error {
	if err := r.require(len(dst)); err != nil {
		return err
	}
	copy(dst, r.data[r.index:r.index+len(dst)])
	r.index += len(dst)
	return nil
}

// ReadUInt8 reads a single byte.
func (r *Reader) ReadUInt8() (uint8, error) {
	if err := r.require(1); err != nil {
		return 0, err
	}
	val := r.data[r.index]
	r.index++
	return val, nil
}

// ReadInt8 reads a single signed byte.
func (r *Reader) ReadInt8() (int8, error) {
	val, err := r.ReadUInt8()
	return int8(val), err
}

// ReadUInt16 reads little-endian uint16.
func (r *Reader) ReadUInt16() (uint16, error) {
	if err := r.require(2); err != nil {
		return 0, err
	}
	val := binary.LittleEndian.Uint16(r.data[r.index:])
	r.index += 2
	return val, nil
}

// ReadInt16 reads little-endian int16.
func (r *Reader) ReadInt16() (int16, error) {
	val, err := r.ReadUInt16()
	return int16(val), err
}

// ReadUInt32 reads little-endian uint32.
func (r *Reader) ReadUInt32() (uint32, error) {
	if err := r.require(4); err != nil {
		return 0, err
	}
	val := binary.LittleEndian.Uint32(r.data[r.index:])
	r.index += 4
	return val, nil
}

// ReadUInt64 reads little-endian uint64.
func (r *Reader) ReadUInt64() (uint64, error) {
	if err := r.require(8); err != nil {
		return 0, err
	}
	val := binary.LittleEndian.Uint64(r.data[r.index:])
	r.index += 8
	return val, nil
}

func (r *Reader) require(size int) error {
	if size < 0 || r.Remaining() < size {
		return fmt.Errorf("%w: need %d bytes at offset %d but %d remain", ErrOutOfRange, size, r.index, r.Remaining())
	}
	return nil
}
