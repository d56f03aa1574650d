package codec

import "encoding/binary"

// Writer is responsible for writing little-endian fixed layout data.
type Writer struct {
	result []byte
}

// NewWriter returns a new instances of a writer.
func NewWriter() *Writer {
	return &Writer{
		result: []byte{},
	}
}

// NewWriterSize returns a writer with preallocated capacity.
func NewWriterSize(capacity int) *Writer {
	return &Writer{
		result: make([]byte, 0, capacity),
	}
}

// Len returns number of bytes written.
func (w *Writer) Len() int { return len(w.result) }

// Result returns the written bytes.
func (w *Writer) Result() []byte { return w.result }

// WriteBytes appends data as is.
func (w *Writer) WriteBytes(data []byte) {
	w.result = append(w.result, data...)
}

// WriteZeros appends size zero bytes.
func (w *Writer) WriteZeros(size int) {
	for i := 0; i < size; i++ {
		w.result = append(w.result, 0)
	}
}

// WriteUInt8 writes a single byte.
func (w *Writer) WriteUInt8(data uint8) {
	w.result = append(w.result, data)
}

// WriteInt8 writes a single signed byte.
func (w *Writer) WriteInt8(data int8) {
	w.WriteUInt8(uint8(data))
}

// WriteUInt16 writes little-endian uint16.
func (w *Writer) WriteUInt16(data uint16) {
	w.result = binary.LittleEndian.AppendUint16(w.result, data)
}

// WriteInt16 writes little-endian int16.
func (w *Writer) WriteInt16(data int16) {
	w.WriteUInt16(uint16(data))
}

// WriteUInt32 writes little-endian uint32.
func (w *Writer) WriteUInt32(data uint32) {
	w.result = binary.LittleEndian.AppendUint32(w.result, data)
}

// WriteUInt64 writes little-endian uint64.
func (w *Writer) WriteUInt64(data uint64) {
	w.result = binary.LittleEndian.AppendUint64(w.result, data)
}

// PutUInt32At overwrites 4 bytes at offset. Used to back-fill size prefixes.
func (w *Writer) PutUInt32At(offset int, data uint32) {
	binary.LittleEndian.PutUint32(w.result[offset:offset+4], data)
}
