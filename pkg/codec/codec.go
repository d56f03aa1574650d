// Package codec implements the little-endian, fixed-layout primitives used by the catapult
// wire format: a bounds-checked Reader, an appending Writer and json friendly byte/number types.
//
// Every multi-byte integer is written in little-endian byte order. Readers never panic on
// short input; they return ErrOutOfRange instead.
package codec

// Encodable is interface for struct which can write itself to a writer.
type Encodable interface {
	EncodeTo(w *Writer)
}

// DecodableReader is interface for struct which can read itself from a reader.
type DecodableReader interface {
	DecodeFromReader(r *Reader) error
}

// Encode returns bytes of the encodable value.
func Encode(val Encodable) []byte {
	w := NewWriter()
	val.EncodeTo(w)
	return w.Result()
}

// Decode reads the value from data and fails if any byte is left unread.
func Decode(data []byte, val DecodableReader) error {
	r := NewReader(data)
	if err := val.DecodeFromReader(r); err != nil {
		return err
	}
	if r.Remaining() != 0 {
		return ErrUnreadBytes
	}
	return nil
}
