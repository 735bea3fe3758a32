package codec

import (
	"encoding/binary"
	"errors"
	"fmt"
)

// WordSize is the alignment unit of the stats dump format.
const WordSize = 4

// ErrUnexpectedEndOfData is returned when a read needs more bytes than remain in the buffer.
var ErrUnexpectedEndOfData = errors.New("unexpected end of data")

// Reader is a sequential big-endian cursor over an in-memory buffer.
// The offset only moves forward and never passes the end of the buffer.
type Reader struct {
	buf    []byte
	offset int
}

// NewReader creates a reader positioned at the start of buf
func NewReader(buf []byte) *Reader {
	return &Reader{buf: buf}
}

// Offset returns the number of bytes consumed so far
func (r *Reader) Offset() int {
	return r.offset
}

// Len returns the total size of the underlying buffer
func (r *Reader) Len() int {
	return len(r.buf)
}

// Remaining returns the number of unread bytes
func (r *Reader) Remaining() int {
	return len(r.buf) - r.offset
}

// Done reports whether every byte has been consumed
func (r *Reader) Done() bool {
	return r.offset >= len(r.buf)
}

// next returns the next n bytes and advances past them. On failure the offset is unchanged.
func (r *Reader) next(n int) ([]byte, error) {
	if n < 0 || n > r.Remaining() {
		return nil, fmt.Errorf("%w: need %d bytes at offset %d, %d remaining",
			ErrUnexpectedEndOfData, n, r.offset, r.Remaining())
	}
	b := r.buf[r.offset : r.offset+n]
	r.offset += n
	return b, nil
}

// Bytes consumes n bytes and returns them. The returned slice aliases the buffer.
func (r *Reader) Bytes(n int) ([]byte, error) {
	return r.next(n)
}

// Skip discards n bytes
func (r *Reader) Skip(n int) error {
	_, err := r.next(n)
	return err
}

// Int16 consumes a big-endian signed 16-bit integer
func (r *Reader) Int16() (int16, error) {
	b, err := r.next(2)
	if err != nil {
		return 0, err
	}
	return int16(binary.BigEndian.Uint16(b)), nil
}

// Uint32 consumes a big-endian unsigned 32-bit integer
func (r *Reader) Uint32() (uint32, error) {
	b, err := r.next(WordSize)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint32(b), nil
}

// Int32 consumes a big-endian signed 32-bit integer
func (r *Reader) Int32() (int32, error) {
	v, err := r.Uint32()
	return int32(v), err
}

// Garbage consumes one 32-bit word that carries no meaning for the decoder.
func (r *Reader) Garbage() error {
	return r.Skip(WordSize)
}

// Tag consumes a 4-byte ASCII record identifier
func (r *Reader) Tag() (string, error) {
	b, err := r.next(WordSize)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
