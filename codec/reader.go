package codec

import "fmt"

// sliceByteReader reads an encoded stream from a fixed position with bounds checks.
type sliceByteReader struct {
	data []byte // The encoded stream.
	pos  int    // Offset of the next byte to read.
}

func (r *sliceByteReader) eof(n int) error {
	return fmt.Errorf("%w: offset=%d need=%d size=%d", ErrStreamBounds, r.pos, n, len(r.data))
}

// PeekByte returns the next byte without consuming it.
func (r *sliceByteReader) PeekByte() (byte, error) {
	if r.pos < 0 || r.pos >= len(r.data) {
		return 0, r.eof(1)
	}
	return r.data[r.pos], nil
}

// ReadByte reads a byte from the slice.
func (r *sliceByteReader) ReadByte() (byte, error) {
	b, err := r.PeekByte()
	if err != nil {
		return 0, err
	}
	r.pos++
	return b, nil
}

// ReadSlice returns the next n bytes, aliasing the stream.
func (r *sliceByteReader) ReadSlice(n int) ([]byte, error) {
	if r.pos < 0 || r.pos+n > len(r.data) {
		return nil, r.eof(n)
	}
	s := r.data[r.pos : r.pos+n]
	r.pos += n
	return s, nil
}

// ReadWord reads a little-endian 16-bit value.
func (r *sliceByteReader) ReadWord() (uint16, error) {
	s, err := r.ReadSlice(2)
	if err != nil {
		return 0, err
	}
	return uint16(s[0]) | uint16(s[1])<<8, nil
}
