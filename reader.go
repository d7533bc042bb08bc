package mnlz

import "io"

// positionByteReader is the decoder's input cursor: one logical position
// feeds both the strict block-size check and the consumed-bytes results.
type positionByteReader interface {
	io.ByteReader
	position() int64
}

// sliceByteReader reads from a byte slice.
type sliceByteReader struct {
	data []byte // The byte slice to read from.
	pos  int    // The current position in the byte slice.
}

// countingByteReader reads from a byte reader and counts the number of bytes read.
type countingByteReader struct {
	base  io.ByteReader // The byte reader to read from.
	count int64         // The number of bytes read.
}

// ReadByte reads a byte from the slice.
func (r *sliceByteReader) ReadByte() (byte, error) {
	if r.pos >= len(r.data) {
		return 0, io.EOF
	}

	b := r.data[r.pos]
	r.pos++

	return b, nil
}

func (r *sliceByteReader) position() int64 {
	return int64(r.pos)
}

// ReadByte reads a byte from the reader and increments the count.
func (r *countingByteReader) ReadByte() (byte, error) {
	b, err := r.base.ReadByte()
	if err != nil {
		return 0, err
	}

	r.count++

	return b, nil
}

func (r *countingByteReader) position() int64 {
	return r.count
}
