package mnlz

import (
	"fmt"
	"io"
)

// ReadVarint reads one header varint from r.
// The first byte's top 2 bits hold the extra-byte count (0..3), its low 6 bits
// the least-significant chunk; extra byte i contributes its 8 bits at shift
// 6*(i+1). Chunks overlap, so non-canonical encodings still decode.
// Fails only by propagating the reader's error.
func ReadVarint(r io.ByteReader) (uint32, error) {
	b, err := r.ReadByte()
	if err != nil {
		return 0, err
	}

	extra := int(b >> 6)
	value := uint32(b & 0x3F)
	for i := 0; i < extra; i++ {
		b, err = r.ReadByte()
		if err != nil {
			return 0, err
		}

		value |= uint32(b) << (6 * (i + 1))
	}

	return value, nil
}

// AppendVarint appends the varint encoding of value to dst.
// Values above MaxVarint would need a 4th extra byte and are out of range
// for this encoding: AppendVarint returns ErrVarintRange.
func AppendVarint(dst []byte, value uint32) ([]byte, error) {
	if value > MaxVarint {
		return dst, fmt.Errorf("%w: %d", ErrVarintRange, value)
	}

	first := len(dst)
	dst = append(dst, byte(value&0x3F))
	value >>= 6
	for value > 0xFF {
		dst = append(dst, byte(value))
		dst[first] += 1 << 6
		value >>= 6
	}
	if value > 0 {
		dst = append(dst, byte(value))
		dst[first] += 1 << 6
	}

	return dst, nil
}
