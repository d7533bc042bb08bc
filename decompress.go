package mnlz

import (
	"bufio"
	"errors"
	"fmt"
	"io"
)

// Decompress decompresses a whole stream from the beginning of src into a new
// buffer. Trailing bytes after the last block (archive padding) are ignored.
// In strict mode the declared block sizes and the declared uncompressed size
// are checked against the actual ones.
func Decompress(src []byte, strict bool) ([]byte, error) {
	out, _, err := DecompressChunk(src, strict)

	return out, err
}

// DecompressChunk decompresses one stream from the beginning of src and also
// returns the number of input bytes consumed, so consecutive chunks can be
// carved out of one archive buffer.
func DecompressChunk(src []byte, strict bool) ([]byte, int, error) {
	reader := &sliceByteReader{data: src}
	out, err := decompress(reader, strict)
	if err != nil {
		return nil, reader.pos, err
	}

	return out, reader.pos, nil
}

// DecompressFromReader decompresses one stream from r and returns consumed bytes.
// Reading stops exactly after the last block, leaving r positioned for the
// next chunk.
func DecompressFromReader(r io.Reader, strict bool) ([]byte, int64, error) {
	if r == nil {
		return nil, 0, ErrNilReader
	}

	var byteReader io.ByteReader
	if existing, ok := r.(io.ByteReader); ok {
		byteReader = existing
	} else {
		byteReader = bufio.NewReader(r)
	}

	countingReader := &countingByteReader{base: byteReader}
	out, err := decompress(countingReader, strict)
	if err != nil {
		return nil, countingReader.count, err
	}

	return out, countingReader.count, nil
}

// decompress decodes one stream from r.
func decompress(r positionByteReader, strict bool) ([]byte, error) {
	// Map EOF to ErrUnexpectedEOF: inside a stream it always means truncation.
	// Other reader errors propagate verbatim.
	readByte := func() (byte, error) {
		b, err := r.ReadByte()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return 0, ErrUnexpectedEOF
			}

			return 0, err
		}

		return b, nil
	}

	uncompressedSize, err := ReadVarint(r)
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrUnexpectedEOF
		}

		return nil, err
	}
	rawBlocks, err := ReadVarint(r)
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrUnexpectedEOF
		}

		return nil, err
	}
	numBlocks := int(rawBlocks) + 1

	// Size comes from untrusted input: cap the speculative allocation, append
	// grows the buffer if the stream really is that large.
	allocHint := int(uncompressedSize)
	if allocHint > 1<<20 {
		allocHint = 1 << 20
	}
	out := make([]byte, 0, allocHint)

	for block := 0; block < numBlocks; block++ {
		lo, err := readByte()
		if err != nil {
			return nil, err
		}
		hi, err := readByte()
		if err != nil {
			return nil, err
		}
		blockSize := int64(lo) | int64(hi)<<8
		blockStart := r.position()

	groups:
		for group := 0; group < MaxGroups; group++ {
			groupByte, err := readByte()
			if err != nil {
				return nil, err
			}

			for slot := 0; slot < 4; slot++ {
				switch groupByte & commandMask {
				case cmdEndBlock:
					break groups

				case cmdCopy:
					b, err := readByte()
					if err != nil {
						return nil, err
					}
					out = append(out, b)

				case cmdLz77:
					b0, err := readByte()
					if err != nil {
						return nil, err
					}
					b1, err := readByte()
					if err != nil {
						return nil, err
					}
					distance := int(b0) | int(b1&0xF0)<<4
					length := int(b1&0x0F) + MinMatch
					if distance < MinDistance || distance > len(out) {
						return nil, fmt.Errorf("%w: distance=%d produced=%d", ErrInvalidBackRef, distance, len(out))
					}
					// The read position advances together with the write
					// position, so a distance shorter than the length repeats
					// the bytes written by this same command.
					for i := 0; i < length; i++ {
						out = append(out, out[len(out)-distance])
					}

				case cmdRle:
					count, err := readByte()
					if err != nil {
						return nil, err
					}
					value, err := readByte()
					if err != nil {
						return nil, err
					}
					for i := 0; i < int(count)+MinRun; i++ {
						out = append(out, value)
					}

				default:
					// Unreachable given the mask; kept as a structural check.
					return nil, fmt.Errorf("%w: %d", ErrInvalidCommand, groupByte&commandMask)
				}

				groupByte >>= 2
			}
		}

		if strict {
			actual := r.position() - blockStart
			if actual != blockSize {
				return nil, fmt.Errorf("%w: declared=%d actual=%d", ErrBlockSizeMismatch, blockSize, actual)
			}
		}
	}

	if strict && len(out) != int(uncompressedSize) {
		return nil, fmt.Errorf("%w: declared=%d actual=%d", ErrSizeMismatch, uncompressedSize, len(out))
	}

	return out, nil
}
