package mnlz

import (
	"encoding/binary"
	"fmt"
	"math"
)

// Compress compresses src into a new buffer.
//
// The encoder is greedy and deterministic: at each position it takes the
// longest of the best back-reference and the current run, with runs winning
// ties, so the same input always produces the same compressed bytes. It is
// byte-compatible with the game's own streams but makes no attempt at an
// optimal parse.
func Compress(src []byte) ([]byte, error) {
	if len(src) == 0 {
		return nil, ErrEmptyInput
	}
	if len(src) > MaxVarint {
		return nil, fmt.Errorf("%w: %d bytes", ErrVarintRange, len(src))
	}

	// Pre-allocate: worst case is all literals + group bytes + per-block framing.
	bufCap := len(src) + (len(src)+3)/4 + (len(src)/BlockSize+1)*3 + 8
	out := make([]byte, 0, bufCap)

	out, err := AppendVarint(out, uint32(len(src))) // #nosec G115 -- bounded by MaxVarint above
	if err != nil {
		return nil, err
	}
	numBlocks := (len(src) + BlockSize - 1) / BlockSize
	out, err = AppendVarint(out, uint32(numBlocks-1)) // #nosec G115
	if err != nil {
		return nil, err
	}

	for block := 0; block < numBlocks; block++ {
		blockStart := block * BlockSize
		blockLen := len(src) - blockStart
		if blockLen > BlockSize {
			blockLen = BlockSize
		}

		// Size prefix is backpatched once the block's byte count is known.
		prefixPos := len(out)
		out = append(out, 0, 0)

		offset := 0
		lastSlot := -1
		for offset < blockLen {
			groupPos := len(out)
			out = append(out, 0)
			var groupByte byte

			for slot := 0; slot < 4 && offset < blockLen; slot++ {
				pos := blockStart + offset
				first := src[pos]

				// Longest back-reference, scanning distances high to low.
				// Only a strictly longer match replaces the current best, so
				// the largest distance reaching the best length is kept.
				bestLen := 0
				bestDist := 0
				maxDist := pos
				if maxDist > MaxDistance {
					maxDist = MaxDistance
				}
				for dist := maxDist; dist >= MinDistance; dist-- {
					length := 0
					for length < MaxMatch && length < dist && offset+length < blockLen &&
						src[pos+length] == src[pos-dist+length] {
						length++
					}
					if length > bestLen {
						bestLen = length
						bestDist = dist
					}
				}

				// Longest run of the current byte.
				run := 1
				for offset+run < blockLen && run < MaxRun && src[pos+run] == first {
					run++
				}

				best := bestLen
				if run > best {
					best = run
				}

				// One explicit comparison: a back-reference is taken only when
				// strictly longer than the run; ties go to RLE.
				var cmd byte
				switch {
				case best <= 1:
					cmd = cmdCopy
					out = append(out, first)
				case bestLen > run:
					cmd = cmdLz77
					out = append(out, byte(bestDist), byte(bestLen-MinMatch)|byte((bestDist&0xF00)>>4))
				default:
					cmd = cmdRle
					out = append(out, byte(run-MinRun), first)
				}

				groupByte |= cmd << (slot * 2)
				offset += best
				lastSlot = slot
			}

			out[groupPos] = groupByte
		}

		// A full final group is followed by an explicit EndBlock byte;
		// otherwise the unused slots of the last group already read as zero.
		if lastSlot == 3 {
			out = append(out, 0)
		}

		blockBytes := len(out) - prefixPos - 2
		if blockBytes > math.MaxUint16 {
			return nil, fmt.Errorf("%w: %d bytes", ErrBlockTooLarge, blockBytes)
		}
		binary.LittleEndian.PutUint16(out[prefixPos:], uint16(blockBytes))
	}

	return out, nil
}
