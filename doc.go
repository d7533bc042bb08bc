/*
Package mnlz implements the block-based LZ77+RLE compression used by the
game's asset archives.

Stream: varint(uncompressed size) ++ varint(block count - 1) ++ blocks.
Varint: 6 low bits per byte, top 2 bits of the first byte = extra byte count.
Block: 16-bit LE size prefix (bytes after the prefix), covering up to 512
uncompressed bytes, then command groups. A group byte packs four 2-bit
commands, least-significant pair first: 0 = end of block, 1 = literal
(1 operand byte), 2 = back reference (2 operand bytes: 12-bit distance 2..4095,
length 2..17; may overlap its own output), 3 = run (2 operand bytes: count-2
for 2..257 repeats, value). A block whose last command fills the 4th slot is
followed by one explicit zero end-of-block byte.

The encoder is greedy and reproduces the game's reference streams byte for
byte: at each position the longest of the best back reference and the current
run wins, ties going to the run.

Use Compress(src) to produce a stream.
Use Decompress(src, strict) to decode a stream, ignoring trailing padding.
Use DecompressChunk(src, strict) to also get the number of consumed bytes.
Use DecompressFromReader(r, strict) to decode one stream from a reader and
leave it positioned after the stream.
Strict mode verifies the declared block sizes and uncompressed size; archive
consumers usually decode leniently because chunks carry alignment padding.

# Examples

Round-trip a buffer:

	enc, err := mnlz.Compress(data)
	if err != nil {
		return err
	}
	dec, err := mnlz.Decompress(enc, true)
	if err != nil {
		return err
	}
	// dec equals data

Carve consecutive compressed chunks out of one archive buffer:

	for len(buf) > 0 {
		dec, consumed, err := mnlz.DecompressChunk(buf, false)
		if err != nil {
			return err
		}
		handle(dec)
		buf = buf[consumed:]
	}

Decode one stream from a file without reading it fully:

	dec, _, err := mnlz.DecompressFromReader(f, false)
	if err != nil {
		return err
	}
*/
package mnlz
