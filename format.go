package mnlz

// Stream format constants.
const (
	BlockSize   = 512       // Uncompressed bytes covered by one block.
	MaxGroups   = 256       // Command groups per block (4 commands each).
	MinDistance = 2         // Smallest back-reference distance.
	MaxDistance = 0xFFF     // Largest back-reference distance (12 bits).
	MinMatch    = 2         // Smallest back-reference length.
	MaxMatch    = 17        // Largest back-reference length (nibble+2).
	MinRun      = 2         // Smallest RLE count (encoded as count-2).
	MaxRun      = 257       // Largest RLE count.
	MaxVarint   = 1<<26 - 1 // Largest value the header varint can carry (3 extra bytes).
)

// 2-bit command codes, packed 4 per group byte, least-significant pair first.
const (
	cmdEndBlock byte = 0 // Stop the current block.
	cmdCopy     byte = 1 // One operand byte: the literal.
	cmdLz77     byte = 2 // Two operand bytes: distance low 8; distance high 4 | length-2 nibble.
	cmdRle      byte = 3 // Two operand bytes: count-2, value.

	commandMask byte = 0x03
)
