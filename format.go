package xpress

// Huffman+LZ77 format constants.
const (
	HeaderSize  = 256 // Packed code-length table: two 4-bit lengths per byte.
	NumSymbols  = 512 // 256 literals + 256 match symbols.
	MaxCodeLen  = 15  // Longest codeword; also the lookup window width.
	MinMatch    = 3   // Match length = low nibble + MinMatch -> 3..18.
	MaxMatch    = 18  // Maximum back-reference length.

	maxOffsetBits = 15 // Highest offset bit count carried by a match symbol.
	tableSize     = 1 << MaxCodeLen
)
