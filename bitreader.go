package xpress

import "encoding/binary"

// bitReader is an MSB-first bit window over 16-bit little-endian input units.
// The oldest unconsumed bit is bit 31 of acc.
type bitReader struct {
	src []byte // The payload after the code length table.
	pos int    // Next unread byte in src.
	acc uint32 // Left-aligned bit window.
	n   uint   // Valid bits in acc, never above 32.
}

func newBitReader(src []byte) *bitReader {
	br := &bitReader{src: src}
	br.refill()

	return br
}

// refill appends 16-bit units below the valid bits while at most 16 bits are
// buffered and at least two bytes remain.
func (br *bitReader) refill() {
	for br.n <= 16 && br.pos+2 <= len(br.src) {
		unit := uint32(binary.LittleEndian.Uint16(br.src[br.pos:]))
		br.acc |= unit << (16 - br.n)
		br.n += 16
		br.pos += 2
	}
}

// peek returns the top k bits without consuming them, 1 <= k <= 16.
func (br *bitReader) peek(k uint) uint32 {
	return br.acc >> (32 - k)
}

// consume drops k bits from the window. k must not exceed br.n.
func (br *bitReader) consume(k uint) {
	br.acc <<= k
	br.n -= k
}

// remaining reports whether another 16-bit unit can still be loaded.
func (br *bitReader) remaining() bool {
	return br.pos+2 <= len(br.src)
}

// exhausted reports that no buffered bits are left and the payload is spent.
func (br *bitReader) exhausted() bool {
	return br.n == 0 && !br.remaining()
}

// offset returns the number of payload bytes loaded into the window so far.
func (br *bitReader) offset() int {
	return br.pos
}
