package xpress

import (
	"bytes"
	"math/bits"
	"sort"
	"testing"

	"github.com/icza/bitio"
	"github.com/stretchr/testify/require"
)

// testEncoder writes symbol streams for decoder tests. It is not a compressor:
// callers choose literals and matches explicitly, or use compressGreedy.
type testEncoder struct {
	t       testing.TB
	lengths [NumSymbols]uint8
	codes   [NumSymbols]uint32
	buf     bytes.Buffer
	w       *bitio.Writer
}

func newTestEncoder(t testing.TB, lengths [NumSymbols]uint8) *testEncoder {
	t.Helper()

	e := &testEncoder{t: t, lengths: lengths}
	e.w = bitio.NewWriter(&e.buf)

	var count [MaxCodeLen + 1]int
	for _, l := range lengths {
		count[l]++
	}
	count[0] = 0

	var next [MaxCodeLen + 1]uint32
	var code uint32
	for l := 1; l <= MaxCodeLen; l++ {
		code = (code + uint32(count[l-1])) << 1
		next[l] = code
	}
	for sym, l := range lengths {
		if l == 0 {
			continue
		}
		e.codes[sym] = next[l]
		next[l]++
	}

	return e
}

// flatLengths gives every symbol a 9-bit code, so the code of symbol s is s.
func flatLengths() [NumSymbols]uint8 {
	var lengths [NumSymbols]uint8
	for i := range lengths {
		lengths[i] = 9
	}

	return lengths
}

// rankLengths assigns shorter codes to more frequent symbols from a fixed
// length ladder that leaves part of the code space unassigned.
func rankLengths(freq [NumSymbols]int) [NumSymbols]uint8 {
	order := make([]int, NumSymbols)
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool { return freq[order[a]] > freq[order[b]] })

	var lengths [NumSymbols]uint8
	for rank, sym := range order {
		switch {
		case rank < 4:
			lengths[sym] = 4
		case rank < 12:
			lengths[sym] = 6
		case rank < 44:
			lengths[sym] = 8
		case rank < 172:
			lengths[sym] = 10
		default:
			lengths[sym] = 11
		}
	}

	return lengths
}

func packLengths(lengths [NumSymbols]uint8) []byte {
	header := make([]byte, HeaderSize)
	for i := range header {
		header[i] = lengths[2*i] | lengths[2*i+1]<<4
	}

	return header
}

func (e *testEncoder) raw(v uint64, n uint8) {
	e.w.TryWriteBits(v, n)
}

func (e *testEncoder) symbol(sym int) {
	e.t.Helper()
	require.NotZero(e.t, e.lengths[sym], "symbol %d has no code", sym)
	e.raw(uint64(e.codes[sym]), e.lengths[sym])
}

func (e *testEncoder) literal(b byte) {
	e.symbol(int(b))
}

// match writes a back-reference; offset must be in 1..65535.
func (e *testEncoder) match(length, offset int) {
	e.t.Helper()
	require.True(e.t, length >= MinMatch && length <= MaxMatch, "length %d", length)
	require.True(e.t, offset >= 1 && offset < 1<<16, "offset %d", offset)

	k := bits.Len(uint(offset)) - 1
	e.symbol(256 + k<<4 + (length - MinMatch))
	if k > 0 {
		e.raw(uint64(offset-1<<k), uint8(k))
	}
}

// payload returns the code length table followed by the stream regrouped into
// 16-bit little-endian units.
func (e *testEncoder) payload() []byte {
	e.t.Helper()
	require.NoError(e.t, e.w.TryError)
	require.NoError(e.t, e.w.Close())

	stream := e.buf.Bytes()
	if len(stream)%2 == 1 {
		stream = append(stream, 0)
	}
	for i := 0; i < len(stream); i += 2 {
		stream[i], stream[i+1] = stream[i+1], stream[i]
	}

	return append(packLengths(e.lengths), stream...)
}

type token struct {
	lit    byte
	length int
	offset int
}

// tokenize finds greedy matches within window bytes back.
func tokenize(src []byte, window int) []token {
	var toks []token
	for i := 0; i < len(src); {
		bestLen, bestOff := 0, 0
		for off := 1; off <= min(window, i); off++ {
			n := 0
			for n < MaxMatch && i+n < len(src) && src[i+n-off] == src[i+n] {
				n++
			}
			if n > bestLen {
				bestLen, bestOff = n, off
				if n == MaxMatch {
					break
				}
			}
		}

		if bestLen >= MinMatch {
			toks = append(toks, token{length: bestLen, offset: bestOff})
			i += bestLen
		} else {
			toks = append(toks, token{lit: src[i]})
			i++
		}
	}

	return toks
}

// compressGreedy produces a payload that decodes back to src.
func compressGreedy(t testing.TB, src []byte, window int) []byte {
	t.Helper()

	toks := tokenize(src, window)

	var freq [NumSymbols]int
	for _, tok := range toks {
		if tok.length == 0 {
			freq[tok.lit]++
			continue
		}
		k := bits.Len(uint(tok.offset)) - 1
		freq[256+k<<4+(tok.length-MinMatch)]++
	}

	e := newTestEncoder(t, rankLengths(freq))
	for _, tok := range toks {
		if tok.length == 0 {
			e.literal(tok.lit)
		} else {
			e.match(tok.length, tok.offset)
		}
	}

	return e.payload()
}
