/*
Package xpress implements decompression of a single-block Huffman+LZ77 stream,
as carried in MAM-tagged containers (see package mam).

Format: a 256-byte table of packed 4-bit code lengths for 512 symbols (low nibble
first), followed by a bit stream read MSB-first from 16-bit little-endian units.
Codes are canonical Huffman codes of at most 15 bits.
Symbols 0..255 are literal bytes. Symbol 256+m is a match: length = (m & 0xF) + 3
(3..18), offset bit count k = m >> 4; offset = 1 when k is 0, otherwise
(1 << k) | next k bits. History before the start of output reads as zero.

Use Decode(payload, outLen, opts) to get a Result tagged done, short or failed.
Use Decompress(payload, outLen, opts) for a plain ([]byte, error) call.
Use DecompressFromReader(r, outLen, opts) to decode a payload read from a stream.
The mam subpackage parses the container header and calls into this package.

# Examples

Decompress with default options (validated table, strict length):

	out, err := xpress.Decompress(payload, expectedLen, nil)
	if err != nil {
		return err
	}

Inspect how decoding ended, keeping partial output for diagnostics:

	res := xpress.Decode(payload, expectedLen, nil)
	switch res.State {
	case xpress.StateDone:
		use(res.Data)
	case xpress.StateShort:
		log.Printf("short output: %d of %d bytes", len(res.Data), expectedLen)
	case xpress.StateFailed:
		var ice *xpress.InvalidCodeError
		if errors.As(res.Err, &ice) {
			log.Printf("bad code at output %d", ice.Pos)
		}
	}

Accept short output and unvalidated code lengths:

	out, err := xpress.Decompress(payload, expectedLen, xpress.LenientOptions())
*/
package xpress
