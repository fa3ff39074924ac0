/*
Package mam reads MAM-tagged containers holding a single xpress block and
decodes the payload with package xpress.

Only the single-block stream described in package xpress is supported: there is
no 64 KiB chunking and no match length extension bytes, so prefetch files
written by Windows are not expected to decode.

Header layout:

	0..3   "MAM"
	3      format byte: low nibble = compression format (4 = Huffman),
	       bit 0x80 = CRC32 present
	4..8   decompressed size, little-endian uint32
	8..12  CRC32 (IEEE), only when bit 0x80 is set

The CRC covers the header with the CRC field zeroed, followed by the payload.

# Examples

Decompress a file through any afero filesystem:

	out, err := mam.DecompressFile(afero.NewOsFs(), "CMD.EXE-0BD30981.pf", nil)
	if err != nil {
		return err
	}
	if mam.HasPrefetchSignature(out) {
		parse(out)
	}
*/
package mam
