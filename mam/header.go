package mam

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"hash/crc32"
)

// Container constants.
const (
	Magic            = "MAM"
	FormatHuffman    = 4    // Only format decoded by package xpress.
	flagChecksum     = 0x80 // Format byte bit: CRC32 follows the size field.
	baseHeaderSize   = 8
	headerSizeCRC    = 12
	prefetchMagic    = "SCCA"
	prefetchMagicOff = 4 // SCCA follows the 4-byte format version.
)

// Header is a parsed MAM container header.
type Header struct {
	Format      byte   // Compression format (low nibble of byte 3).
	Size        uint32 // Declared decompressed size.
	HasChecksum bool
	Checksum    uint32
	Len         int // Header length in bytes: 8, or 12 with checksum.
}

// IsCompressed reports whether b starts with the MAM signature.
func IsCompressed(b []byte) bool {
	return bytes.HasPrefix(b, []byte(Magic))
}

// HasPrefetchSignature reports whether decompressed data looks like a prefetch file.
func HasPrefetchSignature(b []byte) bool {
	if len(b) < prefetchMagicOff+len(prefetchMagic) {
		return false
	}

	return string(b[prefetchMagicOff:prefetchMagicOff+len(prefetchMagic)]) == prefetchMagic
}

// ParseHeader parses the container header at the start of b.
func ParseHeader(b []byte) (Header, error) {
	if len(b) < baseHeaderSize {
		if len(b) >= len(Magic) && !IsCompressed(b) {
			return Header{}, ErrNotMAM
		}

		return Header{}, ErrShortHeader
	}
	if !IsCompressed(b) {
		return Header{}, ErrNotMAM
	}

	h := Header{
		Format:      b[3] & 0x0F,
		HasChecksum: b[3]&flagChecksum != 0,
		Size:        binary.LittleEndian.Uint32(b[4:8]),
		Len:         baseHeaderSize,
	}
	if h.HasChecksum {
		if len(b) < headerSizeCRC {
			return Header{}, ErrShortHeader
		}
		h.Checksum = binary.LittleEndian.Uint32(b[8:12])
		h.Len = headerSizeCRC
	}
	if h.Format != FormatHuffman {
		return Header{}, fmt.Errorf("%w: %d", ErrUnsupportedFormat, h.Format)
	}

	return h, nil
}

// checksum computes the container CRC32 over the header (CRC field zeroed) and payload.
func checksum(data []byte, h Header) uint32 {
	var hdr [headerSizeCRC]byte
	copy(hdr[:baseHeaderSize], data[:baseHeaderSize])

	crc := crc32.ChecksumIEEE(hdr[:])

	return crc32.Update(crc, crc32.IEEETable, data[h.Len:])
}
