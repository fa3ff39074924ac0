package mam

import "github.com/woozymasta/xpress"

// DefaultMaxSize bounds the declared decompressed size (64 MiB).
const DefaultMaxSize = 64 << 20

// Options configures Decompress and DecompressFile.
type Options struct {
	// MaxSize rejects headers declaring a larger output (0 = DefaultMaxSize).
	MaxSize uint32
	// VerifyChecksum: if true, a present CRC32 must match the container contents.
	VerifyChecksum bool
	// Decoder is passed to xpress.Decompress; nil means xpress.DefaultOptions().
	Decoder *xpress.Options
}

// DefaultOptions returns options for default behavior: 64 MiB limit, strict checksum.
func DefaultOptions() *Options {
	return &Options{
		MaxSize:        DefaultMaxSize,
		VerifyChecksum: true,
	}
}

func (o *Options) maxSize() uint32 {
	if o.MaxSize == 0 {
		return DefaultMaxSize
	}

	return o.MaxSize
}
