package mam

import (
	"fmt"

	"github.com/spf13/afero"
	"github.com/woozymasta/xpress"
)

// Decompress parses the MAM header in data and decodes the payload that follows it.
// Options nil means DefaultOptions().
func Decompress(data []byte, opts *Options) ([]byte, error) {
	if opts == nil {
		opts = DefaultOptions()
	}

	h, err := ParseHeader(data)
	if err != nil {
		return nil, err
	}
	if h.Size > opts.maxSize() {
		return nil, fmt.Errorf("%w: size=%d limit=%d", ErrSizeLimit, h.Size, opts.maxSize())
	}

	if h.HasChecksum && opts.VerifyChecksum {
		if got := checksum(data, h); got != h.Checksum {
			return nil, fmt.Errorf("%w: got=0x%08x expected=0x%08x", ErrChecksum, got, h.Checksum)
		}
	}

	out, err := xpress.Decompress(data[h.Len:], h.Size, opts.Decoder)
	if err != nil {
		return nil, fmt.Errorf("decompress MAM payload: %w", err)
	}

	return out, nil
}

// DecompressFile reads the container at path from fs and decompresses it.
func DecompressFile(fs afero.Fs, path string, opts *Options) ([]byte, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, err
	}

	return Decompress(data, opts)
}
