package xpress

// Options configures Decode and Decompress behavior.
type Options struct {
	// AllowShort: if true, Decompress returns the partial output with a nil error
	// when the input runs out before outLen bytes. If false, it returns ErrShortOutput.
	// Decode always reports the condition as StateShort.
	AllowShort bool
	// Permissive skips code length validation. Overlapping codewords silently
	// overwrite earlier table slots and codes past the table end are dropped.
	Permissive bool
	// MaxPayload caps the bytes DecompressFromReader will read (0 = no limit).
	MaxPayload int64
}

// DefaultOptions returns options for default behavior: validated table, strict output length.
func DefaultOptions() *Options {
	return &Options{}
}

// LenientOptions returns options that accept short output and unvalidated code lengths.
func LenientOptions() *Options {
	return &Options{
		AllowShort: true,
		Permissive: true,
	}
}
