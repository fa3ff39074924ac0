package xpress

import (
	"fmt"
	"io"
	"math"
)

// State is the terminal state of a Decode call.
type State int

// Decoder states. StateDecoding is never returned.
const (
	StateDecoding State = iota
	StateDone           // Output reached the target length.
	StateShort          // Input ran out first; Data is shorter than requested.
	StateFailed         // Fatal error; Data holds whatever was decoded before it.
)

func (s State) String() string {
	switch s {
	case StateDecoding:
		return "decoding"
	case StateDone:
		return "done"
	case StateShort:
		return "short"
	case StateFailed:
		return "failed"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Result is the outcome of Decode.
// Data is only the full, trusted output when State is StateDone.
type Result struct {
	Data     []byte
	State    State
	Err      error // Set for StateFailed.
	Consumed int   // Payload bytes read, including the code length table.
}

// Complete reports whether Data holds the full requested output.
func (r Result) Complete() bool {
	return r.State == StateDone
}

// Decode decodes payload (256-byte code length table followed by the bit stream)
// into at most outLen bytes and reports how decoding ended.
// Options nil means DefaultOptions.
func Decode(payload []byte, outLen uint32, opts *Options) Result {
	if opts == nil {
		opts = DefaultOptions()
	}

	table, err := buildTable(payload, opts.Permissive)
	if err != nil {
		return Result{State: StateFailed, Err: err}
	}

	stream := payload[HeaderSize:]
	// Every symbol takes at least one bit and yields at most MaxMatch bytes.
	prealloc := min(uint64(outLen), uint64(len(stream))*8*MaxMatch, math.MaxInt)
	out := make([]byte, 0, prealloc)
	br := newBitReader(stream)

	result := func(state State, err error) Result {
		return Result{Data: out, State: state, Err: err, Consumed: HeaderSize + br.offset()}
	}

	for uint32(len(out)) < outLen { // #nosec G115 -- len(out) <= outLen
		if br.n < MaxCodeLen {
			br.refill()
		}
		if br.exhausted() {
			return result(StateShort, nil)
		}

		idx := br.peek(MaxCodeLen)
		e := table[idx]
		if e == 0 {
			return result(StateFailed, &InvalidCodeError{Pos: len(out), Index: uint16(idx)}) // #nosec G115 -- 15-bit index
		}
		// Bits past the end of input are padding, not data.
		if e.length() > br.n {
			return result(StateShort, nil)
		}
		br.consume(e.length())

		sym := e.symbol()
		if sym < 256 {
			out = append(out, byte(sym))
			continue
		}

		// Match symbol: low nibble is length-3, high nibble the offset bit count.
		m := sym - 256
		length := int(m&0xF) + MinMatch
		offBits := uint(m >> 4) // 0..maxOffsetBits

		offset := 1
		if offBits > 0 {
			if br.n < offBits {
				br.refill()
			}
			if br.n < offBits {
				return result(StateShort, nil)
			}
			offset = 1<<offBits | int(br.peek(offBits))
			br.consume(offBits)
		}

		// Copy byte by byte: the source may overlap bytes appended by this same copy.
		// History before the start of output reads as zero.
		rpos := len(out) - offset
		if rem := outLen - uint32(len(out)); uint32(length) > rem { // #nosec G115 -- length <= MaxMatch
			length = int(rem)
		}
		for k := 0; k < length; k++ {
			if rpos+k < 0 {
				out = append(out, 0)
			} else {
				out = append(out, out[rpos+k])
			}
		}
	}

	return result(StateDone, nil)
}

// Decompress decodes payload into exactly outLen bytes.
// Short output is an error unless Options.AllowShort is set.
// Options nil means DefaultOptions (validated table, strict length).
func Decompress(payload []byte, outLen uint32, opts *Options) ([]byte, error) {
	if opts == nil {
		opts = DefaultOptions()
	}

	res := Decode(payload, outLen, opts)
	switch res.State {
	case StateDone:
		return res.Data, nil
	case StateShort:
		if opts.AllowShort {
			return res.Data, nil
		}

		return nil, &ShortOutputError{Got: len(res.Data), Want: outLen}
	default:
		return nil, res.Err
	}
}

// DecompressFromReader reads the whole payload from r and decodes it.
// It returns the output and the number of bytes read from r.
func DecompressFromReader(r io.Reader, outLen uint32, opts *Options) ([]byte, int64, error) {
	if r == nil {
		return nil, 0, ErrNilReader
	}
	if opts == nil {
		opts = DefaultOptions()
	}

	src := r
	if opts.MaxPayload > 0 {
		src = io.LimitReader(r, opts.MaxPayload+1)
	}

	payload, err := io.ReadAll(src)
	read := int64(len(payload))
	if err != nil {
		return nil, read, err
	}
	if opts.MaxPayload > 0 && read > opts.MaxPayload {
		return nil, read, fmt.Errorf("%w: limit=%d", ErrPayloadTooLarge, opts.MaxPayload)
	}

	out, err := Decompress(payload, outLen, opts)
	if err != nil {
		return nil, read, err
	}

	return out, read, nil
}
