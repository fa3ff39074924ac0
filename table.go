package xpress

// tableEntry packs a decoded symbol and its code length.
// Zero means the slot is unassigned; assigned entries always have len > 0.
type tableEntry uint16

func newEntry(sym uint16, length uint8) tableEntry {
	return tableEntry(sym<<4 | uint16(length))
}

func (e tableEntry) symbol() uint16 { return uint16(e) >> 4 }
func (e tableEntry) length() uint   { return uint(e & 0xF) }

// decodeTable resolves a left-aligned 15-bit window to (symbol, code length).
type decodeTable [tableSize]tableEntry

// CodeLengths unpacks the 256-byte header into 512 per-symbol code lengths.
// Low nibble is the even symbol, high nibble the odd one.
func CodeLengths(header []byte) ([NumSymbols]uint8, error) {
	var lengths [NumSymbols]uint8
	if len(header) < HeaderSize {
		return lengths, ErrTruncatedHeader
	}

	for i, b := range header[:HeaderSize] {
		lengths[2*i] = b & 0x0F
		lengths[2*i+1] = b >> 4
	}

	return lengths, nil
}

// buildTable constructs the canonical prefix table from the packed header.
func buildTable(header []byte, permissive bool) (*decodeTable, error) {
	lengths, err := CodeLengths(header)
	if err != nil {
		return nil, err
	}

	var count [MaxCodeLen + 1]int
	for _, l := range lengths {
		count[l]++
	}
	count[0] = 0

	if !permissive {
		// Each length-L code takes 2^(15-L) slots; more than the table holds means overlap.
		used := 0
		for l := 1; l <= MaxCodeLen; l++ {
			used += count[l] << (MaxCodeLen - l)
		}
		if used > tableSize {
			return nil, ErrInvalidCodeLengths
		}
	}

	var next [MaxCodeLen + 1]int
	code := 0
	for l := 1; l <= MaxCodeLen; l++ {
		code = (code + count[l-1]) << 1
		next[l] = code
	}

	t := new(decodeTable)
	for sym, l := range lengths {
		if l == 0 {
			continue
		}

		c := next[l]
		next[l]++

		span := 1 << (MaxCodeLen - int(l))
		start := c * span
		if start >= tableSize {
			// Only reachable in permissive mode.
			continue
		}
		end := min(start+span, tableSize)

		e := newEntry(uint16(sym), l) // #nosec G115 -- sym < 512
		for i := start; i < end; i++ {
			t[i] = e
		}
	}

	return t, nil
}
