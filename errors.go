// SPDX-License-Identifier: MIT
// Copyright (c) 2026 Maxim Levchenko (WoozyMasta)

package xpress

import (
	"errors"
	"fmt"
)

// Package errors. Use errors.New for static messages, fmt.Errorf when values are needed.
var (
	ErrTruncatedHeader    = errors.New("payload shorter than 256-byte code length table")
	ErrInvalidCodeLengths = errors.New("code lengths oversubscribe the prefix table")
	ErrInvalidCode        = errors.New("bit stream holds no valid codeword")
	ErrShortOutput        = errors.New("input exhausted before target output length")
	ErrNilReader          = errors.New("reader is nil")
	ErrPayloadTooLarge    = errors.New("payload exceeds configured limit")
)

// InvalidCodeError reports a 15-bit prefix that matched no assigned codeword.
type InvalidCodeError struct {
	Pos   int    // Output length reached when the code was read.
	Index uint16 // Offending 15-bit table index.
}

func (e *InvalidCodeError) Error() string {
	return fmt.Sprintf("%v: output=%d index=0x%04x", ErrInvalidCode, e.Pos, e.Index)
}

func (e *InvalidCodeError) Unwrap() error { return ErrInvalidCode }

// ShortOutputError reports how far decoding got before the input ran out.
type ShortOutputError struct {
	Got  int
	Want uint32
}

func (e *ShortOutputError) Error() string {
	return fmt.Sprintf("%v: got=%d want=%d", ErrShortOutput, e.Got, e.Want)
}

func (e *ShortOutputError) Unwrap() error { return ErrShortOutput }
