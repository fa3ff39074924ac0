// SPDX-License-Identifier: MIT
// Copyright (c) 2026 Maxim Levchenko (WoozyMasta)

package mam

import "errors"

// Package errors.
var (
	ErrNotMAM            = errors.New("missing MAM signature")
	ErrShortHeader       = errors.New("not enough data for MAM header")
	ErrUnsupportedFormat = errors.New("unsupported MAM compression format")
	ErrSizeLimit         = errors.New("declared size exceeds limit")
	ErrChecksum          = errors.New("MAM checksum mismatch")
)
