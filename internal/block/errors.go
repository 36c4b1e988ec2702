// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lz4

package block

import "errors"

// Sentinel errors shared by every engine.
var (
	// ErrInsufficientOutputSpace is returned when dst cannot hold the result.
	ErrInsufficientOutputSpace = errors.New("insufficient output space")
	// ErrMalformedInput is returned when the encoded block is inconsistent
	// (truncated, bad offset, or disagrees with the expected decoded length).
	ErrMalformedInput = errors.New("malformed input data")
	// ErrInputTooLarge is returned when the input exceeds MaxInputSize.
	ErrInputTooLarge = errors.New("input exceeds MaxInputSize")
)
