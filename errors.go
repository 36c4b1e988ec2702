// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lz4

package lz4

import (
	"errors"

	"github.com/woozymasta/lz4/internal/block"
)

// Sentinel errors for backend resolution. Resolution errors wrap one of these
// and can be matched with errors.Is.
var (
	// ErrBackendUnavailable is returned when a tier cannot be loaded or bound in
	// this environment. The fallback resolver recovers from it except at the safe tier.
	ErrBackendUnavailable = errors.New("backend unavailable")
	// ErrBackendShapeMismatch is returned when a backend does not expose exactly two
	// compressors, one decompressor and one unknown-size decompressor of its own tier.
	// It indicates a broken build and is never recovered from.
	ErrBackendShapeMismatch = errors.New("backend shape mismatch")
	// ErrCertificationFailure is returned when a backend fails the round-trip self-test.
	ErrCertificationFailure = errors.New("backend certification failed")
	// ErrUnknownTier is returned for tier values or names that do not exist.
	ErrUnknownTier = errors.New("unknown tier")
)

// Sentinel errors returned by compress and decompress calls of every backend.
var (
	// ErrInsufficientOutputSpace is returned when the destination buffer is too small.
	ErrInsufficientOutputSpace = block.ErrInsufficientOutputSpace
	// ErrMalformedInput is returned when an encoded block is inconsistent.
	ErrMalformedInput = block.ErrMalformedInput
	// ErrInputTooLarge is returned when the input exceeds MaxInputSize.
	ErrInputTooLarge = block.ErrInputTooLarge
)

// MaxInputSize is the largest input a single block can hold.
const MaxInputSize = block.MaxInputSize
