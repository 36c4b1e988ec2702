// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lz4

package lz4

import (
	"fmt"
)

// Backend binds a tier to the providers of its capability objects.
type Backend struct {
	// Tier is the tier every object of this backend belongs to.
	Tier Tier

	// Load makes the backend usable and reports whether it is. nil means always available.
	Load func() error

	// Loaded reports whether a one-time Load already succeeded in this process.
	// The resolver uses it to try the native tier when it may not load it itself.
	// nil means never.
	Loaded func() bool

	// Compressors must return exactly two compressors: fast first, then high.
	Compressors func() []Compressor
	// Decompressors must return exactly one known-size decompressor.
	Decompressors func() []Decompressor
	// UnknownSizeDecompressors must return exactly one unknown-size decompressor.
	UnknownSizeDecompressors func() []UnknownSizeDecompressor
}

// capabilitySet is the four objects a Factory exposes. All come from one backend.
type capabilitySet struct {
	fast         Compressor
	high         Compressor
	decompressor Decompressor
	unknownSize  UnknownSizeDecompressor
}

// tierReporter is implemented by capability objects that know their tier.
type tierReporter interface {
	Tier() Tier
}

// load runs Load, turning a panic into an error.
func (b Backend) load() (err error) {
	if b.Load == nil {
		return nil
	}

	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("load panicked: %v", p)
		}
	}()

	return b.Load()
}

// loaded reports whether the backend was already loaded once.
func (b Backend) loaded() bool {
	return b.Loaded != nil && b.Loaded()
}

// bind collects the capability objects and checks their cardinality and tier.
func (b Backend) bind() (capabilitySet, error) {
	compressors := b.Compressors()
	if len(compressors) != 2 {
		return capabilitySet{}, shapeError(b.Tier, "%d compressors, want 2 (fast, high)", len(compressors))
	}

	decompressors := b.Decompressors()
	if len(decompressors) != 1 {
		return capabilitySet{}, shapeError(b.Tier, "%d decompressors, want 1", len(decompressors))
	}

	unknownSize := b.UnknownSizeDecompressors()
	if len(unknownSize) != 1 {
		return capabilitySet{}, shapeError(b.Tier, "%d unknown-size decompressors, want 1", len(unknownSize))
	}

	set := capabilitySet{
		fast:         compressors[0],
		high:         compressors[1],
		decompressor: decompressors[0],
		unknownSize:  unknownSize[0],
	}

	for _, object := range []any{set.fast, set.high, set.decompressor, set.unknownSize} {
		if object == nil {
			return capabilitySet{}, shapeError(b.Tier, "nil capability object")
		}

		if reporter, ok := object.(tierReporter); ok && reporter.Tier() != b.Tier {
			return capabilitySet{}, shapeError(b.Tier, "%v belongs to tier %s", object, reporter.Tier())
		}
	}

	return set, nil
}

func shapeError(tier Tier, format string, args ...any) error {
	return fmt.Errorf("lz4: %s backend: %w: %s", tier, ErrBackendShapeMismatch, fmt.Sprintf(format, args...))
}

// tierError wraps a resolution failure of tier with its sentinel.
func tierError(tier Tier, sentinel, cause error) error {
	return fmt.Errorf("lz4: %s backend: %w: %w", tier, sentinel, cause)
}
