// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lz4

package lz4

// Factory is a certified, immutable handle to the capability objects of one tier.
// It only exists once its backend passed the self-test and is safe to share
// between goroutines for the life of the process.
//
// Resolving a Factory runs a self-test and, for the native tier, possibly a
// process-wide load: resolve once and keep the result (see Default).
type Factory struct {
	tier Tier
	set  capabilitySet
}

// Tier returns the tier this factory was resolved for.
func (f *Factory) Tier() Tier {
	return f.tier
}

// FastCompressor returns the compressor tuned for speed.
func (f *Factory) FastCompressor() Compressor {
	return f.set.fast
}

// HighCompressor returns the compressor that spends more memory and time for a better ratio.
func (f *Factory) HighCompressor() Compressor {
	return f.set.high
}

// Decompressor returns the known-size decompressor.
func (f *Factory) Decompressor() Decompressor {
	return f.set.decompressor
}

// UnknownSizeDecompressor returns the decompressor that discovers the decoded size.
func (f *Factory) UnknownSizeDecompressor() UnknownSizeDecompressor {
	return f.set.unknownSize
}

// String returns "lz4.Factory:<tier>".
func (f *Factory) String() string {
	return "lz4.Factory:" + f.tier.String()
}
