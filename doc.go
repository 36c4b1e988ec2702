// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lz4

/*
Package lz4 selects and certifies an LZ4 block codec implementation.

Three tiers implement the same block format:

  - native: the assembly-accelerated engine from github.com/pierrec/lz4,
    probed once per process;
  - unsafe: a pure-Go engine using unaligned word access through package unsafe;
  - safe: a pure-Go engine using bounds-checked slice access only.

Every tier exposes a fast compressor, a high-ratio compressor, a known-size
decompressor and an unknown-size decompressor. Before a Factory is returned its
backend round-trips a fixed test vector through all four; a backend that fails
is never exposed.

# Resolve

Resolving is costly. Get a factory once and keep it:

	factory, err := lz4.Default()
	if err != nil {
		// no tier works, not even safe
	}

Fastest walks native, unsafe, safe and returns the first tier that certifies.
To resolve without performing the native load yourself:

	factory, err := lz4.FastestWithOptions(&lz4.ResolveOptions{AllowNativeLoad: false})

A specific tier:

	factory, err := lz4.Native() // errors.Is(err, lz4.ErrBackendUnavailable) if not usable

# Compress

	c := factory.FastCompressor()
	dst := make([]byte, c.MaxCompressedLength(len(src)))
	n, err := c.Compress(dst, src)

Or with allocation:

	block, err := lz4.CompressBlock(factory.HighCompressor(), src)
	out, err := lz4.DecompressBlock(factory.Decompressor(), block, len(src))

# Decompress

With the decoded size known, Decompressor reports the input consumed, which is
how back-to-back blocks are split:

	nRead, err := factory.Decompressor().Decompress(dst, compressed)
	compressed = compressed[nRead:]

Without it, UnknownSizeDecompressor decodes one whole block into a buffer that
is large enough:

	n, err := factory.UnknownSizeDecompressor().Decompress(buf, block)

# Environment

LZ4_DISABLE_NATIVE=1 and LZ4_DISABLE_UNSAFE=1 make the native and unsafe tiers
unavailable. The native setting is read once, at the first native load.
*/
package lz4
