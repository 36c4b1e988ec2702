// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lz4

/*
Package block implements the LZ4 block format in pure Go.

A block is a sequence of sequences. Each sequence starts with a token whose high
nibble is the literal length and low nibble is the match length minus 4; a
nibble value of 15 is followed by extension bytes (255 means "continue"). The
literals follow, then a little-endian 16-bit offset and the match length
extension. The last sequence carries literals only.

Two engines share the parsers and differ only in how they touch memory:

  - the safe engine (CompressFast, CompressHigh, Decompress, DecompressUnknownSize)
    uses bounds-checked slice access;
  - the unsafe engine (the ...Unsafe functions) uses word loads and stores
    through package unsafe and is only usable where UnsafeSupported reports true.

BlockEnd and Measure walk a block without producing output.
*/
package block
