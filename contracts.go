// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lz4

package lz4

// Compressor compresses one LZ4 block.
// Implementations hold no mutable state and are safe for concurrent use.
type Compressor interface {
	// MaxCompressedLength returns the worst-case compressed size for n input bytes.
	// It is a pure function of n and returns 0 if n is negative or above MaxInputSize.
	MaxCompressedLength(n int) int

	// Compress compresses src into dst and returns the compressed size.
	// len(dst) is the capacity; ErrInsufficientOutputSpace is returned if the
	// block does not fit.
	Compress(dst, src []byte) (int, error)
}

// Decompressor decodes a block whose decoded size is known in advance.
type Decompressor interface {
	// Decompress decodes exactly len(dst) bytes from src and returns the number
	// of src bytes consumed. src may continue past the block.
	// ErrMalformedInput is returned if the block does not decode to len(dst) bytes.
	Decompress(dst, src []byte) (int, error)
}

// UnknownSizeDecompressor decodes a block without being told its decoded size.
type UnknownSizeDecompressor interface {
	// Decompress decodes src, which must be exactly one block, into dst and
	// returns the number of bytes written. It returns ErrMalformedInput for
	// inconsistent blocks and ErrInsufficientOutputSpace if dst is too small.
	Decompress(dst, src []byte) (int, error)
}
