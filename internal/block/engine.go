// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lz4

package block

// Safe engine.

// CompressFast compresses src into dst with the fast parser and returns the compressed size.
// Returns ErrInsufficientOutputSpace if dst is too small; len(dst) >= MaxCompressedLength(len(src)) always suffices.
func CompressFast(dst, src []byte) (int, error) {
	return compressFast[safeMemory](dst, src)
}

// CompressHigh compresses src into dst with the hash-chain parser and returns the compressed size.
func CompressHigh(dst, src []byte) (int, error) {
	return compressHigh[safeMemory](dst, src)
}

// Decompress decodes exactly len(dst) bytes and returns the number of src bytes consumed.
func Decompress(dst, src []byte) (int, error) {
	return decompressKnown[safeMemory](dst, src)
}

// DecompressUnknownSize decodes the block src into dst and returns the number of bytes written.
func DecompressUnknownSize(dst, src []byte) (int, error) {
	return decompressUnknown[safeMemory](dst, src)
}

// Unsafe engine. Callers must check UnsafeSupported first.

// CompressFastUnsafe is CompressFast using word-at-a-time memory access.
func CompressFastUnsafe(dst, src []byte) (int, error) {
	return compressFast[unsafeMemory](dst, src)
}

// CompressHighUnsafe is CompressHigh using word-at-a-time memory access.
func CompressHighUnsafe(dst, src []byte) (int, error) {
	return compressHigh[unsafeMemory](dst, src)
}

// DecompressUnsafe is Decompress using word-at-a-time memory access.
func DecompressUnsafe(dst, src []byte) (int, error) {
	return decompressKnown[unsafeMemory](dst, src)
}

// DecompressUnknownSizeUnsafe is DecompressUnknownSize using word-at-a-time memory access.
func DecompressUnknownSizeUnsafe(dst, src []byte) (int, error) {
	return decompressUnknown[unsafeMemory](dst, src)
}
