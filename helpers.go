// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lz4

package lz4

import "fmt"

// CompressBlock compresses src with c and returns a slice holding just the block.
func CompressBlock(c Compressor, src []byte) ([]byte, error) {
	dst := make([]byte, c.MaxCompressedLength(len(src)))

	n, err := c.Compress(dst, src)
	if err != nil {
		return nil, fmt.Errorf("lz4 compress: %w", err)
	}

	return dst[:n], nil
}

// DecompressBlock decodes src, which must hold exactly one block of size decoded bytes.
// Unlike Decompressor.Decompress, bytes after the block are an error.
func DecompressBlock(d Decompressor, src []byte, size int) ([]byte, error) {
	if size < 0 {
		return nil, fmt.Errorf("lz4 decompress: %w: negative size %d", ErrMalformedInput, size)
	}

	dst := make([]byte, size)
	n, err := d.Decompress(dst, src)
	if err != nil {
		return nil, fmt.Errorf("lz4 decompress: %w", err)
	}

	if n != len(src) {
		return nil, fmt.Errorf("lz4 decompress: %w: %d bytes after the block", ErrMalformedInput, len(src)-n)
	}

	return dst, nil
}
