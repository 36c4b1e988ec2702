// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lz4

package block

// MaxCompressedLength returns the worst-case compressed size for an input of n bytes.
// It returns 0 when n is negative or larger than MaxInputSize.
func MaxCompressedLength(n int) int {
	if n < 0 || n > MaxInputSize {
		return 0
	}

	return n + n/255 + 16
}
