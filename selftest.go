// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lz4

package lz4

import (
	"errors"
	"fmt"
)

// testVector has a repeated run so a correct codec exercises both literal
// copies and match copies.
const testVector = "abcd      abcdefghij"

// sentinelByte prefills the unknown-size output so short writes are visible.
const sentinelByte = 0xA5

// certify round-trips testVector through both compressors and both
// decompressors of set. A failure of either compressor fails the whole set.
func certify(set capabilitySet) (err error) {
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("panic during self-test: %v", p)
		}
	}()

	variants := []struct {
		name       string
		compressor Compressor
	}{
		{name: "fast", compressor: set.fast},
		{name: "high", compressor: set.high},
	}

	for _, variant := range variants {
		if err := roundTrip(variant.compressor, set.decompressor, set.unknownSize); err != nil {
			return fmt.Errorf("%s compressor: %w", variant.name, err)
		}
	}

	return nil
}

// roundTrip compresses testVector with c and checks that d and u restore it.
// The input is a fresh copy each time so a backend that writes to its source
// cannot affect the comparison.
func roundTrip(c Compressor, d Decompressor, u UnknownSizeDecompressor) error {
	original := []byte(testVector)

	bound := c.MaxCompressedLength(len(original))
	if bound <= 0 {
		return fmt.Errorf("MaxCompressedLength(%d) = %d", len(original), bound)
	}

	compressed := make([]byte, bound)
	n, err := c.Compress(compressed, original)
	if err != nil {
		return fmt.Errorf("compress: %w", err)
	}
	if n <= 0 || n > bound {
		return fmt.Errorf("compressed size %d outside [1, %d]", n, bound)
	}
	compressed = compressed[:n]

	restored := make([]byte, len(testVector))
	consumed, err := d.Decompress(restored, compressed)
	if err != nil {
		return fmt.Errorf("decompress: %w", err)
	}
	if string(restored) != testVector {
		return errors.New("decompress: output mismatch")
	}
	if consumed != n {
		return fmt.Errorf("decompress: consumed %d bytes of a %d-byte block", consumed, n)
	}

	for i := range restored {
		restored[i] = sentinelByte
	}

	written, err := u.Decompress(restored, compressed)
	if err != nil {
		return fmt.Errorf("unknown-size decompress: %w", err)
	}
	if written != len(testVector) {
		return fmt.Errorf("unknown-size decompress: wrote %d bytes, want %d", written, len(testVector))
	}
	if string(restored) != testVector {
		return errors.New("unknown-size decompress: output mismatch")
	}

	return nil
}
