// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lz4

// Package native adapts the assembly-accelerated LZ4 engine from
// github.com/pierrec/lz4 to the block contracts: fixed-capacity compression,
// known-size decompression that reports consumed input, and unknown-size
// decompression that tells short output apart from malformed input.
package native

import (
	"errors"
	"fmt"
	"os"
	"runtime"

	"github.com/pierrec/lz4/v4"
	"golang.org/x/sys/cpu"

	"github.com/woozymasta/lz4/internal/block"
)

// DisableEnvVar makes Probe fail when set to "1".
const DisableEnvVar = "LZ4_DISABLE_NATIVE"

// ErrUnsupported is returned by Probe when the accelerated engine cannot be used.
var ErrUnsupported = errors.New("native engine not supported")

// acceleratedArch lists the architectures the engine ships assembly decoders for.
var acceleratedArch = map[string]bool{
	"amd64": true,
	"arm":   true,
	"arm64": true,
}

// Probe reports whether the accelerated engine is usable in this process.
// It reads the environment, so callers that need a stable answer should run it once.
func Probe() error {
	if os.Getenv(DisableEnvVar) == "1" {
		return fmt.Errorf("%w: disabled by %s=1", ErrUnsupported, DisableEnvVar)
	}

	if !acceleratedArch[runtime.GOARCH] {
		return fmt.Errorf("%w: no assembly decoder for %s", ErrUnsupported, runtime.GOARCH)
	}

	if runtime.GOARCH == "amd64" && !cpu.X86.HasSSE2 {
		return fmt.Errorf("%w: amd64 without SSE2", ErrUnsupported)
	}

	return nil
}

// CompressFast compresses src into dst with the engine's fast block compressor.
func CompressFast(dst, src []byte) (int, error) {
	return compress(dst, src, func(src, out []byte) (int, error) {
		return lz4.CompressBlock(src, out, nil)
	})
}

// CompressHigh compresses src into dst with the engine's HC compressor at level 9.
func CompressHigh(dst, src []byte) (int, error) {
	return compress(dst, src, func(src, out []byte) (int, error) {
		return lz4.CompressBlockHC(src, out, lz4.Level9, nil, nil)
	})
}

// compress runs engine against a buffer of at least the compress bound, so
// that the engine never gives up for lack of room, then copies the result into
// dst if dst was smaller.
func compress(dst, src []byte, engine func(src, out []byte) (int, error)) (int, error) {
	if len(src) > block.MaxInputSize {
		return 0, block.ErrInputTooLarge
	}

	if len(src) == 0 {
		return block.StoreLiterals(dst, src)
	}

	bound := block.MaxCompressedLength(len(src))
	out := dst
	if len(out) < bound {
		out = make([]byte, bound)
	}

	n, err := engine(src, out)
	if err != nil {
		return 0, fmt.Errorf("lz4 compress: %w", err)
	}

	// The engine returns 0 for input it considers incompressible.
	if n == 0 {
		if n, err = block.StoreLiterals(out, src); err != nil {
			return 0, err
		}
	}

	if len(dst) < bound {
		if n > len(dst) {
			return 0, block.ErrInsufficientOutputSpace
		}
		copy(dst, out[:n])
	}

	return n, nil
}

// Decompress decodes exactly len(dst) bytes and returns the number of src bytes consumed.
// The engine needs the exact block, so its end is located first.
func Decompress(dst, src []byte) (int, error) {
	end, err := block.BlockEnd(src, len(dst))
	if err != nil {
		return 0, err
	}

	if len(dst) == 0 {
		return end, nil
	}

	n, err := lz4.UncompressBlock(src[:end], dst)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", block.ErrMalformedInput, err)
	}

	if n != len(dst) {
		return 0, fmt.Errorf("%w: decoded %d bytes, expected %d", block.ErrMalformedInput, n, len(dst))
	}

	return end, nil
}

// DecompressUnknownSize decodes the block src into dst and returns the number of bytes written.
// The engine accepts blocks that end on a match and reports short output as a
// generic error, so the block is measured first.
func DecompressUnknownSize(dst, src []byte) (int, error) {
	size, err := block.Measure(src)
	if err != nil {
		return 0, err
	}

	if size > len(dst) {
		return 0, block.ErrInsufficientOutputSpace
	}

	if size == 0 {
		return 0, nil
	}

	n, err := lz4.UncompressBlock(src, dst)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", block.ErrMalformedInput, err)
	}

	if n != size {
		return 0, fmt.Errorf("%w: decoded %d bytes, measured %d", block.ErrMalformedInput, n, size)
	}

	return n, nil
}
