// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lz4

package lz4

import (
	"fmt"
	"os"
	"runtime"
	"sync"

	"github.com/woozymasta/lz4/internal/block"
	"github.com/woozymasta/lz4/internal/native"
)

// Environment variables read when a tier is loaded. Setting one to "1" makes
// that tier unavailable.
const (
	DisableNativeEnvVar = native.DisableEnvVar
	DisableUnsafeEnvVar = "LZ4_DISABLE_UNSAFE"
)

type codecFunc func(dst, src []byte) (int, error)

// compressor binds one engine entry point to the Compressor contract.
type compressor struct {
	tier     Tier
	variant  string
	compress codecFunc
}

func (c *compressor) MaxCompressedLength(n int) int         { return block.MaxCompressedLength(n) }
func (c *compressor) Compress(dst, src []byte) (int, error) { return c.compress(dst, src) }
func (c *compressor) Tier() Tier                            { return c.tier }
func (c *compressor) String() string                        { return c.tier.String() + "/" + c.variant }

type decompressor struct {
	tier       Tier
	decompress codecFunc
}

func (d *decompressor) Decompress(dst, src []byte) (int, error) { return d.decompress(dst, src) }
func (d *decompressor) Tier() Tier                              { return d.tier }
func (d *decompressor) String() string                          { return d.tier.String() + "/decompressor" }

type unknownSizeDecompressor struct {
	tier       Tier
	decompress codecFunc
}

func (d *unknownSizeDecompressor) Decompress(dst, src []byte) (int, error) { return d.decompress(dst, src) }
func (d *unknownSizeDecompressor) Tier() Tier                              { return d.tier }
func (d *unknownSizeDecompressor) String() string {
	return d.tier.String() + "/unknown-size-decompressor"
}

// Shared capability objects, one per tier and role. They are stateless.
var (
	nativeFast    = &compressor{tier: TierNative, variant: "fast", compress: native.CompressFast}
	nativeHigh    = &compressor{tier: TierNative, variant: "high", compress: native.CompressHigh}
	nativeDecomp  = &decompressor{tier: TierNative, decompress: native.Decompress}
	nativeUnknown = &unknownSizeDecompressor{tier: TierNative, decompress: native.DecompressUnknownSize}

	safeFast    = &compressor{tier: TierSafe, variant: "fast", compress: block.CompressFast}
	safeHigh    = &compressor{tier: TierSafe, variant: "high", compress: block.CompressHigh}
	safeDecomp  = &decompressor{tier: TierSafe, decompress: block.Decompress}
	safeUnknown = &unknownSizeDecompressor{tier: TierSafe, decompress: block.DecompressUnknownSize}

	unsafeFast    = &compressor{tier: TierUnsafe, variant: "fast", compress: block.CompressFastUnsafe}
	unsafeHigh    = &compressor{tier: TierUnsafe, variant: "high", compress: block.CompressHighUnsafe}
	unsafeDecomp  = &decompressor{tier: TierUnsafe, decompress: block.DecompressUnsafe}
	unsafeUnknown = &unknownSizeDecompressor{tier: TierUnsafe, decompress: block.DecompressUnknownSizeUnsafe}
)

// nativeLoader guards the process-wide native probe.
var nativeLoader = newOnceLoader(native.Probe)

// NativeBackend returns the binding of the accelerated engine.
func NativeBackend() Backend {
	return Backend{
		Tier:                     TierNative,
		Load:                     nativeLoader.Load,
		Loaded:                   nativeLoader.Loaded,
		Compressors:              func() []Compressor { return []Compressor{nativeFast, nativeHigh} },
		Decompressors:            func() []Decompressor { return []Decompressor{nativeDecomp} },
		UnknownSizeDecompressors: func() []UnknownSizeDecompressor { return []UnknownSizeDecompressor{nativeUnknown} },
	}
}

// SafeBackend returns the binding of the bounds-checked pure-Go engine.
func SafeBackend() Backend {
	return Backend{
		Tier:                     TierSafe,
		Compressors:              func() []Compressor { return []Compressor{safeFast, safeHigh} },
		Decompressors:            func() []Decompressor { return []Decompressor{safeDecomp} },
		UnknownSizeDecompressors: func() []UnknownSizeDecompressor { return []UnknownSizeDecompressor{safeUnknown} },
	}
}

// UnsafeBackend returns the binding of the pure-Go engine that uses package unsafe.
func UnsafeBackend() Backend {
	return Backend{
		Tier:                     TierUnsafe,
		Load:                     loadUnsafe,
		Compressors:              func() []Compressor { return []Compressor{unsafeFast, unsafeHigh} },
		Decompressors:            func() []Decompressor { return []Decompressor{unsafeDecomp} },
		UnknownSizeDecompressors: func() []UnknownSizeDecompressor { return []UnknownSizeDecompressor{unsafeUnknown} },
	}
}

func loadUnsafe() error {
	if os.Getenv(DisableUnsafeEnvVar) == "1" {
		return fmt.Errorf("disabled by %s=1", DisableUnsafeEnvVar)
	}

	if !block.UnsafeSupported() {
		return fmt.Errorf("no little-endian unaligned access on %s", runtime.GOARCH)
	}

	return nil
}

// defaultRegistry holds the three built-in backends.
var defaultRegistry = mustNewRegistry(NativeBackend(), SafeBackend(), UnsafeBackend())

func mustNewRegistry(backends ...Backend) *Registry {
	registry, err := NewRegistry(backends...)
	if err != nil {
		panic("lz4: default registry: " + err.Error())
	}

	return registry
}

// DefaultRegistry returns the registry of built-in backends.
func DefaultRegistry() *Registry {
	return defaultRegistry
}

// Native resolves the accelerated tier. The first call in the process probes the
// engine; later calls observe the same outcome.
func Native() (*Factory, error) {
	return defaultRegistry.Resolve(TierNative)
}

// Safe resolves the bounds-checked pure-Go tier.
func Safe() (*Factory, error) {
	return defaultRegistry.Resolve(TierSafe)
}

// Unsafe resolves the pure-Go tier that uses package unsafe.
func Unsafe() (*Factory, error) {
	return defaultRegistry.Resolve(TierUnsafe)
}

// FastestPortable resolves the fastest tier that does not need the native engine.
// It fails only if the safe tier fails, which means the module is broken.
func FastestPortable() (*Factory, error) {
	return defaultRegistry.FastestPortable(nil)
}

// Fastest resolves the fastest certified tier with DefaultResolveOptions.
func Fastest() (*Factory, error) {
	return defaultRegistry.Fastest(nil)
}

// FastestWithOptions resolves the fastest certified tier with opts.
func FastestWithOptions(opts *ResolveOptions) (*Factory, error) {
	return defaultRegistry.Fastest(opts)
}

var defaultFactory = sync.OnceValues(Fastest)

// Default returns the factory chosen by Fastest, resolved once per process.
// Every call returns the same factory, or the same error.
func Default() (*Factory, error) {
	return defaultFactory()
}
