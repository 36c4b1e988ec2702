package lz4

import (
	"errors"
	"sync"

	"github.com/woozymasta/lz4/internal/block"
)

// attemptLog records the order in which backends were loaded.
type attemptLog struct {
	mu    sync.Mutex
	tiers []Tier
}

func (l *attemptLog) add(tier Tier) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.tiers = append(l.tiers, tier)
}

func (l *attemptLog) list() []Tier {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]Tier(nil), l.tiers...)
}

var errMissingArtifact = errors.New("missing native artifact")

// fakeBackend builds a working backend for tier on top of the safe engine.
// Every Load call is recorded in log; loadErr makes the load fail.
func fakeBackend(tier Tier, log *attemptLog, loadErr error) Backend {
	return Backend{
		Tier: tier,
		Load: func() error {
			log.add(tier)
			return loadErr
		},
		Compressors: func() []Compressor {
			return []Compressor{
				&compressor{tier: tier, variant: "fast", compress: block.CompressFast},
				&compressor{tier: tier, variant: "high", compress: block.CompressHigh},
			}
		},
		Decompressors: func() []Decompressor {
			return []Decompressor{&decompressor{tier: tier, decompress: block.Decompress}}
		},
		UnknownSizeDecompressors: func() []UnknownSizeDecompressor {
			return []UnknownSizeDecompressor{&unknownSizeDecompressor{tier: tier, decompress: block.DecompressUnknownSize}}
		},
	}
}

// withDecompressor replaces the known-size decompressor of b.
func withDecompressor(b Backend, d Decompressor) Backend {
	b.Decompressors = func() []Decompressor { return []Decompressor{d} }
	return b
}

// withUnknownSize replaces the unknown-size decompressor of b.
func withUnknownSize(b Backend, u UnknownSizeDecompressor) Backend {
	b.UnknownSizeDecompressors = func() []UnknownSizeDecompressor { return []UnknownSizeDecompressor{u} }
	return b
}

// withHigh replaces the high compressor of b.
func withHigh(b Backend, c Compressor) Backend {
	fast := b.Compressors()[0]
	b.Compressors = func() []Compressor { return []Compressor{fast, c} }
	return b
}

type decompressFunc func(dst, src []byte) (int, error)

func (f decompressFunc) Decompress(dst, src []byte) (int, error) { return f(dst, src) }

type compressorFunc func(dst, src []byte) (int, error)

func (f compressorFunc) MaxCompressedLength(n int) int         { return block.MaxCompressedLength(n) }
func (f compressorFunc) Compress(dst, src []byte) (int, error) { return f(dst, src) }

// flipFirstByte decodes correctly and then corrupts the output.
var flipFirstByte = decompressFunc(func(dst, src []byte) (int, error) {
	n, err := block.Decompress(dst, src)
	if len(dst) > 0 {
		dst[0] ^= 0xFF
	}
	return n, err
})

// underWrite reports the right size but leaves the last byte untouched.
var underWrite = decompressFunc(func(dst, src []byte) (int, error) {
	scratch := make([]byte, len(dst))
	n, err := block.DecompressUnknownSize(scratch, src)
	if err != nil {
		return 0, err
	}
	copy(dst[:n-1], scratch[:n-1])
	return n, nil
})

// overReport decodes correctly and claims one extra byte.
var overReport = decompressFunc(func(dst, src []byte) (int, error) {
	n, err := block.DecompressUnknownSize(dst, src)
	return n + 1, err
})

// underConsume decodes correctly and claims one byte less of input.
var underConsume = decompressFunc(func(dst, src []byte) (int, error) {
	n, err := block.Decompress(dst, src)
	return n - 1, err
})

// truncatingHigh stores input as literals and then drops the last byte.
var truncatingHigh = compressorFunc(func(dst, src []byte) (int, error) {
	n, err := block.StoreLiterals(dst, src)
	return n - 1, err
})

var panickingHigh = compressorFunc(func(dst, src []byte) (int, error) {
	panic("index out of range in engine")
})
