package block

import (
	"bytes"
	"errors"
	"math/rand"
	"testing"

	"github.com/pierrec/lz4/v4"
)

type codecFunc func(dst, src []byte) (int, error)

type testEngine struct {
	name       string
	fast       codecFunc
	high       codecFunc
	decompress codecFunc
	unknown    codecFunc
}

func testEngines(t testing.TB) []testEngine {
	engines := []testEngine{
		{name: "safe", fast: CompressFast, high: CompressHigh, decompress: Decompress, unknown: DecompressUnknownSize},
	}
	if UnsafeSupported() {
		engines = append(engines, testEngine{
			name: "unsafe", fast: CompressFastUnsafe, high: CompressHighUnsafe,
			decompress: DecompressUnsafe, unknown: DecompressUnknownSizeUnsafe,
		})
	} else {
		t.Logf("unsafe engine not supported on this platform")
	}

	return engines
}

func (e testEngine) compressors() map[string]codecFunc {
	return map[string]codecFunc{"fast": e.fast, "high": e.high}
}

func testInputSet() []struct {
	name string
	data []byte
} {
	random := make([]byte, 70000)
	rand.New(rand.NewSource(1)).Read(random)

	far := append(append(append([]byte{}, random[:1000]...), bytes.Repeat([]byte{'x'}, 64000)...), random[:1000]...)

	return []struct {
		name string
		data []byte
	}{
		{name: "nil", data: nil},
		{name: "empty", data: []byte{}},
		{name: "single-byte", data: []byte{0xAB}},
		{name: "twelve-bytes", data: []byte("abcdabcdabcd")},
		{name: "vector", data: []byte("abcd      abcdefghij")},
		{name: "short-text", data: []byte("hello world, lz4 test")},
		{name: "repeated-pattern", data: bytes.Repeat([]byte("abc123"), 2000)},
		{name: "long-run", data: bytes.Repeat([]byte{0xFF}, 12000)},
		{name: "byte-cycle", data: bytes.Repeat([]byte{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}, 1200)},
		{name: "random", data: random},
		{name: "far-repeat", data: far},
	}
}

func TestRoundTrip_AllEnginesAndVariants(t *testing.T) {
	for _, engine := range testEngines(t) {
		for variant, compress := range engine.compressors() {
			for _, in := range testInputSet() {
				t.Run(engine.name+"/"+variant+"/"+in.name, func(t *testing.T) {
					bound := MaxCompressedLength(len(in.data))
					compressed := make([]byte, bound)
					n, err := compress(compressed, in.data)
					if err != nil {
						t.Fatalf("compress failed: %v", err)
					}
					if n < 1 || n > bound {
						t.Fatalf("compressed size %d outside [1, %d]", n, bound)
					}
					compressed = compressed[:n]

					restored := make([]byte, len(in.data))
					consumed, err := engine.decompress(restored, compressed)
					if err != nil {
						t.Fatalf("known-size decompress failed: %v", err)
					}
					if consumed != n {
						t.Fatalf("consumed=%d want=%d", consumed, n)
					}
					if !bytes.Equal(restored, in.data) {
						t.Fatal("known-size round-trip mismatch")
					}

					unknown := bytes.Repeat([]byte{0xA5}, len(in.data))
					written, err := engine.unknown(unknown, compressed)
					if err != nil {
						t.Fatalf("unknown-size decompress failed: %v", err)
					}
					if written != len(in.data) {
						t.Fatalf("written=%d want=%d", written, len(in.data))
					}
					if !bytes.Equal(unknown, in.data) {
						t.Fatal("unknown-size round-trip mismatch")
					}
				})
			}
		}
	}
}

func TestRoundTrip_CrossEngine(t *testing.T) {
	engines := testEngines(t)
	data := bytes.Repeat([]byte("cross-engine payload 0123456789"), 700)

	for _, from := range engines {
		for variant, compress := range from.compressors() {
			compressed := make([]byte, MaxCompressedLength(len(data)))
			n, err := compress(compressed, data)
			if err != nil {
				t.Fatalf("%s/%s compress failed: %v", from.name, variant, err)
			}

			for _, to := range engines {
				out := make([]byte, len(data))
				if _, err := to.decompress(out, compressed[:n]); err != nil {
					t.Fatalf("%s/%s -> %s decompress failed: %v", from.name, variant, to.name, err)
				}
				if !bytes.Equal(out, data) {
					t.Fatalf("%s/%s -> %s mismatch", from.name, variant, to.name)
				}
			}
		}
	}
}

func TestCompatibility_Pierrec(t *testing.T) {
	for _, engine := range testEngines(t) {
		for variant, compress := range engine.compressors() {
			for _, in := range testInputSet() {
				if len(in.data) == 0 {
					continue
				}

				t.Run(engine.name+"/"+variant+"/"+in.name, func(t *testing.T) {
					compressed := make([]byte, MaxCompressedLength(len(in.data)))
					n, err := compress(compressed, in.data)
					if err != nil {
						t.Fatalf("compress failed: %v", err)
					}

					out := make([]byte, len(in.data))
					written, err := lz4.UncompressBlock(compressed[:n], out)
					if err != nil {
						t.Fatalf("pierrec UncompressBlock failed: %v", err)
					}
					if written != len(in.data) || !bytes.Equal(out, in.data) {
						t.Fatalf("pierrec decode mismatch: written=%d want=%d", written, len(in.data))
					}

					reference := make([]byte, lz4.CompressBlockBound(len(in.data)))
					refLen, err := lz4.CompressBlock(in.data, reference, nil)
					if err != nil {
						t.Fatalf("pierrec CompressBlock failed: %v", err)
					}
					if refLen == 0 {
						t.Skip("pierrec reported incompressible input")
					}

					restored := make([]byte, len(in.data))
					consumed, err := engine.decompress(restored, reference[:refLen])
					if err != nil {
						t.Fatalf("decompress of pierrec block failed: %v", err)
					}
					if consumed != refLen || !bytes.Equal(restored, in.data) {
						t.Fatalf("pierrec block mismatch: consumed=%d want=%d", consumed, refLen)
					}
				})
			}
		}
	}
}

func TestCompress_InsufficientOutputSpace(t *testing.T) {
	data := bytes.Repeat([]byte("0123456789abcdef"), 256)

	for _, engine := range testEngines(t) {
		for variant, compress := range engine.compressors() {
			_, err := compress(make([]byte, 8), data)
			if !errors.Is(err, ErrInsufficientOutputSpace) {
				t.Fatalf("%s/%s: expected ErrInsufficientOutputSpace, got %v", engine.name, variant, err)
			}

			_, err = compress(nil, nil)
			if !errors.Is(err, ErrInsufficientOutputSpace) {
				t.Fatalf("%s/%s: expected ErrInsufficientOutputSpace for empty dst, got %v", engine.name, variant, err)
			}
		}
	}
}

func TestCompress_HighIsNotLargerOnRepetitiveInput(t *testing.T) {
	data := bytes.Repeat([]byte("the quick brown fox jumps over the lazy dog. "), 400)

	fast := make([]byte, MaxCompressedLength(len(data)))
	fastLen, err := CompressFast(fast, data)
	if err != nil {
		t.Fatalf("CompressFast failed: %v", err)
	}

	high := make([]byte, MaxCompressedLength(len(data)))
	highLen, err := CompressHigh(high, data)
	if err != nil {
		t.Fatalf("CompressHigh failed: %v", err)
	}

	if highLen > fastLen {
		t.Fatalf("high=%d should not exceed fast=%d", highLen, fastLen)
	}
}

func TestCompress_EmptyInputIsSingleToken(t *testing.T) {
	for _, engine := range testEngines(t) {
		for variant, compress := range engine.compressors() {
			dst := make([]byte, MaxCompressedLength(0))
			n, err := compress(dst, nil)
			if err != nil {
				t.Fatalf("%s/%s: %v", engine.name, variant, err)
			}
			if n != 1 || dst[0] != 0 {
				t.Fatalf("%s/%s: got % x", engine.name, variant, dst[:n])
			}
		}
	}
}

func TestMaxCompressedLength(t *testing.T) {
	cases := []struct {
		in   int
		want int
	}{
		{in: -1, want: 0},
		{in: 0, want: 16},
		{in: 20, want: 36},
		{in: 255, want: 272},
		{in: MaxInputSize + 1, want: 0},
	}

	for _, tc := range cases {
		if got := MaxCompressedLength(tc.in); got != tc.want {
			t.Fatalf("MaxCompressedLength(%d)=%d want=%d", tc.in, got, tc.want)
		}
	}

	if MaxCompressedLength(1000) != lz4.CompressBlockBound(1000) {
		t.Fatal("bound should match pierrec CompressBlockBound")
	}
}

func TestStoreLiterals(t *testing.T) {
	data := bytes.Repeat([]byte{7}, 300)
	dst := make([]byte, MaxCompressedLength(len(data)))

	n, err := StoreLiterals(dst, data)
	if err != nil {
		t.Fatalf("StoreLiterals failed: %v", err)
	}

	out := make([]byte, len(data))
	if _, err := Decompress(out, dst[:n]); err != nil {
		t.Fatalf("Decompress failed: %v", err)
	}
	if !bytes.Equal(out, data) {
		t.Fatal("literal block mismatch")
	}
}
