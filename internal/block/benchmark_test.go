package block

import (
	"bytes"
	"testing"
)

func benchmarkInputSets() map[string][]byte {
	return map[string][]byte{
		"small-text-4k":   bytes.Repeat([]byte("lz4 benchmark text payload "), 160),
		"pattern-128k":    bytes.Repeat([]byte("ABCDEF0123456789"), 8192),
		"byte-cycle-256k": bytes.Repeat([]byte{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}, 26214),
	}
}

func BenchmarkCompress(b *testing.B) {
	for _, engine := range testEngines(b) {
		for variant, compress := range engine.compressors() {
			for inputName, inputData := range benchmarkInputSets() {
				b.Run(engine.name+"/"+variant+"/"+inputName, func(b *testing.B) {
					dst := make([]byte, MaxCompressedLength(len(inputData)))
					b.ReportAllocs()
					b.SetBytes(int64(len(inputData)))
					b.ResetTimer()

					for i := 0; i < b.N; i++ {
						if _, err := compress(dst, inputData); err != nil {
							b.Fatalf("compress failed: %v", err)
						}
					}
				})
			}
		}
	}
}

func BenchmarkDecompress(b *testing.B) {
	for _, engine := range testEngines(b) {
		for inputName, inputData := range benchmarkInputSets() {
			compressed := make([]byte, MaxCompressedLength(len(inputData)))
			n, err := CompressHigh(compressed, inputData)
			if err != nil {
				b.Fatalf("setup CompressHigh failed for %s: %v", inputName, err)
			}
			compressed = compressed[:n]

			b.Run(engine.name+"/"+inputName, func(b *testing.B) {
				dst := make([]byte, len(inputData))
				b.ReportAllocs()
				b.SetBytes(int64(len(inputData)))
				b.ResetTimer()

				for i := 0; i < b.N; i++ {
					if _, err := engine.decompress(dst, compressed); err != nil {
						b.Fatalf("decompress failed: %v", err)
					}
				}
			})
		}
	}
}
