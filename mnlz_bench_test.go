package mnlz

import (
	"bytes"
	"fmt"
	"testing"
)

var benchInput = bytes.Repeat([]byte("Lorem ipsum dolor sit amet, consectetur adipiscing elit. "), 64)

func BenchmarkCompress(b *testing.B) {
	data := benchInput
	b.ReportAllocs()
	b.SetBytes(int64(len(data)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = Compress(data)
	}
}

func BenchmarkCompressSizes(b *testing.B) {
	sizes := []int{512, 1024, 2048, len(benchInput)}
	for _, size := range sizes {
		data := benchInput[:size]
		b.Run(fmt.Sprintf("Size=%d", size), func(b *testing.B) {
			b.ReportAllocs()
			b.SetBytes(int64(size))
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				_, _ = Compress(data)
			}
		})
	}
}

func BenchmarkDecompress(b *testing.B) {
	data := benchInput
	enc, err := Compress(data)
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.SetBytes(int64(len(data)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = Decompress(enc, false)
	}
}

func BenchmarkDecompressStrict(b *testing.B) {
	data := benchInput
	enc, err := Compress(data)
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.SetBytes(int64(len(data)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = Decompress(enc, true)
	}
}
