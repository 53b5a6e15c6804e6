package lzss

import (
	"bytes"
	"fmt"
	"testing"
)

func benchWords(n int) []uint32 {
	text := bytes.Repeat([]byte("Lorem ipsum dolor sit amet, consectetur adipiscing elit. "), n)
	words := make([]uint32, len(text)/4)
	for i := range words {
		words[i] = uint32(text[i*4])<<24 | uint32(text[i*4+1])<<16 | uint32(text[i*4+2])<<8 | uint32(text[i*4+3])
	}
	return words
}

var benchInput = benchWords(512)

func BenchmarkEncoder(b *testing.B) {
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		enc, _ := NewEncoder(WordSinkFunc(func(uint32) {}))
		_ = enc.Feed(benchInput)
		_ = enc.Close()
	}
}

func BenchmarkEncoderChunkSizes(b *testing.B) {
	sizes := []int{1, 16, 256, 4096}
	for _, chunk := range sizes {
		chunk := chunk
		b.Run(fmt.Sprintf("chunk=%d", chunk), func(b *testing.B) {
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				enc, _ := NewEncoder(WordSinkFunc(func(uint32) {}))
				for off := 0; off < len(benchInput); off += chunk {
					end := off + chunk
					if end > len(benchInput) {
						end = len(benchInput)
					}
					_ = enc.Feed(benchInput[off:end])
				}
				_ = enc.Close()
			}
		})
	}
}

func BenchmarkDecoder(b *testing.B) {
	compressed := encodeAll(benchInput)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		dec, _ := NewDecoder(WordSinkFunc(func(uint32) {}))
		_ = dec.Feed(compressed)
		_ = dec.Close()
	}
}

func BenchmarkSimpleCompress(b *testing.B) {
	dst := make([]uint32, len(benchInput)+1)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = SimpleCompress(benchInput, dst)
	}
}
