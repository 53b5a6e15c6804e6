package lzss

import "encoding/binary"

// WordSink receives one encoded or decoded 32-bit word at a time, in order.
// Implementations may fail silently (see BufferSink for an example that
// tracks overflow instead of returning an error from WriteWord).
type WordSink interface {
	WriteWord(word uint32)
}

// WordSinkFunc adapts a plain function to WordSink.
type WordSinkFunc func(word uint32)

// WriteWord calls f.
func (f WordSinkFunc) WriteWord(word uint32) { f(word) }

// BufferSink is a WordSink backed by a caller-provided, fixed-size word
// buffer. It never grows; once the buffer fills, further writes set
// Overflow and are dropped. This is the Go analogue of the source's
// Simple* bounded-buffer helpers.
type BufferSink struct {
	Words    []uint32
	Overflow bool

	n int
}

// NewBufferSink wraps words as the backing store for a new BufferSink.
func NewBufferSink(words []uint32) *BufferSink {
	return &BufferSink{Words: words}
}

// WriteWord appends word, or sets Overflow if the buffer is full.
func (b *BufferSink) WriteWord(word uint32) {
	if b.n >= len(b.Words) {
		b.Overflow = true
		return
	}

	b.Words[b.n] = word
	b.n++
}

// Len returns the number of words written so far.
func (b *BufferSink) Len() int { return b.n }

// wordsToBytes expands a slice of big-endian 32-bit words into bytes,
// treating the words purely as an opaque byte stream (see the package
// doc's note on byte order).
func wordsToBytes(words []uint32) []byte {
	out := make([]byte, 4*len(words))
	for i, w := range words {
		binary.BigEndian.PutUint32(out[i*4:], w)
	}

	return out
}
