package lzss

import "testing"

func collectWords(f func(sink WordSink)) []uint32 {
	var words []uint32
	f(WordSinkFunc(func(w uint32) { words = append(words, w) }))
	return words
}

func TestBitWriterPacksMSBFirst(t *testing.T) {
	words := collectWords(func(sink WordSink) {
		bw := newBitWriter(sink)
		bw.write(1, 0x41, 8) // tag=1, literal 'A'
		bw.write(0, 0, 12)   // tag=0, zero offset (no length field): terminator shape
		bw.close()
	})

	if len(words) != 1 {
		t.Fatalf("want 1 word, got %d: %#v", len(words), words)
	}

	// 1 'A'(8 bits) 0 000000000000(12 bits) then 10 bits of zero padding.
	want := uint32(1)<<31 | uint32(0x41)<<23
	if words[0] != want {
		t.Fatalf("got %#08x, want %#08x", words[0], want)
	}
}

func TestBitWriterStraddlesWordBoundary(t *testing.T) {
	words := collectWords(func(sink WordSink) {
		bw := newBitWriter(sink)
		for i := 0; i < 3; i++ {
			bw.write(0, 0xFFF, 12) // 13 bits each, 3 times = 39 bits > 32
		}
		bw.close()
	})

	if len(words) != 2 {
		t.Fatalf("want 2 words, got %d", len(words))
	}

	r := bitReader{}
	r.feed(words)
	for i := 0; i < 3; i++ {
		if tag := r.read(1); tag != 0 {
			t.Fatalf("field %d: tag = %d, want 0", i, tag)
		}
		if v := r.read(12); v != 0xFFF {
			t.Fatalf("field %d: value = %#x, want 0xfff", i, v)
		}
	}
}

func TestBitWriterEmptyCloseEmitsNothing(t *testing.T) {
	words := collectWords(func(sink WordSink) {
		bw := newBitWriter(sink)
		bw.close()
	})
	if len(words) != 0 {
		t.Fatalf("want no words, got %d", len(words))
	}
}

func TestBitReaderUnderflowIsSticky(t *testing.T) {
	var r bitReader
	r.feed([]uint32{0x80000000})

	if v := r.read(1); v != 1 {
		t.Fatalf("first read = %d, want 1", v)
	}

	// 31 bits remain, but we try to read 32 more: must underflow.
	if v := r.read(32); v != 0 {
		t.Fatalf("underflow read = %d, want 0", v)
	}
	if !r.err {
		t.Fatal("expected sticky error flag to be set")
	}
	if v := r.read(1); v != 0 {
		t.Fatalf("post-underflow read = %d, want 0", v)
	}
}

func TestBitReaderRemainingTracksConsumedWords(t *testing.T) {
	var r bitReader
	r.feed([]uint32{1, 2, 3})
	if n := r.remaining(); n != 3 {
		t.Fatalf("remaining = %d, want 3", n)
	}
	r.read(32)
	if n := r.remaining(); n != 2 {
		t.Fatalf("remaining = %d, want 2", n)
	}
}
