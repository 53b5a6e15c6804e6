package lzss

// Encoder streams one or more chunks of input through the LZSS codec and
// hands the compressed output, one 32-bit word at a time, to a WordSink.
// It is resumable: Feed may be called any number of times with input of
// any size, including zero, and suspends cleanly whenever it runs out of
// bytes mid-phrase.
//
// An Encoder is only ever used by a single goroutine; there is no internal
// synchronization.
type Encoder struct {
	sink   WordSink
	window [WindowSize]byte
	tree   matchTree
	bw     bitWriter

	lookAhead  int
	currentPos uint32
	matchLen   int
	matchPos   uint32
	replaceCnt int

	filling bool
	closed  bool
}

// NewEncoder creates an Encoder that writes its compressed output to sink.
func NewEncoder(sink WordSink) (*Encoder, error) {
	if sink == nil {
		return nil, ErrBadPointer
	}

	e := &Encoder{
		sink:      sink,
		bw:        newBitWriter(sink),
		lookAhead: 1,
		filling:   true,
	}
	e.tree.window = &e.window
	e.currentPos = 1

	// Seed the tree with a single root so insertAndFindBest/delete always have a
	// node to compare against.
	e.tree.nodes[TreeRoot].right = 1
	e.tree.nodes[1].parent = TreeRoot

	return e, nil
}

// Feed consumes words as an opaque byte stream and advances the encoder.
// It returns as soon as the supplied bytes run out; calling Feed again
// with more data resumes exactly where it left off.
func (e *Encoder) Feed(words []uint32) error {
	if e == nil || e.closed {
		return ErrBadPointer
	}

	return e.feedBytes(wordsToBytes(words))
}

func (e *Encoder) feedBytes(data []byte) error {
	di := 0
	next := func() (byte, bool) {
		if di >= len(data) {
			return 0, false
		}
		b := data[di]
		di++
		return b, true
	}

	if e.filling {
		for e.lookAhead <= LookAheadSize {
			b, ok := next()
			if !ok {
				return nil
			}
			e.window[e.lookAhead] = b
			e.lookAhead++
		}
		e.lookAhead--
		e.filling = false
	}

	for {
		if e.replaceCnt == 0 {
			e.emitToken()
		}

		for e.replaceCnt > 0 {
			// Deleting twice (once before a suspension, once again on
			// resume) is harmless: matchTree.delete is a no-op on an
			// already-detached node, so there is no need to track which
			// half of this iteration already ran.
			e.tree.delete(modWindow(e.currentPos + LookAheadSize))

			b, ok := next()
			if !ok {
				return nil
			}

			e.window[modWindow(e.currentPos+LookAheadSize)] = b
			e.currentPos = modWindow(e.currentPos + 1)
			e.replaceCnt--

			if e.lookAhead != 0 {
				e.matchLen, e.matchPos = e.tree.insertAndFindBest(e.currentPos)
			}
		}
	}
}

// emitToken clamps the current match to the available look-ahead and
// writes either a literal or a back-reference token, setting replaceCnt
// to the number of window bytes the token will slide past.
func (e *Encoder) emitToken() {
	if e.matchLen > e.lookAhead {
		e.matchLen = e.lookAhead
	}

	if e.matchLen <= BreakEven {
		e.bw.write(1, uint32(e.window[e.currentPos]), 8)
		e.replaceCnt = 1
	} else {
		code := (e.matchPos << LengthBits) | uint32(e.matchLen-(BreakEven+1))
		e.bw.write(0, code, IndexBits+LengthBits)
		e.replaceCnt = e.matchLen
	}
}

// flush drains the remaining look-ahead without any new input, per the
// same token-choice logic as feedBytes's main loop, decreasing lookAhead
// by one per byte slid out instead of reading a replacement byte.
func (e *Encoder) flush() {
	for e.lookAhead >= 0 {
		if e.replaceCnt == 0 {
			e.emitToken()
		}

		for ; e.replaceCnt > 0; e.replaceCnt-- {
			e.tree.delete(modWindow(e.currentPos + LookAheadSize))
			e.lookAhead--
			e.currentPos = modWindow(e.currentPos + 1)

			if e.lookAhead > 0 {
				e.matchLen, e.matchPos = e.tree.insertAndFindBest(e.currentPos)
			}
		}
	}
}

// Close flushes any buffered look-ahead, writes the end-of-stream
// terminator, and flushes the bit writer's final partial word. An Encoder
// must not be used again after Close; doing so returns ErrBadPointer.
func (e *Encoder) Close() error {
	if e == nil || e.closed {
		return ErrBadPointer
	}

	e.closed = true
	e.flush()
	e.bw.write(0, EndOfStream, IndexBits)
	e.bw.close()

	return nil
}
