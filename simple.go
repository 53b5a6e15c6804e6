package lzss

// SimpleCompress runs src through a fresh Encoder in one shot and returns
// the compressed words written into dst. It returns ErrOverflow if dst is
// too small to hold the whole compressed stream.
//
// This is the one-call convenience form; streamed callers that want to
// feed input incrementally should use NewEncoder and WordSink directly.
func SimpleCompress(src []uint32, dst []uint32) (int, error) {
	sink := NewBufferSink(dst)

	enc, err := NewEncoder(sink)
	if err != nil {
		return 0, err
	}

	if err := enc.Feed(src); err != nil {
		return 0, err
	}

	if err := enc.Close(); err != nil {
		return 0, err
	}

	if sink.Overflow {
		return 0, ErrOverflow
	}

	return sink.Len(), nil
}

// SimpleDecompress runs src through a fresh Decoder in one shot and
// returns the decompressed words written into dst. It returns
// ErrOverflow if dst is too small, ErrDataMissing if src is truncated, and
// ErrDataRemains if the end-of-stream token appears before src is
// exhausted.
func SimpleDecompress(src []uint32, dst []uint32) (int, error) {
	sink := NewBufferSink(dst)

	dec, err := NewDecoder(sink)
	if err != nil {
		return 0, err
	}

	if err := dec.Feed(src); err != nil {
		return 0, err
	}

	if err := dec.Close(); err != nil {
		return 0, err
	}

	if sink.Overflow {
		return 0, ErrOverflow
	}

	return sink.Len(), nil
}
