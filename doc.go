/*
Package lzss implements the streaming LZSS compressor and decompressor
used by the 3DO SDK's compression tool, word-for-word compatible with its
wire format: a sliding 4096-byte window, 18-byte look-ahead phrases, and a
bitstream of literal bytes and back-references packed MSB-first into
32-bit big-endian words.

Both Encoder and Decoder are resumable. Feed may be called any number of
times with any amount of input, including none, and picks up exactly
where the previous call left off; there is no requirement to hold an
entire stream in memory at once. Output is delivered incrementally to a
WordSink as soon as each word is ready, rather than buffered and returned
in bulk.

# Examples

Compress a stream incrementally, collecting output into a slice:

	var out []uint32
	enc, err := lzss.NewEncoder(lzss.WordSinkFunc(func(w uint32) {
		out = append(out, w)
	}))
	if err != nil {
		return err
	}
	if err := enc.Feed(chunk1); err != nil {
		return err
	}
	if err := enc.Feed(chunk2); err != nil {
		return err
	}
	if err := enc.Close(); err != nil {
		return err
	}

Decompress a stream the same way, detecting truncation:

	var out []uint32
	dec, err := lzss.NewDecoder(lzss.WordSinkFunc(func(w uint32) {
		out = append(out, w)
	}))
	if err != nil {
		return err
	}
	if err := dec.Feed(compressed); err != nil {
		return err
	}
	if err := dec.Close(); err != nil {
		// err is ErrDataMissing if compressed was truncated, or
		// ErrDataRemains if the end-of-stream token arrived early.
		return err
	}

Round-trip in one call, bounded by a fixed-size output buffer:

	dst := make([]uint32, len(data))
	n, err := lzss.SimpleCompress(data, dst)
	if err != nil {
		return err
	}
	compressed := dst[:n]

	back := make([]uint32, len(data))
	n, err = lzss.SimpleDecompress(compressed, back)
	if err != nil {
		return err
	}
	// back[:n] equals data
*/
package lzss
