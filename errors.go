package lzss

import "errors"

// Package errors, exhaustive for the codec surface. Use errors.Is against
// these sentinels; DataRemains/DataMissing carry no extra context since the
// decoder already reports progress via the sink before it returns.
var (
	// ErrBadPointer is returned for a nil or already-closed Encoder/Decoder,
	// or when NewEncoder/NewDecoder is called with a nil sink.
	ErrBadPointer = errors.New("lzss: invalid or reused instance handle")
	// ErrNoMemory names the self-allocation failure kind of the error set;
	// no function in this package returns it.
	ErrNoMemory = errors.New("lzss: self-allocation failed")
	// ErrOverflow is returned by SimpleCompress and SimpleDecompress when
	// their BufferSink ran out of room and set its Overflow flag.
	ErrOverflow = errors.New("lzss: sink buffer exhausted")
	// ErrDataRemains is returned by Decoder.Close when the end-of-stream
	// token was seen but more words were still pending.
	ErrDataRemains = errors.New("lzss: trailing words after end-of-stream token")
	// ErrDataMissing is returned by Decoder.Close when the input ran out
	// partway through a token, before an end-of-stream token was read.
	ErrDataMissing = errors.New("lzss: input exhausted before end-of-stream token")
)
