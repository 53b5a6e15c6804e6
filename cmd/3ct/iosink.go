package main

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"os"
)

// fileWordSink adapts an io.Writer to lzss.WordSink, writing each word as
// four big-endian bytes, matching the on-wire byte order the codec
// itself already normalizes to at the sink boundary.
type fileWordSink struct {
	w   *bufio.Writer
	n   int
	err error
}

func newFileWordSink(w io.Writer) *fileWordSink {
	return &fileWordSink{w: bufio.NewWriter(w)}
}

func (s *fileWordSink) WriteWord(word uint32) {
	if s.err != nil {
		return
	}
	var buf [4]byte
	binary.BigEndian.PutUint32(buf[:], word)
	if _, err := s.w.Write(buf[:]); err != nil {
		s.err = err
		return
	}
	s.n++
}

func (s *fileWordSink) Flush() error {
	if s.err != nil {
		return s.err
	}
	return s.w.Flush()
}

// readWords reads whole 32-bit big-endian words from r, ignoring any
// trailing bytes that do not make up a full word, and reports whether a
// partial word was dropped.
func readWords(r io.Reader) (words []uint32, partial bool, err error) {
	buf := make([]byte, 4)
	for {
		n, err := io.ReadFull(r, buf)
		if err == io.EOF {
			return words, false, nil
		}
		if err == io.ErrUnexpectedEOF {
			return words, n > 0, nil
		}
		if err != nil {
			return words, false, err
		}
		words = append(words, binary.BigEndian.Uint32(buf))
	}
}

// defaultOutputPath appends suffix to in, the same rule the original
// tool uses when no explicit output path is given.
func defaultOutputPath(in, suffix string) string {
	return in + suffix
}

func openInOut(inPath, outPath string) (*os.File, *os.File, error) {
	src, err := os.Open(inPath)
	if err != nil {
		return nil, nil, fmt.Errorf("open %s: %w", inPath, err)
	}

	dst, err := os.Create(outPath)
	if err != nil {
		src.Close()
		return nil, nil, fmt.Errorf("create %s: %w", outPath, err)
	}

	return src, dst, nil
}
