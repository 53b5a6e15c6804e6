package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/3dolib/lzss"
)

func runDecompress(args []string, log *slog.Logger) error {
	if len(args) < 1 {
		return fmt.Errorf("decompress: expected <in> [out]")
	}
	inPath := args[0]
	outPath := defaultOutputPath(inPath, ".decompressed")
	if len(args) > 1 {
		outPath = args[1]
	}

	info, err := os.Stat(inPath)
	if err != nil {
		return err
	}
	if info.Size()%4 != 0 {
		log.Warn("input file is not a multiple of 4 bytes; it may be corrupted or not a 3DO compressed file")
	}

	src, dst, err := openInOut(inPath, outPath)
	if err != nil {
		return err
	}
	defer src.Close()
	defer dst.Close()

	words, partial, err := readWords(src)
	if err != nil {
		return err
	}
	if partial {
		log.Warn("dropped a trailing partial word from input")
	}
	log.Debug("read input", "filepath", inPath, "size_in_words", len(words))

	sink := newFileWordSink(dst)
	dec, err := lzss.NewDecoder(sink)
	if err != nil {
		return err
	}
	if err := dec.Feed(words); err != nil {
		return err
	}
	closeErr := dec.Close()
	if flushErr := sink.Flush(); flushErr != nil {
		return flushErr
	}
	if closeErr != nil {
		return closeErr
	}

	log.Info("decompressed",
		"input", inPath, "input_words", len(words),
		"output", outPath, "output_words", sink.n)

	return nil
}
