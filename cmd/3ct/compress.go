package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/3dolib/lzss"
)

func runCompress(args []string, log *slog.Logger) error {
	if len(args) < 1 {
		return fmt.Errorf("compress: expected <in> [out]")
	}
	inPath := args[0]
	outPath := defaultOutputPath(inPath, ".compressed")
	if len(args) > 1 {
		outPath = args[1]
	}

	info, err := os.Stat(inPath)
	if err != nil {
		return err
	}
	if info.Size()%4 != 0 {
		log.Warn("input file is not a multiple of 4 bytes; the trailing partial word is not compressed")
	}

	src, dst, err := openInOut(inPath, outPath)
	if err != nil {
		return err
	}
	defer src.Close()
	defer dst.Close()

	words, _, err := readWords(src)
	if err != nil {
		return err
	}
	log.Debug("read input", "filepath", inPath, "size_in_words", len(words))

	sink := newFileWordSink(dst)
	enc, err := lzss.NewEncoder(sink)
	if err != nil {
		return err
	}
	if err := enc.Feed(words); err != nil {
		return err
	}
	if err := enc.Close(); err != nil {
		return err
	}
	if err := sink.Flush(); err != nil {
		return err
	}

	log.Info("compressed",
		"input", inPath, "input_words", len(words),
		"output", outPath, "output_words", sink.n)

	return nil
}
