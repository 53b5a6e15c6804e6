// Command 3ct is the 3DO Compression Tool: a thin driver around the lzss
// package's streaming Encoder and Decoder, plus a self-test subcommand.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"sort"
)

// cliCommand mirrors the dispatch-table shape used for multi-subcommand
// flag parsing: a flag.FlagSet owning that subcommand's options, and the
// function that runs once it has parsed args.
type cliCommand struct {
	fn       func(args []string, log *slog.Logger) error
	flagset  *flag.FlagSet
	argsdesc string
	desc     string
}

func printUsage(commands map[string]cliCommand) {
	fmt.Println()
	fmt.Println("Usage: 3ct <command> [arguments]")
	fmt.Println("Commands available:")

	names := make([]string, 0, len(commands))
	for name := range commands {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		cmd := commands[name]
		fmt.Printf("    %-12s %-16s %s\n", name, cmd.argsdesc, cmd.desc)
	}
}

func main() {
	compressFlags := flag.NewFlagSet("compress", flag.ExitOnError)
	decompressFlags := flag.NewFlagSet("decompress", flag.ExitOnError)
	checkFlags := flag.NewFlagSet("check", flag.ExitOnError)

	verbose := map[string]*bool{
		"compress":   compressFlags.Bool("v", false, "verbose (debug-level) logging"),
		"decompress": decompressFlags.Bool("v", false, "verbose (debug-level) logging"),
		"check":      checkFlags.Bool("v", false, "verbose (debug-level) logging"),
	}
	quiet := map[string]*bool{
		"compress":   compressFlags.Bool("q", false, "quiet (error-level only) logging"),
		"decompress": decompressFlags.Bool("q", false, "quiet (error-level only) logging"),
		"check":      checkFlags.Bool("q", false, "quiet (error-level only) logging"),
	}

	commands := map[string]cliCommand{
		"compress":   {runCompress, compressFlags, "<in> [out]", "compress input file"},
		"decompress": {runDecompress, decompressFlags, "<in> [out]", "decompress input file"},
		"check":      {runCheck, checkFlags, "", "run an in-process encode/decode self-test"},
	}

	if len(os.Args) < 2 {
		fmt.Println("error: expected a command")
		printUsage(commands)
		os.Exit(1)
	}

	name := os.Args[1]
	cmd, ok := commands[name]
	if !ok {
		fmt.Printf("error: unknown command %q\n", name)
		printUsage(commands)
		os.Exit(1)
	}

	if err := cmd.flagset.Parse(os.Args[2:]); err != nil {
		os.Exit(1)
	}

	level := slog.LevelInfo
	if *verbose[name] {
		level = slog.LevelDebug
	}
	if *quiet[name] {
		level = slog.LevelError
	}
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	if err := cmd.fn(cmd.flagset.Args(), log); err != nil {
		log.Error(err.Error())
		os.Exit(1)
	}
}
