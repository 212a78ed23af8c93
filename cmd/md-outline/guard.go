package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/Sriram-PR/md-outline/pkg/config"
	"github.com/Sriram-PR/md-outline/pkg/guard"
)

// runGuard handles the guard subcommand
func runGuard(args []string) {
	fs := flag.NewFlagSet("guard", flag.ExitOnError)
	configFile := fs.String("config", "", "Path to config file with defines (optional)")
	outFile := fs.String("o", "", "Output file (default stdout)")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: md-outline guard [options] <file>

Insert zero-width markers into reserved identifiers (import.meta, process.env
and configured define keys) so a bundler's static substitution pass leaves
them alone. Use '-' to read from stdin.

Options:
`)
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}
	if fs.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: exactly one input file is required")
		fs.Usage()
		os.Exit(1)
	}

	os.Exit(doGuard(*configFile, *outFile, fs.Arg(0), os.Stdin, os.Stdout, os.Stderr))
}

// doGuard is the testable implementation of the guard subcommand.
// Returns exit code (0 = success, 1 = error).
func doGuard(configPath, outPath, inPath string, stdin io.Reader, stdout, stderr io.Writer) int {
	var defines map[string]any
	if configPath != "" {
		cfg, err := config.Load(configPath)
		if err != nil {
			fmt.Fprintf(stderr, "Error loading config: %v\n", err)
			return 1
		}
		defines = cfg.Defines
	}

	var data []byte
	var err error
	if inPath == "-" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(inPath)
	}
	if err != nil {
		fmt.Fprintf(stderr, "Error reading input: %v\n", err)
		return 1
	}

	guarded := guard.Constants(string(data), defines)

	if outPath == "" {
		fmt.Fprint(stdout, guarded)
		return 0
	}
	if err := os.WriteFile(outPath, []byte(guarded), 0o644); err != nil {
		fmt.Fprintf(stderr, "Error writing '%s': %v\n", outPath, err)
		return 1
	}
	return 0
}
