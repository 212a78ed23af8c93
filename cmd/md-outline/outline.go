package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/Sriram-PR/md-outline/pkg/config"
	applog "github.com/Sriram-PR/md-outline/pkg/log"
	"github.com/Sriram-PR/md-outline/pkg/outline"
	"github.com/Sriram-PR/md-outline/pkg/token"
	"github.com/Sriram-PR/md-outline/pkg/tokenize"
	"github.com/Sriram-PR/md-outline/pkg/utils"
)

// fileOutline is the per-input result emitted by the outline subcommand.
type fileOutline struct {
	File    string            `json:"file"`
	Headers []*outline.Header `json:"headers"`
}

// runOutline handles the outline subcommand
func runOutline(args []string) {
	fs := flag.NewFlagSet("outline", flag.ExitOnError)
	configFile := fs.String("config", "", "Path to config file (optional)")
	tokensMode := fs.Bool("tokens", false, "Treat inputs as tokenizer JSON instead of markdown")
	levels := fs.String("levels", "", "Comma-separated heading levels to capture (overrides config)")
	outDir := fs.String("o", "", "Output directory (one JSON file per input; default stdout)")
	workers := fs.Int("workers", 4, "Number of files processed concurrently")
	logLevel := fs.String("loglevel", "info", "Log level (debug, info, warn, error, fatal)")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: md-outline outline [options] <file>...\n\nOptions:\n")
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  md-outline outline docs/guide.md\n")
		fmt.Fprintf(os.Stderr, "  md-outline outline -tokens page.tokens.json\n")
		fmt.Fprintf(os.Stderr, "  md-outline outline -levels 2,3,4 -o build/outlines docs/*.md\n")
	}

	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}
	if fs.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "Error: at least one input file is required")
		fs.Usage()
		os.Exit(1)
	}

	os.Exit(doOutline(*configFile, *levels, *tokensMode, *outDir, *workers, *logLevel, fs.Args(), os.Stdout, os.Stderr))
}

// doOutline is the testable implementation of the outline subcommand.
// Returns exit code (0 = success, 1 = error).
func doOutline(configPath, levelsFlag string, tokensMode bool, outDir string, workers int, logLevel string, files []string, stdout, stderr io.Writer) int {
	log := applog.Setup(logLevel, stderr)

	cfg := &config.OutlineConfig{}
	if configPath != "" {
		loaded, err := config.Load(configPath)
		if err != nil {
			log.Errorf("Error loading config: %v", err)
			return 1
		}
		cfg = loaded
	}

	warnings, err := cfg.Validate()
	for _, w := range warnings {
		log.Warn(w)
	}
	if err != nil {
		log.Errorf("Invalid config: %v", err)
		return 1
	}

	opts := cfg.Options()
	if levelsFlag != "" {
		parsed, err := parseLevels(levelsFlag)
		if err != nil {
			log.Errorf("Invalid -levels value: %v", err)
			return 1
		}
		opts.Levels = parsed
	}

	if workers < 1 {
		workers = 1
	}

	results := make([]fileOutline, len(files))
	var g errgroup.Group
	g.SetLimit(workers)

	for i, file := range files {
		i, file := i, file
		g.Go(func() error {
			headers, err := resolveFile(file, tokensMode, opts)
			if err != nil {
				log.WithField("category", utils.CategorizeError(err)).Errorf("Failed to process '%s': %v", file, err)
				return err
			}
			log.Debugf("Resolved %d top-level headers from '%s'", len(headers), file)
			results[i] = fileOutline{File: file, Headers: headers}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return 1
	}

	if outDir != "" {
		return writeOutlines(outDir, results, log)
	}

	enc := json.NewEncoder(stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(results); err != nil {
		log.Errorf("Failed to encode results: %v", err)
		return 1
	}
	return 0
}

// resolveFile reads one input and resolves its outline. In tokens mode the
// input is the tokenizer's serialized token stream; otherwise it is markdown
// handed to the in-process tokenizer.
func resolveFile(path string, tokensMode bool, opts outline.Options) ([]*outline.Header, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: read '%s': %w", utils.ErrFilesystem, path, err)
	}

	if tokensMode {
		var tokens []token.Token
		if err := json.Unmarshal(data, &tokens); err != nil {
			return nil, fmt.Errorf("%w: decode '%s': %w", utils.ErrTokenJSON, path, err)
		}
		return outline.Build(tokens, opts), nil
	}
	return tokenize.Outline(data, opts), nil
}

// writeOutlines writes one JSON file per input into outDir.
func writeOutlines(outDir string, results []fileOutline, log *logrus.Logger) int {
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		log.Errorf("Failed to create output directory: %v", err)
		return 1
	}
	for _, result := range results {
		base := strings.TrimSuffix(filepath.Base(result.File), filepath.Ext(result.File))
		outPath := filepath.Join(outDir, base+".outline.json")

		data, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			log.Errorf("Failed to encode '%s': %v", result.File, err)
			return 1
		}
		if err := os.WriteFile(outPath, append(data, '\n'), 0o644); err != nil {
			log.Errorf("Failed to write '%s': %v", outPath, err)
			return 1
		}
		log.Infof("Wrote %s", outPath)
	}
	return 0
}

// parseLevels parses a comma-separated list of heading levels.
func parseLevels(s string) ([]int, error) {
	var levels []int
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		level, err := strconv.Atoi(part)
		if err != nil || level < 1 || level > 6 {
			return nil, fmt.Errorf("'%s' is not a heading level in 1..6", part)
		}
		levels = append(levels, level)
	}
	if len(levels) == 0 {
		return nil, fmt.Errorf("no levels given")
	}
	return levels, nil
}
