package main

import (
	"fmt"
	"io"
	"os"

	"github.com/Sriram-PR/md-outline/pkg/slug"
)

const version = "0.3.1"

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "outline":
		runOutline(os.Args[2:])
	case "guard":
		runGuard(os.Args[2:])
	case "slug":
		runSlug(os.Args[2:])
	case "validate":
		runValidate(os.Args[2:])
	case "version":
		fmt.Printf("md-outline %s\n", version)
	case "-h", "--help", "help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	printUsageTo(os.Stdout)
}

// printUsageTo writes usage information to the provided writer.
func printUsageTo(w io.Writer) {
	fmt.Fprintln(w, `md-outline - Markdown outline and slug toolkit

Usage:
  md-outline <command> [options]

Commands:
  outline     Resolve document outlines from markdown or token JSON
  guard       Protect reserved identifiers from bundler substitution
  slug        Slugify title arguments
  validate    Validate configuration file
  version     Show version info

Run 'md-outline <command> -h' for command-specific help.`)
}

// runSlug handles the slug subcommand
func runSlug(args []string) {
	if len(args) == 0 {
		fmt.Fprintln(os.Stderr, "Error: at least one title argument is required")
		os.Exit(1)
	}
	doSlug(args, os.Stdout)
}

// doSlug prints the slug of each title, one per line.
func doSlug(titles []string, stdout io.Writer) {
	for _, title := range titles {
		fmt.Fprintln(stdout, slug.Slugify(title))
	}
}
