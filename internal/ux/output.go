package ux

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

// Out receives all console output. Tests swap it for a buffer.
var Out io.Writer = color.Output

var (
	bold   = color.New(color.Bold)
	dim    = color.New(color.Faint)
	red    = color.New(color.FgRed, color.Bold)
	green  = color.New(color.FgGreen)
	yellow = color.New(color.FgYellow)
	cyan   = color.New(color.FgCyan)
)

const rule = "════════════════════════════════════════════════════════════"

// Start prints the run header.
func Start(source, baseDir string, dryRun bool) {
	fmt.Fprintf(Out, "%s %s\n", cyan.Sprint("→ Reading"), source)
	mode := ""
	if dryRun {
		mode = yellow.Sprint(" (dry run)")
	}
	fmt.Fprintf(Out, "%s %s%s\n", cyan.Sprint("→ Extracting to"), baseDir, mode)
	fmt.Fprintln(Out, dim.Sprint(rule))
}

// Found lists the files about to be written, split by how they were found.
func Found(explicit, auto []string) {
	fmt.Fprintf(Out, "%s\n", bold.Sprintf("Found %d files", len(explicit)+len(auto)))
	if len(explicit) > 0 {
		fmt.Fprintf(Out, "  Explicit (%d):\n", len(explicit))
		for _, p := range explicit {
			fmt.Fprintf(Out, "    %s %s\n", green.Sprint("✓"), p)
		}
	}
	if len(auto) > 0 {
		fmt.Fprintf(Out, "  Auto-detected (%d):\n", len(auto))
		for _, p := range auto {
			fmt.Fprintf(Out, "    %s %s\n", cyan.Sprint("~"), p)
		}
	}
	fmt.Fprintln(Out)
}

// Created prints a written file.
func Created(path string) {
	fmt.Fprintf(Out, "  %s %s\n", green.Sprint("✓ created"), path)
}

// WouldCreate prints a file a dry run would write.
func WouldCreate(path string) {
	fmt.Fprintf(Out, "  %s %s\n", cyan.Sprint("+ would create"), path)
}

// Skipped prints a file left untouched because it exists.
func Skipped(path string) {
	fmt.Fprintf(Out, "  %s %s %s\n", yellow.Sprint("⚠ exists"), path, dim.Sprint("(use --force to overwrite)"))
}

// Failed prints a file that could not be written.
func Failed(path string, err error) {
	fmt.Fprintf(Out, "  %s %s: %v\n", red.Sprint("✗ failed"), path, err)
}

// Error prints a fatal error to w.
func Error(w io.Writer, err error) {
	fmt.Fprintf(w, "%s %v\n", red.Sprint("error:"), err)
}

func summarize(items []string) string {
	if len(items) == 0 {
		return dim.Sprint("(none)")
	}
	return strings.Join(items, ", ")
}
