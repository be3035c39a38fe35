package ux

import (
	"fmt"

	"github.com/jorge-barreto/unpack/internal/extract"
)

// RenderReport prints the end-of-run summary.
func RenderReport(rep *extract.Report) {
	fmt.Fprintln(Out, dim.Sprint(rule))
	fmt.Fprintf(Out, "%s\n", bold.Sprint("Results:"))

	verb := "Created"
	if rep.DryRun {
		verb = "Would create"
	}
	fmt.Fprintf(Out, "  %s %d files\n", green.Sprint(verb+":"), len(rep.Written))
	fmt.Fprintf(Out, "  %s %d files\n", yellow.Sprint("Skipped:"), len(rep.Skipped))
	if len(rep.Failed) > 0 {
		fmt.Fprintf(Out, "  %s %d files\n", red.Sprint("Failed:"), len(rep.Failed))
	}
	if len(rep.AutoDetected) > 0 {
		fmt.Fprintf(Out, "  %s %d files\n", cyan.Sprint("Auto-detected:"), len(rep.AutoDetected))
	}

	if len(rep.Skipped) > 0 {
		fmt.Fprintf(Out, "\n%s %s\n", bold.Sprint("Skipped:"), summarize(rep.Skipped))
		fmt.Fprintf(Out, "%s\n", dim.Sprint("Tip: use --force to overwrite existing files"))
	}
	if len(rep.AutoDetected) > 0 {
		fmt.Fprintf(Out, "\n%s %s\n", bold.Sprint("Auto-detected:"), summarize(rep.AutoDetected))
		fmt.Fprintf(Out, "%s\n", dim.Sprint("Detection follows using/namespace declarations; add a \"// File: <path>\" marker if a path is wrong."))
	}
	fmt.Fprintf(Out, "\n%s %s\n", dim.Sprint("Run:"), rep.RunID)
}
