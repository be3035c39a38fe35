package ux

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/fatih/color"

	"github.com/jorge-barreto/unpack/internal/extract"
	"github.com/jorge-barreto/unpack/internal/writer"
)

func capture(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prevOut, prevNoColor := Out, color.NoColor
	Out, color.NoColor = &buf, true
	t.Cleanup(func() { Out, color.NoColor = prevOut, prevNoColor })
	return &buf
}

func TestFound_ListsBothKinds(t *testing.T) {
	buf := capture(t)
	Found([]string{"a.cs"}, []string{"src/B.cs", "src/C.cs"})
	out := buf.String()
	for _, want := range []string{"Found 3 files", "Explicit (1):", "✓ a.cs", "Auto-detected (2):", "~ src/C.cs"} {
		if !strings.Contains(out, want) {
			t.Fatalf("output missing %q:\n%s", want, out)
		}
	}
}

func TestFileLines(t *testing.T) {
	buf := capture(t)
	Created("a.cs")
	Skipped("b.cs")
	Failed("c.cs", errors.New("disk full"))
	WouldCreate("d.cs")
	out := buf.String()
	for _, want := range []string{"✓ created a.cs", "⚠ exists b.cs", "✗ failed c.cs: disk full", "+ would create d.cs"} {
		if !strings.Contains(out, want) {
			t.Fatalf("output missing %q:\n%s", want, out)
		}
	}
}

func TestRenderReport(t *testing.T) {
	buf := capture(t)
	RenderReport(&extract.Report{
		RunID:        "run-1",
		AutoDetected: []string{"src/X.cs"},
		Result: writer.Result{
			Written: []string{"src/X.cs"},
			Skipped: []string{"a.txt"},
			Failed:  []writer.Failure{{Path: "b.txt", Error: "boom"}},
		},
	})
	out := buf.String()
	for _, want := range []string{"Created: 1 files", "Skipped: 1 files", "Failed: 1 files", "Auto-detected: 1 files", "--force", "Run: run-1"} {
		if !strings.Contains(out, want) {
			t.Fatalf("output missing %q:\n%s", want, out)
		}
	}
}

func TestRenderReport_DryRun(t *testing.T) {
	buf := capture(t)
	RenderReport(&extract.Report{DryRun: true, Result: writer.Result{Written: []string{"a"}}})
	if !strings.Contains(buf.String(), "Would create: 1 files") {
		t.Fatalf("unexpected output:\n%s", buf.String())
	}
	if strings.Contains(buf.String(), "Failed:") {
		t.Fatalf("unexpected failure line:\n%s", buf.String())
	}
}
