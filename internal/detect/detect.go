package detect

import (
	"io"
	"log/slog"
	"regexp"
	"strings"

	"github.com/jorge-barreto/unpack/internal/cleaner"
	"github.com/jorge-barreto/unpack/internal/config"
	"github.com/jorge-barreto/unpack/internal/fileblocks"
)

// Block is a run of artifact lines considered as one candidate file.
type Block struct {
	Line   int    // 1-based artifact line the block starts on
	Text   string // raw text, or cleaned content once Path is set
	Path   string
	Source fileblocks.Source
}

// boundaryRe matches using/namespace directives that start a new block,
// optionally followed by a line comment. Statement forms such as
// "using (var x = ...)" or "using var x = ..." do not match.
var boundaryRe = regexp.MustCompile(`^\s*(?:using\s+(?:static\s+)?[\w.]+(?:\s*=\s*[\w.<>, ]+)?\s*;|namespace\s+[\w.]+\s*[{;]?)\s*(?://.*)?$`)

// sourcePrefixes are the leading tokens of a block's first substantive line
// that mark it as source code.
var sourcePrefixes = []string{"using ", "namespace ", "[", "public ", "internal ", "private "}

// Detector finds source files that carry no explicit marker.
type Detector struct {
	layout *config.Layout
	logger *slog.Logger
}

// New creates a Detector. A nil layout uses config.Default(); a nil logger
// discards diagnostics.
func New(layout *config.Layout, logger *slog.Logger) *Detector {
	if layout == nil {
		layout = config.Default()
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Detector{layout: layout, logger: logger}
}

// Detect returns every block of text that looks like a source file and
// yields a path. Blocks headed by a "// File:" marker belong to the marker
// segmenter and are not returned. Text must use LF line endings.
func (d *Detector) Detect(text string) []Block {
	candidates := Split(text)
	d.logger.Debug("auto-detect: split artifact", "blocks", len(candidates))

	var found []Block
	for i, b := range candidates {
		if strings.TrimSpace(b.Text) == "" {
			continue
		}
		log := d.logger.With("block", i+1, "line", b.Line, "head", firstLine(b.Text))
		if p, ok := headerMarker(b.Text); ok {
			log.Debug("auto-detect: skipped, explicit marker", "path", p)
			continue
		}
		if !IsSource(b.Text) {
			log.Debug("auto-detect: skipped, not source")
			continue
		}
		sig := Scan(b.Text, d.layout)
		p, ok := InferPath(d.layout, sig)
		if !ok {
			log.Debug("auto-detect: discarded, no name", "namespace", sig.Namespace)
			continue
		}
		content := cleaner.Clean(p, b.Text)
		if content == "" {
			continue
		}
		log.Debug("auto-detect: found file", "path", p, "namespace", sig.Namespace, "entity", sig.Entity)
		b.Path = p
		b.Text = content
		b.Source = fileblocks.SourceAutoDetected
		found = append(found, b)
	}

	d.logger.Debug("auto-detect: done", "files", len(found))
	return found
}

// Split cuts text before each using/namespace directive and each marker
// line. Directives that follow one another, blank lines aside, stay in the
// same block, and so do comment lines leading into a block's first code.
func Split(text string) []Block {
	lines := strings.Split(text, "\n")
	var blocks []Block
	start := 0
	hasCode := false
	prevDirective := false
	inMarked := false

	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		_, marker := fileblocks.MarkerPath(trimmed)
		directive := boundaryRe.MatchString(line)
		if hasCode && (marker || (directive && !prevDirective && !inMarked)) {
			blocks = append(blocks, Block{Line: start + 1, Text: strings.Join(lines[start:i], "\n")})
			start = i
			hasCode = false
		}
		switch {
		case marker:
			inMarked = true
		case strings.HasPrefix(trimmed, cleaner.SeparatorPrefix):
			inMarked = false
		}
		if !isComment(trimmed) {
			hasCode = true
		}
		prevDirective = directive
	}
	if start < len(lines) {
		blocks = append(blocks, Block{Line: start + 1, Text: strings.Join(lines[start:], "\n")})
	}
	return blocks
}

// headerMarker returns the marker path found among the comment lines that
// precede block's first code line.
func headerMarker(block string) (string, bool) {
	for _, line := range strings.Split(block, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		if p, ok := fileblocks.MarkerPath(trimmed); ok {
			return p, true
		}
		if !isComment(trimmed) {
			break
		}
	}
	return "", false
}

// IsSource reports whether the first line of block that is neither blank
// nor a comment opens like source code.
func IsSource(block string) bool {
	for _, line := range strings.Split(block, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || isComment(trimmed) {
			continue
		}
		for _, p := range sourcePrefixes {
			if strings.HasPrefix(trimmed, p) {
				return true
			}
		}
		return false
	}
	return false
}

func isComment(trimmed string) bool {
	return strings.HasPrefix(trimmed, "//") || strings.HasPrefix(trimmed, "/*") || strings.HasPrefix(trimmed, "*")
}

func firstLine(s string) string {
	s = strings.TrimSpace(s)
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = s[:i]
	}
	if len(s) > 60 {
		s = s[:57] + "..."
	}
	return s
}
