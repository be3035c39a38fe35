package extract

import (
	"errors"
	"io"
	"log/slog"
	"sort"
	"strings"

	"github.com/jorge-barreto/unpack/internal/config"
	"github.com/jorge-barreto/unpack/internal/detect"
	"github.com/jorge-barreto/unpack/internal/fileblocks"
)

// ErrEmptyArtifact is returned when the artifact holds only whitespace.
var ErrEmptyArtifact = errors.New("artifact is empty")

// Parsed is the reconciled content of one artifact.
type Parsed struct {
	Files        map[string]string // path -> content
	Explicit     []string          // sorted paths whose marker appears in the artifact
	AutoDetected []string          // sorted paths found only by detection
}

// Parser turns an artifact into files.
type Parser struct {
	detector *detect.Detector
	logger   *slog.Logger
}

// NewParser creates a Parser using layout for auto-detected paths.
func NewParser(layout *config.Layout, logger *slog.Logger) *Parser {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Parser{detector: detect.New(layout, logger), logger: logger}
}

// Parse runs every extractor over artifact and reconciles their output.
func (p *Parser) Parse(artifact string) (*Parsed, error) {
	text := strings.ReplaceAll(artifact, "\r\n", "\n")
	if strings.TrimSpace(text) == "" {
		return nil, ErrEmptyArtifact
	}

	detected := p.detector.Detect(text)
	marked := fileblocks.Segment(text)
	project := fileblocks.ExtractProjectFiles(text)
	p.logger.Debug("parsed artifact",
		"auto_detected", len(detected), "marked", len(marked), "project", len(project))

	files := Merge(detected, marked, project)
	explicit, auto := Classify(files, text)
	return &Parsed{Files: files, Explicit: explicit, AutoDetected: auto}, nil
}

// Merge layers results so that marker-anchored files win: detected blocks
// first, then marker segments, then project files. Within a layer the last
// entry for a path wins.
func Merge(detected []detect.Block, marked, project []fileblocks.FileBlock) map[string]string {
	files := make(map[string]string, len(detected)+len(marked)+len(project))
	for _, b := range detected {
		files[b.Path] = b.Text
	}
	for _, fb := range marked {
		files[fb.Path] = fb.Content
	}
	for _, fb := range project {
		files[fb.Path] = fb.Content
	}
	return files
}

// Classify splits paths by whether their literal marker appears in text.
// It only drives reporting; it never changes content.
func Classify(files map[string]string, text string) (explicit, auto []string) {
	for p := range files {
		if strings.Contains(text, fileblocks.Marker(p)) {
			explicit = append(explicit, p)
		} else {
			auto = append(auto, p)
		}
	}
	sort.Strings(explicit)
	sort.Strings(auto)
	return explicit, auto
}

// SourceOf reports how path was found.
func (pr *Parsed) SourceOf(path string) fileblocks.Source {
	i := sort.SearchStrings(pr.Explicit, path)
	if i < len(pr.Explicit) && pr.Explicit[i] == path {
		return fileblocks.SourceExplicit
	}
	return fileblocks.SourceAutoDetected
}
