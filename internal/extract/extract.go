package extract

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/jorge-barreto/unpack/internal/config"
	"github.com/jorge-barreto/unpack/internal/writer"
)

// Report is the outcome of one extraction run.
type Report struct {
	RunID         string    `yaml:"run-id"`
	Started       time.Time `yaml:"started"`
	BaseDir       string    `yaml:"base-dir"`
	DryRun        bool      `yaml:"dry-run,omitempty"`
	Explicit      []string  `yaml:"explicit"`
	AutoDetected  []string  `yaml:"auto-detected"`
	writer.Result `yaml:",inline"`
}

// Total returns the number of files the run considered.
func (r *Report) Total() int {
	return len(r.Explicit) + len(r.AutoDetected)
}

// Save writes the report as YAML.
func (r *Report) Save(path string) error {
	data, err := yaml.Marshal(r)
	if err != nil {
		return err
	}
	return writer.WriteFileAtomic(path, data, 0644)
}

// Extractor runs parse, filter and write for one artifact.
type Extractor struct {
	opts   config.Options
	parser *Parser
	logger *slog.Logger
	// OnFile is forwarded to the writer for progress output.
	OnFile func(path string, status writer.Status, err error)
}

// New creates an Extractor. A nil layout uses config.Default().
func New(opts config.Options, layout *config.Layout, logger *slog.Logger) *Extractor {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if opts.BaseDir == "" {
		opts.BaseDir = "."
	}
	return &Extractor{opts: opts, parser: NewParser(layout, logger), logger: logger}
}

// Plan parses and filters artifact without writing anything.
func (e *Extractor) Plan(artifact string) (*Parsed, error) {
	parsed, err := e.parser.Parse(artifact)
	if err != nil {
		return nil, err
	}
	files, err := Filter(parsed.Files, e.opts.Include, e.opts.Exclude)
	if err != nil {
		return nil, err
	}
	if len(files) != len(parsed.Files) {
		e.logger.Debug("filtered files", "before", len(parsed.Files), "after", len(files))
		explicit, auto := Classify(files, strings.ReplaceAll(artifact, "\r\n", "\n"))
		parsed = &Parsed{Files: files, Explicit: explicit, AutoDetected: auto}
	}
	return parsed, nil
}

// Write materializes a plan and returns the run report.
func (e *Extractor) Write(ctx context.Context, parsed *Parsed) *Report {
	rep := &Report{
		RunID:        uuid.NewString(),
		Started:      time.Now(),
		BaseDir:      e.opts.BaseDir,
		DryRun:       e.opts.DryRun,
		Explicit:     parsed.Explicit,
		AutoDetected: parsed.AutoDetected,
	}
	w := writer.New(writer.Options{
		BaseDir: e.opts.BaseDir,
		Force:   e.opts.Force,
		DryRun:  e.opts.DryRun,
		OnFile:  e.OnFile,
	})
	rep.Result = *w.WriteAll(ctx, parsed.Files)
	e.logger.Debug("extraction finished", "run_id", rep.RunID,
		"written", len(rep.Written), "skipped", len(rep.Skipped), "failed", len(rep.Failed))
	return rep
}

// Run parses artifact and writes every file it contains.
func (e *Extractor) Run(ctx context.Context, artifact string) (*Report, error) {
	parsed, err := e.Plan(artifact)
	if err != nil {
		return nil, fmt.Errorf("parsing artifact: %w", err)
	}
	return e.Write(ctx, parsed), nil
}
