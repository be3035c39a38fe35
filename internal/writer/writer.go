package writer

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/jorge-barreto/unpack/internal/cleaner"
)

// ErrPathInvalid is returned for paths that are absolute or leave the base
// directory.
var ErrPathInvalid = errors.New("path escapes base directory")

// Status is the outcome of writing one file.
type Status string

const (
	StatusWritten Status = "written"
	StatusSkipped Status = "skipped"
	StatusFailed  Status = "failed"
)

// Failure records a file that could not be written.
type Failure struct {
	Path  string `yaml:"path"`
	Error string `yaml:"error"`
}

// Result lists the outcome of every file handed to WriteAll.
type Result struct {
	Written []string  `yaml:"written"`
	Skipped []string  `yaml:"skipped"`
	Failed  []Failure `yaml:"failed"`
}

// Options configures a Writer.
type Options struct {
	BaseDir string
	Force   bool // overwrite existing files
	DryRun  bool // decide outcomes without touching disk
	// OnFile, when set, is called after each file is handled.
	OnFile func(path string, status Status, err error)
}

// Writer materializes extracted files under a base directory.
type Writer struct {
	opts Options
}

// New creates a Writer. An empty BaseDir means the current directory.
func New(opts Options) *Writer {
	if opts.BaseDir == "" {
		opts.BaseDir = "."
	}
	return &Writer{opts: opts}
}

// WriteAll writes files in path order. Per-file failures are recorded in the
// result and never stop the run; a cancelled ctx stops before the next file.
func (w *Writer) WriteAll(ctx context.Context, files map[string]string) *Result {
	paths := make([]string, 0, len(files))
	for p := range files {
		paths = append(paths, p)
	}
	sort.Strings(paths)

	res := &Result{}
	for _, p := range paths {
		if ctx.Err() != nil {
			break
		}
		written, err := w.Write(p, files[p])
		status := StatusWritten
		switch {
		case err != nil:
			status = StatusFailed
			res.Failed = append(res.Failed, Failure{Path: p, Error: err.Error()})
		case !written:
			status = StatusSkipped
			res.Skipped = append(res.Skipped, p)
		default:
			res.Written = append(res.Written, p)
		}
		if w.opts.OnFile != nil {
			w.opts.OnFile(p, status, err)
		}
	}
	return res
}

// Write cleans content for rel and writes it under the base directory.
// It returns false without error when the target exists and Force is off.
func (w *Writer) Write(rel, content string) (bool, error) {
	dest, err := w.mapPath(rel)
	if err != nil {
		return false, err
	}

	info, err := os.Stat(dest)
	switch {
	case err == nil && info.IsDir():
		return false, fmt.Errorf("%s is a directory", rel)
	case err == nil && !w.opts.Force:
		return false, nil
	case err != nil && !errors.Is(err, fs.ErrNotExist):
		return false, err
	}

	if w.opts.DryRun {
		return true, nil
	}

	if err := os.MkdirAll(filepath.Dir(dest), 0755); err != nil {
		return false, fmt.Errorf("creating directory for %s: %w", rel, err)
	}
	data := strings.ReplaceAll(cleaner.Clean(rel, content), "\r\n", "\n")
	if err := WriteFileAtomic(dest, []byte(data), 0644); err != nil {
		return false, fmt.Errorf("writing %s: %w", rel, err)
	}
	return true, nil
}

// mapPath joins rel onto the base directory, rejecting absolute paths,
// volume names and parent escapes.
func (w *Writer) mapPath(rel string) (string, error) {
	clean := filepath.Clean(filepath.FromSlash(rel))
	if clean == "." || clean == "" || filepath.IsAbs(clean) || filepath.VolumeName(clean) != "" {
		return "", fmt.Errorf("%q: %w", rel, ErrPathInvalid)
	}
	if clean == ".." || strings.HasPrefix(clean, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("%q: %w", rel, ErrPathInvalid)
	}
	return filepath.Join(w.opts.BaseDir, clean), nil
}
