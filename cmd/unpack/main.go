package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/jorge-barreto/unpack/internal/config"
	"github.com/jorge-barreto/unpack/internal/docs"
	"github.com/jorge-barreto/unpack/internal/extract"
	"github.com/jorge-barreto/unpack/internal/scaffold"
	"github.com/jorge-barreto/unpack/internal/ux"
	"github.com/jorge-barreto/unpack/internal/writer"
	cli "github.com/urfave/cli/v3"
)

// defaultArtifact is used when neither --input nor piped stdin is given.
// Paste an artifact here to ship a self-contained extractor.
const defaultArtifact = `
// Paste the artifact content here, or run:
//   unpack --input artifact.txt
`

func main() {
	app := &cli.Command{
		Name:        "unpack",
		Usage:       "Extract the files embedded in an artifact into a project tree",
		Description: "Run 'unpack docs' for documentation on the artifact format, detection, and layouts.",
		Flags:       extractFlags(),
		Action:      extractAction,
		Commands: []*cli.Command{
			initCmd(),
			docsCmd(),
		},
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		ux.Error(os.Stderr, err)
		os.Exit(1)
	}
}

func extractFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{Name: "input", Aliases: []string{"i"}, Usage: "Read the artifact from `FILE`"},
		&cli.StringFlag{Name: "base-dir", Aliases: []string{"d"}, Value: ".", Usage: "Write files under `DIR`"},
		&cli.BoolFlag{Name: "force", Aliases: []string{"f"}, Usage: "Overwrite existing files"},
		&cli.BoolFlag{Name: "debug", Usage: "Log detection decisions to stderr"},
		&cli.BoolFlag{Name: "dry-run", Usage: "Show what would be written without writing"},
		&cli.StringFlag{Name: "layout", Usage: "Layout `FILE` for auto-detected paths (default: <base-dir>/" + config.DefaultFile + ")"},
		&cli.StringSliceFlag{Name: "include", Usage: "Only write paths matching `GLOB`"},
		&cli.StringSliceFlag{Name: "exclude", Usage: "Skip paths matching `GLOB`"},
		&cli.StringFlag{Name: "report", Usage: "Save a YAML run report to `FILE`"},
	}
}

func extractAction(ctx context.Context, cmd *cli.Command) error {
	opts := config.Options{
		BaseDir: cmd.String("base-dir"),
		Force:   cmd.Bool("force"),
		Debug:   cmd.Bool("debug"),
		DryRun:  cmd.Bool("dry-run"),
		Include: cmd.StringSlice("include"),
		Exclude: cmd.StringSlice("exclude"),
	}
	logger := newLogger(opts.Debug)

	artifact, source, err := readArtifact(cmd.String("input"), os.Stdin)
	if err != nil {
		return err
	}

	layout, err := loadLayout(cmd.String("layout"), opts.BaseDir)
	if err != nil {
		return err
	}

	ex := extract.New(opts, layout, logger)
	ex.OnFile = func(path string, status writer.Status, err error) {
		switch {
		case status == writer.StatusFailed:
			ux.Failed(path, err)
		case status == writer.StatusSkipped:
			ux.Skipped(path)
		case opts.DryRun:
			ux.WouldCreate(path)
		default:
			ux.Created(path)
		}
	}

	abs, err := filepath.Abs(opts.BaseDir)
	if err != nil {
		abs = opts.BaseDir
	}
	ux.Start(source, abs, opts.DryRun)

	parsed, err := ex.Plan(artifact)
	if err != nil {
		return fmt.Errorf("parsing artifact: %w", err)
	}
	if len(parsed.Files) == 0 {
		return errors.New("no files found in artifact")
	}
	ux.Found(parsed.Explicit, parsed.AutoDetected)

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	rep := ex.Write(ctx, parsed)
	ux.RenderReport(rep)

	if path := cmd.String("report"); path != "" {
		if err := rep.Save(path); err != nil {
			return fmt.Errorf("saving report: %w", err)
		}
	}
	if len(rep.Failed) > 0 {
		return fmt.Errorf("%d of %d files could not be written", len(rep.Failed), rep.Total())
	}
	return ctx.Err()
}

func initCmd() *cli.Command {
	return &cli.Command{
		Name:  "init",
		Usage: "Write the built-in layout to " + config.DefaultFile,
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "dir", Aliases: []string{"d"}, Value: ".", Usage: "Directory to write the layout in"},
			&cli.BoolFlag{Name: "force", Aliases: []string{"f"}, Usage: "Replace an existing layout"},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return scaffold.Init(cmd.String("dir"), cmd.Bool("force"))
		},
	}
}

func docsCmd() *cli.Command {
	return &cli.Command{
		Name:      "docs",
		Usage:     "Show documentation",
		ArgsUsage: "[topic]",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			name := cmd.Args().First()
			if name == "" {
				fmt.Print("\nAvailable topics:\n\n")
				for _, t := range docs.All() {
					fmt.Printf("  %-14s %s\n", t.Name, t.Summary)
				}
				fmt.Println("\nRun 'unpack docs <topic>' to read a topic.")
				return nil
			}
			t, err := docs.Get(name)
			if err != nil {
				return err
			}
			fmt.Print(t.Content)
			return nil
		},
	}
}

// readArtifact returns the artifact text and a description of where it
// came from: the named file, piped stdin, or the embedded default.
func readArtifact(input string, stdin *os.File) (string, string, error) {
	var data []byte
	var source string
	switch {
	case input != "":
		b, err := os.ReadFile(input)
		if err != nil {
			return "", "", fmt.Errorf("reading artifact: %w", err)
		}
		data, source = b, input
	case isPiped(stdin):
		b, err := io.ReadAll(stdin)
		if err != nil {
			return "", "", fmt.Errorf("reading stdin: %w", err)
		}
		data, source = b, "stdin"
	default:
		data, source = []byte(defaultArtifact), "embedded artifact"
	}
	return string(data), source, nil
}

func isPiped(f *os.File) bool {
	if f == nil {
		return false
	}
	info, err := f.Stat()
	if err != nil {
		return false
	}
	return info.Mode()&os.ModeCharDevice == 0
}

// loadLayout reads the layout named by path, falls back to the layout file
// in baseDir, and finally to the built-in layout.
func loadLayout(path, baseDir string) (*config.Layout, error) {
	if path == "" {
		candidate := filepath.Join(baseDir, config.DefaultFile)
		if _, err := os.Stat(candidate); errors.Is(err, fs.ErrNotExist) {
			return config.Default(), nil
		}
		path = candidate
	}
	l, err := config.Load(path)
	if err != nil {
		return nil, fmt.Errorf("loading layout: %w", err)
	}
	return l, nil
}

func newLogger(debug bool) *slog.Logger {
	level := slog.LevelWarn
	if debug {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}
