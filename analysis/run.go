package analysis

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"slices"
	"strings"
	"time"

	"github.com/sourcegraph/conc/pool"

	"github.com/arxeiss/deadflow/config"
	"github.com/arxeiss/deadflow/console"
	"github.com/arxeiss/deadflow/fsutil"
	"github.com/arxeiss/deadflow/lint"
)

type (
	// Runner specify all configuration for finding unused types under a root directory.
	Runner struct {
		writer    io.Writer
		errWriter io.Writer

		root   string
		fs     fsutil.FS
		logger *slog.Logger

		// Config holds the marker, file selection and concurrency settings.
		Config *config.Config

		// DebugFlag turns on more verbose output.
		DebugFlag bool
		// JSONFlag turns on JSON output.
		JSONFlag bool
		// ColorFlag turns on colorized text output.
		ColorFlag bool
		// ProgressFlag shows a spinner on errWriter while scanning, if it is a terminal.
		ProgressFlag bool
	}
)

// New creates runner for analysis of all candidate files under root.
func New(writer, errWriter io.Writer, root string) *Runner {
	return &Runner{
		writer:    writer,
		errWriter: errWriter,
		root:      root,
		fs:        fsutil.NewFS(),
		Config:    config.Default(),
	}
}

// WithFS replaces the file system the runner reads from.
func (r *Runner) WithFS(fsys fsutil.FS) *Runner {
	r.fs = fsys
	return r
}

func (r *Runner) log() *slog.Logger {
	if r.logger == nil {
		r.logger = newLogger(r.errWriter, r.DebugFlag)
	}
	return r.logger
}

func (r *Runner) filter() fsutil.Filter {
	return fsutil.Filter{
		Extensions: r.Config.Extensions,
		Exclude:    r.Config.Exclude,
	}
}

// Run the analysis and prints out unused types.
func (r *Runner) Run(ctx context.Context) error {
	files, err := r.Lint(ctx)
	if err != nil {
		return err
	}

	if r.JSONFlag {
		return r.printJSON(files)
	}
	r.printText(files)
	return nil
}

// Lint discovers and lints all candidate files. It returns the files having at
// least one unused type, sorted by path. Any read failure aborts the whole run.
func (r *Runner) Lint(ctx context.Context) ([]*File, error) {
	if r.root == "" {
		return nil, fmt.Errorf("no path provided")
	}
	if err := r.Config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	logger := r.log()
	logger.Debug("Start scanning root", "root", r.root)

	spin := console.NewSpinner(r.errWriter, "Scanning "+r.root, r.ProgressFlag)
	spin.Start()
	defer spin.Stop()

	paths, err := fsutil.FindFiles(r.fs, r.root, r.filter())
	if err != nil {
		return nil, err
	}
	logger.Debug("Discovered candidate files", "count", len(paths))
	spin.UpdateMessage(fmt.Sprintf("Linting %d files", len(paths)))

	timeStart := time.Now()
	linter := lint.New(r.Config.Marker)
	p := pool.NewWithResults[*File]().
		WithContext(ctx).
		WithCancelOnError().
		WithFirstError().
		WithMaxGoroutines(r.Config.Workers())
	for _, path := range paths {
		p.Go(func(ctx context.Context) (*File, error) {
			return r.lintFile(ctx, logger, linter, path)
		})
	}
	results, err := p.Wait()
	if err != nil {
		return nil, fmt.Errorf("failed to lint files: %w", err)
	}
	logger.Debug("Linting finished", "duration", time.Since(timeStart))

	files := make([]*File, 0, len(results))
	for _, f := range results {
		if len(f.Types) > 0 {
			files = append(files, f)
		}
	}
	slices.SortFunc(files, func(a, b *File) int {
		return strings.Compare(a.Path, b.Path)
	})
	return files, nil
}

func (r *Runner) lintFile(ctx context.Context, logger *slog.Logger, linter *lint.Linter, path string) (*File, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	content, err := r.fs.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read '%s': %w", path, err)
	}

	findings := linter.Lint(string(content))
	logger.Debug("Linted file", "path", path, "unused", len(findings))
	return newFile(path, findings), nil
}
