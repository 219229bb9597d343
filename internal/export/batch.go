// Package export renders one or more report files to a chosen output
// format, concurrently and with per-file failure isolation.
package export

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/nao1215/doclens/internal/loader"
	"github.com/nao1215/doclens/internal/report"
	"golang.org/x/sync/errgroup"
)

// Batch renders several report files with a bounded errgroup.
//
// A failed file does not abort the batch: its error is recorded in the
// corresponding Result and the remaining files still render. The error
// return of Run indicates cancellation, not per-file failure.
type Batch struct {
	// format selects the output writer for every file.
	format report.Format

	// version is embedded in JSON output metadata.
	version string

	// outputDir receives one file per input, named after the input with
	// the format's extension. Empty means write to stdout.
	outputDir string

	// concurrency is the maximum number of files rendered at once.
	concurrency int

	// logger is used for batch-level logging.
	logger *slog.Logger

	// stdout is the fallback destination when outputDir is empty.
	// Writes to it are serialized so concurrent renders cannot interleave.
	stdout   io.Writer
	stdoutMu sync.Mutex
}

// Option configures a Batch.
type Option func(*Batch)

// WithConcurrency sets the maximum number of concurrent renders.
// Non-positive values are ignored.
func WithConcurrency(n int) Option {
	return func(b *Batch) {
		if n > 0 {
			b.concurrency = n
		}
	}
}

// WithOutputDir directs output into the given directory, one file per
// input, instead of stdout.
func WithOutputDir(dir string) Option {
	return func(b *Batch) {
		b.outputDir = dir
	}
}

// WithLogger sets a custom logger for batch processing.
func WithLogger(logger *slog.Logger) Option {
	return func(b *Batch) {
		b.logger = logger
	}
}

// WithStdout sets the writer used when no output directory is
// configured. Defaults to os.Stdout; tests substitute a buffer.
func WithStdout(w io.Writer) Option {
	return func(b *Batch) {
		b.stdout = w
	}
}

// NewBatch creates a Batch for the given format.
func NewBatch(format report.Format, version string, opts ...Option) *Batch {
	b := &Batch{
		format:      format,
		version:     version,
		concurrency: 4,
		stdout:      os.Stdout,
	}

	for _, opt := range opts {
		opt(b)
	}

	if b.logger == nil {
		b.logger = slog.Default()
	}

	return b
}

// Result records the outcome for one input file.
type Result struct {
	// Path is the input report file.
	Path string

	// Output is the written destination, or "-" for stdout.
	Output string

	// Err is the load or render failure, nil on success.
	Err error
}

// Run renders all paths and returns one Result per input, in input
// order. The error return is non-nil only when the context was
// cancelled or the output directory could not be created.
func (b *Batch) Run(ctx context.Context, paths []string) ([]Result, error) {
	b.logger.Info("starting export",
		"files", len(paths),
		"format", string(b.format),
		"concurrency", b.concurrency,
	)
	startTime := time.Now()

	if b.outputDir != "" {
		if err := os.MkdirAll(b.outputDir, 0750); err != nil {
			return nil, fmt.Errorf("create output directory: %w", err)
		}
	}

	// Pre-allocated so each goroutine writes its own slot; no mutex needed.
	results := make([]Result, len(paths))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(b.concurrency)

	for i, path := range paths {
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}

			results[i] = b.renderOne(path)
			if results[i].Err != nil {
				b.logger.Warn("export failed",
					"path", path,
					"error", results[i].Err,
				)
			}
			return nil
		})
	}

	err := g.Wait()

	failed := 0
	for _, r := range results {
		if r.Err != nil {
			failed++
		}
	}
	b.logger.Info("export finished",
		"duration", time.Since(startTime),
		"succeeded", len(paths)-failed,
		"failed", failed,
	)

	return results, err
}

// renderOne loads and renders a single report file.
func (b *Batch) renderOne(path string) Result {
	result := Result{Path: path}

	rep, err := loader.Load(path)
	if err != nil {
		result.Err = err
		return result
	}

	if b.outputDir == "" {
		b.stdoutMu.Lock()
		defer b.stdoutMu.Unlock()

		result.Output = "-"
		_, result.Err = report.NewWriter(b.format, b.stdout, b.version).Write(rep)
		return result
	}

	base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	result.Output = filepath.Join(b.outputDir, base+b.format.Extension())

	f, err := os.Create(result.Output) //nolint:gosec // Destination derives from user-provided output dir
	if err != nil {
		result.Err = err
		return result
	}
	defer f.Close() //nolint:errcheck // Write errors surface below

	_, result.Err = report.NewWriter(b.format, f, b.version).Write(rep)
	return result
}
