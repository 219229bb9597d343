package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/nao1215/doclens/internal/export"
	"github.com/nao1215/doclens/internal/log"
	"github.com/nao1215/doclens/internal/report"
	"github.com/spf13/cobra"
)

// ErrExportFailed is returned when at least one report file could not
// be exported. Per-file errors are printed as they occur; this sentinel
// makes the command exit non-zero.
var ErrExportFailed = errors.New("one or more reports failed to export")

// NewExportCmd creates the export command.
func NewExportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export [report-file...]",
		Short: "Render reports to text, JSON, or markdown",
		Long: `Export renders one or more analysis report files without the
interactive dashboard. Multiple files render concurrently; a failed
file is reported and skipped without aborting the batch.

With --output, each input produces one file in the output directory,
named after the input with the format's extension. Without it, output
goes to stdout.

Examples:
  # Render the default report location as text to stdout
  doclens export

  # Render several reports as markdown into ./out
  doclens export --format markdown --output out reports/*.json`,
		RunE: runExportCmd,
	}

	cmd.Flags().StringP("format", "f", "", "Output format: text, json, or markdown")
	cmd.Flags().StringP("output", "o", "", "Directory to write rendered files into")
	cmd.Flags().IntP("concurrency", "n", 0, "Maximum concurrent renders (default from config)")

	return cmd
}

// runExportCmd executes the export command.
func runExportCmd(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, nil)
	if err != nil {
		return err
	}

	if format, err := cmd.Flags().GetString("format"); err == nil && format != "" {
		cfg.Format = format
	}
	if output, err := cmd.Flags().GetString("output"); err == nil && output != "" {
		cfg.OutputDir = output
	}
	if concurrency, err := cmd.Flags().GetInt("concurrency"); err == nil && concurrency > 0 {
		cfg.Concurrency = concurrency
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	format, err := report.ParseFormat(cfg.Format)
	if err != nil {
		return err
	}

	logger, _ := log.NewLogger(os.Stderr, cfg.Verbose)
	slog.SetDefault(logger)

	paths := args
	if len(paths) == 0 {
		paths = []string{cfg.ReportPath}
	}

	batch := export.NewBatch(format, getVersion(),
		export.WithConcurrency(cfg.Concurrency),
		export.WithOutputDir(cfg.OutputDir),
		export.WithLogger(logger),
		export.WithStdout(cmd.OutOrStdout()),
	)

	results, err := batch.Run(cmd.Context(), paths)
	if err != nil {
		return err
	}

	failed := 0
	for _, result := range results {
		if result.Err != nil {
			failed++
			fmt.Fprintf(cmd.ErrOrStderr(), "export %s: %v\n", result.Path, result.Err)
			continue
		}
		if result.Output != "-" {
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", result.Output)
		}
	}
	if failed > 0 {
		return fmt.Errorf("%w (%d of %d)", ErrExportFailed, failed, len(results))
	}

	return nil
}
