package main

import (
	"fmt"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/nao1215/doclens/internal/config"
	"github.com/nao1215/doclens/internal/loader"
	"github.com/nao1215/doclens/internal/log"
	"github.com/nao1215/doclens/internal/tui"
	"github.com/spf13/cobra"
)

// NewViewCmd creates the view command.
func NewViewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "view [report-file]",
		Short: "Open the interactive dashboard",
		Long: `View opens the analysis report in an interactive full-screen dashboard.

The report path defaults to ` + config.DefaultReportPath + `;
JSON and YAML report files are supported. If the file is missing or
malformed the session halts with an error instead of rendering a
partial dashboard.

Examples:
  # Open the default report location
  doclens view

  # Open a specific report with a dark theme
  doclens view --theme dark reports/analysis.json`,
		Args: cobra.MaximumNArgs(1),
		RunE: runViewCmd,
	}

	cmd.Flags().StringP("theme", "t", "", "Dashboard theme: auto, light, or dark")

	return cmd
}

// runViewCmd executes the view command.
func runViewCmd(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, args)
	if err != nil {
		return err
	}

	logger, deferred := log.NewLogger(os.Stderr, cfg.Verbose)
	slog.SetDefault(logger)

	// Load failure is terminal: no partial dashboard is shown.
	report, err := loader.Load(cfg.ReportPath)
	if err != nil {
		return err
	}
	slog.Debug("report loaded",
		"path", cfg.ReportPath,
		"documents", report.Documents.Len(),
		"practices", report.Compliance.Len(),
	)

	styles := tui.NewStyles(tui.ThemeFromName(cfg.Theme))

	// Buffer log output while the alternate screen is active.
	deferred.Defer()
	_, runErr := tea.NewProgram(tui.New(report, styles), tea.WithAltScreen()).Run()
	flushErr := deferred.Flush(cmd.Context())

	if runErr != nil {
		return fmt.Errorf("dashboard terminated: %w", runErr)
	}
	return flushErr
}

// resolveConfig builds the runtime configuration from persistent flags,
// positional arguments, and the optional configuration file.
func resolveConfig(cmd *cobra.Command, args []string) (*config.Config, error) {
	cfg := config.NewConfig()
	cfg.Verbose = getBoolFlag(cmd, "verbose")
	cfg.ConfigFilePath = getStringFlag(cmd, "config")

	if theme := getStringFlag(cmd, "theme"); theme != "" {
		cfg.Theme = theme
	}

	if len(args) > 0 {
		cfg.ReportPath = args[0]
	}

	if err := cfg.Resolve(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// getBoolFlag retrieves a bool flag from the command or its root.
// Missing flags default to false so subcommands work standalone in tests.
func getBoolFlag(cmd *cobra.Command, name string) bool {
	value, err := cmd.Flags().GetBool(name)
	if err != nil {
		value, err = cmd.Root().PersistentFlags().GetBool(name)
		if err != nil {
			return false
		}
	}
	return value
}

// getStringFlag retrieves a string flag from the command or its root.
// Missing flags default to empty.
func getStringFlag(cmd *cobra.Command, name string) string {
	value, err := cmd.Flags().GetString(name)
	if err != nil {
		value, err = cmd.Root().PersistentFlags().GetString(name)
		if err != nil {
			return ""
		}
	}
	return value
}
