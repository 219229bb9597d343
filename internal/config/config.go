// Package config holds the runtime configuration for doclens.
//
// Configuration is populated from CLI flags and an optional YAML file,
// then passed through the application via dependency injection rather
// than global state.
package config

import (
	"path/filepath"

	"github.com/adrg/xdg"
)

// Default configuration values.
const (
	// AppName is the application name used for XDG directory paths.
	AppName = "doclens"

	// DefaultReportPath is where the upstream analyzer writes its output.
	// The dashboard reads this fixed relative path when no path argument
	// is given.
	DefaultReportPath = "data/cross_document_analysis_data.json"

	// DefaultFormat is the export format when --format is not given.
	DefaultFormat = "text"

	// DefaultTheme selects terminal colors for the dashboard.
	// "auto" detects dark or light from the terminal background.
	DefaultTheme = "auto"

	// DefaultConcurrency bounds parallel file rendering during batch
	// export. Rendering is CPU-light, so a small bound is enough; the
	// limit mostly caps open file handles.
	DefaultConcurrency = 4

	// ConfigFileName is the configuration file searched in the current
	// directory before falling back to the XDG config directory.
	ConfigFileName = ".doclens.yml"
)

// Config holds all configuration options for doclens.
//
// Design decision: a single flat struct instead of nested sub-structs.
// The number of options is small, and nesting would add complexity
// without benefit.
type Config struct {
	// ReportPath is the analysis report file to load.
	ReportPath string

	// Format is the export output format: text, json, or markdown.
	Format string

	// OutputDir receives exported files during batch export.
	// Empty means write to stdout.
	OutputDir string

	// Theme selects dashboard colors: auto, light, or dark.
	Theme string

	// Concurrency bounds parallel renders during batch export.
	Concurrency int

	// Verbose enables detailed log output using slog.LevelDebug.
	// When false, only warnings and errors are logged.
	Verbose bool

	// ConfigFilePath is an explicit configuration file path.
	// If empty, ConfigFileName is searched in the current directory and
	// then in the XDG config directory.
	ConfigFilePath string
}

// NewConfig returns a Config populated with default values.
func NewConfig() *Config {
	return &Config{
		ReportPath:  DefaultReportPath,
		Format:      DefaultFormat,
		Theme:       DefaultTheme,
		Concurrency: DefaultConcurrency,
	}
}

// Validate checks the configuration for invalid combinations.
// It returns the first sentinel error encountered, or nil.
func (c *Config) Validate() error {
	switch c.Format {
	case "text", "json", "markdown":
	default:
		return ErrInvalidFormat
	}

	switch c.Theme {
	case "auto", "light", "dark":
	default:
		return ErrInvalidTheme
	}

	if c.Concurrency <= 0 {
		return ErrInvalidConcurrency
	}

	return nil
}

// XDGConfigFilePath returns the configuration file location inside the
// user's XDG config directory.
func XDGConfigFilePath() string {
	return filepath.Join(xdg.ConfigHome, AppName, "doclens.yml")
}
