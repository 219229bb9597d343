package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrConfigNotFound is returned when the configuration file does not exist.
var ErrConfigNotFound = errors.New("configuration file not found")

// File represents the optional YAML configuration file.
// Every key is optional; zero values leave the corresponding Config
// field untouched.
type File struct {
	// Report is the default report path.
	Report string `yaml:"report,omitempty"`

	// Format is the default export format.
	Format string `yaml:"format,omitempty"`

	// Theme is the default dashboard theme.
	Theme string `yaml:"theme,omitempty"`

	// Concurrency is the default batch-export concurrency.
	Concurrency int `yaml:"concurrency,omitempty"`
}

// LoadFile loads the configuration file from the specified path.
// If the file does not exist, it returns ErrConfigNotFound.
func LoadFile(path string) (*File, error) {
	data, err := os.ReadFile(path) //nolint:gosec // User-provided config path is intentional
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, fmt.Errorf("failed to read configuration file: %w", err)
	}

	var cf File
	if err := yaml.Unmarshal(data, &cf); err != nil {
		return nil, fmt.Errorf("failed to parse configuration file %s: %w", path, err)
	}

	return &cf, nil
}

// Resolve loads the configuration file and merges it under the given
// Config: file values fill only fields still holding their defaults, so
// CLI flags always win.
//
// Search order when Config.ConfigFilePath is empty: ConfigFileName in
// the current directory, then the XDG config directory. A missing file
// is not an error; the defaults simply stand.
func (c *Config) Resolve() error {
	paths := []string{c.ConfigFilePath}
	if c.ConfigFilePath == "" {
		paths = []string{ConfigFileName, XDGConfigFilePath()}
	}

	var cf *File
	for _, path := range paths {
		loaded, err := LoadFile(path)
		if errors.Is(err, ErrConfigNotFound) {
			continue
		}
		if err != nil {
			return err
		}
		cf = loaded
		break
	}
	if cf == nil {
		if c.ConfigFilePath != "" {
			return fmt.Errorf("%w: %s", ErrConfigNotFound, c.ConfigFilePath)
		}
		return nil
	}

	if c.ReportPath == DefaultReportPath && cf.Report != "" {
		c.ReportPath = cf.Report
	}
	if c.Format == DefaultFormat && cf.Format != "" {
		c.Format = cf.Format
	}
	if c.Theme == DefaultTheme && cf.Theme != "" {
		c.Theme = cf.Theme
	}
	if c.Concurrency == DefaultConcurrency && cf.Concurrency != 0 {
		c.Concurrency = cf.Concurrency
	}

	return nil
}
