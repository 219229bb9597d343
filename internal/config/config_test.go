package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

// TestNewConfig tests the default configuration values.
func TestNewConfig(t *testing.T) {
	t.Parallel()

	cfg := NewConfig()

	if cfg.ReportPath != DefaultReportPath {
		t.Errorf("ReportPath = %q, want %q", cfg.ReportPath, DefaultReportPath)
	}
	if cfg.Format != DefaultFormat {
		t.Errorf("Format = %q, want %q", cfg.Format, DefaultFormat)
	}
	if cfg.Theme != DefaultTheme {
		t.Errorf("Theme = %q, want %q", cfg.Theme, DefaultTheme)
	}
	if cfg.Concurrency != DefaultConcurrency {
		t.Errorf("Concurrency = %d, want %d", cfg.Concurrency, DefaultConcurrency)
	}
	if cfg.Verbose {
		t.Error("Verbose should default to false")
	}
}

// TestConfigValidate tests configuration validation.
func TestConfigValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr error
	}{
		{name: "defaults are valid", mutate: func(*Config) {}},
		{name: "json format", mutate: func(c *Config) { c.Format = "json" }},
		{name: "markdown format", mutate: func(c *Config) { c.Format = "markdown" }},
		{name: "dark theme", mutate: func(c *Config) { c.Theme = "dark" }},
		{
			name:    "unknown format",
			mutate:  func(c *Config) { c.Format = "xml" },
			wantErr: ErrInvalidFormat,
		},
		{
			name:    "unknown theme",
			mutate:  func(c *Config) { c.Theme = "solarized" },
			wantErr: ErrInvalidTheme,
		},
		{
			name:    "zero concurrency",
			mutate:  func(c *Config) { c.Concurrency = 0 },
			wantErr: ErrInvalidConcurrency,
		},
		{
			name:    "negative concurrency",
			mutate:  func(c *Config) { c.Concurrency = -1 },
			wantErr: ErrInvalidConcurrency,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := NewConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

// writeConfigFile writes YAML config content to a temp file.
func writeConfigFile(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "doclens.yml")
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("failed to write config fixture: %v", err)
	}
	return path
}

// TestLoadFile tests reading the YAML configuration file.
func TestLoadFile(t *testing.T) {
	t.Parallel()

	t.Run("loads all keys", func(t *testing.T) {
		t.Parallel()

		path := writeConfigFile(t, `
report: reports/analysis.json
format: markdown
theme: dark
concurrency: 8
`)

		cf, err := LoadFile(path)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cf.Report != "reports/analysis.json" {
			t.Errorf("Report = %q", cf.Report)
		}
		if cf.Format != "markdown" {
			t.Errorf("Format = %q", cf.Format)
		}
		if cf.Theme != "dark" {
			t.Errorf("Theme = %q", cf.Theme)
		}
		if cf.Concurrency != 8 {
			t.Errorf("Concurrency = %d", cf.Concurrency)
		}
	})

	t.Run("missing file returns ErrConfigNotFound", func(t *testing.T) {
		t.Parallel()

		_, err := LoadFile(filepath.Join(t.TempDir(), "absent.yml"))
		if !errors.Is(err, ErrConfigNotFound) {
			t.Errorf("error = %v, want ErrConfigNotFound", err)
		}
	})

	t.Run("invalid YAML returns an error", func(t *testing.T) {
		t.Parallel()

		path := writeConfigFile(t, "report: [unclosed")
		if _, err := LoadFile(path); err == nil {
			t.Error("expected a parse error")
		}
	})
}

// TestConfigResolve tests merging the configuration file under flags.
func TestConfigResolve(t *testing.T) {
	t.Parallel()

	t.Run("file fills fields still holding defaults", func(t *testing.T) {
		t.Parallel()

		cfg := NewConfig()
		cfg.ConfigFilePath = writeConfigFile(t, `
report: reports/analysis.json
format: json
theme: light
concurrency: 2
`)

		if err := cfg.Resolve(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.ReportPath != "reports/analysis.json" {
			t.Errorf("ReportPath = %q", cfg.ReportPath)
		}
		if cfg.Format != "json" {
			t.Errorf("Format = %q", cfg.Format)
		}
		if cfg.Theme != "light" {
			t.Errorf("Theme = %q", cfg.Theme)
		}
		if cfg.Concurrency != 2 {
			t.Errorf("Concurrency = %d", cfg.Concurrency)
		}
	})

	t.Run("explicit values win over the file", func(t *testing.T) {
		t.Parallel()

		cfg := NewConfig()
		cfg.ReportPath = "from-flag.json"
		cfg.Theme = "dark"
		cfg.ConfigFilePath = writeConfigFile(t, `
report: from-file.json
theme: light
`)

		if err := cfg.Resolve(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.ReportPath != "from-flag.json" {
			t.Errorf("ReportPath = %q, want from-flag.json", cfg.ReportPath)
		}
		if cfg.Theme != "dark" {
			t.Errorf("Theme = %q, want dark", cfg.Theme)
		}
	})

	t.Run("explicit missing path is an error", func(t *testing.T) {
		t.Parallel()

		cfg := NewConfig()
		cfg.ConfigFilePath = filepath.Join(t.TempDir(), "absent.yml")

		if err := cfg.Resolve(); !errors.Is(err, ErrConfigNotFound) {
			t.Errorf("error = %v, want ErrConfigNotFound", err)
		}
	})
}
