package config

import "errors"

// Validation errors returned by Config.Validate.
//
// Design decision: sentinel errors with human-readable messages, created
// with errors.New rather than fmt.Errorf, so callers can test identity
// with errors.Is while users still see a clear message.
var (
	// ErrInvalidFormat is returned when the export format is not one of
	// text, json, or markdown.
	ErrInvalidFormat = errors.New("invalid format: must be text, json, or markdown")

	// ErrInvalidTheme is returned when the theme is not one of auto,
	// light, or dark.
	ErrInvalidTheme = errors.New("invalid theme: must be auto, light, or dark")

	// ErrInvalidConcurrency is returned when the export concurrency is
	// not positive.
	ErrInvalidConcurrency = errors.New("invalid concurrency: must be positive")
)
