// Package log provides logging for doclens, built on top of the
// standard slog package.
//
// This package extends slog with:
//   - Configurable log levels with verbose mode support
//   - A deferral mode that buffers records while the interactive
//     dashboard owns the terminal, then replays them on exit
//
// # Why deferral
//
// The dashboard runs in the terminal's alternate screen. A log line
// written to stderr while it is active corrupts the display, so the
// DeferredHandler queues records during the session and flushes them
// after the program restores the terminal.
//
// # Usage
//
//	logger, deferred := log.NewLogger(os.Stderr, verbose)
//	slog.SetDefault(logger)
//
//	deferred.Defer()
//	// ... run the TUI ...
//	deferred.Flush(ctx)
package log
