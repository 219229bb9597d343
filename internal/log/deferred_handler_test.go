package log

import (
	"bytes"
	"context"
	"strings"
	"testing"
)

// TestDeferredHandler tests log buffering around an interactive session.
func TestDeferredHandler(t *testing.T) {
	t.Parallel()

	t.Run("passes records through when not deferred", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger, _ := NewLogger(&buf, false)

		logger.Warn("direct message")
		if !strings.Contains(buf.String(), "direct message") {
			t.Error("expected message to be written immediately")
		}
	})

	t.Run("buffers while deferred and replays on flush", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger, deferred := NewLogger(&buf, false)

		deferred.Defer()
		logger.Warn("first")
		logger.Error("second")

		if buf.Len() != 0 {
			t.Errorf("expected no output while deferred, got %q", buf.String())
		}

		if err := deferred.Flush(context.Background()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		output := buf.String()
		first := strings.Index(output, "first")
		second := strings.Index(output, "second")
		if first == -1 || second == -1 {
			t.Fatalf("expected both messages after flush, got %q", output)
		}
		if first > second {
			t.Error("expected messages replayed in order")
		}
	})

	t.Run("flush resets deferral", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger, deferred := NewLogger(&buf, false)

		deferred.Defer()
		if err := deferred.Flush(context.Background()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		logger.Warn("after flush")
		if !strings.Contains(buf.String(), "after flush") {
			t.Error("expected direct output after flush")
		}
	})

	t.Run("derived handlers share the buffer", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger, deferred := NewLogger(&buf, false)

		deferred.Defer()
		logger.With("component", "export").Warn("derived")
		logger.WithGroup("batch").Warn("grouped")

		if buf.Len() != 0 {
			t.Errorf("expected derived records to buffer, got %q", buf.String())
		}

		if err := deferred.Flush(context.Background()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		output := buf.String()
		if !strings.Contains(output, "derived") || !strings.Contains(output, "component=export") {
			t.Errorf("expected derived record with attrs, got %q", output)
		}
		if !strings.Contains(output, "grouped") {
			t.Errorf("expected grouped record, got %q", output)
		}
	})
}

// TestNewLogger tests level selection.
func TestNewLogger(t *testing.T) {
	t.Parallel()

	t.Run("default level suppresses info", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger, _ := NewLogger(&buf, false)

		logger.Info("hidden")
		logger.Warn("shown")

		output := buf.String()
		if strings.Contains(output, "hidden") {
			t.Error("info should be suppressed without verbose")
		}
		if !strings.Contains(output, "shown") {
			t.Error("warnings should always be shown")
		}
	})

	t.Run("verbose enables debug", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger, _ := NewLogger(&buf, true)

		logger.Debug("details")
		if !strings.Contains(buf.String(), "details") {
			t.Error("debug should be shown with verbose")
		}
	})
}
