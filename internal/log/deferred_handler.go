package log

import (
	"context"
	"io"
	"log/slog"
	"sync"
)

// DeferredHandler wraps another slog.Handler and, while deferral is
// active, buffers records instead of emitting them. Records are
// replayed in order by Flush.
//
// Handlers derived via WithAttrs and WithGroup share the same buffer,
// so a single Flush drains everything logged during the session no
// matter which derived logger produced it.
type DeferredHandler struct {
	handler slog.Handler
	state   *deferredState
}

// deferredState is the buffer shared across derived handlers.
type deferredState struct {
	mu       sync.Mutex
	active   bool
	buffered []bufferedRecord
}

// bufferedRecord pairs a record with the handler that should emit it,
// preserving the attrs and groups attached at log time.
type bufferedRecord struct {
	handler slog.Handler
	record  slog.Record
}

// NewDeferredHandler wraps the given handler with deferral support.
// Deferral starts inactive; records pass straight through until Defer
// is called.
func NewDeferredHandler(handler slog.Handler) *DeferredHandler {
	return &DeferredHandler{
		handler: handler,
		state:   &deferredState{},
	}
}

// Defer starts buffering. Safe to call more than once.
func (h *DeferredHandler) Defer() {
	h.state.mu.Lock()
	defer h.state.mu.Unlock()
	h.state.active = true
}

// Flush stops buffering and replays all buffered records in order.
// It returns the first emit error encountered but always drains the
// whole buffer.
func (h *DeferredHandler) Flush(ctx context.Context) error {
	h.state.mu.Lock()
	buffered := h.state.buffered
	h.state.buffered = nil
	h.state.active = false
	h.state.mu.Unlock()

	var firstErr error
	for _, b := range buffered {
		if err := b.handler.Handle(ctx, b.record); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

// Enabled reports whether the underlying handler handles the level.
func (h *DeferredHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.handler.Enabled(ctx, level)
}

// Handle buffers the record while deferral is active, otherwise passes
// it to the underlying handler.
func (h *DeferredHandler) Handle(ctx context.Context, r slog.Record) error {
	h.state.mu.Lock()
	if h.state.active {
		h.state.buffered = append(h.state.buffered, bufferedRecord{
			handler: h.handler,
			record:  r.Clone(),
		})
		h.state.mu.Unlock()
		return nil
	}
	h.state.mu.Unlock()

	return h.handler.Handle(ctx, r)
}

// WithAttrs returns a derived handler sharing this handler's buffer.
func (h *DeferredHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &DeferredHandler{handler: h.handler.WithAttrs(attrs), state: h.state}
}

// WithGroup returns a derived handler sharing this handler's buffer.
func (h *DeferredHandler) WithGroup(name string) slog.Handler {
	return &DeferredHandler{handler: h.handler.WithGroup(name), state: h.state}
}

// NewLogger creates a slog.Logger with deferral support.
//
// Parameters:
//   - w: the io.Writer to write log output to (typically os.Stderr)
//   - verbose: if true, sets log level to Debug; otherwise Warn
//
// The returned DeferredHandler controls buffering around the
// interactive session; the logger can be installed with
// slog.SetDefault.
func NewLogger(w io.Writer, verbose bool) (*slog.Logger, *DeferredHandler) {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}

	textHandler := slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})
	deferred := NewDeferredHandler(textHandler)

	return slog.New(deferred), deferred
}
