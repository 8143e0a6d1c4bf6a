package swr

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler is a slog.Handler that silently discards all log records.
// Enabled returns false so callers skip message formatting entirely.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

// newNopLogger creates a logger that silently discards all output.
func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

// loggerPtr stores the active logger. Accessed atomically so that
// SetLogger can be called concurrently with logging from any goroutine.
var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(newNopLogger())
}

// SetLogger configures the logger for swr and its sub-packages.
// By default, swr produces no log output. Pass nil to restore the default.
//
// Log levels used by swr:
//   - [slog.LevelDebug]: surface allocation, per-pass draw statistics
//   - [slog.LevelInfo]: texture files loaded
//
// The per-pixel and per-triangle paths never log: rejected triangles,
// discarded fragments and out-of-range samples are expected outcomes.
//
// Example:
//
//	swr.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)
}

// Logger returns the current logger used by swr.
// Sub-packages (render, shading/...) call this to share the same
// configuration without an import cycle.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
