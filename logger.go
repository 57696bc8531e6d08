package texconv

import (
	"context"
	"log/slog"
	"sync/atomic"

	"github.com/gogpu/texconv/shaderuid"
)

// nopHandler is a slog.Handler that silently discards all log records.
// The Enabled method returns false so the caller skips message formatting
// entirely.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

// loggerPtr stores the active logger. Accessed atomically so that
// SetLogger can be called concurrently with logging from any goroutine.
var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(newNopLogger())
}

// SetLogger configures the logger for texconv and its sub-packages.
// By default, texconv produces no log output.
//
// Pass nil to restore the silent default.
//
// Log levels used by texconv:
//   - [slog.LevelDebug]: generated shaders (format, tile geometry, size),
//     cache hits and misses, shader module creation
//   - [slog.LevelWarn]: shader dump failures, resource release errors
//   - [slog.LevelError]: shader uid mismatches
//
// Example:
//
//	texconv.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)
	shaderuid.SetLogger(l)
}

// Logger returns the current logger used by texconv.
// backend/native calls this to share the same logger configuration.
//
// Logger is safe for concurrent use.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
