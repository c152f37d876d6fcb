package cobra

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler drops every record. Enabled reports false, so callers skip
// attribute evaluation on the silent path.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

var silent = slog.New(nopHandler{})

var current atomic.Pointer[slog.Logger]

func init() {
	current.Store(silent)
}

// SetLogger installs l as the logger for the optimizer, the renderers
// and the surface helpers. A nil l restores the silent default. It may
// be called while renders are in flight.
//
// Records are emitted at these levels:
//   - [slog.LevelDebug]: every pass rewrite and every pipeline sweep
//   - [slog.LevelInfo]: renderer construction and finished frames
//   - [slog.LevelWarn]: NaN components left in a rendered surface
//
// Example:
//
//	cobra.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = silent
	}
	current.Store(l)
}

// Logger returns the logger installed by SetLogger.
func Logger() *slog.Logger {
	return current.Load()
}
