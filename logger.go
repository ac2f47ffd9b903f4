package ggchart

import (
	"log/slog"
	"sync/atomic"
)

// silent discards every record; its Enabled check fails first, so
// attributes are never built.
var silent = slog.New(slog.DiscardHandler)

var current atomic.Pointer[slog.Logger]

func init() { current.Store(silent) }

// SetLogger routes ggchart diagnostics, including those of the overlay
// package, to l. A nil l silences them again, which is also the initial
// state. It is safe to call while other goroutines render.
//
// Records are emitted at two levels: Debug for per-frame geometry and for
// frames or shapes skipped as degenerate, Warn for fill and stroke errors
// reported by gg.
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = silent
	}
	current.Store(l)
}

// Logger returns the logger set by SetLogger.
func Logger() *slog.Logger { return current.Load() }
