package paratext

import (
	"log/slog"

	"github.com/gogpu/paratext/internal/logging"
)

// SetLogger configures the logger for paratext and all its sub-packages.
// By default, paratext produces no log output. Call SetLogger to enable logging.
//
// SetLogger is safe for concurrent use: it stores the new logger atomically.
// Pass nil to disable logging (restore default silent behavior).
//
// Log levels used by paratext:
//   - [slog.LevelDebug]: layout diagnostics (ignored font switches, missing
//     glyphs, height truncation)
//   - [slog.LevelWarn]: non-fatal issues (a font that cannot draw its glyphs)
//
// Example:
//
//	// Enable debug-level logging for full diagnostics:
//	paratext.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	logging.Set(l)
}

// Logger returns the current logger used by paratext.
//
// Logger is safe for concurrent use.
func Logger() *slog.Logger {
	return logging.Logger()
}
