package paint

import (
	"log/slog"

	"github.com/gogpu/paint/internal/debug"
)

// SetLogger configures the logger for paint and all its sub-packages.
// By default, paint produces no log output. Call SetLogger to enable logging.
//
// SetLogger is safe for concurrent use: it stores the new logger atomically.
// Pass nil to disable logging (restore default silent behavior).
//
// Log levels used by paint:
//   - [slog.LevelDebug]: per-frame statistics (batches, vertices, galley sizes)
//   - [slog.LevelWarn]: dropped invalid meshes, failed internal assertions,
//     glyphs that did not fit in the atlas
//
// Example:
//
//	paint.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	debug.SetLogger(l)
}

// Logger returns the current logger used by paint.
//
// Logger is safe for concurrent use.
func Logger() *slog.Logger {
	return debug.Logger()
}
