package imaging

import (
	"log/slog"

	"github.com/cwbudde/algo-resize/internal/logging"
)

// SetLogger configures the logger used by imaging and all its sub-packages.
// By default nothing is logged. Pass nil to restore the silent default.
//
// All records are emitted at [slog.LevelDebug]: kernel selection, resize
// geometry and scaler fallbacks.
//
// Example:
//
//	imaging.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	logging.Set(l)
}

// Logger returns the current logger.
func Logger() *slog.Logger {
	return logging.Get()
}
