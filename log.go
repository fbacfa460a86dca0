package datatable

import (
	"io"
	"log/slog"
	"sync/atomic"
)

var (
	logger        atomic.Pointer[slog.Logger]
	discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))
)

// SetLogger sets the logger used by this package and its sub-packages.
// Passing nil discards all log output.
// It is safe to call while other goroutines are logging.
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = discardLogger
	}
	logger.Store(l)
}

// Logger returns the logger used by this package and its sub-packages.
func Logger() *slog.Logger {
	if l := logger.Load(); l != nil {
		return l
	}
	return discardLogger
}
