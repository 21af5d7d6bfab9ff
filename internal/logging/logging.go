// Package logging holds the process-wide logger shared by the imaging
// packages. It is silent until a logger is installed with Set.
package logging

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler discards every record. Enabled returns false so callers skip
// attribute formatting entirely.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

func newNop() *slog.Logger { return slog.New(nopHandler{}) }

var current atomic.Pointer[slog.Logger]

func init() {
	current.Store(newNop())
}

// Set installs l. A nil logger restores the silent default.
func Set(l *slog.Logger) {
	if l == nil {
		l = newNop()
	}
	current.Store(l)
}

// Get returns the installed logger.
func Get() *slog.Logger {
	return current.Load()
}

// Enabled reports whether the installed logger handles debug records, so
// hot paths can skip building attributes.
func Enabled() bool {
	return current.Load().Enabled(context.Background(), slog.LevelDebug)
}
