package internal

import (
	"context"

	"golang.org/x/exp/slog"
)

var nop (slog.Handler) = nopLogger{}

// NopLogger returns a logger that discards all records. Components fall back
// to it when no slog.Handler is configured.
func NopLogger() *slog.Logger {
	return slog.New(nop)
}

type nopLogger struct{}

func (nopLogger) Enabled(context.Context, slog.Level) bool { return false }

func (nopLogger) Handle(context.Context, slog.Record) error { return nil }

func (nopLogger) WithAttrs([]slog.Attr) slog.Handler { return nop }

func (nopLogger) WithGroup(string) slog.Handler { return nop }
