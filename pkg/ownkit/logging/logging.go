package logging

import (
	"context"
	"log/slog"
)

// datumAttrLimit is the longest datum value logged verbatim; anything longer
// is abbreviated to its edges.
const datumAttrLimit = 16

// Logger defines the subset of slog functionality used by ownkit. The
// interface is intentionally small so applications can provide their own
// implementation for testing or routing.
type Logger interface {
	Debug(ctx context.Context, msg string, args ...any)
	Info(ctx context.Context, msg string, args ...any)
	Warn(ctx context.Context, msg string, args ...any)
	Error(ctx context.Context, msg string, args ...any)
	With(args ...any) Logger
}

// New returns a Logger backed by the provided slog.Logger. Passing nil binds
// to slog.Default().
func New(logger *slog.Logger) Logger {
	if logger == nil {
		logger = slog.Default()
	}
	return &slogLogger{logger: logger}
}

type slogLogger struct {
	logger *slog.Logger
}

func (l *slogLogger) Debug(ctx context.Context, msg string, args ...any) {
	l.logger.DebugContext(ctx, msg, args...)
}

func (l *slogLogger) Info(ctx context.Context, msg string, args ...any) {
	l.logger.InfoContext(ctx, msg, args...)
}

func (l *slogLogger) Warn(ctx context.Context, msg string, args ...any) {
	l.logger.WarnContext(ctx, msg, args...)
}

func (l *slogLogger) Error(ctx context.Context, msg string, args ...any) {
	l.logger.ErrorContext(ctx, msg, args...)
}

func (l *slogLogger) With(args ...any) Logger {
	return &slogLogger{logger: l.logger.With(args...)}
}

// Datum returns an attribute holding value, abbreviated to its first and last
// few characters when it exceeds the logging limit. Keeps log lines readable
// when callers store large payloads in the string field.
func Datum(key, value string) slog.Attr {
	return slog.String(key, abbrev(value))
}

func abbrev(s string) string {
	if len(s) <= datumAttrLimit {
		return s
	}
	head := datumAttrLimit/2 - 2
	tail := datumAttrLimit / 2
	return s[:head] + "..." + s[len(s)-tail:]
}
