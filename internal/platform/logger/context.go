package logger

import (
	"context"
	"log/slog"
)

// contextKey is an unexported type for context keys defined in this package.
type contextKey int

// loggerKey is the context key under which a request-scoped logger is stored.
const loggerKey contextKey = iota

// WithLogger returns a new context carrying the given logger. It panics if
// the logger is nil; callers that want to clear a logger should simply not
// attach one.
func WithLogger(ctx context.Context, log *slog.Logger) context.Context {
	if log == nil {
		panic("logger: WithLogger called with nil logger")
	}
	return context.WithValue(ctx, loggerKey, log)
}

// FromContext returns the logger stored in the context, or the process
// default logger if the context has none.
func FromContext(ctx context.Context) *slog.Logger {
	return FromContextOrDefault(ctx, slog.Default())
}

// FromContextOrDefault returns the logger stored in the context, falling
// back to the provided default when the context is nil or carries no logger.
func FromContextOrDefault(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if ctx == nil {
		return fallback
	}
	if log, ok := ctx.Value(loggerKey).(*slog.Logger); ok && log != nil {
		return log
	}
	return fallback
}
