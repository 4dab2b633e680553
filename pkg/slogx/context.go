package slogx

import (
	"context"
	"log/slog"
)

type ctxKey struct{}

// WithContext stores the logger in the context for FromContext to find.
func WithContext(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, logger)
}

// FromContext returns the request-scoped logger, falling back to
// slog.Default() outside a request (startup, housekeeping ticks, tests).
func FromContext(ctx context.Context) *slog.Logger {
	l, ok := ctx.Value(ctxKey{}).(*slog.Logger)
	if !ok {
		return slog.Default()
	}
	return l
}

// WithRequestID derives a logger carrying req_id and stores it back in
// the context.
func WithRequestID(ctx context.Context, reqID string) context.Context {
	l := FromContext(ctx)
	return WithContext(ctx, l.With("req_id", reqID))
}
