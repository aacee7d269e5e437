package requestid

import (
	"context"
	"log/slog"
)

type contextKey struct{}

// WithID returns a copy of ctx carrying the request id.
func WithID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, contextKey{}, id)
}

// FromContext returns the request id stored in ctx, if any.
func FromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(contextKey{}).(string)
	return id, ok && id != ""
}

// Logger returns base annotated with the request id from ctx, or base itself when there is none.
func Logger(ctx context.Context, base *slog.Logger) *slog.Logger {
	if id, ok := FromContext(ctx); ok {
		return base.With(slog.String("request_id", id))
	}

	return base
}
