package log

import (
	"context"
	"log/slog"

	"github.com/nirmalvora/padosee-server/internal/reqctx"
)

// ContextHandler wraps an slog.Handler and adds request_id and user_id from
// the record's context when they are present.
type ContextHandler struct {
	inner slog.Handler
}

func NewContextHandler(inner slog.Handler) *ContextHandler {
	return &ContextHandler{inner: inner}
}

func (h *ContextHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.inner.Enabled(ctx, level)
}

func (h *ContextHandler) Handle(ctx context.Context, r slog.Record) error {
	if ctx != nil {
		if id := reqctx.RequestID(ctx); id != "" {
			r.AddAttrs(slog.String("request_id", id))
		}
		if id := reqctx.UserID(ctx); id != "" {
			r.AddAttrs(slog.String("user_id", id))
		}
	}
	return h.inner.Handle(ctx, r)
}

func (h *ContextHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &ContextHandler{inner: h.inner.WithAttrs(attrs)}
}

func (h *ContextHandler) WithGroup(name string) slog.Handler {
	return &ContextHandler{inner: h.inner.WithGroup(name)}
}
