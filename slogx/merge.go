package slogx

import (
	"context"
	"errors"
	"log/slog"
)

var _ slog.Handler = (*fanout)(nil)

type fanout struct {
	handlers []slog.Handler
}

func (h *fanout) Enabled(ctx context.Context, level slog.Level) bool {
	for _, handler := range h.handlers {
		if handler.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

// Handle passes the record to every handler enabled for its level.
func (h *fanout) Handle(ctx context.Context, record slog.Record) error {
	var errs []error
	for _, handler := range h.handlers {
		if !handler.Enabled(ctx, record.Level) {
			continue
		}
		errs = append(errs, handler.Handle(ctx, record.Clone()))
	}
	return errors.Join(errs...)
}

func (h *fanout) WithAttrs(attrs []slog.Attr) slog.Handler {
	return h.each(func(handler slog.Handler) slog.Handler {
		return handler.WithAttrs(attrs)
	})
}

func (h *fanout) WithGroup(name string) slog.Handler {
	return h.each(func(handler slog.Handler) slog.Handler {
		return handler.WithGroup(name)
	})
}

func (h *fanout) each(fn func(handler slog.Handler) slog.Handler) *fanout {
	next := &fanout{handlers: make([]slog.Handler, len(h.handlers))}
	for i, handler := range h.handlers {
		next.handlers[i] = fn(handler)
	}
	return next
}

// MergeHandlers will merge many [slog.Handler] into one, so every record reaches each of them.
// Each handler keeps its own level.
func MergeHandlers(a, b slog.Handler, others ...slog.Handler) slog.Handler {
	handlers := append([]slog.Handler{a, b}, others...)
	for _, handler := range handlers {
		if handler == nil {
			panic("nil handler")
		}
	}
	return &fanout{handlers: handlers}
}
