package slogx

import (
	"context"
	"log/slog"
	"slices"
)

var _ slog.Handler = (*DedupeHandler)(nil)

// DedupeHandler keeps only the latest value of each attribute key, so structured output never repeats a key.
// Group names are folded into the keys with a "." separator.
type DedupeHandler struct {
	group string
	attrs []slog.Attr
	impl  slog.Handler
}

func NewDedupeHandler(impl slog.Handler) slog.Handler {
	if impl == nil {
		panic("nil implementing handler")
	}
	return &DedupeHandler{impl: impl}
}

func (h *DedupeHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.impl.Enabled(ctx, level)
}

func (h *DedupeHandler) Handle(ctx context.Context, record slog.Record) error {
	extra := make([]slog.Attr, 0, record.NumAttrs())
	record.Attrs(func(attr slog.Attr) bool {
		extra = append(extra, attr)
		return true
	})
	deduped := slog.NewRecord(record.Time, record.Level, record.Message, record.PC)
	deduped.AddAttrs(h.merge(extra)...)
	return h.impl.Handle(ctx, deduped)
}

// merge returns a copy of the handler's attributes with the given ones applied, replacing values in place for keys already present.
func (h *DedupeHandler) merge(attrs []slog.Attr) []slog.Attr {
	merged := slices.Clone(h.attrs)
	for _, attr := range attrs {
		if len(h.group) > 0 {
			attr.Key = h.group + "." + attr.Key
		}
		idx := slices.IndexFunc(merged, func(a slog.Attr) bool {
			return a.Key == attr.Key
		})
		if idx >= 0 {
			merged[idx] = attr
			continue
		}
		merged = append(merged, attr)
	}
	return merged
}

func (h *DedupeHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) == 0 {
		return h
	}
	return &DedupeHandler{group: h.group, attrs: h.merge(attrs), impl: h.impl}
}

func (h *DedupeHandler) WithGroup(name string) slog.Handler {
	if len(name) == 0 {
		return h
	}
	group := name
	if len(h.group) > 0 {
		group = h.group + "." + name
	}
	return &DedupeHandler{group: group, attrs: h.attrs, impl: h.impl}
}
