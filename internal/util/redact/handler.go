// Package redact wraps a slog.Handler so that attributes naming key material
// or passphrases never reach the log output.
package redact

import (
	"context"
	"log/slog"
	"strings"
)

const redactedValue = "[REDACTED]"

var sensitiveKeyParts = []string{
	"secret", "passphrase", "password", "seed", "private", "token", "plaintext",
}

// Handler masks sensitive attributes before passing records on.
type Handler struct {
	next slog.Handler
}

// WrapHandler returns next wrapped in a redacting Handler. A nil next stays nil.
func WrapHandler(next slog.Handler) slog.Handler {
	if next == nil {
		return nil
	}
	return &Handler{next: next}
}

func (h *Handler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.next.Enabled(ctx, level)
}

func (h *Handler) Handle(ctx context.Context, rec slog.Record) error {
	out := slog.NewRecord(rec.Time, rec.Level, rec.Message, rec.PC)
	rec.Attrs(func(attr slog.Attr) bool {
		out.AddAttrs(Attr(attr))
		return true
	})
	return h.next.Handle(ctx, out)
}

func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &Handler{next: h.next.WithAttrs(attrsOf(attrs))}
}

func (h *Handler) WithGroup(name string) slog.Handler {
	return &Handler{next: h.next.WithGroup(name)}
}

// Attr returns attr with its value replaced when the key looks sensitive.
// Groups are walked recursively.
func Attr(attr slog.Attr) slog.Attr {
	if isSensitiveKey(attr.Key) {
		return slog.String(attr.Key, redactedValue)
	}
	if attr.Value.Kind() == slog.KindGroup {
		return slog.Attr{Key: attr.Key, Value: slog.GroupValue(attrsOf(attr.Value.Group())...)}
	}
	return attr
}

func attrsOf(attrs []slog.Attr) []slog.Attr {
	out := make([]slog.Attr, 0, len(attrs))
	for _, attr := range attrs {
		out = append(out, Attr(attr))
	}
	return out
}

func isSensitiveKey(key string) bool {
	key = strings.ToLower(strings.TrimSpace(key))
	for _, part := range sensitiveKeyParts {
		if strings.Contains(key, part) {
			return true
		}
	}
	return false
}
