package app

import (
	"io"
	"log/slog"

	"keyring/internal/util/redact"
)

// NewLogger returns a text logger on w at the given level. Attributes naming
// passphrases or key material are redacted.
func NewLogger(w io.Writer, level slog.Level) *slog.Logger {
	h := slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})
	return slog.New(redact.WrapHandler(h))
}
