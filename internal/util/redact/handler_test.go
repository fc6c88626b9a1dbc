package redact_test

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"keyring/internal/util/redact"
)

func newLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(redact.WrapHandler(slog.NewTextHandler(buf, nil)))
}

func TestHandler_MasksSensitiveKeys(t *testing.T) {
	var buf bytes.Buffer
	log := newLogger(&buf)

	log.Info("unlock",
		slog.String("passphrase", "hunter2-Hunter2"),
		slog.String("Seed_Hex", "deadbeef"),
		slog.String("fingerprint", "ab12cd34"),
	)
	out := buf.String()
	for _, leaked := range []string{"hunter2-Hunter2", "deadbeef"} {
		if strings.Contains(out, leaked) {
			t.Fatalf("log leaked %q: %s", leaked, out)
		}
	}
	if !strings.Contains(out, "fingerprint=ab12cd34") {
		t.Fatalf("non-sensitive attr missing: %s", out)
	}
	if strings.Count(out, "[REDACTED]") != 2 {
		t.Fatalf("want two redactions: %s", out)
	}
}

func TestHandler_WithAttrsAndGroups(t *testing.T) {
	var buf bytes.Buffer
	log := newLogger(&buf).With(slog.String("private_key", "0102"))

	log.Info("nested", slog.Group("keys",
		slog.String("agreement_private", "0304"),
		slog.String("peer", "bob"),
	))
	out := buf.String()
	if strings.Contains(out, "0102") || strings.Contains(out, "0304") {
		t.Fatalf("log leaked key material: %s", out)
	}
	if !strings.Contains(out, "keys.peer=bob") {
		t.Fatalf("group attr missing: %s", out)
	}
}

func TestWrapHandler_Nil(t *testing.T) {
	if redact.WrapHandler(nil) != nil {
		t.Fatal("WrapHandler(nil) should be nil")
	}
}
