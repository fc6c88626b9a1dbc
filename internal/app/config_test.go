package app_test

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"keyring/internal/app"
	"keyring/internal/store"
)

func writeConfig(t *testing.T, home, body string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(home, app.ConfigFilename), []byte(body), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
}

func TestLoadConfig_DefaultsWhenMissing(t *testing.T) {
	home := t.TempDir()
	cfg, err := app.LoadConfig(home)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg != app.DefaultConfig(home) {
		t.Fatalf("cfg = %+v, want defaults", cfg)
	}
}

func TestLoadConfig_Overrides(t *testing.T) {
	home := t.TempDir()
	writeConfig(t, home, `
scrypt:
  n: 1024
  r: 8
  p: 2
min_passphrase_length: 20
log_level: debug
`)
	cfg, err := app.LoadConfig(home)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Scrypt != (store.ScryptParams{N: 1024, R: 8, P: 2}) {
		t.Fatalf("scrypt = %+v", cfg.Scrypt)
	}
	if cfg.MinPassphraseLength != 20 || cfg.LogLevel != slog.LevelDebug {
		t.Fatalf("cfg = %+v", cfg)
	}
}

func TestLoadConfig_PartialKeepsDefaults(t *testing.T) {
	home := t.TempDir()
	writeConfig(t, home, "log_level: ERROR\n")
	cfg, err := app.LoadConfig(home)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	def := app.DefaultConfig(home)
	if cfg.Scrypt != def.Scrypt || cfg.MinPassphraseLength != def.MinPassphraseLength {
		t.Fatalf("defaults lost: %+v", cfg)
	}
	if cfg.LogLevel != slog.LevelError {
		t.Fatalf("log level = %v", cfg.LogLevel)
	}
}

func TestLoadConfig_Rejects(t *testing.T) {
	cases := map[string]string{
		"malformed":     "scrypt: [",
		"n not power":   "scrypt: {n: 1000, r: 8, p: 1}",
		"zero r":        "scrypt: {n: 1024, r: 0, p: 1}",
		"n too large":   "scrypt: {n: 2097152, r: 8, p: 1}",
		"negative min":  "min_passphrase_length: -1",
		"unknown level": "log_level: loud",
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			home := t.TempDir()
			writeConfig(t, home, body)
			if _, err := app.LoadConfig(home); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}

func TestNewWire_EndToEnd(t *testing.T) {
	cfg := app.DefaultConfig(t.TempDir())
	cfg.Scrypt = store.ScryptParams{N: 1 << 10, R: 8, P: 1}
	w := app.NewWire(cfg, nil)

	const pass = "Correct-Horse-9-Battery"
	pub, _, err := w.Identity.GenerateIdentity(pass, false)
	if err != nil {
		t.Fatalf("GenerateIdentity: %v", err)
	}
	der, err := pub.MarshalBinary()
	if err != nil {
		t.Fatalf("MarshalBinary: %v", err)
	}
	if _, err := w.Peers.ImportPeer("self", der); err != nil {
		t.Fatalf("ImportPeer: %v", err)
	}
	sealed, err := w.Messages.Seal(pass, "self", []byte("note to self"))
	if err != nil {
		t.Fatalf("Seal: %v", err)
	}
	got, err := w.Messages.Open(pass, "self", sealed)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if string(got.Plaintext) != "note to self" {
		t.Fatalf("plaintext = %q", got.Plaintext)
	}
}
