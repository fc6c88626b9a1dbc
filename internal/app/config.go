package app

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"keyring/internal/services/identity"
	"keyring/internal/store"
)

// ConfigFilename is read from the home directory when present.
const ConfigFilename = "config.yaml"

// Config holds runtime wiring options for building the app.
type Config struct {
	Home                string             // keyring directory, e.g. $HOME/.keyring
	Scrypt              store.ScryptParams // keystore passphrase KDF cost
	MinPassphraseLength int
	LogLevel            slog.Level
}

// fileConfig is the on-disk shape of config.yaml. Zero values keep defaults.
type fileConfig struct {
	Scrypt              *store.ScryptParams `yaml:"scrypt"`
	MinPassphraseLength int                 `yaml:"min_passphrase_length"`
	LogLevel            string              `yaml:"log_level"`
}

// DefaultConfig returns the configuration used when no file overrides it.
func DefaultConfig(home string) Config {
	return Config{
		Home:                home,
		Scrypt:              store.DefaultScryptParams(),
		MinPassphraseLength: identity.DefaultMinPassphraseLength,
		LogLevel:            slog.LevelWarn,
	}
}

// LoadConfig returns the defaults for home merged with <home>/config.yaml.
// A missing file is not an error; a malformed one is.
func LoadConfig(home string) (Config, error) {
	cfg := DefaultConfig(home)

	data, err := os.ReadFile(filepath.Join(home, ConfigFilename))
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return Config{}, err
	}

	var parsed fileConfig
	if err := yaml.Unmarshal(data, &parsed); err != nil {
		return Config{}, fmt.Errorf("parse %s: %w", ConfigFilename, err)
	}
	if err := merge(&cfg, parsed); err != nil {
		return Config{}, fmt.Errorf("%s: %w", ConfigFilename, err)
	}
	return cfg, nil
}

func merge(dst *Config, src fileConfig) error {
	if src.Scrypt != nil {
		if err := src.Scrypt.Validate(); err != nil {
			return err
		}
		dst.Scrypt = *src.Scrypt
	}
	if src.MinPassphraseLength < 0 {
		return fmt.Errorf("min_passphrase_length must not be negative")
	}
	if src.MinPassphraseLength != 0 {
		dst.MinPassphraseLength = src.MinPassphraseLength
	}
	if src.LogLevel != "" {
		lvl, err := ParseLogLevel(src.LogLevel)
		if err != nil {
			return err
		}
		dst.LogLevel = lvl
	}
	return nil
}

// ParseLogLevel accepts debug, info, warn or error in any case.
func ParseLogLevel(s string) (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return 0, fmt.Errorf("log level %q: %w", s, err)
	}
	return lvl, nil
}
