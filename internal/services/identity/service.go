package identity

import (
	"errors"
	"fmt"
	"log/slog"
	"unicode"

	"keyring/internal/domain"
	"keyring/internal/keyring"
	"keyring/internal/util/memzero"
)

const (
	// DefaultMinPassphraseLength is used when the caller passes a non-positive minimum.
	DefaultMinPassphraseLength = 12
)

var (
	// ErrWeakPassphrase is returned when the passphrase fails the strength policy.
	ErrWeakPassphrase = errors.New(
		"passphrase is too weak (must meet the minimum length and include upper, lower, " +
			"number, and symbol)",
	)

	// ErrKeyringExists is returned when GenerateIdentity would replace a stored keyring.
	ErrKeyringExists = errors.New("a keyring already exists; pass overwrite to replace it")
)

// Service manages the secret keyring using a backing store.
//
// The keyring contains:
//   - Ed25519 key pair for signing.
//   - X25519 key pair for receiving hybrid-encrypted envelopes.
type Service struct {
	store  domain.KeyringStore
	minLen int
	log    *slog.Logger
}

// New returns an identity service backed by the given store. A nil logger
// discards output.
func New(s domain.KeyringStore, minPassphraseLength int, log *slog.Logger) *Service {
	if minPassphraseLength <= 0 {
		minPassphraseLength = DefaultMinPassphraseLength
	}
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Service{store: s, minLen: minPassphraseLength, log: log}
}

// GenerateIdentity creates a new keyring, saves it sealed with the passphrase,
// and returns its public half plus a short fingerprint.
func (s *Service) GenerateIdentity(
	passphrase string,
	overwrite bool,
) (*keyring.Public, domain.Fingerprint, error) {
	if !isSecurePassphrase(passphrase, s.minLen) {
		return nil, "", ErrWeakPassphrase
	}
	exists, err := s.store.HasKeyring()
	if err != nil {
		return nil, "", err
	}
	if exists && !overwrite {
		return nil, "", ErrKeyringExists
	}

	secret, err := keyring.Generate(nil)
	if err != nil {
		return nil, "", err
	}
	der, err := secret.MarshalBinary()
	if err != nil {
		return nil, "", fmt.Errorf("serialize keyring: %w", err)
	}
	defer memzero.Zero(der)

	if err := s.store.SaveKeyring(passphrase, der); err != nil {
		return nil, "", err
	}
	pub := secret.Public()
	s.log.Info("keyring generated",
		slog.String("fingerprint", pub.Fingerprint().String()),
		slog.String("identity", pub.ID().String()),
		slog.Bool("replaced", exists),
	)
	return pub, pub.Fingerprint(), nil
}

// LoadIdentity unseals and parses the local keyring.
func (s *Service) LoadIdentity(passphrase string) (*keyring.Secret, error) {
	der, err := s.store.LoadKeyring(passphrase)
	if err != nil {
		return nil, err
	}
	defer memzero.Zero(der)

	secret, err := keyring.ParseSecret(der)
	if err != nil {
		return nil, fmt.Errorf("stored keyring: %w", err)
	}
	return secret, nil
}

// PublicKeyring returns the public half of the local keyring.
func (s *Service) PublicKeyring(passphrase string) (*keyring.Public, error) {
	secret, err := s.LoadIdentity(passphrase)
	if err != nil {
		return nil, err
	}
	return secret.Public(), nil
}

// FingerprintIdentity returns a short fingerprint of the local public keyring.
func (s *Service) FingerprintIdentity(passphrase string) (domain.Fingerprint, error) {
	pub, err := s.PublicKeyring(passphrase)
	if err != nil {
		return "", err
	}
	return pub.Fingerprint(), nil
}

// Sign signs message with the local keyring.
func (s *Service) Sign(passphrase string, message []byte) ([]byte, error) {
	secret, err := s.LoadIdentity(passphrase)
	if err != nil {
		return nil, err
	}
	return secret.Sign(message), nil
}

// isSecurePassphrase enforces a basic strength policy.
func isSecurePassphrase(passphrase string, minLen int) bool {
	var hasUpper, hasLower, hasDigit, hasSymbol bool
	if len([]rune(passphrase)) < minLen {
		return false
	}
	for _, r := range passphrase {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		case unicode.IsPunct(r), unicode.IsSymbol(r):
			hasSymbol = true
		}
	}
	return hasUpper && hasLower && hasDigit && hasSymbol
}

// Compile-time assertion that Service implements domain.IdentityService.
var _ domain.IdentityService = (*Service)(nil)
