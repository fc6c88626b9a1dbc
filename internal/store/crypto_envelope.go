package store

import (
	"crypto/rand"
	"encoding/json"
	"errors"
	"fmt"

	"golang.org/x/crypto/chacha20poly1305"
	"golang.org/x/crypto/scrypt"

	"keyring/internal/util/memzero"
)

const (
	// The current supported version of the encrypted blob format stored on disk.
	keystoreFormatVersion = 1
	keystoreSaltSize      = 16

	// Upper bounds on scrypt costs, checked before any key derivation.
	maxScryptN  = 1 << 20
	maxScryptRP = 1 << 30
)

var (
	// ErrWrongPassphrase is returned when the passphrase is incorrect or the
	// ciphertext has been modified / corrupted.
	ErrWrongPassphrase = errors.New("wrong passphrase or corrupted keyring")

	// ErrCorruptBlob is returned when the on-disk blob cannot be parsed.
	ErrCorruptBlob = errors.New("corrupt keystore blob")
)

// ScryptParams are the scrypt cost parameters used when sealing a keystore.
type ScryptParams struct {
	N int `yaml:"n"`
	R int `yaml:"r"`
	P int `yaml:"p"`
}

// Validate reports an error when N is not a power of two in [2, 2^20] or
// r*p is not below 2^30.
func (p ScryptParams) Validate() error {
	if p.N < 2 || p.N > maxScryptN || p.N&(p.N-1) != 0 {
		return fmt.Errorf("scrypt n must be a power of two in [2, %d], got %d", maxScryptN, p.N)
	}
	if p.R <= 0 || p.P <= 0 || p.R >= maxScryptRP/p.P {
		return fmt.Errorf("scrypt r and p must be positive with r*p below %d, got r=%d p=%d", maxScryptRP, p.R, p.P)
	}
	return nil
}

// DefaultScryptParams returns the tunables used when no config overrides them.
func DefaultScryptParams() ScryptParams { return ScryptParams{N: 1 << 15, R: 8, P: 1} }

// blob is the on‑disk JSON structure holding the ciphertext and KDF parameters.
type blob struct {
	V      int    `json:"v"`
	Salt   []byte `json:"salt"`
	N      int    `json:"scrypt_N"`
	R      int    `json:"scrypt_r"`
	P      int    `json:"scrypt_p"`
	Cipher []byte `json:"cipher"`
}

// seal derives a key from passphrase and seals raw into a JSON blob.
func seal(passphrase string, raw []byte, params ScryptParams) ([]byte, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	var salt [keystoreSaltSize]byte
	if _, err := rand.Read(salt[:]); err != nil {
		return nil, err
	}
	key, err := scrypt.Key([]byte(passphrase), salt[:], params.N, params.R, params.P, chacha20poly1305.KeySize)
	if err != nil {
		return nil, fmt.Errorf("scrypt: %w", err)
	}
	defer memzero.Zero(key)

	aead, err := chacha20poly1305.New(key)
	if err != nil {
		return nil, err
	}
	var nonce [chacha20poly1305.NonceSize]byte // zero nonce; salt‑bound key guarantees uniqueness
	ct := aead.Seal(nil, nonce[:], raw, salt[:])

	return json.Marshal(blob{
		V:      keystoreFormatVersion,
		Salt:   salt[:],
		N:      params.N,
		R:      params.R,
		P:      params.P,
		Cipher: ct,
	})
}

// unseal opens the JSON blob using a key derived from passphrase.
func unseal(passphrase string, b []byte) ([]byte, error) {
	var bl blob
	if err := json.Unmarshal(b, &bl); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptBlob, err)
	}
	if bl.V < 1 || bl.V > keystoreFormatVersion {
		return nil, fmt.Errorf("unsupported keystore version %d", bl.V)
	}
	if len(bl.Salt) != keystoreSaltSize {
		return nil, fmt.Errorf("%w: salt size %d", ErrCorruptBlob, len(bl.Salt))
	}

	if err := (ScryptParams{N: bl.N, R: bl.R, P: bl.P}).Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptBlob, err)
	}

	key, err := scrypt.Key([]byte(passphrase), bl.Salt, bl.N, bl.R, bl.P, chacha20poly1305.KeySize)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptBlob, err)
	}
	defer memzero.Zero(key)

	aead, err := chacha20poly1305.New(key)
	if err != nil {
		return nil, err
	}
	var nonce [chacha20poly1305.NonceSize]byte
	pt, err := aead.Open(nil, nonce[:], bl.Cipher, bl.Salt)
	if err != nil {
		return nil, ErrWrongPassphrase
	}
	return pt, nil
}
