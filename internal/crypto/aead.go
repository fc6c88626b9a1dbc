package crypto

import (
	"crypto/cipher"
	"errors"
	"fmt"

	"golang.org/x/crypto/chacha20poly1305"

	"keyring/internal/util/memzero"
)

// TagSize is the Poly1305 tag appended to every ciphertext.
const TagSize = chacha20poly1305.Overhead

// envelopeNonce is the same for every envelope. Invariant: each envelope key
// comes from a fresh ephemeral secret and seals exactly one message, so a
// (key, nonce) pair never repeats. SealingKey enforces the single seal.
var envelopeNonce = [chacha20poly1305.NonceSize]byte{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 1}

// ErrOpen is returned when a ciphertext fails authentication.
var ErrOpen = errors.New("message authentication failed")

// SealingKey is a ChaCha20-Poly1305 key that may seal exactly once.
type SealingKey struct {
	aead cipher.AEAD
}

// NewSealingKey takes ownership of key and wipes it. key must be
// EnvelopeKeySize bytes; anything else is a programming error and panics.
func NewSealingKey(key []byte) *SealingKey {
	defer memzero.Zero(key)
	aead, err := chacha20poly1305.New(key)
	if err != nil {
		panic(fmt.Sprintf("crypto: sealing key: %v", err))
	}
	return &SealingKey{aead: aead}
}

// Seal encrypts plaintext with no associated data and returns
// ciphertext || tag. The key is consumed; a second call panics.
func (k *SealingKey) Seal(plaintext []byte) []byte {
	if k.aead == nil {
		panic("crypto: sealing key used twice")
	}
	aead := k.aead
	k.aead = nil
	return aead.Seal(nil, envelopeNonce[:], plaintext, nil)
}

// Open authenticates and decrypts ciphertext || tag under key, then wipes key.
func Open(key, ciphertext []byte) ([]byte, error) {
	defer memzero.Zero(key)
	aead, err := chacha20poly1305.New(key)
	if err != nil {
		return nil, err
	}
	if len(ciphertext) < TagSize {
		return nil, ErrOpen
	}
	pt, err := aead.Open(nil, envelopeNonce[:], ciphertext, nil)
	if err != nil {
		return nil, ErrOpen
	}
	return pt, nil
}
