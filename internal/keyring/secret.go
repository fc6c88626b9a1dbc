package keyring

import (
	"crypto/ed25519"
	"crypto/rand"
	"fmt"
	"io"

	"keyring/internal/crypto"
	domaintypes "keyring/internal/domain/types"
)

// Secret is the private half of a keyring. The zero value is not usable;
// build one with Generate or ParseSecret.
type Secret struct {
	// seed is the canonical signing secret; signing is always expanded from it.
	seed      domaintypes.Ed25519Seed
	signing   ed25519.PrivateKey
	agreement domaintypes.X25519Private
	public    Public
}

// Generate creates a keyring with independent randomness for the signing seed
// and the agreement scalar. A nil r uses crypto/rand. Any read failure aborts
// generation with ErrEntropy.
func Generate(r io.Reader) (*Secret, error) {
	if r == nil {
		r = rand.Reader
	}
	var seed domaintypes.Ed25519Seed
	if _, err := io.ReadFull(r, seed[:]); err != nil {
		return nil, fmt.Errorf("%w: signing seed: %v", ErrEntropy, err)
	}
	agreement, _, err := crypto.GenerateX25519(r)
	if err != nil {
		return nil, fmt.Errorf("%w: agreement key: %v", ErrEntropy, err)
	}
	return newSecret(seed, agreement)
}

func newSecret(seed domaintypes.Ed25519Seed, agreement domaintypes.X25519Private) (*Secret, error) {
	signing, signingPub := crypto.Ed25519FromSeed(seed)
	agreementPub, err := crypto.X25519PublicKey(agreement)
	if err != nil {
		return nil, fmt.Errorf("agreement public key: %w", err)
	}
	return &Secret{
		seed:      seed,
		signing:   signing,
		agreement: agreement,
		public: Public{
			signing:   signingPub,
			agreement: agreementPub,
		},
	}, nil
}

// Public returns the public projection computed at construction.
func (s *Secret) Public() *Public {
	p := s.public
	return &p
}

// Sign returns the 64-byte Ed25519 signature of msg. It is deterministic.
func (s *Secret) Sign(msg []byte) []byte {
	return crypto.SignEd25519(s.signing, msg)
}
