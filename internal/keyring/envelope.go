package keyring

import (
	"errors"
	"fmt"
	"io"

	"keyring/internal/crypto"
	domaintypes "keyring/internal/domain/types"
	"keyring/internal/util/memzero"
)

// Envelope is the self-contained output of Public.Encrypt.
type Envelope struct {
	// EphemeralPublic is the sender's one-time X25519 public key.
	EphemeralPublic domaintypes.X25519Public
	// Ciphertext is the sealed plaintext with the 16-byte tag at the end.
	Ciphertext []byte
}

// MarshalBinary encodes the envelope as ephemeral public key (32 bytes)
// followed by ciphertext || tag.
func (e *Envelope) MarshalBinary() ([]byte, error) {
	out := make([]byte, 0, AgreementKeySize+len(e.Ciphertext))
	out = append(out, e.EphemeralPublic[:]...)
	return append(out, e.Ciphertext...), nil
}

// ParseEnvelope decodes the MarshalBinary form.
func ParseEnvelope(b []byte) (*Envelope, error) {
	if len(b) < AgreementKeySize+TagSize {
		return nil, fmt.Errorf("%w: got %d bytes, need at least %d", ErrInvalidEnvelope, len(b), AgreementKeySize+TagSize)
	}
	env := &Envelope{
		EphemeralPublic: domaintypes.MustX25519Public(b[:AgreementKeySize]),
		Ciphertext:      append([]byte(nil), b[AgreementKeySize:]...),
	}
	return env, nil
}

// Encrypt seals plaintext to p. A fresh ephemeral X25519 key pair is drawn
// from r for every call (nil r uses crypto/rand) and discarded before
// returning. Failure to read randomness is reported as ErrEntropy.
func (p *Public) Encrypt(r io.Reader, plaintext []byte) (*Envelope, error) {
	ephPriv, ephPub, err := crypto.GenerateX25519(r)
	defer memzero.Zero32((*[32]byte)(&ephPriv))
	if err != nil {
		return nil, fmt.Errorf("%w: ephemeral key: %v", ErrEntropy, err)
	}

	shared, err := crypto.DH(ephPriv, p.agreement)
	defer memzero.Zero32(&shared)
	if err != nil {
		return nil, fmt.Errorf("key agreement: %w", err)
	}

	key := crypto.DeriveEnvelopeKey(shared[:], ephPub.Slice(), p.agreement.Slice())
	ct := crypto.NewSealingKey(key).Seal(plaintext)

	return &Envelope{
		EphemeralPublic: ephPub,
		Ciphertext:      ct,
	}, nil
}

// Decrypt opens env with this keyring's agreement key. sender is not used:
// envelopes do not authenticate their author. Every failure, including a
// low-order ephemeral key, is reported as ErrDecryptionFailed and no
// plaintext is returned.
func (s *Secret) Decrypt(env *Envelope, sender *Public) ([]byte, error) {
	if env == nil {
		return nil, fmt.Errorf("%w: nil envelope", ErrDecryptionFailed)
	}

	shared, err := crypto.DH(s.agreement, env.EphemeralPublic)
	defer memzero.Zero32(&shared)
	if err != nil {
		return nil, fmt.Errorf("%w: key agreement: %v", ErrDecryptionFailed, err)
	}

	key := crypto.DeriveEnvelopeKey(shared[:], env.EphemeralPublic.Slice(), s.public.agreement.Slice())
	pt, err := crypto.Open(key, env.Ciphertext)
	if err != nil {
		if errors.Is(err, crypto.ErrOpen) {
			return nil, ErrDecryptionFailed
		}
		return nil, fmt.Errorf("%w: %v", ErrDecryptionFailed, err)
	}
	return pt, nil
}
