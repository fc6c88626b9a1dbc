package keyring

import (
	"crypto/subtle"
	"fmt"

	"keyring/internal/crypto"
	domaintypes "keyring/internal/domain/types"
)

// Public is the public half of a keyring.
type Public struct {
	signing   domaintypes.Ed25519Public
	agreement domaintypes.X25519Public
}

// NewPublic builds a Public from raw key bytes received from a peer.
func NewPublic(signing, agreement []byte) (*Public, error) {
	if len(signing) != SigningKeySize {
		return nil, fmt.Errorf("%w: signing key got %d, want %d", ErrInvalidKeySize, len(signing), SigningKeySize)
	}
	if len(agreement) != AgreementKeySize {
		return nil, fmt.Errorf("%w: agreement key got %d, want %d", ErrInvalidKeySize, len(agreement), AgreementKeySize)
	}
	return &Public{
		signing:   domaintypes.MustEd25519Public(signing),
		agreement: domaintypes.MustX25519Public(agreement),
	}, nil
}

// SigningPublicKey returns a copy of the raw Ed25519 public key.
func (p *Public) SigningPublicKey() []byte {
	out := p.signing
	return out[:]
}

// EncryptionPublicKey returns a copy of the raw X25519 public key.
func (p *Public) EncryptionPublicKey() []byte {
	out := p.agreement
	return out[:]
}

// Verify reports whether sig is a valid signature of msg by this keyring.
// Malformed signatures yield false.
func (p *Public) Verify(msg, sig []byte) bool {
	return crypto.VerifyEd25519(p.signing, msg, sig)
}

// Equal reports whether p and o hold the same keys.
func (p *Public) Equal(o *Public) bool {
	if p == nil || o == nil {
		return p == o
	}
	s := subtle.ConstantTimeCompare(p.signing[:], o.signing[:])
	a := subtle.ConstantTimeCompare(p.agreement[:], o.agreement[:])
	return s&a == 1
}

// Fingerprint returns a short display fingerprint over both public keys.
func (p *Public) Fingerprint() domaintypes.Fingerprint {
	buf := make([]byte, 0, SigningKeySize+AgreementKeySize)
	buf = append(buf, p.signing[:]...)
	buf = append(buf, p.agreement[:]...)
	return crypto.Fingerprint(buf)
}

// ID returns the printable identity ID derived from the signing key.
func (p *Public) ID() domaintypes.IdentityID {
	return crypto.IdentityID(p.signing)
}
