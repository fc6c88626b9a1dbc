package keyring

import (
	"crypto/ed25519"

	"golang.org/x/crypto/curve25519"

	"keyring/internal/crypto"
)

const (
	// SeedSize is the length of the Ed25519 signing seed.
	SeedSize = ed25519.SeedSize
	// SigningKeySize is the length of an Ed25519 public key.
	SigningKeySize = ed25519.PublicKeySize
	// AgreementKeySize is the length of X25519 scalars and points.
	AgreementKeySize = curve25519.PointSize
	// SignatureSize is the length of a signature returned by Secret.Sign.
	SignatureSize = ed25519.SignatureSize
	// TagSize is the authentication tag carried at the end of Envelope.Ciphertext.
	TagSize = crypto.TagSize

	formatMagic   int64 = 0xfe73ba2003
	formatVersion int64 = 1

	materialSecret int64 = 1
	materialPublic int64 = 2
)
