package crypto

import (
	"crypto/sha256"

	"golang.org/x/crypto/pbkdf2"

	"keyring/internal/util/memzero"
)

const (
	// EnvelopeKeySize is the length of keys produced by DeriveEnvelopeKey.
	EnvelopeKeySize = 32
	// EnvelopeKDFIterations is the fixed PBKDF2 iteration count.
	EnvelopeKDFIterations = 1000
)

// envelopeKDFSalt is fixed; freshness comes from the ephemeral secret in the input.
var envelopeKDFSalt = []byte{0}

// DeriveEnvelopeKey runs PBKDF2-HMAC-SHA256 over
// shared || ephemeralPub || recipientPub and returns a 256-bit key.
func DeriveEnvelopeKey(shared, ephemeralPub, recipientPub []byte) []byte {
	ikm := make([]byte, 0, len(shared)+len(ephemeralPub)+len(recipientPub))
	ikm = append(ikm, shared...)
	ikm = append(ikm, ephemeralPub...)
	ikm = append(ikm, recipientPub...)
	defer memzero.Zero(ikm)

	return pbkdf2.Key(ikm, envelopeKDFSalt, EnvelopeKDFIterations, EnvelopeKeySize, sha256.New)
}
