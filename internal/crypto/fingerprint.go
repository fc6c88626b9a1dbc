package crypto

import (
	"crypto/sha256"
	"encoding/hex"

	"github.com/mr-tron/base58/base58"
	"golang.org/x/crypto/blake2b"

	domaintypes "keyring/internal/domain/types"
)

const identityIDPrefix = "kr1"

// Fingerprint returns a short hex fingerprint of a public key.
//
// It hashes with SHA-256 and truncates to 10 bytes (20 hex chars).
func Fingerprint(pub []byte) domaintypes.Fingerprint {
	sum := sha256.Sum256(pub)
	return domaintypes.Fingerprint(hex.EncodeToString(sum[:10]))
}

// IdentityID returns "kr1" followed by the base58 BLAKE2b-256 digest of the
// signing public key.
func IdentityID(signing domaintypes.Ed25519Public) domaintypes.IdentityID {
	h := blake2b.Sum256(signing.Slice())
	return domaintypes.IdentityID(identityIDPrefix + base58.Encode(h[:]))
}
