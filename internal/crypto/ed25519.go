package crypto

import (
	"crypto/ed25519"

	domaintypes "keyring/internal/domain/types"
)

// Ed25519FromSeed expands seed into a signing key pair.
func Ed25519FromSeed(seed domaintypes.Ed25519Seed) (ed25519.PrivateKey, domaintypes.Ed25519Public) {
	priv := ed25519.NewKeyFromSeed(seed.Slice())
	var pub domaintypes.Ed25519Public
	copy(pub[:], priv[ed25519.SeedSize:])
	return priv, pub
}

// SignEd25519 signs msg with priv and returns the signature.
func SignEd25519(priv ed25519.PrivateKey, msg []byte) []byte {
	return ed25519.Sign(priv, msg)
}

// VerifyEd25519 verifies sig over msg with pub. A signature of the wrong
// length is reported as invalid rather than rejected with an error.
func VerifyEd25519(pub domaintypes.Ed25519Public, msg, sig []byte) bool {
	if len(sig) != ed25519.SignatureSize {
		return false
	}
	return ed25519.Verify(ed25519.PublicKey(pub.Slice()), msg, sig)
}
