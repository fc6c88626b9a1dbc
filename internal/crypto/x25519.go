package crypto

import (
	"crypto/rand"
	"io"

	"golang.org/x/crypto/curve25519"

	domaintypes "keyring/internal/domain/types"
)

// GenerateX25519 returns a fresh Curve25519 key pair drawn from r.
// The private key is clamped per RFC 7748. A nil r uses crypto/rand.
func GenerateX25519(r io.Reader) (priv domaintypes.X25519Private, pub domaintypes.X25519Public, err error) {
	if r == nil {
		r = rand.Reader
	}
	if _, err = io.ReadFull(r, priv[:]); err != nil {
		return
	}
	clamp(&priv)
	pub, err = X25519PublicKey(priv)
	return
}

// X25519PublicKey returns the public point for priv.
func X25519PublicKey(priv domaintypes.X25519Private) (pub domaintypes.X25519Public, err error) {
	pb, err := curve25519.X25519(priv.Slice(), curve25519.Basepoint)
	if err != nil {
		return pub, err
	}
	copy(pub[:], pb)
	return pub, nil
}

// DH computes X25519 Diffie–Hellman. It fails if pub is a low-order point.
func DH(priv domaintypes.X25519Private, pub domaintypes.X25519Public) (out [32]byte, err error) {
	secret, err := curve25519.X25519(priv.Slice(), pub.Slice())
	if err != nil {
		return out, err
	}
	copy(out[:], secret)
	return out, nil
}

func clamp(k *domaintypes.X25519Private) {
	kb := k[:]
	kb[0] &= 248
	kb[31] &= 127
	kb[31] |= 64
}
