// Package crypto exposes the minimal primitives the keyring is built from.
//
// Contents
//
//   - X25519 key generation, clamping and Diffie–Hellman (GenerateX25519,
//     X25519PublicKey, DH)
//   - Ed25519 key expansion from a seed, signing and verification
//     (Ed25519FromSeed, SignEd25519, VerifyEd25519)
//   - PBKDF2-HMAC-SHA256 derivation of envelope keys (DeriveEnvelopeKey)
//   - One-shot ChaCha20-Poly1305 sealing keys with a fixed nonce
//     (NewSealingKey, Open)
//   - Short public-key fingerprints and identity IDs for display
//     (Fingerprint, IdentityID)
//
// # Notes
//
// Key types are fixed-size arrays defined in internal/domain/types to avoid
// accidental reallocations. Every function that needs randomness takes an
// io.Reader; nil selects crypto/rand. Derived keys are wiped with
// memzero.Zero once they are no longer needed.
package crypto
