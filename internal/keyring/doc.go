// Package keyring implements a dual-purpose identity keyring: an Ed25519 key
// pair for signatures and an X25519 key pair for key agreement, combined into
// a hybrid public-key encryption scheme.
//
// # Types
//
//   - Secret: signing seed, expanded signing key, static agreement scalar and
//     a cached copy of the matching Public. Immutable once built.
//   - Public: the two raw public keys. Verifies signatures and is the target
//     of Encrypt.
//   - Envelope: ephemeral X25519 public key plus ciphertext || tag.
//
// # Hybrid encryption
//
// Public.Encrypt draws a fresh ephemeral X25519 key pair, computes the shared
// secret with the recipient's agreement key, derives a 256-bit key with
// PBKDF2-HMAC-SHA256 (1000 iterations, salt {0x00}) over
//
//	shared || ephemeral public || recipient agreement public
//
// and seals the plaintext with ChaCha20-Poly1305 under the fixed nonce
// 00..01 and no associated data. Secret.Decrypt mirrors this using its own
// agreement public key as the third KDF input.
//
// The fixed nonce is safe only while every derived key seals exactly one
// message. The ephemeral key is never cached, logged or reused, and the
// sealing key refuses a second seal.
//
// # Sender authentication
//
// Envelopes are not sender-authenticated: anyone holding a recipient's
// Public can produce one that decrypts. The sender argument to Decrypt is
// accepted for interface symmetry and ignored. Callers that need to know who
// wrote a message must sign it as well; see internal/services/message.
//
// # Serialization
//
// Secret and Public marshal to DER:
//
//	SEQUENCE {
//	  INTEGER magic (0xfe73ba2003)
//	  INTEGER type (1 secret, 2 public)
//	  INTEGER version (1)
//	  OCTET STRING ...key fields
//	}
//
// Parsing checks magic, type and version before reading keys and rebuilds the
// signing key from the stored seed.
//
// # Concurrency
//
// Secret and Public are safe for concurrent use. Randomness comes from the
// io.Reader passed to Generate and Encrypt; nil selects crypto/rand.
package keyring
