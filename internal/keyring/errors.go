package keyring

import "errors"

var (
	// ErrEntropy is returned when the random source fails to deliver key material.
	ErrEntropy = errors.New("random source failed")

	// ErrInvalidKeySize is returned when a raw key has the wrong length.
	ErrInvalidKeySize = errors.New("invalid key size")

	// ErrInvalidEncoding is returned when serialized keyring bytes are not well-formed DER
	// of the expected shape.
	ErrInvalidEncoding = errors.New("invalid keyring encoding")

	// ErrUnknownMagic is returned when serialized bytes do not carry the keyring magic number.
	ErrUnknownMagic = errors.New("unknown keyring magic")

	// ErrWrongMaterial is returned when public material is parsed as secret or vice versa.
	ErrWrongMaterial = errors.New("wrong keyring material type")

	// ErrUnsupportedVersion is returned for an unknown format version.
	ErrUnsupportedVersion = errors.New("unsupported keyring version")

	// ErrKeyMismatch is returned when stored public keys disagree with the ones
	// derived from the stored secrets.
	ErrKeyMismatch = errors.New("stored public key does not match secret")

	// ErrInvalidEnvelope is returned when envelope bytes are too short to hold an
	// ephemeral key and a tag.
	ErrInvalidEnvelope = errors.New("invalid envelope")

	// ErrDecryptionFailed is returned when an envelope cannot be opened: tampered
	// ciphertext, wrong recipient or an invalid ephemeral key.
	ErrDecryptionFailed = errors.New("decryption failed")
)
