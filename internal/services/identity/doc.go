// Package identity manages creation, sealing and use of the local keyring.
//
// It enforces passphrase policy, generates the Ed25519/X25519 keyring, and
// persists its DER encoding via the domain.KeyringStore.
package identity
