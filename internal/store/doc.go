// Package store provides file-based persistence around the keyring core.
//
// It contains concrete implementations of the domain storage interfaces.
// All methods are concurrency-safe via internal locking and files are written
// atomically (temp file, chmod, rename) with mode 0600 under the configured
// home directory.
//
// The package includes stores for:
//   - The local secret keyring (KeyringFileStore), kept as its DER encoding
//     sealed under a passphrase with scrypt and ChaCha20-Poly1305
//   - Peer public keyrings (PeerFileStore), kept as JSON
package store
