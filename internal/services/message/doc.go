// Package message seals and opens files exchanged between keyrings.
//
// The keyring envelope alone does not say who wrote it. This package signs
// the plaintext with the sender's keyring before encrypting, so the receiver
// can check it against the peer it expects the message from. The signature
// also covers the recipient's agreement key, which stops a received message
// from being re-encrypted and passed on to someone else as if sent to them.
//
// Sealed layout:
//
//	envelope( sig(64) || plaintext )
//	sig = Ed25519( "keyring/sealed/v1" || recipient agreement public || plaintext )
package message
