package interfaces

import (
	domaintypes "keyring/internal/domain/types"
	"keyring/internal/keyring"
)

// IdentityService creates, retrieves, and uses your secret keyring.
type IdentityService interface {
	GenerateIdentity(passphrase string, overwrite bool) (
		*keyring.Public,
		domaintypes.Fingerprint,
		error,
	)
	LoadIdentity(passphrase string) (*keyring.Secret, error)
	PublicKeyring(passphrase string) (*keyring.Public, error)
	FingerprintIdentity(passphrase string) (domaintypes.Fingerprint, error)
	Sign(passphrase string, message []byte) ([]byte, error)
}

// PeerService files and looks up other parties' public keyrings.
type PeerService interface {
	ImportPeer(name domaintypes.PeerName, der []byte) (domaintypes.PeerRecord, error)
	Peer(name domaintypes.PeerName) (*keyring.Public, error)
	ListPeers() ([]domaintypes.PeerRecord, error)
	VerifyFrom(name domaintypes.PeerName, message, signature []byte) (bool, error)
}

// MessageService seals and opens sender-authenticated messages.
type MessageService interface {
	Seal(
		passphrase string,
		to domaintypes.PeerName,
		plaintext []byte,
	) (domaintypes.SealedMessage, error)
	Open(
		passphrase string,
		from domaintypes.PeerName,
		sealed domaintypes.SealedMessage,
	) (domaintypes.OpenedMessage, error)
}
