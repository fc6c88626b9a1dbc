package interfaces

import domaintypes "keyring/internal/domain/types"

// KeyringStore persists the serialized secret keyring under a passphrase.
type KeyringStore interface {
	SaveKeyring(passphrase string, der []byte) error
	LoadKeyring(passphrase string) ([]byte, error)
	HasKeyring() (bool, error)
}

// PeerStore keeps the local directory of peer public keyrings.
type PeerStore interface {
	SavePeer(record domaintypes.PeerRecord) error
	LoadPeer(name domaintypes.PeerName) (domaintypes.PeerRecord, bool, error)
	ListPeers() ([]domaintypes.PeerRecord, error)
}
