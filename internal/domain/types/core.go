package types

// PeerName is the local label under which a peer's public keyring is filed.
type PeerName string

// String returns the string form of the peer name.
func (n PeerName) String() string { return string(n) }

// Fingerprint is a short identifier for public keys presented to users.
type Fingerprint string

// String returns the string form of the fingerprint.
func (f Fingerprint) String() string { return string(f) }

// IdentityID is a printable handle derived from a signing key.
type IdentityID string

// String returns the string form of the identity ID.
func (id IdentityID) String() string { return string(id) }
