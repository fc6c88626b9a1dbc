package types

// PeerRecord is a peer's public keyring as filed in the local directory.
// Public holds the DER encoding produced by keyring.Public.MarshalBinary.
type PeerRecord struct {
	Name     PeerName    `json:"name"`
	Public   []byte      `json:"public"`
	Print    Fingerprint `json:"fingerprint"`
	AddedUTC int64       `json:"added_utc"`
}
