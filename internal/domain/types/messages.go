package types

// SealedMessage is the wire form of a sender-authenticated message: the
// binary encoding of a keyring envelope whose plaintext is
// signature || message.
type SealedMessage []byte

// OpenedMessage is what MessageService.Open returns.
type OpenedMessage struct {
	From      PeerName `json:"from"`
	Plaintext []byte   `json:"plaintext"`
}
