package app

import (
	"log/slog"

	"keyring/internal/domain"
	identitysvc "keyring/internal/services/identity"
	messagesvc "keyring/internal/services/message"
	peersvc "keyring/internal/services/peer"
	"keyring/internal/store"
)

// Wire bundles all stores and services for the CLI.
type Wire struct {
	Keyrings domain.KeyringStore
	Identity domain.IdentityService
	Peers    domain.PeerService
	Messages domain.MessageService
	Log      *slog.Logger
}

// NewWire constructs the dependency graph from cfg. A nil logger discards output.
func NewWire(cfg Config, log *slog.Logger) *Wire {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}

	// File-based stores
	keyringStore := store.NewKeyringFileStore(cfg.Home, cfg.Scrypt)
	peerStore := store.NewPeerFileStore(cfg.Home)

	// High-level services
	identitySvc := identitysvc.New(keyringStore, cfg.MinPassphraseLength, log.With("component", "identity"))
	peerSvc := peersvc.New(peerStore, log.With("component", "peer"))
	messageSvc := messagesvc.New(identitySvc, peerSvc, log.With("component", "message"))

	return &Wire{
		Keyrings: keyringStore,
		Identity: identitySvc,
		Peers:    peerSvc,
		Messages: messageSvc,
		Log:      log,
	}
}
