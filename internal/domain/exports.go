package domain

import (
	interfaces "keyring/internal/domain/interfaces"
	types "keyring/internal/domain/types"
)

// Type aliases expose domain types from the types subpackage for compact imports.
type (
	PeerName      = types.PeerName
	Fingerprint   = types.Fingerprint
	IdentityID    = types.IdentityID
	PeerRecord    = types.PeerRecord
	SealedMessage = types.SealedMessage
	OpenedMessage = types.OpenedMessage
	X25519Public  = types.X25519Public
	X25519Private = types.X25519Private
	Ed25519Public = types.Ed25519Public
	Ed25519Seed   = types.Ed25519Seed
)

// Interface aliases expose domain interfaces from the interfaces subpackage.
type (
	IdentityService = interfaces.IdentityService
	PeerService     = interfaces.PeerService
	MessageService  = interfaces.MessageService
	KeyringStore    = interfaces.KeyringStore
	PeerStore       = interfaces.PeerStore
)
