package peer

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"keyring/internal/domain"
	"keyring/internal/keyring"
)

var (
	// ErrUnknownPeer is returned when no keyring is filed under the name.
	ErrUnknownPeer = errors.New("unknown peer")

	// ErrInvalidName is returned for empty or whitespace-padded peer names
	// and for SelfName.
	ErrInvalidName = errors.New("invalid peer name")
)

// SelfName refers to the local keyring and cannot name a peer.
const SelfName domain.PeerName = "self"

// Service is the peer directory.
type Service struct {
	store domain.PeerStore
	log   *slog.Logger
	now   func() time.Time
}

// New returns a peer service backed by the given store. A nil logger
// discards output.
func New(s domain.PeerStore, log *slog.Logger) *Service {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Service{store: s, log: log, now: time.Now}
}

// ImportPeer parses der as a public keyring and files it under name,
// replacing any previous entry.
func (s *Service) ImportPeer(name domain.PeerName, der []byte) (domain.PeerRecord, error) {
	if err := validName(name); err != nil {
		return domain.PeerRecord{}, err
	}
	pub, err := keyring.ParsePublic(der)
	if err != nil {
		return domain.PeerRecord{}, fmt.Errorf("import %q: %w", name, err)
	}
	canonical, err := pub.MarshalBinary()
	if err != nil {
		return domain.PeerRecord{}, err
	}

	rec := domain.PeerRecord{
		Name:     name,
		Public:   canonical,
		Print:    pub.Fingerprint(),
		AddedUTC: s.now().UTC().Unix(),
	}
	if err := s.store.SavePeer(rec); err != nil {
		return domain.PeerRecord{}, err
	}
	s.log.Info("peer imported",
		slog.String("peer", name.String()),
		slog.String("fingerprint", rec.Print.String()),
	)
	return rec, nil
}

// Peer returns the public keyring filed under name.
func (s *Service) Peer(name domain.PeerName) (*keyring.Public, error) {
	rec, ok, err := s.store.LoadPeer(name)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownPeer, name)
	}
	pub, err := keyring.ParsePublic(rec.Public)
	if err != nil {
		return nil, fmt.Errorf("stored peer %q: %w", name, err)
	}
	return pub, nil
}

// ListPeers returns the directory sorted by name.
func (s *Service) ListPeers() ([]domain.PeerRecord, error) {
	return s.store.ListPeers()
}

// VerifyFrom reports whether signature is name's signature over message.
// An unknown peer is an error; a bad signature is simply false.
func (s *Service) VerifyFrom(name domain.PeerName, message, signature []byte) (bool, error) {
	pub, err := s.Peer(name)
	if err != nil {
		return false, err
	}
	return pub.Verify(message, signature), nil
}

func validName(name domain.PeerName) error {
	n := string(name)
	if n == "" || strings.TrimSpace(n) != n || name == SelfName {
		return fmt.Errorf("%w: %q", ErrInvalidName, n)
	}
	return nil
}

// Compile-time assertion that Service implements domain.PeerService.
var _ domain.PeerService = (*Service)(nil)
