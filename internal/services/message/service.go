package message

import (
	"errors"
	"fmt"
	"log/slog"

	"keyring/internal/domain"
	"keyring/internal/keyring"
	"keyring/internal/util/memzero"
)

// signatureContext prefixes every signed sealed-message input.
const signatureContext = "keyring/sealed/v1"

var (
	// ErrBadSenderSignature is returned when a message decrypts but was not
	// signed by the named peer.
	ErrBadSenderSignature = errors.New("message was not signed by the named peer")

	// ErrMalformedPayload is returned when the decrypted payload is too short
	// to carry a signature.
	ErrMalformedPayload = errors.New("sealed payload is malformed")
)

// Service seals messages to peers and opens messages from them.
type Service struct {
	ids   domain.IdentityService
	peers domain.PeerService
	log   *slog.Logger
}

// New returns a message service. A nil logger discards output.
func New(ids domain.IdentityService, peers domain.PeerService, log *slog.Logger) *Service {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Service{ids: ids, peers: peers, log: log}
}

// Seal signs plaintext with the local keyring and encrypts it to the peer.
func (s *Service) Seal(
	passphrase string,
	to domain.PeerName,
	plaintext []byte,
) (domain.SealedMessage, error) {
	recipient, err := s.peers.Peer(to)
	if err != nil {
		return nil, err
	}
	me, err := s.ids.LoadIdentity(passphrase)
	if err != nil {
		return nil, err
	}

	sig := me.Sign(signedInput(recipient.EncryptionPublicKey(), plaintext))
	payload := make([]byte, 0, len(sig)+len(plaintext))
	payload = append(payload, sig...)
	payload = append(payload, plaintext...)
	defer memzero.Zero(payload)

	env, err := recipient.Encrypt(nil, payload)
	if err != nil {
		return nil, err
	}
	out, err := env.MarshalBinary()
	if err != nil {
		return nil, err
	}
	s.log.Debug("message sealed",
		slog.String("peer", to.String()),
		slog.Int("bytes", len(plaintext)),
	)
	return out, nil
}

// Open decrypts a sealed message with the local keyring and checks that the
// named peer signed it.
func (s *Service) Open(
	passphrase string,
	from domain.PeerName,
	sealed domain.SealedMessage,
) (domain.OpenedMessage, error) {
	sender, err := s.peers.Peer(from)
	if err != nil {
		return domain.OpenedMessage{}, err
	}
	me, err := s.ids.LoadIdentity(passphrase)
	if err != nil {
		return domain.OpenedMessage{}, err
	}
	env, err := keyring.ParseEnvelope(sealed)
	if err != nil {
		return domain.OpenedMessage{}, err
	}

	payload, err := me.Decrypt(env, sender)
	if err != nil {
		return domain.OpenedMessage{}, err
	}
	if len(payload) < keyring.SignatureSize {
		return domain.OpenedMessage{}, ErrMalformedPayload
	}
	sig, plaintext := payload[:keyring.SignatureSize], payload[keyring.SignatureSize:]

	if !sender.Verify(signedInput(me.Public().EncryptionPublicKey(), plaintext), sig) {
		memzero.Zero(payload)
		s.log.Warn("sender signature rejected", slog.String("peer", from.String()))
		return domain.OpenedMessage{}, fmt.Errorf("%w: %q", ErrBadSenderSignature, from)
	}
	return domain.OpenedMessage{From: from, Plaintext: plaintext}, nil
}

func signedInput(recipientAgreement, plaintext []byte) []byte {
	in := make([]byte, 0, len(signatureContext)+len(recipientAgreement)+len(plaintext))
	in = append(in, signatureContext...)
	in = append(in, recipientAgreement...)
	return append(in, plaintext...)
}

// Compile-time assertion that Service implements domain.MessageService.
var _ domain.MessageService = (*Service)(nil)
