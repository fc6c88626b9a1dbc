package keyring

import (
	"crypto/subtle"
	"fmt"

	"golang.org/x/crypto/cryptobyte"
	"golang.org/x/crypto/cryptobyte/asn1"

	domaintypes "keyring/internal/domain/types"
)

// MarshalBinary serializes the secret keyring as DER: magic, type (secret),
// version, signing seed, signing public key, agreement scalar and agreement
// public key.
func (s *Secret) MarshalBinary() ([]byte, error) {
	var b cryptobyte.Builder
	b.AddASN1(asn1.SEQUENCE, func(b *cryptobyte.Builder) {
		addHeader(b, materialSecret)
		b.AddASN1OctetString(s.seed[:])
		b.AddASN1OctetString(s.public.signing[:])
		b.AddASN1OctetString(s.agreement[:])
		b.AddASN1OctetString(s.public.agreement[:])
	})
	return b.Bytes()
}

// MarshalBinary serializes the public keyring as DER: magic, type (public),
// version, signing public key and agreement public key.
func (p *Public) MarshalBinary() ([]byte, error) {
	var b cryptobyte.Builder
	b.AddASN1(asn1.SEQUENCE, func(b *cryptobyte.Builder) {
		addHeader(b, materialPublic)
		b.AddASN1OctetString(p.signing[:])
		b.AddASN1OctetString(p.agreement[:])
	})
	return b.Bytes()
}

// ParseSecret rebuilds a Secret from MarshalBinary output. The signing key is
// expanded from the stored seed; stored public keys must match the derived
// ones.
func ParseSecret(der []byte) (*Secret, error) {
	body, err := readHeader(der, materialSecret)
	if err != nil {
		return nil, err
	}

	var seed, signingPub, agreement, agreementPub []byte
	if !body.ReadASN1Bytes(&seed, asn1.OCTET_STRING) ||
		!body.ReadASN1Bytes(&signingPub, asn1.OCTET_STRING) ||
		!body.ReadASN1Bytes(&agreement, asn1.OCTET_STRING) ||
		!body.ReadASN1Bytes(&agreementPub, asn1.OCTET_STRING) ||
		!body.Empty() {
		return nil, fmt.Errorf("%w: secret key fields", ErrInvalidEncoding)
	}
	if len(seed) != SeedSize || len(signingPub) != SigningKeySize ||
		len(agreement) != AgreementKeySize || len(agreementPub) != AgreementKeySize {
		return nil, fmt.Errorf("%w: secret key fields", ErrInvalidKeySize)
	}

	var (
		seedArr      domaintypes.Ed25519Seed
		agreementArr domaintypes.X25519Private
	)
	copy(seedArr[:], seed)
	copy(agreementArr[:], agreement)

	s, err := newSecret(seedArr, agreementArr)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidEncoding, err)
	}
	if subtle.ConstantTimeCompare(s.public.signing[:], signingPub) != 1 {
		return nil, fmt.Errorf("%w: signing key", ErrKeyMismatch)
	}
	if subtle.ConstantTimeCompare(s.public.agreement[:], agreementPub) != 1 {
		return nil, fmt.Errorf("%w: agreement key", ErrKeyMismatch)
	}
	return s, nil
}

// ParsePublic rebuilds a Public from MarshalBinary output.
func ParsePublic(der []byte) (*Public, error) {
	body, err := readHeader(der, materialPublic)
	if err != nil {
		return nil, err
	}

	var signing, agreement []byte
	if !body.ReadASN1Bytes(&signing, asn1.OCTET_STRING) ||
		!body.ReadASN1Bytes(&agreement, asn1.OCTET_STRING) ||
		!body.Empty() {
		return nil, fmt.Errorf("%w: public key fields", ErrInvalidEncoding)
	}
	return NewPublic(signing, agreement)
}

func addHeader(b *cryptobyte.Builder, material int64) {
	b.AddASN1Int64(formatMagic)
	b.AddASN1Int64(material)
	b.AddASN1Int64(formatVersion)
}

// readHeader unwraps the outer SEQUENCE and checks magic, material type and
// version, returning the remaining key fields.
func readHeader(der []byte, want int64) (cryptobyte.String, error) {
	input := cryptobyte.String(der)
	var body cryptobyte.String
	if !input.ReadASN1(&body, asn1.SEQUENCE) || !input.Empty() {
		return nil, fmt.Errorf("%w: outer sequence", ErrInvalidEncoding)
	}

	var magic, material, version int64
	if !body.ReadASN1Integer(&magic) {
		return nil, fmt.Errorf("%w: magic", ErrInvalidEncoding)
	}
	if magic != formatMagic {
		return nil, fmt.Errorf("%w: %#x", ErrUnknownMagic, magic)
	}
	if !body.ReadASN1Integer(&material) {
		return nil, fmt.Errorf("%w: material type", ErrInvalidEncoding)
	}
	if material != want {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrWrongMaterial, material, want)
	}
	if !body.ReadASN1Integer(&version) {
		return nil, fmt.Errorf("%w: version", ErrInvalidEncoding)
	}
	if version != formatVersion {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedVersion, version)
	}
	return body, nil
}
