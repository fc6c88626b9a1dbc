package keyring_test

import (
	"bytes"
	"crypto/sha256"
	"errors"
	"testing"
	"testing/iotest"

	"golang.org/x/crypto/chacha20poly1305"
	"golang.org/x/crypto/curve25519"
	"golang.org/x/crypto/pbkdf2"

	"keyring/internal/keyring"
)

func TestEncryptDecrypt_Hello(t *testing.T) {
	alice := mustGenerate(t)
	bob := mustGenerate(t)

	env, err := bob.Public().Encrypt(nil, []byte("hello"))
	if err != nil {
		t.Fatalf("Encrypt: %v", err)
	}
	pt, err := bob.Decrypt(env, alice.Public())
	if err != nil {
		t.Fatalf("Decrypt: %v", err)
	}
	if string(pt) != "hello" {
		t.Fatalf("got %q, want %q", pt, "hello")
	}
}

func TestEncryptDecrypt_RoundTripSizes(t *testing.T) {
	bob := mustGenerate(t)
	for _, n := range []int{0, 1, 15, 16, 17, 64, 1 << 16} {
		plaintext := bytes.Repeat([]byte{byte(n)}, n)
		env, err := bob.Public().Encrypt(nil, plaintext)
		if err != nil {
			t.Fatalf("Encrypt(%d): %v", n, err)
		}
		if got, want := len(env.Ciphertext), n+keyring.TagSize; got != want {
			t.Fatalf("ciphertext len = %d, want %d", got, want)
		}
		pt, err := bob.Decrypt(env, nil)
		if err != nil {
			t.Fatalf("Decrypt(%d): %v", n, err)
		}
		if !bytes.Equal(pt, plaintext) {
			t.Fatalf("round trip mismatch for %d bytes", n)
		}
	}
}

func TestEncrypt_EphemeralFreshness(t *testing.T) {
	bob := mustGenerate(t)
	e1, err := bob.Public().Encrypt(nil, []byte("same"))
	if err != nil {
		t.Fatalf("Encrypt 1: %v", err)
	}
	e2, err := bob.Public().Encrypt(nil, []byte("same"))
	if err != nil {
		t.Fatalf("Encrypt 2: %v", err)
	}
	if e1.EphemeralPublic == e2.EphemeralPublic {
		t.Fatal("ephemeral public key reused")
	}
	if bytes.Equal(e1.Ciphertext, e2.Ciphertext) {
		t.Fatal("identical ciphertexts for independent encryptions")
	}
}

func TestEncrypt_EntropyFailure(t *testing.T) {
	bob := mustGenerate(t)
	if _, err := bob.Public().Encrypt(iotest.ErrReader(errors.New("dry")), []byte("x")); !errors.Is(err, keyring.ErrEntropy) {
		t.Fatalf("want ErrEntropy, got %v", err)
	}
}

// TestEncrypt_Construction recomputes an envelope by hand from a known
// ephemeral scalar to pin the KDF input order, salt, iteration count and nonce.
func TestEncrypt_Construction(t *testing.T) {
	bob := mustGenerate(t)
	ephRaw := bytes.Repeat([]byte{0x42}, 32)
	plaintext := []byte("pinned construction")

	env, err := bob.Public().Encrypt(bytes.NewReader(ephRaw), plaintext)
	if err != nil {
		t.Fatalf("Encrypt: %v", err)
	}

	ephPub, err := curve25519.X25519(ephRaw, curve25519.Basepoint)
	if err != nil {
		t.Fatalf("X25519 base: %v", err)
	}
	if !bytes.Equal(env.EphemeralPublic[:], ephPub) {
		t.Fatal("ephemeral public key not derived from reader output")
	}
	recipient := bob.Public().EncryptionPublicKey()
	shared, err := curve25519.X25519(ephRaw, recipient)
	if err != nil {
		t.Fatalf("X25519: %v", err)
	}

	ikm := append(append(append([]byte(nil), shared...), ephPub...), recipient...)
	key := pbkdf2.Key(ikm, []byte{0}, 1000, 32, sha256.New)
	aead, err := chacha20poly1305.New(key)
	if err != nil {
		t.Fatalf("chacha20poly1305.New: %v", err)
	}
	nonce := []byte{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 1}
	want := aead.Seal(nil, nonce, plaintext, nil)
	if !bytes.Equal(env.Ciphertext, want) {
		t.Fatal("ciphertext does not match the documented construction")
	}
}

func TestDecrypt_WrongRecipient(t *testing.T) {
	bob := mustGenerate(t)
	eve := mustGenerate(t)
	env, err := bob.Public().Encrypt(nil, []byte("for bob"))
	if err != nil {
		t.Fatalf("Encrypt: %v", err)
	}
	pt, err := eve.Decrypt(env, nil)
	if !errors.Is(err, keyring.ErrDecryptionFailed) {
		t.Fatalf("want ErrDecryptionFailed, got %v", err)
	}
	if pt != nil {
		t.Fatal("plaintext returned on failure")
	}
}

func TestDecrypt_AnyCiphertextByteFlipFails(t *testing.T) {
	bob := mustGenerate(t)
	env, err := bob.Public().Encrypt(nil, []byte("tamper evident"))
	if err != nil {
		t.Fatalf("Encrypt: %v", err)
	}
	for i := range env.Ciphertext {
		bad := &keyring.Envelope{
			EphemeralPublic: env.EphemeralPublic,
			Ciphertext:      append([]byte(nil), env.Ciphertext...),
		}
		bad.Ciphertext[i] ^= 0x01
		if _, err := bob.Decrypt(bad, nil); !errors.Is(err, keyring.ErrDecryptionFailed) {
			t.Fatalf("byte %d flipped: want ErrDecryptionFailed, got %v", i, err)
		}
	}
}

func TestDecrypt_TamperedEphemeralKey(t *testing.T) {
	bob := mustGenerate(t)
	env, err := bob.Public().Encrypt(nil, []byte("x"))
	if err != nil {
		t.Fatalf("Encrypt: %v", err)
	}
	env.EphemeralPublic[3] ^= 0x80
	if _, err := bob.Decrypt(env, nil); !errors.Is(err, keyring.ErrDecryptionFailed) {
		t.Fatalf("want ErrDecryptionFailed, got %v", err)
	}
}

func TestDecrypt_LowOrderEphemeralKey(t *testing.T) {
	bob := mustGenerate(t)
	env := &keyring.Envelope{Ciphertext: make([]byte, keyring.TagSize)}
	if _, err := bob.Decrypt(env, nil); !errors.Is(err, keyring.ErrDecryptionFailed) {
		t.Fatalf("want ErrDecryptionFailed, got %v", err)
	}
}

func TestDecrypt_TruncatedCiphertext(t *testing.T) {
	bob := mustGenerate(t)
	env, err := bob.Public().Encrypt(nil, []byte("x"))
	if err != nil {
		t.Fatalf("Encrypt: %v", err)
	}
	env.Ciphertext = env.Ciphertext[:keyring.TagSize-1]
	if _, err := bob.Decrypt(env, nil); !errors.Is(err, keyring.ErrDecryptionFailed) {
		t.Fatalf("want ErrDecryptionFailed, got %v", err)
	}
	if _, err := bob.Decrypt(nil, nil); !errors.Is(err, keyring.ErrDecryptionFailed) {
		t.Fatalf("nil envelope: want ErrDecryptionFailed, got %v", err)
	}
}

func TestEnvelope_WireRoundTrip(t *testing.T) {
	bob := mustGenerate(t)
	env, err := bob.Public().Encrypt(nil, []byte("over the wire"))
	if err != nil {
		t.Fatalf("Encrypt: %v", err)
	}
	raw, err := env.MarshalBinary()
	if err != nil {
		t.Fatalf("MarshalBinary: %v", err)
	}
	if !bytes.Equal(raw[:keyring.AgreementKeySize], env.EphemeralPublic[:]) {
		t.Fatal("ephemeral key is not the wire prefix")
	}
	if !bytes.Equal(raw[len(raw)-keyring.TagSize:], env.Ciphertext[len(env.Ciphertext)-keyring.TagSize:]) {
		t.Fatal("tag is not the wire suffix")
	}

	got, err := keyring.ParseEnvelope(raw)
	if err != nil {
		t.Fatalf("ParseEnvelope: %v", err)
	}
	pt, err := bob.Decrypt(got, nil)
	if err != nil {
		t.Fatalf("Decrypt: %v", err)
	}
	if string(pt) != "over the wire" {
		t.Fatalf("got %q", pt)
	}

	if _, err := keyring.ParseEnvelope(raw[:keyring.AgreementKeySize+keyring.TagSize-1]); !errors.Is(err, keyring.ErrInvalidEnvelope) {
		t.Fatalf("short envelope: want ErrInvalidEnvelope, got %v", err)
	}
}
