package identity_test

import (
	"errors"
	"testing"

	"keyring/internal/services/identity"
	"keyring/internal/store"
)

const strongPass = "Correct-Horse-9-Battery"

func newService(t *testing.T) *identity.Service {
	t.Helper()
	ks := store.NewKeyringFileStore(t.TempDir(), store.ScryptParams{N: 1 << 10, R: 8, P: 1})
	return identity.New(ks, 0, nil)
}

func TestGenerateIdentity_WeakPassphrase(t *testing.T) {
	svc := newService(t)
	for _, p := range []string{"", "short1!A", "alllowercase-123", "ALLUPPERCASE-123", "NoDigitsHere!!", "NoSymbols12345"} {
		if _, _, err := svc.GenerateIdentity(p, false); !errors.Is(err, identity.ErrWeakPassphrase) {
			t.Fatalf("%q: want ErrWeakPassphrase, got %v", p, err)
		}
	}
}

func TestGenerateIdentity_LoadRoundTrip(t *testing.T) {
	svc := newService(t)
	pub, fp, err := svc.GenerateIdentity(strongPass, false)
	if err != nil {
		t.Fatalf("GenerateIdentity: %v", err)
	}
	if fp == "" || fp != pub.Fingerprint() {
		t.Fatalf("fingerprint %q does not match public keyring", fp)
	}

	secret, err := svc.LoadIdentity(strongPass)
	if err != nil {
		t.Fatalf("LoadIdentity: %v", err)
	}
	if !secret.Public().Equal(pub) {
		t.Fatal("loaded keyring differs from generated one")
	}

	got, err := svc.FingerprintIdentity(strongPass)
	if err != nil {
		t.Fatalf("FingerprintIdentity: %v", err)
	}
	if got != fp {
		t.Fatalf("fingerprint = %q, want %q", got, fp)
	}

	sig, err := svc.Sign(strongPass, []byte("doc"))
	if err != nil {
		t.Fatalf("Sign: %v", err)
	}
	if !pub.Verify([]byte("doc"), sig) {
		t.Fatal("signature from service does not verify")
	}
}

func TestGenerateIdentity_RefusesOverwrite(t *testing.T) {
	svc := newService(t)
	first, _, err := svc.GenerateIdentity(strongPass, false)
	if err != nil {
		t.Fatalf("GenerateIdentity: %v", err)
	}
	if _, _, err := svc.GenerateIdentity(strongPass, false); !errors.Is(err, identity.ErrKeyringExists) {
		t.Fatalf("want ErrKeyringExists, got %v", err)
	}
	second, _, err := svc.GenerateIdentity(strongPass, true)
	if err != nil {
		t.Fatalf("GenerateIdentity overwrite: %v", err)
	}
	if first.Equal(second) {
		t.Fatal("overwrite produced the same keyring")
	}
}

func TestLoadIdentity_WrongPassphrase(t *testing.T) {
	svc := newService(t)
	if _, _, err := svc.GenerateIdentity(strongPass, false); err != nil {
		t.Fatalf("GenerateIdentity: %v", err)
	}
	if _, err := svc.LoadIdentity("Wrong-Passphrase-1"); !errors.Is(err, store.ErrWrongPassphrase) {
		t.Fatalf("want ErrWrongPassphrase, got %v", err)
	}
}
