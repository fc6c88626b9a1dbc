package memzero_test

import (
	"bytes"
	"testing"

	"keyring/internal/util/memzero"
)

func TestZero_ClearsSlice(t *testing.T) {
	b := []byte{1, 2, 3, 4}
	memzero.Zero(b)
	if !bytes.Equal(b, make([]byte, 4)) {
		t.Fatalf("not wiped: %v", b)
	}
	memzero.Zero(nil)
}

func TestZero32_ClearsArray(t *testing.T) {
	k := [32]byte{0xff, 0xee}
	memzero.Zero32(&k)
	if k != ([32]byte{}) {
		t.Fatalf("not wiped: %x", k)
	}
	memzero.Zero32(nil)
}
