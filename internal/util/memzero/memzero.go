// Package memzero wipes key material held in byte slices and fixed arrays.
package memzero

import "runtime"

// Zero overwrites b with zeros. It is best effort: copies the runtime made
// earlier are out of reach.
//
//go:noinline
func Zero(b []byte) {
	clear(b)
	runtime.KeepAlive(b)
}

// Zero32 wipes a 32-byte key or shared secret in place.
func Zero32(k *[32]byte) {
	if k == nil {
		return
	}
	Zero(k[:])
}
