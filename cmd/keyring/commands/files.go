package commands

import (
	"bytes"
	"os"

	"keyring/internal/crypto"
)

// derSequenceTag is the first byte of every DER keyring.
const derSequenceTag = 0x30

func writeOutput(path string, b []byte) error {
	return os.WriteFile(path, b, 0o600)
}

// readKeyringFile accepts raw DER or its base64 text form.
func readKeyringFile(path string) ([]byte, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if len(b) > 0 && b[0] == derSequenceTag {
		return b, nil
	}
	return crypto.FromB64(string(bytes.TrimSpace(b)))
}
