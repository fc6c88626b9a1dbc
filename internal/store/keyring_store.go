package store

import (
	"errors"
	"os"
	"path/filepath"
	"sync"

	"keyring/internal/domain"
)

const keyringFilename = "keyring.der.enc"

// ErrNoKeyring is returned by LoadKeyring when nothing has been saved yet.
var ErrNoKeyring = errors.New("no keyring found; run init first")

// KeyringFileStore persists the serialized secret keyring to disk.
type KeyringFileStore struct {
	dir    string
	params ScryptParams
	mu     sync.Mutex
}

// NewKeyringFileStore returns a KeyringFileStore rooted at dir.
func NewKeyringFileStore(dir string, params ScryptParams) *KeyringFileStore {
	return &KeyringFileStore{dir: dir, params: params}
}

// SaveKeyring seals der under passphrase and writes it to disk.
func (s *KeyringFileStore) SaveKeyring(passphrase string, der []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	ct, err := seal(passphrase, der, s.params)
	if err != nil {
		return err
	}
	return writeFile(s.path(), ct)
}

// LoadKeyring reads and unseals the serialized keyring.
func (s *KeyringFileStore) LoadKeyring(passphrase string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, err := readFile(s.path())
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, ErrNoKeyring
	}
	return unseal(passphrase, b)
}

// HasKeyring reports whether a keyring file exists.
func (s *KeyringFileStore) HasKeyring() (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := os.Stat(s.path())
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	return err == nil, err
}

func (s *KeyringFileStore) path() string { return filepath.Join(s.dir, keyringFilename) }

// Compile-time assertion that KeyringFileStore implements domain.KeyringStore.
var _ domain.KeyringStore = (*KeyringFileStore)(nil)
