package store

import (
	"path/filepath"
	"sort"
	"sync"

	"keyring/internal/domain"
)

const peersFilename = "peers.json"

// PeerFileStore keeps peer public keyrings in a single JSON file.
type PeerFileStore struct {
	dir string
	mu  sync.Mutex
}

// NewPeerFileStore returns a PeerFileStore rooted at dir.
func NewPeerFileStore(dir string) *PeerFileStore {
	return &PeerFileStore{dir: dir}
}

// SavePeer stores or replaces the record filed under record.Name.
func (s *PeerFileStore) SavePeer(record domain.PeerRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	m, err := s.load()
	if err != nil {
		return err
	}
	m[record.Name] = record
	return writeJSON(s.path(), m)
}

// LoadPeer returns the record filed under name and whether it was present.
func (s *PeerFileStore) LoadPeer(name domain.PeerName) (domain.PeerRecord, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	m, err := s.load()
	if err != nil {
		return domain.PeerRecord{}, false, err
	}
	rec, ok := m[name]
	return rec, ok, nil
}

// ListPeers returns every record sorted by name.
func (s *PeerFileStore) ListPeers() ([]domain.PeerRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	m, err := s.load()
	if err != nil {
		return nil, err
	}
	out := make([]domain.PeerRecord, 0, len(m))
	for _, rec := range m {
		out = append(out, rec)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (s *PeerFileStore) load() (map[domain.PeerName]domain.PeerRecord, error) {
	m := make(map[domain.PeerName]domain.PeerRecord)
	if err := readJSON(s.path(), &m); err != nil {
		return nil, err
	}
	return m, nil
}

func (s *PeerFileStore) path() string { return filepath.Join(s.dir, peersFilename) }

// Compile-time assertion that PeerFileStore implements domain.PeerStore.
var _ domain.PeerStore = (*PeerFileStore)(nil)
