package store

import (
	"path/filepath"
	"sync"

	"github.com/rajan221209/Chemistry-Calculator/internal/domain"
)

const sessionFilename = "session.json"

// SessionFileStore persists the input buffer of the local session to disk.
type SessionFileStore struct {
	dir  string
	seal sealer
	mu   sync.Mutex
}

// NewSessionFileStore returns a SessionFileStore rooted at dir. A non-empty
// passphrase seals the file.
func NewSessionFileStore(dir, passphrase string) *SessionFileStore {
	return &SessionFileStore{dir: dir, seal: sealer{passphrase: passphrase}}
}

// SaveSnapshot writes snap, replacing any previous snapshot.
func (s *SessionFileStore) SaveSnapshot(snap domain.Snapshot) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return writeJSON(filepath.Join(s.dir, sessionFilename), snap, 0o600, s.seal)
}

// LoadSnapshot retrieves the stored snapshot; ok is false if none exists.
func (s *SessionFileStore) LoadSnapshot() (domain.Snapshot, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var snap domain.Snapshot
	ok, err := readJSON(filepath.Join(s.dir, sessionFilename), &snap, s.seal)
	if err != nil {
		return domain.Snapshot{}, false, err
	}
	return snap, ok, nil
}

// Compile-time assertion that SessionFileStore implements domain.SnapshotStore.
var _ domain.SnapshotStore = (*SessionFileStore)(nil)
