package store

import (
	"path/filepath"
	"sync"

	"github.com/rajan221209/Chemistry-Calculator/internal/domain"
)

const (
	historyFilename = "history.json"

	// DefaultHistoryLimit caps the history file when no limit is configured.
	DefaultHistoryLimit = 100
)

// HistoryFileStore keeps the most recent evaluations on disk, oldest first.
type HistoryFileStore struct {
	dir   string
	limit int
	seal  sealer
	mu    sync.Mutex
}

// NewHistoryFileStore returns a HistoryFileStore rooted at dir that keeps at
// most limit entries. A limit <= 0 selects DefaultHistoryLimit.
func NewHistoryFileStore(dir, passphrase string, limit int) *HistoryFileStore {
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}
	return &HistoryFileStore{dir: dir, limit: limit, seal: sealer{passphrase: passphrase}}
}

// AppendEntry records entry, dropping the oldest entries beyond the limit.
func (s *HistoryFileStore) AppendEntry(entry domain.HistoryEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	path := filepath.Join(s.dir, historyFilename)
	var entries []domain.HistoryEntry
	if _, err := readJSON(path, &entries, s.seal); err != nil {
		return err
	}
	entries = append(entries, entry)
	if len(entries) > s.limit {
		entries = entries[len(entries)-s.limit:]
	}
	return writeJSON(path, entries, 0o600, s.seal)
}

// ListEntries returns up to limit of the most recent entries, oldest first.
// A limit <= 0 returns everything stored.
func (s *HistoryFileStore) ListEntries(limit int) ([]domain.HistoryEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var entries []domain.HistoryEntry
	if _, err := readJSON(filepath.Join(s.dir, historyFilename), &entries, s.seal); err != nil {
		return nil, err
	}
	if limit > 0 && len(entries) > limit {
		entries = entries[len(entries)-limit:]
	}
	return entries, nil
}

// ClearEntries removes the history file.
func (s *HistoryFileStore) ClearEntries() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return removeFile(filepath.Join(s.dir, historyFilename))
}

// Compile-time assertion that HistoryFileStore implements domain.HistoryStore.
var _ domain.HistoryStore = (*HistoryFileStore)(nil)
