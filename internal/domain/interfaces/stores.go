package interfaces

import domaintypes "github.com/rajan221209/Chemistry-Calculator/internal/domain/types"

// SnapshotStore persists the input buffer between invocations.
type SnapshotStore interface {
	SaveSnapshot(snap domaintypes.Snapshot) error
	LoadSnapshot() (domaintypes.Snapshot, bool, error)
}

// HistoryStore keeps a bounded log of evaluations.
type HistoryStore interface {
	AppendEntry(entry domaintypes.HistoryEntry) error
	ListEntries(limit int) ([]domaintypes.HistoryEntry, error)
	ClearEntries() error
}
