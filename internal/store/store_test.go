package store_test

import (
	"errors"
	"testing"

	"github.com/rajan221209/Chemistry-Calculator/internal/domain"
	"github.com/rajan221209/Chemistry-Calculator/internal/store"
)

func TestSnapshot_SaveLoad_OK(t *testing.T) {
	home := t.TempDir()
	var ss domain.SnapshotStore = store.NewSessionFileStore(home, "")

	if _, ok, err := ss.LoadSnapshot(); err != nil || ok {
		t.Fatalf("load empty store: ok=%v err=%v", ok, err)
	}

	want := domain.Snapshot{Text: "2(√16", UpdatedUTC: 1700000000}
	if err := ss.SaveSnapshot(want); err != nil {
		t.Fatalf("save snapshot: %v", err)
	}
	got, ok, err := ss.LoadSnapshot()
	if err != nil || !ok {
		t.Fatalf("load snapshot: ok=%v err=%v", ok, err)
	}
	if got != want {
		t.Fatalf("got %+v, want %+v", got, want)
	}
}

func TestSnapshot_Sealed_RoundTrip(t *testing.T) {
	home := t.TempDir()
	sealed := store.NewSessionFileStore(home, "correct")

	want := domain.Snapshot{Text: "πK", UpdatedUTC: 1}
	if err := sealed.SaveSnapshot(want); err != nil {
		t.Fatalf("save snapshot: %v", err)
	}
	got, ok, err := sealed.LoadSnapshot()
	if err != nil || !ok || got != want {
		t.Fatalf("load snapshot: got=%+v ok=%v err=%v", got, ok, err)
	}

	if _, _, err := store.NewSessionFileStore(home, "wrong").LoadSnapshot(); !errors.Is(err, store.ErrWrongPassphrase) {
		t.Fatalf("wrong passphrase: err=%v, want ErrWrongPassphrase", err)
	}
	if _, _, err := store.NewSessionFileStore(home, "").LoadSnapshot(); !errors.Is(err, store.ErrWrongPassphrase) {
		t.Fatalf("missing passphrase: err=%v, want ErrWrongPassphrase", err)
	}
}

func TestHistory_AppendListClear(t *testing.T) {
	home := t.TempDir()
	var hs domain.HistoryStore = store.NewHistoryFileStore(home, "", 3)

	for i, in := range []string{"1", "2", "3", "4"} {
		e := domain.HistoryEntry{Input: in, Normalized: in, Display: "x", OK: true, AtUTC: int64(i)}
		if err := hs.AppendEntry(e); err != nil {
			t.Fatalf("append %q: %v", in, err)
		}
	}

	all, err := hs.ListEntries(0)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(all) != 3 || all[0].Input != "2" || all[2].Input != "4" {
		t.Fatalf("list = %+v, want inputs 2..4", all)
	}

	last, err := hs.ListEntries(1)
	if err != nil || len(last) != 1 || last[0].Input != "4" {
		t.Fatalf("list(1) = %+v, err=%v", last, err)
	}

	if err := hs.ClearEntries(); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if err := hs.ClearEntries(); err != nil {
		t.Fatalf("clear twice: %v", err)
	}
	empty, err := hs.ListEntries(0)
	if err != nil || len(empty) != 0 {
		t.Fatalf("after clear: %+v, err=%v", empty, err)
	}
}
