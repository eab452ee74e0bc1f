package calculator

import (
	"context"
	"time"

	"github.com/rajan221209/Chemistry-Calculator/internal/domain"
	"github.com/rajan221209/Chemistry-Calculator/internal/session"
)

// Service persists one session across invocations.
//
// Each call:
//   - Restores the buffer from the snapshot store on first use.
//   - Applies the operation to the in-memory session.
//   - Writes the resulting buffer back to the snapshot store.
//
// Evaluate additionally appends a history entry.
type Service struct {
	sess    *session.Session
	snaps   domain.SnapshotStore
	history domain.HistoryStore
	now     func() time.Time
	loaded  bool
}

// New constructs a Service evaluating with ev and persisting to the given
// stores.
func New(
	ev domain.Evaluator,
	snaps domain.SnapshotStore,
	history domain.HistoryStore,
) *Service {
	return &Service{
		sess:    session.New(ev),
		snaps:   snaps,
		history: history,
		now:     time.Now,
	}
}

// Press appends each key to the buffer. Keys the bracket guard rejects are
// dropped without error.
func (s *Service) Press(_ context.Context, keys ...rune) (domain.Display, error) {
	if err := s.load(); err != nil {
		return "", err
	}
	for _, k := range keys {
		s.sess.Append(k)
	}
	return s.save()
}

// Clear empties the buffer.
func (s *Service) Clear(_ context.Context) error {
	if err := s.load(); err != nil {
		return err
	}
	s.sess.Clear()
	_, err := s.save()
	return err
}

// Backspace removes the last character of the buffer.
func (s *Service) Backspace(_ context.Context) (domain.Display, error) {
	if err := s.load(); err != nil {
		return "", err
	}
	s.sess.Backspace()
	return s.save()
}

// Evaluate evaluates the buffer, saves the result and records it in the
// history. The returned error reports persistence failures only; an
// evaluation failure is carried in Outcome.Err.
func (s *Service) Evaluate(_ context.Context) (domain.Outcome, error) {
	if err := s.load(); err != nil {
		return domain.Outcome{}, err
	}
	out := s.sess.Evaluate()
	if _, err := s.save(); err != nil {
		return out, err
	}
	entry := domain.HistoryEntry{
		Input:      out.Input,
		Normalized: out.Normalized,
		Display:    out.Display,
		Value:      out.Value,
		OK:         out.OK(),
		AtUTC:      s.now().UTC().Unix(),
	}
	if err := s.history.AppendEntry(entry); err != nil {
		return out, err
	}
	return out, nil
}

// Text returns the current buffer.
func (s *Service) Text(_ context.Context) (domain.Display, error) {
	if err := s.load(); err != nil {
		return "", err
	}
	return domain.Display(s.sess.Text()), nil
}

// History returns up to limit recent evaluations, oldest first.
func (s *Service) History(_ context.Context, limit int) ([]domain.HistoryEntry, error) {
	return s.history.ListEntries(limit)
}

func (s *Service) load() error {
	if s.loaded {
		return nil
	}
	snap, ok, err := s.snaps.LoadSnapshot()
	if err != nil {
		return err
	}
	if ok {
		s.sess.Restore(snap.Text)
	}
	s.loaded = true
	return nil
}

func (s *Service) save() (domain.Display, error) {
	text := s.sess.Text()
	snap := domain.Snapshot{Text: text, UpdatedUTC: s.now().UTC().Unix()}
	if err := s.snaps.SaveSnapshot(snap); err != nil {
		return "", err
	}
	return domain.Display(text), nil
}

// Compile-time assertion that Service implements domain.CalculatorService.
var _ domain.CalculatorService = (*Service)(nil)
