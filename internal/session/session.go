package session

import (
	"github.com/rajan221209/Chemistry-Calculator/internal/bracket"
	"github.com/rajan221209/Chemistry-Calculator/internal/domain"
	"github.com/rajan221209/Chemistry-Calculator/internal/format"
	"github.com/rajan221209/Chemistry-Calculator/internal/normalize"
)

// Session holds one input buffer. The buffer never contains more ')' than
// '('.
type Session struct {
	buf []rune
	ev  domain.Evaluator
}

// New returns an empty session that evaluates with ev.
func New(ev domain.Evaluator) *Session {
	return &Session{ev: ev}
}

// Append adds ch to the buffer unless the bracket guard rejects it.
// Rejections are silent.
func (s *Session) Append(ch rune) {
	if !bracket.Accept(string(s.buf), ch) {
		return
	}
	s.buf = append(s.buf, ch)
}

// Clear empties the buffer.
func (s *Session) Clear() { s.buf = s.buf[:0] }

// Backspace removes the last character, if any.
func (s *Session) Backspace() {
	if len(s.buf) > 0 {
		s.buf = s.buf[:len(s.buf)-1]
	}
}

// Text returns the current buffer contents.
func (s *Session) Text() string { return string(s.buf) }

// Depth returns how many '(' in the buffer are still unclosed.
func (s *Session) Depth() int { return bracket.Depth(string(s.buf)) }

// Restore replaces the buffer by appending each rune of text in turn, so
// the bracket invariant holds for any text.
func (s *Session) Restore(text string) {
	s.Clear()
	for _, r := range text {
		s.Append(r)
	}
}

// Evaluate normalizes the buffer, evaluates it and replaces the buffer with
// the formatted result, or with domain.ErrorText on failure. The returned
// Outcome describes the evaluation; its Err is never surfaced otherwise.
func (s *Session) Evaluate() domain.Outcome {
	out := domain.Outcome{Input: string(s.buf)}
	out.Normalized = normalize.Normalize(out.Input)

	v, err := s.ev.Evaluate(out.Normalized)
	if err != nil {
		out.Err = err
		out.Display = domain.ErrorText
	} else {
		out.Value = v
		out.Display = domain.Display(format.Scientific(v))
	}
	s.buf = []rune(string(out.Display))
	return out
}
