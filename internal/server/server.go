package server

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"log"
	"net/http"
	"sync"

	"github.com/rajan221209/Chemistry-Calculator/internal/domain"
	"github.com/rajan221209/Chemistry-Calculator/internal/session"
)

// ErrSessionNotFound is returned for an unknown session id.
var ErrSessionNotFound = errors.New("session not found")

// DefaultHistoryLimit bounds the in-memory history kept per session.
const DefaultHistoryLimit = 50

type entry struct {
	sess    *session.Session
	history []domain.HistoryEntry
}

// Server holds sessions in memory and serves the HTTP API.
type Server struct {
	mu       sync.Mutex
	sessions map[domain.SessionID]*entry

	ev    domain.Evaluator
	log   *log.Logger
	mux   *http.ServeMux
	limit int
}

// New returns a Server whose sessions evaluate with ev. Access log lines go
// to logger; a nil logger uses log.Default().
func New(ev domain.Evaluator, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.Default()
	}
	s := &Server{
		sessions: make(map[domain.SessionID]*entry),
		ev:       ev,
		log:      logger,
		mux:      http.NewServeMux(),
		limit:    DefaultHistoryLimit,
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	s.mux.HandleFunc("POST /sessions", s.handleCreate)
	s.mux.HandleFunc("GET /sessions/{id}", s.handleGet)
	s.mux.HandleFunc("DELETE /sessions/{id}", s.handleDelete)
	s.mux.HandleFunc("POST /sessions/{id}/keys", s.handleKeys)
	s.mux.HandleFunc("POST /sessions/{id}/clear", s.handleClear)
	s.mux.HandleFunc("POST /sessions/{id}/backspace", s.handleBackspace)
	s.mux.HandleFunc("POST /sessions/{id}/evaluate", s.handleEvaluate)
	s.mux.HandleFunc("GET /sessions/{id}/history", s.handleHistory)
	s.mux.HandleFunc("POST /normalize", s.handleNormalize)
	s.mux.HandleFunc("GET /constants", s.handleConstants)
}

// Len returns the number of live sessions.
func (s *Server) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

func (s *Server) create() (domain.SessionID, error) {
	var b [8]byte
	if _, err := rand.Read(b[:]); err != nil {
		return "", err
	}
	id := domain.SessionID(hex.EncodeToString(b[:]))

	s.mu.Lock()
	s.sessions[id] = &entry{sess: session.New(s.ev)}
	s.mu.Unlock()
	return id, nil
}

// with runs fn on the session id under the server lock.
func (s *Server) with(id domain.SessionID, fn func(e *entry)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.sessions[id]
	if !ok {
		return ErrSessionNotFound
	}
	fn(e)
	return nil
}

func (s *Server) remove(id domain.SessionID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.sessions[id]; !ok {
		return ErrSessionNotFound
	}
	delete(s.sessions, id)
	return nil
}

func (e *entry) record(h domain.HistoryEntry, limit int) {
	e.history = append(e.history, h)
	if len(e.history) > limit {
		e.history = append([]domain.HistoryEntry(nil), e.history[len(e.history)-limit:]...)
	}
}

func stateOf(id domain.SessionID, sess *session.Session) domain.State {
	return domain.State{ID: id, Text: sess.Text(), Depth: sess.Depth()}
}
