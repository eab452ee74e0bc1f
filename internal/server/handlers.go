package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/rajan221209/Chemistry-Calculator/internal/constant"
	"github.com/rajan221209/Chemistry-Calculator/internal/domain"
	"github.com/rajan221209/Chemistry-Calculator/internal/keypad"
	"github.com/rajan221209/Chemistry-Calculator/internal/normalize"
)

// KeysRequest is the body of POST /sessions/{id}/keys. Keys is a typed
// line: whitespace is dropped and "pi"/"sqrt" become their symbols. With Raw
// set every rune of Keys is pressed as is.
type KeysRequest struct {
	Keys string `json:"keys"`
	Raw  bool   `json:"raw,omitempty"`
}

func (req KeysRequest) runes() []rune {
	if req.Raw {
		return []rune(req.Keys)
	}
	return keypad.Runes(req.Keys)
}

// NormalizeRequest is the body of POST /normalize.
type NormalizeRequest struct {
	Expr string `json:"expr"`
}

// NormalizeResponse is the reply to POST /normalize.
type NormalizeResponse struct {
	Normalized string `json:"normalized"`
}

// ConstantResponse is one entry of GET /constants.
type ConstantResponse struct {
	Symbol    string `json:"symbol"`
	Expansion string `json:"expansion"`
}

func (s *Server) handleCreate(w http.ResponseWriter, r *http.Request) {
	id, err := s.create()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusCreated, domain.State{ID: id})
}

func (s *Server) handleGet(w http.ResponseWriter, r *http.Request) {
	id := domain.SessionID(r.PathValue("id"))
	var st domain.State
	err := s.with(id, func(e *entry) { st = stateOf(id, e.sess) })
	s.reply(w, st, err)
}

func (s *Server) handleDelete(w http.ResponseWriter, r *http.Request) {
	if err := s.remove(domain.SessionID(r.PathValue("id"))); err != nil {
		s.reply(w, nil, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleKeys(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()
	var req KeysRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	id := domain.SessionID(r.PathValue("id"))
	var st domain.State
	err := s.with(id, func(e *entry) {
		for _, k := range req.runes() {
			e.sess.Append(k)
		}
		st = stateOf(id, e.sess)
	})
	s.reply(w, st, err)
}

func (s *Server) handleClear(w http.ResponseWriter, r *http.Request) {
	id := domain.SessionID(r.PathValue("id"))
	var st domain.State
	err := s.with(id, func(e *entry) {
		e.sess.Clear()
		st = stateOf(id, e.sess)
	})
	s.reply(w, st, err)
}

func (s *Server) handleBackspace(w http.ResponseWriter, r *http.Request) {
	id := domain.SessionID(r.PathValue("id"))
	var st domain.State
	err := s.with(id, func(e *entry) {
		e.sess.Backspace()
		st = stateOf(id, e.sess)
	})
	s.reply(w, st, err)
}

func (s *Server) handleEvaluate(w http.ResponseWriter, r *http.Request) {
	id := domain.SessionID(r.PathValue("id"))
	var st domain.State
	err := s.with(id, func(e *entry) {
		out := e.sess.Evaluate()
		ok := out.OK()
		st = stateOf(id, e.sess)
		st.Normalized = out.Normalized
		st.OK = &ok
		e.record(domain.HistoryEntry{
			Input:      out.Input,
			Normalized: out.Normalized,
			Display:    out.Display,
			Value:      out.Value,
			OK:         ok,
			AtUTC:      time.Now().UTC().Unix(),
		}, s.limit)
	})
	s.reply(w, st, err)
}

func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			http.Error(w, "bad limit", http.StatusBadRequest)
			return
		}
		limit = n
	}
	var out []domain.HistoryEntry
	err := s.with(domain.SessionID(r.PathValue("id")), func(e *entry) {
		h := e.history
		if limit > 0 && len(h) > limit {
			h = h[len(h)-limit:]
		}
		out = append([]domain.HistoryEntry{}, h...)
	})
	s.reply(w, out, err)
}

func (s *Server) handleNormalize(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()
	var req NormalizeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	writeJSON(w, http.StatusOK, NormalizeResponse{Normalized: normalize.Normalize(req.Expr)})
}

func (s *Server) handleConstants(w http.ResponseWriter, r *http.Request) {
	tbl := constant.Table()
	out := make([]ConstantResponse, 0, len(tbl))
	for _, d := range tbl {
		out = append(out, ConstantResponse{Symbol: string(d.Symbol), Expansion: d.Expansion})
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) reply(w http.ResponseWriter, v any, err error) {
	switch {
	case errors.Is(err, ErrSessionNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case err != nil:
		http.Error(w, err.Error(), http.StatusInternalServerError)
	default:
		writeJSON(w, http.StatusOK, v)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
