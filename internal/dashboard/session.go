package dashboard

import (
	"net/http"
	"sync"

	"github.com/google/uuid"
)

// SessionCookie identifies a browser's collapse state.
const SessionCookie = "depviz-session"

// Sessions keeps per-browser card collapse state in memory.
type Sessions struct {
	mu        sync.Mutex
	collapsed map[string]map[string]bool
}

// NewSessions creates an empty session store.
func NewSessions() *Sessions {
	return &Sessions{collapsed: make(map[string]map[string]bool)}
}

// Ensure returns the session id of r, issuing a new cookie when the request
// carries none.
func (s *Sessions) Ensure(w http.ResponseWriter, r *http.Request) string {
	if c, err := r.Cookie(SessionCookie); err == nil && c.Value != "" {
		return c.Value
	}
	id := uuid.New().String()
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookie,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return id
}

// Collapsed returns a copy of the collapsed files of session id.
func (s *Sessions) Collapsed(id string) map[string]bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make(map[string]bool, len(s.collapsed[id]))
	for f := range s.collapsed[id] {
		out[f] = true
	}
	return out
}

// Toggle flips the collapse state of file and returns the new state.
func (s *Sessions) Toggle(id, file string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	set, ok := s.collapsed[id]
	if !ok {
		set = make(map[string]bool)
		s.collapsed[id] = set
	}
	if set[file] {
		delete(set, file)
		return false
	}
	set[file] = true
	return true
}

// Set forces the collapse state of file.
func (s *Sessions) Set(id, file string, collapsed bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	set, ok := s.collapsed[id]
	if !ok {
		set = make(map[string]bool)
		s.collapsed[id] = set
	}
	if collapsed {
		set[file] = true
	} else {
		delete(set, file)
	}
}
