package chatbot

import (
	"sync"

	"github.com/google/uuid"
)

// State is the conversation mode of one session.
type State int

const (
	StateMenu State = iota
	StateQuery
)

// Session holds the conversation state for one chat participant. State
// is per-session so concurrent conversations never leak into each
// other.
type Session struct {
	id string

	mu    sync.Mutex
	state State
}

func (s *Session) ID() string {
	return s.id
}

func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

func (s *Session) SetState(state State) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = state
}

// Registry tracks active chat sessions by ID.
type Registry struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

func NewRegistry() *Registry {
	return &Registry{sessions: map[string]*Session{}}
}

// GetOrCreate returns the session for id, creating a fresh one when id
// is empty or unknown. New sessions start in the menu state.
func (r *Registry) GetOrCreate(id string) *Session {
	if id != "" {
		r.mu.RLock()
		session, ok := r.sessions[id]
		r.mu.RUnlock()
		if ok {
			return session
		}
	}

	session := &Session{id: uuid.NewString(), state: StateMenu}

	r.mu.Lock()
	r.sessions[session.id] = session
	r.mu.Unlock()

	return session
}
