// Package session maps ids to caller-held generator handles. Each session
// owns one generator and an exclusive lock, so at most one mutating call
// is in flight per progression regardless of how many HTTP requests race.
package session

import (
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/djlansom/chord-engine/progression"
)

type Session struct {
	Id  string
	mu  sync.Mutex
	gen *progression.Generator
}

// Do runs fn with the session's generator under the session lock.
func (s *Session) Do(fn func(*progression.Generator) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(s.gen)
}

type Manager struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

func NewManager() *Manager {
	return &Manager{sessions: make(map[string]*Session)}
}

// Create registers a generator and returns its session handle.
func (m *Manager) Create(gen *progression.Generator) *Session {
	s := &Session{
		Id:  uuid.New().String(),
		gen: gen,
	}
	m.mu.Lock()
	m.sessions[s.Id] = s
	m.mu.Unlock()
	return s
}

// Get looks up a session by id.
func (m *Manager) Get(id string) (*Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.sessions[id]
	if !ok {
		return nil, fmt.Errorf("unknown session: %v", id)
	}
	return s, nil
}

// Delete drops a session. Deleting an unknown id is a no-op.
func (m *Manager) Delete(id string) {
	m.mu.Lock()
	delete(m.sessions, id)
	m.mu.Unlock()
}

// Len reports how many sessions are live.
func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}
