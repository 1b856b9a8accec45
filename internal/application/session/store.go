package session

import (
	"sync"
	"time"

	"jma-forecast/internal/application/page"

	"github.com/google/uuid"
)

// Factory builds the controller of a new session
type Factory func() *page.Controller

type entry struct {
	controller *page.Controller
	lastSeen   time.Time
}

// Store keeps one page controller per browser session
type Store struct {
	mu          sync.Mutex
	sessions    map[string]*entry
	factory     Factory
	idleTimeout time.Duration
	now         func() time.Time
}

func NewStore(factory Factory, idleTimeout time.Duration) *Store {
	return &Store{
		sessions:    make(map[string]*entry),
		factory:     factory,
		idleTimeout: idleTimeout,
		now:         time.Now,
	}
}

// Get returns the controller of session id and marks the session as used
func (s *Store) Get(id string) (*page.Controller, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.sessions[id]
	if !ok {
		return nil, false
	}
	e.lastSeen = s.now()
	return e.controller, true
}

// Create opens a new session and returns its id and controller
func (s *Store) Create() (string, *page.Controller) {
	id := uuid.NewString()
	controller := s.factory()

	s.mu.Lock()
	defer s.mu.Unlock()

	s.sessions[id] = &entry{controller: controller, lastSeen: s.now()}
	return id, controller
}

// Sweep drops sessions idle for longer than the idle timeout
func (s *Store) Sweep() (removed int, remaining int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.idleTimeout <= 0 {
		return 0, len(s.sessions)
	}

	deadline := s.now().Add(-s.idleTimeout)
	for id, e := range s.sessions {
		if e.lastSeen.Before(deadline) {
			delete(s.sessions, id)
			removed++
		}
	}
	return removed, len(s.sessions)
}

func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}
