// internal/store/memory.go
//
// In-memory implementation of the session Store interface.
// Holds solver sessions for the HTTP API: a game in progress, the guess
// waiting for feedback, and the past answers the solver must avoid.
//
// Characteristics:
//   - Sessions keyed by ID in a map.
//   - The map is guarded by an RWMutex; each session has its own mutex.
//   - Update runs its callback under the session's lock only, so a slow
//     callback on one session never blocks the others.
//   - Get returns a copy; mutations go through Update.
//   - State is lost when the process restarts.

package store

import (
	"context"
	"errors"
	"sync"

	"github.com/robalobadob/wordle/apps/go-helper/internal/game"
	"github.com/robalobadob/wordle/apps/go-helper/internal/solver"
)

// ErrNotFound is returned for unknown session IDs.
var ErrNotFound = errors.New("store: session not found")

// Session is one solver conversation with a client.
type Session struct {
	Game     *game.Game
	Strategy solver.Strategy
	Exclude  []string // past answers never suggested
	Pending  string   // suggested guess awaiting feedback; empty once finished
}

// ID returns the session's game ID.
func (s *Session) ID() string { return s.Game.ID }

// Store defines the persistence interface for solver sessions.
type Store interface {
	// Save persists or replaces a session.
	Save(ctx context.Context, s *Session) error

	// Get retrieves a session by ID.
	Get(ctx context.Context, id string) (*Session, error)

	// Update applies fn to the stored session while holding it exclusively.
	// An error from fn is returned unchanged.
	Update(ctx context.Context, id string, fn func(*Session) error) error

	// Delete removes a session. Deleting an unknown ID is not an error.
	Delete(ctx context.Context, id string) error
}

// memory is an in-memory map-based Store implementation.
type memory struct {
	mu       sync.RWMutex      // guards the sessions map only
	sessions map[string]*entry // keyed by Session.ID()
}

// entry guards one session. Update holds entry.mu, never memory.mu, while
// its callback runs.
type entry struct {
	mu      sync.Mutex
	s       *Session
	deleted bool
}

// NewMemoryStore constructs a new in-memory Store.
func NewMemoryStore() Store {
	return &memory{sessions: make(map[string]*entry)}
}

func (m *memory) Save(ctx context.Context, s *Session) error {
	if s == nil || s.Game == nil {
		return errors.New("store: session without game")
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[s.ID()] = &entry{s: s}
	return nil
}

func (m *memory) lookup(id string) (*entry, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	e, ok := m.sessions[id]
	return e, ok
}

// Get returns a copy of the session taken under its lock.
func (m *memory) Get(ctx context.Context, id string) (*Session, error) {
	e, ok := m.lookup(id)
	if !ok {
		return nil, ErrNotFound
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.deleted {
		return nil, ErrNotFound
	}
	c := *e.s
	c.Game = e.s.Game.Clone()
	c.Exclude = append([]string(nil), e.s.Exclude...)
	return &c, nil
}

func (m *memory) Update(ctx context.Context, id string, fn func(*Session) error) error {
	e, ok := m.lookup(id)
	if !ok {
		return ErrNotFound
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.deleted {
		return ErrNotFound
	}
	return fn(e.s)
}

func (m *memory) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	e, ok := m.sessions[id]
	delete(m.sessions, id)
	m.mu.Unlock()
	if ok {
		e.mu.Lock()
		e.deleted = true
		e.mu.Unlock()
	}
	return nil
}
