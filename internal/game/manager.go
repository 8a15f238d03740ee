// Package game provides an in-memory store of game sessions. Each
// session owns a board snapshot; the rules core itself stays stateless.
package game

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/johntlangton/chess/internal/chess"
	"github.com/johntlangton/chess/internal/errors"
	"github.com/johntlangton/chess/internal/rules"
)

// Session is one game in progress.
type Session struct {
	ID        string
	Board     *chess.Board
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Manager owns all live sessions. It is safe for concurrent use; board
// snapshots handed out are replaced, not mutated, on update.
type Manager struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

// NewManager creates an empty session manager.
func NewManager() *Manager {
	return &Manager{sessions: make(map[string]*Session)}
}

// New starts a session from the standard starting position.
func (m *Manager) New() *Session {
	return m.add(rules.NewInitialBoard())
}

// NewFromFEN starts a session from an arbitrary position.
func (m *Manager) NewFromFEN(fen string) (*Session, error) {
	board, err := rules.NewBoardFromFEN(fen)
	if err != nil {
		return nil, err
	}
	return m.add(board), nil
}

func (m *Manager) add(board *chess.Board) *Session {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := time.Now()
	s := &Session{
		ID:        uuid.NewString(),
		Board:     board,
		CreatedAt: now,
		UpdatedAt: now,
	}
	m.sessions[s.ID] = s
	return s
}

// Get returns the session with the given id.
func (m *Manager) Get(id string) (*Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	s, ok := m.sessions[id]
	if !ok {
		return nil, errors.Wrapf(errors.ErrGameNotFound, "session %s", id)
	}
	return s, nil
}

// Update replaces the session's board snapshot.
func (m *Manager) Update(id string, board *chess.Board) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.sessions[id]
	if !ok {
		return errors.Wrapf(errors.ErrGameNotFound, "session %s", id)
	}
	s.Board = board
	s.UpdatedAt = time.Now()
	return nil
}

// Delete removes a session. Deleting an unknown id is not an error.
func (m *Manager) Delete(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, id)
}

// Len returns the number of live sessions.
func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}
