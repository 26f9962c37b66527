package checkers

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// A Session owns one Game for a host that renders from a different
// goroutine than it handles input on. Mutations hold the write lock
// and render passes hold the read lock, so a render never observes a
// half-applied move.
type Session struct {
	ID      string
	Started time.Time

	mu   sync.RWMutex
	game *Game
}

func NewSession(g *Game) *Session {
	return &Session{
		ID:      uuid.NewString(),
		Started: time.Now(),
		game:    g,
	}
}

// Activate forwards an input event to the game.
func (s *Session) Activate(row, col int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.game.Activate(row, col)
}

// Play applies a complete move.
func (s *Session) Play(from, to Coord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.game.Play(from, to)
}

// Apply plays one of the game's legal moves.
func (s *Session) Apply(m Move) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.game.Apply(m)
}

// View runs fn with shared access to the game. fn must not mutate it
// or retain it after returning.
func (s *Session) View(fn func(g *Game)) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	fn(s.game)
}

// Snapshot returns a deep copy of the game.
func (s *Session) Snapshot() *Game {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.game.Clone()
}
