package server

import (
	"sync"

	"github.com/google/uuid"

	"gambit/board"
)

// gameSession is one live game. Handlers hold mu across a whole
// read-modify-write, so a long search never interleaves with a move on the
// same game.
type gameSession struct {
	ID string

	mu  sync.Mutex
	pos *board.Position
}

type sessionStore struct {
	mu       sync.RWMutex
	sessions map[string]*gameSession
}

func newSessionStore() *sessionStore {
	return &sessionStore{sessions: make(map[string]*gameSession)}
}

func (s *sessionStore) create(pos *board.Position) *gameSession {
	sess := &gameSession{ID: uuid.New().String(), pos: pos}
	s.mu.Lock()
	s.sessions[sess.ID] = sess
	s.mu.Unlock()
	return sess
}

func (s *sessionStore) get(id string) (*gameSession, bool) {
	s.mu.RLock()
	sess, ok := s.sessions[id]
	s.mu.RUnlock()
	return sess, ok
}
