// pkg/mem/sessions.go
package mem

import (
	"sync"
	"time"

	"credimatch/internal/quiz"
)

// SessionStore holds open quiz sessions. Each session lives for the duration
// of one quiz modal; anything older than the TTL is treated as closed.
type SessionStore interface {
	Put(s *quiz.Session)
	// Get returns the session if present and not expired, refreshing its
	// deadline. Expired entries are removed on access.
	Get(id string) (*quiz.Session, bool)
	Delete(id string)
}

type sessionEntry struct {
	session   *quiz.Session
	expiresAt time.Time
}

type Sessions struct {
	mu   sync.RWMutex
	data map[string]sessionEntry
	ttl  time.Duration
}

func NewSessions(ttl time.Duration) *Sessions {
	return &Sessions{
		data: make(map[string]sessionEntry),
		ttl:  ttl,
	}
}

func (s *Sessions) Put(sess *quiz.Session) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[sess.ID] = sessionEntry{
		session:   sess,
		expiresAt: time.Now().Add(s.ttl),
	}
}

func (s *Sessions) Get(id string) (*quiz.Session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.data[id]
	if !ok {
		return nil, false
	}
	if time.Now().After(e.expiresAt) {
		delete(s.data, id) // cleanup expired
		return nil, false
	}
	e.expiresAt = time.Now().Add(s.ttl)
	s.data[id] = e
	return e.session, true
}

func (s *Sessions) Delete(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, id)
}
