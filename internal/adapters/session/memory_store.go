package session_adapter

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

type session struct {
	adminID   int
	expiresAt time.Time
}

// MemoryStore keeps admin sessions in a map keyed by an opaque uuid token.
// Sessions live only as long as the process, which is acceptable here: an
// admin simply logs in again after a restart.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]session
	ttl      time.Duration
	now      func() time.Time
}

func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{
		sessions: make(map[string]session),
		ttl:      ttl,
		now:      time.Now,
	}
}

func (s *MemoryStore) Create(adminID int) (string, error) {
	token, err := uuid.NewRandom()
	if err != nil {
		return "", err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.sessions[token.String()] = session{
		adminID:   adminID,
		expiresAt: s.now().Add(s.ttl),
	}
	return token.String(), nil
}

func (s *MemoryStore) Get(token string) (int, bool) {
	s.mu.RLock()
	sess, ok := s.sessions[token]
	s.mu.RUnlock()

	if !ok {
		return 0, false
	}
	if s.now().After(sess.expiresAt) {
		// Expired tokens are removed lazily on lookup.
		s.Delete(token)
		return 0, false
	}
	return sess.adminID, true
}

func (s *MemoryStore) Delete(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, token)
}
