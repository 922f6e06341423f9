package usecase

import (
	"sync"
	"time"

	"finance_backend/internal/feature/assistant/domain/entity"
)

// DefaultSessionIdleTTL is how long an untouched session survives before
// eviction drops it, and the API key with it.
const DefaultSessionIdleTTL = 30 * time.Minute

// SessionStore keeps assistant sessions in process memory, keyed by user
// ID. Sessions hold the user's API key, so they are deliberately never
// persisted anywhere; a restart disconnects everyone.
type SessionStore struct {
	mu       sync.Mutex
	sessions map[uint]*entity.Session
	idleTTL  time.Duration
	now      func() time.Time // swappable for tests
}

// NewSessionStore creates a SessionStore. idleTTL of 0 uses the default.
func NewSessionStore(idleTTL time.Duration) *SessionStore {
	if idleTTL <= 0 {
		idleTTL = DefaultSessionIdleTTL
	}
	return &SessionStore{
		sessions: make(map[uint]*entity.Session),
		idleTTL:  idleTTL,
		now:      time.Now,
	}
}

// Put stores or replaces the session for a user.
func (s *SessionStore) Put(userID uint, sess *entity.Session) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess.LastUsed = s.now()
	s.sessions[userID] = sess
	s.evictLocked()
}

// Get returns the user's session and refreshes its idle timer. Expired
// sessions are dropped on access.
func (s *SessionStore) Get(userID uint) (*entity.Session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[userID]
	if !ok {
		return nil, false
	}
	if s.now().Sub(sess.LastUsed) > s.idleTTL {
		delete(s.sessions, userID)
		return nil, false
	}
	sess.LastUsed = s.now()
	return sess, true
}

// Delete removes the user's session.
func (s *SessionStore) Delete(userID uint) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, userID)
}

// Len reports the number of live sessions, expired ones included until the
// next eviction touches them.
func (s *SessionStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

// evictLocked drops sessions idle past the TTL. Caller holds the lock.
func (s *SessionStore) evictLocked() {
	cutoff := s.now().Add(-s.idleTTL)
	for id, sess := range s.sessions {
		if sess.LastUsed.Before(cutoff) {
			delete(s.sessions, id)
		}
	}
}
