// Package inmemory provides the session store adapter: an arena of session
// records indexed by identifier, each guarded by its own mutex so concurrent
// webhook events for different conversations never serialize on each other.
package inmemory

import (
	"sync"
	"time"

	"bytebowl/internal/core/domain/model/session"
)

type entry struct {
	mu         sync.Mutex
	session    *session.Session
	lastActive time.Time
	evicted    bool
}

// SessionStore implements ports.SessionStore. The outer map lock is held
// only for lookups and inserts; cart work happens under the per-entry lock.
type SessionStore struct {
	mu       sync.RWMutex
	sessions map[string]*entry

	// now is replaceable in tests.
	now func() time.Time
}

// NewSessionStore creates an empty store.
func NewSessionStore() *SessionStore {
	return &SessionStore{
		sessions: make(map[string]*entry),
		now:      time.Now,
	}
}

// WithSession runs fn under the lock of the session identified by id,
// creating the session on first reference. Callbacks for the same id are
// serialized in arrival order; unrelated sessions proceed in parallel.
func (s *SessionStore) WithSession(id string, fn func(sess *session.Session) error) error {
	for {
		e, err := s.lookupOrCreate(id)
		if err != nil {
			return err
		}

		e.mu.Lock()
		if e.evicted {
			// The sweeper removed this entry between lookup and lock.
			e.mu.Unlock()
			continue
		}
		e.lastActive = s.now()
		err = fn(e.session)
		e.mu.Unlock()
		return err
	}
}

func (s *SessionStore) lookupOrCreate(id string) (*entry, error) {
	s.mu.RLock()
	e, ok := s.sessions[id]
	s.mu.RUnlock()
	if ok {
		return e, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if e, ok = s.sessions[id]; ok {
		return e, nil
	}

	sess, err := session.NewSession(id)
	if err != nil {
		return nil, err
	}
	e = &entry{session: sess, lastActive: s.now()}
	s.sessions[id] = e
	return e, nil
}

// EvictIdle removes sessions untouched for longer than ttl. Entries whose
// lock is currently held are skipped and picked up on the next sweep.
func (s *SessionStore) EvictIdle(ttl time.Duration) int {
	cutoff := s.now().Add(-ttl)

	s.mu.Lock()
	defer s.mu.Unlock()

	evicted := 0
	for id, e := range s.sessions {
		if !e.mu.TryLock() {
			continue
		}
		if e.lastActive.Before(cutoff) {
			e.evicted = true
			delete(s.sessions, id)
			evicted++
		}
		e.mu.Unlock()
	}
	return evicted
}

// Len returns the number of live sessions.
func (s *SessionStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}
