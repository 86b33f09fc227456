package ports

import (
	"time"

	"bytebowl/internal/core/domain/model/session"
)

// SessionFunc runs against a session aggregate while that session's lock is
// held. The store guarantees no other event for the same identifier runs
// concurrently, so the callback may read and mutate the cart freely.
type SessionFunc = func(s *session.Session) error

// SessionStore holds the mutable in-progress cart for each active
// conversation, keyed by the caller-supplied session identifier. Sessions
// are ephemeral: no persistence, evicted when idle.
//
// Concurrency contract: WithSession serializes all callbacks for one
// identifier (fine-grained per-session locking, not a global lock), so
// events for a session apply in arrival order while unrelated sessions
// proceed in parallel.
type SessionStore interface {
	// WithSession runs fn under the session's lock, creating the session on
	// first reference. The error from fn is returned unchanged.
	WithSession(id string, fn SessionFunc) error

	// EvictIdle removes sessions untouched for longer than ttl and returns
	// how many were evicted.
	EvictIdle(ttl time.Duration) int

	// Len returns the number of live sessions.
	Len() int
}
