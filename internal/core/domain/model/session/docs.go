// Package session provides the ephemeral per-conversation state: the Session
// aggregate with its ordered Cart and an explicit lifecycle tag
// (new -> accumulating -> finalized).
//
// Key business rules:
//   - cart quantities are strictly positive; an entry draining to zero is
//     deleted, never kept at zero
//   - removing an absent item is informational (NotInCart), not a failure
//   - Finalize refuses an empty cart and otherwise clears it, so a cart is
//     empty immediately after a successful order commit
//   - insertion order is preserved for deterministic reply summaries
//
// Sessions hold no storage references and carry no locking; per-session
// mutual exclusion is the session store's job.
package session
