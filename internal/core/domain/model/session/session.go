package session

import (
	"errors"

	"bytebowl/internal/pkg/errs"
)

var (
	// ErrEmptyCart is returned by Finalize when there is nothing to order.
	// Callers surface a distinct "nothing to order" reply and never create
	// an order from it.
	ErrEmptyCart = errors.New("cart is empty")

	// ErrSessionIsNotConstructed is returned when a Session instance was not
	// created through the NewSession constructor.
	ErrSessionIsNotConstructed = errors.New("Session must be created via NewSession constructor")
)

// State is the explicit lifecycle tag of a session. Keeping it as a tag
// rather than inferring it from cart emptiness distinguishes a conversation
// that never ordered anything from one that just finalized.
type State int

const (
	// StateNew means the session exists but no item event arrived yet.
	StateNew State = iota

	// StateAccumulating means the cart has seen at least one add/remove/reset.
	StateAccumulating

	// StateFinalized means the last order was committed and the cart cleared.
	// The next add moves the session back to StateAccumulating.
	StateFinalized
)

// String returns the lifecycle tag name.
func (s State) String() string {
	switch s {
	case StateNew:
		return "new"
	case StateAccumulating:
		return "accumulating"
	case StateFinalized:
		return "finalized"
	}
	return "unknown"
}

// Session is the ephemeral aggregate for one live conversation: the
// caller-supplied identifier, the running cart and the lifecycle tag.
// Sessions never touch storage; they exist only for the conversation's
// duration and are evicted when idle.
//
// Session is not safe for concurrent use on its own — the session store
// serializes access per session identifier.
type Session struct {
	id    string
	state State
	cart  *Cart

	isConstructed bool
}

// NewSession creates a session for a caller-supplied identifier.
func NewSession(id string) (*Session, error) {
	if id == "" {
		return nil, errs.NewValueIsRequiredError("session ID")
	}
	return &Session{
		id:            id,
		state:         StateNew,
		cart:          NewCart(),
		isConstructed: true,
	}, nil
}

// Validate ensures the Session was created through NewSession.
func (s *Session) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrSessionIsNotConstructed
	}
	return nil
}

// ID returns the session identifier.
func (s *Session) ID() string { return s.id }

// State returns the lifecycle tag.
func (s *Session) State() State { return s.state }

// AddItem increments the cart quantity for an item and moves the session to
// StateAccumulating.
func (s *Session) AddItem(name string, quantity int) error {
	if err := s.cart.Add(name, quantity); err != nil {
		return err
	}
	s.state = StateAccumulating
	return nil
}

// RemoveItem decrements the cart quantity for an item; entries draining to
// zero are deleted. Removing an absent item reports NotInCart, not an error.
func (s *Session) RemoveItem(name string, quantity int) (RemoveOutcome, error) {
	outcome, err := s.cart.Remove(name, quantity)
	if err != nil {
		return outcome, err
	}
	s.state = StateAccumulating
	return outcome, nil
}

// Reset clears the cart for a fresh order within the same conversation.
func (s *Session) Reset() {
	s.cart.Clear()
	s.state = StateAccumulating
}

// Finalize clears the cart after a successful order commit and tags the
// session finalized. It fails with ErrEmptyCart when there is nothing to
// order; callers must check Lines()/IsEmpty() before writing the order and
// only call Finalize once the transaction committed.
func (s *Session) Finalize() error {
	if s.cart.IsEmpty() {
		return ErrEmptyCart
	}
	s.cart.Clear()
	s.state = StateFinalized
	return nil
}

// Lines returns a snapshot of the cart in insertion order.
func (s *Session) Lines() []CartLine { return s.cart.Lines() }

// Quantity returns the cart quantity for an item, zero when absent.
func (s *Session) Quantity(name string) int { return s.cart.Quantity(name) }

// IsEmpty reports whether the cart has no entries.
func (s *Session) IsEmpty() bool { return s.cart.IsEmpty() }

// Summary renders the running cart for replies.
func (s *Session) Summary() string { return s.cart.Summary() }
