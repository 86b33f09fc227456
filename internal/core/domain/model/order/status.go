package order

import (
	"fmt"

	"bytebowl/internal/pkg/errs"
)

// Status represents the lifecycle state of an order. It implements a state
// machine with defined transitions so orders follow the correct workflow.
//
// State transitions:
//
//	InProgress ──> Placed ──┬──> InTransit ──> Delivered
//	                        │
//	                        └──> Cancelled
//
// Cancelled and Delivered are final states. The finalizer persists orders
// directly in Placed; InProgress only occurs while a cart is still being
// assembled and is never written by the finalizer itself.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// InProgress is the pre-placement state while the cart is assembled.
	InProgress

	// Placed is the initial persisted status once an order is finalized.
	Placed

	// InTransit indicates the order left the kitchen and is on its way.
	InTransit

	// Cancelled indicates the order was cancelled before delivery.
	// This is a final state.
	Cancelled

	// Delivered indicates the order reached the customer.
	// This is a final state.
	Delivered
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "unknown",
		InProgress: "in_progress",
		Placed:     "placed",
		InTransit:  "in_transit",
		Cancelled:  "cancelled",
		Delivered:  "delivered",
	}
}

// allowedTransitions lists the valid successor states for each status.
func allowedTransitions() map[Status][]Status {
	return map[Status][]Status{
		InProgress: {Placed},
		Placed:     {InTransit, Cancelled},
		InTransit:  {Delivered},
	}
}

// StatusFromString parses the persisted/user-facing form of a status
// ("placed", "in_transit", ...). Returns an error for unknown names.
func StatusFromString(s string) (Status, error) {
	for status, str := range getStatusStrings() {
		if str == s && status != Unknown {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status",
		fmt.Errorf("%q is not a valid status", s))
}

// Validate checks if the Status value is one of the defined states.
// Unknown (0) and out-of-range values are invalid.
func (s Status) Validate() error {
	if _, ok := getStatusStrings()[s]; !ok || s == Unknown {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the snake_case name of the status, which is also the
// wording used in tracking replies. Safe to call on any value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// CanTransitionTo reports whether next is a valid successor of s.
func (s Status) CanTransitionTo(next Status) bool {
	for _, allowed := range allowedTransitions()[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// TransitionTo moves the status to next.
//
// Returns:
//   - (next, nil) on a valid transition
//   - (0, error) when next is invalid or not reachable from s
func (s Status) TransitionTo(next Status) (Status, error) {
	if err := next.Validate(); err != nil {
		return 0, err
	}
	if !s.CanTransitionTo(next) {
		return 0, errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("cannot transition from %s to %s", s, next))
	}
	return next, nil
}
