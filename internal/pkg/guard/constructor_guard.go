// Package guard provides a defensive construction check for value objects.
// Embedding a ConstructorGuard in a command or query struct makes zero-value
// instances detectable, so handlers can refuse objects that bypassed their
// constructor and its validation.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when the caller does not
// supply its own validation error.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks whether its embedding struct went through a
// constructor. The zero value fails Validate.
//
// Example usage:
//
//	type TrackOrderQuery struct {
//	    orderID int64
//	    guard   guard.ConstructorGuard
//	}
//
//	func NewTrackOrderQuery(orderID int64) (TrackOrderQuery, error) {
//	    if orderID <= 0 {
//	        return TrackOrderQuery{}, errs.NewValueIsInvalidError("orderID")
//	    }
//	    return TrackOrderQuery{orderID: orderID, guard: guard.NewConstructorGuard()}, nil
//	}
//
//	func (q TrackOrderQuery) Validate() error {
//	    return q.guard.Validate(ErrTrackOrderQueryIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard marking the object as properly
// constructed. Call it only from constructors.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil for a constructed guard. For a zero-value guard it
// returns validationError, or ErrDefaultConstructorGuard when validationError
// is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
