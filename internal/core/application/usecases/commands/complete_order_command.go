package commands

import (
	"errors"

	"bytebowl/internal/pkg/errs"
	"bytebowl/internal/pkg/guard"
)

var (
	ErrCompleteOrderCommandIsNotConstructed = errors.New(
		"CompleteOrderCommand must be created via NewCompleteOrderCommand constructor",
	)
)

// CompleteOrderCommand represents a request to finalize a session's cart
// into a persisted order.
type CompleteOrderCommand struct {
	sessionID string

	guard guard.ConstructorGuard
}

// NewCompleteOrderCommand validates and creates the command.
func NewCompleteOrderCommand(sessionID string) (CompleteOrderCommand, error) {
	if sessionID == "" {
		return CompleteOrderCommand{}, errs.NewValueIsRequiredError("session ID")
	}
	return CompleteOrderCommand{
		sessionID: sessionID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CompleteOrderCommand) Validate() error {
	return c.guard.Validate(ErrCompleteOrderCommandIsNotConstructed)
}

// SessionID returns the conversation identifier.
func (c CompleteOrderCommand) SessionID() string {
	return c.sessionID
}
