package commands

import (
	"errors"

	"bytebowl/internal/pkg/errs"
	"bytebowl/internal/pkg/guard"
)

var (
	ErrRemoveItemsCommandIsNotConstructed = errors.New(
		"RemoveItemsCommand must be created via NewRemoveItemsCommand constructor",
	)
)

// RemoveItemsCommand represents a request to remove one or more items from a
// session's running cart.
type RemoveItemsCommand struct {
	sessionID string
	items     []ItemQuantity

	guard guard.ConstructorGuard
}

// NewRemoveItemsCommand validates and creates the command. The same input
// rules as NewAddItemsCommand apply; whether the items are actually in the
// cart is decided later, under the session lock.
func NewRemoveItemsCommand(sessionID string, items []ItemQuantity) (RemoveItemsCommand, error) {
	if sessionID == "" {
		return RemoveItemsCommand{}, errs.NewValueIsRequiredError("session ID")
	}
	if err := validateItems(items); err != nil {
		return RemoveItemsCommand{}, err
	}

	copied := make([]ItemQuantity, len(items))
	copy(copied, items)
	return RemoveItemsCommand{
		sessionID: sessionID,
		items:     copied,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c RemoveItemsCommand) Validate() error {
	return c.guard.Validate(ErrRemoveItemsCommandIsNotConstructed)
}

// SessionID returns the conversation identifier.
func (c RemoveItemsCommand) SessionID() string {
	return c.sessionID
}

// Items returns the entity pairs to apply.
func (c RemoveItemsCommand) Items() []ItemQuantity {
	items := make([]ItemQuantity, len(c.items))
	copy(items, c.items)
	return items
}
