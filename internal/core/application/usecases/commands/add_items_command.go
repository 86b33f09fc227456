package commands

import (
	"errors"
	"fmt"

	"bytebowl/internal/pkg/errs"
	"bytebowl/internal/pkg/guard"
)

var (
	ErrAddItemsCommandIsNotConstructed = errors.New(
		"AddItemsCommand must be created via NewAddItemsCommand constructor",
	)
)

// ItemQuantity is one extracted entity pair: an item name and a positive
// quantity. A single webhook event may carry several pairs ("2 pav bhaji and
// a mango lassi").
type ItemQuantity struct {
	Name     string
	Quantity int
}

func validateItems(items []ItemQuantity) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}
	for _, it := range items {
		if it.Name == "" {
			return errs.NewValueIsRequiredError("item name")
		}
		if it.Quantity <= 0 {
			return errs.NewValueIsInvalidErrorWithCause("quantity",
				fmt.Errorf("%d is not greater than 0", it.Quantity))
		}
	}
	return nil
}

// AddItemsCommand represents a request to add one or more items to a
// session's running cart.
type AddItemsCommand struct {
	sessionID string
	items     []ItemQuantity

	guard guard.ConstructorGuard
}

// NewAddItemsCommand validates and creates the command. Session id must be
// non-empty; every pair needs a non-empty name and a positive quantity.
func NewAddItemsCommand(sessionID string, items []ItemQuantity) (AddItemsCommand, error) {
	if sessionID == "" {
		return AddItemsCommand{}, errs.NewValueIsRequiredError("session ID")
	}
	if err := validateItems(items); err != nil {
		return AddItemsCommand{}, err
	}

	copied := make([]ItemQuantity, len(items))
	copy(copied, items)
	return AddItemsCommand{
		sessionID: sessionID,
		items:     copied,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c AddItemsCommand) Validate() error {
	return c.guard.Validate(ErrAddItemsCommandIsNotConstructed)
}

// SessionID returns the conversation identifier.
func (c AddItemsCommand) SessionID() string {
	return c.sessionID
}

// Items returns the entity pairs to apply.
func (c AddItemsCommand) Items() []ItemQuantity {
	items := make([]ItemQuantity, len(c.items))
	copy(items, c.items)
	return items
}
