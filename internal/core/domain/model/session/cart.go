package session

import (
	"fmt"
	"strings"

	"bytebowl/internal/pkg/errs"
)

// RemoveOutcome describes what a cart removal actually did. Removing an item
// that is not in the cart is informational, not an error: the caller words a
// friendly reply instead of failing the event.
type RemoveOutcome int

const (
	// RemovedSome means the quantity was reduced and the entry remains.
	RemovedSome RemoveOutcome = iota

	// RemovedAll means the entry's quantity reached zero and was deleted.
	RemovedAll

	// NotInCart means there was no entry for the item.
	NotInCart
)

// CartLine is one entry of a cart snapshot.
type CartLine struct {
	Name     string
	Quantity int
}

// Cart holds the in-progress items of one conversation, mapping item name to
// a strictly positive quantity. Insertion order is preserved so running
// summaries read back in the order the customer asked for things.
//
// Invariant: no entry ever exists with quantity <= 0; a removal that drains
// an entry deletes it.
type Cart struct {
	index map[string]int // item name -> position in lines
	lines []CartLine
}

// NewCart creates an empty cart.
func NewCart() *Cart {
	return &Cart{index: make(map[string]int)}
}

// Add increments the quantity for an item, creating the entry when absent.
// Name must be non-empty and quantity positive.
func (c *Cart) Add(name string, quantity int) error {
	if name == "" {
		return errs.NewValueIsRequiredError("item name")
	}
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}

	if pos, ok := c.index[name]; ok {
		c.lines[pos].Quantity += quantity
		return nil
	}
	c.index[name] = len(c.lines)
	c.lines = append(c.lines, CartLine{Name: name, Quantity: quantity})
	return nil
}

// Remove decrements the quantity for an item. When the remaining quantity
// would be zero or negative the entry is deleted. Absent items report
// NotInCart without error.
func (c *Cart) Remove(name string, quantity int) (RemoveOutcome, error) {
	if name == "" {
		return NotInCart, errs.NewValueIsRequiredError("item name")
	}
	if quantity <= 0 {
		return NotInCart, errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}

	pos, ok := c.index[name]
	if !ok {
		return NotInCart, nil
	}

	if c.lines[pos].Quantity > quantity {
		c.lines[pos].Quantity -= quantity
		return RemovedSome, nil
	}

	c.lines = append(c.lines[:pos], c.lines[pos+1:]...)
	delete(c.index, name)
	for i := pos; i < len(c.lines); i++ {
		c.index[c.lines[i].Name] = i
	}
	return RemovedAll, nil
}

// Quantity returns the stored quantity for an item, zero when absent.
func (c *Cart) Quantity(name string) int {
	if pos, ok := c.index[name]; ok {
		return c.lines[pos].Quantity
	}
	return 0
}

// Lines returns a snapshot of the cart in insertion order.
func (c *Cart) Lines() []CartLine {
	lines := make([]CartLine, len(c.lines))
	copy(lines, c.lines)
	return lines
}

// IsEmpty reports whether the cart has no entries.
func (c *Cart) IsEmpty() bool {
	return len(c.lines) == 0
}

// Clear removes every entry.
func (c *Cart) Clear() {
	c.index = make(map[string]int)
	c.lines = nil
}

// Summary renders the cart as "2 pav bhaji, 1 mango lassi" for replies.
func (c *Cart) Summary() string {
	parts := make([]string, 0, len(c.lines))
	for _, l := range c.lines {
		parts = append(parts, fmt.Sprintf("%d %s", l.Quantity, l.Name))
	}
	return strings.Join(parts, ", ")
}
