// Package menu provides the read-only catalog reference data. Menu items are
// owned by an external catalog collaborator; this core only looks them up to
// price carts at finalization time. Names are matched case-insensitively.
package menu

import (
	"fmt"
	"strings"

	"bytebowl/internal/pkg/errs"
)

// Item is a catalog entry: a unique name and a non-negative unit price.
type Item struct {
	name  string
	price float64
}

// NewItem validates and creates a catalog item.
func NewItem(name string, price float64) (Item, error) {
	if strings.TrimSpace(name) == "" {
		return Item{}, errs.NewValueIsRequiredError("menu item name")
	}
	if price < 0 {
		return Item{}, errs.NewValueIsInvalidErrorWithCause("price",
			fmt.Errorf("%g is negative", price))
	}
	return Item{name: name, price: price}, nil
}

// Name returns the catalog name.
func (i Item) Name() string { return i.name }

// Price returns the unit price.
func (i Item) Price() float64 { return i.price }

// NormalizeName lowercases and trims an item name for case-insensitive
// catalog matching. Cart keys and catalog lookups both go through this, so
// "Pav Bhaji" and "pav bhaji" refer to the same entry.
func NormalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
