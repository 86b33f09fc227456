package ports

import (
	"context"

	"bytebowl/internal/core/domain/model/menu"
)

// MenuRepository is the read-only contract against the catalog collaborator.
// There is no mutation path from this core.
type MenuRepository interface {
	// GetByName looks up a catalog item case-insensitively.
	// Returns an errs.ObjectNotFoundError when the name has no match.
	GetByName(ctx context.Context, name string) (menu.Item, error)

	// List returns the whole catalog in name order.
	List(ctx context.Context) ([]menu.Item, error)
}
