package ports

import (
	"context"

	"bytebowl/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Orders are append-then-transition: rows are inserted once at finalization
// and only their status changes afterwards.
type OrderRepository interface {
	// Add persists a new order together with all of its lines in the
	// current transaction and returns the storage-allocated identifier.
	// Identifier allocation and line inserts commit together or not at all.
	Add(ctx context.Context, aggregate *order.Order) (order.ID, error)

	// Update persists the current status of an existing order.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order with its lines by identifier.
	// Returns an errs.ObjectNotFoundError when the id was never issued.
	Get(ctx context.Context, id order.ID) (*order.Order, error)

	// GetStatus retrieves just the current status for tracking queries.
	// Returns an errs.ObjectNotFoundError when the id was never issued.
	GetStatus(ctx context.Context, id order.ID) (order.Status, error)
}
