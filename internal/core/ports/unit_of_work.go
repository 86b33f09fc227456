package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each command.
// This ensures proper isolation between concurrent operations.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary.
// Client code must explicitly manage the transaction lifecycle.
type UnitOfWork interface {
	// Begin starts a new database transaction.
	Begin(ctx context.Context) error

	// Commit commits the current transaction.
	// Returns error if no active transaction or commit fails.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction.
	// Returns error if no active transaction or rollback fails.
	Rollback(ctx context.Context) error

	// OrderRepository returns an OrderRepository bound to the current
	// transaction started by Begin().
	OrderRepository() OrderRepository

	// MenuRepository returns a MenuRepository bound to the current
	// transaction, so price lookups and the order insert see one snapshot.
	MenuRepository() MenuRepository
}
