// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS split.
// All commands follow a consistent shape: constructor validation, per-session
// locking through the session store, and transaction management through unit
// of work where storage is involved.
package commands

import (
	"context"

	"bytebowl/internal/core/ports"
)

// Unit of work interfaces scoped to what each handler actually needs.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// MenuRepoFactory provides the menu repository within a transaction.
	MenuRepoFactory interface {
		MenuRepository() ports.MenuRepository
	}

	// OrderUoW manages transactions for order-only operations.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// FinalizeUoW manages the finalization transaction: menu lookups and the
	// order write share one snapshot.
	FinalizeUoW interface {
		TxManager
		OrderRepoFactory
		MenuRepoFactory
	}

	// FinalizeUoWFactory creates new finalization unit of work instances.
	FinalizeUoWFactory interface {
		Create() FinalizeUoW
	}
)
