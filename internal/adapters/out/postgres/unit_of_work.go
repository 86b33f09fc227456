// Package postgres provides the GORM-based implementation of the unit of
// work pattern. A unit of work brackets the order finalization write —
// identifier allocation, the order row and its item rows — in one database
// transaction, so a partial write never leaves an order without its items.
//
// Usage:
//
//	uow := factory.Create()
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer func() { _ = uow.Rollback(ctx) }()
//
//	id, err := uow.OrderRepository().Add(ctx, order)
//	if err != nil {
//	    return err
//	}
//	return uow.Commit(ctx)
//
// Each business operation gets a fresh instance; instances are not safe for
// concurrent use.
package postgres

import (
	"context"

	"bytebowl/internal/adapters/out/postgres/menurepo"
	"bytebowl/internal/adapters/out/postgres/orderrepo"
	"bytebowl/internal/core/ports"

	"gorm.io/gorm"
)

// GormUnitOfWorkFactory creates UnitOfWork instances sharing one GORM
// connection pool.
type GormUnitOfWorkFactory struct {
	db *gorm.DB
}

// NewGormUnitOfWorkFactory creates a factory bound to a database connection.
func NewGormUnitOfWorkFactory(db *gorm.DB) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db}
}

// Create produces a new UnitOfWork with its own transaction state.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{db: f.db}
}

// GormUnitOfWork coordinates a single database transaction across the order
// and menu repositories.
type GormUnitOfWork struct {
	db *gorm.DB
	tx *gorm.DB
}

// Begin starts a new database transaction. Calling Begin again on an active
// unit of work is a no-op rather than a nested transaction.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	uow.tx = uow.db.WithContext(ctx).Begin()
	if uow.tx.Error != nil {
		err := uow.tx.Error
		uow.tx = nil
		return err
	}
	return nil
}

// Commit finalizes all changes made within the current transaction.
// Returns gorm.ErrInvalidTransaction when no transaction is active.
func (uow *GormUnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	return err
}

// Rollback discards all changes made within the current transaction.
// Returns gorm.ErrInvalidTransaction when no transaction is active, which
// makes the deferred rollback after a successful commit harmless.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	return err
}

// OrderRepository returns an order repository bound to the active
// transaction, or to the main connection when none is active.
func (uow *GormUnitOfWork) OrderRepository() ports.OrderRepository {
	db := uow.db
	if uow.tx != nil {
		db = uow.tx
	}
	return orderrepo.NewGormOrderRepository(db)
}

// MenuRepository returns a menu repository bound to the active transaction,
// so price lookups and the order insert read one consistent snapshot.
func (uow *GormUnitOfWork) MenuRepository() ports.MenuRepository {
	db := uow.db
	if uow.tx != nil {
		db = uow.tx
	}
	return menurepo.NewGormMenuRepository(db)
}
