package orderrepo

import (
	"context"
	"errors"

	"bytebowl/internal/core/domain/model/order"
	"bytebowl/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormOrderRepository implements ports.OrderRepository using GORM.
type GormOrderRepository struct {
	db *gorm.DB
}

// NewGormOrderRepository creates a new GORM order repository. The db handle
// may be a transaction started by the unit of work.
func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// Add inserts the order and all of its lines. GORM creates the associated
// item rows in the same statement batch, so within the unit-of-work
// transaction the write is all-or-nothing. The allocated identifier is
// assigned back onto the aggregate and returned.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) (order.ID, error) {
	if err := aggregate.Validate(); err != nil {
		return 0, err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return 0, err
	}

	id := order.ID(dto.ID)
	if err := aggregate.AssignID(id); err != nil {
		return 0, err
	}
	return id, nil
}

// Update persists the current status of an existing order. Lines are
// immutable and never touched.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("id = ?", int64(aggregate.ID())).
		Update("status", int(aggregate.Status()))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("order", int64(aggregate.ID()))
	}
	return nil
}

// Get retrieves an order with its lines by identifier.
func (r *GormOrderRepository) Get(ctx context.Context, id order.ID) (*order.Order, error) {
	var dto OrderDTO
	err := r.db.WithContext(ctx).
		Preload("Items").
		First(&dto, "id = ?", int64(id)).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", int64(id))
		}
		return nil, err
	}
	return toDomain(dto)
}

// GetStatus retrieves just the status column for tracking queries.
func (r *GormOrderRepository) GetStatus(ctx context.Context, id order.ID) (order.Status, error) {
	var status int
	err := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Select("status").
		Where("id = ?", int64(id)).
		Take(&status).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return order.Unknown, errs.NewObjectNotFoundError("order", int64(id))
		}
		return order.Unknown, err
	}
	return order.Status(status), nil
}
