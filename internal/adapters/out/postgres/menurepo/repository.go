package menurepo

import (
	"context"
	"errors"

	"bytebowl/internal/core/domain/model/menu"
	"bytebowl/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormMenuRepository implements ports.MenuRepository using GORM.
type GormMenuRepository struct {
	db *gorm.DB
}

// NewGormMenuRepository creates a new GORM menu repository.
func NewGormMenuRepository(db *gorm.DB) *GormMenuRepository {
	return &GormMenuRepository{db: db}
}

// GetByName looks up a catalog item case-insensitively.
func (r *GormMenuRepository) GetByName(ctx context.Context, name string) (menu.Item, error) {
	normalized := menu.NormalizeName(name)
	if normalized == "" {
		return menu.Item{}, errs.NewValueIsRequiredError("menu item name")
	}

	var dto MenuItemDTO
	err := r.db.WithContext(ctx).
		First(&dto, "LOWER(name) = ?", normalized).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return menu.Item{}, errs.NewObjectNotFoundError("menu item", name)
		}
		return menu.Item{}, err
	}
	return toDomain(dto)
}

// List returns the whole catalog in name order.
func (r *GormMenuRepository) List(ctx context.Context) ([]menu.Item, error) {
	var dtos []MenuItemDTO
	if err := r.db.WithContext(ctx).Order("name").Find(&dtos).Error; err != nil {
		return nil, err
	}

	items := make([]menu.Item, 0, len(dtos))
	for _, dto := range dtos {
		item, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}
