// Package menurepo provides read-only access to the menu catalog table.
// The catalog is seeded by an external collaborator; this core never writes
// to it.
package menurepo

import (
	"bytebowl/internal/core/domain/model/menu"
)

// MenuItemDTO represents one catalog row.
type MenuItemDTO struct {
	ID    int64  `gorm:"primaryKey;autoIncrement"`
	Name  string `gorm:"uniqueIndex;not null"`
	Price float64
}

// TableName specifies the database table name for catalog items.
func (MenuItemDTO) TableName() string {
	return "menu_items"
}

func toDomain(dto MenuItemDTO) (menu.Item, error) {
	return menu.NewItem(dto.Name, dto.Price)
}
