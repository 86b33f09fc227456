package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetMenuQueryHandler lists the catalog directly from the database.
type GetMenuQueryHandler struct {
	db *gorm.DB
}

// NewGetMenuQueryHandler creates a handler bound to a GORM connection.
func NewGetMenuQueryHandler(db *gorm.DB) GetMenuQueryHandler {
	return GetMenuQueryHandler{db: db}
}

// Handle executes the menu listing read.
func (h GetMenuQueryHandler) Handle(ctx context.Context, _ GetMenuQuery) (GetMenuQueryResponse, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT name, price
		FROM menu_items
		ORDER BY name
	`).Rows()
	if err != nil {
		return GetMenuQueryResponse{}, err
	}
	defer rows.Close()

	var items []MenuItemResponse
	for rows.Next() {
		var item MenuItemResponse
		if err = rows.Scan(&item.Name, &item.Price); err != nil {
			return GetMenuQueryResponse{}, err
		}
		items = append(items, item)
	}
	if err = rows.Err(); err != nil {
		return GetMenuQueryResponse{}, err
	}

	return GetMenuQueryResponse{Items: items}, nil
}
