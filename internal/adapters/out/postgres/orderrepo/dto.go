// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. It implements the repository pattern for the order
// aggregate, converting between domain entities and database rows.
package orderrepo

import (
	"time"

	"bytebowl/internal/core/domain/model/order"
)

// OrderDTO represents the database structure for persisting orders. The
// identifier is a bigserial primary key, so allocation happens inside the
// insert and ids come out unique and monotonic.
type OrderDTO struct {
	ID        int64 `gorm:"primaryKey;autoIncrement"`
	Status    int   `gorm:"index;not null"`
	Total     float64
	CreatedAt time.Time
	Items     []OrderItemDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for orders.
func (OrderDTO) TableName() string {
	return "orders"
}

// OrderItemDTO is one immutable line of a persisted order. Rows are written
// atomically with their parent order and never updated afterwards.
type OrderItemDTO struct {
	ID        int64  `gorm:"primaryKey;autoIncrement"`
	OrderID   int64  `gorm:"index;not null"`
	ItemName  string `gorm:"not null"`
	Quantity  int    `gorm:"not null"`
	UnitPrice float64
}

// TableName specifies the database table name for order lines.
func (OrderItemDTO) TableName() string {
	return "order_items"
}

// fromDomain converts an order aggregate to its database representation.
// The DTO carries a zero ID for new orders; the insert fills it in.
func fromDomain(o *order.Order) OrderDTO {
	lines := o.Lines()
	items := make([]OrderItemDTO, 0, len(lines))
	for _, l := range lines {
		items = append(items, OrderItemDTO{
			ItemName:  l.Name(),
			Quantity:  l.Quantity(),
			UnitPrice: l.UnitPrice(),
		})
	}
	return OrderDTO{
		ID:     int64(o.ID()),
		Status: int(o.Status()),
		Total:  o.Total(),
		Items:  items,
	}
}

// toDomain converts a database row set back to an order aggregate.
func toDomain(dto OrderDTO) (*order.Order, error) {
	lines := make([]order.Line, 0, len(dto.Items))
	for _, item := range dto.Items {
		line, err := order.NewLine(item.ItemName, item.Quantity, item.UnitPrice)
		if err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}
	return order.RestoreOrder(order.ID(dto.ID), lines, order.Status(dto.Status), dto.Total)
}
