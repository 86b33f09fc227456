package queries

import (
	"context"

	"bytebowl/internal/core/domain/model/order"
	"bytebowl/internal/pkg/errs"

	"gorm.io/gorm"
)

// TrackOrderQueryHandler reads the current status for an order identifier.
// Fails with an errs.ObjectNotFoundError when the identifier was never
// issued by the finalizer.
type TrackOrderQueryHandler struct {
	db *gorm.DB
}

// NewTrackOrderQueryHandler creates a handler bound to a GORM connection.
func NewTrackOrderQueryHandler(db *gorm.DB) TrackOrderQueryHandler {
	return TrackOrderQueryHandler{db: db}
}

// Handle executes the tracking read.
func (h TrackOrderQueryHandler) Handle(ctx context.Context, query TrackOrderQuery) (TrackOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return TrackOrderQueryResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT status
		FROM orders
		WHERE id = ?
	`, int64(query.OrderID())).Rows()
	if err != nil {
		return TrackOrderQueryResponse{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return TrackOrderQueryResponse{}, err
		}
		return TrackOrderQueryResponse{}, errs.NewObjectNotFoundError("order", int64(query.OrderID()))
	}

	var status int
	if err = rows.Scan(&status); err != nil {
		return TrackOrderQueryResponse{}, err
	}

	parsed := order.Status(status)
	if err = parsed.Validate(); err != nil {
		return TrackOrderQueryResponse{}, err
	}

	return TrackOrderQueryResponse{OrderID: query.OrderID(), Status: parsed}, nil
}
