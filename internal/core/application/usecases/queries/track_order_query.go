// Package queries contains read-only operations in the CQRS split. Query
// handlers go straight to the database with raw SQL and never mutate state.
package queries

import (
	"errors"
	"fmt"

	"bytebowl/internal/core/domain/model/order"
	"bytebowl/internal/pkg/errs"
	"bytebowl/internal/pkg/guard"
)

var (
	ErrTrackOrderQueryIsNotConstructed = errors.New(
		"TrackOrderQuery must be created via NewTrackOrderQuery constructor",
	)
)

// TrackOrderQuery asks for the current status of a previously finalized
// order. Tracking is stateless relative to any conversation.
type TrackOrderQuery struct {
	orderID order.ID

	guard guard.ConstructorGuard
}

// NewTrackOrderQuery validates and creates the query.
func NewTrackOrderQuery(orderID order.ID) (TrackOrderQuery, error) {
	if orderID <= 0 {
		return TrackOrderQuery{}, errs.NewValueIsInvalidErrorWithCause("order ID",
			fmt.Errorf("%d is not a valid identifier", orderID))
	}
	return TrackOrderQuery{orderID: orderID, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q TrackOrderQuery) Validate() error {
	return q.guard.Validate(ErrTrackOrderQueryIsNotConstructed)
}

// OrderID returns the identifier being tracked.
func (q TrackOrderQuery) OrderID() order.ID {
	return q.orderID
}

// TrackOrderQueryResponse is the tracking result.
type TrackOrderQueryResponse struct {
	OrderID order.ID
	Status  order.Status
}
