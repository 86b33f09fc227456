package commands

import (
	"errors"
	"fmt"

	"bytebowl/internal/core/domain/model/order"
	"bytebowl/internal/pkg/errs"
	"bytebowl/internal/pkg/guard"
)

var (
	ErrUpdateOrderStatusCommandIsNotConstructed = errors.New(
		"UpdateOrderStatusCommand must be created via NewUpdateOrderStatusCommand constructor",
	)
)

// UpdateOrderStatusCommand represents an external trigger moving a persisted
// order along its lifecycle (placed -> in_transit/cancelled -> delivered).
// The finalizer never issues these; they arrive from operations tooling.
type UpdateOrderStatusCommand struct {
	orderID order.ID
	status  order.Status

	guard guard.ConstructorGuard
}

// NewUpdateOrderStatusCommand validates and creates the command. The target
// status must be a defined one; whether the transition is legal from the
// order's current status is decided by the aggregate.
func NewUpdateOrderStatusCommand(orderID order.ID, status order.Status) (UpdateOrderStatusCommand, error) {
	if orderID <= 0 {
		return UpdateOrderStatusCommand{}, errs.NewValueIsInvalidErrorWithCause("order ID",
			fmt.Errorf("%d is not a valid identifier", orderID))
	}
	if err := status.Validate(); err != nil {
		return UpdateOrderStatusCommand{}, err
	}
	return UpdateOrderStatusCommand{
		orderID: orderID,
		status:  status,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderStatusCommandIsNotConstructed)
}

// OrderID returns the order identifier.
func (c UpdateOrderStatusCommand) OrderID() order.ID {
	return c.orderID
}

// Status returns the target status.
func (c UpdateOrderStatusCommand) Status() order.Status {
	return c.status
}
