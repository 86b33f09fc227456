package commands

import (
	"context"
)

// UpdateOrderStatusCommandHandler applies an external status trigger to a
// persisted order. The transition is validated by the order's state machine
// before anything is written.
type UpdateOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewUpdateOrderStatusCommandHandler creates a handler for status triggers.
func NewUpdateOrderStatusCommandHandler(uowFactory OrderUoWFactory) UpdateOrderStatusCommandHandler {
	return UpdateOrderStatusCommandHandler{uowFactory: uowFactory}
}

// Handle reads the order, transitions it and writes the new status back
// within one transaction.
func (h *UpdateOrderStatusCommandHandler) Handle(ctx context.Context, cmd UpdateOrderStatusCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.OrderRepository()
	o, err := repo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = o.TransitionTo(cmd.Status()); err != nil {
		return err
	}

	if err = repo.Update(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
