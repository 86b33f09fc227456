package commands

import (
	"context"

	"bytebowl/internal/core/domain/model/order"
	"bytebowl/internal/core/domain/model/session"
	"bytebowl/internal/core/ports"
)

// CompleteOrderResult carries the allocated order identifier and the derived
// total for response formatting.
type CompleteOrderResult struct {
	OrderID order.ID
	Total   float64
}

// CompleteOrderCommandHandler finalizes a session's cart: prices every cart
// line against the menu catalog, writes the order and its lines in one
// transaction, and clears the cart only after the commit succeeds.
//
// Failure policy:
//   - an empty cart fails with session.ErrEmptyCart and creates nothing
//   - a cart line with no catalog match fails the whole finalize with an
//     errs.ObjectNotFoundError naming the item; the cart is kept so the
//     customer can remove it and retry
//   - any storage failure rolls the transaction back and leaves the cart
//     untouched for a safe retry
type CompleteOrderCommandHandler struct {
	sessions   ports.SessionStore
	uowFactory FinalizeUoWFactory
}

// NewCompleteOrderCommandHandler creates a handler bound to the session
// store and a finalization unit-of-work factory.
func NewCompleteOrderCommandHandler(sessions ports.SessionStore, uowFactory FinalizeUoWFactory) CompleteOrderCommandHandler {
	return CompleteOrderCommandHandler{sessions: sessions, uowFactory: uowFactory}
}

// Handle runs the finalization under the session's lock, so a concurrent add
// for the same conversation can never interleave with the write.
func (h *CompleteOrderCommandHandler) Handle(ctx context.Context, cmd CompleteOrderCommand) (CompleteOrderResult, error) {
	if err := cmd.Validate(); err != nil {
		return CompleteOrderResult{}, err
	}

	var result CompleteOrderResult
	err := h.sessions.WithSession(cmd.SessionID(), func(s *session.Session) error {
		if s.IsEmpty() {
			return session.ErrEmptyCart
		}

		uow := h.uowFactory.Create()
		if err := uow.Begin(ctx); err != nil {
			return err
		}
		defer func() {
			_ = uow.Rollback(ctx)
		}()

		menuRepo := uow.MenuRepository()
		cartLines := s.Lines()
		lines := make([]order.Line, 0, len(cartLines))
		for _, cl := range cartLines {
			item, err := menuRepo.GetByName(ctx, cl.Name)
			if err != nil {
				return err
			}
			// Persist the catalog's canonical spelling of the name.
			line, err := order.NewLine(item.Name(), cl.Quantity, item.Price())
			if err != nil {
				return err
			}
			lines = append(lines, line)
		}

		o, err := order.NewOrder(lines)
		if err != nil {
			return err
		}

		id, err := uow.OrderRepository().Add(ctx, o)
		if err != nil {
			return err
		}

		if err := uow.Commit(ctx); err != nil {
			return err
		}

		// Committed: clearing the cart cannot fail on a non-empty cart.
		if err := s.Finalize(); err != nil {
			return err
		}
		result = CompleteOrderResult{OrderID: id, Total: o.Total()}
		return nil
	})
	if err != nil {
		return CompleteOrderResult{}, err
	}
	return result, nil
}
