package commands

import (
	"context"

	"bytebowl/internal/core/domain/model/session"
	"bytebowl/internal/core/ports"
)

// RemovedItem describes one applied removal. All is true when the cart entry
// was deleted entirely (the customer removed at least as many as were there).
type RemovedItem struct {
	Name     string
	Quantity int
	All      bool
}

// RemoveItemsResult carries what was removed, what was never in the cart,
// and the remaining snapshot for response formatting. Items absent from the
// cart are informational, not an error.
type RemoveItemsResult struct {
	Removed []RemovedItem
	Missing []string
	Lines   []session.CartLine
	Summary string
}

// RemoveItemsCommandHandler applies remove events to a session's cart. Pure
// in-memory state transition: no storage engine access.
type RemoveItemsCommandHandler struct {
	sessions ports.SessionStore
}

// NewRemoveItemsCommandHandler creates a handler bound to the session store.
func NewRemoveItemsCommandHandler(sessions ports.SessionStore) RemoveItemsCommandHandler {
	return RemoveItemsCommandHandler{sessions: sessions}
}

// Handle decrements the session's quantities for every entity pair in the
// command, deleting entries that drain to zero. All pairs apply under one
// lock hold.
func (h *RemoveItemsCommandHandler) Handle(_ context.Context, cmd RemoveItemsCommand) (RemoveItemsResult, error) {
	if err := cmd.Validate(); err != nil {
		return RemoveItemsResult{}, err
	}

	var result RemoveItemsResult
	err := h.sessions.WithSession(cmd.SessionID(), func(s *session.Session) error {
		for _, it := range cmd.Items() {
			outcome, err := s.RemoveItem(it.Name, it.Quantity)
			if err != nil {
				return err
			}
			switch outcome {
			case session.RemovedSome:
				result.Removed = append(result.Removed, RemovedItem{Name: it.Name, Quantity: it.Quantity})
			case session.RemovedAll:
				result.Removed = append(result.Removed, RemovedItem{Name: it.Name, Quantity: it.Quantity, All: true})
			case session.NotInCart:
				result.Missing = append(result.Missing, it.Name)
			}
		}
		result.Lines = s.Lines()
		result.Summary = s.Summary()
		return nil
	})
	if err != nil {
		return RemoveItemsResult{}, err
	}
	return result, nil
}
