package commands

import (
	"context"

	"bytebowl/internal/core/domain/model/session"
	"bytebowl/internal/core/ports"
)

// AddItemsResult is the cart snapshot after the event, for response
// formatting.
type AddItemsResult struct {
	Lines   []session.CartLine
	Summary string
}

// AddItemsCommandHandler applies add events to a session's cart. Pure
// in-memory state transition: no storage engine access.
type AddItemsCommandHandler struct {
	sessions ports.SessionStore
}

// NewAddItemsCommandHandler creates a handler bound to the session store.
func NewAddItemsCommandHandler(sessions ports.SessionStore) AddItemsCommandHandler {
	return AddItemsCommandHandler{sessions: sessions}
}

// Handle increments the session's quantities for every entity pair in the
// command. All pairs apply under one lock hold, so the event is atomic with
// respect to its session.
func (h *AddItemsCommandHandler) Handle(_ context.Context, cmd AddItemsCommand) (AddItemsResult, error) {
	if err := cmd.Validate(); err != nil {
		return AddItemsResult{}, err
	}

	var result AddItemsResult
	err := h.sessions.WithSession(cmd.SessionID(), func(s *session.Session) error {
		for _, it := range cmd.Items() {
			if err := s.AddItem(it.Name, it.Quantity); err != nil {
				return err
			}
		}
		result = AddItemsResult{Lines: s.Lines(), Summary: s.Summary()}
		return nil
	})
	if err != nil {
		return AddItemsResult{}, err
	}
	return result, nil
}
