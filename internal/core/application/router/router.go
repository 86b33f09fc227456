// Package router maps classified intents onto use case handlers and renders
// plain-text fulfillment replies. Every error is converted to user-facing
// text here; the webhook boundary never surfaces a protocol error.
package router

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"bytebowl/internal/core/application/usecases/commands"
	"bytebowl/internal/core/application/usecases/queries"
	"bytebowl/internal/core/domain/model/session"
	"bytebowl/internal/core/ports"
	"bytebowl/internal/pkg/errs"
)

// Canonical intent names. The NLP engine may send context-suffixed variants
// ("order.add - context: ongoing-order") and the legacy "track.order" name;
// normalizeIntent folds them onto these.
const (
	IntentNewOrder      = "new.order"
	IntentOrderAdd      = "order.add"
	IntentOrderRemove   = "order.remove"
	IntentOrderComplete = "order.complete"
	IntentOrderTrack    = "order.track"
)

// Handler interfaces scoped to what the router invokes.
type (
	// AddItemsHandler applies add events to a session cart.
	AddItemsHandler interface {
		Handle(ctx context.Context, cmd commands.AddItemsCommand) (commands.AddItemsResult, error)
	}

	// RemoveItemsHandler applies remove events to a session cart.
	RemoveItemsHandler interface {
		Handle(ctx context.Context, cmd commands.RemoveItemsCommand) (commands.RemoveItemsResult, error)
	}

	// CompleteOrderHandler finalizes a session cart into a persisted order.
	CompleteOrderHandler interface {
		Handle(ctx context.Context, cmd commands.CompleteOrderCommand) (commands.CompleteOrderResult, error)
	}

	// TrackOrderHandler answers order status queries.
	TrackOrderHandler interface {
		Handle(ctx context.Context, query queries.TrackOrderQuery) (queries.TrackOrderQueryResponse, error)
	}
)

// Router dispatches one webhook event to its use case and renders the reply.
type Router struct {
	sessions ports.SessionStore
	add      AddItemsHandler
	remove   RemoveItemsHandler
	complete CompleteOrderHandler
	track    TrackOrderHandler
	logger   *slog.Logger
}

// NewRouter creates a router over the session store and the four use case
// handlers.
func NewRouter(
	sessions ports.SessionStore,
	add AddItemsHandler,
	remove RemoveItemsHandler,
	complete CompleteOrderHandler,
	track TrackOrderHandler,
	logger *slog.Logger,
) *Router {
	return &Router{
		sessions: sessions,
		add:      add,
		remove:   remove,
		complete: complete,
		track:    track,
		logger:   logger,
	}
}

// normalizeIntent strips the context suffix and folds legacy names onto the
// canonical set.
func normalizeIntent(intent string) string {
	base, _, _ := strings.Cut(intent, " - context:")
	base = strings.TrimSpace(base)
	if base == "track.order" {
		return IntentOrderTrack
	}
	return base
}

// Handle dispatches one classified event and always returns reply text.
func (r *Router) Handle(ctx context.Context, intent, sessionID string, params Parameters) string {
	switch normalizeIntent(intent) {
	case IntentNewOrder:
		return r.handleNewOrder(sessionID)
	case IntentOrderAdd:
		return r.handleAdd(ctx, sessionID, params)
	case IntentOrderRemove:
		return r.handleRemove(ctx, sessionID, params)
	case IntentOrderComplete:
		return r.handleComplete(ctx, sessionID)
	case IntentOrderTrack:
		return r.handleTrack(ctx, params)
	default:
		return fmt.Sprintf("Sorry, I don't know how to handle the intent '%s' yet.", intent)
	}
}

func (r *Router) handleNewOrder(sessionID string) string {
	err := r.sessions.WithSession(sessionID, func(s *session.Session) error {
		s.Reset()
		return nil
	})
	if err != nil {
		r.logger.Error("session reset failed", "session_id", sessionID, "error", err)
		return "Sorry, something went wrong on our side. Please try again."
	}
	return "Okay! Let's start a new order. Please tell me what you'd like to order."
}

func (r *Router) handleAdd(ctx context.Context, sessionID string, params Parameters) string {
	items, err := ExtractItems(params)
	if err != nil {
		return "Sorry, I didn't understand. Can you specify food items and their quantities clearly?"
	}

	cmd, err := commands.NewAddItemsCommand(sessionID, items)
	if err != nil {
		return "Sorry, I didn't understand. Can you specify food items and their quantities clearly?"
	}

	result, err := r.add.Handle(ctx, cmd)
	if err != nil {
		r.logger.Error("add items failed", "session_id", sessionID, "error", err)
		return "Sorry, something went wrong on our side. Please try again."
	}
	return fmt.Sprintf("So far you have: %s. Do you need anything else?", result.Summary)
}

func (r *Router) handleRemove(ctx context.Context, sessionID string, params Parameters) string {
	items, err := ExtractRemovals(params)
	if err != nil {
		return "Sorry, I didn't understand. Can you specify food items and their quantities clearly?"
	}

	cmd, err := commands.NewRemoveItemsCommand(sessionID, items)
	if err != nil {
		return "Sorry, I didn't understand. Can you specify food items and their quantities clearly?"
	}

	result, err := r.remove.Handle(ctx, cmd)
	if err != nil {
		r.logger.Error("remove items failed", "session_id", sessionID, "error", err)
		return "Sorry, something went wrong on our side. Please try again."
	}
	return renderRemoveReply(result)
}

func renderRemoveReply(result commands.RemoveItemsResult) string {
	var b strings.Builder
	if len(result.Removed) > 0 {
		parts := make([]string, 0, len(result.Removed))
		for _, removed := range result.Removed {
			if removed.All {
				parts = append(parts, fmt.Sprintf("all %s", removed.Name))
			} else {
				parts = append(parts, fmt.Sprintf("%d %s", removed.Quantity, removed.Name))
			}
		}
		b.WriteString(fmt.Sprintf("Removed %s from your order!", strings.Join(parts, ", ")))
	}
	if len(result.Missing) > 0 {
		if b.Len() > 0 {
			b.WriteString(" ")
		}
		b.WriteString(fmt.Sprintf("Your current order does not have %s.", strings.Join(result.Missing, ", ")))
	}
	if len(result.Lines) == 0 {
		b.WriteString(" Your order is now empty.")
	} else {
		b.WriteString(fmt.Sprintf(" Here is what is left in your order: %s", result.Summary))
	}
	return b.String()
}

func (r *Router) handleComplete(ctx context.Context, sessionID string) string {
	cmd, err := commands.NewCompleteOrderCommand(sessionID)
	if err != nil {
		return "I'm having a trouble finding your order. Sorry! Can you place a new order please?"
	}

	result, err := r.complete.Handle(ctx, cmd)
	switch {
	case err == nil:
		return fmt.Sprintf(
			"Your order has been placed successfully! Order ID: %d. Total: %.2f. Please pay at the time of delivery. Thank you!",
			result.OrderID, result.Total)
	case errors.Is(err, session.ErrEmptyCart):
		return "Your order is empty. Please tell me what you'd like to order first."
	default:
		var notFound *errs.ObjectNotFoundError
		if errors.As(err, &notFound) {
			return fmt.Sprintf(
				"Sorry, we don't have %v on our menu. Please remove it and complete your order again.",
				notFound.ID)
		}
		r.logger.Error("order finalization failed", "session_id", sessionID, "error", err)
		return "Sorry, I couldn't process your order due to a backend error. Please try again."
	}
}

func (r *Router) handleTrack(ctx context.Context, params Parameters) string {
	id, err := ExtractOrderID(params)
	if err != nil {
		return "Invalid or missing order ID. Please try again."
	}

	query, err := queries.NewTrackOrderQuery(id)
	if err != nil {
		return "Invalid or missing order ID. Please try again."
	}

	result, err := r.track.Handle(ctx, query)
	switch {
	case err == nil:
		status := strings.ReplaceAll(result.Status.String(), "_", " ")
		return fmt.Sprintf("The order status for order id: %d is: %s", result.OrderID, status)
	case errors.Is(err, errs.ErrObjectNotFound):
		return fmt.Sprintf("No order found with order id: %d", id)
	default:
		r.logger.Error("order tracking failed", "order_id", int64(id), "error", err)
		return "Sorry, I couldn't check your order right now. Please try again."
	}
}
