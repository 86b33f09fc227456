// Package http exposes the inbound HTTP surface: the NLP webhook, the menu
// listing and the operational status update endpoint.
package http

import (
	"errors"
	"net/http"
	"regexp"
	"strconv"

	"bytebowl/internal/core/application/router"
	"bytebowl/internal/core/application/usecases/commands"
	"bytebowl/internal/core/application/usecases/queries"
	"bytebowl/internal/core/domain/model/order"
	"bytebowl/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// sessionIDPattern extracts the session segment from an output context name
// ("projects/p/agent/sessions/<id>/contexts/ongoing-order").
var sessionIDPattern = regexp.MustCompile(`/sessions/(.*?)/contexts/`)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	intentRouter *router.Router

	// Command handlers
	updateOrderStatusHandler commands.UpdateOrderStatusCommandHandler

	// Query handlers
	getMenuHandler queries.GetMenuQueryHandler
}

// NewServer creates a new HTTP server with the intent router and the
// required command and query handlers.
func NewServer(
	intentRouter *router.Router,
	updateOrderStatusHandler commands.UpdateOrderStatusCommandHandler,
	getMenuHandler queries.GetMenuQueryHandler,
) *Server {
	return &Server{
		intentRouter:             intentRouter,
		updateOrderStatusHandler: updateOrderStatusHandler,
		getMenuHandler:           getMenuHandler,
	}
}

// RegisterRoutes attaches all endpoints to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.POST("/webhook", s.HandleWebhook)
	e.GET("/api/v1/menu", s.GetMenu)
	e.PATCH("/api/v1/orders/:id/status", s.UpdateOrderStatus)
}

type webhookRequest struct {
	QueryResult struct {
		Intent struct {
			DisplayName string `json:"displayName"`
		} `json:"intent"`
		Parameters     map[string]any `json:"parameters"`
		OutputContexts []struct {
			Name string `json:"name"`
		} `json:"outputContexts"`
	} `json:"queryResult"`
}

type webhookResponse struct {
	FulfillmentText string `json:"fulfillmentText"`
}

type errorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// HandleWebhook handles POST /webhook - one classified conversation event.
// The NLP engine expects a well-formed fulfillment payload on every call, so
// anything past body decoding answers 200 with reply text.
func (s *Server) HandleWebhook(ctx echo.Context) error {
	var req webhookRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, errorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	sessionID := extractSessionID(req)
	reply := s.intentRouter.Handle(
		ctx.Request().Context(),
		req.QueryResult.Intent.DisplayName,
		sessionID,
		req.QueryResult.Parameters,
	)
	return ctx.JSON(http.StatusOK, webhookResponse{FulfillmentText: reply})
}

// extractSessionID pulls the conversation id out of the first output
// context. Events without contexts get a generated id so they still work,
// each as its own conversation.
func extractSessionID(req webhookRequest) string {
	if len(req.QueryResult.OutputContexts) > 0 {
		matches := sessionIDPattern.FindStringSubmatch(req.QueryResult.OutputContexts[0].Name)
		if len(matches) == 2 && matches[1] != "" {
			return matches[1]
		}
	}
	return uuid.NewString()
}

type menuItemResponse struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// GetMenu handles GET /api/v1/menu - lists the catalog.
func (s *Server) GetMenu(ctx echo.Context) error {
	result, err := s.getMenuHandler.Handle(ctx.Request().Context(), queries.NewGetMenuQuery())
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, errorResponse{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve menu",
		})
	}

	response := make([]menuItemResponse, len(result.Items))
	for i, item := range result.Items {
		response[i] = menuItemResponse{Name: item.Name, Price: item.Price}
	}
	return ctx.JSON(http.StatusOK, response)
}

type updateOrderStatusRequest struct {
	Status string `json:"status"`
}

// UpdateOrderStatus handles PATCH /api/v1/orders/:id/status - moves a
// persisted order along its lifecycle from operations tooling.
func (s *Server) UpdateOrderStatus(ctx echo.Context) error {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return ctx.JSON(http.StatusBadRequest, errorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid order id",
		})
	}

	var req updateOrderStatusRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, errorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	status, err := order.StatusFromString(req.Status)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, errorResponse{
			Code:    http.StatusBadRequest,
			Message: "Unknown status",
		})
	}

	cmd, err := commands.NewUpdateOrderStatusCommand(order.ID(id), status)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, errorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid status update",
		})
	}

	err = s.updateOrderStatusHandler.Handle(ctx.Request().Context(), cmd)
	switch {
	case err == nil:
		return ctx.NoContent(http.StatusNoContent)
	case errors.Is(err, errs.ErrObjectNotFound):
		return ctx.JSON(http.StatusNotFound, errorResponse{
			Code:    http.StatusNotFound,
			Message: "Order not found",
		})
	case errors.Is(err, errs.ErrValueIsInvalid):
		return ctx.JSON(http.StatusConflict, errorResponse{
			Code:    http.StatusConflict,
			Message: err.Error(),
		})
	default:
		return ctx.JSON(http.StatusInternalServerError, errorResponse{
			Code:    http.StatusInternalServerError,
			Message: "Failed to update order status",
		})
	}
}
