package http_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	httpin "bytebowl/internal/adapters/in/http"
	"bytebowl/internal/core/application/router"
	"bytebowl/internal/core/application/usecases/commands"
	"bytebowl/internal/core/application/usecases/queries"
	"bytebowl/internal/core/domain/model/order"
	"bytebowl/internal/core/domain/model/session"
	"bytebowl/internal/core/ports"
	"bytebowl/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type fakeSessionStore struct {
	sessions map[string]*session.Session
}

func newFakeSessionStore() *fakeSessionStore {
	return &fakeSessionStore{sessions: make(map[string]*session.Session)}
}

func (f *fakeSessionStore) WithSession(id string, fn func(s *session.Session) error) error {
	s, ok := f.sessions[id]
	if !ok {
		var err error
		s, err = session.NewSession(id)
		if err != nil {
			return err
		}
		f.sessions[id] = s
	}
	return fn(s)
}

func (f *fakeSessionStore) EvictIdle(_ time.Duration) int { return 0 }

func (f *fakeSessionStore) Len() int { return len(f.sessions) }

type MockCompleteOrderHandler struct{ mock.Mock }

func (m *MockCompleteOrderHandler) Handle(ctx context.Context, cmd commands.CompleteOrderCommand) (commands.CompleteOrderResult, error) {
	args := m.Called(ctx, cmd)
	return args.Get(0).(commands.CompleteOrderResult), args.Error(1)
}

type MockTrackOrderHandler struct{ mock.Mock }

func (m *MockTrackOrderHandler) Handle(ctx context.Context, query queries.TrackOrderQuery) (queries.TrackOrderQueryResponse, error) {
	args := m.Called(ctx, query)
	return args.Get(0).(queries.TrackOrderQueryResponse), args.Error(1)
}

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(_ context.Context, _ *order.Order) (order.ID, error) {
	return 0, errors.New("not implemented in mock")
}
func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}
func (m *MockOrderRepository) Get(ctx context.Context, id order.ID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}
func (m *MockOrderRepository) GetStatus(_ context.Context, _ order.ID) (order.Status, error) {
	return order.Unknown, errors.New("not implemented in mock")
}

type MockOrderUoW struct{ mock.Mock }

func (m *MockOrderUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockOrderUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockOrderUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockOrderUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type serverFixture struct {
	echo     *echo.Echo
	store    *fakeSessionStore
	complete *MockCompleteOrderHandler
	track    *MockTrackOrderHandler
	uowFact  *MockOrderUoWFactory
}

func newServerFixture() *serverFixture {
	store := newFakeSessionStore()
	addHandler := commands.NewAddItemsCommandHandler(store)
	removeHandler := commands.NewRemoveItemsCommandHandler(store)
	complete := new(MockCompleteOrderHandler)
	track := new(MockTrackOrderHandler)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	intentRouter := router.NewRouter(store, &addHandler, &removeHandler, complete, track, logger)

	uowFact := new(MockOrderUoWFactory)
	server := httpin.NewServer(
		intentRouter,
		commands.NewUpdateOrderStatusCommandHandler(uowFact),
		queries.GetMenuQueryHandler{},
	)

	e := echo.New()
	server.RegisterRoutes(e)
	return &serverFixture{echo: e, store: store, complete: complete, track: track, uowFact: uowFact}
}

func (f *serverFixture) request(t *testing.T, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	f.echo.ServeHTTP(rec, req)
	return rec
}

func webhookBody(t *testing.T, intent, contextName string, params map[string]any) string {
	t.Helper()
	payload := map[string]any{
		"queryResult": map[string]any{
			"intent":     map[string]any{"displayName": intent},
			"parameters": params,
		},
	}
	if contextName != "" {
		payload["queryResult"].(map[string]any)["outputContexts"] = []map[string]any{{"name": contextName}}
	}
	raw, err := json.Marshal(payload)
	require.NoError(t, err)
	return string(raw)
}

func fulfillmentText(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var resp struct {
		FulfillmentText string `json:"fulfillmentText"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp.FulfillmentText
}

const ongoingOrderContext = "projects/bytebowl/agent/sessions/abc-123/contexts/ongoing-order"

func TestServer_HandleWebhook_AddItems(t *testing.T) {
	f := newServerFixture()

	rec := f.request(t, http.MethodPost, "/webhook", webhookBody(t, "order.add", ongoingOrderContext, map[string]any{
		"food_items": []string{"Pav Bhaji", "mango lassi"},
		"number":     []float64{2, 1},
	}))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "So far you have: 2 pav bhaji, 1 mango lassi. Do you need anything else?", fulfillmentText(t, rec))
}

func TestServer_HandleWebhook_SessionFromOutputContext(t *testing.T) {
	f := newServerFixture()

	first := webhookBody(t, "order.add", ongoingOrderContext, map[string]any{
		"food_items": []string{"samosa"},
		"number":     []float64{2},
	})
	second := webhookBody(t, "order.add", ongoingOrderContext, map[string]any{
		"food_items": []string{"samosa"},
		"number":     []float64{3},
	})
	f.request(t, http.MethodPost, "/webhook", first)
	rec := f.request(t, http.MethodPost, "/webhook", second)

	// Same context name means same conversation, so quantities accumulate.
	assert.Equal(t, "So far you have: 5 samosa. Do you need anything else?", fulfillmentText(t, rec))
	assert.Equal(t, 1, f.store.Len())
	assert.Equal(t, 5, f.store.sessions["abc-123"].Quantity("samosa"))
}

func TestServer_HandleWebhook_NoOutputContexts_GeneratesSession(t *testing.T) {
	f := newServerFixture()

	rec := f.request(t, http.MethodPost, "/webhook", webhookBody(t, "order.add", "", map[string]any{
		"food_items": []string{"samosa"},
		"number":     []float64{1},
	}))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "So far you have: 1 samosa. Do you need anything else?", fulfillmentText(t, rec))
	assert.Equal(t, 1, f.store.Len())
}

func TestServer_HandleWebhook_UnknownIntent(t *testing.T) {
	f := newServerFixture()

	rec := f.request(t, http.MethodPost, "/webhook", webhookBody(t, "sing.a.song", ongoingOrderContext, map[string]any{}))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Sorry, I don't know how to handle the intent 'sing.a.song' yet.", fulfillmentText(t, rec))
}

func TestServer_HandleWebhook_TrackOrder(t *testing.T) {
	f := newServerFixture()
	f.track.On("Handle", mock.Anything, mock.AnythingOfType("queries.TrackOrderQuery")).
		Return(queries.TrackOrderQueryResponse{OrderID: 41, Status: order.Placed}, nil).Once()

	rec := f.request(t, http.MethodPost, "/webhook",
		webhookBody(t, "track.order", ongoingOrderContext, map[string]any{"order_id": 41}))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "The order status for order id: 41 is: placed", fulfillmentText(t, rec))
	f.track.AssertExpectations(t)
}

func TestServer_HandleWebhook_MalformedBody(t *testing.T) {
	f := newServerFixture()

	rec := f.request(t, http.MethodPost, "/webhook", "{not json")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestServer_UpdateOrderStatus_Success(t *testing.T) {
	f := newServerFixture()

	line, err := order.NewLine("Samosa", 1, 3)
	require.NoError(t, err)
	existing, err := order.RestoreOrder(order.ID(7), []order.Line{line}, order.Placed, 3)
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", mock.Anything).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, order.ID(7)).Return(existing, nil).Once(),
		repo.On("Update", mock.Anything, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("Commit", mock.Anything).Return(nil).Once(),
		uow.On("Rollback", mock.Anything).Return(nil).Once(),
	)
	f.uowFact.On("Create").Return(uow).Once()

	rec := f.request(t, http.MethodPatch, "/api/v1/orders/7/status", `{"status":"in_transit"}`)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	uow.AssertExpectations(t)
}

func TestServer_UpdateOrderStatus_InvalidID(t *testing.T) {
	f := newServerFixture()

	rec := f.request(t, http.MethodPatch, "/api/v1/orders/banana/status", `{"status":"in_transit"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestServer_UpdateOrderStatus_UnknownStatus(t *testing.T) {
	f := newServerFixture()

	rec := f.request(t, http.MethodPatch, "/api/v1/orders/7/status", `{"status":"teleported"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestServer_UpdateOrderStatus_NotFound(t *testing.T) {
	f := newServerFixture()

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", mock.Anything).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, order.ID(404)).
			Return(nil, errs.NewObjectNotFoundError("order", int64(404))).Once(),
		uow.On("Rollback", mock.Anything).Return(nil).Once(),
	)
	f.uowFact.On("Create").Return(uow).Once()

	rec := f.request(t, http.MethodPatch, "/api/v1/orders/404/status", `{"status":"in_transit"}`)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestServer_UpdateOrderStatus_IllegalTransition(t *testing.T) {
	f := newServerFixture()

	line, err := order.NewLine("Samosa", 1, 3)
	require.NoError(t, err)
	existing, err := order.RestoreOrder(order.ID(7), []order.Line{line}, order.Delivered, 3)
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", mock.Anything).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, order.ID(7)).Return(existing, nil).Once(),
		uow.On("Rollback", mock.Anything).Return(nil).Once(),
	)
	f.uowFact.On("Create").Return(uow).Once()

	rec := f.request(t, http.MethodPatch, "/api/v1/orders/7/status", `{"status":"cancelled"}`)

	assert.Equal(t, http.StatusConflict, rec.Code)
}
