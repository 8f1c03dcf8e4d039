package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Tahashy/Panel-Administrativo/internal/events"
	"github.com/Tahashy/Panel-Administrativo/internal/models"
	"github.com/gorilla/mux"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeOrderRepository keeps orders in memory and mirrors the repository
// contract, including pgx.ErrNoRows for missing ids.
type fakeOrderRepository struct {
	orders       map[string]*models.Order
	countTodayAt time.Time
}

func newFakeOrderRepository(orders ...*models.Order) *fakeOrderRepository {
	repo := &fakeOrderRepository{orders: make(map[string]*models.Order)}
	for _, o := range orders {
		repo.orders[o.ID] = o
	}
	return repo
}

func (f *fakeOrderRepository) ListByRestaurant(_ context.Context, restaurantID string, statuses []models.OrderStatus, limit int) ([]*models.Order, error) {
	allowed := make(map[models.OrderStatus]bool, len(statuses))
	for _, s := range statuses {
		allowed[s] = true
	}
	var out []*models.Order
	for _, o := range f.orders {
		if o.RestaurantID == restaurantID && allowed[o.Status] && len(out) < limit {
			out = append(out, o)
		}
	}
	return out, nil
}

func (f *fakeOrderRepository) ListSince(_ context.Context, restaurantID string, since time.Time) ([]*models.Order, error) {
	var out []*models.Order
	for _, o := range f.orders {
		if o.RestaurantID == restaurantID && !o.CreatedAt.Before(since) {
			out = append(out, o)
		}
	}
	return out, nil
}

func (f *fakeOrderRepository) GetByID(_ context.Context, id string) (*models.Order, error) {
	o, ok := f.orders[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	copied := *o
	return &copied, nil
}

func (f *fakeOrderRepository) Create(_ context.Context, order *models.Order) error {
	f.orders[order.ID] = order
	return nil
}

func (f *fakeOrderRepository) UpdateStatus(_ context.Context, id string, update models.StatusUpdate) error {
	o, ok := f.orders[id]
	if !ok {
		return pgx.ErrNoRows
	}
	o.Status = update.Status
	if update.PrepSeconds != nil {
		o.PrepSeconds = update.PrepSeconds
		o.FinalizedAt = update.FinalizedAt
	}
	return nil
}

func (f *fakeOrderRepository) UpdateDetails(_ context.Context, order *models.Order) error {
	if _, ok := f.orders[order.ID]; !ok {
		return pgx.ErrNoRows
	}
	f.orders[order.ID] = order
	return nil
}

func (f *fakeOrderRepository) Delete(_ context.Context, id string) error {
	delete(f.orders, id)
	return nil
}

func (f *fakeOrderRepository) CountToday(_ context.Context, restaurantID string, day time.Time) (int, float64, error) {
	f.countTodayAt = day
	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC)
	count, sales := 0, 0.0
	for _, o := range f.orders {
		if o.RestaurantID == restaurantID && !o.CreatedAt.Before(start) {
			count++
			sales += o.Total
		}
	}
	return count, sales, nil
}

type fakeProductRepository struct {
	products   []*models.Product
	categories []*models.Category
}

func (f *fakeProductRepository) ListAvailable(_ context.Context, _ string) ([]*models.Product, error) {
	return f.products, nil
}
func (f *fakeProductRepository) Create(_ context.Context, _ *models.Product) error      { return nil }
func (f *fakeProductRepository) BulkCreate(_ context.Context, _ []*models.Product) error { return nil }
func (f *fakeProductRepository) Count(_ context.Context) (int, error)                    { return len(f.products), nil }
func (f *fakeProductRepository) CreateCategory(_ context.Context, _ *models.Category) error {
	return nil
}
func (f *fakeProductRepository) ListCategories(_ context.Context, _ string) ([]*models.Category, error) {
	return f.categories, nil
}

// recordingPublisher captures published events for assertions.
type recordingPublisher struct {
	published []string
}

func (p *recordingPublisher) Publish(eventType string, _ *models.Order) error {
	p.published = append(p.published, eventType)
	return nil
}
func (p *recordingPublisher) Close() error { return nil }

var testNow = time.Date(2026, 3, 10, 12, 30, 0, 0, time.UTC)

func newTestRouter(repo *fakeOrderRepository) (*mux.Router, *recordingPublisher) {
	return newTestRouterInZone(repo, time.UTC)
}

func newTestRouterInZone(repo *fakeOrderRepository, loc *time.Location) (*mux.Router, *recordingPublisher) {
	publisher := &recordingPublisher{}
	oc := NewOrderController(repo, publisher, "TAKEMI FAST&FOOD", 100, loc)
	oc.now = func() time.Time { return testNow }
	pc := NewProductController(&fakeProductRepository{})

	router := mux.NewRouter()
	RegisterRoutes(router, oc, pc)
	return router, publisher
}

func seedOrder(id string, status models.OrderStatus) *models.Order {
	return &models.Order{
		ID:            id,
		RestaurantID:  "r1",
		Number:        "ORD-" + id,
		Type:          models.OrderTypeTable,
		TableNumber:   "4",
		CustomerName:  "María",
		CustomerPhone: "+51 987 654 321",
		PaymentMethod: models.PaymentCash,
		Status:        status,
		Subtotal:      22,
		ContainerCost: 2,
		Tax:           2.4,
		Total:         26.4,
		CreatedAt:     testNow.Add(-10 * time.Minute),
		Items: []models.OrderItem{
			{ID: "i1", OrderID: id, ProductID: "p1", ProductName: "Hamburguesa", UnitPrice: 10, Quantity: 2, AddOns: []models.AddOn{{Name: "Tocino", Price: 1}}, Subtotal: 22},
		},
	}
}

func doRequest(router *mux.Router, method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			panic(err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestListOrdersFiltersBySearchAndStatus(t *testing.T) {
	repo := newFakeOrderRepository(
		seedOrder("a1", models.StatusPending),
		seedOrder("b2", models.StatusPreparing),
	)
	repo.orders["b2"].CustomerName = "Carlos"
	router, _ := newTestRouter(repo)

	rec := doRequest(router, http.MethodGet, "/restaurants/r1/orders?search=carlos", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var got []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Len(t, got, 1)
	assert.Equal(t, "Carlos", got[0]["customer_name"])

	rec = doRequest(router, http.MethodGet, "/restaurants/r1/orders?status=pending", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Len(t, got, 1)
	assert.Equal(t, "pending", got[0]["status"])
}

func TestListOrdersIncludesElapsedClock(t *testing.T) {
	repo := newFakeOrderRepository(seedOrder("a1", models.StatusPending))
	router, _ := newTestRouter(repo)

	rec := doRequest(router, http.MethodGet, "/restaurants/r1/orders", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var got []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Len(t, got, 1)
	assert.Equal(t, float64(600), got[0]["elapsed_seconds"])
	assert.Equal(t, "10:00", got[0]["elapsed_display"])
}

func TestCreateOrderComputesTotalsAndMergesLines(t *testing.T) {
	repo := newFakeOrderRepository()
	router, publisher := newTestRouter(repo)

	line := map[string]any{
		"product_id":   "p1",
		"product_name": "Hamburguesa",
		"unit_price":   10,
		"quantity":     1,
		"add_ons":      []map[string]any{{"name": "Tocino", "price": 1}},
	}
	body := map[string]any{
		"type":              "table",
		"table_number":      "4",
		"customer_name":     "María",
		"items":             []map[string]any{line, line},
		"container_charges": []map[string]any{{"description": "taper", "price": 2}},
	}

	rec := doRequest(router, http.MethodPost, "/restaurants/r1/orders", body)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var got models.Order
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))

	assert.NotEmpty(t, got.ID)
	assert.Regexp(t, `^ORD-\d{8}$`, got.Number)
	assert.Equal(t, models.StatusPending, got.Status)
	assert.Equal(t, models.PaymentCash, got.PaymentMethod)
	assert.InDelta(t, 22, got.Subtotal, 1e-9)
	assert.InDelta(t, 2, got.ContainerCost, 1e-9)
	assert.InDelta(t, 2.4, got.Tax, 1e-9)
	assert.InDelta(t, 26.4, got.Total, 1e-9)

	// identical lines merge into one with quantity 2
	require.Len(t, got.Items, 1)
	assert.Equal(t, 2, got.Items[0].Quantity)
	assert.InDelta(t, 22, got.Items[0].Subtotal, 1e-9)

	assert.Equal(t, []string{events.EventOrderCreated}, publisher.published)
	assert.Len(t, repo.orders, 1)
}

func TestCreateOrderValidation(t *testing.T) {
	router, _ := newTestRouter(newFakeOrderRepository())

	cases := []map[string]any{
		{"type": "table", "items": []map[string]any{{"product_id": "p1", "unit_price": 5, "quantity": 1}}},
		{"type": "delivery", "items": []map[string]any{{"product_id": "p1", "unit_price": 5, "quantity": 1}}},
		{"type": "table", "table_number": "4"},
		{"type": "drive-thru", "items": []map[string]any{{"product_id": "p1", "unit_price": 5, "quantity": 1}}},
	}
	for i, body := range cases {
		rec := doRequest(router, http.MethodPost, "/restaurants/r1/orders", body)
		assert.Equal(t, http.StatusBadRequest, rec.Code, "case %d: %s", i, rec.Body.String())
	}
}

func TestUpdateStatusStampsPrepTimeOnce(t *testing.T) {
	repo := newFakeOrderRepository(seedOrder("a1", models.StatusPreparing))
	router, publisher := newTestRouter(repo)

	rec := doRequest(router, http.MethodPatch, "/orders/a1/status", map[string]string{"status": "ready"})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var got models.Order
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, models.StatusReady, got.Status)
	require.NotNil(t, got.PrepSeconds)
	assert.Equal(t, 600, *got.PrepSeconds)
	require.NotNil(t, got.FinalizedAt)

	// moving on to delivered keeps the original stamp
	rec = doRequest(router, http.MethodPatch, "/orders/a1/status", map[string]string{"status": "delivered"})
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, models.StatusDelivered, got.Status)
	assert.Equal(t, 600, *got.PrepSeconds)

	assert.Equal(t, []string{events.EventOrderStatusChanged, events.EventOrderStatusChanged}, publisher.published)
}

func TestUpdateStatusConflictsOnFinalizedOrder(t *testing.T) {
	repo := newFakeOrderRepository(seedOrder("a1", models.StatusDelivered))
	router, _ := newTestRouter(repo)

	rec := doRequest(router, http.MethodPatch, "/orders/a1/status", map[string]string{"status": "preparing"})
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestUpdateStatusRejectsUnknownStatus(t *testing.T) {
	repo := newFakeOrderRepository(seedOrder("a1", models.StatusPending))
	router, _ := newTestRouter(repo)

	rec := doRequest(router, http.MethodPatch, "/orders/a1/status", map[string]string{"status": "shipped"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUpdateOrderRecomputesTotals(t *testing.T) {
	repo := newFakeOrderRepository(seedOrder("a1", models.StatusPending))
	router, _ := newTestRouter(repo)

	body := map[string]any{
		"type":          "takeaway",
		"customer_name": "Ana",
		"items": []map[string]any{
			{"product_id": "p2", "product_name": "Salchipapa", "unit_price": 8, "quantity": 1},
		},
	}
	rec := doRequest(router, http.MethodPut, "/orders/a1", body)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var got models.Order
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, models.OrderTypeTakeaway, got.Type)
	assert.InDelta(t, 8, got.Subtotal, 1e-9)
	assert.InDelta(t, 0.8, got.Tax, 1e-9)
	assert.InDelta(t, 8.8, got.Total, 1e-9)
	require.Len(t, got.Items, 1)
	assert.Equal(t, "Salchipapa", got.Items[0].ProductName)
	// payment method carries over when the edit omits it
	assert.Equal(t, models.PaymentCash, got.PaymentMethod)
}

func TestUpdateOrderConflictsWhenFinalized(t *testing.T) {
	for _, status := range []models.OrderStatus{models.StatusDelivered, models.StatusCancelled, models.StatusVoided} {
		repo := newFakeOrderRepository(seedOrder("a1", status))
		router, _ := newTestRouter(repo)

		rec := doRequest(router, http.MethodPut, "/orders/a1", map[string]any{
			"type":  "takeaway",
			"items": []map[string]any{{"product_id": "p1", "unit_price": 5, "quantity": 1}},
		})
		assert.Equal(t, http.StatusConflict, rec.Code, "status %s", status)
	}
}

func TestGetOrderNotFound(t *testing.T) {
	router, _ := newTestRouter(newFakeOrderRepository())

	rec := doRequest(router, http.MethodGet, "/orders/missing", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestWhatsAppSummary(t *testing.T) {
	repo := newFakeOrderRepository(seedOrder("a1", models.StatusReady))
	router, _ := newTestRouter(repo)

	rec := doRequest(router, http.MethodGet, "/orders/a1/whatsapp", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var got map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Contains(t, got["message"], "TAKEMI FAST&FOOD")
	assert.Contains(t, got["message"], "TOTAL: $26.40")
	assert.Contains(t, got["link"], "https://wa.me/51987654321?text=")
}

func TestWhatsAppSummaryNoPhone(t *testing.T) {
	o := seedOrder("a1", models.StatusReady)
	o.CustomerPhone = ""
	router, _ := newTestRouter(newFakeOrderRepository(o))

	rec := doRequest(router, http.MethodGet, "/orders/a1/whatsapp", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDeleteOrder(t *testing.T) {
	repo := newFakeOrderRepository(seedOrder("a1", models.StatusVoided))
	router, _ := newTestRouter(repo)

	rec := doRequest(router, http.MethodDelete, "/orders/a1", nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, repo.orders)
}

func TestOrderStats(t *testing.T) {
	repo := newFakeOrderRepository(
		seedOrder("a1", models.StatusPending),
		seedOrder("b2", models.StatusPreparing),
		seedOrder("c3", models.StatusReady),
	)
	router, _ := newTestRouter(repo)

	rec := doRequest(router, http.MethodGet, "/restaurants/r1/orders/stats", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var got struct {
		Summary struct {
			Total     int `json:"total"`
			Pending   int `json:"pending"`
			Preparing int `json:"preparing"`
			Ready     int `json:"ready"`
		} `json:"summary"`
		OccupiedTables int     `json:"occupied_tables"`
		OrdersToday    int     `json:"orders_today"`
		SalesToday     float64 `json:"sales_today"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))

	assert.Equal(t, 3, got.Summary.Total)
	assert.Equal(t, 1, got.Summary.Pending)
	assert.Equal(t, 1, got.Summary.Preparing)
	assert.Equal(t, 1, got.Summary.Ready)
	assert.Equal(t, 3, got.OccupiedTables)
	assert.Equal(t, 3, got.OrdersToday)
	assert.InDelta(t, 3*26.4, got.SalesToday, 1e-9)
}

func TestOrderStatsUseRestaurantTimezone(t *testing.T) {
	repo := newFakeOrderRepository(seedOrder("a1", models.StatusPending))
	lima := time.FixedZone("America/Lima", -5*3600)
	router, _ := newTestRouterInZone(repo, lima)

	rec := doRequest(router, http.MethodGet, "/restaurants/r1/orders/stats", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	// the day handed to the store carries the restaurant zone, so the
	// today window rolls over at local midnight
	assert.Equal(t, lima, repo.countTodayAt.Location())
	assert.True(t, repo.countTodayAt.Equal(testNow))
}

func TestHealthEndpoint(t *testing.T) {
	router, _ := newTestRouter(newFakeOrderRepository())

	rec := doRequest(router, http.MethodGet, "/health", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}
