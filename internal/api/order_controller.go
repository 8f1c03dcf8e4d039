package api

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/Tahashy/Panel-Administrativo/internal/events"
	"github.com/Tahashy/Panel-Administrativo/internal/models"
	"github.com/Tahashy/Panel-Administrativo/internal/pos"
	"github.com/Tahashy/Panel-Administrativo/internal/repositories"
	"github.com/gorilla/mux"
	"github.com/jackc/pgx/v5"
	"github.com/lucsky/cuid"
)

// boardStatuses is the status set the order board loads. Voided orders are
// kept out of the board, matching the reference queries.
var boardStatuses = []models.OrderStatus{
	models.StatusPending,
	models.StatusPreparing,
	models.StatusReady,
	models.StatusDelivered,
	models.StatusCancelled,
}

// OrderController handles order-related requests
type OrderController struct {
	Orders       repositories.OrderRepository
	Events       events.Publisher
	BusinessName string
	FetchLimit   int
	// Location is the restaurant's timezone; "today" figures roll over at
	// its local midnight.
	Location *time.Location
	now      func() time.Time
}

func NewOrderController(orders repositories.OrderRepository, publisher events.Publisher, businessName string, fetchLimit int, loc *time.Location) *OrderController {
	if loc == nil {
		loc = time.UTC
	}
	return &OrderController{
		Orders:       orders,
		Events:       publisher,
		BusinessName: businessName,
		FetchLimit:   fetchLimit,
		Location:     loc,
		now:          time.Now,
	}
}

// orderView augments an order with the derived preparation clock shown on
// the board; re-derived on every read, never stored.
type orderView struct {
	*models.Order
	ElapsedSeconds int    `json:"elapsed_seconds"`
	ElapsedDisplay string `json:"elapsed_display"`
}

func (oc *OrderController) view(o *models.Order) orderView {
	secs := pos.ElapsedSeconds(o, oc.now())
	return orderView{Order: o, ElapsedSeconds: secs, ElapsedDisplay: pos.FormatElapsed(secs)}
}

// ListOrders returns the board for a restaurant, filtered by the search term
// and status filter from the query string.
func (oc *OrderController) ListOrders(w http.ResponseWriter, r *http.Request) {
	restaurantID := mux.Vars(r)["id"]

	orders, err := oc.Orders.ListByRestaurant(r.Context(), restaurantID, boardStatuses, oc.FetchLimit)
	if err != nil {
		log.Printf("Error loading orders for restaurant %s: %v", restaurantID, err)
		respondError(w, http.StatusInternalServerError, "Failed to load orders")
		return
	}

	search := r.URL.Query().Get("search")
	status := r.URL.Query().Get("status")
	filtered := pos.FilterOrders(orders, search, status)

	views := make([]orderView, 0, len(filtered))
	for _, o := range filtered {
		views = append(views, oc.view(o))
	}
	respondJSON(w, http.StatusOK, views)
}

// OrderStats backs the dashboard cards: per-status counts over the board
// plus today's order count and sales.
func (oc *OrderController) OrderStats(w http.ResponseWriter, r *http.Request) {
	restaurantID := mux.Vars(r)["id"]

	orders, err := oc.Orders.ListByRestaurant(r.Context(), restaurantID, boardStatuses, oc.FetchLimit)
	if err != nil {
		log.Printf("Error loading orders for stats: %v", err)
		respondError(w, http.StatusInternalServerError, "Failed to load orders")
		return
	}

	count, sales, err := oc.Orders.CountToday(r.Context(), restaurantID, oc.now().In(oc.Location))
	if err != nil {
		log.Printf("Error loading today's totals: %v", err)
		respondError(w, http.StatusInternalServerError, "Failed to load stats")
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{
		"summary":         pos.Summarize(orders),
		"occupied_tables": pos.OccupiedTables(orders),
		"orders_today":    count,
		"sales_today":     sales,
	})
}

type orderRequest struct {
	CreatedBy        string                   `json:"created_by"`
	Type             models.OrderType         `json:"type"`
	TableNumber      string                   `json:"table_number"`
	DeliveryAddress  string                   `json:"delivery_address"`
	CustomerName     string                   `json:"customer_name"`
	CustomerPhone    string                   `json:"customer_phone"`
	PaymentMethod    string                   `json:"payment_method"`
	Notes            string                   `json:"notes"`
	Items            []models.CartItem        `json:"items"`
	ContainerCharges []models.ContainerCharge `json:"container_charges"`
}

func (req *orderRequest) validate() string {
	switch req.Type {
	case models.OrderTypeTable:
		if req.TableNumber == "" {
			return "table number is required for table orders"
		}
	case models.OrderTypeTakeaway:
	case models.OrderTypeDelivery:
		if req.DeliveryAddress == "" {
			return "delivery address is required for delivery orders"
		}
	default:
		return "order type must be table, takeaway or delivery"
	}
	if len(req.Items) == 0 {
		return "order needs at least one item"
	}
	return ""
}

// cart merges the request lines so identical product and add-on selections
// collapse into a single line.
func (req *orderRequest) cart() *pos.Cart {
	cart := &pos.Cart{}
	for _, item := range req.Items {
		cart.Add(item)
	}
	return cart
}

func (req *orderRequest) apply(o *models.Order, totals pos.Totals, items []models.CartItem) {
	o.Type = req.Type
	o.TableNumber = req.TableNumber
	o.DeliveryAddress = req.DeliveryAddress
	o.CustomerName = req.CustomerName
	o.CustomerPhone = req.CustomerPhone
	o.PaymentMethod = req.PaymentMethod
	o.Notes = req.Notes
	o.Subtotal = totals.Subtotal
	o.ContainerCost = totals.ContainerCost
	o.Tax = totals.Tax
	o.Total = totals.Total

	o.Items = o.Items[:0]
	for _, line := range items {
		o.Items = append(o.Items, models.OrderItem{
			ID:          cuid.New(),
			OrderID:     o.ID,
			ProductID:   line.ProductID,
			ProductName: line.ProductName,
			UnitPrice:   line.UnitPrice,
			Quantity:    line.Quantity,
			AddOns:      line.AddOns,
			Subtotal:    line.LineSubtotal(),
		})
	}
}

// CreateOrder validates the request, merges the cart, computes totals and
// the display number server-side and persists the new order.
func (oc *OrderController) CreateOrder(w http.ResponseWriter, r *http.Request) {
	restaurantID := mux.Vars(r)["id"]

	var req orderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if msg := req.validate(); msg != "" {
		respondError(w, http.StatusBadRequest, msg)
		return
	}
	if req.PaymentMethod == "" {
		req.PaymentMethod = models.PaymentCash
	}

	cart := req.cart()
	totals := cart.Totals(req.ContainerCharges)

	order := &models.Order{
		ID:           cuid.New(),
		RestaurantID: restaurantID,
		CreatedBy:    req.CreatedBy,
		Number:       pos.OrderNumber(),
		Status:       models.StatusPending,
		CreatedAt:    oc.now().UTC(),
	}
	req.apply(order, totals, cart.Items)

	if err := oc.Orders.Create(r.Context(), order); err != nil {
		log.Printf("Error creating order %s: %v", order.Number, err)
		respondError(w, http.StatusInternalServerError, "Failed to create order")
		return
	}

	if err := oc.Events.Publish(events.EventOrderCreated, order); err != nil {
		log.Printf("Error publishing order_created for %s: %v", order.ID, err)
	}
	respondJSON(w, http.StatusCreated, oc.view(order))
}

func (oc *OrderController) GetOrder(w http.ResponseWriter, r *http.Request) {
	order, ok := oc.loadOrder(w, r)
	if !ok {
		return
	}
	respondJSON(w, http.StatusOK, oc.view(order))
}

// UpdateStatus moves an order through its lifecycle. Terminal orders reject
// any further transition; the first finalizing transition stamps the
// preparation time exactly once.
func (oc *OrderController) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	order, ok := oc.loadOrder(w, r)
	if !ok {
		return
	}

	var req struct {
		Status models.OrderStatus `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	update, err := pos.ApplyStatus(order, req.Status, oc.now())
	if err != nil {
		if errors.Is(err, pos.ErrOrderFinalized) {
			respondError(w, http.StatusConflict, "Order is finalized and cannot change status")
			return
		}
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := oc.Orders.UpdateStatus(r.Context(), order.ID, update); err != nil {
		log.Printf("Error updating status for order %s: %v", order.ID, err)
		respondError(w, http.StatusInternalServerError, "Failed to update status")
		return
	}

	order.Status = update.Status
	if update.PrepSeconds != nil {
		order.PrepSeconds = update.PrepSeconds
		order.FinalizedAt = update.FinalizedAt
	}

	if err := oc.Events.Publish(events.EventOrderStatusChanged, order); err != nil {
		log.Printf("Error publishing order_status_changed for %s: %v", order.ID, err)
	}
	respondJSON(w, http.StatusOK, oc.view(order))
}

// UpdateOrder edits a non-finalized order: header fields, a replacement
// cart and recomputed totals.
func (oc *OrderController) UpdateOrder(w http.ResponseWriter, r *http.Request) {
	order, ok := oc.loadOrder(w, r)
	if !ok {
		return
	}
	if pos.IsFinal(order.Status) {
		respondError(w, http.StatusConflict, "A finalized order cannot be edited")
		return
	}

	var req orderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if msg := req.validate(); msg != "" {
		respondError(w, http.StatusBadRequest, msg)
		return
	}
	if req.PaymentMethod == "" {
		req.PaymentMethod = order.PaymentMethod
	}

	cart := req.cart()
	req.apply(order, cart.Totals(req.ContainerCharges), cart.Items)

	if err := oc.Orders.UpdateDetails(r.Context(), order); err != nil {
		log.Printf("Error updating order %s: %v", order.ID, err)
		respondError(w, http.StatusInternalServerError, "Failed to update order")
		return
	}
	respondJSON(w, http.StatusOK, oc.view(order))
}

// WhatsAppSummary returns the plain-text order summary and a wa.me deep
// link for the customer's phone.
func (oc *OrderController) WhatsAppSummary(w http.ResponseWriter, r *http.Request) {
	order, ok := oc.loadOrder(w, r)
	if !ok {
		return
	}

	message := pos.BuildOrderMessage(order, oc.BusinessName)
	link, err := pos.WhatsAppLink(order.CustomerPhone, message)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Order has no customer phone")
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"message": message, "link": link})
}

func (oc *OrderController) DeleteOrder(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if err := oc.Orders.Delete(r.Context(), id); err != nil {
		log.Printf("Error deleting order %s: %v", id, err)
		respondError(w, http.StatusInternalServerError, "Failed to delete order")
		return
	}
	respondJSON(w, http.StatusNoContent, nil)
}

func (oc *OrderController) loadOrder(w http.ResponseWriter, r *http.Request) (*models.Order, bool) {
	id := mux.Vars(r)["id"]
	order, err := oc.Orders.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			respondError(w, http.StatusNotFound, "Order not found")
			return nil, false
		}
		log.Printf("Error loading order %s: %v", id, err)
		respondError(w, http.StatusInternalServerError, "Failed to load order")
		return nil, false
	}
	return order, true
}
