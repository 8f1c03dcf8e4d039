package models

import "time"

type OrderStatus string

const (
	StatusPending   OrderStatus = "pending"
	StatusPreparing OrderStatus = "preparing"
	StatusReady     OrderStatus = "ready"
	StatusDelivered OrderStatus = "delivered"
	StatusCancelled OrderStatus = "cancelled"
	StatusVoided    OrderStatus = "voided"
)

type OrderType string

const (
	OrderTypeTable    OrderType = "table"
	OrderTypeTakeaway OrderType = "takeaway"
	OrderTypeDelivery OrderType = "delivery"
)

const (
	PaymentCash = "cash"
	PaymentCard = "card"
	PaymentYape = "yape"
	PaymentPlin = "plin"
)

// AddOn is an optional extra charge attached to a specific line item.
type AddOn struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

type OrderItem struct {
	ID          string  `json:"id"`
	OrderID     string  `json:"order_id"`
	ProductID   string  `json:"product_id"`
	ProductName string  `json:"product_name"`
	UnitPrice   float64 `json:"unit_price"`
	Quantity    int     `json:"quantity"`
	AddOns      []AddOn `json:"add_ons"`
	// Subtotal is persisted once at creation; cart logic always re-derives it.
	Subtotal float64 `json:"subtotal"`
}

type Order struct {
	ID              string      `json:"id"`
	RestaurantID    string      `json:"restaurant_id"`
	CreatedBy       string      `json:"created_by"`
	Number          string      `json:"number"`
	Type            OrderType   `json:"type"`
	TableNumber     string      `json:"table_number,omitempty"`
	DeliveryAddress string      `json:"delivery_address,omitempty"`
	CustomerName    string      `json:"customer_name,omitempty"`
	CustomerPhone   string      `json:"customer_phone,omitempty"`
	PaymentMethod   string      `json:"payment_method"`
	Status          OrderStatus `json:"status"`
	Subtotal        float64     `json:"subtotal"`
	ContainerCost   float64     `json:"container_cost"`
	Tax             float64     `json:"tax"`
	Total           float64     `json:"total"`
	Notes           string      `json:"notes,omitempty"`
	CreatedAt       time.Time   `json:"created_at"`
	FinalizedAt     *time.Time  `json:"finalized_at,omitempty"`
	PrepSeconds     *int        `json:"prep_seconds,omitempty"`
	Items           []OrderItem `json:"items,omitempty"`
}

// StatusUpdate is the partial update written when an order changes status.
// PrepSeconds and FinalizedAt are only set on the first finalizing transition.
type StatusUpdate struct {
	Status      OrderStatus `json:"status"`
	PrepSeconds *int        `json:"prep_seconds,omitempty"`
	FinalizedAt *time.Time  `json:"finalized_at,omitempty"`
}

// ContainerCharge is a free-text extra-container ("taper") charge added at
// checkout, independent of the product catalog.
type ContainerCharge struct {
	Description string  `json:"description"`
	Price       float64 `json:"price"`
}
