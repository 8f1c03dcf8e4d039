package models

// CartItem is a line being assembled before order creation. It is transient:
// never persisted as-is, its subtotal is always derived from price, quantity
// and add-ons.
type CartItem struct {
	ProductID   string  `json:"product_id"`
	ProductName string  `json:"product_name"`
	UnitPrice   float64 `json:"unit_price"`
	Quantity    int     `json:"quantity"`
	AddOns      []AddOn `json:"add_ons,omitempty"`
}

// LineSubtotal is (unit price + sum of add-on prices) x quantity.
func (ci CartItem) LineSubtotal() float64 {
	extras := 0.0
	for _, a := range ci.AddOns {
		extras += a.Price
	}
	return (ci.UnitPrice + extras) * float64(ci.Quantity)
}
