// Package pos holds the order-domain logic of the dashboard backend: totals
// calculation, the order lifecycle, cart assembly, list filtering and the
// outbound order summary. Everything here is pure and safe to re-derive on
// every request.
package pos

import "github.com/Tahashy/Panel-Administrativo/internal/models"

// TaxRate is the fixed tax applied on subtotal plus container charges.
const TaxRate = 0.10

type Totals struct {
	Subtotal      float64 `json:"subtotal"`
	ContainerCost float64 `json:"container_cost"`
	Tax           float64 `json:"tax"`
	Total         float64 `json:"total"`
}

// CalculateTotals converts a cart plus ad-hoc container charges into the
// order's monetary fields. An empty cart yields an all-zero result.
func CalculateTotals(items []models.CartItem, charges []models.ContainerCharge) Totals {
	t := Totals{}
	for _, item := range items {
		t.Subtotal += item.LineSubtotal()
	}
	for _, c := range charges {
		t.ContainerCost += c.Price
	}
	t.Tax = (t.Subtotal + t.ContainerCost) * TaxRate
	t.Total = t.Subtotal + t.ContainerCost + t.Tax
	return t
}
