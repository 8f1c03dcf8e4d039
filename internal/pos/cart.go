package pos

import "github.com/Tahashy/Panel-Administrativo/internal/models"

// Cart is the transient sequence of line items assembled before an order is
// created.
type Cart struct {
	Items []models.CartItem
}

// Add puts a line in the cart. A line with the same product and an identical
// add-on selection merges into the existing one with its quantity bumped.
func (c *Cart) Add(item models.CartItem) {
	if item.Quantity <= 0 {
		item.Quantity = 1
	}
	for i := range c.Items {
		if c.Items[i].ProductID == item.ProductID && sameAddOns(c.Items[i].AddOns, item.AddOns) {
			c.Items[i].Quantity += item.Quantity
			return
		}
	}
	c.Items = append(c.Items, item)
}

// SetQuantity updates the quantity of the line at index; zero or less
// removes the line.
func (c *Cart) SetQuantity(index, quantity int) {
	if index < 0 || index >= len(c.Items) {
		return
	}
	if quantity <= 0 {
		c.Items = append(c.Items[:index], c.Items[index+1:]...)
		return
	}
	c.Items[index].Quantity = quantity
}

func (c *Cart) Remove(index int) {
	c.SetQuantity(index, 0)
}

// Totals derives the cart's monetary summary together with the given
// container charges.
func (c *Cart) Totals(charges []models.ContainerCharge) Totals {
	return CalculateTotals(c.Items, charges)
}

// sameAddOns compares selections in order, matching how the reference store
// keys a line by its exact add-on sequence.
func sameAddOns(a, b []models.AddOn) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].Name != b[i].Name || a[i].Price != b[i].Price {
			return false
		}
	}
	return true
}
