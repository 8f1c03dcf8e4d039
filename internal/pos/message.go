package pos

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/Tahashy/Panel-Administrativo/internal/models"
)

// ErrNoPhone is returned when a summary link is requested for an order
// without a customer phone number.
var ErrNoPhone = errors.New("order has no customer phone")

// BuildOrderMessage renders the customer-facing plain-text summary of an
// order. Line subtotals are derived from price, quantity and add-ons, never
// read back from the stored value.
func BuildOrderMessage(o *models.Order, businessName string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "🍔 *%s*\n\n", businessName)
	b.WriteString("📋 *Detalle del Pedido*\n")
	b.WriteString("━━━━━━━━━━━━━━━━━━━━\n\n")

	switch o.Type {
	case models.OrderTypeTable:
		fmt.Fprintf(&b, "🪑 Mesa: *%s*\n", o.TableNumber)
	case models.OrderTypeDelivery:
		fmt.Fprintf(&b, "🚚 Delivery: %s\n", o.DeliveryAddress)
	}
	if o.CustomerName != "" {
		fmt.Fprintf(&b, "👤 Cliente: %s\n", o.CustomerName)
	}

	b.WriteString("\n*Productos:*\n")
	for _, item := range o.Items {
		fmt.Fprintf(&b, "\n• %dx %s\n", item.Quantity, item.ProductName)
		fmt.Fprintf(&b, "  $%.2f c/u\n", item.UnitPrice)
		for _, a := range item.AddOns {
			fmt.Fprintf(&b, "  + %s ($%.2f)\n", a.Name, a.Price)
		}
		line := models.CartItem{UnitPrice: item.UnitPrice, Quantity: item.Quantity, AddOns: item.AddOns}
		fmt.Fprintf(&b, "  Subtotal: $%.2f\n", line.LineSubtotal())
	}

	b.WriteString("\n━━━━━━━━━━━━━━━━━━━━\n")
	fmt.Fprintf(&b, "Subtotal: $%.2f\n", o.Subtotal)
	if o.ContainerCost > 0 {
		fmt.Fprintf(&b, "Taper adicional: $%.2f\n", o.ContainerCost)
	}
	fmt.Fprintf(&b, "IVA (10%%): $%.2f\n", o.Tax)
	fmt.Fprintf(&b, "\n💰 *TOTAL: $%.2f*\n", o.Total)
	fmt.Fprintf(&b, "\n💳 Método de pago: *%s*\n", strings.ToUpper(o.PaymentMethod))
	if o.Notes != "" {
		fmt.Fprintf(&b, "\n📝 Notas: %s\n", o.Notes)
	}
	b.WriteString("\n¡Gracias por tu pedido! 🎉")

	return b.String()
}

// WhatsAppLink builds the wa.me deep link for a free-form phone number,
// keeping only its digits.
func WhatsAppLink(phone, message string) (string, error) {
	digits := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, phone)
	if digits == "" {
		return "", ErrNoPhone
	}
	return fmt.Sprintf("https://wa.me/%s?text=%s", digits, url.QueryEscape(message)), nil
}
