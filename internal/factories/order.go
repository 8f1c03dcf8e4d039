package factories

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/Tahashy/Panel-Administrativo/internal/models"
	"github.com/Tahashy/Panel-Administrativo/internal/pos"
	"github.com/lucsky/cuid"
)

type OrderFactory struct {
	Products []*models.Product
}

var orderTypes = []models.OrderType{
	models.OrderTypeTable,
	models.OrderTypeTakeaway,
	models.OrderTypeDelivery,
}

var paymentMethods = []string{
	models.PaymentCash,
	models.PaymentCard,
	models.PaymentYape,
	models.PaymentPlin,
}

var historicalStatuses = []models.OrderStatus{
	models.StatusPending,
	models.StatusPreparing,
	models.StatusReady,
	models.StatusDelivered,
	models.StatusDelivered,
	models.StatusCancelled,
}

// CreateOrder builds a plausible historical order: random type, payment and
// status, a merged cart drawn from the catalog, totals derived the same way
// the service derives them. Finalized orders get consistent timing fields.
func (of *OrderFactory) CreateOrder(restaurantID, userID string, createdAt time.Time) *models.Order {
	cart := &pos.Cart{}
	for i := 0; i < rand.Intn(3)+1; i++ {
		p := of.Products[rand.Intn(len(of.Products))]
		cart.Add(models.CartItem{
			ProductID:   p.ID,
			ProductName: p.Name,
			UnitPrice:   p.Price,
			Quantity:    rand.Intn(2) + 1,
			AddOns:      pickAddOns(p),
		})
	}

	var charges []models.ContainerCharge
	if rand.Intn(4) == 0 {
		charges = append(charges, models.ContainerCharge{Description: "Large container", Price: 1.00})
	}
	totals := cart.Totals(charges)

	order := &models.Order{
		ID:            cuid.New(),
		RestaurantID:  restaurantID,
		CreatedBy:     userID,
		Number:        pos.OrderNumber(),
		Type:          orderTypes[rand.Intn(len(orderTypes))],
		PaymentMethod: paymentMethods[rand.Intn(len(paymentMethods))],
		Status:        historicalStatuses[rand.Intn(len(historicalStatuses))],
		Subtotal:      totals.Subtotal,
		ContainerCost: totals.ContainerCost,
		Tax:           totals.Tax,
		Total:         totals.Total,
		CreatedAt:     createdAt.UTC(),
	}

	switch order.Type {
	case models.OrderTypeTable:
		order.TableNumber = fmt.Sprintf("%d", rand.Intn(20)+1)
	case models.OrderTypeDelivery:
		order.DeliveryAddress = fake.Address().StreetAddress()
	}
	if rand.Intn(2) == 0 {
		order.CustomerName = fake.Person().FirstName()
		order.CustomerPhone = fake.Phone().Number()
	}

	if pos.IsFinalizing(order.Status) {
		secs := rand.Intn(45*60) + 5*60
		at := order.CreatedAt.Add(time.Duration(secs) * time.Second)
		order.PrepSeconds = &secs
		order.FinalizedAt = &at
	}

	for _, line := range cart.Items {
		order.Items = append(order.Items, models.OrderItem{
			ID:          cuid.New(),
			OrderID:     order.ID,
			ProductID:   line.ProductID,
			ProductName: line.ProductName,
			UnitPrice:   line.UnitPrice,
			Quantity:    line.Quantity,
			AddOns:      line.AddOns,
			Subtotal:    line.LineSubtotal(),
		})
	}
	return order
}

func pickAddOns(p *models.Product) []models.AddOn {
	if len(p.AddOns) == 0 || rand.Intn(2) == 0 {
		return nil
	}
	return p.AddOns[:rand.Intn(len(p.AddOns))+1]
}
