package pos

import (
	"testing"

	"github.com/Tahashy/Panel-Administrativo/internal/models"
	"github.com/stretchr/testify/assert"
)

func filterFixtures() []*models.Order {
	return []*models.Order{
		{ID: "a", Number: "ORD-12345601", CustomerName: "María López", TableNumber: "5", Status: models.StatusPending},
		{ID: "b", Number: "ORD-99887702", CustomerName: "Carlos Díaz", Status: models.StatusPreparing},
		{ID: "c", Number: "ORD-55443303", CustomerName: "Ana Torres", TableNumber: "12", Status: models.StatusReady},
	}
}

func TestMatchOrderSearchIsCaseInsensitive(t *testing.T) {
	orders := filterFixtures()

	assert.True(t, MatchOrder(orders[0], "maría", ""))
	assert.True(t, MatchOrder(orders[1], "CARLOS", ""))
	assert.True(t, MatchOrder(orders[0], "ord-123", StatusFilterAll))
	assert.True(t, MatchOrder(orders[2], "12", ""))
	assert.False(t, MatchOrder(orders[1], "torres", ""))
}

func TestMatchOrderStatusFilter(t *testing.T) {
	orders := filterFixtures()

	assert.True(t, MatchOrder(orders[0], "", "pending"))
	assert.False(t, MatchOrder(orders[0], "", "ready"))
	assert.True(t, MatchOrder(orders[0], "", StatusFilterAll))
	assert.True(t, MatchOrder(orders[0], "", ""))
}

func TestFilterOrdersCombinesTermAndStatus(t *testing.T) {
	orders := filterFixtures()

	got := FilterOrders(orders, "ord-", "preparing")
	assert.Len(t, got, 1)
	assert.Equal(t, "b", got[0].ID)

	got = FilterOrders(orders, "", StatusFilterAll)
	assert.Len(t, got, 3)

	got = FilterOrders(orders, "nomatch", "")
	assert.Empty(t, got)
}
