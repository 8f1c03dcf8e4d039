package pos

import (
	"strings"

	"github.com/Tahashy/Panel-Administrativo/internal/models"
)

// StatusFilterAll selects every status when filtering a loaded order list.
const StatusFilterAll = "all"

// MatchOrder reports whether an order satisfies a free-text search term and a
// status filter. The term matches case-insensitively against the order
// number, the customer name or the table number; the status must equal the
// filter unless the filter is "all".
func MatchOrder(o *models.Order, search, status string) bool {
	if status != "" && status != StatusFilterAll && string(o.Status) != status {
		return false
	}
	if search == "" {
		return true
	}
	term := strings.ToLower(search)
	return strings.Contains(strings.ToLower(o.Number), term) ||
		strings.Contains(strings.ToLower(o.CustomerName), term) ||
		strings.Contains(strings.ToLower(o.TableNumber), term)
}

// FilterOrders applies MatchOrder over a loaded set, preserving order.
func FilterOrders(orders []*models.Order, search, status string) []*models.Order {
	filtered := make([]*models.Order, 0, len(orders))
	for _, o := range orders {
		if MatchOrder(o, search, status) {
			filtered = append(filtered, o)
		}
	}
	return filtered
}
