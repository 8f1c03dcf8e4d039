package pos

import "github.com/Tahashy/Panel-Administrativo/internal/models"

// Summary backs the dashboard stat cards over a loaded order list.
type Summary struct {
	Total     int `json:"total"`
	Pending   int `json:"pending"`
	Preparing int `json:"preparing"`
	Ready     int `json:"ready"`
}

func Summarize(orders []*models.Order) Summary {
	s := Summary{Total: len(orders)}
	for _, o := range orders {
		switch o.Status {
		case models.StatusPending:
			s.Pending++
		case models.StatusPreparing:
			s.Preparing++
		case models.StatusReady:
			s.Ready++
		}
	}
	return s
}

// OccupiedTables counts table orders still in play: anything not yet
// delivered or cancelled holds its table.
func OccupiedTables(orders []*models.Order) int {
	n := 0
	for _, o := range orders {
		if o.Type == models.OrderTypeTable && o.Status != models.StatusDelivered && o.Status != models.StatusCancelled {
			n++
		}
	}
	return n
}
