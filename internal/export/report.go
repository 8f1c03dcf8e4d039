// Package export dumps order history as CSV or Parquet, to a local file or
// an S3 object, for offline reporting.
package export

import (
	"fmt"
	"time"

	"github.com/Tahashy/Panel-Administrativo/internal/models"
)

// Row is one order flattened for a report file.
type Row struct {
	ID            string  `parquet:"name=id, type=BYTE_ARRAY, convertedtype=UTF8" json:"id"`
	Number        string  `parquet:"name=number, type=BYTE_ARRAY, convertedtype=UTF8" json:"number"`
	Type          string  `parquet:"name=type, type=BYTE_ARRAY, convertedtype=UTF8" json:"type"`
	Status        string  `parquet:"name=status, type=BYTE_ARRAY, convertedtype=UTF8" json:"status"`
	CustomerName  string  `parquet:"name=customer_name, type=BYTE_ARRAY, convertedtype=UTF8" json:"customer_name"`
	PaymentMethod string  `parquet:"name=payment_method, type=BYTE_ARRAY, convertedtype=UTF8" json:"payment_method"`
	Subtotal      float64 `parquet:"name=subtotal, type=DOUBLE" json:"subtotal"`
	ContainerCost float64 `parquet:"name=container_cost, type=DOUBLE" json:"container_cost"`
	Tax           float64 `parquet:"name=tax, type=DOUBLE" json:"tax"`
	Total         float64 `parquet:"name=total, type=DOUBLE" json:"total"`
	PrepSeconds   int32   `parquet:"name=prep_seconds, type=INT32" json:"prep_seconds"`
	CreatedAt     string  `parquet:"name=created_at, type=BYTE_ARRAY, convertedtype=UTF8" json:"created_at"`
	FinalizedAt   string  `parquet:"name=finalized_at, type=BYTE_ARRAY, convertedtype=UTF8" json:"finalized_at"`
}

func NewRow(o *models.Order) Row {
	row := Row{
		ID:            o.ID,
		Number:        o.Number,
		Type:          string(o.Type),
		Status:        string(o.Status),
		CustomerName:  o.CustomerName,
		PaymentMethod: o.PaymentMethod,
		Subtotal:      o.Subtotal,
		ContainerCost: o.ContainerCost,
		Tax:           o.Tax,
		Total:         o.Total,
		CreatedAt:     o.CreatedAt.UTC().Format(time.RFC3339),
	}
	if o.PrepSeconds != nil {
		row.PrepSeconds = int32(*o.PrepSeconds)
	}
	if o.FinalizedAt != nil {
		row.FinalizedAt = o.FinalizedAt.UTC().Format(time.RFC3339)
	}
	return row
}

func Rows(orders []*models.Order) []Row {
	rows := make([]Row, 0, len(orders))
	for _, o := range orders {
		rows = append(rows, NewRow(o))
	}
	return rows
}

func (r Row) record() []string {
	return []string{
		r.ID,
		r.Number,
		r.Type,
		r.Status,
		r.CustomerName,
		r.PaymentMethod,
		fmt.Sprintf("%.2f", r.Subtotal),
		fmt.Sprintf("%.2f", r.ContainerCost),
		fmt.Sprintf("%.2f", r.Tax),
		fmt.Sprintf("%.2f", r.Total),
		fmt.Sprintf("%d", r.PrepSeconds),
		r.CreatedAt,
		r.FinalizedAt,
	}
}

var csvHeader = []string{
	"id", "number", "type", "status", "customer_name", "payment_method",
	"subtotal", "container_cost", "tax", "total", "prep_seconds",
	"created_at", "finalized_at",
}
