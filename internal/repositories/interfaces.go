package repositories

import (
	"context"
	"time"

	"github.com/Tahashy/Panel-Administrativo/internal/models"
)

type OrderRepository interface {
	// ListByRestaurant returns the most recent orders in the given statuses,
	// newest first, capped at limit, with line items attached.
	ListByRestaurant(ctx context.Context, restaurantID string, statuses []models.OrderStatus, limit int) ([]*models.Order, error)
	// ListSince returns the full order history from a point in time, for
	// reporting. Items are not attached.
	ListSince(ctx context.Context, restaurantID string, since time.Time) ([]*models.Order, error)
	GetByID(ctx context.Context, id string) (*models.Order, error)
	Create(ctx context.Context, order *models.Order) error
	UpdateStatus(ctx context.Context, id string, update models.StatusUpdate) error
	UpdateDetails(ctx context.Context, order *models.Order) error
	Delete(ctx context.Context, id string) error
	// CountToday returns today's order count and sales total.
	CountToday(ctx context.Context, restaurantID string, day time.Time) (int, float64, error)
}

type ProductRepository interface {
	// ListAvailable returns the catalog a new order can draw from, with
	// category names attached, sorted by name.
	ListAvailable(ctx context.Context, restaurantID string) ([]*models.Product, error)
	Create(ctx context.Context, product *models.Product) error
	BulkCreate(ctx context.Context, products []*models.Product) error
	Count(ctx context.Context) (int, error)
	CreateCategory(ctx context.Context, category *models.Category) error
	ListCategories(ctx context.Context, restaurantID string) ([]*models.Category, error)
}
