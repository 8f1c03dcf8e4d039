package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/Tahashy/Panel-Administrativo/internal/models"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ProductRepository struct {
	pool *pgxpool.Pool
}

func NewProductRepository(pool *pgxpool.Pool) *ProductRepository {
	return &ProductRepository{pool: pool}
}

func (r *ProductRepository) ListAvailable(ctx context.Context, restaurantID string) ([]*models.Product, error) {
	query := `
        SELECT p.id, p.restaurant_id, p.category_id, COALESCE(c.name, ''),
               p.name, p.description, p.price, p.image_url, p.available, p.add_ons
        FROM products p
        LEFT JOIN categories c ON c.id = p.category_id
        WHERE p.restaurant_id = $1 AND p.available
        ORDER BY p.name`

	rows, err := r.pool.Query(ctx, query, restaurantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var products []*models.Product
	for rows.Next() {
		p := &models.Product{}
		var addOns []byte
		err := rows.Scan(
			&p.ID,
			&p.RestaurantID,
			&p.CategoryID,
			&p.CategoryName,
			&p.Name,
			&p.Description,
			&p.Price,
			&p.ImageURL,
			&p.Available,
			&addOns,
		)
		if err != nil {
			return nil, err
		}
		if len(addOns) > 0 {
			if err := json.Unmarshal(addOns, &p.AddOns); err != nil {
				return nil, fmt.Errorf("decode add-ons for product %s: %w", p.ID, err)
			}
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

func (r *ProductRepository) Create(ctx context.Context, product *models.Product) error {
	addOns, err := json.Marshal(product.AddOns)
	if err != nil {
		return err
	}
	_, err = r.pool.Exec(ctx, `
        INSERT INTO products (
            id, restaurant_id, category_id, name, description, price,
            image_url, available, add_ons
        ) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		product.ID,
		product.RestaurantID,
		product.CategoryID,
		product.Name,
		product.Description,
		product.Price,
		product.ImageURL,
		product.Available,
		addOns,
	)
	return err
}

func (r *ProductRepository) BulkCreate(ctx context.Context, products []*models.Product) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	for _, product := range products {
		addOns, err := json.Marshal(product.AddOns)
		if err != nil {
			return err
		}
		_, err = tx.Exec(ctx, `
            INSERT INTO products (
                id, restaurant_id, category_id, name, description, price,
                image_url, available, add_ons
            ) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
			product.ID,
			product.RestaurantID,
			product.CategoryID,
			product.Name,
			product.Description,
			product.Price,
			product.ImageURL,
			product.Available,
			addOns,
		)
		if err != nil {
			return err
		}
	}
	return tx.Commit(ctx)
}

func (r *ProductRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx, "SELECT COUNT(*) FROM products").Scan(&count)
	return count, err
}

func (r *ProductRepository) CreateCategory(ctx context.Context, category *models.Category) error {
	_, err := r.pool.Exec(ctx, `
        INSERT INTO categories (id, restaurant_id, name) VALUES ($1, $2, $3)`,
		category.ID, category.RestaurantID, category.Name,
	)
	return err
}

func (r *ProductRepository) ListCategories(ctx context.Context, restaurantID string) ([]*models.Category, error) {
	rows, err := r.pool.Query(ctx, `
        SELECT id, restaurant_id, name FROM categories WHERE restaurant_id = $1 ORDER BY name`,
		restaurantID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var categories []*models.Category
	for rows.Next() {
		c := &models.Category{}
		if err := rows.Scan(&c.ID, &c.RestaurantID, &c.Name); err != nil {
			return nil, err
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}
