package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS categories (
        id            TEXT PRIMARY KEY,
        restaurant_id TEXT NOT NULL,
        name          TEXT NOT NULL
    )`,
	`CREATE TABLE IF NOT EXISTS products (
        id            TEXT PRIMARY KEY,
        restaurant_id TEXT NOT NULL,
        category_id   TEXT REFERENCES categories(id),
        name          TEXT NOT NULL,
        description   TEXT NOT NULL DEFAULT '',
        price         DOUBLE PRECISION NOT NULL,
        image_url     TEXT NOT NULL DEFAULT '',
        available     BOOLEAN NOT NULL DEFAULT TRUE,
        add_ons       JSONB NOT NULL DEFAULT '[]'
    )`,
	`CREATE TABLE IF NOT EXISTS orders (
        id               TEXT PRIMARY KEY,
        restaurant_id    TEXT NOT NULL,
        created_by       TEXT NOT NULL DEFAULT '',
        number           TEXT NOT NULL,
        type             TEXT NOT NULL,
        table_number     TEXT NOT NULL DEFAULT '',
        delivery_address TEXT NOT NULL DEFAULT '',
        customer_name    TEXT NOT NULL DEFAULT '',
        customer_phone   TEXT NOT NULL DEFAULT '',
        payment_method   TEXT NOT NULL DEFAULT 'cash',
        status           TEXT NOT NULL,
        subtotal         DOUBLE PRECISION NOT NULL DEFAULT 0,
        container_cost   DOUBLE PRECISION NOT NULL DEFAULT 0,
        tax              DOUBLE PRECISION NOT NULL DEFAULT 0,
        total            DOUBLE PRECISION NOT NULL DEFAULT 0,
        notes            TEXT NOT NULL DEFAULT '',
        created_at       TIMESTAMPTZ NOT NULL DEFAULT now(),
        finalized_at     TIMESTAMPTZ,
        prep_seconds     INTEGER
    )`,
	`CREATE TABLE IF NOT EXISTS order_items (
        id           TEXT PRIMARY KEY,
        order_id     TEXT NOT NULL REFERENCES orders(id) ON DELETE CASCADE,
        product_id   TEXT NOT NULL,
        product_name TEXT NOT NULL,
        unit_price   DOUBLE PRECISION NOT NULL,
        quantity     INTEGER NOT NULL,
        add_ons      JSONB NOT NULL DEFAULT '[]',
        subtotal     DOUBLE PRECISION NOT NULL
    )`,
	`CREATE INDEX IF NOT EXISTS idx_orders_restaurant_created ON orders (restaurant_id, created_at DESC)`,
	`CREATE INDEX IF NOT EXISTS idx_order_items_order ON order_items (order_id)`,
	`CREATE INDEX IF NOT EXISTS idx_products_restaurant ON products (restaurant_id)`,
}

// EnsureSchema creates the store tables and indexes if they do not exist.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	for _, stmt := range schemaStatements {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}
