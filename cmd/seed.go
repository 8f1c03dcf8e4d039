package cmd

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/Tahashy/Panel-Administrativo/internal/factories"
	"github.com/Tahashy/Panel-Administrativo/internal/models"
	"github.com/Tahashy/Panel-Administrativo/internal/repositories/postgres"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Populate the store with demo categories, products and orders",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := models.LoadConfig(cfgFile)
		if err != nil {
			return fmt.Errorf("error loading config: %w", err)
		}
		if cfg.RestaurantID == "" {
			return fmt.Errorf("restaurant_id is not configured")
		}

		ctx := context.Background()
		pool, err := connect(ctx, cfg)
		if err != nil {
			return err
		}
		defer pool.Close()

		products := postgres.NewProductRepository(pool)
		orders := postgres.NewOrderRepository(pool)

		existing, err := products.Count(ctx)
		if err != nil {
			return fmt.Errorf("failed to count products: %w", err)
		}
		if existing > 0 {
			log.Printf("Catalog already holds %d products, nothing to seed", existing)
			return nil
		}

		productFactory := &factories.ProductFactory{}
		categories := productFactory.Categories(cfg.RestaurantID)
		for _, category := range categories {
			if err := products.CreateCategory(ctx, category); err != nil {
				return fmt.Errorf("failed to create category %s: %w", category.Name, err)
			}
		}

		catalog := make([]*models.Product, 0, cfg.SeedProducts)
		for i := 0; i < cfg.SeedProducts; i++ {
			category := categories[i%len(categories)]
			catalog = append(catalog, productFactory.CreateProduct(cfg.RestaurantID, category))
		}
		if err := products.BulkCreate(ctx, catalog); err != nil {
			return fmt.Errorf("failed to create products: %w", err)
		}
		log.Printf("Seeded %d categories and %d products", len(categories), len(catalog))

		orderFactory := &factories.OrderFactory{Products: catalog}
		bar := progressbar.Default(int64(cfg.SeedOrders), "seeding orders")
		now := time.Now()
		for i := 0; i < cfg.SeedOrders; i++ {
			createdAt := now.Add(-time.Duration(rand.Intn(7*24*60)) * time.Minute)
			order := orderFactory.CreateOrder(cfg.RestaurantID, "seed", createdAt)
			if err := orders.Create(ctx, order); err != nil {
				return fmt.Errorf("failed to create order %s: %w", order.Number, err)
			}
			bar.Add(1)
		}

		log.Printf("Seeded %d orders for restaurant %s", cfg.SeedOrders, cfg.RestaurantID)
		return nil
	},
}

func init() {
	seedCmd.Flags().Int("products", 24, "Number of products to create")
	seedCmd.Flags().Int("orders", 60, "Number of orders to create")
	viper.BindPFlag("seed_products", seedCmd.Flags().Lookup("products"))
	viper.BindPFlag("seed_orders", seedCmd.Flags().Lookup("orders"))

	rootCmd.AddCommand(seedCmd)
}
