package cmd

import (
	"context"
	"fmt"
	"log"
	"os/signal"
	"syscall"

	"github.com/Tahashy/Panel-Administrativo/internal/api"
	"github.com/Tahashy/Panel-Administrativo/internal/events"
	"github.com/Tahashy/Panel-Administrativo/internal/models"
	"github.com/Tahashy/Panel-Administrativo/internal/repositories/postgres"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the dashboard API server",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := models.LoadConfig(cfgFile)
		if err != nil {
			return fmt.Errorf("error loading config: %w", err)
		}

		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		pool, err := connect(ctx, cfg)
		if err != nil {
			return err
		}
		defer pool.Close()

		publisher, err := newPublisher(cfg)
		if err != nil {
			return err
		}
		defer publisher.Close()

		loc, err := cfg.Location()
		if err != nil {
			return fmt.Errorf("invalid timezone %q: %w", cfg.Timezone, err)
		}

		orderController := api.NewOrderController(
			postgres.NewOrderRepository(pool),
			publisher,
			cfg.BusinessName,
			cfg.OrderFetchLimit,
			loc,
		)
		productController := api.NewProductController(postgres.NewProductRepository(pool))

		return api.NewServer(cfg, orderController, productController).Run(ctx)
	},
}

func init() {
	serveCmd.Flags().String("listen", ":8080", "Listen address")
	serveCmd.Flags().Bool("kafka-enabled", false, "Publish order events to Kafka")
	serveCmd.Flags().String("kafka-broker-list", "localhost:9092", "Kafka broker list")
	viper.BindPFlag("listen_addr", serveCmd.Flags().Lookup("listen"))
	viper.BindPFlag("kafka_enabled", serveCmd.Flags().Lookup("kafka-enabled"))
	viper.BindPFlag("kafka_broker_list", serveCmd.Flags().Lookup("kafka-broker-list"))

	rootCmd.AddCommand(serveCmd)
}

func connect(ctx context.Context, cfg *models.Config) (*pgxpool.Pool, error) {
	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("database_url is not configured")
	}
	pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := postgres.EnsureSchema(ctx, pool); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ensure schema: %w", err)
	}
	return pool, nil
}

func newPublisher(cfg *models.Config) (events.Publisher, error) {
	if !cfg.KafkaEnabled {
		return events.NoopPublisher{}, nil
	}
	publisher, err := events.NewKafkaPublisher(cfg.KafkaBrokerList, cfg.KafkaTopic)
	if err != nil {
		return nil, fmt.Errorf("failed to create Kafka publisher: %w", err)
	}
	log.Printf("Order events publishing to topic %s", cfg.KafkaTopic)
	return publisher, nil
}
