package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/Tahashy/Panel-Administrativo/internal/export"
	"github.com/Tahashy/Panel-Administrativo/internal/models"
	"github.com/Tahashy/Panel-Administrativo/internal/pos"
	"github.com/Tahashy/Panel-Administrativo/internal/repositories/postgres"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var exportSince string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export order history as CSV or Parquet, locally or to S3",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := models.LoadConfig(cfgFile)
		if err != nil {
			return fmt.Errorf("error loading config: %w", err)
		}
		if cfg.RestaurantID == "" {
			return fmt.Errorf("restaurant_id is not configured")
		}
		if cfg.OutputPath == "" {
			return fmt.Errorf("output_path is not configured")
		}

		since := time.Now().UTC().AddDate(0, -1, 0)
		if exportSince != "" {
			since, err = pos.ParseStoreTime(exportSince)
			if err != nil {
				return fmt.Errorf("invalid --since value: %w", err)
			}
		}

		ctx := context.Background()
		pool, err := connect(ctx, cfg)
		if err != nil {
			return err
		}
		defer pool.Close()

		return export.Run(ctx, cfg, postgres.NewOrderRepository(pool), cfg.RestaurantID, since)
	},
}

func init() {
	exportCmd.Flags().StringVar(&exportSince, "since", "", "Export orders created after this date (default one month back)")
	exportCmd.Flags().String("format", "csv", "Output format: csv or parquet")
	exportCmd.Flags().String("output", "", "Output file path or S3 object key")
	exportCmd.Flags().String("destination", "local", "Output destination: local or s3")
	viper.BindPFlag("output_format", exportCmd.Flags().Lookup("format"))
	viper.BindPFlag("output_path", exportCmd.Flags().Lookup("output"))
	viper.BindPFlag("output_destination", exportCmd.Flags().Lookup("destination"))

	rootCmd.AddCommand(exportCmd)
}
