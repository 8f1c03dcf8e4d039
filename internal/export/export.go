package export

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/Tahashy/Panel-Administrativo/internal/models"
	"github.com/Tahashy/Panel-Administrativo/internal/repositories"
)

// Run fetches the order history for a restaurant and writes it in the
// configured format to the configured destination.
func Run(ctx context.Context, cfg *models.Config, orders repositories.OrderRepository, restaurantID string, since time.Time) error {
	history, err := orders.ListSince(ctx, restaurantID, since)
	if err != nil {
		return fmt.Errorf("load order history: %w", err)
	}
	rows := Rows(history)
	log.Printf("Exporting %d orders since %s", len(rows), since.Format("2006-01-02"))

	switch cfg.OutputDestination {
	case "local", "":
		return writeLocal(cfg, rows)
	case "s3":
		return writeS3(cfg, rows)
	default:
		return fmt.Errorf("unsupported output destination: %s", cfg.OutputDestination)
	}
}

func writeLocal(cfg *models.Config, rows []Row) error {
	switch cfg.OutputFormat {
	case "parquet":
		return WriteParquetFile(cfg.OutputPath, rows)
	case "csv", "":
		f, err := os.Create(cfg.OutputPath)
		if err != nil {
			return err
		}
		if err := WriteCSV(f, rows); err != nil {
			f.Close()
			return err
		}
		return f.Close()
	default:
		return fmt.Errorf("unsupported output format: %s", cfg.OutputFormat)
	}
}

func writeS3(cfg *models.Config, rows []Row) error {
	factory, err := NewS3UploaderFactory(cfg.CloudStorage.Region)
	if err != nil {
		return fmt.Errorf("failed to create S3 uploader factory: %w", err)
	}
	uploader := factory.NewUploader(cfg.CloudStorage.BucketName, cfg.OutputPath)

	switch cfg.OutputFormat {
	case "parquet":
		return WriteParquet(NewCloudParquetFile(uploader), rows)
	case "csv", "":
		if err := WriteCSV(uploader, rows); err != nil {
			return err
		}
		return uploader.Close()
	default:
		return fmt.Errorf("unsupported output format: %s", cfg.OutputFormat)
	}
}
