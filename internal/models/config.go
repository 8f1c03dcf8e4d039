package models

import (
	"fmt"
	"time"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
)

type CloudStorage struct {
	Provider   string `mapstructure:"provider"`
	BucketName string `mapstructure:"bucket_name"`
	Region     string `mapstructure:"region"`
}

type Config struct {
	ListenAddr      string        `mapstructure:"listen_addr"`
	DatabaseURL     string        `mapstructure:"database_url"`
	BusinessName    string        `mapstructure:"business_name"`
	RestaurantID    string        `mapstructure:"restaurant_id"`
	Timezone        string        `mapstructure:"timezone"`
	OrderFetchLimit int           `mapstructure:"order_fetch_limit"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`

	KafkaEnabled    bool   `mapstructure:"kafka_enabled"`
	KafkaBrokerList string `mapstructure:"kafka_broker_list"`
	KafkaTopic      string `mapstructure:"kafka_topic"`

	OutputFormat      string       `mapstructure:"output_format"`      // csv or parquet
	OutputPath        string       `mapstructure:"output_path"`        // local file or S3 object key
	OutputDestination string       `mapstructure:"output_destination"` // local or s3
	CloudStorage      CloudStorage `mapstructure:"cloud_storage"`

	SeedProducts int `mapstructure:"seed_products"`
	SeedOrders   int `mapstructure:"seed_orders"`
}

// LoadConfig initializes and reads the configuration using Viper
func LoadConfig(cfgFile string) (*Config, error) {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		// Default config location
		viper.AddConfigPath(".")
		viper.AddConfigPath("examples")
		viper.SetConfigName("config")
		viper.SetConfigType("json")
	}

	viper.AutomaticEnv() // Read in environment variables that match

	viper.SetDefault("listen_addr", ":8080")
	viper.SetDefault("business_name", "TAKEMI FAST&FOOD")
	viper.SetDefault("timezone", "America/Lima")
	viper.SetDefault("order_fetch_limit", 100)
	viper.SetDefault("shutdown_timeout", "10s")
	viper.SetDefault("kafka_broker_list", "localhost:9092")
	viper.SetDefault("kafka_topic", "pos_order_events")
	viper.SetDefault("output_format", "csv")
	viper.SetDefault("output_destination", "local")
	viper.SetDefault("seed_products", 24)
	viper.SetDefault("seed_orders", 60)

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	decoderConfigOption := viper.DecoderConfigOption(func(config *mapstructure.DecoderConfig) {
		config.DecodeHook = mapstructure.ComposeDecodeHookFunc(
			config.DecodeHook,
			mapstructure.StringToTimeDurationHookFunc(),
		)
	})
	if err := viper.Unmarshal(&config, decoderConfigOption); err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %w", err)
	}

	return &config, nil
}

// Location resolves the configured restaurant timezone. The dashboard's
// "today" figures roll over at local midnight, not UTC midnight.
func (c *Config) Location() (*time.Location, error) {
	return time.LoadLocation(c.Timezone)
}
