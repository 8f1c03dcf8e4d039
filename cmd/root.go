package cmd

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "panel-admin",
	Short: "Backend for the restaurant order management dashboard",
	Long:  `panel-admin serves the order, product and stats API behind the restaurant dashboard, with tooling to seed demo data and export order history.`,
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.json)")

	rootCmd.PersistentFlags().String("database-url", "", "Postgres connection string")
	rootCmd.PersistentFlags().String("restaurant", "", "Restaurant id the command operates on")
	viper.BindPFlag("database_url", rootCmd.PersistentFlags().Lookup("database-url"))
	viper.BindPFlag("restaurant_id", rootCmd.PersistentFlags().Lookup("restaurant"))
}

func initConfig() {
	// Local development keeps secrets in a .env file; missing is fine.
	_ = godotenv.Load()
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
