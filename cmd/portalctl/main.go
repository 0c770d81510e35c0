// Command portalctl runs one-off operator tasks against the portal database
// and upload tree.
package main

import (
	"fmt"
	"os"

	"accommodation-portal-backend/internal/api/routes"
	"accommodation-portal-backend/internal/config"
	"accommodation-portal-backend/internal/database"
	"accommodation-portal-backend/internal/logger"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "portalctl",
	Short: "Operator tasks for the accommodation portal",
	Long: `portalctl runs maintenance tasks with the same configuration as the server.

Examples:

  portalctl provision-owner
  portalctl seed-catalog --file config/catalog.yaml
  portalctl sweep-orphans
  portalctl health
`,
	SilenceUsage: true,
}

func init() {
	rootCmd.AddCommand(provisionOwnerCmd)
	rootCmd.AddCommand(seedCatalogCmd)
	rootCmd.AddCommand(sweepOrphansCmd)
	rootCmd.AddCommand(healthCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		color.New(color.FgRed, color.Bold).Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

// bootstrap loads configuration and wires services the way the server does
func bootstrap() (*config.Config, *routes.Dependencies, error) {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("load configuration: %w", err)
	}
	logger.Setup(cfg.LogLevel)

	db, err := database.Initialize(cfg.DatabaseURL, nil)
	if err != nil {
		return nil, nil, fmt.Errorf("connect database: %w", err)
	}

	deps, err := routes.NewDependencies(db, cfg)
	if err != nil {
		return nil, nil, err
	}
	return cfg, deps, nil
}
