package main

import (
	"context"
	"fmt"
	"time"

	"accommodation-portal-backend/internal/database"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	green  = color.New(color.FgGreen, color.Bold)
	yellow = color.New(color.FgYellow, color.Bold)
	cyan   = color.New(color.FgCyan)
)

var (
	ownerUsername string
	ownerName     string
	ownerPassword string
	seedFile      string
	healthTimeout time.Duration
)

var provisionOwnerCmd = &cobra.Command{
	Use:   "provision-owner",
	Short: "Create the Owner account if it does not exist",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, deps, err := bootstrap()
		if err != nil {
			return err
		}

		username := firstNonEmpty(ownerUsername, cfg.BootstrapOwnerUsername)
		name := firstNonEmpty(ownerName, cfg.BootstrapOwnerName)
		password := firstNonEmpty(ownerPassword, cfg.BootstrapOwnerPassword)

		created, err := deps.Provisioning.EnsureOwner(cmd.Context(), username, name, password)
		if err != nil {
			return err
		}
		if created {
			green.Printf("created owner account %q\n", username)
		} else {
			yellow.Printf("owner account %q already exists, left unchanged\n", username)
		}
		return nil
	},
}

var seedCatalogCmd = &cobra.Command{
	Use:   "seed-catalog",
	Short: "Insert missing features and amenities from a YAML file",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, deps, err := bootstrap()
		if err != nil {
			return err
		}

		path := firstNonEmpty(seedFile, cfg.CatalogSeedFile)
		result, err := deps.Catalog.SeedFromFile(cmd.Context(), path)
		if err != nil {
			return err
		}
		green.Printf("seeded %d feature(s) and %d amenit(ies) from %s\n", result.Features, result.Amenities, path)
		return nil
	},
}

var sweepOrphansCmd = &cobra.Command{
	Use:   "sweep-orphans",
	Short: "Delete expired unattached uploads",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, deps, err := bootstrap()
		if err != nil {
			return err
		}

		cyan.Printf("removing unattached images older than %s\n", cfg.OrphanGracePeriod())
		deleted, err := deps.Sweeper.Sweep(cmd.Context())
		if err != nil {
			return err
		}
		green.Printf("removed %d image(s)\n", deleted)
		return nil
	},
}

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Check database connectivity",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, deps, err := bootstrap()
		if err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), healthTimeout)
		defer cancel()

		done := make(chan error, 1)
		go func() { done <- database.Ping(deps.DB) }()

		select {
		case err := <-done:
			if err != nil {
				return fmt.Errorf("database ping failed: %w", err)
			}
		case <-ctx.Done():
			return fmt.Errorf("database ping timed out after %s", healthTimeout)
		}
		green.Println("database is healthy")
		return nil
	},
}

func init() {
	provisionOwnerCmd.Flags().StringVar(&ownerUsername, "username", "", "owner login handle (default BOOTSTRAP_OWNER_USERNAME)")
	provisionOwnerCmd.Flags().StringVar(&ownerName, "name", "", "owner display name (default BOOTSTRAP_OWNER_NAME)")
	provisionOwnerCmd.Flags().StringVar(&ownerPassword, "password", "", "owner password (default BOOTSTRAP_OWNER_PASSWORD)")

	seedCatalogCmd.Flags().StringVarP(&seedFile, "file", "f", "", "catalog YAML file (default CATALOG_SEED_FILE)")

	healthCmd.Flags().DurationVarP(&healthTimeout, "timeout", "t", 5*time.Second, "timeout for the health check")
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
