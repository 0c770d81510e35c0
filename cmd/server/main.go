package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"accommodation-portal-backend/internal/api/routes"
	"accommodation-portal-backend/internal/config"
	"accommodation-portal-backend/internal/database"
	"accommodation-portal-backend/internal/logger"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	_ "accommodation-portal-backend/docs" // This is needed for swag
)

//	@title			Accommodation Portal Backend API
//	@version		1.0
//	@description	Backend API for the accommodation portal: owner listings with rooms, features, amenities and images, plus account administration.
//	@termsOfService	http://swagger.io/terms/

//	@contact.name	API Support
//	@contact.url	http://www.example.com/support
//	@contact.email	support@example.com

//	@license.name	MIT
//	@license.url	https://opensource.org/licenses/MIT

//	@host		localhost:7008
//	@BasePath	/

//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Type "Bearer" followed by a space and JWT token.

func main() {
	// Load environment variables from .env file in development
	if err := godotenv.Load(); err != nil {
		logrus.Info("No .env file found, using system environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		logrus.Fatal("Failed to load configuration: ", err)
	}

	logger.Setup(cfg.LogLevel)

	db, err := database.Initialize(cfg.DatabaseURL, nil)
	if err != nil {
		logrus.Fatal("Failed to initialize database: ", err)
	}

	deps, err := routes.NewDependencies(db, cfg)
	if err != nil {
		logrus.Fatal("Failed to initialize services: ", err)
	}

	ctx := context.Background()
	if _, err := deps.Provisioning.EnsureOwner(ctx, cfg.BootstrapOwnerUsername, cfg.BootstrapOwnerName, cfg.BootstrapOwnerPassword); err != nil {
		logrus.Fatal("Failed to provision owner account: ", err)
	}

	if cfg.CatalogSeedFile != "" {
		if _, statErr := os.Stat(cfg.CatalogSeedFile); statErr == nil {
			if _, err := deps.Catalog.SeedFromFile(ctx, cfg.CatalogSeedFile); err != nil {
				logrus.Warnf("Catalog seed failed: %v", err)
			}
		}
	}

	if err := deps.Sweeper.Start(cfg.OrphanSweepSchedule); err != nil {
		logrus.Fatal("Failed to start orphan sweeper: ", err)
	}
	defer deps.Sweeper.Stop()

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := routes.SetupRoutes(deps, cfg)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logrus.Infof("Starting server on port %s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logrus.Fatal("Failed to start server: ", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	logrus.Info("Shutdown signal received, shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logrus.Errorf("Server forced to shutdown: %v", err)
	}
	logrus.Info("Server stopped")
}
