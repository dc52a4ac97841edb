package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/citra/storefront/config"
	"github.com/citra/storefront/internal/app/controller"
	"github.com/citra/storefront/internal/app/model"
	"github.com/citra/storefront/internal/app/repository"
	"github.com/citra/storefront/internal/app/service"
	"github.com/citra/storefront/internal/db"
	"github.com/citra/storefront/internal/middleware"
	"github.com/citra/storefront/internal/router"
	"github.com/citra/storefront/internal/seed"
	"github.com/citra/storefront/pkg/logger"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load configuration", err)
	}

	logger.Initialize(logger.Config{
		Level:       cfg.Log.Level,
		Format:      cfg.Log.Format,
		EnableColor: cfg.Server.Environment == "development",
	})

	logger.Info("Starting Storefront Server", logger.Fields{
		"environment":   cfg.Server.Environment,
		"port":          cfg.Server.Port,
		"log_level":     cfg.Log.Level,
		"catalog_store": cfg.Catalog.Store,
	})

	snapshot, err := loadSeed(cfg)
	if err != nil {
		logger.Fatal("Failed to load seed catalog", err)
	}

	opts := service.StorefrontOptions{
		HomeSectionLimit:    cfg.Catalog.HomeSectionLimit,
		RequireConfirmation: cfg.Catalog.RequireConfirmation,
	}

	if cfg.Catalog.Store == config.CatalogStorePostgres {
		if err := db.Initialize(&cfg.Database); err != nil {
			logger.Fatal("Failed to initialize database", err)
		}
		defer func() {
			if err := db.Close(); err != nil {
				logger.Error("Failed to close database connection", err)
			}
		}()

		if err := db.Migrate(); err != nil {
			logger.Fatal("Failed to run migrations", err)
		}

		snapshots := repository.NewCatalogSnapshotRepository(db.GetDB())
		stored, err := snapshots.Load()
		if err != nil {
			logger.Fatal("Failed to load catalog from database", err)
		}
		if !stored.IsEmpty() {
			snapshot = stored
		} else {
			logger.Info("Database catalog is empty, using seed catalog")
		}
		opts.Snapshots = snapshots
	}

	storefront, err := service.NewStorefrontFromSnapshot(snapshot, opts)
	if err != nil {
		logger.Fatal("Failed to build storefront", err)
	}

	// Initialize controllers
	sessionController := controller.NewSessionController(storefront)
	catalogController := controller.NewCatalogController(storefront)
	selectionController := controller.NewSelectionController(storefront)
	cartController := controller.NewCartController(storefront)
	favoritesController := controller.NewFavoritesController(storefront)
	adminController := controller.NewAdminController(storefront, cfg.Catalog.RequireConfirmation)

	// Initialize middleware
	sessionMiddleware := middleware.NewSessionMiddleware(storefront)

	// Setup router
	r := router.NewRouter(
		sessionController,
		catalogController,
		selectionController,
		cartController,
		favoritesController,
		adminController,
		sessionMiddleware,
		cfg,
	)
	engine := r.Setup()

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Server.Port),
		Handler: engine,
	}

	go func() {
		logger.Info("Server started successfully", logger.Fields{
			"address": srv.Addr,
			"pid":     os.Getpid(),
		})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Failed to start server", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server gracefully...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", err)
	}

	logger.Info("Server stopped successfully")
}

func loadSeed(cfg *config.Config) (model.CatalogSnapshot, error) {
	if cfg.Catalog.SeedFile == "" {
		return seed.Default(), nil
	}
	return seed.LoadFile(cfg.Catalog.SeedFile)
}
