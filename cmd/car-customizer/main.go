package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"car-customizer/internal/api"
	"car-customizer/internal/api/handlers"
	"car-customizer/internal/notify"
	"car-customizer/internal/repository"
	"car-customizer/internal/service"
	"car-customizer/pkg/config"
	"car-customizer/pkg/logger"
	"car-customizer/pkg/postgres"

	"go.uber.org/zap"
)

// @title Car Customizer API
// @version 1.0
// @description Storefront backend: customization optimization, catalog, cost summary and notifications

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logger.Level, cfg.Logger.Format); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	appLogger := logger.Get()
	appLogger.Info("Starting car customizer service")

	ctx := context.Background()

	// Catalog store: PostgreSQL when enabled, built-in lineup otherwise
	var catalogStore service.CatalogStore
	if cfg.Database.Enabled {
		db, err := postgres.NewPool(ctx, &cfg.Database, appLogger)
		if err != nil {
			appLogger.Fatal("Failed to connect to database", zap.Error(err))
		}
		defer db.Close()
		catalogStore = repository.NewCatalogRepository(db, appLogger)
	} else {
		appLogger.Info("Database disabled, using built-in catalog")
		catalogStore = repository.NewDefaultMemoryCatalog()
	}

	optimizer, closeOptimizer, err := newOptimizer(cfg, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to initialize optimizer", zap.Error(err))
	}
	defer closeOptimizer()

	// Notification scope lives as long as the server
	notifications := notify.NewProvider(
		notify.WithDisplayer(notify.NewLogDisplayer(appLogger)),
		notify.WithDefaultDuration(cfg.Notification.DefaultDuration),
	)
	defer notifications.Close()

	// Initialize services
	customizationService := service.NewCustomizationService(optimizer, appLogger)
	catalogService := service.NewCatalogService(catalogStore, appLogger)

	// Initialize handlers
	customizationHandler := handlers.NewCustomizationHandler(customizationService, appLogger)
	catalogHandler := handlers.NewCatalogHandler(catalogService, appLogger)
	notificationHandler := handlers.NewNotificationHandler(appLogger)

	app := api.SetupRouter(customizationHandler, catalogHandler, notificationHandler, notifications, &cfg.Server, appLogger)

	go func() {
		addr := ":" + cfg.Server.Port
		appLogger.Info("Server starting", zap.String("address", addr))
		if err := app.Listen(addr); err != nil {
			appLogger.Fatal("Server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server")
	if err := app.Shutdown(); err != nil {
		appLogger.Error("Server shutdown error", zap.Error(err))
	}
}

func newOptimizer(cfg *config.Config, appLogger *zap.Logger) (service.Optimizer, func(), error) {
	switch cfg.Optimizer.Backend {
	case config.OptimizerStub, "":
		appLogger.Info("Using stub optimizer")
		return service.NewStubOptimizer(), func() {}, nil
	case config.OptimizerGigaChat:
		o, err := service.NewGigaChatOptimizer(&cfg.GigaChat, appLogger)
		if err != nil {
			return nil, nil, err
		}
		return o, func() { _ = o.Close() }, nil
	default:
		return nil, nil, fmt.Errorf("unknown optimizer backend %q", cfg.Optimizer.Backend)
	}
}
