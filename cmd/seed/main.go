package main

import (
	"context"
	"fmt"
	"os"

	"car-customizer/internal/models"
	"car-customizer/internal/repository"
	"car-customizer/pkg/config"
	"car-customizer/pkg/logger"
	"car-customizer/pkg/postgres"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
)

func main() {
	app := &cli.App{
		Name:  "seed",
		Usage: "Create the catalog schema and load the default car lineup into PostgreSQL",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Value:   "info",
				Usage:   "Log level (debug, info, warn, error)",
				EnvVars: []string{"LOG_LEVEL"},
			},
		},
		Before: func(c *cli.Context) error {
			return logger.Init(c.String("log-level"), "console")
		},
		After: func(c *cli.Context) error {
			logger.Sync()
			return nil
		},
		Commands: []*cli.Command{
			{
				Name:  "migrate",
				Usage: "Create catalog tables if they do not exist",
				Action: func(c *cli.Context) error {
					return withRepository(c.Context, func(ctx context.Context, repo *repository.CatalogRepository) error {
						return repo.Migrate(ctx)
					})
				},
			},
			{
				Name:  "load",
				Usage: "Upsert the default car models and options",
				Action: func(c *cli.Context) error {
					return withRepository(c.Context, loadCatalog)
				},
			},
			{
				Name:  "run",
				Usage: "migrate, then load",
				Action: func(c *cli.Context) error {
					return withRepository(c.Context, func(ctx context.Context, repo *repository.CatalogRepository) error {
						if err := repo.Migrate(ctx); err != nil {
							return err
						}
						return loadCatalog(ctx, repo)
					})
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		logger.Fatal("Seeding failed", zap.Error(err))
	}
}

func withRepository(ctx context.Context, fn func(context.Context, *repository.CatalogRepository) error) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if !cfg.Database.Enabled {
		logger.Warn("DB_ENABLED is false, the server will keep using the in-memory catalog")
	}

	appLogger := logger.Get()
	db, err := postgres.NewPool(ctx, &cfg.Database, appLogger)
	if err != nil {
		logger.Error("Failed to connect to PostgreSQL", zap.String("host", cfg.Database.Host), zap.Error(err))
		return err
	}
	defer db.Close()

	return fn(ctx, repository.NewCatalogRepository(db, appLogger))
}

func loadCatalog(ctx context.Context, repo *repository.CatalogRepository) error {
	for _, m := range models.DefaultModels() {
		if err := repo.UpsertModel(ctx, &m); err != nil {
			return fmt.Errorf("failed to upsert model %s: %w", m.ID, err)
		}
		logger.Info("Model seeded", zap.String("id", m.ID), zap.String("base_price", m.BasePrice.StringFixed(2)))
	}

	for _, o := range models.DefaultOptions() {
		if err := repo.UpsertOption(ctx, &o); err != nil {
			return fmt.Errorf("failed to upsert option %s/%s: %w", o.Kind, o.Value, err)
		}
	}

	logger.Info("Catalog seeding completed", zap.Int("models", len(models.DefaultModels())), zap.Int("options", len(models.DefaultOptions())))
	return nil
}
