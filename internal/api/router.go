package api

import (
	"errors"
	"os"
	"path/filepath"

	"car-customizer/docs"
	"car-customizer/internal/api/handlers"
	"car-customizer/internal/dto"
	"car-customizer/internal/notify"
	"car-customizer/pkg/config"
	"car-customizer/pkg/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	"go.uber.org/zap"
)

func SetupRouter(
	customizationHandler *handlers.CustomizationHandler,
	catalogHandler *handlers.CatalogHandler,
	notificationHandler *handlers.NotificationHandler,
	notifications *notify.Provider,
	cfg *config.ServerConfig,
	appLogger *zap.Logger,
) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      "car-customizer",
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			var e *fiber.Error
			if errors.As(err, &e) {
				code = e.Code
			}
			return c.Status(code).JSON(dto.Fail(err.Error()))
		},
	})

	// Middleware
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.AllowOrigins,
		AllowMethods: "GET,POST,DELETE,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept",
	}))
	app.Use(middleware.RequestLogger(appLogger))

	// Swagger - importing docs registers the OpenAPI document through init()
	_ = docs.SwaggerInfo
	app.Get("/swagger/*", swagger.HandlerDefault)

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	// Storefront API
	scoped := app.Group("", middleware.NotificationScope(notifications))
	scoped.Post("/customize", customizationHandler.Customize)
	scoped.Get("/catalog", catalogHandler.Catalog)
	scoped.Post("/quote", catalogHandler.Quote)

	scoped.Get("/notifications", notificationHandler.ListNotifications)
	scoped.Post("/notifications", notificationHandler.CreateNotification)
	scoped.Delete("/notifications/:id", notificationHandler.DeleteNotification)

	// Built storefront bundle, served last so API routes win
	if webPath := findWebPath(cfg.WebDir, appLogger); webPath != "" {
		appLogger.Info("Serving storefront", zap.String("path", webPath))
		app.Static("/", webPath)
		// client-side routes (catalog, customizer, summary, ar) fall back to index.html
		app.Get("/*", func(c *fiber.Ctx) error {
			return c.SendFile(filepath.Join(webPath, "index.html"))
		})
	} else {
		appLogger.Warn("Storefront bundle not found, only the API is served")
	}

	return app
}

// findWebPath locates the built single-page app relative to the working directory.
func findWebPath(configured string, logger *zap.Logger) string {
	if configured != "" {
		if fileExists(filepath.Join(configured, "index.html")) {
			return configured
		}
		logger.Warn("Configured web directory has no index.html", zap.String("path", configured))
	}

	paths := []string{
		"web/dist",
		"../web/dist",
		"../../web/dist",
	}
	for _, path := range paths {
		if fileExists(filepath.Join(path, "index.html")) {
			return path
		}
		logger.Debug("Tried path", zap.String("path", path))
	}

	return ""
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
