package middleware

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"car-customizer/internal/notify"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestNotificationScope(t *testing.T) {
	p := notify.NewProvider()
	defer p.Close()

	app := fiber.New()
	app.Use(NotificationScope(p))
	app.Get("/", func(c *fiber.Ctx) error {
		got, err := notify.FromContext(c.UserContext())
		if err != nil {
			return err
		}
		if got != p {
			return fiber.ErrInternalServerError
		}
		return c.SendStatus(fiber.StatusNoContent)
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
}

func TestRequestLogger(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)

	app := fiber.New()
	app.Use(RequestLogger(zap.New(core)))
	app.Get("/ok", func(c *fiber.Ctx) error { return c.SendString("ok") })
	app.Get("/bad", func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusBadRequest) })
	app.Get("/boom", func(c *fiber.Ctx) error { return fiber.NewError(fiber.StatusBadGateway, "boom") })

	for _, path := range []string{"/ok", "/bad", "/boom"} {
		_, err := app.Test(httptest.NewRequest(http.MethodGet, path, nil), -1)
		require.NoError(t, err)
	}

	entries := logs.All()
	require.Len(t, entries, 3)
	assert.Equal(t, zapcore.InfoLevel, entries[0].Level)
	assert.Equal(t, zapcore.WarnLevel, entries[1].Level)
	assert.Equal(t, zapcore.ErrorLevel, entries[2].Level)
	assert.Equal(t, int64(fiber.StatusBadGateway), entries[2].ContextMap()["status"])
	assert.Equal(t, "/boom", entries[2].ContextMap()["path"])
}

func TestRequestLogger_WrappedFiberError(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)

	app := fiber.New()
	app.Use(RequestLogger(zap.New(core)))
	app.Get("/gone", func(c *fiber.Ctx) error {
		return fmt.Errorf("lookup: %w", fiber.ErrNotFound)
	})

	_, err := app.Test(httptest.NewRequest(http.MethodGet, "/gone", nil), -1)
	require.NoError(t, err)

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, zapcore.WarnLevel, entries[0].Level)
	assert.Equal(t, int64(fiber.StatusNotFound), entries[0].ContextMap()["status"])
}
