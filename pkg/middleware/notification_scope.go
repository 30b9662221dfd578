package middleware

import (
	"car-customizer/internal/notify"

	"github.com/gofiber/fiber/v2"
)

// NotificationScope makes p reachable from handlers through notify.FromContext.
func NotificationScope(p *notify.Provider) fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.SetUserContext(notify.WithProvider(c.UserContext(), p))
		return c.Next()
	}
}
