package handlers

import (
	"errors"

	"car-customizer/internal/dto"
	"car-customizer/internal/notify"
	"car-customizer/internal/service"

	"github.com/gofiber/fiber/v2"
)

// statusFor maps domain errors onto HTTP status codes.
func statusFor(err error) int {
	var validationErr *service.ValidationError
	switch {
	case errors.As(err, &validationErr):
		return fiber.StatusBadRequest
	case errors.Is(err, notify.ErrInvalidType):
		return fiber.StatusBadRequest
	case errors.Is(err, service.ErrModelNotFound), errors.Is(err, service.ErrOptionNotFound):
		return fiber.StatusNotFound
	default:
		return fiber.StatusInternalServerError
	}
}

func fail(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(dto.Fail(message))
}

func ok(c *fiber.Ctx, status int, data any) error {
	return c.Status(status).JSON(dto.OK(data))
}
