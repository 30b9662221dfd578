package handlers

import (
	"math"
	"time"

	"car-customizer/internal/dto"
	"car-customizer/internal/notify"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// maxDurationMs is the largest millisecond count that converts to a time.Duration
// without overflowing.
const maxDurationMs = math.MaxInt64 / int64(time.Millisecond)

type NotificationHandler struct {
	logger *zap.Logger
}

func NewNotificationHandler(logger *zap.Logger) *NotificationHandler {
	return &NotificationHandler{
		logger: logger,
	}
}

// ListNotifications godoc
// @Summary List active notifications
// @Description Notifications in display order
// @Tags notifications
// @Produce json
// @Success 200 {object} dto.Envelope{data=[]dto.NotificationResponse}
// @Failure 500 {object} dto.Envelope
// @Router /notifications [get]
func (h *NotificationHandler) ListNotifications(c *fiber.Ctx) error {
	p, err := h.provider(c)
	if err != nil {
		return fail(c, statusFor(err), err.Error())
	}

	list := p.List()
	resp := make([]dto.NotificationResponse, 0, len(list))
	for _, n := range list {
		resp = append(resp, toNotificationResponse(n))
	}

	return ok(c, fiber.StatusOK, resp)
}

// CreateNotification godoc
// @Summary Add a notification
// @Description Add a toast; duration in milliseconds, 0 or less keeps it until dismissed
// @Tags notifications
// @Accept json
// @Produce json
// @Param request body dto.CreateNotificationRequest true "Notification"
// @Success 201 {object} dto.Envelope{data=dto.NotificationResponse}
// @Failure 400 {object} dto.Envelope
// @Failure 500 {object} dto.Envelope
// @Router /notifications [post]
func (h *NotificationHandler) CreateNotification(c *fiber.Ctx) error {
	var req dto.CreateNotificationRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if req.Message == "" {
		return fail(c, fiber.StatusBadRequest, "Message is required")
	}
	if req.Duration != nil && (*req.Duration > maxDurationMs || *req.Duration < -maxDurationMs) {
		return fail(c, fiber.StatusBadRequest, "Duration is out of range")
	}

	p, err := h.provider(c)
	if err != nil {
		return fail(c, statusFor(err), err.Error())
	}

	t := notify.Type(req.Type)
	if req.Type == "" {
		t = notify.TypeInfo
	}

	var n notify.Notification
	if req.Duration == nil {
		n, err = p.Add(req.Message, t)
	} else {
		n, err = p.AddWithDuration(req.Message, t, time.Duration(*req.Duration)*time.Millisecond)
	}
	if err != nil {
		return fail(c, statusFor(err), err.Error())
	}

	return ok(c, fiber.StatusCreated, toNotificationResponse(n))
}

// DeleteNotification godoc
// @Summary Dismiss a notification
// @Description Removing an unknown id is a no-op
// @Tags notifications
// @Param id path string true "Notification ID"
// @Success 204
// @Failure 500 {object} dto.Envelope
// @Router /notifications/{id} [delete]
func (h *NotificationHandler) DeleteNotification(c *fiber.Ctx) error {
	p, err := h.provider(c)
	if err != nil {
		return fail(c, statusFor(err), err.Error())
	}

	p.Remove(c.Params("id"))
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *NotificationHandler) provider(c *fiber.Ctx) (*notify.Provider, error) {
	p, err := notify.FromContext(c.UserContext())
	if err != nil {
		h.logger.Error("Notification scope unavailable", zap.Error(err))
		return nil, err
	}
	return p, nil
}

func toNotificationResponse(n notify.Notification) dto.NotificationResponse {
	return dto.NotificationResponse{
		ID:        n.ID,
		Message:   n.Message,
		Type:      string(n.Type),
		Duration:  n.Duration.Milliseconds(),
		CreatedAt: n.CreatedAt.Format(time.RFC3339),
	}
}
