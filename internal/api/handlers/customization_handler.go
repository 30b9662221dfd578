package handlers

import (
	"car-customizer/internal/dto"
	"car-customizer/internal/models"
	"car-customizer/internal/notify"
	"car-customizer/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type CustomizationHandler struct {
	customizationService *service.CustomizationService
	logger               *zap.Logger
}

func NewCustomizationHandler(customizationService *service.CustomizationService, logger *zap.Logger) *CustomizationHandler {
	return &CustomizationHandler{
		customizationService: customizationService,
		logger:               logger,
	}
}

// Customize godoc
// @Summary Optimize a customization
// @Description Forward color, material and seat preferences to the optimization backend
// @Tags customization
// @Accept json
// @Produce json
// @Param request body dto.CustomizeRequest true "Customization preferences"
// @Success 200 {object} dto.Envelope{data=dto.OptimizationResponse}
// @Failure 400 {object} dto.Envelope
// @Failure 500 {object} dto.Envelope
// @Router /customize [post]
func (h *CustomizationHandler) Customize(c *fiber.Ctx) error {
	var req dto.CustomizeRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, fiber.StatusBadRequest, "Invalid request body")
	}

	result, err := h.customizationService.Optimize(c.UserContext(), models.CustomizationPreferences{
		Color:      req.Color,
		Material:   req.Material,
		SeatConfig: req.SeatConfig,
	})
	if err != nil {
		h.logger.Error("Customization failed", zap.Error(err))
		h.toast(c, err.Error(), notify.TypeError)
		return fail(c, statusFor(err), err.Error())
	}

	h.toast(c, "Customization optimized", notify.TypeSuccess)

	return ok(c, fiber.StatusOK, dto.OptimizationResponse{
		OptimizedColor:    result.OptimizedColor,
		OptimizedMaterial: result.OptimizedMaterial,
		SeatConfiguration: result.SeatConfiguration,
		CostEstimate:      result.CostEstimate,
	})
}

// toast is best effort: a request without a notification scope still succeeds.
func (h *CustomizationHandler) toast(c *fiber.Ctx, message string, t notify.Type) {
	p, err := notify.FromContext(c.UserContext())
	if err != nil {
		h.logger.Warn("Notification skipped", zap.Error(err))
		return
	}
	if _, err := p.Add(message, t); err != nil {
		h.logger.Warn("Notification skipped", zap.Error(err))
	}
}
