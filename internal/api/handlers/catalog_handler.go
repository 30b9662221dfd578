package handlers

import (
	"car-customizer/internal/dto"
	"car-customizer/internal/models"
	"car-customizer/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type CatalogHandler struct {
	catalogService *service.CatalogService
	logger         *zap.Logger
}

func NewCatalogHandler(catalogService *service.CatalogService, logger *zap.Logger) *CatalogHandler {
	return &CatalogHandler{
		catalogService: catalogService,
		logger:         logger,
	}
}

// Catalog godoc
// @Summary List the catalog
// @Description Car models and customization options with prices
// @Tags catalog
// @Produce json
// @Success 200 {object} dto.Envelope{data=dto.CatalogResponse}
// @Failure 500 {object} dto.Envelope
// @Router /catalog [get]
func (h *CatalogHandler) Catalog(c *fiber.Ctx) error {
	carModels, options, err := h.catalogService.Catalog(c.UserContext())
	if err != nil {
		h.logger.Error("Failed to load catalog", zap.Error(err))
		return fail(c, fiber.StatusInternalServerError, "Failed to load catalog")
	}

	resp := dto.CatalogResponse{
		Models:  make([]dto.CarModelResponse, 0, len(carModels)),
		Options: make([]dto.CatalogOptionResponse, 0, len(options)),
	}
	for _, m := range carModels {
		resp.Models = append(resp.Models, dto.CarModelResponse{
			ID:        m.ID,
			Name:      m.Name,
			BasePrice: service.Money(m.BasePrice),
			Currency:  m.Currency,
		})
	}
	for _, o := range options {
		resp.Options = append(resp.Options, dto.CatalogOptionResponse{
			Kind:  string(o.Kind),
			Value: o.Value,
			Label: o.Label,
			Price: service.Money(o.Price),
		})
	}

	return ok(c, fiber.StatusOK, resp)
}

// Quote godoc
// @Summary Cost summary
// @Description Price a car model with the selected color, material and seat configuration
// @Tags catalog
// @Accept json
// @Produce json
// @Param request body dto.QuoteRequest true "Model and preferences"
// @Success 200 {object} dto.Envelope{data=dto.QuoteResponse}
// @Failure 400 {object} dto.Envelope
// @Failure 404 {object} dto.Envelope
// @Failure 500 {object} dto.Envelope
// @Router /quote [post]
func (h *CatalogHandler) Quote(c *fiber.Ctx) error {
	var req dto.QuoteRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, fiber.StatusBadRequest, "Invalid request body")
	}

	quote, err := h.catalogService.Quote(c.UserContext(), req.ModelID, models.CustomizationPreferences{
		Color:      req.Color,
		Material:   req.Material,
		SeatConfig: req.SeatConfig,
	})
	if err != nil {
		status := statusFor(err)
		if status == fiber.StatusInternalServerError {
			h.logger.Error("Failed to compute quote", zap.Error(err))
			return fail(c, status, "Failed to compute quote")
		}
		return fail(c, status, err.Error())
	}

	resp := dto.QuoteResponse{
		ModelID:  quote.ModelID,
		Currency: quote.Currency,
		Items:    make([]dto.QuoteItemResponse, 0, len(quote.Items)),
		Total:    service.Money(quote.Total),
	}
	for _, item := range quote.Items {
		resp.Items = append(resp.Items, dto.QuoteItemResponse{
			Kind:  item.Kind,
			Value: item.Value,
			Label: item.Label,
			Price: service.Money(item.Price),
		})
	}

	return ok(c, fiber.StatusOK, resp)
}
