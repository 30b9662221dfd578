package service

import (
	"context"
	"errors"
	"fmt"

	"car-customizer/internal/models"
	"car-customizer/internal/repository"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// CatalogStore is the read side of the catalog. Implemented by
// repository.CatalogRepository and repository.MemoryCatalog.
type CatalogStore interface {
	ListModels(ctx context.Context) ([]models.CarModel, error)
	ListOptions(ctx context.Context) ([]models.CatalogOption, error)
	GetModel(ctx context.Context, id string) (*models.CarModel, error)
	GetOption(ctx context.Context, kind models.OptionKind, value string) (*models.CatalogOption, error)
}

type CatalogService struct {
	store  CatalogStore
	logger *zap.Logger
}

func NewCatalogService(store CatalogStore, logger *zap.Logger) *CatalogService {
	return &CatalogService{
		store:  store,
		logger: logger,
	}
}

// Catalog returns every car model and customization option.
func (s *CatalogService) Catalog(ctx context.Context) ([]models.CarModel, []models.CatalogOption, error) {
	carModels, err := s.store.ListModels(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list car models: %w", err)
	}

	options, err := s.store.ListOptions(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list catalog options: %w", err)
	}

	return carModels, options, nil
}

// Quote prices a model with the selected options. The total is the model's base price
// plus the surcharge of every option, computed exactly.
func (s *CatalogService) Quote(ctx context.Context, modelID string, prefs models.CustomizationPreferences) (*models.Quote, error) {
	if err := requireFields(
		[2]string{"modelId", modelID},
		[2]string{"color", prefs.Color},
		[2]string{"material", prefs.Material},
		[2]string{"seatConfig", prefs.SeatConfig},
	); err != nil {
		return nil, err
	}

	carModel, err := s.store.GetModel(ctx, modelID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrModelNotFound, modelID)
		}
		return nil, fmt.Errorf("failed to load car model: %w", err)
	}

	quote := &models.Quote{
		ModelID:  carModel.ID,
		Currency: carModel.Currency,
		Items: []models.QuoteItem{{
			Kind:  "model",
			Value: carModel.ID,
			Label: carModel.Name,
			Price: carModel.BasePrice,
		}},
		Total: carModel.BasePrice,
	}

	selections := []struct {
		kind  models.OptionKind
		value string
	}{
		{models.OptionKindColor, prefs.Color},
		{models.OptionKindMaterial, prefs.Material},
		{models.OptionKindSeat, prefs.SeatConfig},
	}

	for _, sel := range selections {
		opt, err := s.store.GetOption(ctx, sel.kind, sel.value)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return nil, fmt.Errorf("%w: %s %q", ErrOptionNotFound, sel.kind, sel.value)
			}
			return nil, fmt.Errorf("failed to load %s option: %w", sel.kind, err)
		}

		quote.Items = append(quote.Items, models.QuoteItem{
			Kind:  string(opt.Kind),
			Value: opt.Value,
			Label: opt.Label,
			Price: opt.Price,
		})
		quote.Total = quote.Total.Add(opt.Price)
	}

	s.logger.Debug("Quote computed",
		zap.String("model_id", modelID),
		zap.String("total", quote.Total.StringFixed(2)),
	)

	return quote, nil
}

// Money formats an amount the way the API serializes prices.
func Money(d decimal.Decimal) string {
	return d.StringFixed(2)
}
