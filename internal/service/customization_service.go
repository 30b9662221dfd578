package service

import (
	"context"
	"errors"

	"car-customizer/internal/models"

	"go.uber.org/zap"
)

type CustomizationService struct {
	optimizer Optimizer
	logger    *zap.Logger
}

func NewCustomizationService(optimizer Optimizer, logger *zap.Logger) *CustomizationService {
	return &CustomizationService{
		optimizer: optimizer,
		logger:    logger,
	}
}

// Optimize validates prefs and forwards them to the optimizer. It returns a
// *ValidationError for blank fields and an *UpstreamError for any optimizer failure.
func (s *CustomizationService) Optimize(ctx context.Context, prefs models.CustomizationPreferences) (*models.OptimizationResult, error) {
	if err := requireFields(
		[2]string{"color", prefs.Color},
		[2]string{"material", prefs.Material},
		[2]string{"seatConfig", prefs.SeatConfig},
	); err != nil {
		return nil, err
	}

	result, err := s.optimizer.Optimize(ctx, prefs)
	if err != nil {
		var upstream *UpstreamError
		if errors.As(err, &upstream) {
			return nil, err
		}
		return nil, &UpstreamError{Err: err}
	}
	if result == nil {
		return nil, &UpstreamError{Err: errors.New("optimizer returned no result")}
	}

	s.logger.Info("Customization optimized",
		zap.String("color", result.OptimizedColor),
		zap.String("material", result.OptimizedMaterial),
		zap.String("seat_config", result.SeatConfiguration),
		zap.Float64("cost_estimate", result.CostEstimate),
	)

	return result, nil
}
