package service

import (
	"context"

	"car-customizer/internal/models"
)

// StubCostEstimate is the cost the stub optimizer attaches to every configuration.
const StubCostEstimate = 10000

// Optimizer turns customization preferences into an optimized, cost-annotated
// configuration. Implementations must honor ctx cancellation.
type Optimizer interface {
	Optimize(ctx context.Context, prefs models.CustomizationPreferences) (*models.OptimizationResult, error)
}

// StubOptimizer echoes the preferences back with a fixed cost estimate. It stands in
// for a real optimization backend.
type StubOptimizer struct{}

func NewStubOptimizer() *StubOptimizer {
	return &StubOptimizer{}
}

func (o *StubOptimizer) Optimize(ctx context.Context, prefs models.CustomizationPreferences) (*models.OptimizationResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return &models.OptimizationResult{
		OptimizedColor:    prefs.Color,
		OptimizedMaterial: prefs.Material,
		SeatConfiguration: prefs.SeatConfig,
		CostEstimate:      StubCostEstimate,
	}, nil
}

// OptimizerFunc adapts a plain function to the Optimizer interface.
type OptimizerFunc func(ctx context.Context, prefs models.CustomizationPreferences) (*models.OptimizationResult, error)

func (f OptimizerFunc) Optimize(ctx context.Context, prefs models.CustomizationPreferences) (*models.OptimizationResult, error) {
	return f(ctx, prefs)
}
