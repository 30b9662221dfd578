package models

// CustomizationPreferences are the attributes a shopper picks in the customizer.
type CustomizationPreferences struct {
	Color      string
	Material   string
	SeatConfig string
}

// OptimizationResult is the configuration returned by an optimizer backend.
type OptimizationResult struct {
	OptimizedColor    string
	OptimizedMaterial string
	SeatConfiguration string
	CostEstimate      float64
}
