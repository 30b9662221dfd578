package repository

import (
	"context"
	"sync"

	"car-customizer/internal/models"
)

// MemoryCatalog serves a fixed catalog from memory. Used when no database is configured
// and in tests.
type MemoryCatalog struct {
	mu      sync.RWMutex
	models  []models.CarModel
	options []models.CatalogOption
}

func NewMemoryCatalog(carModels []models.CarModel, options []models.CatalogOption) *MemoryCatalog {
	return &MemoryCatalog{
		models:  append([]models.CarModel(nil), carModels...),
		options: append([]models.CatalogOption(nil), options...),
	}
}

// NewDefaultMemoryCatalog returns a catalog holding the built-in lineup.
func NewDefaultMemoryCatalog() *MemoryCatalog {
	return NewMemoryCatalog(models.DefaultModels(), models.DefaultOptions())
}

func (c *MemoryCatalog) ListModels(ctx context.Context) ([]models.CarModel, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]models.CarModel{}, c.models...), nil
}

func (c *MemoryCatalog) ListOptions(ctx context.Context) ([]models.CatalogOption, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]models.CatalogOption{}, c.options...), nil
}

func (c *MemoryCatalog) GetModel(ctx context.Context, id string) (*models.CarModel, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	for _, m := range c.models {
		if m.ID == id {
			m := m
			return &m, nil
		}
	}
	return nil, ErrNotFound
}

func (c *MemoryCatalog) GetOption(ctx context.Context, kind models.OptionKind, value string) (*models.CatalogOption, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	for _, o := range c.options {
		if o.Kind == kind && o.Value == value {
			o := o
			return &o, nil
		}
	}
	return nil, ErrNotFound
}
