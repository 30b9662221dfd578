package repository

import (
	"context"
	"testing"

	"car-customizer/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryCatalog(t *testing.T) {
	ctx := context.Background()
	c := NewDefaultMemoryCatalog()

	carModels, err := c.ListModels(ctx)
	require.NoError(t, err)
	assert.Len(t, carModels, 3)

	m, err := c.GetModel(ctx, "roadster")
	require.NoError(t, err)
	assert.Equal(t, "Roadster", m.Name)

	_, err = c.GetModel(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)

	o, err := c.GetOption(ctx, models.OptionKindSeat, "sport")
	require.NoError(t, err)
	assert.Equal(t, "1299.99", o.Price.StringFixed(2))

	// value matches only within its own kind
	_, err = c.GetOption(ctx, models.OptionKindColor, "sport")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryCatalog_ReturnsCopies(t *testing.T) {
	ctx := context.Background()
	c := NewDefaultMemoryCatalog()

	carModels, _ := c.ListModels(ctx)
	carModels[0].Name = "tampered"

	m, _ := c.GetModel(ctx, carModels[0].ID)
	m.Name = "tampered again"

	fresh, _ := c.ListModels(ctx)
	assert.Equal(t, "Coupe GT", fresh[0].Name)
}
