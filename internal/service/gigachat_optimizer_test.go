package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"car-customizer/internal/models"
	"car-customizer/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var redLeatherSport = models.CustomizationPreferences{Color: "red", Material: "leather", SeatConfig: "sport"}

func TestParseOptimization(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    *models.OptimizationResult
		wantErr bool
	}{
		{
			name:    "plain json",
			content: `{"optimizedColor":"crimson","optimizedMaterial":"nappa leather","seatConfiguration":"sport","costEstimate":12500.5}`,
			want: &models.OptimizationResult{
				OptimizedColor: "crimson", OptimizedMaterial: "nappa leather", SeatConfiguration: "sport", CostEstimate: 12500.5,
			},
		},
		{
			name:    "markdown fenced with prose",
			content: "Here is the configuration:\n```json\n{\"optimizedColor\":\"red\",\"optimizedMaterial\":\"leather\",\"seatConfiguration\":\"sport\",\"costEstimate\":9000}\n```",
			want: &models.OptimizationResult{
				OptimizedColor: "red", OptimizedMaterial: "leather", SeatConfiguration: "sport", CostEstimate: 9000,
			},
		},
		{
			name:    "blank fields fall back to preferences",
			content: `{"optimizedColor":"","costEstimate":0}`,
			want: &models.OptimizationResult{
				OptimizedColor: "red", OptimizedMaterial: "leather", SeatConfiguration: "sport", CostEstimate: 0,
			},
		},
		{name: "no json", content: "I cannot help with that", wantErr: true},
		{name: "broken json", content: `{"optimizedColor": "red",}`, wantErr: true},
		{name: "missing cost", content: `{"optimizedColor":"red"}`, wantErr: true},
		{name: "negative cost", content: `{"costEstimate":-1}`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseOptimization(tt.content, redLeatherSport)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGigaChatOptimizer_Optimize(t *testing.T) {
	var prompt string
	o := &GigaChatOptimizer{
		complete: func(ctx context.Context, p string) (string, error) {
			prompt = p
			return `{"optimizedColor":"red","optimizedMaterial":"leather","seatConfiguration":"sport","costEstimate":11000}`, nil
		},
		logger: zap.NewNop(),
	}

	result, err := o.Optimize(context.Background(), redLeatherSport)
	require.NoError(t, err)
	assert.Equal(t, float64(11000), result.CostEstimate)
	assert.True(t, strings.Contains(prompt, "Color: red"))
	assert.True(t, strings.Contains(prompt, "Seat configuration: sport"))
	assert.NoError(t, o.Close())
}

func TestGigaChatOptimizer_ClientErrorBecomesUpstream(t *testing.T) {
	o := &GigaChatOptimizer{
		complete: func(ctx context.Context, p string) (string, error) {
			return "", errors.New("401 unauthorized")
		},
		logger: zap.NewNop(),
	}
	svc := NewCustomizationService(o, zap.NewNop())

	_, err := svc.Optimize(context.Background(), redLeatherSport)
	var upstream *UpstreamError
	require.True(t, errors.As(err, &upstream))
	assert.Contains(t, err.Error(), "401 unauthorized")
}

func TestNewGigaChatOptimizer_RequiresAPIKey(t *testing.T) {
	_, err := NewGigaChatOptimizer(&config.GigaChatConfig{Model: "GigaChat"}, zap.NewNop())
	assert.Error(t, err)
}
