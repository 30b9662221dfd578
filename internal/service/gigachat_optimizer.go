package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"car-customizer/internal/models"
	"car-customizer/pkg/config"

	"github.com/Role1776/gigago"
	"go.uber.org/zap"
)

const optimizerSystemInstruction = `You are an automotive configuration expert for a car customization storefront.
Given a customer's preferred exterior color, interior material and seat configuration, pick the
closest production-ready combination and estimate its cost in USD.

Always answer with a single JSON object and nothing else:
{
  "optimizedColor": "string",
  "optimizedMaterial": "string",
  "seatConfiguration": "string",
  "costEstimate": number
}

Rules:
- Keep the customer's choice when it is already production-ready.
- costEstimate is the customization surcharge, a positive number without currency symbols.
- No markdown, no comments before or after the JSON.`

// completeFunc sends a single user prompt and returns the model's text answer.
type completeFunc func(ctx context.Context, prompt string) (string, error)

// GigaChatOptimizer asks the GigaChat LLM to optimize a configuration.
type GigaChatOptimizer struct {
	client   *gigago.Client
	complete completeFunc
	logger   *zap.Logger
}

func NewGigaChatOptimizer(cfg *config.GigaChatConfig, logger *zap.Logger) (*GigaChatOptimizer, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("GIGACHAT_API_KEY is required for the gigachat optimizer")
	}

	opts := []gigago.Option{
		gigago.WithCustomScope(cfg.Scope),
	}
	if cfg.InsecureSkipVerify {
		opts = append(opts, gigago.WithCustomInsecureSkipVerify(true))
		logger.Warn("GigaChat TLS certificate verification is disabled")
	}

	client, err := gigago.NewClient(context.Background(), cfg.APIKey, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create GigaChat client: %w", err)
	}

	model := client.GenerativeModel(cfg.Model)
	model.SystemInstruction = optimizerSystemInstruction
	model.Temperature = 0.2

	complete := func(ctx context.Context, prompt string) (string, error) {
		resp, err := model.Generate(ctx, []gigago.Message{
			{Role: gigago.RoleUser, Content: prompt},
		})
		if err != nil {
			return "", fmt.Errorf("failed to generate response: %w", err)
		}
		if len(resp.Choices) == 0 {
			return "", errors.New("no response from LLM")
		}
		return resp.Choices[0].Message.Content, nil
	}

	logger.Info("GigaChat optimizer ready", zap.String("model", cfg.Model))

	return &GigaChatOptimizer{
		client:   client,
		complete: complete,
		logger:   logger,
	}, nil
}

func (o *GigaChatOptimizer) Optimize(ctx context.Context, prefs models.CustomizationPreferences) (*models.OptimizationResult, error) {
	prompt := fmt.Sprintf("Color: %s\nMaterial: %s\nSeat configuration: %s",
		prefs.Color, prefs.Material, prefs.SeatConfig)

	content, err := o.complete(ctx, prompt)
	if err != nil {
		return nil, err
	}

	result, err := parseOptimization(content, prefs)
	if err != nil {
		o.logger.Warn("Unparseable optimization answer", zap.String("content", content), zap.Error(err))
		return nil, err
	}

	return result, nil
}

func (o *GigaChatOptimizer) Close() error {
	if o.client != nil {
		o.client.Close()
	}
	return nil
}

type optimizationAnswer struct {
	OptimizedColor    string   `json:"optimizedColor"`
	OptimizedMaterial string   `json:"optimizedMaterial"`
	SeatConfiguration string   `json:"seatConfiguration"`
	CostEstimate      *float64 `json:"costEstimate"`
}

// parseOptimization extracts the JSON object from an LLM answer, tolerating markdown
// fences and surrounding prose. Blank fields fall back to the customer's preferences.
func parseOptimization(content string, prefs models.CustomizationPreferences) (*models.OptimizationResult, error) {
	content = strings.TrimSpace(content)
	start := strings.Index(content, "{")
	end := strings.LastIndex(content, "}")
	if start == -1 || end < start {
		return nil, fmt.Errorf("invalid response format: %q", content)
	}

	var answer optimizationAnswer
	if err := json.Unmarshal([]byte(content[start:end+1]), &answer); err != nil {
		return nil, fmt.Errorf("failed to parse JSON response: %w", err)
	}
	if answer.CostEstimate == nil {
		return nil, errors.New("response has no costEstimate")
	}
	if *answer.CostEstimate < 0 {
		return nil, fmt.Errorf("negative costEstimate %v", *answer.CostEstimate)
	}

	return &models.OptimizationResult{
		OptimizedColor:    orDefault(answer.OptimizedColor, prefs.Color),
		OptimizedMaterial: orDefault(answer.OptimizedMaterial, prefs.Material),
		SeatConfiguration: orDefault(answer.SeatConfiguration, prefs.SeatConfig),
		CostEstimate:      *answer.CostEstimate,
	}, nil
}

func orDefault(v, fallback string) string {
	if strings.TrimSpace(v) == "" {
		return fallback
	}
	return strings.ToValidUTF8(v, "")
}
