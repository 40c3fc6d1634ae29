package repository

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

type geminiRepositoryHandler struct {
	Client *genai.Client
	Model  string
}

func NewGeminiRepository(ctx context.Context, apiKey, model string) (InferenceRepository, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini API key is required")
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	return geminiRepositoryHandler{
		Client: client,
		Model:  model,
	}, nil
}

func (h geminiRepositoryHandler) Infer(ctx context.Context, prompt string) (string, error) {
	resp, err := h.Client.Models.GenerateContent(ctx, h.Model, genai.Text(prompt), &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema:   verdictSchema(),
		MaxOutputTokens:  inferenceMaxTokens,
	})
	if err != nil {
		return "", fmt.Errorf("gemini API call failed: %w", err)
	}

	return resp.Text(), nil
}

func enumSchema(values ...string) *genai.Schema {
	return &genai.Schema{Type: genai.TypeString, Enum: values}
}

func rangeSchema(min, max float64) *genai.Schema {
	return &genai.Schema{Type: genai.TypeNumber, Minimum: &min, Maximum: &max}
}

func verdictSchema() *genai.Schema {
	signal := func() *genai.Schema { return enumSchema("BUY", "SELL", "HOLD") }

	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"sentiment": {
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"label":      enumSchema("Bullish", "Bearish", "Neutral"),
					"confidence": rangeSchema(0, 100),
				},
				Required: []string{"label", "confidence"},
			},
			"technical": {
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"rsi_signal":  signal(),
					"macd_signal": signal(),
					"overall":     signal(),
					"score":       rangeSchema(0, 100),
				},
				Required: []string{"rsi_signal", "macd_signal", "overall", "score"},
			},
			"prediction": {
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"direction":  enumSchema("up", "down", "neutral"),
					"percent":    {Type: genai.TypeNumber},
					"confidence": rangeSchema(0, 100),
				},
				Required: []string{"direction", "percent", "confidence"},
			},
			"recommendation": {
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"rating":    enumSchema("STRONG_BUY", "BUY", "HOLD", "SELL", "STRONG_SELL"),
					"score":     rangeSchema(0, 10),
					"reasoning": {Type: genai.TypeString},
				},
				Required: []string{"rating", "score", "reasoning"},
			},
			"risk":    enumSchema("Low", "Medium", "High"),
			"summary": {Type: genai.TypeString, Description: "2-3 sentence executive summary."},
		},
		Required: []string{"sentiment", "technical", "prediction", "recommendation", "risk", "summary"},
	}
}
