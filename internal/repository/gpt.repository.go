package repository

import (
	"context"
	"fmt"

	"github.com/ayush6624/go-chatgpt"
)

const inferenceMaxTokens = 1024

// InferenceRepository is a plain text-in, text-out completion call. Prompt
// construction and response parsing belong to the caller.
type InferenceRepository interface {
	Infer(ctx context.Context, prompt string) (string, error)
}

type gptRepositoryHandler struct {
	GptClient *chatgpt.Client
	Model     chatgpt.ChatGPTModel
}

func NewGptRepository(apiKey string, model string) (InferenceRepository, error) {
	client, err := chatgpt.NewClient(apiKey)
	if err != nil {
		return nil, fmt.Errorf("failed to construct gpt client: %w", err)
	}

	m := chatgpt.GPT4
	if model != "" {
		m = chatgpt.ChatGPTModel(model)
	}

	return gptRepositoryHandler{
		GptClient: client,
		Model:     m,
	}, nil
}

func (h gptRepositoryHandler) Infer(ctx context.Context, prompt string) (string, error) {
	resp, err := h.GptClient.Send(ctx, &chatgpt.ChatCompletionRequest{
		Model: h.Model,
		Messages: []chatgpt.ChatMessage{
			{
				Role:    chatgpt.ChatGPTModelRoleUser,
				Content: prompt,
			},
		},
		MaxTokens: inferenceMaxTokens,
	})
	if err != nil {
		return "", fmt.Errorf("gpt request failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("gpt returned no choices")
	}

	return resp.Choices[0].Message.Content, nil
}
