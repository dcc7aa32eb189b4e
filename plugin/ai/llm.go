package ai

import (
	"context"

	"github.com/pkg/errors"
	"github.com/sashabaranov/go-openai"
)

// Generator produces a free-text answer for a composed prompt.
type Generator interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

type llmService struct {
	client      *openai.Client
	model       string
	maxTokens   int
	temperature float32
}

// NewLLMService creates a Generator backed by an OpenAI-compatible
// chat completion endpoint.
func NewLLMService(cfg *LLMConfig) (Generator, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("llm api key is required")
	}

	clientConfig := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientConfig.BaseURL = cfg.BaseURL
	}

	return &llmService{
		client:      openai.NewClientWithConfig(clientConfig),
		model:       cfg.Model,
		maxTokens:   cfg.MaxTokens,
		temperature: cfg.Temperature,
	}, nil
}

func (s *llmService) Complete(ctx context.Context, prompt string) (string, error) {
	req := openai.ChatCompletionRequest{
		Model:       s.model,
		MaxTokens:   s.maxTokens,
		Temperature: s.temperature,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleUser,
				Content: prompt,
			},
		},
	}

	resp, err := s.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", errors.Wrap(err, "chat completion failed")
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("empty chat completion response")
	}

	return resp.Choices[0].Message.Content, nil
}
