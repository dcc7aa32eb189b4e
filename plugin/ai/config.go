package ai

import (
	"github.com/pkg/errors"

	"github.com/burnout-fit/burnout/internal/profile"
)

// EmbeddingConfig configures the vector embedding service.
type EmbeddingConfig struct {
	BaseURL    string
	APIKey     string
	Model      string
	Dimensions int
}

// LLMConfig configures the chat completion service.
type LLMConfig struct {
	BaseURL     string
	APIKey      string
	Model       string
	MaxTokens   int
	Temperature float32
}

// Config bundles every AI-related setting.
type Config struct {
	Embedding EmbeddingConfig
	LLM       LLMConfig
}

// NewConfigFromProfile derives the AI configuration from the server profile.
func NewConfigFromProfile(p *profile.Profile) (*Config, error) {
	if !p.IsAIEnabled() {
		return nil, errors.New("ai is not enabled in profile")
	}
	if p.AIAPIKey == "" {
		return nil, errors.New("ai api key is required")
	}

	cfg := &Config{
		Embedding: EmbeddingConfig{
			BaseURL:    p.AIBaseURL,
			APIKey:     p.AIAPIKey,
			Model:      p.AIEmbeddingModel,
			Dimensions: p.AIEmbeddingDimensions,
		},
		LLM: LLMConfig{
			BaseURL:     p.AIBaseURL,
			APIKey:      p.AIAPIKey,
			Model:       p.AIChatModel,
			MaxTokens:   p.AIMaxTokens,
			Temperature: p.AITemperature,
		},
	}

	if cfg.Embedding.Model == "" {
		cfg.Embedding.Model = "text-embedding-3-small"
	}
	if cfg.LLM.Model == "" {
		cfg.LLM.Model = "gpt-4o-mini"
	}
	if cfg.LLM.MaxTokens <= 0 {
		cfg.LLM.MaxTokens = 1024
	}

	return cfg, nil
}
