// Package llm provides the completion capability used by the import
// pipeline. Exactly one provider implementation is selected at startup from
// configuration; everything downstream depends only on the Client interface.
package llm

import (
	"context"
	"errors"
	"fmt"

	"github.com/codeready-toolchain/recap/pkg/config"
)

// Client is the completion capability: prompt in, text out.
type Client interface {
	// Complete sends a prompt and returns the model's text response.
	// maxTokens <= 0 uses the configured default budget.
	Complete(ctx context.Context, prompt string, maxTokens int) (string, error)

	// Ping verifies the provider is reachable. Called once at startup;
	// failure is a fatal configuration error, never a per-item failure.
	Ping(ctx context.Context) error
}

// ErrEmptyResponse indicates the provider returned no usable text.
var ErrEmptyResponse = errors.New("empty response from completion provider")

// NewFromConfig constructs the provider selected by configuration.
func NewFromConfig(cfg *config.LLMConfig) (Client, error) {
	switch cfg.Provider {
	case config.LLMProviderOpenAICompat:
		return NewOpenAICompatClient(cfg), nil
	case config.LLMProviderOllama:
		return NewOllamaClient(cfg), nil
	default:
		return nil, fmt.Errorf("unknown llm provider %q", cfg.Provider)
	}
}
