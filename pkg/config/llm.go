package config

import (
	"os"
	"time"
)

// LLM provider kinds. Exactly one provider is constructed at startup; the
// pipeline depends only on the completion interface, never on the provider
// identity.
const (
	LLMProviderOpenAICompat = "openai-compat"
	LLMProviderOllama       = "ollama"
)

// LLMConfig holds completion capability settings.
type LLMConfig struct {
	// Provider selects the implementation: "openai-compat" or "ollama".
	Provider string `yaml:"provider"`

	// BaseURL of the provider API. For openai-compat this includes the /v1
	// prefix, e.g. "https://api.openai.com/v1".
	BaseURL string `yaml:"base_url"`

	// Model name passed on every completion request.
	Model string `yaml:"model"`

	// APIKeyEnv names the environment variable holding the API key.
	// Defaults to "LLM_API_KEY". Empty value is allowed for local models.
	APIKeyEnv string `yaml:"api_key_env"`

	// MaxTokens is the default completion budget when the caller does not
	// specify one.
	MaxTokens int `yaml:"max_tokens"`

	// Timeout bounds a single completion call.
	Timeout Duration `yaml:"timeout"`
}

// APIKey resolves the provider API key from the configured environment
// variable.
func (l *LLMConfig) APIKey() string {
	env := l.APIKeyEnv
	if env == "" {
		env = "LLM_API_KEY"
	}
	return os.Getenv(env)
}

// DefaultLLMConfig returns the built-in LLM defaults. Provider and model have
// no defaults: both are required and validated at startup.
func DefaultLLMConfig() *LLMConfig {
	return &LLMConfig{
		MaxTokens: 2048,
		Timeout:   Duration(120 * time.Second),
	}
}
