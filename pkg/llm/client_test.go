package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codeready-toolchain/recap/pkg/config"
)

func testLLMConfig(provider, baseURL string) *config.LLMConfig {
	return &config.LLMConfig{
		Provider:  provider,
		BaseURL:   baseURL,
		Model:     "test-model",
		MaxTokens: 512,
		Timeout:   config.Duration(5 * time.Second),
	}
}

func TestNewFromConfig(t *testing.T) {
	t.Run("selects openai-compat", func(t *testing.T) {
		client, err := NewFromConfig(testLLMConfig(config.LLMProviderOpenAICompat, "http://localhost:8000/v1"))
		require.NoError(t, err)
		assert.IsType(t, &OpenAICompatClient{}, client)
	})

	t.Run("selects ollama", func(t *testing.T) {
		client, err := NewFromConfig(testLLMConfig(config.LLMProviderOllama, "http://localhost:11434"))
		require.NoError(t, err)
		assert.IsType(t, &OllamaClient{}, client)
	})

	t.Run("rejects unknown provider", func(t *testing.T) {
		_, err := NewFromConfig(testLLMConfig("bedrock", "http://localhost"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unknown llm provider")
	})
}

func TestOpenAICompatClient_Complete(t *testing.T) {
	t.Run("returns completion text", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/v1/chat/completions", r.URL.Path)
			assert.Equal(t, "Bearer ", r.Header.Get("Authorization")[:7])

			var req oaiChatRequest
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			assert.Equal(t, "test-model", req.Model)
			assert.Equal(t, 256, req.MaxTokens)
			require.Len(t, req.Messages, 1)

			_ = json.NewEncoder(w).Encode(map[string]any{
				"choices": []map[string]any{
					{"message": map[string]any{"role": "assistant", "content": "  hello  "}},
				},
			})
		}))
		defer srv.Close()

		t.Setenv("LLM_API_KEY", "sk-test")
		client := NewOpenAICompatClient(testLLMConfig(config.LLMProviderOpenAICompat, srv.URL+"/v1"))

		text, err := client.Complete(context.Background(), "say hello", 256)
		require.NoError(t, err)
		assert.Equal(t, "hello", text)
	})

	t.Run("surfaces api error message", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusTooManyRequests)
			_ = json.NewEncoder(w).Encode(map[string]any{
				"error": map[string]any{"message": "rate limited", "type": "rate_limit"},
			})
		}))
		defer srv.Close()

		client := NewOpenAICompatClient(testLLMConfig(config.LLMProviderOpenAICompat, srv.URL+"/v1"))
		_, err := client.Complete(context.Background(), "prompt", 0)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "rate limited")
	})

	t.Run("empty choices is ErrEmptyResponse", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_ = json.NewEncoder(w).Encode(map[string]any{"choices": []any{}})
		}))
		defer srv.Close()

		client := NewOpenAICompatClient(testLLMConfig(config.LLMProviderOpenAICompat, srv.URL+"/v1"))
		_, err := client.Complete(context.Background(), "prompt", 0)
		assert.ErrorIs(t, err, ErrEmptyResponse)
	})

	t.Run("ping hits models route", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/v1/models", r.URL.Path)
			w.WriteHeader(http.StatusOK)
		}))
		defer srv.Close()

		client := NewOpenAICompatClient(testLLMConfig(config.LLMProviderOpenAICompat, srv.URL+"/v1"))
		assert.NoError(t, client.Ping(context.Background()))
	})
}

func TestOllamaClient_Complete(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/chat", r.URL.Path)

		var req ollamaChatRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.False(t, req.Stream)
		assert.Equal(t, 512, req.Options.NumPredict)

		_ = json.NewEncoder(w).Encode(map[string]any{
			"message": map[string]any{"role": "assistant", "content": "drafted"},
		})
	}))
	defer srv.Close()

	client := NewOllamaClient(testLLMConfig(config.LLMProviderOllama, srv.URL))
	text, err := client.Complete(context.Background(), "draft it", 0)
	require.NoError(t, err)
	assert.Equal(t, "drafted", text)
}
