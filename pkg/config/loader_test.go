package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	err := os.WriteFile(filepath.Join(dir, "recap.yaml"), []byte(content), 0o600)
	require.NoError(t, err)
	return dir
}

func TestInitialize(t *testing.T) {
	t.Run("loads a complete config", func(t *testing.T) {
		dir := writeConfig(t, `
llm:
  provider: openai-compat
  base_url: http://localhost:8000/v1
  model: test-model
  max_tokens: 1024
  timeout: 90s
pipeline:
  worker_count: 2
  poll_interval: 250ms
system:
  ticketing:
    base_url: https://tickets.example.com
    cache_ttl: 1m
`)
		cfg, err := Initialize(dir)
		require.NoError(t, err)

		assert.Equal(t, LLMProviderOpenAICompat, cfg.LLM.Provider)
		assert.Equal(t, "test-model", cfg.LLM.Model)
		assert.Equal(t, 1024, cfg.LLM.MaxTokens)
		assert.Equal(t, 90*time.Second, cfg.LLM.Timeout.Std())
		assert.Equal(t, 2, cfg.Pipeline.WorkerCount)
		assert.Equal(t, 250*time.Millisecond, cfg.Pipeline.PollInterval.Std())
		assert.Equal(t, "https://tickets.example.com", cfg.System.Ticketing.BaseURL)
		assert.Equal(t, time.Minute, cfg.System.Ticketing.CacheTTL.Std())
	})

	t.Run("applies defaults over omitted values", func(t *testing.T) {
		dir := writeConfig(t, `
llm:
  provider: ollama
  base_url: http://localhost:11434
  model: llama3
`)
		cfg, err := Initialize(dir)
		require.NoError(t, err)

		defaults := DefaultPipelineConfig()
		assert.Equal(t, defaults.WorkerCount, cfg.Pipeline.WorkerCount)
		assert.Equal(t, defaults.StageTimeout, cfg.Pipeline.StageTimeout)
		assert.Equal(t, 2048, cfg.LLM.MaxTokens)
		assert.Equal(t, defaultStorageBucket, cfg.System.Storage.Bucket)
		assert.Equal(t, defaultTicketCacheTTL, cfg.System.Ticketing.CacheTTL.Std())
	})

	t.Run("expands environment variables", func(t *testing.T) {
		t.Setenv("RECAP_TEST_LLM_URL", "http://llm.internal:8000/v1")
		dir := writeConfig(t, `
llm:
  provider: openai-compat
  base_url: "{{.RECAP_TEST_LLM_URL}}"
  model: test-model
`)
		cfg, err := Initialize(dir)
		require.NoError(t, err)
		assert.Equal(t, "http://llm.internal:8000/v1", cfg.LLM.BaseURL)
	})

	t.Run("missing file returns ErrConfigNotFound", func(t *testing.T) {
		_, err := Initialize(t.TempDir())
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrConfigNotFound)
	})

	t.Run("invalid YAML returns ErrInvalidYAML", func(t *testing.T) {
		dir := writeConfig(t, "llm: [unclosed")
		_, err := Initialize(dir)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalidYAML)
	})

	t.Run("missing provider fails validation", func(t *testing.T) {
		dir := writeConfig(t, `
llm:
  base_url: http://localhost:8000/v1
  model: test-model
`)
		_, err := Initialize(dir)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrValidationFailed)
		assert.ErrorIs(t, err, ErrMissingRequiredField)
	})

	t.Run("unknown provider fails validation", func(t *testing.T) {
		dir := writeConfig(t, `
llm:
  provider: anthropic-magic
  base_url: http://localhost:8000/v1
  model: test-model
`)
		_, err := Initialize(dir)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalidValue)
	})
}
