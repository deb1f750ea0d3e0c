package config

import (
	"errors"
	"fmt"
)

// Validate checks the merged configuration for missing or contradictory
// values. All problems are collected and reported together.
func Validate(cfg *Config) error {
	var errs []error

	errs = append(errs, validateLLM(cfg.LLM)...)
	errs = append(errs, validatePipeline(cfg.Pipeline)...)
	errs = append(errs, validateSystem(cfg.System)...)

	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrValidationFailed, errors.Join(errs...))
	}
	return nil
}

// validateLLM enforces that the completion capability is fully configured.
// An unusable completion capability is a fatal startup error, never a
// per-item failure.
func validateLLM(llm *LLMConfig) []error {
	var errs []error
	if llm.Provider == "" {
		errs = append(errs, NewValidationError("llm", "provider", ErrMissingRequiredField))
	} else if llm.Provider != LLMProviderOpenAICompat && llm.Provider != LLMProviderOllama {
		errs = append(errs, NewValidationError("llm", "provider",
			fmt.Errorf("%w: %q (want %q or %q)", ErrInvalidValue, llm.Provider,
				LLMProviderOpenAICompat, LLMProviderOllama)))
	}
	if llm.BaseURL == "" {
		errs = append(errs, NewValidationError("llm", "base_url", ErrMissingRequiredField))
	}
	if llm.Model == "" {
		errs = append(errs, NewValidationError("llm", "model", ErrMissingRequiredField))
	}
	if llm.MaxTokens <= 0 {
		errs = append(errs, NewValidationError("llm", "max_tokens",
			fmt.Errorf("%w: must be positive", ErrInvalidValue)))
	}
	return errs
}

func validatePipeline(p *PipelineConfig) []error {
	var errs []error
	if p.WorkerCount <= 0 {
		errs = append(errs, NewValidationError("pipeline", "worker_count",
			fmt.Errorf("%w: must be positive", ErrInvalidValue)))
	}
	if p.MaxConcurrentItems <= 0 {
		errs = append(errs, NewValidationError("pipeline", "max_concurrent_items",
			fmt.Errorf("%w: must be positive", ErrInvalidValue)))
	}
	if p.StageTimeout <= 0 {
		errs = append(errs, NewValidationError("pipeline", "stage_timeout",
			fmt.Errorf("%w: must be positive", ErrInvalidValue)))
	}
	return errs
}

func validateSystem(sys *SystemConfig) []error {
	var errs []error
	if sys.Storage != nil && sys.Storage.Endpoint != "" && sys.Storage.Bucket == "" {
		errs = append(errs, NewValidationError("storage", "bucket", ErrMissingRequiredField))
	}
	return errs
}
