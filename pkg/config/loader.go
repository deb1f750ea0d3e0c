package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"dario.cat/mergo"
	"gopkg.in/yaml.v3"
)

// recapYAML represents the complete recap.yaml file structure.
type recapYAML struct {
	System    *SystemConfig    `yaml:"system"`
	LLM       *LLMConfig       `yaml:"llm"`
	Pipeline  *PipelineConfig  `yaml:"pipeline"`
	Retention *RetentionConfig `yaml:"retention"`
}

// Initialize loads, validates, and returns ready-to-use configuration.
// This is the primary entry point for configuration loading.
//
// Steps performed:
//  1. Read recap.yaml from configDir
//  2. Expand environment variables ({{.VAR}} syntax)
//  3. Parse YAML into structs
//  4. Merge user values over built-in defaults
//  5. Validate the result
func Initialize(configDir string) (*Config, error) {
	path := filepath.Join(configDir, "recap.yaml")

	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &LoadError{File: path, Err: ErrConfigNotFound}
		}
		return nil, &LoadError{File: path, Err: err}
	}

	raw = ExpandEnv(raw)

	var parsed recapYAML
	if err := yaml.Unmarshal(raw, &parsed); err != nil {
		return nil, &LoadError{File: path, Err: fmt.Errorf("%w: %v", ErrInvalidYAML, err)}
	}

	cfg := &Config{
		configDir: configDir,
		System:    &SystemConfig{},
		LLM:       DefaultLLMConfig(),
		Pipeline:  DefaultPipelineConfig(),
		Retention: DefaultRetentionConfig(),
	}

	if parsed.System != nil {
		cfg.System = parsed.System
	}
	if parsed.LLM != nil {
		if err := mergo.Merge(cfg.LLM, parsed.LLM, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("merge llm config: %w", err)
		}
	}
	if parsed.Pipeline != nil {
		if err := mergo.Merge(cfg.Pipeline, parsed.Pipeline, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("merge pipeline config: %w", err)
		}
	}
	if parsed.Retention != nil {
		if err := mergo.Merge(cfg.Retention, parsed.Retention, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("merge retention config: %w", err)
		}
	}

	applySystemDefaults(cfg.System)

	if err := Validate(cfg); err != nil {
		return nil, err
	}

	slog.Info("Configuration loaded",
		"config_dir", configDir,
		"llm_provider", cfg.LLM.Provider,
		"workers", cfg.Pipeline.WorkerCount)

	return cfg, nil
}

func applySystemDefaults(sys *SystemConfig) {
	if sys.Ticketing == nil {
		sys.Ticketing = &TicketingConfig{}
	}
	if sys.Ticketing.CacheTTL <= 0 {
		sys.Ticketing.CacheTTL = Duration(defaultTicketCacheTTL)
	}
	if sys.Ticketing.Timeout <= 0 {
		sys.Ticketing.Timeout = Duration(defaultTicketTimeout)
	}
	if sys.Storage == nil {
		sys.Storage = &StorageConfig{}
	}
	if sys.Storage.Bucket == "" {
		sys.Storage.Bucket = defaultStorageBucket
	}
}
