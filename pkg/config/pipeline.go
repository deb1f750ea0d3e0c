package config

import "time"

// PipelineConfig contains worker pool configuration for the import pipeline.
// These values control how items are polled, claimed, and processed.
type PipelineConfig struct {
	// WorkerCount is the number of worker goroutines.
	// Each worker independently polls for runnable items.
	WorkerCount int `yaml:"worker_count"`

	// MaxConcurrentItems limits how many items may be mid-stage at once,
	// enforced by a database COUNT(*) check before claiming.
	MaxConcurrentItems int `yaml:"max_concurrent_items"`

	// PollInterval is the base interval for checking runnable items.
	PollInterval Duration `yaml:"poll_interval"`

	// PollIntervalJitter is the random jitter added to PollInterval.
	// Actual interval: PollInterval ± PollIntervalJitter.
	PollIntervalJitter Duration `yaml:"poll_interval_jitter"`

	// StageTimeout bounds a single stage invocation. A stage that exceeds it
	// is treated as a failure of that stage.
	StageTimeout Duration `yaml:"stage_timeout"`

	// GracefulShutdownTimeout is the max time to wait for in-flight stages
	// to complete during shutdown.
	GracefulShutdownTimeout Duration `yaml:"graceful_shutdown_timeout"`
}

// DefaultPipelineConfig returns the built-in pipeline defaults.
func DefaultPipelineConfig() *PipelineConfig {
	return &PipelineConfig{
		WorkerCount:             4,
		MaxConcurrentItems:      8,
		PollInterval:            Duration(1 * time.Second),
		PollIntervalJitter:      Duration(500 * time.Millisecond),
		StageTimeout:            Duration(2 * time.Minute),
		GracefulShutdownTimeout: Duration(2 * time.Minute),
	}
}
