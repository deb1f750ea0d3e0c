// Package config loads and validates the recap configuration directory.
package config

// Config is the umbrella configuration object returned by Initialize()
// and threaded through the application.
type Config struct {
	configDir string

	System    *SystemConfig
	LLM       *LLMConfig
	Pipeline  *PipelineConfig
	Retention *RetentionConfig
}

// ConfigDir returns the configuration directory path.
func (c *Config) ConfigDir() string {
	return c.configDir
}
