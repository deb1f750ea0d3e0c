package config

import "time"

// RetentionConfig controls background deletion of old import sessions.
// Sessions are purged only once every item in them is terminal; the raw
// uploaded documents are removed from object storage along with them.
type RetentionConfig struct {
	// SessionRetentionDays is how long finished import sessions are kept.
	// Zero or negative disables retention cleanup entirely.
	SessionRetentionDays int `yaml:"session_retention_days"`

	// CleanupInterval is how often the retention pass runs.
	CleanupInterval Duration `yaml:"cleanup_interval"`
}

// DefaultRetentionConfig returns the built-in retention defaults.
func DefaultRetentionConfig() *RetentionConfig {
	return &RetentionConfig{
		SessionRetentionDays: 90,
		CleanupInterval:      Duration(1 * time.Hour),
	}
}

// Enabled reports whether retention cleanup should run at all.
func (r *RetentionConfig) Enabled() bool {
	return r.SessionRetentionDays > 0
}
