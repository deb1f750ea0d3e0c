package config

import "time"

// Built-in defaults applied when the YAML omits a value.
const (
	defaultTicketCacheTTL = 5 * time.Minute
	defaultTicketTimeout  = 30 * time.Second
	defaultStorageBucket  = "recap-uploads"
)
