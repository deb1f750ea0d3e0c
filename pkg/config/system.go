package config

import "os"

// SystemConfig groups system-wide infrastructure settings.
type SystemConfig struct {
	Ticketing *TicketingConfig `yaml:"ticketing"`
	Storage   *StorageConfig   `yaml:"storage"`
}

// TicketingConfig holds external ticketing system lookup settings.
// BaseURL empty disables cross-referencing entirely; the lookup stage then
// behaves as a permanent not-found.
type TicketingConfig struct {
	BaseURL  string   `yaml:"base_url"`
	TokenEnv string   `yaml:"token_env"` // Defaults to "TICKET_API_TOKEN"
	CacheTTL Duration `yaml:"cache_ttl"`
	Timeout  Duration `yaml:"timeout"`
}

// Token resolves the ticketing API token from the configured environment
// variable. Empty means unauthenticated.
func (t *TicketingConfig) Token() string {
	env := t.TokenEnv
	if env == "" {
		env = "TICKET_API_TOKEN"
	}
	return os.Getenv(env)
}

// StorageConfig holds object storage settings for uploaded documents.
type StorageConfig struct {
	Endpoint     string `yaml:"endpoint"`
	Bucket       string `yaml:"bucket"`
	AccessKeyEnv string `yaml:"access_key_env"` // Defaults to "STORAGE_ACCESS_KEY"
	SecretKeyEnv string `yaml:"secret_key_env"` // Defaults to "STORAGE_SECRET_KEY"
	UseSSL       bool   `yaml:"use_ssl"`
}

// AccessKey resolves the object storage access key from the environment.
func (s *StorageConfig) AccessKey() string {
	env := s.AccessKeyEnv
	if env == "" {
		env = "STORAGE_ACCESS_KEY"
	}
	return os.Getenv(env)
}

// SecretKey resolves the object storage secret key from the environment.
func (s *StorageConfig) SecretKey() string {
	env := s.SecretKeyEnv
	if env == "" {
		env = "STORAGE_SECRET_KEY"
	}
	return os.Getenv(env)
}
