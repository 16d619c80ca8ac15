// Package config provides configuration for the analytics server
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds the runtime configuration for the server and its upstream
// clients. Every field binds to a SANGAM_-prefixed environment variable.
type Config struct {
	// HTTP listen port
	Port int `mapstructure:"port"`

	// Upstream API credentials
	YouTubeAPIKey string `mapstructure:"youtube_api_key"`
	RawgAPIKey    string `mapstructure:"rawg_api_key"`

	// Snapshot cache. Empty disables caching.
	RedisURL string `mapstructure:"redis_url"`

	// Document store backend: "memory" or "dapr"
	StoreBackend string `mapstructure:"store_backend"`

	// Dapr state store component name, used when StoreBackend is "dapr"
	DaprStateStore string `mapstructure:"dapr_state_store"`

	// Comma-separated list of allowed CORS origins
	CORSOrigins string `mapstructure:"cors_origins"`

	// Log level: trace, debug, info, warn, error
	LogLevel string `mapstructure:"log_level"`
}

// Load reads configuration from the environment with sensible defaults.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("SANGAM")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("port", 8080)
	v.SetDefault("youtube_api_key", "")
	v.SetDefault("rawg_api_key", "")
	v.SetDefault("redis_url", "")
	v.SetDefault("store_backend", "memory")
	v.SetDefault("dapr_state_store", "statestore")
	v.SetDefault("cors_origins", "*")
	v.SetDefault("log_level", "info")

	// AutomaticEnv alone does not surface env values through Unmarshal, so
	// bind each key explicitly.
	for _, key := range []string{
		"port", "youtube_api_key", "rawg_api_key", "redis_url",
		"store_backend", "dapr_state_store", "cors_origins", "log_level",
	} {
		if err := v.BindEnv(key); err != nil {
			return nil, fmt.Errorf("failed to bind env for %s: %w", key, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	return &cfg, nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("invalid port %d", c.Port)
	}

	if c.YouTubeAPIKey == "" {
		return fmt.Errorf("youtube_api_key is required")
	}

	switch c.StoreBackend {
	case "memory", "dapr":
	default:
		return fmt.Errorf("invalid store_backend '%s', must be one of: memory, dapr", c.StoreBackend)
	}

	return nil
}
