package config

import (
	"fmt"
	"net/url"
	"time"

	"github.com/caarlos0/env/v10"
)

// Config holds all configuration for the news proxy
type Config struct {
	// Server configuration
	HTTPPort int    `env:"NEWSPROXY_HTTP_PORT" envDefault:"8080"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	// Hosting platforms inject the port to listen on; it overrides HTTPPort
	PlatformPort int `env:"PORT"`

	// NewsAPI configuration
	NewsAPI NewsAPIConfig

	// Timeouts
	Timeouts TimeoutConfig
}

// NewsAPIConfig holds upstream NewsAPI configuration
type NewsAPIConfig struct {
	APIKey    string `env:"NEWS_API_KEY,unset"`
	BaseURL   string `env:"NEWS_API_BASE_URL" envDefault:"https://newsapi.org"`
	UserAgent string `env:"NEWS_API_USER_AGENT" envDefault:"newsproxy"`

	// Zero keeps the HTTP client default of no timeout
	Timeout time.Duration `env:"NEWS_API_TIMEOUT" envDefault:"0s"`
}

// TimeoutConfig holds server timeout configuration
type TimeoutConfig struct {
	ReadHeaderTimeout time.Duration `env:"TIMEOUT_READ_HEADER" envDefault:"10s"`
	ShutdownTimeout   time.Duration `env:"TIMEOUT_SHUTDOWN" envDefault:"30s"`
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if cfg.PlatformPort != 0 {
		cfg.HTTPPort = cfg.PlatformPort
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	// Validate server port
	if c.HTTPPort < 1 || c.HTTPPort > 65535 {
		return fmt.Errorf("invalid HTTP port: %d", c.HTTPPort)
	}

	// Validate NewsAPI config
	if c.NewsAPI.APIKey == "" {
		return fmt.Errorf("NewsAPI key is required (set NEWS_API_KEY)")
	}
	u, err := url.Parse(c.NewsAPI.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("invalid NewsAPI base URL: %q", c.NewsAPI.BaseURL)
	}
	if c.NewsAPI.Timeout < 0 {
		return fmt.Errorf("NewsAPI timeout must not be negative")
	}

	// Validate log level
	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLogLevels[c.LogLevel] {
		return fmt.Errorf("invalid log level: %s (must be debug, info, warn, or error)", c.LogLevel)
	}

	return nil
}

// GetHTTPAddr returns the HTTP server address
func (c *Config) GetHTTPAddr() string {
	return fmt.Sprintf(":%d", c.HTTPPort)
}
