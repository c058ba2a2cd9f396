// Package common provides shared utilities for the compliance service
package common

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	toml "github.com/pelletier/go-toml/v2"
)

// Config holds all configuration for the compliance service
type Config struct {
	Environment string        `toml:"environment"`
	Server      ServerConfig  `toml:"server"`
	Logging     LoggingConfig `toml:"logging"`
	API         APIConfig     `toml:"api"`
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Host         string `toml:"host"`
	Port         int    `toml:"port"`
	ReadTimeout  string `toml:"read_timeout"`
	WriteTimeout string `toml:"write_timeout"`
	IdleTimeout  string `toml:"idle_timeout"`
}

// Address returns host:port for the listener.
func (c *ServerConfig) Address() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// GetReadTimeout parses the read timeout, defaulting to 30s
func (c *ServerConfig) GetReadTimeout() time.Duration {
	return parseDuration(c.ReadTimeout, 30*time.Second)
}

// GetWriteTimeout parses the write timeout, defaulting to 60s
func (c *ServerConfig) GetWriteTimeout() time.Duration {
	return parseDuration(c.WriteTimeout, 60*time.Second)
}

// GetIdleTimeout parses the idle timeout, defaulting to 120s
func (c *ServerConfig) GetIdleTimeout() time.Duration {
	return parseDuration(c.IdleTimeout, 120*time.Second)
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"` // "console" or "json"; empty picks by environment
}

// APIConfig holds limits applied to the HTTP API
type APIConfig struct {
	RateLimit      float64  `toml:"rate_limit"` // requests per second, 0 disables
	Burst          int      `toml:"burst"`
	MaxBodyBytes   int64    `toml:"max_body_bytes"`
	AllowedOrigins []string `toml:"allowed_origins"`
}

// NewDefaultConfig returns a Config with sensible defaults
func NewDefaultConfig() *Config {
	return &Config{
		Environment: "development",
		Server: ServerConfig{
			Host:         "0.0.0.0",
			Port:         8080,
			ReadTimeout:  "30s",
			WriteTimeout: "60s",
			IdleTimeout:  "120s",
		},
		Logging: LoggingConfig{
			Level: "info",
		},
		API: APIConfig{
			RateLimit:      20,
			Burst:          40,
			MaxBodyBytes:   1 << 20,
			AllowedOrigins: []string{"*"},
		},
	}
}

// LoadConfig loads configuration from files with environment overrides.
// A .env file in the working directory is loaded first when present.
func LoadConfig(paths ...string) (*Config, error) {
	_ = godotenv.Load()

	config := NewDefaultConfig()

	// Later files override earlier ones
	for _, path := range paths {
		if path == "" {
			continue
		}

		if _, err := os.Stat(path); os.IsNotExist(err) {
			continue
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}

		if err := toml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}

	applyEnvOverrides(config)

	return config, nil
}

// applyEnvOverrides applies environment variable overrides to config
func applyEnvOverrides(config *Config) {
	if env := os.Getenv("VIRE_ENV"); env != "" {
		config.Environment = env
	}

	if host := os.Getenv("VIRE_HOST"); host != "" {
		config.Server.Host = host
	}

	if port := os.Getenv("VIRE_PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			config.Server.Port = p
		}
	}

	if level := os.Getenv("VIRE_LOG_LEVEL"); level != "" {
		config.Logging.Level = level
	}

	if format := os.Getenv("VIRE_LOG_FORMAT"); format != "" {
		config.Logging.Format = strings.ToLower(format)
	}

	if v := os.Getenv("VIRE_RATE_LIMIT"); v != "" {
		if r, err := strconv.ParseFloat(v, 64); err == nil && r >= 0 {
			config.API.RateLimit = r
		}
	}

	if v := os.Getenv("VIRE_RATE_BURST"); v != "" {
		if b, err := strconv.Atoi(v); err == nil && b > 0 {
			config.API.Burst = b
		}
	}

	if v := os.Getenv("VIRE_CORS_ORIGINS"); v != "" {
		var origins []string
		for _, o := range strings.Split(v, ",") {
			if o = strings.TrimSpace(o); o != "" {
				origins = append(origins, o)
			}
		}
		if len(origins) > 0 {
			config.API.AllowedOrigins = origins
		}
	}
}

// LogFormat resolves the log format. An explicit format wins; otherwise
// production logs JSON and everything else uses the console writer.
func (c *Config) LogFormat() string {
	if f := strings.ToLower(strings.TrimSpace(c.Logging.Format)); f != "" {
		return f
	}
	if c.IsProduction() {
		return "json"
	}
	return "console"
}

// IsProduction returns true if running in production mode
func (c *Config) IsProduction() bool {
	env := strings.ToLower(strings.TrimSpace(c.Environment))
	return env == "production" || env == "prod"
}

func parseDuration(s string, fallback time.Duration) time.Duration {
	d, err := time.ParseDuration(s)
	if err != nil || d <= 0 {
		return fallback
	}
	return d
}
