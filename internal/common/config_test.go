package common

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig_Defaults(t *testing.T) {
	cfg := NewDefaultConfig()
	if cfg.Server.Port != 8080 {
		t.Errorf("Server.Port default = %d, want %d", cfg.Server.Port, 8080)
	}
	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, "0.0.0.0:8080", cfg.Server.Address())
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Empty(t, cfg.Logging.Format)
	assert.Equal(t, "console", cfg.LogFormat())
	assert.Equal(t, 20.0, cfg.API.RateLimit)
	assert.Equal(t, 40, cfg.API.Burst)
	assert.Equal(t, int64(1<<20), cfg.API.MaxBodyBytes)
	assert.False(t, cfg.IsProduction())
}

func TestConfig_PortEnvOverride(t *testing.T) {
	t.Setenv("VIRE_PORT", "9090")

	cfg := NewDefaultConfig()
	applyEnvOverrides(cfg)

	if cfg.Server.Port != 9090 {
		t.Errorf("Server.Port = %d after env override, want %d", cfg.Server.Port, 9090)
	}
}

func TestConfig_InvalidPortEnvIgnored(t *testing.T) {
	t.Setenv("VIRE_PORT", "not-a-port")

	cfg := NewDefaultConfig()
	applyEnvOverrides(cfg)

	assert.Equal(t, 8080, cfg.Server.Port)
}

func TestConfig_EnvOverrides(t *testing.T) {
	t.Setenv("VIRE_ENV", "production")
	t.Setenv("VIRE_HOST", "127.0.0.1")
	t.Setenv("VIRE_LOG_LEVEL", "debug")
	t.Setenv("VIRE_LOG_FORMAT", "JSON")
	t.Setenv("VIRE_RATE_LIMIT", "5.5")
	t.Setenv("VIRE_RATE_BURST", "11")
	t.Setenv("VIRE_CORS_ORIGINS", "https://a.example, https://b.example,")

	cfg := NewDefaultConfig()
	applyEnvOverrides(cfg)

	assert.True(t, cfg.IsProduction())
	assert.Equal(t, "127.0.0.1", cfg.Server.Host)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.Equal(t, 5.5, cfg.API.RateLimit)
	assert.Equal(t, 11, cfg.API.Burst)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.API.AllowedOrigins)
}

func TestConfig_NegativeRateLimitIgnored(t *testing.T) {
	t.Setenv("VIRE_RATE_LIMIT", "-1")

	cfg := NewDefaultConfig()
	applyEnvOverrides(cfg)

	assert.Equal(t, 20.0, cfg.API.RateLimit)
}

func TestLoadConfig_FileThenEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "vire-compliance.toml")
	content := `
environment = "staging"

[server]
host = "localhost"
port = 7000
read_timeout = "5s"

[logging]
level = "warn"

[api]
rate_limit = 2
burst = 3
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	t.Setenv("VIRE_PORT", "7001")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "staging", cfg.Environment)
	assert.Equal(t, "localhost", cfg.Server.Host)
	assert.Equal(t, 7001, cfg.Server.Port, "env overrides file")
	assert.Equal(t, 5*time.Second, cfg.Server.GetReadTimeout())
	assert.Equal(t, 60*time.Second, cfg.Server.GetWriteTimeout(), "unset keys keep defaults")
	assert.Equal(t, "warn", cfg.Logging.Level)
	assert.Equal(t, 2.0, cfg.API.RateLimit)
	assert.Equal(t, 3, cfg.API.Burst)
}

func TestLoadConfig_LaterFileWins(t *testing.T) {
	dir := t.TempDir()
	base := filepath.Join(dir, "base.toml")
	local := filepath.Join(dir, "local.toml")
	require.NoError(t, os.WriteFile(base, []byte("[server]\nport = 1111\nhost = \"base\"\n"), 0o600))
	require.NoError(t, os.WriteFile(local, []byte("[server]\nport = 2222\n"), 0o600))

	cfg, err := LoadConfig(base, local)
	require.NoError(t, err)

	assert.Equal(t, 2222, cfg.Server.Port)
	assert.Equal(t, "base", cfg.Server.Host)
}

func TestLoadConfig_MissingFileSkipped(t *testing.T) {
	cfg, err := LoadConfig("", filepath.Join(t.TempDir(), "absent.toml"))
	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.Server.Port)
}

func TestLoadConfig_InvalidTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.toml")
	require.NoError(t, os.WriteFile(path, []byte("[server\nport = "), 0o600))

	_, err := LoadConfig(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config file")
}

func TestServerConfig_BadTimeoutFallsBack(t *testing.T) {
	s := ServerConfig{ReadTimeout: "soon", IdleTimeout: "-3s"}
	assert.Equal(t, 30*time.Second, s.GetReadTimeout())
	assert.Equal(t, 120*time.Second, s.GetIdleTimeout())
}

func TestConfig_LogFormat(t *testing.T) {
	tests := []struct {
		env, format, want string
	}{
		{"development", "", "console"},
		{"production", "", "json"},
		{"prod", "", "json"},
		{"production", "console", "console"},
		{"development", " JSON ", "json"},
	}
	for _, tt := range tests {
		cfg := NewDefaultConfig()
		cfg.Environment = tt.env
		cfg.Logging.Format = tt.format
		assert.Equal(t, tt.want, cfg.LogFormat(), "env=%q format=%q", tt.env, tt.format)
	}
}
