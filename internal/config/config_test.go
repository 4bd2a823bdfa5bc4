package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func chdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { require.NoError(t, os.Chdir(wd)) })
}

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("LISTENS_BASE_URL", "http://listens.svc:8000")
	t.Setenv("LISTENS_API_KEY", "listens-key")
	t.Setenv("SUNLIGHT_BASE_URL", "http://sunlight.svc:8000")
	t.Setenv("SUNLIGHT_API_KEY", "sunlight-key")
	t.Setenv("SPOTIFY_CLIENT_ID", "client-id")
	t.Setenv("SPOTIFY_CLIENT_SECRET", "client-secret")
}

func TestLoadFromEnvWithDefaults(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("CONFIG_PATH", "")
	os.Unsetenv("CONFIG_PATH")
	chdir(t, t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "http://listens.svc:8000", cfg.Listens.BaseURL)
	assert.Equal(t, 10*time.Second, cfg.Listens.Timeout)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.False(t, cfg.GraphQL.PlaygroundEnabled)
	assert.Equal(t, "*", cfg.CORS.AllowedOrigins)
}

func TestLoadFromYAMLFile(t *testing.T) {
	setRequiredEnv(t)

	path := filepath.Join(t.TempDir(), "config.yaml")
	yaml := `
server:
  port: 9090
graphql:
  playground_enabled: true
log:
  level: debug
  format: text
`
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o600))
	t.Setenv("CONFIG_PATH", path)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.True(t, cfg.GraphQL.PlaygroundEnabled)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoadEnvOverridesFile(t *testing.T) {
	setRequiredEnv(t)

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server:\n  port: 9090\n"), 0o600))
	t.Setenv("CONFIG_PATH", path)
	t.Setenv("SERVER_PORT", "7070")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 7070, cfg.Server.Port, "env must win over file")
}

func TestLoadMissingExplicitFile(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("CONFIG_PATH", filepath.Join(t.TempDir(), "nope.yaml"))

	_, err := Load()
	require.Error(t, err)
}

func TestLoadMissingRequired(t *testing.T) {
	setRequiredEnv(t)
	os.Unsetenv("SPOTIFY_CLIENT_SECRET")
	chdir(t, t.TempDir())

	_, err := Load()
	require.Error(t, err)
}

func validConfig() *Config {
	return &Config{
		Server: ServerConfig{Port: 8080},
		Listens: ListensConfig{
			BaseURL: "http://listens.svc:8000",
			APIKey:  "k",
			Timeout: 10 * time.Second,
		},
		Sunlight: SunlightConfig{
			BaseURL: "https://sunlight.svc",
			APIKey:  "k",
			Timeout: 10 * time.Second,
		},
	}
}

func TestValidate(t *testing.T) {
	t.Parallel()

	require.NoError(t, validConfig().Validate())

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"port too low", func(c *Config) { c.Server.Port = 0 }},
		{"port too high", func(c *Config) { c.Server.Port = 70000 }},
		{"listens url not http", func(c *Config) { c.Listens.BaseURL = "ftp://listens.svc" }},
		{"listens url no host", func(c *Config) { c.Listens.BaseURL = "http://" }},
		{"sunlight url not http", func(c *Config) { c.Sunlight.BaseURL = "listens.svc:8000" }},
		{"listens timeout zero", func(c *Config) { c.Listens.Timeout = 0 }},
		{"sunlight timeout negative", func(c *Config) { c.Sunlight.Timeout = -time.Second }},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg := validConfig()
			tt.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}
