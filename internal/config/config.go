package config

import "time"

// Config is the root application configuration.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Listens  ListensConfig  `yaml:"listens"`
	Sunlight SunlightConfig `yaml:"sunlight"`
	Spotify  SpotifyConfig  `yaml:"spotify"`
	GraphQL  GraphQLConfig  `yaml:"graphql"`
	Log      LogConfig      `yaml:"log"`
	CORS     CORSConfig     `yaml:"cors"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// ListensConfig holds listens service settings.
type ListensConfig struct {
	BaseURL string        `yaml:"base_url" env:"LISTENS_BASE_URL" env-required:"true"`
	APIKey  string        `yaml:"api_key"  env:"LISTENS_API_KEY"  env-required:"true"`
	Timeout time.Duration `yaml:"timeout"  env:"LISTENS_TIMEOUT"  env-default:"10s"`
}

// SunlightConfig holds sunlight service settings.
type SunlightConfig struct {
	BaseURL string        `yaml:"base_url" env:"SUNLIGHT_BASE_URL" env-required:"true"`
	APIKey  string        `yaml:"api_key"  env:"SUNLIGHT_API_KEY"  env-required:"true"`
	Timeout time.Duration `yaml:"timeout"  env:"SUNLIGHT_TIMEOUT"  env-default:"10s"`
}

// SpotifyConfig holds Spotify API credentials.
type SpotifyConfig struct {
	ClientID     string `yaml:"client_id"     env:"SPOTIFY_CLIENT_ID"     env-required:"true"`
	ClientSecret string `yaml:"client_secret" env:"SPOTIFY_CLIENT_SECRET" env-required:"true"`
}

// GraphQLConfig holds GraphQL server settings.
type GraphQLConfig struct {
	PlaygroundEnabled bool `yaml:"playground_enabled" env:"GRAPHQL_PLAYGROUND_ENABLED" env-default:"false"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins string `yaml:"allowed_origins" env:"CORS_ALLOWED_ORIGINS" env-default:"*"`
	AllowedMethods string `yaml:"allowed_methods" env:"CORS_ALLOWED_METHODS" env-default:"GET,POST,OPTIONS"`
	AllowedHeaders string `yaml:"allowed_headers" env:"CORS_ALLOWED_HEADERS" env-default:"Content-Type"`
	MaxAge         int    `yaml:"max_age"         env:"CORS_MAX_AGE"         env-default:"86400"`
}
