package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

const defaultConfigPath = "./config.yaml"

// Load assembles the configuration and validates it. Environment variables
// win over the YAML file, which wins over tag defaults.
//
// The file is looked up at CONFIG_PATH when set (and must then exist), or at
// ./config.yaml otherwise. A missing default file is fine: env plus defaults
// is a complete configuration source on its own.
func Load() (*Config, error) {
	var cfg Config

	path, fromEnv := os.LookupEnv("CONFIG_PATH")
	if !fromEnv || path == "" {
		fromEnv = false
		path = defaultConfigPath
	}

	_, statErr := os.Stat(path)
	switch {
	case statErr == nil:
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	case fromEnv:
		return nil, fmt.Errorf("config: file %s: %w", path, statErr)
	case errors.Is(statErr, fs.ErrNotExist):
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("config: read env: %w", err)
		}
	default:
		return nil, fmt.Errorf("config: stat %s: %w", path, statErr)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validate: %w", err)
	}
	return &cfg, nil
}
