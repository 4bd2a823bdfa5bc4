package config

import (
	"fmt"
	"net/url"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in 1..65535 (got %d)", c.Server.Port)
	}

	if err := validateBaseURL("listens.base_url", c.Listens.BaseURL); err != nil {
		return err
	}
	if err := validateBaseURL("sunlight.base_url", c.Sunlight.BaseURL); err != nil {
		return err
	}

	if c.Listens.Timeout <= 0 {
		return fmt.Errorf("listens.timeout must be > 0 (got %v)", c.Listens.Timeout)
	}
	if c.Sunlight.Timeout <= 0 {
		return fmt.Errorf("sunlight.timeout must be > 0 (got %v)", c.Sunlight.Timeout)
	}

	return nil
}

func validateBaseURL(name, raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("%s must be an http(s) URL (got %q)", name, raw)
	}
	if u.Host == "" {
		return fmt.Errorf("%s has no host (got %q)", name, raw)
	}
	return nil
}
