package config

import (
	"errors"
	"fmt"
	"strings"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateLogging(); err != nil {
		return err
	}
	if err := c.validateFetch(); err != nil {
		return err
	}
	return c.validateSources()
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format must be \"console\" or \"json\", got %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be one of debug/info/warn/error, got %q", c.Logging.Level)
	}
	return nil
}

func (c *Config) validateFetch() error {
	switch c.Fetch.Mode {
	case "http", "curl":
	default:
		return fmt.Errorf("fetch.mode must be \"http\" or \"curl\", got %q", c.Fetch.Mode)
	}
	if c.Fetch.Mode == "curl" && c.Fetch.Binary == "" {
		return errors.New("fetch.binary must be set when fetch.mode is \"curl\"")
	}
	if c.Fetch.TimeoutSeconds <= 0 {
		return errors.New("fetch.timeout_seconds must be positive")
	}
	return nil
}

func (c *Config) validateSources() error {
	for name, src := range c.Sources {
		if strings.TrimSpace(name) == "" {
			return errors.New("source table name must not be empty")
		}
		if src.URL == "" {
			return fmt.Errorf("sources.%s: url is required", name)
		}
		if src.Path == "" {
			return fmt.Errorf("sources.%s: path is required", name)
		}
	}
	return nil
}
