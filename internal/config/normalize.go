package config

import (
	"path/filepath"
	"strings"
)

// normalize expands and cleans every path field and fills derived defaults.
func (c *Config) normalize() error {
	var err error
	if c.Paths.LogDir, err = expandPath(strings.TrimSpace(c.Paths.LogDir)); err != nil {
		return err
	}

	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if path := strings.TrimSpace(c.Logging.Path); path != "" {
		if c.Logging.Path, err = expandPath(path); err != nil {
			return err
		}
	} else {
		c.Logging.Path = filepath.Join(c.Paths.LogDir, "castfetch.log")
	}

	c.Fetch.Mode = strings.ToLower(strings.TrimSpace(c.Fetch.Mode))
	c.Fetch.Binary = strings.TrimSpace(c.Fetch.Binary)

	if path := strings.TrimSpace(c.History.Path); path != "" {
		if c.History.Path, err = expandPath(path); err != nil {
			return err
		}
	} else {
		c.History.Path = filepath.Join(c.Paths.LogDir, "history.db")
	}

	for name, src := range c.Sources {
		src.URL = strings.TrimSpace(src.URL)
		src.Filename = strings.TrimSpace(src.Filename)
		if src.Path, err = expandPath(strings.TrimSpace(src.Path)); err != nil {
			return err
		}
		c.Sources[name] = src
	}
	return nil
}
