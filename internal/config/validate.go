package config

import (
	"errors"
	"fmt"

	"playtally/internal/textenc"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validatePaths(); err != nil {
		return err
	}
	if err := c.validateHeader(); err != nil {
		return err
	}
	if err := c.validateEncoding(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validatePaths() error {
	if c.Paths.StatsDir == "" {
		return errors.New("paths.stats_dir must be set")
	}
	return nil
}

func (c *Config) validateHeader() error {
	if c.Header.TimezoneOffsetHours < -12 || c.Header.TimezoneOffsetHours > 14 {
		return fmt.Errorf("header.timezone_offset_hours must be between -12 and 14, got %d", c.Header.TimezoneOffsetHours)
	}
	return nil
}

func (c *Config) validateEncoding() error {
	if !textenc.SupportedFallback(c.Encoding.Fallback) {
		return fmt.Errorf("encoding.fallback: unsupported charset %q", c.Encoding.Fallback)
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format must be console or json, got %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be debug, info, warn, or error, got %q", c.Logging.Level)
	}
	return nil
}
