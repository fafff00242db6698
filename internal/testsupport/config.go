// Package testsupport provides shared constructors for tests that need a
// config, snapshot store, or playlist fixtures on disk.
package testsupport

import (
	"path/filepath"
	"testing"

	"playtally/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*config.Config)

// NewConfig produces a config seeded with unique temp directories per test.
// It defaults common fields and applies any provided options.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfg := config.Default()
	cfg.Paths.StatsDir = filepath.Join(base, "stats")
	cfg.Paths.LogDir = filepath.Join(base, "logs")

	for _, opt := range opts {
		opt(&cfg)
	}

	return &cfg
}

// WithTimezoneOffset sets the fixed header timezone on the test config.
func WithTimezoneOffset(hours int) ConfigOption {
	return func(cfg *config.Config) {
		cfg.Header.TimezoneOffsetHours = hours
	}
}

// WithExtensions overrides the scan extensions on the test config.
func WithExtensions(extensions ...string) ConfigOption {
	return func(cfg *config.Config) {
		cfg.Scan.Extensions = extensions
	}
}
