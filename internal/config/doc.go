// Package config loads, normalizes, and validates playtally configuration.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), and reads TOML files. The Config type centralizes every knob
// the CLI needs: the snapshot stats directory, scan extensions, the fixed
// header timezone, the legacy encoding fallback, and log routing.
//
// Always obtain settings through this package so downstream code receives
// sanitized paths, a canonical timezone, and clear validation errors.
package config
