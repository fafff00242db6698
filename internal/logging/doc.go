// Package logging assembles the structured slog loggers used across
// playtally commands.
//
// It owns the console and JSON handlers, centralizes level and output
// plumbing, and exposes context helpers so run code automatically tags log
// lines with run IDs and file paths. A no-op logger is provided for tests
// and wiring code that cannot fail.
//
// Prefer these constructors over hand-rolled slog setup so every component
// emits data with the same shape.
package logging
