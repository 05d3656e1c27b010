// Package logging assembles the structured slog loggers used across
// castfetch.
//
// It owns the console and JSON handlers, centralizes level and output
// plumbing, and provides a no-op logger for tests and wiring code that
// cannot fail. The logger is constructed once at process start and passed
// explicitly into every component that logs; there is no package-level
// default.
package logging
