package logging

import (
	"context"
	"log/slog"
)

// Standardized structured logging keys shared by all components.
const (
	// FieldComponent names the subsystem emitting the record.
	FieldComponent = "component"
	// FieldSource carries the configured source name being synced.
	FieldSource = "source"
	// FieldRunID correlates all records of one sync pass.
	FieldRunID = "run_id"
	// FieldURL carries a feed or enclosure URL.
	FieldURL = "url"
	// FieldPath carries a local file path.
	FieldPath = "path"
)

// Error wraps an error as a standard "error" attribute.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.String("error", "<nil>")
	}
	return slog.Any("error", err)
}

// WithComponent returns a logger tagged with a standardized component
// attribute. A nil logger yields a no-op logger.
func WithComponent(logger *slog.Logger, component string) *slog.Logger {
	if logger == nil {
		logger = NewNop()
	}
	return logger.With(slog.String(FieldComponent, component))
}

// NewNop returns a logger that discards everything.
func NewNop() *slog.Logger {
	return slog.New(NoopHandler{})
}

// NoopHandler discards all log output.
type NoopHandler struct{}

func (NoopHandler) Enabled(context.Context, slog.Level) bool { return false }

func (NoopHandler) Handle(context.Context, slog.Record) error { return nil }

func (NoopHandler) WithAttrs([]slog.Attr) slog.Handler { return NoopHandler{} }

func (NoopHandler) WithGroup(string) slog.Handler { return NoopHandler{} }
