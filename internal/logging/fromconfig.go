package logging

import (
	"log/slog"

	"castfetch/internal/config"
)

// NewFromConfig creates the process logger from application config. Output
// goes to stderr plus the configured log file.
func NewFromConfig(cfg *config.Config) (*slog.Logger, error) {
	if cfg == nil {
		return New(Options{Level: "info", Format: "console", OutputPaths: []string{"stderr"}})
	}
	outputs := []string{"stderr"}
	if cfg.Logging.Path != "" {
		outputs = append(outputs, cfg.Logging.Path)
	}
	return New(Options{
		Level:       cfg.Logging.Level,
		Format:      cfg.Logging.Format,
		OutputPaths: outputs,
	})
}
