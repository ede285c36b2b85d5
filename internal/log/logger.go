// Package log centralizes slog setup and the canonical structured-logging
// field names used across the tracker.
package log

import (
	"log/slog"
	"os"
)

// Setup initializes the process-wide text logger at the given level and
// returns it.
func Setup(level slog.Level) *slog.Logger {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)
	return logger
}

// WithComponent returns a logger tagged with a component name.
func WithComponent(logger *slog.Logger, component string) *slog.Logger {
	return logger.With(FieldComponent, component)
}
