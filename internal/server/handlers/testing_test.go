package handlers

import (
	"log/slog"
	"os"
)

// newTestLogger creates a logger for testing, noisy levels suppressed
func newTestLogger() *slog.Logger {
	opts := &slog.HandlerOptions{
		Level: slog.LevelError,
	}
	return slog.New(slog.NewTextHandler(os.Stdout, opts))
}
