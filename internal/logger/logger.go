package logger

import (
	"io"
	"log/slog"
	"os"

	"github.com/alkime/cotola/internal/config"
)

// SetupLogger configures structured logging based on environment.
func SetupLogger(cfg *config.Config) *slog.Logger {
	// Determine log level
	logLevel := slog.LevelInfo
	if cfg.Env == "development" {
		logLevel = slog.LevelDebug
	}
	if cfg.LogLevel == "debug" {
		logLevel = slog.LevelDebug
	}

	// Create JSON handler for structured logging
	//nolint:exhaustruct // Using default values for other HandlerOptions fields
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	})

	logger := slog.New(handler)

	// Set as default logger
	slog.SetDefault(logger)

	return logger
}

// SetupCLILogger returns a text logger for terminal commands. Output goes to w
// so it never mixes with generated text on stdout.
func SetupCLILogger(w io.Writer, verbose bool) *slog.Logger {
	logLevel := slog.LevelWarn
	if verbose {
		logLevel = slog.LevelDebug
	}

	//nolint:exhaustruct // Using default values for other HandlerOptions fields
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: logLevel,
	}))
}
