package logger

import (
	"log/slog"
	"os"
	"strings"

	"github.com/skillpath/skillpath-api/internal/config"
)

// Setup initializes the application's logging system based on the provided
// configuration. It creates a structured JSON logger with the appropriate
// log level and sets it as the default logger for the application.
func Setup(cfg config.ServerConfig) (*slog.Logger, error) {
	var level slog.Level
	switch strings.ToLower(cfg.LogLevel) {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo

		tmpLogger := slog.New(slog.NewTextHandler(os.Stderr, nil))
		tmpLogger.Warn("invalid log level configured, using default level",
			"configured_level", cfg.LogLevel,
			"default_level", "info")
	}

	opts := &slog.HandlerOptions{
		Level: level,
	}

	handler := slog.NewJSONHandler(os.Stdout, opts)
	logger := slog.New(handler)

	// Set as default so package-level slog functions use it too.
	slog.SetDefault(logger)

	return logger, nil
}
