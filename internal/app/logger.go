package app

import (
	"log/slog"
	"os"
	"strings"

	"github.com/morningfm/front/internal/config"
)

// NewLogger builds the process logger from LogConfig and installs it as
// slog's default. Format "json" is for production; anything else falls back
// to text with source locations, which reads better during development.
// Everything goes to stderr.
func NewLogger(cfg config.LogConfig) *slog.Logger {
	jsonFormat := strings.EqualFold(cfg.Format, "json")

	opts := &slog.HandlerOptions{
		Level:     parseLevel(cfg.Level),
		AddSource: !jsonFormat,
	}

	var h slog.Handler = slog.NewTextHandler(os.Stderr, opts)
	if jsonFormat {
		h = slog.NewJSONHandler(os.Stderr, opts)
	}

	logger := slog.New(h)
	slog.SetDefault(logger)
	return logger
}

// parseLevel maps a config string to a slog level. Unknown values mean info.
func parseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
