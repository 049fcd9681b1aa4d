package logging

import (
	"io"
	"log/slog"
	"strings"
)

// Config holds logger construction settings.
type Config struct {
	Level string
}

// New creates a slog.Logger with a JSON handler writing to w. The level
// is parsed from the config; unknown or empty levels fall back to INFO.
func New(config Config, w io.Writer) *slog.Logger {
	level := parseLevel(config.Level)
	handler := slog.NewJSONHandler(w, &slog.HandlerOptions{
		AddSource:   false,
		Level:       level,
		ReplaceAttr: nil,
	})

	return slog.New(handler)
}

// Component returns the process default logger scoped with a component
// attribute. Packages log through this so one composition run can be
// filtered by stage.
func Component(name string) *slog.Logger {
	return slog.Default().With(slog.String("component", name))
}

func parseLevel(level string) slog.Level {
	switch strings.ToUpper(level) {
	case "DEBUG":
		return slog.LevelDebug
	case "INFO":
		return slog.LevelInfo
	case "WARN", "WARNING":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
