package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/lmittmann/tint"
)

// ParseLevel converts a textual log level into a slog level. Unknown values map to info.
func ParseLevel(value string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// New builds the process logger on stdout and installs it as the slog default.
func New(logFormat, logLevel string) *slog.Logger {
	logger := slog.New(NewHandler(os.Stdout, logFormat, ParseLevel(logLevel)))

	slog.SetDefault(logger)

	return logger
}

// NewHandler returns a tint handler for "text" and a JSON handler otherwise.
func NewHandler(w io.Writer, logFormat string, level slog.Level) slog.Handler {
	if strings.EqualFold(logFormat, "text") {
		return tint.NewHandler(w, &tint.Options{
			Level:      level,
			TimeFormat: time.DateTime,
		})
	}

	return slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: level,
	})
}
