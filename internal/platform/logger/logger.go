package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/phrazzld/jobboard-api/internal/config"
)

// ParseLevel converts a configured level name (case-insensitive) to a
// slog.Level. The boolean is false for unknown names, which map to info.
func ParseLevel(name string) (slog.Level, bool) {
	switch strings.ToLower(name) {
	case "debug":
		return slog.LevelDebug, true
	case "info":
		return slog.LevelInfo, true
	case "warn":
		return slog.LevelWarn, true
	case "error":
		return slog.LevelError, true
	default:
		return slog.LevelInfo, false
	}
}

// Setup builds the application's JSON logger on stdout and installs it as the
// slog default.
func Setup(cfg config.ServerConfig) (*slog.Logger, error) {
	log := New(os.Stdout, cfg.LogLevel)
	slog.SetDefault(log)
	return log, nil
}

// New builds a JSON logger writing to w.
func New(w io.Writer, level string) *slog.Logger {
	lvl, ok := ParseLevel(level)
	log := slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: lvl}))
	if !ok {
		log.Warn("invalid log level configured, using default level",
			slog.String("configured_level", level),
			slog.String("default_level", "info"))
	}
	return log
}

// Discard returns a logger that drops every record.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError + 1}))
}
