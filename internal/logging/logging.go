// Package logging configures the process-wide structured logger.
package logging

import (
	"log/slog"
	"os"
	"strings"
)

type Options struct {
	Service string
	Level   string
}

// New builds a JSON slog logger, sets it as the default and returns it.
func New(opts Options) *slog.Logger {
	h := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: parseLevel(opts.Level),
	})

	base := slog.New(h).With("service", opts.Service)
	slog.SetDefault(base)
	return base
}

// Component returns a child logger scoped to one component of the service.
func Component(base *slog.Logger, name string) *slog.Logger {
	return base.With("component", name)
}

func parseLevel(lvl string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(lvl)) {
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
