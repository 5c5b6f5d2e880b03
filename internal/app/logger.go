package app

import (
	"fmt"
	"io"
	"log/slog"
)

// parseLevel maps a log-level setting to a slog level. The empty string
// selects info; anything slog cannot read is an error.
func parseLevel(s string) (slog.Level, error) {
	if s == "" {
		return slog.LevelInfo, nil
	}
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return 0, fmt.Errorf("invalid log-level %q: must be 'debug', 'info', 'warn', or 'error'", s)
	}
	return level, nil
}

// newLogger builds the logger described by cfg, writing to outW. It does
// not set the global logger, allowing for isolated logger instances.
func newLogger(cfg *Config, outW io.Writer) (*slog.Logger, error) {
	level, err := parseLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}

	handlerOpts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler

	switch cfg.LogFormat {
	case "", "text":
		handler = slog.NewTextHandler(outW, handlerOpts)
	case "json":
		handler = slog.NewJSONHandler(outW, handlerOpts)
	default:
		return nil, fmt.Errorf("invalid log-format %q: must be 'text' or 'json'", cfg.LogFormat)
	}

	return slog.New(handler), nil
}
