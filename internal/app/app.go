package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/specialistvlad/gridsheet/internal/config"
	"github.com/specialistvlad/gridsheet/internal/ctxlog"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW    io.Writer
	logger  *slog.Logger
	config  *Config
	closers []io.Closer
}

// NewApp is the constructor for the main application. Settings from the
// optional config file are merged under the command-line ones and defaults
// fill the rest. A config file that cannot be loaded is a fatal startup
// error and panics.
func NewApp(outW io.Writer, cfg *Config, loader config.Loader) *App {
	merged := *cfg

	// The file may set the log destination, so it is loaded with a
	// bootstrap logger that only reaches an explicit test writer.
	bootW := io.Discard
	if merged.LogWriter != nil {
		bootW = merged.LogWriter
	}
	boot, err := newLogger(&merged, bootW)
	if err != nil {
		panic(fmt.Errorf("invalid configuration: %w", err))
	}
	ctx := ctxlog.WithLogger(context.Background(), boot)

	if merged.ConfigPath != "" {
		model, err := loader.Load(ctx, merged.ConfigPath)
		if err != nil {
			panic(fmt.Errorf("failed to load configuration: %w", err))
		}
		merged.merge(model)
		boot.Debug("Configuration file merged.", "path", merged.ConfigPath)
	}
	merged.applyDefaults()
	if err := merged.validate(); err != nil {
		panic(fmt.Errorf("invalid configuration: %w", err))
	}

	a := &App{outW: outW, config: &merged}
	logger, err := newLogger(&merged, a.logWriter())
	if err != nil {
		panic(fmt.Errorf("invalid configuration: %w", err))
	}
	a.logger = logger
	a.logger.Debug("Logger configured successfully.", "render", merged.Render, "rows", merged.Rows, "cols", merged.Cols)
	return a
}

// logWriter picks the log destination. Interactive mode owns the terminal,
// so without a log file its logs are discarded.
func (a *App) logWriter() io.Writer {
	switch {
	case a.config.LogWriter != nil:
		return a.config.LogWriter
	case a.config.LogFile != "":
		f, err := os.OpenFile(a.config.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			panic(fmt.Errorf("failed to open log file: %w", err))
		}
		a.closers = append(a.closers, f)
		return f
	case a.config.Render:
		return os.Stderr
	default:
		return io.Discard
	}
}

// Config returns the effective configuration. This is primarily for testing.
func (a *App) Config() *Config {
	return a.config
}

// Close releases resources held by the app, such as the log file.
func (a *App) Close() error {
	var firstErr error
	for _, c := range a.closers {
		if err := c.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	a.closers = nil
	return firstErr
}
