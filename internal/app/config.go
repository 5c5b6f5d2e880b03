package app

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/specialistvlad/gridsheet/internal/cellid"
	"github.com/specialistvlad/gridsheet/internal/config"
	"github.com/specialistvlad/gridsheet/internal/eval"
)

// Defaults applied to settings left unset by both flags and the config file.
const (
	DefaultRows           = 10000
	DefaultCols           = 10000
	DefaultCellWidth      = 10
	DefaultCellHeight     = 1
	DefaultResizeDebounce = 100 * time.Millisecond
	DefaultWidth          = 80
	DefaultHeight         = 24
)

// Seed is a cell written before the session starts.
type Seed struct {
	Address string
	Text    string
}

// Config holds all the necessary configuration for an App instance to run.
// Zero values mean "not set" until defaults are applied.
type Config struct {
	ConfigPath string // optional hcl file

	Rows        int
	Cols        int
	CellWidth   int
	CellHeight  int
	Overscan    int
	CyclePolicy string

	LogFormat string
	LogLevel  string
	LogFile   string
	LogWriter io.Writer // overrides LogFile; used by tests

	Render         bool // draw one frame to the output and exit
	Width          int
	Height         int
	ResizeDebounce *time.Duration // nil is unset; zero disables the debounce

	Seeds []Seed
}

// NewConfig validates the settings given on the command line.
func NewConfig(cfg Config) (*Config, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	var errs []error
	for name, v := range map[string]int{
		"rows":        c.Rows,
		"cols":        c.Cols,
		"cell-width":  c.CellWidth,
		"cell-height": c.CellHeight,
		"overscan":    c.Overscan,
		"width":       c.Width,
		"height":      c.Height,
	} {
		if v < 0 {
			errs = append(errs, fmt.Errorf("%s must not be negative, got %d", name, v))
		}
	}
	if c.ResizeDebounce != nil && *c.ResizeDebounce < 0 {
		errs = append(errs, fmt.Errorf("resize-debounce must not be negative, got %s", *c.ResizeDebounce))
	}
	if _, err := eval.ParseCyclePolicy(c.CyclePolicy); err != nil {
		errs = append(errs, err)
	}
	if _, err := newLogger(c, io.Discard); err != nil {
		errs = append(errs, err)
	}
	for _, seed := range c.Seeds {
		coord, err := cellid.Parse(seed.Address)
		if err != nil {
			errs = append(errs, fmt.Errorf("invalid seed: %w", err))
			continue
		}
		// An unset extent is checked again once defaults are applied.
		if c.Rows > 0 && coord.Row >= c.Rows {
			errs = append(errs, fmt.Errorf("invalid seed: %s is beyond row %d", seed.Address, c.Rows))
		}
		if c.Cols > 0 && coord.Col >= c.Cols {
			errs = append(errs, fmt.Errorf("invalid seed: %s is beyond column %s", seed.Address, cellid.ColumnLabel(c.Cols-1)))
		}
	}
	return errors.Join(errs...)
}

// merge fills settings left unset on the command line from the file model.
func (c *Config) merge(m *config.Model) {
	if m == nil {
		return
	}
	setInt(&c.Rows, m.Sheet.Rows)
	setInt(&c.Cols, m.Sheet.Cols)
	setInt(&c.CellWidth, m.Sheet.CellWidth)
	setInt(&c.CellHeight, m.Sheet.CellHeight)
	setInt(&c.Overscan, m.Sheet.Overscan)
	setString(&c.CyclePolicy, m.Sheet.CyclePolicy)
	setString(&c.LogLevel, m.Log.Level)
	setString(&c.LogFormat, m.Log.Format)
	setString(&c.LogFile, m.Log.File)
	if c.ResizeDebounce == nil {
		c.ResizeDebounce = m.UI.ResizeDebounce
	}
}

// applyDefaults fills every setting that is still unset.
func (c *Config) applyDefaults() {
	setInt(&c.Rows, DefaultRows)
	setInt(&c.Cols, DefaultCols)
	setInt(&c.CellWidth, DefaultCellWidth)
	setInt(&c.CellHeight, DefaultCellHeight)
	setString(&c.CyclePolicy, eval.CycleAsError.String())
	setString(&c.LogLevel, "info")
	setString(&c.LogFormat, "text")
	if c.ResizeDebounce == nil {
		d := DefaultResizeDebounce
		c.ResizeDebounce = &d
	}
}

func setInt(dst *int, v int) {
	if *dst == 0 {
		*dst = v
	}
}

func setString(dst *string, v string) {
	if *dst == "" {
		*dst = v
	}
}
