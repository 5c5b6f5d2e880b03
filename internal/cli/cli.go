package cli

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/specialistvlad/gridsheet/internal/app"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// seedList collects repeated -set ADDR=TEXT flags.
type seedList []app.Seed

func (s *seedList) String() string {
	parts := make([]string, len(*s))
	for i, seed := range *s {
		parts[i] = seed.Address + "=" + seed.Text
	}
	return strings.Join(parts, ",")
}

func (s *seedList) Set(v string) error {
	addr, text, ok := strings.Cut(v, "=")
	if !ok || strings.TrimSpace(addr) == "" {
		return fmt.Errorf("expected ADDR=TEXT, got %q", v)
	}
	*s = append(*s, app.Seed{Address: strings.ToUpper(strings.TrimSpace(addr)), Text: text})
	return nil
}

// Parse processes command-line arguments. It returns a populated Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
// Only flags given explicitly are set, so the config file can fill the rest.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("gridsheet", flag.ContinueOnError)
	flagSet.SetOutput(output)

	// Custom usage/help text function
	flagSet.Usage = func() {
		fmt.Fprint(output, `
GridSheet - A terminal spreadsheet with live formulas.

Usage:
  gridsheet [options] [CONFIG_PATH]

Arguments:
  CONFIG_PATH
    Optional path to an .hcl settings file (same as -config).

Keys:
  arrows, pgup/pgdown   move the selection
  enter / f2            edit; enter confirms and moves down, tab moves right
  esc                   cancel the edit
  ctrl+f                focus the formula bar
  ctrl+q / ctrl+c       quit

Options:
`)
		flagSet.PrintDefaults()
	}

	var seeds seedList
	configFlag := flagSet.String("config", "", "Path to an HCL settings file.")
	rowsFlag := flagSet.Int("rows", app.DefaultRows, "Number of rows in the sheet.")
	colsFlag := flagSet.Int("cols", app.DefaultCols, "Number of columns in the sheet.")
	cellWidthFlag := flagSet.Int("cell-width", app.DefaultCellWidth, "Cell width in terminal columns.")
	cellHeightFlag := flagSet.Int("cell-height", app.DefaultCellHeight, "Cell height in terminal lines.")
	overscanFlag := flagSet.Int("overscan", 0, "Extra rows and columns materialized beyond the visible area.")
	cycleFlag := flagSet.String("cycle-policy", "error", "Value of circular references. Options: 'error' or 'zero'.")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")
	logFileFlag := flagSet.String("log-file", "", "Write logs to this file. Interactive mode discards logs otherwise.")
	renderFlag := flagSet.Bool("render", false, "Print a single frame and exit instead of starting the interactive program.")
	widthFlag := flagSet.Int("width", 0, "Frame width for -render. 0 uses the terminal size.")
	heightFlag := flagSet.Int("height", 0, "Frame height for -render. 0 uses the terminal size.")
	debounceFlag := flagSet.Duration("resize-debounce", app.DefaultResizeDebounce, "How long terminal resizes settle before the grid is recomputed. 0 applies every resize at once.")
	flagSet.Var(&seeds, "set", "Write a cell before starting, as ADDR=TEXT. May be repeated.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	if flagSet.NArg() > 1 {
		return nil, false, &ExitError{Code: 2, Message: fmt.Sprintf("too many arguments: %v", flagSet.Args())}
	}

	cfg := app.Config{Seeds: seeds}
	flagSet.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "config":
			cfg.ConfigPath = *configFlag
		case "rows":
			cfg.Rows = *rowsFlag
		case "cols":
			cfg.Cols = *colsFlag
		case "cell-width":
			cfg.CellWidth = *cellWidthFlag
		case "cell-height":
			cfg.CellHeight = *cellHeightFlag
		case "overscan":
			cfg.Overscan = *overscanFlag
		case "cycle-policy":
			cfg.CyclePolicy = strings.ToLower(*cycleFlag)
		case "log-format":
			cfg.LogFormat = strings.ToLower(*logFormatFlag)
		case "log-level":
			cfg.LogLevel = strings.ToLower(*logLevelFlag)
		case "log-file":
			cfg.LogFile = *logFileFlag
		case "render":
			cfg.Render = *renderFlag
		case "width":
			cfg.Width = *widthFlag
		case "height":
			cfg.Height = *heightFlag
		case "resize-debounce":
			d := *debounceFlag
			cfg.ResizeDebounce = &d
		}
	})
	if cfg.ConfigPath == "" && flagSet.NArg() == 1 {
		cfg.ConfigPath = flagSet.Arg(0)
	}
	slog.Debug("Explicit flags collected.", "config_path", cfg.ConfigPath, "seeds", len(cfg.Seeds))

	for name, v := range map[string]int{"rows": cfg.Rows, "cols": cfg.Cols, "cell-width": cfg.CellWidth, "cell-height": cfg.CellHeight} {
		if isSet(flagSet, name) && v <= 0 {
			return nil, false, &ExitError{Code: 2, Message: fmt.Sprintf("invalid %s: must be positive", name)}
		}
	}

	config, err := app.NewConfig(cfg)
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "config", config)
	return config, false, nil
}

func isSet(flagSet *flag.FlagSet, name string) bool {
	set := false
	flagSet.Visit(func(f *flag.Flag) {
		if f.Name == name {
			set = true
		}
	})
	return set
}
