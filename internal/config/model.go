package config

import "time"

// Model is the unified, format-agnostic representation of a settings file.
type Model struct {
	Sheet Sheet
	Log   Log
	UI    UI
}

// Sheet holds the grid geometry and evaluation settings.
type Sheet struct {
	Rows        int
	Cols        int
	CellWidth   int
	CellHeight  int
	Overscan    int
	CyclePolicy string
}

// Log holds logging settings.
type Log struct {
	Level  string
	Format string
	File   string
}

// UI holds settings of the terminal front end.
type UI struct {
	// ResizeDebounce is nil when unset; zero disables the debounce.
	ResizeDebounce *time.Duration
}
