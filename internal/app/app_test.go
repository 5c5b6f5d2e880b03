package app

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sheet.hcl")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600), "failed to set up test file")
	return path
}

func durationPtr(d time.Duration) *time.Duration { return &d }

func TestNewConfig_Validation(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name    string
		cfg     Config
		wantErr string
	}{
		{name: "empty is valid", cfg: Config{}},
		{name: "full is valid", cfg: Config{Rows: 5, Cols: 5, CyclePolicy: "zero", LogLevel: "debug", LogFormat: "json", Seeds: []Seed{{Address: "B2", Text: "1"}}}},
		{name: "negative rows", cfg: Config{Rows: -1}, wantErr: "rows must not be negative"},
		{name: "negative debounce", cfg: Config{ResizeDebounce: durationPtr(-time.Second)}, wantErr: "resize-debounce"},
		{name: "zero debounce", cfg: Config{ResizeDebounce: durationPtr(0)}},
		{name: "bad policy", cfg: Config{CyclePolicy: "ignore"}, wantErr: "invalid cycle policy"},
		{name: "bad level", cfg: Config{LogLevel: "trace"}, wantErr: "invalid log-level"},
		{name: "bad format", cfg: Config{LogFormat: "xml"}, wantErr: "invalid log-format"},
		{name: "bad seed", cfg: Config{Seeds: []Seed{{Address: "A0", Text: "1"}}}, wantErr: "invalid seed"},
		{name: "seed beyond last row", cfg: Config{Rows: 3, Cols: 3, Seeds: []Seed{{Address: "A4", Text: "1"}}}, wantErr: "A4 is beyond row 3"},
		{name: "seed beyond last column", cfg: Config{Rows: 3, Cols: 3, Seeds: []Seed{{Address: "D1", Text: "1"}}}, wantErr: "D1 is beyond column C"},
		{name: "seed checked later when extent unset", cfg: Config{Seeds: []Seed{{Address: "ZZ999", Text: "1"}}}},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			cfg, err := NewConfig(tc.cfg)

			if tc.wantErr == "" {
				require.NoError(t, err)
				require.NotNil(t, cfg)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantErr)
		})
	}
}

func TestNewApp_AppliesDefaults(t *testing.T) {
	t.Parallel()

	// --- Arrange & Act ---
	a, _ := SetupAppTest(t, &Config{}, &SafeBuffer{})

	// --- Assert ---
	want := Config{
		Rows:           DefaultRows,
		Cols:           DefaultCols,
		CellWidth:      DefaultCellWidth,
		CellHeight:     DefaultCellHeight,
		CyclePolicy:    "error",
		LogLevel:       "debug",
		LogFormat:      "text",
		ResizeDebounce: durationPtr(DefaultResizeDebounce),
	}
	if diff := cmp.Diff(want, *a.Config(), cmpopts.IgnoreFields(Config{}, "LogWriter")); diff != "" {
		t.Errorf("effective config mismatch (-want +got):\n%s", diff)
	}
}

func TestNewApp_FlagsOverrideFile(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	path := writeConfig(t, `
		sheet {
		  rows         = 50
		  cols         = 5
		  cell_width   = 4
		  cycle_policy = "zero"
		}
		ui {
		  resize_debounce = "1s"
		}
	`)

	// --- Act ---
	a, logs := SetupAppTest(t, &Config{ConfigPath: path, Rows: 20}, &SafeBuffer{})

	// --- Assert ---
	got := a.Config()
	assert.Equal(t, 20, got.Rows, "flag must win over the file")
	assert.Equal(t, 5, got.Cols)
	assert.Equal(t, 4, got.CellWidth)
	assert.Equal(t, DefaultCellHeight, got.CellHeight)
	assert.Equal(t, "zero", got.CyclePolicy)
	require.NotNil(t, got.ResizeDebounce)
	assert.Equal(t, time.Second, *got.ResizeDebounce)
	assert.Contains(t, logs.String(), "Configuration file merged.")
}

func TestNewApp_ZeroDebounceFlagWinsOverFile(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	path := writeConfig(t, "ui {\n resize_debounce = \"1s\"\n}\n")

	// --- Act ---
	a, _ := SetupAppTest(t, &Config{ConfigPath: path, ResizeDebounce: durationPtr(0)}, &SafeBuffer{})

	// --- Assert ---
	require.NotNil(t, a.Config().ResizeDebounce)
	assert.Zero(t, *a.Config().ResizeDebounce)
}

func TestNewApp_PanicsOnSeedBeyondFileExtent(t *testing.T) {
	t.Parallel()

	// The flag check cannot know the extent; the file sets it afterwards.
	path := writeConfig(t, "sheet {\n rows = 2\n}\n")
	cfg := &Config{ConfigPath: path, Seeds: []Seed{{Address: "A3", Text: "1"}}}

	require.PanicsWithError(t, "invalid configuration: invalid seed: A3 is beyond row 2", func() {
		SetupAppTest(t, cfg, &SafeBuffer{})
	})
}

func TestNewApp_PanicsOnBadFile(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, "sheet {\n rows = \n")

	require.Panics(t, func() {
		SetupAppTest(t, &Config{ConfigPath: path}, &SafeBuffer{})
	})
}

func TestNewApp_LogFile(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	logPath := filepath.Join(t.TempDir(), "gridsheet.log")
	cfg := &Config{LogFile: logPath, LogLevel: "debug", Render: true, Width: 30, Height: 6}

	// --- Act ---
	a := NewApp(&SafeBuffer{}, cfg, nil)
	require.NoError(t, a.Run(context.Background()))

	// --- Assert ---
	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Frame rendered.")
}

func TestRun_RenderMode(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	out := &SafeBuffer{}
	cfg := &Config{
		Render:    true,
		Width:     40,
		Height:    8,
		Rows:      3,
		Cols:      3,
		CellWidth: 8,
		Seeds: []Seed{
			{Address: "A1", Text: "2"},
			{Address: "B1", Text: "3"},
			{Address: "C1", Text: "=A1+B1"},
		},
	}
	a, logs := SetupAppTest(t, cfg, out)

	// --- Act ---
	err := a.Run(context.Background())

	// --- Assert ---
	require.NoError(t, err)
	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	require.Len(t, lines, 8)
	assert.Equal(t, "SpreadSheet", lines[0])
	assert.Equal(t, "Current cell: C1 │ fx =A1+B1", lines[1])
	assert.Equal(t, "1        2       3       5", strings.TrimRight(lines[3], " "))
	assert.Equal(t, "selected · 3x3", lines[7])
	assert.Contains(t, logs.String(), "Frame rendered.")
}

func TestRun_RenderModeCyclePolicies(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		policy string
		want   string
	}{
		{policy: "error", want: "#CYCLE!"},
		{policy: "zero", want: "       1"},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.policy, func(t *testing.T) {
			t.Parallel()

			// --- Arrange ---
			out := &SafeBuffer{}
			cfg := &Config{
				Render:      true,
				Width:       30,
				Height:      6,
				Rows:        2,
				Cols:        2,
				CellWidth:   8,
				CyclePolicy: tc.policy,
				Seeds: []Seed{
					{Address: "A2", Text: "1"},
					{Address: "A1", Text: "=A1+A2"},
				},
			}
			a, _ := SetupAppTest(t, cfg, out)

			// --- Act ---
			require.NoError(t, a.Run(context.Background()))

			// --- Assert ---
			lines := strings.Split(out.String(), "\n")
			assert.Contains(t, lines[3], tc.want)
		})
	}
}
