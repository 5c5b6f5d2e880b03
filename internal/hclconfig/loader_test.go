package hclconfig

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/specialistvlad/gridsheet/internal/config"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sheet.hcl")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600), "failed to set up test file")
	return path
}

func TestLoader_Load_FullFile(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	path := writeFile(t, `
		sheet {
		  rows         = 50
		  cols         = 26
		  cell_width   = 12
		  cell_height  = 1
		  overscan     = 2
		  cycle_policy = "zero"
		}

		log {
		  level  = "debug"
		  format = "json"
		  file   = "${env.GRIDSHEET_HOME}/sheet.log"
		}

		ui {
		  resize_debounce = "250ms"
		}
	`)
	loader := &Loader{environ: func() []string { return []string{"GRIDSHEET_HOME=/tmp/gs"} }}
	debounce := 250 * time.Millisecond

	// --- Act ---
	model, err := loader.Load(context.Background(), path)

	// --- Assert ---
	require.NoError(t, err)
	want := &config.Model{
		Sheet: config.Sheet{Rows: 50, Cols: 26, CellWidth: 12, CellHeight: 1, Overscan: 2, CyclePolicy: "zero"},
		Log:   config.Log{Level: "debug", Format: "json", File: "/tmp/gs/sheet.log"},
		UI:    config.UI{ResizeDebounce: &debounce},
	}
	if diff := cmp.Diff(want, model); diff != "" {
		t.Errorf("Load() mismatch (-want +got):\n%s", diff)
	}
}

func TestLoader_EnvSkipsNamesThatAreNotIdentifiers(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	loader := &Loader{environ: func() []string {
		return []string{"1BAD=x", "=C:=C:\\", "LOG_DIR=/var/log"}
	}}

	// --- Act ---
	model, err := loader.LoadBytes(context.Background(), []byte(`log { file = "${env.LOG_DIR}/gs.log" }`), "inline.hcl")

	// --- Assert ---
	require.NoError(t, err)
	require.Equal(t, "/var/log/gs.log", model.Log.File)
}

func TestLoader_EnvEmpty(t *testing.T) {
	t.Parallel()

	loader := &Loader{environ: func() []string { return nil }}

	_, err := loader.LoadBytes(context.Background(), []byte(`log { file = env.MISSING }`), "inline.hcl")

	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to decode")
}

func TestLoader_Load_EmptyFileLeavesEverythingUnset(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	path := writeFile(t, "")

	// --- Act ---
	model, err := NewLoader().Load(context.Background(), path)

	// --- Assert ---
	require.NoError(t, err)
	if diff := cmp.Diff(&config.Model{}, model); diff != "" {
		t.Errorf("Load() mismatch (-want +got):\n%s", diff)
	}
}

func TestLoader_Load_Errors(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name        string
		content     string
		wantInvalid bool
		wantErr     string
	}{
		{
			name:    "syntax error",
			content: "sheet {\n rows = 10\n",
			wantErr: "failed to parse",
		},
		{
			name:    "unknown attribute",
			content: "sheet {\n colour = \"red\"\n}\n",
			wantErr: "failed to decode",
		},
		{
			name:    "unknown block",
			content: "network {}\n",
			wantErr: "failed to decode",
		},
		{
			name:    "wrong type",
			content: "sheet {\n rows = \"many\"\n}\n",
			wantErr: "failed to decode",
		},
		{
			name:        "non-positive rows",
			content:     "sheet {\n rows = 0\n}\n",
			wantInvalid: true,
			wantErr:     "sheet.rows must be positive",
		},
		{
			name:        "negative overscan",
			content:     "sheet {\n overscan = -1\n}\n",
			wantInvalid: true,
			wantErr:     "sheet.overscan must not be negative",
		},
		{
			name:        "bad duration",
			content:     "ui {\n resize_debounce = \"soon\"\n}\n",
			wantInvalid: true,
			wantErr:     "ui.resize_debounce",
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			// --- Arrange ---
			path := writeFile(t, tc.content)

			// --- Act ---
			_, err := NewLoader().Load(context.Background(), path)

			// --- Assert ---
			require.Error(t, err)
			require.Contains(t, err.Error(), tc.wantErr)
			require.Equal(t, tc.wantInvalid, errors.Is(err, config.ErrInvalidConfig))
		})
	}
}

func TestLoader_Load_MissingFile(t *testing.T) {
	t.Parallel()

	_, err := NewLoader().Load(context.Background(), filepath.Join(t.TempDir(), "absent.hcl"))

	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to parse")
}

func TestLoader_LoadBytes_ZeroDebounceIsSet(t *testing.T) {
	t.Parallel()

	model, err := NewLoader().LoadBytes(context.Background(), []byte(`ui { resize_debounce = "0s" }`), "inline.hcl")

	require.NoError(t, err)
	require.NotNil(t, model.UI.ResizeDebounce)
	require.Zero(t, *model.UI.ResizeDebounce)
}

func TestLoader_LoadBytes(t *testing.T) {
	t.Parallel()

	model, err := NewLoader().LoadBytes(context.Background(), []byte(`sheet { cols = 3 }`), "inline.hcl")

	require.NoError(t, err)
	require.Equal(t, 3, model.Sheet.Cols)
	require.Zero(t, model.Sheet.Rows)
}
