package render

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/specialistvlad/gridsheet/internal/cellid"
	"github.com/specialistvlad/gridsheet/internal/ctxlog"
	"github.com/specialistvlad/gridsheet/internal/eval"
	"github.com/specialistvlad/gridsheet/internal/inmemorystore"
	"github.com/specialistvlad/gridsheet/internal/session"
	"github.com/specialistvlad/gridsheet/internal/viewport"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// plainStyles renders without escape codes.
func plainStyles() Styles {
	return DefaultStyles(lipgloss.NewRenderer(io.Discard))
}

func newSession(t *testing.T, rows, cols int, cells map[string]string) *session.Session {
	t.Helper()
	ctx := context.Background()
	store := inmemorystore.New()
	for addr, text := range cells {
		require.NoError(t, store.Write(ctx, cellid.MustParse(addr), text))
	}
	return session.New(store, eval.New(store, eval.CycleAsError), rows, cols)
}

func TestFrame_Basic(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	s := newSession(t, 3, 3, map[string]string{"A1": "5", "B1": "=A1+A1", "C1": "hi"})
	vp := viewport.New(3, 3, 8, 1)
	vp.Resize(24, 3)

	// --- Act ---
	out := Frame(context.Background(), s, vp, Options{Styles: plainStyles()})

	// --- Assert ---
	want := []string{
		"SpreadSheet",
		"Current cell: - │ fx ",
		"     A       B       C    ",
		"1        5      10hi      ",
		"2 " + strings.Repeat(" ", 24),
		"3 " + strings.Repeat(" ", 24),
		"idle · 3x3",
	}
	assert.Equal(t, want, strings.Split(out, "\n"))
}

func TestGrid_PartialScrollClipsEdges(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	s := newSession(t, 3, 5, map[string]string{"A1": "5", "B1": "=A1+A1", "C1": "hi"})
	vp := viewport.New(3, 5, 5, 1)
	vp.Resize(15, 1)
	vp.ScrollTo(2, 0)

	// --- Act ---
	lines := Grid(context.Background(), s, vp, Options{Styles: plainStyles()})

	// --- Assert ---
	require.Len(t, lines, 2)
	assert.Equal(t, "  A    B    C    ", lines[0])
	assert.Equal(t, "1   5   10hi     ", lines[1])
}

func TestGrid_EditingCellShowsBuffer(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	ctx := context.Background()
	s := newSession(t, 2, 2, map[string]string{"B2": "7"})
	require.NoError(t, s.Click(ctx, cellid.MustParse("B2")))
	s.SetBuffer("=A1")
	vp := viewport.New(2, 2, 12, 1)
	vp.Resize(24, 2)

	// --- Act ---
	out := Frame(ctx, s, vp, Options{Styles: plainStyles()})

	// --- Assert ---
	lines := strings.Split(out, "\n")
	assert.Equal(t, "Current cell: B2 │ fx =A1", lines[1])
	assert.Equal(t, "2 "+strings.Repeat(" ", 12)+"=A1"+strings.Repeat(" ", 9), lines[4])
	assert.Equal(t, "editing · 2x2", lines[5])
}

func TestGrid_EditorOverride(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	ctx := context.Background()
	s := newSession(t, 1, 2, nil)
	require.NoError(t, s.Click(ctx, cellid.MustParse("A1")))
	vp := viewport.New(1, 2, 6, 1)
	vp.Resize(12, 1)

	// --- Act ---
	lines := Grid(ctx, s, vp, Options{Styles: plainStyles(), Editor: "abc|"})

	// --- Assert ---
	assert.Equal(t, "1 abc|  "+strings.Repeat(" ", 6), lines[1])
}

func TestGrid_ErrorsAndNumbers(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	ctx := context.Background()
	s := newSession(t, 1, 3, map[string]string{"A1": "=B1", "B1": "=A1", "C1": "0.5"})
	vp := viewport.New(1, 3, 8, 1)
	vp.Resize(24, 1)
	frame := s.Evaluator().NewFrame()

	// --- Act ---
	lines := Grid(ctx, s, vp, Options{Styles: plainStyles(), Frame: frame})

	// --- Assert ---
	assert.Equal(t, "1 #CYCLE! #CYCLE!      0.5", lines[1])
	assert.Equal(t, 2, frame.Len(), "frame should hold both formula cells")
}

func TestGrid_AlignsNumericLiterals(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	s := newSession(t, 1, 4, map[string]string{"A1": "42", "B1": " -1.5 ", "C1": "12px", "D1": "=A1"})
	vp := viewport.New(1, 4, 6, 1)
	vp.Resize(24, 1)

	// --- Act ---
	lines := Grid(context.Background(), s, vp, Options{Styles: plainStyles()})

	// --- Assert ---
	assert.Equal(t, "1     42  -1.512px      42", lines[1])
}

func TestGrid_TallCellsLabelFirstLineOnly(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	s := newSession(t, 2, 1, map[string]string{"A1": "x", "A2": "y"})
	vp := viewport.New(2, 1, 3, 2)
	vp.Resize(3, 4)

	// --- Act ---
	lines := Grid(context.Background(), s, vp, Options{Styles: plainStyles()})

	// --- Assert ---
	assert.Equal(t, []string{"   A ", "1 x  ", "     ", "2 y  ", "     "}, lines)
}

func TestGrid_LogsDrawnCells(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	ctx := ctxlog.WithLogger(context.Background(), logger)
	s := newSession(t, 10000, 10000, nil)
	vp := viewport.New(10000, 10000, 10, 1)
	vp.Resize(40, 5)

	// --- Act ---
	Grid(ctx, s, vp, Options{Styles: plainStyles()})

	// --- Assert ---
	// 5 visible rows by 4 fully visible columns; the extra window column
	// starts exactly at the right edge and is not drawn.
	assert.Contains(t, buf.String(), "Grid drawn.")
	assert.Contains(t, buf.String(), "cells=20")
}

func TestFit(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name       string
		in         string
		width      int
		alignRight bool
		want       string
	}{
		{name: "pad left aligned", in: "ab", width: 4, want: "ab  "},
		{name: "pad right aligned", in: "12", width: 4, alignRight: true, want: "  12"},
		{name: "truncate", in: "abcdef", width: 3, want: "abc"},
		{name: "wide runes", in: "日本語", width: 5, want: "日本 "},
		{name: "newlines flattened", in: "a\nb", width: 3, want: "a b"},
		{name: "zero width", in: "abc", width: 0, want: ""},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, fit(tc.in, tc.width, tc.alignRight))
		})
	}
}

func TestSlice(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "cd", slice("abcdef", 2, 4))
	assert.Equal(t, " 本", slice("日本", 1, 4))
	assert.Equal(t, "f  ", slice("abcdef", 5, 8))
	assert.Equal(t, "", slice("abc", 2, 2))
}

func TestRowHeaderWidth(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 2, RowHeaderWidth(1))
	assert.Equal(t, 2, RowHeaderWidth(9))
	assert.Equal(t, 3, RowHeaderWidth(10))
	assert.Equal(t, 6, RowHeaderWidth(10000))
}
