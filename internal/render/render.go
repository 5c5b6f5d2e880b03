package render

import (
	"context"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/specialistvlad/gridsheet/internal/cellid"
	"github.com/specialistvlad/gridsheet/internal/ctxlog"
	"github.com/specialistvlad/gridsheet/internal/eval"
	"github.com/specialistvlad/gridsheet/internal/session"
	"github.com/specialistvlad/gridsheet/internal/viewport"
)

// Title is shown on the first line of every frame.
const Title = "SpreadSheet"

// ChromeLines is the number of lines a frame uses besides the grid body:
// title, formula bar, column header and status line.
const ChromeLines = 4

// Options controls one frame.
type Options struct {
	Styles Styles

	// Frame memoizes values across the cells of a frame. Nil evaluates
	// every cell independently.
	Frame *eval.Frame

	// Editor replaces the text of the cell being edited, e.g. a text input
	// view with a cursor. Empty means the session buffer.
	Editor string

	// FormulaBar replaces the formula bar text. Empty means the session
	// buffer.
	FormulaBar string

	// Status is appended to the status line.
	Status string
}

// Frame draws the full screen: title, address label with formula bar, the
// windowed grid and a status line.
func Frame(ctx context.Context, s *session.Session, vp *viewport.Viewport, opts Options) string {
	st := opts.Styles
	width := RowHeaderWidth(vp.Rows) + vp.Width

	lines := make([]string, 0, vp.Height+ChromeLines)
	lines = append(lines, clip(st.Title.Render(Title), width))
	lines = append(lines, clip(formulaLine(s, st, opts.FormulaBar), width))
	lines = append(lines, Grid(ctx, s, vp, opts)...)
	lines = append(lines, clip(statusLine(s, st, opts.Status), width))
	return strings.Join(lines, "\n")
}

func formulaLine(s *session.Session, st Styles, bar string) string {
	label := "Current cell: -"
	if c, ok := s.Selection(); ok {
		label = "Current cell: " + c.String()
	}
	if bar == "" {
		bar = s.Buffer()
	}
	return st.Label.Render(label) + " │ fx " + bar
}

func statusLine(s *session.Session, st Styles, extra string) string {
	rows, cols := s.Extent()
	text := s.State().String() + " · " + strconv.Itoa(rows) + "x" + strconv.Itoa(cols)
	if extra != "" {
		text += " · " + extra
	}
	return st.Status.Render(text)
}

// clip cuts a styled line to width display columns.
func clip(line string, width int) string {
	if lipgloss.Width(line) <= width {
		return line
	}
	return lipgloss.NewStyle().MaxWidth(width).Render(line)
}

// Grid draws the column header line followed by vp.Height body lines. Each
// line is RowHeaderWidth(vp.Rows)+vp.Width columns wide. Cells partially
// scrolled out of view are clipped at the edges.
func Grid(ctx context.Context, s *session.Session, vp *viewport.Viewport, opts Options) []string {
	logger := ctxlog.FromContext(ctx)
	st := opts.Styles
	gutter := RowHeaderWidth(vp.Rows)
	win := vp.Window()

	lines := make([]string, 0, vp.Height+1)
	lines = append(lines, headerLine(vp, win, gutter, st))

	drawn := 0
	for y := 0; y < vp.Height; y++ {
		var b strings.Builder
		row := (vp.ScrollY + y) / max(1, vp.CellHeight)
		firstLine := (vp.ScrollY+y)%max(1, vp.CellHeight) == 0

		if row >= vp.Rows || win.Empty() {
			b.WriteString(strings.Repeat(" ", gutter+vp.Width))
			lines = append(lines, b.String())
			continue
		}

		label := ""
		if firstLine {
			label = strconv.Itoa(row + 1)
		}
		b.WriteString(st.Header.Render(fit(label, gutter-1, true) + " "))

		used := 0
		for col := win.FirstCol; col <= win.LastCol; col++ {
			c := cellid.Coord{Row: row, Col: col}
			x0, _ := vp.Origin(c)
			from, to := max(0, x0), min(vp.Width, x0+vp.CellWidth)
			if to <= from {
				continue
			}
			text, style := strings.Repeat(" ", vp.CellWidth), selectionStyle(s, c, st)
			if firstLine {
				text, style = cell(ctx, s, c, vp.CellWidth, st, opts)
				drawn++
			}
			if used < from {
				b.WriteString(strings.Repeat(" ", from-used))
			}
			b.WriteString(style.Render(clipCell(text, x0, from, to, vp.CellWidth)))
			used = to
		}
		if used < vp.Width {
			b.WriteString(strings.Repeat(" ", vp.Width-used))
		}
		lines = append(lines, b.String())
	}

	logger.Debug("Grid drawn.", "window", win, "cells", drawn)
	return lines
}

func headerLine(vp *viewport.Viewport, win viewport.Window, gutter int, st Styles) string {
	var b strings.Builder
	b.WriteString(strings.Repeat(" ", gutter))
	used := 0
	if !win.Empty() {
		for col := win.FirstCol; col <= win.LastCol; col++ {
			x0, _ := vp.Origin(cellid.Coord{Col: col})
			from, to := max(0, x0), min(vp.Width, x0+vp.CellWidth)
			if to <= from {
				continue
			}
			if used < from {
				b.WriteString(strings.Repeat(" ", from-used))
			}
			label := centered(cellid.ColumnLabel(col), vp.CellWidth)
			b.WriteString(st.Header.Render(slice(label, from-x0, to-x0)))
			used = to
		}
	}
	if used < vp.Width {
		b.WriteString(strings.Repeat(" ", vp.Width-used))
	}
	return b.String()
}

func centered(s string, width int) string {
	left := (width - len(s)) / 2
	if left <= 0 {
		return fit(s, width, false)
	}
	return fit(strings.Repeat(" ", left)+s, width, false)
}

// clipCell keeps the visible part [from, to) of a cell starting at x0.
// Pre-styled editor text is only kept when the cell is fully visible.
func clipCell(text string, x0, from, to, width int) string {
	if from == x0 && to == x0+width {
		return text
	}
	if strings.ContainsRune(text, '\x1b') {
		return strings.Repeat(" ", to-from)
	}
	return slice(text, from-x0, to-x0)
}

// cell returns the width-fitted text and style for c: the editor for the
// cell being edited, otherwise its display value.
func cell(ctx context.Context, s *session.Session, c cellid.Coord, width int, st Styles, opts Options) (string, lipgloss.Style) {
	if s.IsEditing(c) {
		if opts.Editor != "" {
			return padStyled(opts.Editor, width), st.Editing
		}
		return fit(s.Buffer(), width, false), st.Editing
	}

	var v eval.Value
	if opts.Frame != nil {
		v = opts.Frame.Value(ctx, c)
	} else {
		v = s.Value(ctx, c)
	}
	text := fit(v.String(), width, v.LooksNumeric())

	switch {
	case s.IsSelected(c):
		return text, st.Cursor
	case v.IsError():
		return text, st.Error
	}
	return text, lipgloss.NewStyle()
}

func selectionStyle(s *session.Session, c cellid.Coord, st Styles) lipgloss.Style {
	switch {
	case s.IsEditing(c):
		return st.Editing
	case s.IsSelected(c):
		return st.Cursor
	}
	return lipgloss.NewStyle()
}

// padStyled pads or cuts already-styled text to width columns.
func padStyled(text string, width int) string {
	w := lipgloss.Width(text)
	if w > width {
		return lipgloss.NewStyle().MaxWidth(width).Render(text)
	}
	return text + strings.Repeat(" ", width-w)
}
