package render

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// fit pads or truncates s to exactly width display columns. Right-aligned
// text keeps its tail when padded and its head when truncated.
func fit(s string, width int, alignRight bool) string {
	if width <= 0 {
		return ""
	}
	s = strings.Map(func(r rune) rune {
		if r == '\n' || r == '\t' || r == '\r' {
			return ' '
		}
		return r
	}, s)
	w := runewidth.StringWidth(s)
	if w > width {
		s = runewidth.Truncate(s, width, "")
		w = runewidth.StringWidth(s)
	}
	pad := strings.Repeat(" ", width-w)
	if alignRight {
		return pad + s
	}
	return s + pad
}

// slice returns the display columns [from, to) of s. Wide runes cut in half
// are replaced by spaces.
func slice(s string, from, to int) string {
	if to <= from {
		return ""
	}
	var b strings.Builder
	col := 0
	for _, r := range s {
		rw := runewidth.RuneWidth(r)
		next := col + rw
		switch {
		case next <= from || col >= to:
		case col >= from && next <= to:
			b.WriteRune(r)
		default:
			lo, hi := max(col, from), min(next, to)
			b.WriteString(strings.Repeat(" ", hi-lo))
		}
		col = next
	}
	if col < to {
		b.WriteString(strings.Repeat(" ", to-max(col, from)))
	}
	return b.String()
}

// RowHeaderWidth returns the width of the row-number gutter for a sheet of
// the given number of rows, including one column of padding.
func RowHeaderWidth(rows int) int {
	digits := 1
	for n := rows; n >= 10; n /= 10 {
		digits++
	}
	return digits + 1
}
