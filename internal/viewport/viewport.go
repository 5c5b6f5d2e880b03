// Package viewport decides which part of the logical grid is visible.
//
// Cells have a fixed width and height, so the visible window is pure
// arithmetic on the scroll offset and the viewport size. Nothing here looks
// at cell content: the cost of a scroll or resize is O(1), and the cost of a
// frame is proportional to the number of visible cells, regardless of how
// large the grid is or how many cells are populated.
//
// Units are whatever the renderer measures in: pixels in a browser, terminal
// cells in the TUI.
package viewport

import (
	"github.com/specialistvlad/gridsheet/internal/cellid"
)

// Window is the inclusive range of rows and columns intersecting the
// visible area. An empty window has Last < First.
type Window struct {
	FirstRow, LastRow int
	FirstCol, LastCol int
}

// Empty reports whether the window contains no cells.
func (w Window) Empty() bool {
	return w.LastRow < w.FirstRow || w.LastCol < w.FirstCol
}

// RowCount returns the number of rows in the window.
func (w Window) RowCount() int {
	return max(0, w.LastRow-w.FirstRow+1)
}

// ColCount returns the number of columns in the window.
func (w Window) ColCount() int {
	return max(0, w.LastCol-w.FirstCol+1)
}

// Contains reports whether c lies inside the window.
func (w Window) Contains(c cellid.Coord) bool {
	return c.Row >= w.FirstRow && c.Row <= w.LastRow && c.Col >= w.FirstCol && c.Col <= w.LastCol
}

// Each calls fn for every coordinate in the window, row-major.
func (w Window) Each(fn func(c cellid.Coord)) {
	for row := w.FirstRow; row <= w.LastRow; row++ {
		for col := w.FirstCol; col <= w.LastCol; col++ {
			fn(cellid.Coord{Row: row, Col: col})
		}
	}
}

// Span computes the inclusive index range along one axis.
//
// The first index is floor(offset/size). The count is ceil(visible/size)+1,
// which covers a partially visible item at both edges. overscan extra items
// are added on each side. The result is clamped to [0, total).
func Span(offset, visible, size, total, overscan int) (first, last int) {
	if total <= 0 || visible <= 0 || size <= 0 {
		return 0, -1
	}
	if offset < 0 {
		offset = 0
	}

	first = offset / size
	count := (visible+size-1)/size + 1
	last = first + count - 1

	first -= overscan
	last += overscan

	if first < 0 {
		first = 0
	}
	if last > total-1 {
		last = total - 1
	}
	if first > last {
		return 0, -1
	}
	return first, last
}

// Viewport holds the geometry of the visible area over a grid of fixed-size
// cells. The zero value is an empty viewport; use New.
type Viewport struct {
	Width, Height         int // visible area
	CellWidth, CellHeight int
	Rows, Cols            int // logical extent
	Overscan              int
	ScrollX, ScrollY      int // offset of the visible area's top-left corner
}

// New creates a viewport over a rows x cols grid of cellWidth x cellHeight
// cells.
func New(rows, cols, cellWidth, cellHeight int) *Viewport {
	return &Viewport{
		Rows:       rows,
		Cols:       cols,
		CellWidth:  cellWidth,
		CellHeight: cellHeight,
	}
}

// Window computes the cells to materialize for the current frame.
func (v *Viewport) Window() Window {
	firstRow, lastRow := Span(v.ScrollY, v.Height, v.CellHeight, v.Rows, v.Overscan)
	firstCol, lastCol := Span(v.ScrollX, v.Width, v.CellWidth, v.Cols, v.Overscan)
	if lastRow < firstRow || lastCol < firstCol {
		return Window{FirstRow: 0, LastRow: -1, FirstCol: 0, LastCol: -1}
	}
	return Window{FirstRow: firstRow, LastRow: lastRow, FirstCol: firstCol, LastCol: lastCol}
}

// Resize updates the visible size and re-clamps the scroll offset. Calling
// it repeatedly with the same size is harmless.
func (v *Viewport) Resize(width, height int) {
	v.Width = max(0, width)
	v.Height = max(0, height)
	v.ScrollTo(v.ScrollX, v.ScrollY)
}

// MaxScroll returns the largest valid scroll offsets.
func (v *Viewport) MaxScroll() (x, y int) {
	x = max(0, v.Cols*v.CellWidth-v.Width)
	y = max(0, v.Rows*v.CellHeight-v.Height)
	return x, y
}

// ScrollTo moves the visible area, clamped to the grid.
func (v *Viewport) ScrollTo(x, y int) {
	maxX, maxY := v.MaxScroll()
	v.ScrollX = min(max(0, x), maxX)
	v.ScrollY = min(max(0, y), maxY)
}

// ScrollBy moves the visible area by a delta, clamped to the grid.
func (v *Viewport) ScrollBy(dx, dy int) {
	v.ScrollTo(v.ScrollX+dx, v.ScrollY+dy)
}

// Reveal scrolls the minimum distance needed for c to be fully visible.
func (v *Viewport) Reveal(c cellid.Coord) {
	x := reveal(v.ScrollX, v.Width, c.Col*v.CellWidth, v.CellWidth)
	y := reveal(v.ScrollY, v.Height, c.Row*v.CellHeight, v.CellHeight)
	v.ScrollTo(x, y)
}

func reveal(offset, visible, start, size int) int {
	switch {
	case start < offset, size >= visible:
		return start
	case start+size > offset+visible:
		return start + size - visible
	}
	return offset
}

// CellAt maps a point inside the visible area to the coordinate under it.
func (v *Viewport) CellAt(x, y int) (cellid.Coord, bool) {
	if x < 0 || y < 0 || x >= v.Width || y >= v.Height || v.CellWidth <= 0 || v.CellHeight <= 0 {
		return cellid.Coord{}, false
	}
	c := cellid.Coord{
		Row: (v.ScrollY + y) / v.CellHeight,
		Col: (v.ScrollX + x) / v.CellWidth,
	}
	if c.Row >= v.Rows || c.Col >= v.Cols {
		return cellid.Coord{}, false
	}
	return c, true
}

// Origin returns the position of c's top-left corner relative to the
// visible area. It may be negative for partially scrolled-out cells.
func (v *Viewport) Origin(c cellid.Coord) (x, y int) {
	return c.Col*v.CellWidth - v.ScrollX, c.Row*v.CellHeight - v.ScrollY
}
