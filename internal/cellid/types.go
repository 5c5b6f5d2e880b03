// internal/cellid/types.go
package cellid

// Coord is the structured representation of a cell position.
// Both fields are zero-based.
type Coord struct {
	Row int
	Col int
}

// New creates a coordinate from a zero-based row and column.
func New(row, col int) Coord {
	return Coord{Row: row, Col: col}
}

// Valid reports whether both components are non-negative.
func (c Coord) Valid() bool {
	return c.Row >= 0 && c.Col >= 0
}

// Offset returns the coordinate moved by dr rows and dc columns. The result
// may be invalid; use Clamp to bring it back into an extent.
func (c Coord) Offset(dr, dc int) Coord {
	return Coord{Row: c.Row + dr, Col: c.Col + dc}
}

// Clamp limits the coordinate to [0, rows) x [0, cols).
func (c Coord) Clamp(rows, cols int) Coord {
	return Coord{Row: clamp(c.Row, rows), Col: clamp(c.Col, cols)}
}

// Less orders coordinates row-major.
func (c Coord) Less(other Coord) bool {
	if c.Row != other.Row {
		return c.Row < other.Row
	}
	return c.Col < other.Col
}

func clamp(v, n int) int {
	if v >= n {
		v = n - 1
	}
	if v < 0 {
		v = 0
	}
	return v
}
