package session

// State is the selection/edit state of the session.
type State int

const (
	StateIdle State = iota
	StateSelected
	StateEditing
)

// String returns a readable name for the state.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateSelected:
		return "selected"
	case StateEditing:
		return "editing"
	default:
		return "unknown"
	}
}

// Surface identifies where a confirm came from.
type Surface int

const (
	// SurfaceGrid is the edit box drawn inside the selected cell.
	SurfaceGrid Surface = iota
	// SurfaceFormulaBar is the input above the grid.
	SurfaceFormulaBar
)

// String returns a readable name for the surface.
func (s Surface) String() string {
	if s == SurfaceFormulaBar {
		return "formula_bar"
	}
	return "grid"
}

// Direction is where the selection moves after a confirm.
type Direction int

const (
	// Down is the confirm key (Enter): next row.
	Down Direction = iota
	// Right is the advance key (Tab): next column.
	Right
)

func (d Direction) delta() (dr, dc int) {
	if d == Right {
		return 0, 1
	}
	return 1, 0
}

// String returns a readable name for the direction.
func (d Direction) String() string {
	if d == Right {
		return "right"
	}
	return "down"
}
