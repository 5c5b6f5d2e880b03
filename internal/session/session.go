package session

import (
	"context"
	"fmt"

	"github.com/specialistvlad/gridsheet/internal/cellid"
	"github.com/specialistvlad/gridsheet/internal/cellstore"
	"github.com/specialistvlad/gridsheet/internal/ctxlog"
	"github.com/specialistvlad/gridsheet/internal/eval"
)

// Session is one open sheet with its selection and edit state.
type Session struct {
	store cellstore.Store
	eval  *eval.Evaluator

	rows, cols int

	selected     cellid.Coord
	hasSelection bool
	editing      bool
	buffer       string
}

// New creates a session over store with a rows x cols extent. The extent
// only bounds navigation; the store itself is extent-agnostic.
func New(store cellstore.Store, evaluator *eval.Evaluator, rows, cols int) *Session {
	return &Session{
		store: store,
		eval:  evaluator,
		rows:  rows,
		cols:  cols,
	}
}

// Store returns the session's cell store.
func (s *Session) Store() cellstore.Store { return s.store }

// Evaluator returns the session's evaluator.
func (s *Session) Evaluator() *eval.Evaluator { return s.eval }

// Extent returns the navigable grid size.
func (s *Session) Extent() (rows, cols int) { return s.rows, s.cols }

// State returns the current state.
func (s *Session) State() State {
	switch {
	case !s.hasSelection:
		return StateIdle
	case s.editing:
		return StateEditing
	default:
		return StateSelected
	}
}

// Selection returns the selected coordinate, if any.
func (s *Session) Selection() (cellid.Coord, bool) {
	return s.selected, s.hasSelection
}

// IsSelected reports whether c is the selected coordinate.
func (s *Session) IsSelected(c cellid.Coord) bool {
	return s.hasSelection && s.selected == c
}

// IsEditing reports whether c is being edited.
func (s *Session) IsEditing(c cellid.Coord) bool {
	return s.IsSelected(c) && s.editing
}

// Buffer returns the in-progress edit text.
func (s *Session) Buffer() string {
	return s.buffer
}

// SetBuffer replaces the edit text. Without a selection it is a no-op.
func (s *Session) SetBuffer(text string) {
	if !s.hasSelection {
		return
	}
	s.buffer = text
}

// Value returns the display value of c.
func (s *Session) Value(ctx context.Context, c cellid.Coord) eval.Value {
	return s.eval.Value(ctx, c)
}

// RawText returns the stored formula or literal text of c, or "".
func (s *Session) RawText(ctx context.Context, c cellid.Coord) string {
	content, ok := s.store.Read(ctx, c)
	if !ok {
		return ""
	}
	return content.Raw
}

// Commit writes the buffer to the selected cell. The store trims and
// classifies the text, and skips writes that would not change anything,
// so committing an unchanged buffer is idempotent.
func (s *Session) Commit(ctx context.Context) error {
	if !s.hasSelection {
		return nil
	}
	if err := s.store.Write(ctx, s.selected, s.buffer); err != nil {
		return fmt.Errorf("failed to commit %s: %w", s.selected, err)
	}
	s.buffer = s.RawText(ctx, s.selected)
	return nil
}

// Click commits any pending edit, whether typed in the grid or the formula
// bar, selects c and starts editing it with the buffer pre-filled from its
// content.
func (s *Session) Click(ctx context.Context, c cellid.Coord) error {
	if err := s.Commit(ctx); err != nil {
		return err
	}
	s.selectCell(ctx, c)
	s.editing = true
	ctxlog.FromContext(ctx).Debug("Cell clicked.", "cell", s.selected.String(), "state", s.State().String())
	return nil
}

// Select commits any pending edit and selects c without editing.
func (s *Session) Select(ctx context.Context, c cellid.Coord) error {
	if err := s.Commit(ctx); err != nil {
		return err
	}
	s.selectCell(ctx, c)
	s.editing = false
	return nil
}

// Confirm commits the buffer and moves the selection one step in dir.
//
// From SurfaceGrid the session keeps editing on the new cell. From
// SurfaceFormulaBar only the selection moves and the session ends in
// StateSelected.
func (s *Session) Confirm(ctx context.Context, surface Surface, dir Direction) error {
	if !s.hasSelection {
		return nil
	}
	if err := s.Commit(ctx); err != nil {
		return err
	}

	dr, dc := dir.delta()
	from := s.selected
	s.selectCell(ctx, from.Offset(dr, dc))
	s.editing = surface == SurfaceGrid

	ctxlog.FromContext(ctx).Debug("Edit confirmed.",
		"surface", surface.String(),
		"direction", dir.String(),
		"from", from.String(),
		"to", s.selected.String(),
		"state", s.State().String(),
	)
	return nil
}

// Blur handles loss of focus on the edit surface: commit, then Selected.
func (s *Session) Blur(ctx context.Context) error {
	if !s.hasSelection {
		return nil
	}
	if err := s.Commit(ctx); err != nil {
		return err
	}
	s.editing = false
	return nil
}

// Cancel drops the buffer, restoring it from the store, and leaves
// editing without writing anything.
func (s *Session) Cancel(ctx context.Context) {
	if !s.hasSelection {
		return
	}
	s.buffer = s.RawText(ctx, s.selected)
	s.editing = false
}

// Edit enters editing on the current selection, keeping the buffer.
func (s *Session) Edit() {
	if !s.hasSelection {
		return
	}
	s.editing = true
}

// Move commits any pending edit and moves the selection by (dr, dc),
// clamped to the extent. The session ends in StateSelected.
func (s *Session) Move(ctx context.Context, dr, dc int) error {
	if !s.hasSelection {
		return nil
	}
	return s.Select(ctx, s.selected.Offset(dr, dc))
}

// selectCell moves the selection and pre-fills the buffer.
func (s *Session) selectCell(ctx context.Context, c cellid.Coord) {
	s.selected = c.Clamp(s.rows, s.cols)
	s.hasSelection = true
	s.buffer = s.RawText(ctx, s.selected)
}
