// Package session owns the state of one open sheet: the cell store, the
// evaluator over it, the current selection and the edit buffer.
//
// # States
//
//	Idle      nothing selected
//	Selected  a coordinate is selected, not editing
//	Editing   a coordinate is selected and its buffer is live
//
// Every transition that leaves a cell first commits the pending buffer to
// the store. Without a selection, edit and commit actions are no-ops.
//
// # Entry Surfaces
//
// Edits arrive from two surfaces that behave differently on confirm: the
// in-grid edit box keeps the user editing on the next cell, while the
// formula bar only moves the selection.
//
// The session is driven from a single event loop and is not safe for
// concurrent use. All content mutation goes through the store's Write.
package session
