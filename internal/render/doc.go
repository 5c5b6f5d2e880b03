// Package render draws a sheet session into terminal text.
//
// Only the cells inside the viewport's window are evaluated and drawn, so
// the cost of a frame depends on the screen size and not on the size of the
// sheet. The package has no terminal state of its own; the interactive
// program and the one-shot render mode both call Frame.
package render
