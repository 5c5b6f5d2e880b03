// internal/cellid/doc.go

/*
Package cellid provides the coordinate addressing scheme for the grid.

A cell is identified by a zero-based (row, col) pair. Humans see it as an
"A1"-style address: a bijective base-26 column label (A..Z, AA, AB, ...)
followed by the one-based row number.

This package centralizes all formatting and parsing of addresses. It is pure
and stateless, and enforces no upper bound on the grid extent; clamping to a
configured extent is the caller's concern.
*/
package cellid
