// Package cellstore defines the sparse cell store: the single owner of the
// sheet's content.
//
// # Why Cell Store Exists
//
// The logical grid is far larger than anything a user will ever populate, so
// content is kept in a sparse mapping from coordinate to record. Memory is
// proportional to the number of non-empty cells written, never to the grid
// extent. All mutation of the sheet is funneled through Write, which gives a
// natural single-writer discipline.
//
// # Content Model
//
// A coordinate holds at most one record, which is either a literal (raw text)
// or a formula (text beginning with the formula marker). Writing replaces any
// prior record. Records are never deleted.
//
// # Change Tracking
//
// Derived values are never cached in the store. Instead the store exposes a
// monotonically increasing Version that changes whenever content changes, so
// consumers (the evaluator's per-frame memo) can tell when to discard what
// they computed.
package cellstore

import (
	"context"
	"errors"
	"strings"

	"github.com/specialistvlad/gridsheet/internal/cellid"
	"github.com/specialistvlad/gridsheet/internal/formula"
)

// ErrInvalidCoord is returned when writing to a negative coordinate.
var ErrInvalidCoord = errors.New("invalid coordinate")

// Kind distinguishes the two kinds of stored content.
type Kind int

const (
	// KindLiteral is raw, non-formula text.
	KindLiteral Kind = iota
	// KindFormula is text beginning with the formula marker.
	KindFormula
)

// String returns a readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindLiteral:
		return "literal"
	case KindFormula:
		return "formula"
	default:
		return "unknown"
	}
}

// Content is a single stored record.
type Content struct {
	Kind Kind
	// Raw is the trimmed text as entered, including the marker for formulas.
	Raw string
}

// IsFormula reports whether the record holds a formula.
func (c Content) IsFormula() bool {
	return c.Kind == KindFormula
}

// Classify trims raw input and decides whether it is a formula or a literal.
func Classify(raw string) Content {
	text := strings.TrimSpace(raw)
	if formula.IsFormula(text) {
		return Content{Kind: KindFormula, Raw: text}
	}
	return Content{Kind: KindLiteral, Raw: text}
}

// Entry is one (coordinate, kind, raw text) triple of a snapshot.
type Entry struct {
	Coord   cellid.Coord
	Content Content
}

// Store is the interface for the sheet's sparse content.
//
// # Thread-Safety Requirements
//
// The sheet is driven from a single event loop, but renderers may take
// snapshots from other goroutines. Implementations MUST be safe for
// concurrent reads alongside the single writer.
type Store interface {
	// Write classifies rawText and stores exactly one record at coord,
	// replacing any prior record.
	//
	// An empty trimmed value at a coordinate with no record is a no-op, so
	// keys exist only for cells that were given content. An empty value at a
	// populated coordinate stores an empty literal; records are never
	// removed.
	//
	// Writing content identical to the stored record does not change the
	// Version.
	//
	// Returns ErrInvalidCoord for negative coordinates. The store does not
	// know the grid extent.
	Write(ctx context.Context, coord cellid.Coord, rawText string) error

	// Read returns the record at coord and true, or the zero Content and
	// false for an empty cell. Read never fails.
	Read(ctx context.Context, coord cellid.Coord) (Content, bool)

	// Len returns the number of records held.
	Len() int

	// Version returns a counter that increases every time content changes.
	Version() uint64

	// Entries returns a snapshot of all records ordered row-major.
	Entries(ctx context.Context) []Entry
}
