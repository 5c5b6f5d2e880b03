// Package formula recognizes formula cell content and extracts the cell
// references a formula sums over.
//
// The grammar is deliberately tiny: a formula is the marker character
// followed by references joined with '+'. Tokens are not validated here;
// callers resolve each one with cellid.Parse and skip the ones that fail.
package formula

import "strings"

// Marker is the character that distinguishes a formula from a literal.
const Marker = '='

// Separator joins the references of a formula.
const Separator = "+"

// IsFormula reports whether text, once trimmed, begins with Marker.
func IsFormula(text string) bool {
	return strings.HasPrefix(strings.TrimSpace(text), string(Marker))
}

// ParseReferences returns the reference tokens of a formula in order.
// One leading marker is stripped, the remainder is split on Separator and
// each piece is trimmed; empty pieces are dropped.
func ParseReferences(formula string) []string {
	expr := strings.TrimSpace(formula)
	expr = strings.TrimPrefix(expr, string(Marker))
	expr = strings.TrimSpace(expr)

	var refs []string
	for _, piece := range strings.Split(expr, Separator) {
		piece = strings.TrimSpace(piece)
		if piece == "" {
			continue
		}
		refs = append(refs, piece)
	}
	return refs
}
