// internal/cellid/parser.go
package cellid

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
)

// ErrInvalidAddress is returned for any string that is not an "A1"-style
// address.
var ErrInvalidAddress = errors.New("not a valid address")

// addressRegex splits an address into its column letters and row digits.
var addressRegex = regexp.MustCompile(`^([A-Z]+)([0-9]+)$`)

// Parse converts an "A1"-style address into a coordinate. It is the exact
// inverse of Address.
func Parse(address string) (Coord, error) {
	matches := addressRegex.FindStringSubmatch(address)
	if matches == nil {
		return Coord{}, fmt.Errorf("%w: %q", ErrInvalidAddress, address)
	}

	col, err := ParseColumnLabel(matches[1])
	if err != nil {
		return Coord{}, fmt.Errorf("%w: %q", ErrInvalidAddress, address)
	}

	row, err := strconv.Atoi(matches[2])
	if err != nil || row < 1 {
		// Row digits are one-based; "A0" and overflowing rows are rejected.
		return Coord{}, fmt.Errorf("%w: %q: row out of range", ErrInvalidAddress, address)
	}

	return Coord{Row: row - 1, Col: col}, nil
}

// ParseColumnLabel converts a column label back into its zero-based index.
func ParseColumnLabel(label string) (int, error) {
	if label == "" {
		return 0, fmt.Errorf("%w: empty column label", ErrInvalidAddress)
	}

	n := 0
	for i := 0; i < len(label); i++ {
		ch := label[i]
		if ch < 'A' || ch > 'Z' {
			return 0, fmt.Errorf("%w: invalid column letter %q", ErrInvalidAddress, ch)
		}
		if n > (math.MaxInt-26)/26 {
			return 0, fmt.Errorf("%w: column label %q overflows", ErrInvalidAddress, label)
		}
		n = n*26 + int(ch-'A') + 1
	}
	return n - 1, nil
}

// MustParse is like Parse but panics on error. Intended for tests and
// constants.
func MustParse(address string) Coord {
	c, err := Parse(address)
	if err != nil {
		panic(err)
	}
	return c
}
