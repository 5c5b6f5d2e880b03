// internal/cellid/address.go
package cellid

import (
	"strconv"
)

// ColumnLabel converts a zero-based column index into its letter label:
// 0 -> "A", 25 -> "Z", 26 -> "AA", 701 -> "ZZ". Negative input yields "".
func ColumnLabel(col int) string {
	if col < 0 {
		return ""
	}

	// Bijective base-26 has no zero digit, so each step shifts by one.
	var buf [16]byte
	i := len(buf)
	for n := col; ; n = n/26 - 1 {
		i--
		buf[i] = byte('A' + n%26)
		if n < 26 {
			break
		}
	}
	return string(buf[i:])
}

// Address formats a zero-based (row, col) pair as an "A1"-style address.
func Address(row, col int) string {
	return ColumnLabel(col) + strconv.Itoa(row+1)
}

// String serializes the coordinate into its canonical address.
func (c Coord) String() string {
	return Address(c.Row, c.Col)
}
