package eval

import (
	"math"
	"strconv"
	"strings"
	"unicode"
)

// LeadingFloat parses the longest prefix of s that forms a decimal number,
// after leading whitespace. Trailing garbage is ignored ("12px" is 12) and
// text without a numeric prefix is 0. "Infinity" with an optional sign is
// accepted.
func LeadingFloat(s string) float64 {
	s = strings.TrimLeftFunc(s, unicode.IsSpace)

	n := scanNumber(s)
	if n == 0 {
		return signedInfinity(s)
	}

	// Out-of-range prefixes come back as ±Inf or 0 alongside a range error,
	// which is the value we want.
	f, _ := strconv.ParseFloat(s[:n], 64)
	return f
}

// scanNumber returns the length of the numeric prefix of s, or 0.
func scanNumber(s string) int {
	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}

	intDigits := countDigits(s[i:])
	i += intDigits

	fracDigits := 0
	if i < len(s) && s[i] == '.' {
		fracDigits = countDigits(s[i+1:])
		if intDigits > 0 || fracDigits > 0 {
			i += 1 + fracDigits
		}
	}
	if intDigits == 0 && fracDigits == 0 {
		return 0
	}

	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		j := i + 1
		if j < len(s) && (s[j] == '+' || s[j] == '-') {
			j++
		}
		if expDigits := countDigits(s[j:]); expDigits > 0 {
			i = j + expDigits
		}
	}
	return i
}

func countDigits(s string) int {
	n := 0
	for n < len(s) && s[n] >= '0' && s[n] <= '9' {
		n++
	}
	return n
}

func signedInfinity(s string) float64 {
	switch {
	case strings.HasPrefix(s, "Infinity"), strings.HasPrefix(s, "+Infinity"):
		return math.Inf(1)
	case strings.HasPrefix(s, "-Infinity"):
		return math.Inf(-1)
	}
	return 0
}
