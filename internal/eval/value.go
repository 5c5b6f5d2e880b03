package eval

import (
	"math"
	"strconv"
	"strings"
)

// Kind is the type of a computed value.
type Kind uint8

const (
	KindEmpty Kind = iota
	KindText
	KindNumber
	KindError
)

// CycleError is the error value shown for cells involved in, or depending
// on, a circular reference.
const CycleError = "#CYCLE!"

// Value is the displayable result of evaluating a cell.
type Value struct {
	Kind   Kind
	Text   string  // literal text, or the error code for KindError
	Number float64 // formula sum for KindNumber
}

// Empty is the value of a cell with no content.
func Empty() Value { return Value{Kind: KindEmpty} }

// Text wraps literal text.
func Text(s string) Value { return Value{Kind: KindText, Text: s} }

// Number wraps a formula result.
func Number(f float64) Value { return Value{Kind: KindNumber, Number: f} }

// Error wraps an error code such as CycleError.
func Error(code string) Value { return Value{Kind: KindError, Text: code} }

// IsError reports whether the value is an error value.
func (v Value) IsError() bool { return v.Kind == KindError }

// Numeric returns the value as a number for use inside a sum. Text is read
// leniently (see LeadingFloat); empty and error values count as zero.
func (v Value) Numeric() float64 {
	switch v.Kind {
	case KindNumber:
		return v.Number
	case KindText:
		return LeadingFloat(v.Text)
	default:
		return 0
	}
}

// String renders the value for display.
func (v Value) String() string {
	switch v.Kind {
	case KindText, KindError:
		return v.Text
	case KindNumber:
		return FormatNumber(v.Number)
	default:
		return ""
	}
}

// FormatNumber renders f in its shortest round-tripping form, switching to
// exponent notation only for very large or very small magnitudes.
func FormatNumber(f float64) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	case f == 0:
		return "0"
	}

	abs := math.Abs(f)
	if abs >= 1e21 || abs < 1e-6 {
		return trimExponent(strconv.FormatFloat(f, 'e', -1, 64))
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// trimExponent drops the zero padding strconv puts in the exponent, so
// "1e-07" reads "1e-7".
func trimExponent(s string) string {
	mant, exp, ok := strings.Cut(s, "e")
	if !ok {
		return s
	}
	sign := exp[:1]
	digits := strings.TrimLeft(exp[1:], "0")
	if digits == "" {
		digits = "0"
	}
	return mant + "e" + sign + digits
}

// LooksNumeric reports whether the value reads as a number in full: a
// formula result, or literal text that parses as a number once trimmed.
func (v Value) LooksNumeric() bool {
	switch v.Kind {
	case KindNumber:
		return true
	case KindText:
		_, err := strconv.ParseFloat(strings.TrimSpace(v.Text), 64)
		return err == nil
	default:
		return false
	}
}
