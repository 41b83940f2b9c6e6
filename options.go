package uncertain

import (
	"errors"
	"strconv"
)

// ExponentStyle selects how a nonzero power of ten is rendered.
type ExponentStyle uint8

const (
	// CaretTen renders exponents as " × 10^k", e.g. 5.11(2) × 10^-1.
	CaretTen ExponentStyle = iota
	// ENotation renders exponents as "ek", e.g. 5.11(2)e-1.
	ENotation
)

// String implements the [fmt.Stringer] interface and returns the name of
// the style.
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (s ExponentStyle) String() string {
	switch s {
	case CaretTen:
		return "CaretTen"
	case ENotation:
		return "ENotation"
	default:
		return "ExponentStyle(" + strconv.Itoa(int(s)) + ")"
	}
}

// defaultUncDigits is the number of significant uncertainty digits shown
// when neither Precision nor UncDigits is set.
const defaultUncDigits = 2

var (
	// ErrOptionConflict is returned by [Format] when both Precision and
	// UncDigits are set. The conflict is always reported, never resolved
	// by precedence.
	ErrOptionConflict = errors.New("precision and uncertainty digits are mutually exclusive")

	errOptionRange = errors.New("option value out of range")
)

// Options control how [Format] renders a quantity.
// Options are passed by value and validated on every call; the zero value
// requests the default rendering: two significant digits of uncertainty,
// caret-ten exponent notation, and a forced leading sign.
type Options struct {
	// Precision is the number of digits rendered after the decimal point
	// of the mean's mantissa. 0 means unset: the precision is derived
	// from UncDigits instead. Mutually exclusive with UncDigits.
	Precision int

	// UncDigits is the number of significant digits shown in the
	// parenthetical uncertainty. 0 means unset and defaults to 2.
	// Mutually exclusive with Precision.
	UncDigits int

	// Style selects the exponent notation.
	Style ExponentStyle

	// ForceSign emits a leading + for non-negative means.
	ForceSign bool
}

// validate checks that the options are consistent.
func (o Options) validate() error {
	if o.Precision < 0 || o.UncDigits < 0 || o.Style > ENotation {
		return errOptionRange
	}
	if o.Precision > 0 && o.UncDigits > 0 {
		return ErrOptionConflict
	}
	return nil
}
