package uncertain

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// A ParseError records a failed attempt to read an uncertain quantity
// from text.
type ParseError struct {
	Text string // the offending input
	Err  error  // the reason the input was rejected
}

func (e *ParseError) Error() string {
	return "parsing " + strconv.Quote(e.Text) + ": " + e.Err.Error()
}

func (e *ParseError) Unwrap() error { return e.Err }

var (
	errUnknownSyntax = errors.New("unrecognized syntax")
	errAmbiguous     = errors.New("both ± and parenthetical uncertainty present")
)

// number is a signed decimal literal with an optional exponent of its own.
const number = `[+-]?(?:[0-9]+(?:\.[0-9]*)?|\.[0-9]+)(?:[eE][+-]?[0-9]+)?`

var (
	rePlusMinus = regexp.MustCompile(
		`^\(?\s*(` + number + `)\s*(?:±|\+/-)\s*(` + number + `)\s*\)?` +
			`(?:[eE]([+-]?[0-9]+)|\s*[×x]\s*10\^([+-]?[0-9]+))?$`)
	reShorthand = regexp.MustCompile(
		`^([+-]?)([0-9]+)(?:\.([0-9]*))?\(([0-9]+)\)` +
			`(?:[eE]([+-]?[0-9]+)|\s*[×x]\s*10\^([+-]?[0-9]+))?$`)
	rePlain = regexp.MustCompile(
		`^(` + number + `)(?:\s*[×x]\s*10\^([+-]?[0-9]+))?$`)
	reParenUnc = regexp.MustCompile(`\([0-9]+\)`)
)

// Parse converts a string to a quantity.
// The input must be in one of the following formats:
//
//	0.51099895000(15)
//	+5.10998950000(150)e-1
//	7.2973525693(11) × 10^-3
//	(1836.15267343 ± 0.00000011)
//	1 +/- 0.5
//	9.1093837015e-31
//
// The parenthetical digits denote the uncertainty in units of the
// mantissa's last displayed digit, a trailing exponent applies to both the
// mean and the uncertainty, and a plain number is an exact quantity.
//
// Parse returns a [ParseError] if the string matches none of the supported
// forms, mixes the ± and parenthetical notations, or does not fit a
// float64.
func Parse(text string) (Quantity, error) {
	q, err := parse(strings.TrimSpace(text))
	if err != nil {
		return Quantity{}, &ParseError{Text: text, Err: err}
	}
	return q, nil
}

// MustParse is like [Parse] but panics if the string cannot be parsed.
// It simplifies safe initialization of global variables holding quantities.
func MustParse(text string) Quantity {
	q, err := Parse(text)
	if err != nil {
		panic(fmt.Sprintf("Parse(%q) failed: %v", text, err))
	}
	return q
}

func parse(s string) (Quantity, error) {
	if strings.Contains(s, "±") || strings.Contains(s, "+/-") {
		if reParenUnc.MatchString(s) {
			return Quantity{}, errAmbiguous
		}
		m := rePlusMinus.FindStringSubmatch(s)
		if m == nil {
			return Quantity{}, errUnknownSyntax
		}
		return parsePlusMinus(m)
	}
	if m := reShorthand.FindStringSubmatch(s); m != nil {
		return parseShorthand(m)
	}
	if m := rePlain.FindStringSubmatch(s); m != nil {
		return parsePlain(m)
	}
	return Quantity{}, errUnknownSyntax
}

// parsePlusMinus reconstructs the explicit form "(mean ± uncertainty)".
func parsePlusMinus(m []string) (Quantity, error) {
	exp, err := suffixExp(m[3], m[4])
	if err != nil {
		return Quantity{}, err
	}
	mean, err := applyExp(m[1], exp)
	if err != nil {
		return Quantity{}, err
	}
	unc, err := applyExp(m[2], exp)
	if err != nil {
		return Quantity{}, err
	}
	return New(mean, unc)
}

// parseShorthand reconstructs the parenthetical form: the mean from the
// concatenated mantissa digits, and the uncertainty from the parenthetical
// integer placed at the position of the mantissa's last fractional digit.
func parseShorthand(m []string) (Quantity, error) {
	exp, err := suffixExp(m[5], m[6])
	if err != nil {
		return Quantity{}, err
	}
	mant := m[1] + m[2]
	if m[3] != "" {
		mant += "." + m[3]
	}
	mean, err := applyExp(mant, exp)
	if err != nil {
		return Quantity{}, err
	}
	unc, err := applyExp(m[4], exp-len(m[3]))
	if err != nil {
		return Quantity{}, err
	}
	return New(mean, unc)
}

// parsePlain reconstructs a bare number as an exact quantity.
func parsePlain(m []string) (Quantity, error) {
	exp := 0
	if m[2] != "" {
		var err error
		exp, err = strconv.Atoi(m[2])
		if err != nil {
			return Quantity{}, err
		}
	}
	mean, err := applyExp(m[1], exp)
	if err != nil {
		return Quantity{}, err
	}
	return New(mean, 0)
}

// suffixExp reads the trailing exponent, captured either from the e form
// or from the caret-ten form.
func suffixExp(e, caret string) (int, error) {
	s := e
	if s == "" {
		s = caret
	}
	if s == "" {
		return 0, nil
	}
	return strconv.Atoi(s)
}

// applyExp scales a decimal literal by 10^exp without a round trip through
// binary floating point: the exponent is folded into the literal before a
// single ParseFloat, so the reconstruction is exact.
func applyExp(num string, exp int) (float64, error) {
	if i := strings.IndexAny(num, "eE"); i >= 0 {
		e, err := strconv.Atoi(num[i+1:])
		if err != nil {
			return 0, err
		}
		exp += e
		num = num[:i]
	}
	if exp != 0 {
		num += "e" + strconv.Itoa(exp)
	}
	return strconv.ParseFloat(num, 64)
}
