package uncertain

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/govalues/decimal"
)

// Format renders a mean and a symmetric uncertainty in the parenthetical
// shorthand notation, where the digits in parentheses indicate an
// uncertainty on the corresponding least significant digits of the mean:
//
//	Format(0.51099895000, 0.00000000015, Options{})
//	// +5.1099895000(15) × 10^-1
//
// The mean is normalized to scientific notation based on its magnitude;
// an exponent of zero renders no suffix in either style.
// The sign of the uncertainty is discarded.
//
// Two degenerate cases use different shapes:
//   - A zero uncertainty renders the mean alone, with no parentheses.
//   - An uncertainty that equals or exceeds the absolute value of the mean
//     leaves no stable leading digit to anchor the shorthand, so the result
//     degrades to the explicit form "(mean ± uncertainty)", both numbers in
//     Go's shortest round-trip representation.
//
// Format returns an error if the options are contradictory (see
// [ErrOptionConflict]) or out of range, or if either argument is NaN or
// infinite.
func Format(mean, uncertainty float64, opts Options) (string, error) {
	s, err := format(mean, uncertainty, opts)
	if err != nil {
		return "", fmt.Errorf("formatting (%v ± %v): %w", mean, uncertainty, err)
	}
	return s, nil
}

//gocyclo:ignore
func format(mean, unc float64, o Options) (string, error) {
	if err := o.validate(); err != nil {
		return "", err
	}
	if math.IsNaN(mean) || math.IsInf(mean, 0) {
		return "", fmt.Errorf("special value %v", mean)
	}
	if math.IsNaN(unc) || math.IsInf(unc, 0) {
		return "", fmt.Errorf("special value %v", unc)
	}
	unc = math.Abs(unc)

	// The empty option set implies a forced sign.
	plus := o.ForceSign || o == Options{}

	// An exact quantity is just the mean.
	if unc == 0 {
		prec := -1
		if o.Precision > 0 {
			prec = o.Precision
		}
		mant, exp, err := splitExp(strconv.FormatFloat(mean, 'e', prec, 64))
		if err != nil {
			return "", err
		}
		return signPrefix(mant, plus) + expSuffix(exp, o.Style), nil
	}

	// A dominant uncertainty is a question about every digit of the mean,
	// so the shorthand degrades to the explicit form.
	if unc >= math.Abs(mean) {
		m := strconv.FormatFloat(mean, 'g', -1, 64)
		u := strconv.FormatFloat(unc, 'g', -1, 64)
		return "(" + signPrefix(m, plus) + " ± " + u + ")", nil
	}

	umant, uexp, err := decompose(unc)
	if err != nil {
		return "", err
	}

	// k is the number of mantissa digits after the leading digit: either
	// the fixed precision, or however many digits it takes to show the
	// requested significant digits of the uncertainty on the mean's grid.
	k := o.Precision
	if k == 0 {
		_, mexp, err := splitExp(strconv.FormatFloat(mean, 'e', -1, 64))
		if err != nil {
			return "", err
		}
		d := o.UncDigits
		if d == 0 {
			d = defaultUncDigits
		}
		k = (mexp - uexp) + (d - 1)
		if k < 0 {
			k = 0
		}
	}

	// Rounding the mean to k fractional digits can carry past the leading
	// digit (9.996 → 10.00); FormatFloat renormalizes the mantissa and
	// absorbs the carry into the returned exponent.
	mant, mexp, err := splitExp(strconv.FormatFloat(mean, 'e', k, 64))
	if err != nil {
		return "", err
	}

	paren, err := alignUncertainty(umant, uexp+k-mexp)
	if err != nil {
		return "", err
	}
	return signPrefix(mant, plus) + "(" + paren + ")" + expSuffix(mexp, o.Style), nil
}

// decompose splits a finite float into its shortest decimal mantissa m,
// 1 <= |m| < 10 for nonzero inputs, and a power of ten e such that
// f = m × 10^e.
func decompose(f float64) (decimal.Decimal, int, error) {
	mant, exp, err := splitExp(strconv.FormatFloat(f, 'e', -1, 64))
	if err != nil {
		return decimal.Decimal{}, 0, err
	}
	m, err := decimal.Parse(mant)
	if err != nil {
		return decimal.Decimal{}, 0, fmt.Errorf("decomposing %v: %w", f, err)
	}
	return m, exp, nil
}

// splitExp separates scientific notation produced by strconv.FormatFloat
// into its mantissa and exponent.
func splitExp(s string) (string, int, error) {
	i := strings.IndexByte(s, 'e')
	if i < 0 {
		return "", 0, fmt.Errorf("missing exponent in %q", s)
	}
	exp, err := strconv.Atoi(s[i+1:])
	if err != nil {
		return "", 0, fmt.Errorf("malformed exponent in %q: %w", s, err)
	}
	return s[:i], exp, nil
}

// alignUncertainty places the uncertainty's digits on the decimal grid of
// the mean's last displayed digit and returns round(u × 10^shift) as a
// plain digit string.
// A result of "0" means the uncertainty vanishes at this precision, and is
// still shown. Rounding can carry across a power of ten (9.6 → 10), in
// which case the string has one more digit than requested.
func alignUncertainty(umant decimal.Decimal, shift int) (string, error) {
	coef := umant.Coef()
	scale := umant.Scale()
	if shift >= scale {
		// The grid sits at or below the last known digit, so the value is
		// exact: the known digits padded with zeros.
		return strconv.FormatUint(coef, 10) + strings.Repeat("0", shift-scale), nil
	}
	scale -= shift
	if scale > decimal.MaxScale {
		// Far below the grid's resolution.
		return "0", nil
	}
	d, err := decimal.New(int64(coef), scale) //nolint:gosec
	if err != nil {
		return "", fmt.Errorf("aligning uncertainty: %w", err)
	}
	return d.Round(0).String(), nil
}

// signPrefix prepends a + to non-negative mantissas when a sign is forced.
func signPrefix(mant string, plus bool) string {
	if plus && mant[0] != '-' {
		return "+" + mant
	}
	return mant
}

// expSuffix renders the exponent; a zero exponent carries no suffix in
// either style.
func expSuffix(exp int, style ExponentStyle) string {
	if exp == 0 {
		return ""
	}
	s := strconv.Itoa(exp)
	if exp > 0 {
		s = "+" + s
	}
	if style == ENotation {
		return "e" + s
	}
	return " × 10^" + s
}
