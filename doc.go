/*
Package uncertain implements measured quantities with symmetric uncertainties
and the parenthetical shorthand notation used in physics to print them.

Since the mass of the electron is measured to be

	(0.51099895000 ± 0.00000000015) MeV/c^2

the uncertainty can instead be written as digits in parentheses that indicate
an uncertainty on the corresponding least significant digits of the mean:

	0.51099895000(15) MeV/c^2

# Features

  - Immutable quantities, ensuring safe usage across multiple goroutines
  - Formatting with a chosen number of uncertainty digits or a fixed
    mantissa precision
  - Caret-ten (× 10^k) and scientific E exponent notation
  - Parsing of the shorthand, explicit ± and plain number forms

# Representation

A Quantity consists of a mean and a non-negative uncertainty, both stored
as float64 values. Formatting options are supplied per call in an Options
struct and are never stored, so a Quantity has no mutable state.

The formatter aligns the uncertainty's digits against the decimal grid of
the mean's mantissa using the [decimal] package, which guarantees exact
decimal shifting and half-to-even rounding of the parenthetical digits.

# Notation

The general shape of the shorthand is mantissa(uncertainty)exponent, for
example 5.1099895000(15) × 10^-1, where the parenthetical digits denote
the uncertainty in units of the mantissa's last displayed digit.
Two degenerate shapes exist: an exactly known quantity is printed as a
plain number without parentheses, and a quantity whose uncertainty reaches
or exceeds the magnitude of its mean is printed in the explicit form
(mean ± uncertainty), since no leading digit is stable enough to anchor
the shorthand.

# Errors

Errors may occur during parsing, reported as a [ParseError] carrying the
offending text, and during formatting when the options are contradictory
or an argument is NaN or infinite. Degenerate numeric cases are defined
formatting shapes, not errors.

[decimal]: https://pkg.go.dev/github.com/govalues/decimal
*/
package uncertain
