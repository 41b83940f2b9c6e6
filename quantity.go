package uncertain

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Quantity type represents a measured value with a symmetric uncertainty.
// Its zero value corresponds to an exact 0.
// Quantity is designed to be safe for concurrent use by multiple goroutines.
type Quantity struct {
	mean float64 // measured central value
	unc  float64 // symmetric uncertainty, never negative
}

var errInvalidQuantity = errors.New("invalid quantity")

// New returns a quantity with the given mean and uncertainty.
// The sign of the uncertainty is discarded.
//
// New returns an error if either argument is NaN or infinite.
func New(mean, uncertainty float64) (Quantity, error) {
	if math.IsNaN(mean) || math.IsInf(mean, 0) {
		return Quantity{}, fmt.Errorf("converting mean: special value %v", mean)
	}
	if math.IsNaN(uncertainty) || math.IsInf(uncertainty, 0) {
		return Quantity{}, fmt.Errorf("converting uncertainty: special value %v", uncertainty)
	}
	return Quantity{mean: mean, unc: math.Abs(uncertainty)}, nil
}

// MustNew is like [New] but panics if the quantity cannot be constructed.
// It simplifies safe initialization of global variables holding quantities.
func MustNew(mean, uncertainty float64) Quantity {
	q, err := New(mean, uncertainty)
	if err != nil {
		panic(fmt.Sprintf("New(%v, %v) failed: %v", mean, uncertainty, err))
	}
	return q
}

// Mean returns the central value of the quantity.
func (q Quantity) Mean() float64 {
	return q.mean
}

// Uncertainty returns the symmetric uncertainty of the quantity.
// It is never negative.
func (q Quantity) Uncertainty() float64 {
	return q.unc
}

// IsExact returns:
//
//	true  if the uncertainty is 0
//	false otherwise
func (q Quantity) IsExact() bool {
	return q.unc == 0
}

// IsZero returns:
//
//	true  if the mean is 0
//	false otherwise
func (q Quantity) IsZero() bool {
	return q.mean == 0
}

// Sign returns:
//
//	-1 if the mean is negative
//	 0 if the mean is 0
//	+1 if the mean is positive
func (q Quantity) Sign() int {
	switch {
	case q.mean < 0:
		return -1
	case q.mean > 0:
		return 1
	default:
		return 0
	}
}

// Text returns the shorthand representation of the quantity under the
// given options.
// See also function [Format].
func (q Quantity) Text(opts Options) (string, error) {
	return Format(q.mean, q.unc, opts)
}

// String implements the [fmt.Stringer] interface and returns the default
// rendering of the quantity: two significant digits of uncertainty,
// caret-ten exponent notation, and a forced leading sign.
// See also methods [Quantity.Text], [Quantity.Format].
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (q Quantity) String() string {
	s, err := Format(q.mean, q.unc, Options{})
	if err != nil {
		return q.explicit()
	}
	return s
}

// explicit returns the ± form with shortest round-trip members.
// It renders any pair of floats, including values New rejects.
func (q Quantity) explicit() string {
	m := strconv.FormatFloat(q.mean, 'g', -1, 64)
	u := strconv.FormatFloat(q.unc, 'g', -1, 64)
	return "(" + m + " ± " + u + ")"
}

// Format implements the [fmt.Formatter] interface.
// The following [format verbs] are available:
//
//	| Verb   | Example                    | Description           |
//	| ------ | -------------------------- | --------------------- |
//	| %s, %v | 5.1099895000(15) × 10^-1   | Caret-ten notation    |
//	| %e, %E | 5.1099895000(15)e-1        | Scientific E notation |
//	| %q     | "5.1099895000(15) × 10^-1" | Quoted caret-ten      |
//
// The '+' format flag forces a leading sign and the '-' flag left-aligns
// within the width.
// A precision fixes the number of mantissa digits after the decimal point
// instead of deriving it from the uncertainty; a precision of 0 is
// ignored, like [Options.Precision].
//
// [format verbs]: https://pkg.go.dev/fmt#hdr-Printing
// [fmt.Formatter]: https://pkg.go.dev/fmt#Formatter
func (q Quantity) Format(state fmt.State, verb rune) {
	var opts Options
	if verb == 'e' || verb == 'E' {
		opts.Style = ENotation
	}
	if state.Flag('+') {
		opts.ForceSign = true
	}
	if p, ok := state.Precision(); ok && p > 0 {
		opts.Precision = p
	} else {
		opts.UncDigits = defaultUncDigits
	}

	s, err := Format(q.mean, q.unc, opts)
	if err != nil {
		s = q.explicit()
	}

	// Quotes
	if verb == 'q' || verb == 'Q' {
		s = "\"" + s + "\""
	}

	// Padding
	if w, ok := state.Width(); ok {
		if n := w - utf8.RuneCountInString(s); n > 0 {
			if state.Flag('-') {
				s += strings.Repeat(" ", n)
			} else {
				s = strings.Repeat(" ", n) + s
			}
		}
	}

	// Writing result
	//nolint:errcheck
	switch verb {
	case 'q', 'Q', 's', 'S', 'v', 'V', 'e', 'E':
		state.Write([]byte(s))
	default:
		state.Write([]byte("%!"))
		state.Write([]byte{byte(verb)})
		state.Write([]byte("(uncertain.Quantity="))
		state.Write([]byte(s))
		state.Write([]byte(")"))
	}
}

// AppendText implements the [encoding.TextAppender] interface.
// AppendText appends the lossless form "mean±uncertainty" with shortest
// round-trip members, or just the mean when the quantity is exact, so
// that [Parse] recovers the quantity bit for bit.
// Use [Quantity.Text] for the display shorthand, which rounds.
//
// [encoding.TextAppender]: https://pkg.go.dev/encoding#TextAppender
func (q Quantity) AppendText(text []byte) ([]byte, error) {
	text = strconv.AppendFloat(text, q.mean, 'g', -1, 64)
	if q.unc != 0 {
		text = append(text, "±"...)
		text = strconv.AppendFloat(text, q.unc, 'g', -1, 64)
	}
	return text, nil
}

// MarshalText implements the [encoding.TextMarshaler] interface.
// See also method [Quantity.AppendText].
//
// [encoding.TextMarshaler]: https://pkg.go.dev/encoding#TextMarshaler
func (q Quantity) MarshalText() ([]byte, error) {
	return q.AppendText(nil)
}

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
// See also constructor [Parse].
//
// [encoding.TextUnmarshaler]: https://pkg.go.dev/encoding#TextUnmarshaler
func (q *Quantity) UnmarshalText(text []byte) error {
	var err error
	*q, err = Parse(string(text))
	if err != nil {
		return fmt.Errorf("unmarshaling %T: %w", Quantity{}, err)
	}
	return nil
}

// UnmarshalJSON implements the [json.Unmarshaler] interface.
// UnmarshalJSON accepts a quoted quantity in any form [Parse] supports,
// a bare JSON number (an exact quantity), or null.
//
// [json.Unmarshaler]: https://pkg.go.dev/encoding/json#Unmarshaler
func (q *Quantity) UnmarshalJSON(text []byte) error {
	if string(text) == "null" {
		return nil
	}
	if len(text) >= 2 && text[0] == '"' && text[len(text)-1] == '"' {
		text = text[1 : len(text)-1]
	}
	var err error
	*q, err = Parse(string(text))
	if err != nil {
		return fmt.Errorf("unmarshaling %T: %w", Quantity{}, err)
	}
	return nil
}

// MarshalJSON implements the [json.Marshaler] interface.
// MarshalJSON always returns a quoted "mean±uncertainty" string.
// See also method [Quantity.AppendText].
//
// [json.Marshaler]: https://pkg.go.dev/encoding/json#Marshaler
func (q Quantity) MarshalJSON() ([]byte, error) {
	text := make([]byte, 0, 48)
	text = append(text, '"')
	text, _ = q.AppendText(text)
	text = append(text, '"')
	return text, nil
}

// UnmarshalBinary implements the [encoding.BinaryUnmarshaler] interface.
// See also constructor [Parse].
//
// [encoding.BinaryUnmarshaler]: https://pkg.go.dev/encoding#BinaryUnmarshaler
func (q *Quantity) UnmarshalBinary(data []byte) error {
	var err error
	*q, err = Parse(string(data))
	if err != nil {
		return fmt.Errorf("unmarshaling %T: %w", Quantity{}, err)
	}
	return nil
}

// AppendBinary implements the [encoding.BinaryAppender] interface.
// See also method [Quantity.AppendText].
//
// [encoding.BinaryAppender]: https://pkg.go.dev/encoding#BinaryAppender
func (q Quantity) AppendBinary(data []byte) ([]byte, error) {
	return q.AppendText(data)
}

// MarshalBinary implements the [encoding.BinaryMarshaler] interface.
// See also method [Quantity.AppendText].
//
// [encoding.BinaryMarshaler]: https://pkg.go.dev/encoding#BinaryMarshaler
func (q Quantity) MarshalBinary() ([]byte, error) {
	return q.AppendText(nil)
}

// UnmarshalBSONValue implements the [v2/bson.ValueUnmarshaler] interface.
//
// [v2/bson.ValueUnmarshaler]: https://pkg.go.dev/go.mongodb.org/mongo-driver/v2/bson#ValueUnmarshaler
func (q *Quantity) UnmarshalBSONValue(typ byte, data []byte) error {
	// constants are from https://bsonspec.org/spec.html
	var err error
	switch typ {
	case 1:
		*q, err = parseBSONDouble(data)
	case 2:
		*q, err = parseBSONString(data)
	case 10:
		// null, do nothing
	default:
		err = fmt.Errorf("BSON type %d is not supported", typ)
	}
	if err != nil {
		err = fmt.Errorf("converting from BSON type %d to %T: %w", typ, Quantity{}, err)
	}
	return err
}

// MarshalBSONValue implements the [v2/bson.ValueMarshaler] interface.
// MarshalBSONValue always returns a "mean±uncertainty" string.
// See also method [Quantity.AppendText].
//
// [v2/bson.ValueMarshaler]: https://pkg.go.dev/go.mongodb.org/mongo-driver/v2/bson#ValueMarshaler
func (q Quantity) MarshalBSONValue() (typ byte, data []byte, err error) {
	return 2, q.bsonString(), nil
}

// parseBSONDouble parses a BSON double to an exact quantity.
// The byte order of the input data must be little-endian.
func parseBSONDouble(data []byte) (Quantity, error) {
	if len(data) < 8 {
		return Quantity{}, fmt.Errorf("%w: invalid data length %v", errInvalidQuantity, len(data))
	}
	var u uint64
	for i := 0; i < 8; i++ {
		u |= uint64(data[i]) << (8 * i)
	}
	return New(math.Float64frombits(u), 0)
}

// parseBSONString parses a BSON string to a quantity.
// The byte order of the input data must be little-endian.
func parseBSONString(data []byte) (Quantity, error) {
	if len(data) < 4 {
		return Quantity{}, fmt.Errorf("%w: invalid data length %v", errInvalidQuantity, len(data))
	}
	u := uint32(data[0])
	u |= uint32(data[1]) << 8
	u |= uint32(data[2]) << 16
	u |= uint32(data[3]) << 24
	l := int(int32(u)) //nolint:gosec
	if l < 1 || len(data) < l+4 {
		return Quantity{}, fmt.Errorf("%w: invalid string length %v", errInvalidQuantity, l)
	}
	if data[l+4-1] != 0 {
		return Quantity{}, fmt.Errorf("%w: invalid null terminator %v", errInvalidQuantity, data[l+4-1])
	}
	s := string(data[4 : l+4-1])
	return Parse(s)
}

// bsonString returns the BSON string representation of the quantity.
// The byte order of the result is little-endian.
func (q Quantity) bsonString() []byte {
	s, _ := q.MarshalText()
	l := len(s) + 1
	data := make([]byte, 4+l)
	data[0] = byte(l)
	data[1] = byte(l >> 8)
	data[2] = byte(l >> 16)
	data[3] = byte(l >> 24)
	copy(data[4:], s)
	data[4+l-1] = 0
	return data
}

// Scan implements the [sql.Scanner] interface.
//
// [sql.Scanner]: https://pkg.go.dev/database/sql#Scanner
func (q *Quantity) Scan(value any) error {
	var err error
	switch value := value.(type) {
	case string:
		*q, err = Parse(value)
	case []byte:
		*q, err = Parse(string(value))
	case float64:
		*q, err = New(value, 0)
	case int64:
		*q, err = New(float64(value), 0)
	case nil:
		err = fmt.Errorf("%T does not support null values, use %T or *%T", Quantity{}, NullQuantity{}, Quantity{})
	default:
		err = fmt.Errorf("type %T is not supported", value)
	}
	if err != nil {
		err = fmt.Errorf("converting from %T to %T: %w", value, Quantity{}, err)
	}
	return err
}

// Value implements the [driver.Valuer] interface.
// Value always returns a "mean±uncertainty" string.
// See also method [Quantity.AppendText].
//
// [driver.Valuer]: https://pkg.go.dev/database/sql/driver#Valuer
func (q Quantity) Value() (driver.Value, error) {
	text, err := q.MarshalText()
	if err != nil {
		return nil, err
	}
	return string(text), nil
}

// NullQuantity represents a quantity that can be null.
// Its zero value is null.
// NullQuantity is not thread-safe.
type NullQuantity struct {
	Quantity Quantity
	Valid    bool
}

// Scan implements the [sql.Scanner] interface.
// See also method [Quantity.Scan].
//
// [sql.Scanner]: https://pkg.go.dev/database/sql#Scanner
func (n *NullQuantity) Scan(value any) error {
	if value == nil {
		n.Quantity = Quantity{}
		n.Valid = false
		return nil
	}
	n.Valid = true
	return n.Quantity.Scan(value)
}

// Value implements the [driver.Valuer] interface.
// See also method [Quantity.Value].
//
// [driver.Valuer]: https://pkg.go.dev/database/sql/driver#Valuer
func (n NullQuantity) Value() (driver.Value, error) {
	if !n.Valid {
		return nil, nil
	}
	return n.Quantity.Value()
}

// UnmarshalJSON implements the [json.Unmarshaler] interface.
// See also method [Quantity.UnmarshalJSON].
//
// [json.Unmarshaler]: https://pkg.go.dev/encoding/json#Unmarshaler
func (n *NullQuantity) UnmarshalJSON(text []byte) error {
	if string(text) == "null" {
		n.Quantity = Quantity{}
		n.Valid = false
		return nil
	}
	n.Valid = true
	return n.Quantity.UnmarshalJSON(text)
}

// MarshalJSON implements the [json.Marshaler] interface.
// See also method [Quantity.MarshalJSON].
//
// [json.Marshaler]: https://pkg.go.dev/encoding/json#Marshaler
func (n NullQuantity) MarshalJSON() ([]byte, error) {
	if !n.Valid {
		return []byte("null"), nil
	}
	return n.Quantity.MarshalJSON()
}
