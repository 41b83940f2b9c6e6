package uncertain

import (
	"errors"
	"testing"
)

func TestParse(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			text      string
			mean, unc float64
		}{
			// Parenthetical shorthand
			{"0.51099895000(15)", 0.51099895000, 0.00000000015},
			{"+5.10998950000(150)e-1", 0.51099895000, 0.00000000015},
			{"5.1099895000(15) × 10^-1", 0.51099895000, 0.00000000015},
			{"7.2973525693(11) × 10^-3", 0.0072973525693, 0.0000000000011},
			{"9.1093837015(28)e-31", 9.1093837015e-31, 2.8e-40},
			{"9.3827208816(29)e+2", 938.27208816, 0.00000029},
			{"-1.23(45)", -1.23, 0.45},
			{"5(2)", 5, 2},
			{"2.3(11)", 2.3, 1.1},
			{"1.00(0) × 10^+1", 10, 0},
			// Explicit ± form, with or without enclosing parentheses
			{"(1836.15267343 ± 0.00000011)", 1836.15267343, 0.00000011},
			{"1836.15267343 ± 0.00000011", 1836.15267343, 0.00000011},
			{"1 +/- 0.5", 1, 0.5},
			{"(+1 ± 10)", 1, 10},
			{"(1.0 ± 0.2)e-3", 0.001, 0.0002},
			{"(1.0 ± 0.2) × 10^-3", 0.001, 0.0002},
			{"(-3 ± 5)", -3, 5},
			// Plain numbers are exact
			{"42", 42, 0},
			{"-0.5", -0.5, 0},
			{".5", 0.5, 0},
			{"+0", 0, 0},
			{"9.1093837015e-31", 9.1093837015e-31, 0},
			{"6.02214076 × 10^+23", 6.02214076e23, 0},
			// Surrounding whitespace is ignored
			{"  1 ± 0.5\t", 1, 0.5},
		}
		for _, tt := range tests {
			got, err := Parse(tt.text)
			if err != nil {
				t.Errorf("Parse(%q) failed: %v", tt.text, err)
				continue
			}
			want := MustNew(tt.mean, tt.unc)
			if got != want {
				t.Errorf("Parse(%q) = (%v, %v), want (%v, %v)",
					tt.text, got.Mean(), got.Uncertainty(), want.Mean(), want.Uncertainty())
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		tests := []string{
			"",
			"abc",
			"NaN",
			"Inf",
			"--5",
			"1.2.3",
			"5.11()",
			"5.11(2)e",
			"5.11(2) MeV",
			"(± 1)",
			"(1 ± )",
			"1 ± 2(3)",
			"5.11(2) ± 3",
			"1e999",
		}
		for _, tt := range tests {
			_, err := Parse(tt)
			if err == nil {
				t.Errorf("Parse(%q) did not fail", tt)
			}
		}
	})
}

func TestParse_Error(t *testing.T) {
	_, err := Parse("not a number")
	var pe *ParseError
	if !errors.As(err, &pe) {
		t.Fatalf("Parse(\"not a number\") = %v, want a *ParseError", err)
	}
	if pe.Text != "not a number" {
		t.Errorf("ParseError.Text = %q, want %q", pe.Text, "not a number")
	}
	if pe.Err == nil {
		t.Error("ParseError.Err is nil")
	}
}

func TestParse_FormatRoundTrip(t *testing.T) {
	// Canonical output reparses to a quantity that renders identically.
	tests := []struct {
		text string
		opts Options
	}{
		{"+5.1099895000(15) × 10^-1", Options{}},
		{"+9.3827208816(29) × 10^+2", Options{}},
		{"9.3827208816(29)e+2", Options{UncDigits: 2, Style: ENotation}},
		{"+9.99960(30)", Options{}},
		{"1.67262192369(51) × 10^-27", Options{UncDigits: 2}},
		{"8.0379(12) × 10^+1", Options{UncDigits: 2}},
		{"(+1 ± 10)", Options{}},
		{"+3.14159", Options{}},
	}
	for _, tt := range tests {
		q, err := Parse(tt.text)
		if err != nil {
			t.Errorf("Parse(%q) failed: %v", tt.text, err)
			continue
		}
		got, err := Format(q.Mean(), q.Uncertainty(), tt.opts)
		if err != nil {
			t.Errorf("Format(%v, %v, %v) failed: %v", q.Mean(), q.Uncertainty(), tt.opts, err)
			continue
		}
		if got != tt.text {
			t.Errorf("Format(Parse(%q)) = %q", tt.text, got)
		}
	}
}

func TestMustParse(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		got := MustParse("0.51099895000(15)")
		want := MustNew(0.51099895000, 0.00000000015)
		if got != want {
			t.Errorf("MustParse(\"0.51099895000(15)\") = %v, want %v", got, want)
		}
	})

	t.Run("panic", func(t *testing.T) {
		defer func() {
			if r := recover(); r == nil {
				t.Error("MustParse(\"not a number\") did not panic")
			}
		}()
		MustParse("not a number")
	})
}
