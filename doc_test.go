package uncertain_test

import (
	"fmt"

	"github.com/evanberkowitz/uncertain"
)

// The parenthetical digits indicate the uncertainty on the corresponding
// least significant digits of the mean.
func Example_physicalConstants() {
	constants := []struct {
		name string
		q    uncertain.Quantity
	}{
		{"electron mass", uncertain.MustNew(0.51099895000, 0.00000000015)},
		{"proton mass", uncertain.MustParse("1.67262192369(51) × 10^-27")},
		{"Z boson mass", uncertain.MustNew(91.1876, 0.0021)},
		{"W boson mass", uncertain.MustNew(80.379, 0.012)},
	}
	for _, c := range constants {
		fmt.Printf("%-14s %v\n", c.name, c.q)
	}
	// Output:
	// electron mass  5.1099895000(15) × 10^-1
	// proton mass    1.67262192369(51) × 10^-27
	// Z boson mass   9.11876(21) × 10^+1
	// W boson mass   8.0379(12) × 10^+1
}

func ExampleNew() {
	electron, err := uncertain.New(0.51099895000, 0.00000000015)
	if err != nil {
		panic(err)
	}
	fmt.Println(electron)
	// Output: 5.1099895000(15) × 10^-1
}

func ExampleParse() {
	q, err := uncertain.Parse("9.1093837015(28)e-31")
	if err != nil {
		panic(err)
	}
	fmt.Println(q.Mean())
	fmt.Println(q.Uncertainty())
	// Output:
	// 9.1093837015e-31
	// 2.8e-40
}

func ExampleMustParse() {
	q := uncertain.MustParse("(1836.15267343 ± 0.00000011)")
	fmt.Println(q)
	// Output: 1.83615267343(11) × 10^+3
}

func ExampleFormat() {
	s, err := uncertain.Format(0.51099895000, 0.00000000015, uncertain.Options{
		UncDigits: 3,
		Style:     uncertain.ENotation,
		ForceSign: true,
	})
	if err != nil {
		panic(err)
	}
	fmt.Println(s)
	// Output: +5.10998950000(150)e-1
}

func ExampleQuantity_String() {
	q := uncertain.MustNew(0.51099895000, 0.00000000015)
	fmt.Println(q.String())
	// Output: +5.1099895000(15) × 10^-1
}

func ExampleQuantity_Text() {
	q := uncertain.MustNew(0.51099895000, 0.00000000015)
	for _, opts := range []uncertain.Options{
		{},
		{UncDigits: 1},
		{Precision: 3},
		{Style: uncertain.ENotation},
	} {
		s, err := q.Text(opts)
		if err != nil {
			panic(err)
		}
		fmt.Println(s)
	}
	// Output:
	// +5.1099895000(15) × 10^-1
	// 5.109989500(2) × 10^-1
	// 5.110(0) × 10^-1
	// 5.1099895000(15)e-1
}

func ExampleQuantity_Format() {
	q := uncertain.MustNew(0.51099895000, 0.00000000015)
	fmt.Printf("%v\n", q)
	fmt.Printf("%+v\n", q)
	fmt.Printf("%e\n", q)
	fmt.Printf("%.3v\n", q)
	// Output:
	// 5.1099895000(15) × 10^-1
	// +5.1099895000(15) × 10^-1
	// 5.1099895000(15)e-1
	// 5.110(0) × 10^-1
}
