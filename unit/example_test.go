package unit_test

import (
	"fmt"

	"github.com/katalvlaran/dimq/dimension"
	"github.com/katalvlaran/dimq/unit"
)

// ExampleCalculator_Convert demonstrates converting between length units via
// the default registry's memoized calculator.
func ExampleCalculator_Convert() {
	calc, err := unit.GetCalculator(dimension.Length)
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	km, _ := calc.Convert(1000, "meters", "kilometers")
	mi, _ := calc.Convert(42195, "meters", "miles")
	fmt.Printf("%.1f km\n", km)
	fmt.Printf("%.3f miles\n", mi)
	// Output:
	// 1.0 km
	// 26.219 miles
}

// ExampleCalculator_Convert_affine demonstrates an affine temperature
// conversion through the composed transform.
func ExampleCalculator_Convert_affine() {
	calc, _ := unit.GetCalculator(dimension.Temperature)

	k, _ := calc.Convert(0, "celsius", "kelvin")
	f, _ := calc.Convert(37, "celsius", "fahrenheit")
	fmt.Printf("%.2f K\n", k)
	fmt.Printf("%.1f °F\n", f)
	// Output:
	// 273.15 K
	// 98.6 °F
}

// ExampleRegister demonstrates extending a dimension with a custom unit.
func ExampleRegister() {
	if err := unit.Register(unit.New("furlongs", dimension.Length, 201.168)); err != nil {
		fmt.Println("error:", err)

		return
	}

	calc, _ := unit.GetCalculator(dimension.Length)
	m, _ := calc.Convert(1, "furlongs", "meters")
	fmt.Printf("%.3f m\n", m)
	// Output:
	// 201.168 m
}
