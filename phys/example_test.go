package phys_test

import (
	"fmt"

	"github.com/katalvlaran/dimq/phys"
)

// ExampleFromCelsius demonstrates affine temperature sugar.
func ExampleFromCelsius() {
	body := phys.FromCelsius(37)
	fmt.Printf("%.2f K\n", body.Kelvin())
	fmt.Printf("%.1f °F\n", body.Fahrenheit())
	// Output:
	// 310.15 K
	// 98.6 °F
}

// ExampleAsForce demonstrates dropping to the generic core for derivation
// and adapting the result back into a façade.
func ExampleAsForce() {
	m := phys.FromKilograms(10)
	a := phys.FromMetersPerSecondSquared(5)

	f, err := phys.AsForce(m.Generic().Mul(a.Generic()))
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("%.0f N\n", f.Newtons())
	// Output:
	// 50 N
}

// ExampleNarrowLength demonstrates the explicit 64→32 bit narrowing bridge.
func ExampleNarrowLength() {
	l := phys.FromKilometers(1.5)
	l32 := phys.NarrowLength(l)
	fmt.Printf("%.0f m\n", l32.Meters())
	// Output:
	// 1500 m
}
