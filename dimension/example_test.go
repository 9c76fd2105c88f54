package dimension_test

import (
	"fmt"

	"github.com/katalvlaran/dimq/dimension"
)

// ExampleDimension_Mul demonstrates deriving Area from two Lengths and shows
// that the result is structurally equal to the predefined Area dimension.
func ExampleDimension_Mul() {
	area := dimension.Length.Mul(dimension.Length)
	fmt.Println(area)
	fmt.Println(area == dimension.Area)
	// Output:
	// m²
	// true
}

// ExampleDimension_Root demonstrates taking the square root of Area and the
// failure mode when exponents do not divide evenly.
func ExampleDimension_Root() {
	l, err := dimension.Area.Root(2)
	fmt.Println(l, err)

	_, err = dimension.Length.Root(2)
	fmt.Println(err)
	// Output:
	// m <nil>
	// dimension: root produces fractional exponents
}

// ExampleDimension_String demonstrates symbols derived from exponent vectors.
func ExampleDimension_String() {
	fmt.Println(dimension.Force)
	fmt.Println(dimension.Pressure)
	fmt.Println(dimension.Frequency)
	// Output:
	// kg·m/s²
	// kg/(m·s²)
	// 1/s
}
