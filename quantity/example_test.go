package quantity_test

import (
	"fmt"

	"github.com/katalvlaran/dimq/dimension"
	"github.com/katalvlaran/dimq/quantity"
	"github.com/katalvlaran/dimq/unit"
)

// ExampleFromUnit demonstrates unit-aware construction and on-demand
// conversion: values are stored in base units, read out in any unit of the
// same dimension.
func ExampleFromUnit() {
	km := unit.MustLookup(dimension.Length, "kilometers")
	mi := unit.MustLookup(dimension.Length, "miles")

	trip := quantity.FromUnit(42.195, km)
	fmt.Println(trip)

	inMiles, _ := trip.In(mi)
	fmt.Printf("%.3f miles\n", inMiles)
	// Output:
	// 42195 m
	// 26.219 miles
}

// ExampleQuantity_Mul demonstrates that multiplying quantities derives the
// result dimension — Newton's second law without a Force formula.
func ExampleQuantity_Mul() {
	mass := quantity.Create(10.0, dimension.Mass)
	acc := quantity.Create(5.0, dimension.Acceleration)

	force := mass.Mul(acc)
	fmt.Println(force)
	fmt.Println(force.Dimension() == dimension.Force)
	// Output:
	// 50 kg·m/s²
	// true
}

// ExampleQuantity_IsPhysicallyValid demonstrates opt-in validity checking:
// division by zero propagates Inf silently and is caught at the boundary.
func ExampleQuantity_IsPhysicallyValid() {
	d := quantity.Create(100.0, dimension.Length)
	dt := quantity.Create(0.0, dimension.Time)

	v := d.Div(dt)
	fmt.Println(v.Dimension())
	fmt.Println(v.IsPhysicallyValid())
	// Output:
	// m/s
	// false
}
