package quantity_test

import (
	"testing"

	"github.com/katalvlaran/dimq/dimension"
	"github.com/katalvlaran/dimq/quantity"
	"github.com/katalvlaran/dimq/unit"
)

// BenchmarkMul measures dimensioned multiplication; it must stay
// allocation-free — one float multiply plus one exponent-vector add.
func BenchmarkMul(b *testing.B) {
	m := quantity.Create(10.0, dimension.Mass)
	a := quantity.Create(5.0, dimension.Acceleration)

	b.ReportAllocs()
	var f quantity.Quantity[float64]
	for i := 0; i < b.N; i++ {
		f = m.Mul(a)
	}
	_ = f
}

// BenchmarkAdd measures same-dimension addition including the dimension guard.
func BenchmarkAdd(b *testing.B) {
	x := quantity.Create(1.0, dimension.Length)
	y := quantity.Create(2.0, dimension.Length)

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := x.Add(y); err != nil {
			b.Fatalf("add: %v", err)
		}
	}
}

// BenchmarkIn measures unit conversion at read-out time.
func BenchmarkIn(b *testing.B) {
	km := unit.MustLookup(dimension.Length, "kilometers")
	q := quantity.Create(2500.0, dimension.Length)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := q.In(km); err != nil {
			b.Fatalf("in: %v", err)
		}
	}
}
