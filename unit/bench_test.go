package unit_test

import (
	"testing"

	"github.com/katalvlaran/dimq/dimension"
	"github.com/katalvlaran/dimq/unit"
)

// benchmarkConvert runs a warmed-up pair conversion in a loop, so the
// composed-transform cache is what gets measured.
func benchmarkConvert(b *testing.B, from, to string) {
	calc, err := unit.GetCalculator(dimension.Length)
	if err != nil {
		b.Fatalf("calculator: %v", err)
	}
	if _, err = calc.Convert(1, from, to); err != nil {
		b.Fatalf("warm-up convert: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err = calc.Convert(float64(i), from, to); err != nil {
			b.Fatalf("convert: %v", err)
		}
	}
}

// BenchmarkConvert_Linear benchmarks a cached linear pair conversion.
func BenchmarkConvert_Linear(b *testing.B) {
	benchmarkConvert(b, "feet", "kilometers")
}

// BenchmarkGetCalculator benchmarks memoized calculator resolution.
func BenchmarkGetCalculator(b *testing.B) {
	for i := 0; i < b.N; i++ {
		if _, err := unit.GetCalculator(dimension.Length); err != nil {
			b.Fatalf("calculator: %v", err)
		}
	}
}
