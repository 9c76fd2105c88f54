// Package dimq is your in-memory toolkit for dimensionally-safe physical
// quantities — numeric values tagged with a physical dimension, convertible
// between units and combinable with arithmetic that derives dimensions for you.
//
// 🚀 What is dimq?
//
//	A small, pure-Go library that brings together:
//		• Dimension algebra: exponent-vector dimensions with Mul/Div/Pow/Root
//		• Unit model: linear and affine (Celsius↔Kelvin) conversion rules
//		• Conversion registry: per-dimension unit tables with memoized calculators
//		• Generic quantity core: Quantity[float32|float64] with unit-aware
//		  construction, arithmetic, comparison and physical-validity checks
//		• Precision façades: Length, Mass, Temperature… with FromMeters-style sugar
//
// ✨ Why choose dimq?
//
//   - Dimensional safety — adding meters to kilograms is an error, not a bug
//   - Derived dimensions are computed, never looked up: Length·Length is Area
//     because the exponent vectors say so
//   - Affine units handled correctly: FromCelsius(0).In(kelvin) = 273.15
//   - Generic over precision — float32 quantities keep float32 rounding end to end
//   - Immutable value types — safe for concurrent use with zero locks
//
// Everything is organized under four subpackages:
//
//	dimension/ — exponent-vector dimensions, algebra and derived symbols (m², kg·m/s²)
//	unit/      — units, the conversion registry and the builtin SI/imperial catalog
//	quantity/  — the generic dimensioned value type and its arithmetic
//	phys/      — fixed-precision façades (Length, Mass, Temperature, …)
//
// Quick example:
//
//	m := phys.FromKilograms(10)
//	a := phys.FromMetersPerSecondSquared(5)
//	f, _ := phys.AsForce(m.Generic().Mul(a.Generic()))
//	fmt.Println(f.Newtons()) // 50
//
// Dive into README.md for full examples and the unit catalog.
//
//	go get github.com/katalvlaran/dimq
package dimq
