// Package quantity implements the generic dimensioned value type at the
// heart of dimq: a numeric value paired with a physical dimension, generic
// over floating-point precision.
//
// 🚀 What is a Quantity?
//
//	Quantity[T] stores its value in the dimension's base unit (meters,
//	kilograms, kelvin, ...). Unit-specific readings are computed on demand,
//	never stored, so arithmetic composes exactly:
//	  • Add/Sub require identical dimensions and fail otherwise
//	  • Mul/Div always succeed — the result dimension is derived through
//	    the dimension algebra, and base-unit values multiply correctly
//	    because scale factors are already baked in
//	  • Pow raises value and dimension together; Root fails unless the
//	    dimension's exponents divide evenly
//
// ✨ Key properties:
//   - Generic over precision: Quantity[float32] keeps float32 rounding in
//     every add/sub/mul/div — conversion factors are cast to T before use,
//     never promoted to float64 mid-computation
//   - NaN and ±Inf are accepted structurally and propagate per IEEE rules;
//     IsPhysicallyValid is the explicit, opt-in validity query
//   - Comparison across mismatched dimensions is an error, never an
//     arbitrary ordering
//   - Immutable value type — copy freely, share across goroutines
//
// ⚙️ Usage:
//
//	km := unit.MustLookup(dimension.Length, "kilometers")
//	d := quantity.FromUnit(2.5, km)        // stored as 2500 m
//	m, err := d.In(unit.MustLookup(dimension.Length, "meters"))
//
//	mass := quantity.Create(10.0, dimension.Mass)
//	acc := quantity.Create(5.0, dimension.Acceleration)
//	force := mass.Mul(acc)                 // dimension derived: kg·m/s²
//
// Errors:
//
//	ErrDimensionMismatch - arithmetic, comparison or conversion across
//	                       incompatible dimensions.
//	ErrInvalidInterval   - Clamp with min greater than max.
//	ErrNilQuantity       - nil *Quantity passed where a value is required.
package quantity
