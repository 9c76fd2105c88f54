// Package dimension represents physical dimensions as fixed-size exponent
// vectors and provides the algebra that derives new dimensions from old ones.
//
// 🚀 What is a dimension here?
//
//	A Dimension is a vector of small signed integer exponents, one per base
//	axis (length, mass, time, current, temperature, amount, luminosity,
//	plus currency and information for domain extensions). Examples:
//	  • Length       = [1 0 0 0 0 0 0 0 0]
//	  • Area         = [2 0 0 0 0 0 0 0 0]
//	  • Force        = [1 1 -2 0 0 0 0 0 0]  (kg·m/s²)
//	  • Scalar       = the zero vector (dimensionless)
//
// ✨ Key properties:
//   - Dimension is a comparable array: == is structural equality and the
//     value can be used directly as a map key
//   - Mul adds exponents, Div subtracts, Pow scales — all O(1), allocation-free
//   - Root fails unless every exponent divides evenly (square root of area
//     is length; square root of length is an error, not a fraction)
//   - String derives a human-readable symbol (m, m², kg·m/s²) from the
//     exponent vector itself, never from a hand-enumerated table
//
// ⚙️ Usage:
//
//	area := dimension.Length.Mul(dimension.Length)
//	area == dimension.Area                        // true, structurally
//	v := dimension.Length.Div(dimension.Time)     // velocity
//	l, err := dimension.Area.Root(2)              // back to length
//
// Errors:
//
//	ErrFractionalDimension - Root would produce non-integer exponents.
//	ErrZeroRoot            - Root with n == 0.
package dimension
