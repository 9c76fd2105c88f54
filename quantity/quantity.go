// Package quantity declares the Quantity type, its constructors and queries.
package quantity

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/dimq/dimension"
	"github.com/katalvlaran/dimq/unit"
)

// Sentinel errors for quantity operations.
var (
	// ErrDimensionMismatch indicates arithmetic, comparison or conversion
	// across incompatible dimensions.
	ErrDimensionMismatch = errors.New("quantity: dimension mismatch")

	// ErrInvalidInterval indicates Clamp was called with min greater than max.
	ErrInvalidInterval = errors.New("quantity: clamp interval min exceeds max")

	// ErrNilQuantity indicates a nil *Quantity where a value was required.
	ErrNilQuantity = errors.New("quantity: nil quantity")
)

// Float constrains the working precisions a Quantity can carry.
type Float interface {
	~float32 | ~float64
}

// Quantity is an immutable dimensioned value. The raw value is always
// expressed in the dimension's base unit; unit-specific readings are
// computed on demand via In. The zero value is a dimensionless zero.
type Quantity[T Float] struct {
	val T
	dim dimension.Dimension
}

// Create wraps a raw base-unit value. No physical-plausibility validation
// happens here: NaN and ±Inf are accepted structurally and reported only by
// IsPhysicallyValid, so pipelines can build intermediate invalid values and
// check once at the boundary.
func Create[T Float](base T, dim dimension.Dimension) Quantity[T] {
	return Quantity[T]{val: base, dim: dim}
}

// Scalar wraps a dimensionless value.
func Scalar[T Float](v T) Quantity[T] {
	return Quantity[T]{val: v}
}

// FromUnit converts a value expressed in u into base-unit representation and
// wraps it. The conversion runs in the working precision T, so float32
// quantities keep float32 rounding.
func FromUnit[T Float](v T, u unit.Unit) Quantity[T] {
	return Quantity[T]{val: v*T(u.Scale) + T(u.Offset), dim: u.Dim}
}

// Value returns the raw value in the dimension's base unit.
func (q Quantity[T]) Value() T {
	return q.val
}

// Dimension returns the quantity's dimension.
func (q Quantity[T]) Dimension() dimension.Dimension {
	return q.dim
}

// In converts the stored base-unit value into u. Fails with
// ErrDimensionMismatch when u measures a different dimension — the mismatch
// is a hard contract, never silently coerced.
func (q Quantity[T]) In(u unit.Unit) (T, error) {
	if q.dim != u.Dim {
		return 0, fmt.Errorf("in %q (%s vs %s): %w", u.Name, q.dim, u.Dim, ErrDimensionMismatch)
	}

	return (q.val - T(u.Offset)) / T(u.Scale), nil
}

// IsPhysicallyValid reports whether the raw value is finite: not NaN and
// not ±Inf. Construction and arithmetic never check this — validity is an
// explicit query at domain boundaries.
func (q Quantity[T]) IsPhysicallyValid() bool {
	f := float64(q.val)

	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// IsZero reports whether the raw value is exactly zero.
func (q Quantity[T]) IsZero() bool {
	return q.val == 0
}

// String renders the base-unit value with the symbol derived from the
// dimension's exponent vector: "2500 m", "50 kg·m/s²". Dimensionless
// quantities render as the bare number.
func (q Quantity[T]) String() string {
	if q.dim.IsScalar() {
		return fmt.Sprintf("%g", float64(q.val))
	}

	return fmt.Sprintf("%g %s", float64(q.val), q.dim)
}
