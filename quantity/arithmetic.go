package quantity

import (
	"fmt"
	"math"
)

// Add returns q + o. Both quantities must share a dimension; the result
// keeps it and the base-unit values sum in the working precision.
func (q Quantity[T]) Add(o Quantity[T]) (Quantity[T], error) {
	if q.dim != o.dim {
		return Quantity[T]{}, fmt.Errorf("add %s to %s: %w", o.dim, q.dim, ErrDimensionMismatch)
	}

	return Quantity[T]{val: q.val + o.val, dim: q.dim}, nil
}

// Sub returns q - o. Both quantities must share a dimension.
func (q Quantity[T]) Sub(o Quantity[T]) (Quantity[T], error) {
	if q.dim != o.dim {
		return Quantity[T]{}, fmt.Errorf("subtract %s from %s: %w", o.dim, q.dim, ErrDimensionMismatch)
	}

	return Quantity[T]{val: q.val - o.val, dim: q.dim}, nil
}

// Mul returns q · o. The result dimension is derived through the dimension
// algebra; base-unit values multiply exactly because scale factors are
// already baked into the canonical representation. Never fails.
func (q Quantity[T]) Mul(o Quantity[T]) Quantity[T] {
	return Quantity[T]{val: q.val * o.val, dim: q.dim.Mul(o.dim)}
}

// Div returns q / o. Division by a zero-valued quantity yields ±Inf or NaN
// per IEEE semantics; catch it with IsPhysicallyValid. Never fails.
func (q Quantity[T]) Div(o Quantity[T]) Quantity[T] {
	return Quantity[T]{val: q.val / o.val, dim: q.dim.Div(o.dim)}
}

// Scale returns q scaled by a dimensionless factor.
func (q Quantity[T]) Scale(k T) Quantity[T] {
	return Quantity[T]{val: q.val * k, dim: q.dim}
}

// Neg returns -q.
func (q Quantity[T]) Neg() Quantity[T] {
	return Quantity[T]{val: -q.val, dim: q.dim}
}

// Abs returns |q|. Exact for both precisions: only the sign bit changes.
func (q Quantity[T]) Abs() Quantity[T] {
	return Quantity[T]{val: T(math.Abs(float64(q.val))), dim: q.dim}
}

// Pow returns qⁿ for integer n, raising the dimension to the n-th power
// alongside the value. The value is computed by iterated multiplication in
// the working precision; negative n inverts.
func (q Quantity[T]) Pow(n int) Quantity[T] {
	return Quantity[T]{val: ipow(q.val, n), dim: q.dim.Pow(n)}
}

// Root returns the n-th root of q. Fails with the dimension package's
// ErrFractionalDimension unless every exponent divides evenly by n, so a
// square root of area is a length but a square root of length is an error.
// A negative value under an even root yields NaN, reported by
// IsPhysicallyValid rather than an error.
func (q Quantity[T]) Root(n int) (Quantity[T], error) {
	dim, err := q.dim.Root(n)
	if err != nil {
		return Quantity[T]{}, fmt.Errorf("root %d of %s: %w", n, q.dim, err)
	}

	return Quantity[T]{val: T(math.Pow(float64(q.val), 1/float64(n))), dim: dim}, nil
}

// Clamp limits q to [min, max]. All three quantities must share a dimension
// and min must not exceed max.
func (q Quantity[T]) Clamp(min, max Quantity[T]) (Quantity[T], error) {
	if q.dim != min.dim || q.dim != max.dim {
		return Quantity[T]{}, fmt.Errorf("clamp %s to [%s, %s]: %w", q.dim, min.dim, max.dim, ErrDimensionMismatch)
	}
	if min.val > max.val {
		return Quantity[T]{}, fmt.Errorf("clamp to [%v, %v]: %w", min.val, max.val, ErrInvalidInterval)
	}

	switch {
	case q.val < min.val:
		return min, nil
	case q.val > max.val:
		return max, nil
	default:
		return q, nil
	}
}

// Compare orders two quantities of the same dimension: -1, 0 or +1.
// Comparing across dimensions fails — an arbitrary ordering is never
// returned. NaN operands follow IEEE comparison rules and order as 0.
func (q Quantity[T]) Compare(o Quantity[T]) (int, error) {
	if q.dim != o.dim {
		return 0, fmt.Errorf("compare %s with %s: %w", q.dim, o.dim, ErrDimensionMismatch)
	}

	switch {
	case q.val < o.val:
		return -1, nil
	case q.val > o.val:
		return 1, nil
	default:
		return 0, nil
	}
}

// Equal reports value equality between quantities of the same dimension.
func (q Quantity[T]) Equal(o Quantity[T]) (bool, error) {
	if q.dim != o.dim {
		return false, fmt.Errorf("equal %s with %s: %w", q.dim, o.dim, ErrDimensionMismatch)
	}

	return q.val == o.val, nil
}

// Less reports q < o for quantities of the same dimension.
func (q Quantity[T]) Less(o Quantity[T]) (bool, error) {
	c, err := q.Compare(o)

	return c < 0, err
}

// Greater reports q > o for quantities of the same dimension.
func (q Quantity[T]) Greater(o Quantity[T]) (bool, error) {
	c, err := q.Compare(o)

	return c > 0, err
}

// ipow computes vⁿ by square-and-multiply entirely in the working precision,
// so float32 quantities never see float64 rounding. n == 0 yields 1.
func ipow[T Float](v T, n int) T {
	if n < 0 {
		return 1 / ipow(v, -n)
	}

	var result T = 1
	for base := v; n > 0; n >>= 1 {
		if n&1 == 1 {
			result *= base
		}
		base *= base
	}

	return result
}
