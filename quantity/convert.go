package quantity

// Precision bridges between the supported working precisions. Both are
// explicit, total functions: widening is exact, narrowing is visible at the
// call site by name — there are no implicit casts between precisions.

// Widen converts a float32 quantity to float64 losslessly.
func Widen(q Quantity[float32]) Quantity[float64] {
	return Quantity[float64]{val: float64(q.val), dim: q.dim}
}

// Narrow converts a float64 quantity to float32. This is a deliberate,
// named narrowing: values outside float32 range become ±Inf and excess
// precision is rounded, exactly as a float32 cast behaves.
func Narrow(q Quantity[float64]) Quantity[float32] {
	return Quantity[float32]{val: float32(q.val), dim: q.dim}
}

// WidenPtr is Widen for optional quantities; a nil input fails with
// ErrNilQuantity instead of silently defaulting.
func WidenPtr(q *Quantity[float32]) (Quantity[float64], error) {
	if q == nil {
		return Quantity[float64]{}, ErrNilQuantity
	}

	return Widen(*q), nil
}

// NarrowPtr is Narrow for optional quantities; a nil input fails with
// ErrNilQuantity instead of silently defaulting.
func NarrowPtr(q *Quantity[float64]) (Quantity[float32], error) {
	if q == nil {
		return Quantity[float32]{}, ErrNilQuantity
	}

	return Narrow(*q), nil
}
