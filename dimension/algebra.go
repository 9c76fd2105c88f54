package dimension

// Mul returns the element-wise sum of exponents: the dimension of a product.
//
//	Length.Mul(Length) == Area
//	Mass.Mul(Acceleration) == Force
func (d Dimension) Mul(o Dimension) Dimension {
	var r Dimension
	for i := 0; i < NumAxes; i++ {
		r[i] = d[i] + o[i]
	}

	return r
}

// Div returns the element-wise difference of exponents: the dimension of a quotient.
//
//	Length.Div(Time) == Velocity
func (d Dimension) Div(o Dimension) Dimension {
	var r Dimension
	for i := 0; i < NumAxes; i++ {
		r[i] = d[i] - o[i]
	}

	return r
}

// Pow scales every exponent by n: the dimension of an n-th power.
// Negative n inverts the dimension; n == 0 yields Scalar.
func (d Dimension) Pow(n int) Dimension {
	var r Dimension
	for i := 0; i < NumAxes; i++ {
		r[i] = int8(int(d[i]) * n)
	}

	return r
}

// Root divides every exponent by n: the dimension of an n-th root.
// Fails with ErrFractionalDimension unless every exponent divides evenly,
// so Area.Root(2) is Length but Length.Root(2) is an error.
func (d Dimension) Root(n int) (Dimension, error) {
	if n == 0 {
		return Scalar, ErrZeroRoot
	}

	var r Dimension
	for i := 0; i < NumAxes; i++ {
		if int(d[i])%n != 0 {
			return Scalar, ErrFractionalDimension
		}
		r[i] = int8(int(d[i]) / n)
	}

	return r, nil
}

// Equal reports structural equality of the exponent vectors.
// Dimension is comparable, so d == o works too; Equal exists for call sites
// that read better with a named predicate.
func (d Dimension) Equal(o Dimension) bool {
	return d == o
}

// IsScalar reports whether the dimension is dimensionless (all exponents zero).
func (d Dimension) IsScalar() bool {
	return d == Scalar
}

// Exponent returns the exponent on the given axis, or 0 for out-of-range axes.
func (d Dimension) Exponent(a Axis) int {
	if a < 0 || int(a) >= NumAxes {
		return 0
	}

	return int(d[a])
}
