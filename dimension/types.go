// Package dimension declares the Axis enumerants, the Dimension exponent
// vector, and the predefined base and derived dimensions.
package dimension

import (
	"errors"
	"sort"
)

// Sentinel errors for dimension algebra.
var (
	// ErrFractionalDimension indicates a root that would produce non-integer exponents.
	ErrFractionalDimension = errors.New("dimension: root produces fractional exponents")

	// ErrZeroRoot indicates Root was called with n == 0.
	ErrZeroRoot = errors.New("dimension: zeroth root is undefined")
)

// Axis identifies one base dimension axis of the exponent vector.
type Axis int

// Base dimension axes. The first seven follow the SI base quantities;
// Currency and Information are domain extensions.
const (
	AxisLength Axis = iota
	AxisMass
	AxisTime
	AxisCurrent
	AxisTemperature
	AxisAmount
	AxisLuminosity
	AxisCurrency
	AxisInformation

	// NumAxes is the number of base axes; it fixes the vector length.
	NumAxes = int(AxisInformation) + 1
)

// axisNames maps each Axis to its lowercase family name.
var axisNames = [NumAxes]string{
	"length", "mass", "time", "current", "temperature",
	"amount", "luminosity", "currency", "information",
}

// axisSymbols maps each Axis to the base-unit symbol used when rendering
// derived dimension symbols (kg·m/s² and friends).
var axisSymbols = [NumAxes]string{
	"m", "kg", "s", "A", "K", "mol", "cd", "¤", "bit",
}

// String returns the lowercase family name of the axis ("length", "mass", ...).
func (a Axis) String() string {
	if a < 0 || int(a) >= NumAxes {
		return "unknown"
	}

	return axisNames[a]
}

// Symbol returns the base-unit symbol of the axis ("m", "kg", ...).
func (a Axis) Symbol() string {
	if a < 0 || int(a) >= NumAxes {
		return "?"
	}

	return axisSymbols[a]
}

// Dimension is an immutable vector of exponents over the base axes.
//
// The zero value is Scalar, the dimensionless dimension. Dimension is a
// comparable array: two dimensions are equal iff all exponents match, and
// a Dimension can be used directly as a map key.
type Dimension [NumAxes]int8

// Scalar is the dimensionless dimension (the zero exponent vector).
var Scalar = Dimension{}

// Base dimensions, one per axis.
var (
	Length            = New(AxisLength)
	Mass              = New(AxisMass)
	Time              = New(AxisTime)
	Current           = New(AxisCurrent)
	Temperature       = New(AxisTemperature)
	Amount            = New(AxisAmount)
	LuminousIntensity = New(AxisLuminosity)
	Currency          = New(AxisCurrency)
	Information       = New(AxisInformation)
)

// Common derived dimensions, computed from the base ones — never hand-filled.
var (
	Area         = Length.Pow(2)
	Volume       = Length.Pow(3)
	Frequency    = Scalar.Div(Time)
	Velocity     = Length.Div(Time)
	Acceleration = Velocity.Div(Time)
	Momentum     = Mass.Mul(Velocity)
	Force        = Mass.Mul(Acceleration)
	Energy       = Force.Mul(Length)
	Power        = Energy.Div(Time)
	Pressure     = Force.Div(Area)
	Density      = Mass.Div(Volume)
	DataRate     = Information.Div(Time)
)

// familyNames maps lowercase family names to their dimensions for
// introspection (CLI lookups, registry listings).
var familyNames = map[string]Dimension{
	"length":       Length,
	"mass":         Mass,
	"time":         Time,
	"current":      Current,
	"temperature":  Temperature,
	"amount":       Amount,
	"luminosity":   LuminousIntensity,
	"currency":     Currency,
	"information":  Information,
	"area":         Area,
	"volume":       Volume,
	"frequency":    Frequency,
	"velocity":     Velocity,
	"acceleration": Acceleration,
	"momentum":     Momentum,
	"force":        Force,
	"energy":       Energy,
	"power":        Power,
	"pressure":     Pressure,
	"density":      Density,
	"datarate":     DataRate,
}

// New returns the dimension with exponent 1 on the given axis.
// Out-of-range axes yield Scalar.
func New(a Axis) Dimension {
	var d Dimension
	if a >= 0 && int(a) < NumAxes {
		d[a] = 1
	}

	return d
}

// FromExponents builds a dimension from an axis→exponent map.
// Missing axes default to zero; out-of-range axes are ignored.
func FromExponents(exps map[Axis]int) Dimension {
	var d Dimension
	for a, e := range exps {
		if a >= 0 && int(a) < NumAxes {
			d[a] = int8(e)
		}
	}

	return d
}

// Lookup resolves a lowercase family name ("length", "force", ...) to its
// dimension. The boolean reports whether the name is known.
func Lookup(name string) (Dimension, bool) {
	d, ok := familyNames[name]

	return d, ok
}

// Families returns the known family names in sorted order.
func Families() []string {
	names := make([]string, 0, len(familyNames))
	for name := range familyNames {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}
