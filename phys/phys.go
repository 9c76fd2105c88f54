// Package phys declares the shared façade plumbing: cached unit handles,
// the Facade constraint and the nil-guarded generic conversion.
package phys

import (
	"github.com/katalvlaran/dimq/dimension"
	"github.com/katalvlaran/dimq/quantity"
	"github.com/katalvlaran/dimq/unit"
)

// ErrNilQuantity mirrors the quantity package's sentinel for nil façade
// pointers passed into conversions.
var ErrNilQuantity = quantity.ErrNilQuantity

// Cached handles into the builtin catalog. MustLookup is safe here: the
// unit package registers the catalog in its own init, which runs first.
var (
	uMeters     = unit.MustLookup(dimension.Length, "meters")
	uKilometers = unit.MustLookup(dimension.Length, "kilometers")
	uMiles      = unit.MustLookup(dimension.Length, "miles")
	uFeet       = unit.MustLookup(dimension.Length, "feet")

	uKilograms = unit.MustLookup(dimension.Mass, "kilograms")
	uGrams     = unit.MustLookup(dimension.Mass, "grams")
	uPounds    = unit.MustLookup(dimension.Mass, "pounds")
	uTonnes    = unit.MustLookup(dimension.Mass, "tonnes")

	uSeconds = unit.MustLookup(dimension.Time, "seconds")
	uMinutes = unit.MustLookup(dimension.Time, "minutes")
	uHours   = unit.MustLookup(dimension.Time, "hours")

	uKelvin     = unit.MustLookup(dimension.Temperature, "kelvin")
	uCelsius    = unit.MustLookup(dimension.Temperature, "celsius")
	uFahrenheit = unit.MustLookup(dimension.Temperature, "fahrenheit")

	uSquareMeters = unit.MustLookup(dimension.Area, "square meters")
	uHectares     = unit.MustLookup(dimension.Area, "hectares")

	uCubicMeters = unit.MustLookup(dimension.Volume, "cubic meters")
	uLiters      = unit.MustLookup(dimension.Volume, "liters")

	uMetersPerSecond   = unit.MustLookup(dimension.Velocity, "meters per second")
	uKilometersPerHour = unit.MustLookup(dimension.Velocity, "kilometers per hour")
	uKnots             = unit.MustLookup(dimension.Velocity, "knots")

	uMetersPerSecondSquared = unit.MustLookup(dimension.Acceleration, "meters per second squared")
	uStandardGravity        = unit.MustLookup(dimension.Acceleration, "standard gravity")

	uNewtons     = unit.MustLookup(dimension.Force, "newtons")
	uPoundsForce = unit.MustLookup(dimension.Force, "pounds force")

	uJoules        = unit.MustLookup(dimension.Energy, "joules")
	uKilowattHours = unit.MustLookup(dimension.Energy, "kilowatt hours")
	uCalories      = unit.MustLookup(dimension.Energy, "calories")

	uWatts      = unit.MustLookup(dimension.Power, "watts")
	uKilowatts  = unit.MustLookup(dimension.Power, "kilowatts")
	uHorsepower = unit.MustLookup(dimension.Power, "horsepower")

	uPascals     = unit.MustLookup(dimension.Pressure, "pascals")
	uBars        = unit.MustLookup(dimension.Pressure, "bars")
	uPSI         = unit.MustLookup(dimension.Pressure, "psi")
	uAtmospheres = unit.MustLookup(dimension.Pressure, "atmospheres")
)

// Facade is satisfied by every float64 façade in this package.
type Facade interface {
	Generic() quantity.Quantity[float64]
}

// GenericOf converts an optional façade into its generic form. A nil
// pointer fails with ErrNilQuantity — absence is never a silent zero.
func GenericOf[F Facade](f *F) (quantity.Quantity[float64], error) {
	if f == nil {
		return quantity.Quantity[float64]{}, ErrNilQuantity
	}

	return (*f).Generic(), nil
}

// mustIn reads a quantity in a unit whose dimension is guaranteed to match
// by façade construction; a failure here is a programming error.
func mustIn[T quantity.Float](q quantity.Quantity[T], u unit.Unit) T {
	v, err := q.In(u)
	if err != nil {
		panic(err)
	}

	return v
}
