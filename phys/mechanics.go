package phys

import (
	"fmt"

	"github.com/katalvlaran/dimq/dimension"
	"github.com/katalvlaran/dimq/quantity"
)

// Force is a float64 force quantity, stored in newtons.
type Force struct {
	q quantity.Quantity[float64]
}

// FromNewtons wraps a force expressed in newtons.
func FromNewtons(v float64) Force { return Force{q: quantity.FromUnit(v, uNewtons)} }

// FromPoundsForce wraps a force expressed in pounds-force.
func FromPoundsForce(v float64) Force { return Force{q: quantity.FromUnit(v, uPoundsForce)} }

// Newtons returns the force in newtons.
func (f Force) Newtons() float64 { return f.q.Value() }

// PoundsForce returns the force in pounds-force.
func (f Force) PoundsForce() float64 { return mustIn(f.q, uPoundsForce) }

// Generic returns the generic form; identity on the raw value.
func (f Force) Generic() quantity.Quantity[float64] { return f.q }

func (f Force) String() string { return f.q.String() }

// AsForce converts a generic quantity into a Force façade; works for any
// quantity whose derived dimension equals kg·m/s², however it was computed.
func AsForce(q quantity.Quantity[float64]) (Force, error) {
	if q.Dimension() != dimension.Force {
		return Force{}, fmt.Errorf("as force (%s): %w", q.Dimension(), quantity.ErrDimensionMismatch)
	}

	return Force{q: q}, nil
}

// Energy is a float64 energy quantity, stored in joules.
type Energy struct {
	q quantity.Quantity[float64]
}

// FromJoules wraps an energy expressed in joules.
func FromJoules(v float64) Energy { return Energy{q: quantity.FromUnit(v, uJoules)} }

// FromKilowattHours wraps an energy expressed in kilowatt-hours.
func FromKilowattHours(v float64) Energy {
	return Energy{q: quantity.FromUnit(v, uKilowattHours)}
}

// FromCalories wraps an energy expressed in thermochemical calories.
func FromCalories(v float64) Energy { return Energy{q: quantity.FromUnit(v, uCalories)} }

// Joules returns the energy in joules.
func (e Energy) Joules() float64 { return e.q.Value() }

// KilowattHours returns the energy in kilowatt-hours.
func (e Energy) KilowattHours() float64 { return mustIn(e.q, uKilowattHours) }

// Generic returns the generic form; identity on the raw value.
func (e Energy) Generic() quantity.Quantity[float64] { return e.q }

func (e Energy) String() string { return e.q.String() }

// AsEnergy converts a generic quantity into an Energy façade.
func AsEnergy(q quantity.Quantity[float64]) (Energy, error) {
	if q.Dimension() != dimension.Energy {
		return Energy{}, fmt.Errorf("as energy (%s): %w", q.Dimension(), quantity.ErrDimensionMismatch)
	}

	return Energy{q: q}, nil
}

// Power is a float64 power quantity, stored in watts.
type Power struct {
	q quantity.Quantity[float64]
}

// FromWatts wraps a power expressed in watts.
func FromWatts(v float64) Power { return Power{q: quantity.FromUnit(v, uWatts)} }

// FromHorsepower wraps a power expressed in mechanical horsepower.
func FromHorsepower(v float64) Power { return Power{q: quantity.FromUnit(v, uHorsepower)} }

// Watts returns the power in watts.
func (p Power) Watts() float64 { return p.q.Value() }

// Kilowatts returns the power in kilowatts.
func (p Power) Kilowatts() float64 { return mustIn(p.q, uKilowatts) }

// Generic returns the generic form; identity on the raw value.
func (p Power) Generic() quantity.Quantity[float64] { return p.q }

func (p Power) String() string { return p.q.String() }

// AsPower converts a generic quantity into a Power façade.
func AsPower(q quantity.Quantity[float64]) (Power, error) {
	if q.Dimension() != dimension.Power {
		return Power{}, fmt.Errorf("as power (%s): %w", q.Dimension(), quantity.ErrDimensionMismatch)
	}

	return Power{q: q}, nil
}

// Pressure is a float64 pressure quantity, stored in pascals.
type Pressure struct {
	q quantity.Quantity[float64]
}

// FromPascals wraps a pressure expressed in pascals.
func FromPascals(v float64) Pressure { return Pressure{q: quantity.FromUnit(v, uPascals)} }

// FromBars wraps a pressure expressed in bars.
func FromBars(v float64) Pressure { return Pressure{q: quantity.FromUnit(v, uBars)} }

// FromPSI wraps a pressure expressed in pounds per square inch.
func FromPSI(v float64) Pressure { return Pressure{q: quantity.FromUnit(v, uPSI)} }

// Pascals returns the pressure in pascals.
func (p Pressure) Pascals() float64 { return p.q.Value() }

// Bars returns the pressure in bars.
func (p Pressure) Bars() float64 { return mustIn(p.q, uBars) }

// Atmospheres returns the pressure in standard atmospheres.
func (p Pressure) Atmospheres() float64 { return mustIn(p.q, uAtmospheres) }

// Generic returns the generic form; identity on the raw value.
func (p Pressure) Generic() quantity.Quantity[float64] { return p.q }

func (p Pressure) String() string { return p.q.String() }

// AsPressure converts a generic quantity into a Pressure façade.
func AsPressure(q quantity.Quantity[float64]) (Pressure, error) {
	if q.Dimension() != dimension.Pressure {
		return Pressure{}, fmt.Errorf("as pressure (%s): %w", q.Dimension(), quantity.ErrDimensionMismatch)
	}

	return Pressure{q: q}, nil
}
