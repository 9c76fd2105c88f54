package phys

import (
	"fmt"

	"github.com/katalvlaran/dimq/dimension"
	"github.com/katalvlaran/dimq/quantity"
)

// Duration is a float64 time quantity, stored in seconds. It measures
// physical time spans; it is unrelated to time.Duration's integer ticks.
type Duration struct {
	q quantity.Quantity[float64]
}

// FromSeconds wraps a duration expressed in seconds.
func FromSeconds(v float64) Duration { return Duration{q: quantity.FromUnit(v, uSeconds)} }

// FromMinutes wraps a duration expressed in minutes.
func FromMinutes(v float64) Duration { return Duration{q: quantity.FromUnit(v, uMinutes)} }

// FromHours wraps a duration expressed in hours.
func FromHours(v float64) Duration { return Duration{q: quantity.FromUnit(v, uHours)} }

// Seconds returns the duration in seconds.
func (d Duration) Seconds() float64 { return d.q.Value() }

// Hours returns the duration in hours.
func (d Duration) Hours() float64 { return mustIn(d.q, uHours) }

// Generic returns the generic form; identity on the raw value.
func (d Duration) Generic() quantity.Quantity[float64] { return d.q }

func (d Duration) String() string { return d.q.String() }

// AsDuration converts a generic quantity into a Duration façade.
func AsDuration(q quantity.Quantity[float64]) (Duration, error) {
	if q.Dimension() != dimension.Time {
		return Duration{}, fmt.Errorf("as duration (%s): %w", q.Dimension(), quantity.ErrDimensionMismatch)
	}

	return Duration{q: q}, nil
}

// Velocity is a float64 velocity quantity, stored in meters per second.
type Velocity struct {
	q quantity.Quantity[float64]
}

// FromMetersPerSecond wraps a velocity expressed in meters per second.
func FromMetersPerSecond(v float64) Velocity {
	return Velocity{q: quantity.FromUnit(v, uMetersPerSecond)}
}

// FromKilometersPerHour wraps a velocity expressed in kilometers per hour.
func FromKilometersPerHour(v float64) Velocity {
	return Velocity{q: quantity.FromUnit(v, uKilometersPerHour)}
}

// FromKnots wraps a velocity expressed in knots.
func FromKnots(v float64) Velocity { return Velocity{q: quantity.FromUnit(v, uKnots)} }

// MetersPerSecond returns the velocity in meters per second.
func (v Velocity) MetersPerSecond() float64 { return v.q.Value() }

// KilometersPerHour returns the velocity in kilometers per hour.
func (v Velocity) KilometersPerHour() float64 { return mustIn(v.q, uKilometersPerHour) }

// Generic returns the generic form; identity on the raw value.
func (v Velocity) Generic() quantity.Quantity[float64] { return v.q }

func (v Velocity) String() string { return v.q.String() }

// AsVelocity converts a generic quantity into a Velocity façade.
func AsVelocity(q quantity.Quantity[float64]) (Velocity, error) {
	if q.Dimension() != dimension.Velocity {
		return Velocity{}, fmt.Errorf("as velocity (%s): %w", q.Dimension(), quantity.ErrDimensionMismatch)
	}

	return Velocity{q: q}, nil
}

// Acceleration is a float64 acceleration quantity, stored in m/s².
type Acceleration struct {
	q quantity.Quantity[float64]
}

// FromMetersPerSecondSquared wraps an acceleration expressed in m/s².
func FromMetersPerSecondSquared(v float64) Acceleration {
	return Acceleration{q: quantity.FromUnit(v, uMetersPerSecondSquared)}
}

// FromStandardGravities wraps an acceleration expressed in multiples of g₀.
func FromStandardGravities(v float64) Acceleration {
	return Acceleration{q: quantity.FromUnit(v, uStandardGravity)}
}

// MetersPerSecondSquared returns the acceleration in m/s².
func (a Acceleration) MetersPerSecondSquared() float64 { return a.q.Value() }

// StandardGravities returns the acceleration in multiples of g₀.
func (a Acceleration) StandardGravities() float64 { return mustIn(a.q, uStandardGravity) }

// Generic returns the generic form; identity on the raw value.
func (a Acceleration) Generic() quantity.Quantity[float64] { return a.q }

func (a Acceleration) String() string { return a.q.String() }

// AsAcceleration converts a generic quantity into an Acceleration façade.
func AsAcceleration(q quantity.Quantity[float64]) (Acceleration, error) {
	if q.Dimension() != dimension.Acceleration {
		return Acceleration{}, fmt.Errorf("as acceleration (%s): %w", q.Dimension(), quantity.ErrDimensionMismatch)
	}

	return Acceleration{q: q}, nil
}

// Duration32 is a float32 time quantity, stored in seconds.
type Duration32 struct {
	q quantity.Quantity[float32]
}

// FromSeconds32 wraps a float32 duration expressed in seconds.
func FromSeconds32(v float32) Duration32 { return Duration32{q: quantity.FromUnit(v, uSeconds)} }

// Seconds returns the duration in seconds.
func (d Duration32) Seconds() float32 { return d.q.Value() }

// Generic returns the generic float32 form; identity on the raw value.
func (d Duration32) Generic() quantity.Quantity[float32] { return d.q }

func (d Duration32) String() string { return d.q.String() }

// Widen converts to the float64 façade losslessly.
func (d Duration32) Widen() Duration { return Duration{q: quantity.Widen(d.q)} }

// NarrowDuration converts a float64 Duration to float32; explicit by name.
func NarrowDuration(d Duration) Duration32 { return Duration32{q: quantity.Narrow(d.q)} }
