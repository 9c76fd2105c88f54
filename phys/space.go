package phys

import (
	"fmt"

	"github.com/katalvlaran/dimq/dimension"
	"github.com/katalvlaran/dimq/quantity"
)

// Length is a float64 length quantity, stored in meters.
type Length struct {
	q quantity.Quantity[float64]
}

// FromMeters wraps a length expressed in meters.
func FromMeters(v float64) Length { return Length{q: quantity.FromUnit(v, uMeters)} }

// FromKilometers wraps a length expressed in kilometers.
func FromKilometers(v float64) Length { return Length{q: quantity.FromUnit(v, uKilometers)} }

// FromMiles wraps a length expressed in miles.
func FromMiles(v float64) Length { return Length{q: quantity.FromUnit(v, uMiles)} }

// FromFeet wraps a length expressed in feet.
func FromFeet(v float64) Length { return Length{q: quantity.FromUnit(v, uFeet)} }

// Meters returns the length in meters.
func (l Length) Meters() float64 { return l.q.Value() }

// Kilometers returns the length in kilometers.
func (l Length) Kilometers() float64 { return mustIn(l.q, uKilometers) }

// Miles returns the length in miles.
func (l Length) Miles() float64 { return mustIn(l.q, uMiles) }

// Feet returns the length in feet.
func (l Length) Feet() float64 { return mustIn(l.q, uFeet) }

// Generic returns the generic form; identity on the raw value.
func (l Length) Generic() quantity.Quantity[float64] { return l.q }

func (l Length) String() string { return l.q.String() }

// AsLength converts a generic quantity into a Length façade, failing with
// ErrDimensionMismatch unless the quantity measures length.
func AsLength(q quantity.Quantity[float64]) (Length, error) {
	if q.Dimension() != dimension.Length {
		return Length{}, fmt.Errorf("as length (%s): %w", q.Dimension(), quantity.ErrDimensionMismatch)
	}

	return Length{q: q}, nil
}

// Area is a float64 area quantity, stored in square meters.
type Area struct {
	q quantity.Quantity[float64]
}

// FromSquareMeters wraps an area expressed in square meters.
func FromSquareMeters(v float64) Area { return Area{q: quantity.FromUnit(v, uSquareMeters)} }

// FromHectares wraps an area expressed in hectares.
func FromHectares(v float64) Area { return Area{q: quantity.FromUnit(v, uHectares)} }

// SquareMeters returns the area in square meters.
func (a Area) SquareMeters() float64 { return a.q.Value() }

// Hectares returns the area in hectares.
func (a Area) Hectares() float64 { return mustIn(a.q, uHectares) }

// Generic returns the generic form; identity on the raw value.
func (a Area) Generic() quantity.Quantity[float64] { return a.q }

func (a Area) String() string { return a.q.String() }

// AsArea converts a generic quantity into an Area façade.
func AsArea(q quantity.Quantity[float64]) (Area, error) {
	if q.Dimension() != dimension.Area {
		return Area{}, fmt.Errorf("as area (%s): %w", q.Dimension(), quantity.ErrDimensionMismatch)
	}

	return Area{q: q}, nil
}

// Volume is a float64 volume quantity, stored in cubic meters.
type Volume struct {
	q quantity.Quantity[float64]
}

// FromCubicMeters wraps a volume expressed in cubic meters.
func FromCubicMeters(v float64) Volume { return Volume{q: quantity.FromUnit(v, uCubicMeters)} }

// FromLiters wraps a volume expressed in liters.
func FromLiters(v float64) Volume { return Volume{q: quantity.FromUnit(v, uLiters)} }

// CubicMeters returns the volume in cubic meters.
func (v Volume) CubicMeters() float64 { return v.q.Value() }

// Liters returns the volume in liters.
func (v Volume) Liters() float64 { return mustIn(v.q, uLiters) }

// Generic returns the generic form; identity on the raw value.
func (v Volume) Generic() quantity.Quantity[float64] { return v.q }

func (v Volume) String() string { return v.q.String() }

// AsVolume converts a generic quantity into a Volume façade.
func AsVolume(q quantity.Quantity[float64]) (Volume, error) {
	if q.Dimension() != dimension.Volume {
		return Volume{}, fmt.Errorf("as volume (%s): %w", q.Dimension(), quantity.ErrDimensionMismatch)
	}

	return Volume{q: q}, nil
}

// Length32 is a float32 length quantity, stored in meters. All conversion
// arithmetic stays in float32.
type Length32 struct {
	q quantity.Quantity[float32]
}

// FromMeters32 wraps a float32 length expressed in meters.
func FromMeters32(v float32) Length32 { return Length32{q: quantity.FromUnit(v, uMeters)} }

// FromKilometers32 wraps a float32 length expressed in kilometers.
func FromKilometers32(v float32) Length32 { return Length32{q: quantity.FromUnit(v, uKilometers)} }

// Meters returns the length in meters.
func (l Length32) Meters() float32 { return l.q.Value() }

// Kilometers returns the length in kilometers.
func (l Length32) Kilometers() float32 { return mustIn(l.q, uKilometers) }

// Generic returns the generic float32 form; identity on the raw value.
func (l Length32) Generic() quantity.Quantity[float32] { return l.q }

func (l Length32) String() string { return l.q.String() }

// Widen converts to the float64 façade losslessly.
func (l Length32) Widen() Length { return Length{q: quantity.Widen(l.q)} }

// NarrowLength converts a float64 Length to float32, rounding like a
// float32 cast. The narrowing is explicit by name — never implicit.
func NarrowLength(l Length) Length32 { return Length32{q: quantity.Narrow(l.q)} }
