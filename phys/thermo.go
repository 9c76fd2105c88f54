package phys

import (
	"fmt"

	"github.com/katalvlaran/dimq/dimension"
	"github.com/katalvlaran/dimq/quantity"
)

// Temperature is a float64 temperature quantity, stored in kelvin.
// Celsius and fahrenheit are affine units: FromCelsius(0).Kelvin() == 273.15.
type Temperature struct {
	q quantity.Quantity[float64]
}

// FromKelvin wraps a temperature expressed in kelvin.
func FromKelvin(v float64) Temperature { return Temperature{q: quantity.FromUnit(v, uKelvin)} }

// FromCelsius wraps a temperature expressed in degrees Celsius.
func FromCelsius(v float64) Temperature { return Temperature{q: quantity.FromUnit(v, uCelsius)} }

// FromFahrenheit wraps a temperature expressed in degrees Fahrenheit.
func FromFahrenheit(v float64) Temperature {
	return Temperature{q: quantity.FromUnit(v, uFahrenheit)}
}

// Kelvin returns the temperature in kelvin.
func (t Temperature) Kelvin() float64 { return t.q.Value() }

// Celsius returns the temperature in degrees Celsius.
func (t Temperature) Celsius() float64 { return mustIn(t.q, uCelsius) }

// Fahrenheit returns the temperature in degrees Fahrenheit.
func (t Temperature) Fahrenheit() float64 { return mustIn(t.q, uFahrenheit) }

// Generic returns the generic form; identity on the raw value.
func (t Temperature) Generic() quantity.Quantity[float64] { return t.q }

func (t Temperature) String() string { return t.q.String() }

// AsTemperature converts a generic quantity into a Temperature façade.
func AsTemperature(q quantity.Quantity[float64]) (Temperature, error) {
	if q.Dimension() != dimension.Temperature {
		return Temperature{}, fmt.Errorf("as temperature (%s): %w", q.Dimension(), quantity.ErrDimensionMismatch)
	}

	return Temperature{q: q}, nil
}

// Temperature32 is a float32 temperature quantity, stored in kelvin.
type Temperature32 struct {
	q quantity.Quantity[float32]
}

// FromKelvin32 wraps a float32 temperature expressed in kelvin.
func FromKelvin32(v float32) Temperature32 {
	return Temperature32{q: quantity.FromUnit(v, uKelvin)}
}

// FromCelsius32 wraps a float32 temperature expressed in degrees Celsius.
// The affine conversion runs in float32.
func FromCelsius32(v float32) Temperature32 {
	return Temperature32{q: quantity.FromUnit(v, uCelsius)}
}

// Kelvin returns the temperature in kelvin.
func (t Temperature32) Kelvin() float32 { return t.q.Value() }

// Celsius returns the temperature in degrees Celsius.
func (t Temperature32) Celsius() float32 { return mustIn(t.q, uCelsius) }

// Generic returns the generic float32 form; identity on the raw value.
func (t Temperature32) Generic() quantity.Quantity[float32] { return t.q }

func (t Temperature32) String() string { return t.q.String() }

// Widen converts to the float64 façade losslessly.
func (t Temperature32) Widen() Temperature { return Temperature{q: quantity.Widen(t.q)} }

// NarrowTemperature converts a float64 Temperature to float32; explicit by name.
func NarrowTemperature(t Temperature) Temperature32 {
	return Temperature32{q: quantity.Narrow(t.q)}
}
