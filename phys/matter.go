package phys

import (
	"fmt"

	"github.com/katalvlaran/dimq/dimension"
	"github.com/katalvlaran/dimq/quantity"
)

// Mass is a float64 mass quantity, stored in kilograms.
type Mass struct {
	q quantity.Quantity[float64]
}

// FromKilograms wraps a mass expressed in kilograms.
func FromKilograms(v float64) Mass { return Mass{q: quantity.FromUnit(v, uKilograms)} }

// FromGrams wraps a mass expressed in grams.
func FromGrams(v float64) Mass { return Mass{q: quantity.FromUnit(v, uGrams)} }

// FromPounds wraps a mass expressed in avoirdupois pounds.
func FromPounds(v float64) Mass { return Mass{q: quantity.FromUnit(v, uPounds)} }

// FromTonnes wraps a mass expressed in metric tonnes.
func FromTonnes(v float64) Mass { return Mass{q: quantity.FromUnit(v, uTonnes)} }

// Kilograms returns the mass in kilograms.
func (m Mass) Kilograms() float64 { return m.q.Value() }

// Grams returns the mass in grams.
func (m Mass) Grams() float64 { return mustIn(m.q, uGrams) }

// Pounds returns the mass in pounds.
func (m Mass) Pounds() float64 { return mustIn(m.q, uPounds) }

// Generic returns the generic form; identity on the raw value.
func (m Mass) Generic() quantity.Quantity[float64] { return m.q }

func (m Mass) String() string { return m.q.String() }

// AsMass converts a generic quantity into a Mass façade.
func AsMass(q quantity.Quantity[float64]) (Mass, error) {
	if q.Dimension() != dimension.Mass {
		return Mass{}, fmt.Errorf("as mass (%s): %w", q.Dimension(), quantity.ErrDimensionMismatch)
	}

	return Mass{q: q}, nil
}

// Mass32 is a float32 mass quantity, stored in kilograms.
type Mass32 struct {
	q quantity.Quantity[float32]
}

// FromKilograms32 wraps a float32 mass expressed in kilograms.
func FromKilograms32(v float32) Mass32 { return Mass32{q: quantity.FromUnit(v, uKilograms)} }

// Kilograms returns the mass in kilograms.
func (m Mass32) Kilograms() float32 { return m.q.Value() }

// Generic returns the generic float32 form; identity on the raw value.
func (m Mass32) Generic() quantity.Quantity[float32] { return m.q }

func (m Mass32) String() string { return m.q.String() }

// Widen converts to the float64 façade losslessly.
func (m Mass32) Widen() Mass { return Mass{q: quantity.Widen(m.q)} }

// NarrowMass converts a float64 Mass to float32; explicit by name.
func NarrowMass(m Mass) Mass32 { return Mass32{q: quantity.Narrow(m.q)} }
