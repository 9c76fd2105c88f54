// Package unit declares the Unit record, its constructors, and the
// sentinel errors of the conversion registry.
package unit

import (
	"errors"
	"math"

	"github.com/katalvlaran/dimq/dimension"
)

// Sentinel errors for unit registration and lookup.
var (
	// ErrUnknownUnit indicates a unit name not registered for the requested dimension.
	ErrUnknownUnit = errors.New("unit: unknown unit for dimension")

	// ErrUnknownDimension indicates no units are registered for the requested dimension.
	ErrUnknownDimension = errors.New("unit: no units registered for dimension")

	// ErrUnitRedefined indicates a name was re-registered with a conflicting definition.
	ErrUnitRedefined = errors.New("unit: unit already registered with a different definition")

	// ErrNoBaseUnit indicates a dimension with registered units but no designated base.
	ErrNoBaseUnit = errors.New("unit: dimension has no base unit")

	// ErrBadUnit indicates an invalid unit definition (empty name, bad scale, bad base).
	ErrBadUnit = errors.New("unit: invalid unit definition")
)

// Unit is an immutable conversion rule from a named unit to the base unit of
// its dimension: toBase(v) = v*Scale + Offset.
//
// Names are plain lowercase strings ("meters", "kilometers", "feet") and are
// matched case-sensitively. Offset is nonzero only for affine units.
type Unit struct {
	// Name is the case-sensitive, lowercase unit name.
	Name string

	// Dim is the dimension this unit measures.
	Dim dimension.Dimension

	// Scale is the multiplicative factor to the base unit. Never zero.
	Scale float64

	// Offset is the additive term to the base unit. Zero for linear units.
	Offset float64
}

// New returns a linear unit: toBase(v) = v*scale.
func New(name string, dim dimension.Dimension, scale float64) Unit {
	return Unit{Name: name, Dim: dim, Scale: scale}
}

// NewAffine returns an affine unit: toBase(v) = v*scale + offset.
// Use for temperature-like units such as celsius and fahrenheit.
func NewAffine(name string, dim dimension.Dimension, scale, offset float64) Unit {
	return Unit{Name: name, Dim: dim, Scale: scale, Offset: offset}
}

// ToBase converts a value expressed in this unit to the base unit.
func (u Unit) ToBase(v float64) float64 {
	return v*u.Scale + u.Offset
}

// FromBase converts a base-unit value into this unit.
func (u Unit) FromBase(v float64) float64 {
	return (v - u.Offset) / u.Scale
}

// IsAffine reports whether the unit carries a nonzero offset.
func (u Unit) IsAffine() bool {
	return u.Offset != 0
}

// IsBaseDefinition reports whether the unit is an identity conversion
// (scale 1, offset 0), the invariant every base unit must satisfy.
func (u Unit) IsBaseDefinition() bool {
	return u.Scale == 1 && u.Offset == 0
}

// validate rejects definitions the registry must never hold.
func (u Unit) validate() error {
	if u.Name == "" {
		return ErrBadUnit
	}
	if u.Scale == 0 || math.IsNaN(u.Scale) || math.IsInf(u.Scale, 0) {
		return ErrBadUnit
	}
	if math.IsNaN(u.Offset) || math.IsInf(u.Offset, 0) {
		return ErrBadUnit
	}

	return nil
}
