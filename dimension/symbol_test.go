package dimension_test

import (
	"testing"

	"github.com/katalvlaran/dimq/dimension"
	"github.com/stretchr/testify/assert"
)

// TestString_DerivedSymbols verifies symbol rendering is computed from the
// exponent vector: base symbols, superscripts, '·' products, '/' quotients.
func TestString_DerivedSymbols(t *testing.T) {
	cases := []struct {
		name string
		dim  dimension.Dimension
		want string
	}{
		{"scalar", dimension.Scalar, "1"},
		{"length", dimension.Length, "m"},
		{"mass", dimension.Mass, "kg"},
		{"area", dimension.Area, "m²"},
		{"volume", dimension.Volume, "m³"},
		{"velocity", dimension.Velocity, "m/s"},
		{"acceleration", dimension.Acceleration, "m/s²"},
		{"frequency", dimension.Frequency, "1/s"},
		{"momentum", dimension.Momentum, "kg·m/s"},
		{"force", dimension.Force, "kg·m/s²"},
		{"energy", dimension.Energy, "kg·m²/s²"},
		{"pressure", dimension.Pressure, "kg/(m·s²)"},
		{"density", dimension.Density, "kg/m³"},
		{"datarate", dimension.DataRate, "bit/s"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.dim.String(), "symbol for %s", tc.name)
		})
	}
}

// TestString_LargeExponents exercises the multi-digit superscript path.
func TestString_LargeExponents(t *testing.T) {
	d := dimension.Length.Pow(12)
	assert.Equal(t, "m¹²", d.String(), "two-digit exponents render digit by digit")
}

// TestAxis_NamesAndSymbols verifies enumerant rendering including the
// out-of-range guards.
func TestAxis_NamesAndSymbols(t *testing.T) {
	assert.Equal(t, "length", dimension.AxisLength.String())
	assert.Equal(t, "kg", dimension.AxisMass.Symbol())
	assert.Equal(t, "unknown", dimension.Axis(-1).String())
	assert.Equal(t, "?", dimension.Axis(99).Symbol())
}
