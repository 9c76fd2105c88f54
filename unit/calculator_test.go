package unit_test

import (
	"math"
	"sync"
	"testing"

	"github.com/katalvlaran/dimq/dimension"
	"github.com/katalvlaran/dimq/unit"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestCalculator_ReferenceStable verifies the memoization contract: repeated
// calls for the same dimension return the identical *Calculator pointer.
func TestCalculator_ReferenceStable(t *testing.T) {
	c1, err := unit.GetCalculator(dimension.Length)
	require.NoError(t, err)
	c2, err := unit.GetCalculator(dimension.Length)
	require.NoError(t, err)

	assert.Same(t, c1, c2, "calculator must be reference-stable per dimension")
	assert.Equal(t, dimension.Length, c1.Dimension(), "calculator knows its dimension")
}

// TestCalculator_UnknownDimensionFails verifies the failure path for a
// dimension with no registered units.
func TestCalculator_UnknownDimensionFails(t *testing.T) {
	r := unit.NewRegistry()
	_, err := r.Calculator(dimension.Energy)
	assert.ErrorIs(t, err, unit.ErrUnknownDimension, "empty dimension must fail")
}

// TestCalculator_ToBaseFromBase verifies the single-leg conversions:
// 1000 m → 1 km and 2.5 km → 2500 m.
func TestCalculator_ToBaseFromBase(t *testing.T) {
	c, err := unit.GetCalculator(dimension.Length)
	require.NoError(t, err)

	km, err := c.FromBase(1000.0, "kilometers")
	require.NoError(t, err)
	assert.Equal(t, 1.0, km, "1000 meters is 1 kilometer")

	m, err := c.ToBase(2.5, "kilometers")
	require.NoError(t, err)
	assert.Equal(t, 2500.0, m, "2.5 kilometers is 2500 meters")

	_, err = c.ToBase(1, "parsecs")
	assert.ErrorIs(t, err, unit.ErrUnknownUnit, "unknown unit must fail at lookup time")
}

// TestCalculator_ConvertAffine verifies composed affine conversions across
// the temperature table, including fahrenheit↔celsius which needs both legs.
func TestCalculator_ConvertAffine(t *testing.T) {
	c, err := unit.GetCalculator(dimension.Temperature)
	require.NoError(t, err)

	k, err := c.Convert(0, "celsius", "kelvin")
	require.NoError(t, err)
	assert.Equal(t, 273.15, k, "0°C is 273.15 K")

	f, err := c.Convert(100, "celsius", "fahrenheit")
	require.NoError(t, err)
	assert.InDelta(t, 212.0, f, 1e-9, "100°C is 212°F")

	cv, err := c.Convert(32, "fahrenheit", "celsius")
	require.NoError(t, err)
	assert.InDelta(t, 0.0, cv, 1e-9, "32°F is 0°C")
}

// TestCalculator_ConvertMemoizesPairs verifies a repeated (from, to) pair
// stays exact and consistent across calls (the composed transform is cached).
func TestCalculator_ConvertMemoizesPairs(t *testing.T) {
	c, err := unit.GetCalculator(dimension.Length)
	require.NoError(t, err)

	first, err := c.Convert(5280, "feet", "miles")
	require.NoError(t, err)
	second, err := c.Convert(5280, "feet", "miles")
	require.NoError(t, err)

	assert.Equal(t, first, second, "cached pair must reproduce the same result")
	assert.InDelta(t, 1.0, first, 1e-12, "5280 feet is 1 mile")
}

// TestCalculator_ConcurrentFirstAccess hammers calculator resolution and
// pair conversion from many goroutines; every goroutine must observe the
// same calculator instance and correct results.
func TestCalculator_ConcurrentFirstAccess(t *testing.T) {
	r := unit.NewRegistry()
	require.NoError(t, r.RegisterBase(unit.New("joules", dimension.Energy, 1)))
	require.NoError(t, r.Register(unit.New("kilojoules", dimension.Energy, 1000)))

	const goroutines = 32
	calcs := make([]*unit.Calculator, goroutines)
	results := make([]float64, goroutines)

	var wg sync.WaitGroup
	wg.Add(goroutines)
	for i := 0; i < goroutines; i++ {
		go func(i int) {
			defer wg.Done()
			c, err := r.Calculator(dimension.Energy)
			if err != nil {
				return
			}
			calcs[i] = c
			results[i], _ = c.Convert(1, "kilojoules", "joules")
		}(i)
	}
	wg.Wait()

	for i := 1; i < goroutines; i++ {
		assert.Same(t, calcs[0], calcs[i], "all goroutines must observe one calculator")
		assert.Equal(t, 1000.0, results[i], "conversion must be correct under contention")
	}
}

// TestCalculator_RoundTripTolerance verifies the round-trip property across
// every registered length unit pair within floating-point tolerance.
func TestCalculator_RoundTripTolerance(t *testing.T) {
	c, err := unit.GetCalculator(dimension.Length)
	require.NoError(t, err)
	names, err := unit.Units(dimension.Length)
	require.NoError(t, err)

	const v = 123.456
	for _, from := range names {
		for _, to := range names {
			out, err := c.Convert(v, from, to)
			require.NoError(t, err, "%s→%s", from, to)
			back, err := c.Convert(out, to, from)
			require.NoError(t, err, "%s→%s", to, from)
			assert.InEpsilon(t, v, back, 1e-12, "round-trip %s→%s→%s", from, to, from)
		}
	}
}

// TestUnit_NonFiniteValuesPropagate confirms NaN/Inf pass through conversion
// arithmetic untouched (validity is a query, never a conversion precondition).
func TestUnit_NonFiniteValuesPropagate(t *testing.T) {
	c, err := unit.GetCalculator(dimension.Length)
	require.NoError(t, err)

	out, err := c.Convert(math.NaN(), "meters", "feet")
	require.NoError(t, err)
	assert.True(t, math.IsNaN(out), "NaN must propagate through conversion")

	out, err = c.Convert(math.Inf(1), "meters", "feet")
	require.NoError(t, err)
	assert.True(t, math.IsInf(out, 1), "+Inf must propagate through conversion")
}
