package main

import (
	"testing"

	"github.com/katalvlaran/dimq/dimension"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestResolveDimension_FindsOwningFamily verifies both unit names resolve to
// the table that holds them together.
func TestResolveDimension_FindsOwningFamily(t *testing.T) {
	dim, err := resolveDimension("meters", "kilometers")
	require.NoError(t, err)
	assert.Equal(t, dimension.Length, dim, "meters and kilometers are lengths")

	dim, err = resolveDimension("celsius", "fahrenheit")
	require.NoError(t, err)
	assert.Equal(t, dimension.Temperature, dim, "celsius and fahrenheit are temperatures")
}

// TestResolveDimension_MismatchedFamilies verifies the two failure modes:
// units of different dimensions, and an unknown first unit.
func TestResolveDimension_MismatchedFamilies(t *testing.T) {
	_, err := resolveDimension("meters", "kilograms")
	assert.ErrorContains(t, err, "different dimensions", "length vs mass must fail")

	_, err = resolveDimension("parsecs", "meters")
	assert.ErrorContains(t, err, "unknown unit", "unregistered name must fail")
}
