package conductor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeratedAmpacity(t *testing.T) {
	entry, err := Lookup(MetricStandard, Copper, "25 mm²")
	require.NoError(t, err)

	derated, err := DeratedAmpacity(entry, Class70, DeratingResult{TotalFactor: 0.87})
	require.NoError(t, err)
	assert.InDelta(t, 112*0.87, derated, 1e-9)

	// A class the metric catalog does not tabulate.
	_, err = DeratedAmpacity(entry, Class60, DeratingResult{TotalFactor: 1})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestDeratedAmpacity_ZeroFactor(t *testing.T) {
	entry, err := Lookup(MetricStandard, Copper, "630 mm²")
	require.NoError(t, err)

	derated, err := DeratedAmpacity(entry, Class90, DeratingResult{TotalFactor: 0})
	require.NoError(t, err)
	assert.Equal(t, 0.0, derated)
}

func TestIsOverloaded(t *testing.T) {
	assert.False(t, IsOverloaded(50, 50))
	assert.False(t, IsOverloaded(49.9, 50))
	assert.True(t, IsOverloaded(50.1, 50))
	// Zero derated ampacity overloads at any positive current.
	assert.True(t, IsOverloaded(0.1, 0))
}
