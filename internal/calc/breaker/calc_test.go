package breaker

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculate(t *testing.T) {
	res, err := Calculate(Input{LoadCurrentA: 28, LoadType: "mixed"})
	require.NoError(t, err)
	assert.Equal(t, 32.0, res.BreakerRatingA)
	assert.Equal(t, "C", res.TripCurve)

	// Continuous loads count at 125%: 28 * 1.25 = 35 -> 40 A.
	res, err = Calculate(Input{LoadCurrentA: 28, Continuous: true, LoadType: "motor"})
	require.NoError(t, err)
	assert.Equal(t, 40.0, res.BreakerRatingA)
	assert.Equal(t, "D", res.TripCurve)
}

func TestCalculate_Limits(t *testing.T) {
	_, err := Calculate(Input{LoadCurrentA: 0})
	assert.Error(t, err)

	_, err = Calculate(Input{LoadCurrentA: 5000})
	assert.Error(t, err)
}
