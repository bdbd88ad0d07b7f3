package lighting

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculate(t *testing.T) {
	// 10 x 8 m office at 500 lux with default 3000 lm fixtures:
	// 500*80 / (3000*0.6*0.8) = 27.8 -> 28 fixtures.
	res, err := Calculate(Input{RoomLengthM: 10, RoomWidthM: 8, RequiredLux: 500})
	require.NoError(t, err)

	assert.Equal(t, 28, res.FixtureCount)
	assert.GreaterOrEqual(t, res.AchievedLux, 500.0)
	assert.GreaterOrEqual(t, res.Rows*res.Columns, res.FixtureCount)
}

func TestCalculate_InvalidInput(t *testing.T) {
	_, err := Calculate(Input{RoomLengthM: 0, RoomWidthM: 8, RequiredLux: 500})
	assert.Error(t, err)
}
