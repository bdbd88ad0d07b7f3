package solar

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculate(t *testing.T) {
	res, err := Calculate(Input{DailyLoadKWh: 12})
	require.NoError(t, err)

	// 12 kWh / (5 h * 0.8) = 3000 W -> 7 panels of 450 W.
	assert.InDelta(t, 3000, res.RequiredArrayW, 0.1)
	assert.Equal(t, 7, res.PanelCount)
	assert.InDelta(t, 3.15, res.InstalledArrayKW, 0.001)
	// 3150 W / 48 V * 1.25 margin.
	assert.InDelta(t, 82.03, res.ControllerCurrent, 0.01)
}

func TestCalculate_InvalidInput(t *testing.T) {
	_, err := Calculate(Input{DailyLoadKWh: 0})
	assert.Error(t, err)
}
