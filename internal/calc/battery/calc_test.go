package battery

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculate(t *testing.T) {
	// 2 kW for 4 h on a 48 V bank of 12 V / 100 Ah blocks.
	res, err := Calculate(Input{LoadW: 2000, BackupHours: 4, SystemVoltage: 48})
	require.NoError(t, err)

	// 8889 Wh drawn, /48 V /0.8 DoD *1.25 aging = 289.35 Ah.
	assert.InDelta(t, 289.35, res.RequiredAh, 0.1)
	assert.Equal(t, 4, res.SeriesCount)
	assert.Equal(t, 3, res.ParallelStrings)
	assert.Equal(t, 12, res.TotalBatteries)
}

func TestCalculate_InvalidInput(t *testing.T) {
	_, err := Calculate(Input{LoadW: 0, BackupHours: 4, SystemVoltage: 48})
	assert.Error(t, err)
	_, err = Calculate(Input{LoadW: 500, BackupHours: -1, SystemVoltage: 48})
	assert.Error(t, err)
}
