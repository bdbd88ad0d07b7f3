package conductor

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvaluateVoltageDrop_Metric(t *testing.T) {
	entry, err := Lookup(MetricStandard, Copper, "2.5 mm²")
	require.NoError(t, err)

	// 20 A over 30 m single phase: 20 * 30 * 2 * 7.41 / 1000 = 8.892 V.
	res, err := EvaluateVoltageDrop(20, 30, entry, SinglePhase, 230, MetricStandard, 0)
	require.NoError(t, err)
	assert.Equal(t, 8.89, res.DropVolts)
	assert.Equal(t, 3.87, res.DropPercent)
	assert.True(t, res.IsViolation)
	assert.False(t, res.IsDanger)
	assert.Equal(t, 7.41, res.ResistanceUsed)
	assert.Equal(t, 2.0, res.PhaseMultiplier)
}

func TestEvaluateVoltageDrop_Imperial(t *testing.T) {
	entry, err := Lookup(ImperialStandard, Copper, "6 AWG")
	require.NoError(t, err)

	// 46.3 A over 100 ft single phase at 240 V.
	res, err := EvaluateVoltageDrop(46.3, 100, entry, SinglePhase, 240, ImperialStandard, 0)
	require.NoError(t, err)
	assert.Equal(t, 4.55, res.DropVolts)
	assert.Equal(t, 1.89, res.DropPercent)
	assert.False(t, res.IsViolation)
	assert.Equal(t, 0.491, res.ResistanceUsed)
}

func TestEvaluateVoltageDrop_ThreePhaseMultiplier(t *testing.T) {
	entry, err := Lookup(MetricStandard, Copper, "50 mm²")
	require.NoError(t, err)

	res, err := EvaluateVoltageDrop(100, 80, entry, ThreePhase, 400, MetricStandard, 0)
	require.NoError(t, err)
	assert.InDelta(t, math.Sqrt(3), res.PhaseMultiplier, 1e-12)

	want := round2(100 * 80 * math.Sqrt(3) * 0.387 / 1000)
	assert.Equal(t, want, res.DropVolts)
}

func TestEvaluateVoltageDrop_RoundedComparison(t *testing.T) {
	// The violation check uses the rounded percentage so the engine and
	// a UI showing two decimals never disagree.
	entry := CatalogEntry{MilliVoltPerAmpMeter: 1.002, OhmsPerKilofoot: 1.002 * footPerMeterRatio}

	// Raw percent 3.006 rounds to 3.01: a violation.
	res, err := EvaluateVoltageDrop(15, 100, entry, SinglePhase, 100, MetricStandard, 0)
	require.NoError(t, err)
	assert.Equal(t, 3.01, res.DropPercent)
	assert.True(t, res.IsViolation)

	// Raw percent 3.0006 rounds to 3.00: exactly at the limit, allowed.
	res, err = EvaluateVoltageDrop(14.97, 100, entry, SinglePhase, 100, MetricStandard, 0)
	require.NoError(t, err)
	assert.Equal(t, 3.0, res.DropPercent)
	assert.False(t, res.IsViolation)
}

func TestEvaluateVoltageDrop_DangerFlag(t *testing.T) {
	entry, err := Lookup(MetricStandard, Copper, "1.5 mm²")
	require.NoError(t, err)

	res, err := EvaluateVoltageDrop(30, 60, entry, SinglePhase, 230, MetricStandard, 0)
	require.NoError(t, err)
	// 30 * 60 * 2 * 12.1 / 1000 = 43.56 V -> 18.94%.
	assert.True(t, res.IsViolation)
	assert.True(t, res.IsDanger)
}

func TestEvaluateVoltageDrop_CustomLimit(t *testing.T) {
	entry, err := Lookup(MetricStandard, Copper, "2.5 mm²")
	require.NoError(t, err)

	res, err := EvaluateVoltageDrop(20, 30, entry, SinglePhase, 230, MetricStandard, 5)
	require.NoError(t, err)
	assert.Equal(t, 3.87, res.DropPercent)
	assert.False(t, res.IsViolation)
}

func TestEvaluateVoltageDrop_InvalidInput(t *testing.T) {
	entry, err := Lookup(MetricStandard, Copper, "2.5 mm²")
	require.NoError(t, err)

	for _, args := range [][3]float64{{0, 30, 230}, {20, 0, 230}, {20, 30, 0}, {-5, 30, 230}} {
		_, err := EvaluateVoltageDrop(args[0], args[1], entry, SinglePhase, args[2], MetricStandard, 0)
		assert.ErrorIs(t, err, ErrInvalidInput)
	}
}
