package batch

import (
	"testing"

	conductor "Voltra/internal/calc/conductor"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculateSizing_PreservesOrder(t *testing.T) {
	in := SizingBatchInput{Items: []conductor.SizingRequest{
		{CurrentAmps: 10, Length: 10, Standard: conductor.MetricStandard},
		{CurrentAmps: 100, Length: 20, Standard: conductor.MetricStandard},
		{CurrentAmps: 46.3, Length: 100, SystemVoltage: 240, Standard: conductor.ImperialStandard},
	}}

	out, err := CalculateSizing(in)
	require.NoError(t, err)
	require.Len(t, out.Results, 3)

	assert.Equal(t, "1.5 mm²", out.Results[0].RecommendedSize)
	assert.Equal(t, "25 mm²", out.Results[1].RecommendedSize)
	assert.Equal(t, "8 AWG", out.Results[2].RecommendedSize)
}

func TestCalculateSizing_Errors(t *testing.T) {
	_, err := CalculateSizing(SizingBatchInput{})
	assert.Error(t, err)

	_, err = CalculateSizing(SizingBatchInput{Items: []conductor.SizingRequest{
		{CurrentAmps: -1, Length: 10},
	}})
	assert.ErrorIs(t, err, conductor.ErrInvalidInput)
}
