package conductor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func metricCu(t *testing.T, label string) CatalogEntry {
	t.Helper()
	e, err := Lookup(MetricStandard, Copper, label)
	require.NoError(t, err)
	return e
}

func TestResolveEarth_MetricProportional(t *testing.T) {
	cases := []struct {
		phase string
		want  string
	}{
		{"1.5 mm²", "1.5 mm²"}, // at or below 16: same size
		{"16 mm²", "16 mm²"},
		{"25 mm²", "16 mm²"}, // 16 < S <= 35: fixed 16
		{"35 mm²", "16 mm²"},
		{"70 mm²", "35 mm²"}, // above 35: half, rounded up to catalog
		{"95 mm²", "50 mm²"},
		{"300 mm²", "150 mm²"},
	}
	for _, c := range cases {
		res := ResolveEarthConductor(metricCu(t, c.phase), 0, Copper, MetricStandard)
		assert.Equal(t, c.want, res.Size, "phase %s", c.phase)
		assert.Equal(t, "proportional", res.RuleApplied)
		assert.Contains(t, res.Reference, "54.7")
	}
}

func TestResolveEarth_MetricAdiabatic(t *testing.T) {
	// S = I * sqrt(0.4) / 143 = 13.27 mm² for a 3 kA fault, rounded up
	// to the next real section.
	res := ResolveEarthConductor(metricCu(t, "95 mm²"), 3000, Copper, MetricStandard)
	assert.Equal(t, "16 mm²", res.Size)
	assert.Equal(t, "adiabatic", res.RuleApplied)
	assert.Contains(t, res.Reference, "543.1")

	// Aluminum k is lower, so the same fault needs more section.
	res = ResolveEarthConductor(metricCu(t, "95 mm²"), 3000, Aluminum, MetricStandard)
	assert.Equal(t, "25 mm²", res.Size)
}

func TestResolveEarth_ImperialLadder(t *testing.T) {
	phase, err := Lookup(ImperialStandard, Copper, "3/0 AWG")
	require.NoError(t, err)

	res := ResolveEarthConductor(phase, 200, Copper, ImperialStandard)
	assert.Equal(t, "6 AWG", res.Size)
	assert.Equal(t, "ocpd ladder", res.RuleApplied)
	assert.Contains(t, res.Reference, "250.122")

	// No fault level: the phase conductor's 75 °C ampacity stands in
	// for the protective device rating (3/0 AWG carries 200 A).
	res = ResolveEarthConductor(phase, 0, Copper, ImperialStandard)
	assert.Equal(t, "6 AWG", res.Size)

	// Aluminum steps one ladder size up.
	res = ResolveEarthConductor(phase, 200, Aluminum, ImperialStandard)
	assert.Equal(t, "4 AWG", res.Size)
}

func TestResolveEarth_ImperialLadderEnds(t *testing.T) {
	phase, err := Lookup(ImperialStandard, Copper, "14 AWG")
	require.NoError(t, err)

	res := ResolveEarthConductor(phase, 15, Copper, ImperialStandard)
	assert.Equal(t, "14 AWG", res.Size)

	// Beyond the ladder: largest entry.
	res = ResolveEarthConductor(phase, 9999, Copper, ImperialStandard)
	assert.Equal(t, "500 kcmil", res.Size)
}

func TestResolveEarth_MetricAluminumCatalogFloor(t *testing.T) {
	// The aluminum catalog starts at 16 mm²; a small required section
	// still rounds up to a stocked size.
	phase, err := Lookup(MetricStandard, Aluminum, "16 mm²")
	require.NoError(t, err)
	res := ResolveEarthConductor(phase, 0, Aluminum, MetricStandard)
	assert.Equal(t, "16 mm²", res.Size)
}
