package conductor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTemperatureFactor_Bounds(t *testing.T) {
	cases := []struct {
		std   Standard
		class InsulationClass
	}{
		{MetricStandard, Class70},
		{MetricStandard, Class90},
		{ImperialStandard, Class60},
		{ImperialStandard, Class75},
		{ImperialStandard, Class90},
	}
	for _, c := range cases {
		for ambient := -40.0; ambient <= 150.0; ambient += 2.5 {
			f := TemperatureFactor(ambient, c.class, c.std)
			assert.GreaterOrEqual(t, f, 0.0, "%s %d at %.1f", c.std, c.class, ambient)
			assert.LessOrEqual(t, f, 1.0, "%s %d at %.1f", c.std, c.class, ambient)
		}
	}
}

func TestTemperatureFactor_ReferenceClamp(t *testing.T) {
	// At or below the reference ambient the factor clamps to 1.0,
	// never extrapolating above it.
	assert.Equal(t, 1.0, TemperatureFactor(30, Class70, MetricStandard))
	assert.Equal(t, 1.0, TemperatureFactor(10, Class70, MetricStandard))
	assert.Equal(t, 1.0, TemperatureFactor(-25, Class90, ImperialStandard))
}

func TestTemperatureFactor_ZeroAtInsulationRating(t *testing.T) {
	assert.Equal(t, 0.0, TemperatureFactor(70, Class70, MetricStandard))
	assert.Equal(t, 0.0, TemperatureFactor(95, Class90, MetricStandard))
	assert.Equal(t, 0.0, TemperatureFactor(60, Class60, ImperialStandard))
	assert.Equal(t, 0.0, TemperatureFactor(75, Class75, ImperialStandard))
}

func TestTemperatureFactor_Stepwise(t *testing.T) {
	// No interpolation: everything inside a step shares its factor.
	assert.Equal(t, 0.94, TemperatureFactor(31, Class70, MetricStandard))
	assert.Equal(t, 0.94, TemperatureFactor(35, Class70, MetricStandard))
	assert.Equal(t, 0.87, TemperatureFactor(36, Class70, MetricStandard))

	// Above the last tabulated step but below the rating: last step holds.
	assert.Equal(t, 0.35, TemperatureFactor(68, Class70, MetricStandard))
	assert.Equal(t, 0.33, TemperatureFactor(74, Class75, ImperialStandard))
}

func TestGroupingFactor_Threshold(t *testing.T) {
	for count := 1; count <= 3; count++ {
		assert.Equal(t, 1.0, GroupingFactor(count, MetricStandard, "conduit"))
		assert.Equal(t, 1.0, GroupingFactor(count, ImperialStandard, "conduit"))
	}

	metric4 := GroupingFactor(4, MetricStandard, "conduit")
	imperial4 := GroupingFactor(4, ImperialStandard, "conduit")
	assert.Less(t, metric4, 1.0)
	assert.Less(t, imperial4, 1.0)
	// The standards use different breakpoints and must not share tables.
	assert.NotEqual(t, metric4, imperial4)
}

func TestGroupingFactor_MethodAndFloor(t *testing.T) {
	// Metric tray groupings derate milder than bunched runs.
	assert.Greater(t, GroupingFactor(6, MetricStandard, "tray"), GroupingFactor(6, MetricStandard, "conduit"))
	// Imperial applies one table regardless of method.
	assert.Equal(t, GroupingFactor(6, ImperialStandard, "tray"), GroupingFactor(6, ImperialStandard, "conduit"))

	// Beyond the last tabulated group size the floor value applies.
	assert.Equal(t, imperialGroupFloor, GroupingFactor(50, ImperialStandard, "conduit"))
	assert.Equal(t, metricGroupFloorBunched, GroupingFactor(40, MetricStandard, "conduit"))
}

func TestCombinedDerating(t *testing.T) {
	res := CombinedDerating(DeratingContext{
		AmbientC:       40,
		Insulation:     Class70,
		ConductorCount: 4,
		InstallMethod:  "conduit",
		Standard:       MetricStandard,
	})
	assert.Equal(t, 0.87, res.TemperatureFactor)
	assert.Equal(t, 0.75, res.GroupingFactor)
	assert.InDelta(t, 0.87*0.75, res.TotalFactor, 1e-12)
	assert.Contains(t, res.Reference, "4B1")
}

func TestCombinedDerating_Warnings(t *testing.T) {
	res := CombinedDerating(DeratingContext{
		AmbientC:       70,
		Insulation:     Class70,
		ConductorCount: 24,
		InstallMethod:  "conduit",
		Standard:       MetricStandard,
	})
	require.Equal(t, 0.0, res.TotalFactor)
	require.Len(t, res.Warnings, 2)
	assert.Contains(t, res.Warnings[0], "insulation rating")
	assert.Contains(t, res.Warnings[1], "conductor count")
}
