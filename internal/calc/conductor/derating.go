package conductor

import "fmt"

// referenceAmbientC is the ambient the base ampacity tables assume.
// Both table systems use 30 °C.
const referenceAmbientC = 30.0

// DeratingContext bundles the environment of one installation.
type DeratingContext struct {
	AmbientC       float64         `json:"ambient_c"`
	Insulation     InsulationClass `json:"insulation_class"`
	ConductorCount int             `json:"conductor_count"`
	InstallMethod  string          `json:"install_method"` // conduit, tray, buried, air
	Standard       Standard        `json:"standard"`
}

type DeratingResult struct {
	TemperatureFactor float64  `json:"temperature_factor"`
	GroupingFactor    float64  `json:"grouping_factor"`
	TotalFactor       float64  `json:"total_factor"`
	Reference         string   `json:"reference"`
	Warnings          []string `json:"warnings,omitempty"`
}

type tempStep struct {
	upToC  float64
	factor float64
}

// Stepwise ambient correction, BS 7671 Table 4B1 style. No interpolation
// between steps; ambient at or above the insulation rating is handled
// before these tables are consulted.
var metricTempSteps = map[InsulationClass][]tempStep{
	Class70: {
		{35, 0.94}, {40, 0.87}, {45, 0.79}, {50, 0.71},
		{55, 0.61}, {60, 0.50}, {65, 0.35},
	},
	Class90: {
		{35, 0.96}, {40, 0.91}, {45, 0.87}, {50, 0.82}, {55, 0.76},
		{60, 0.71}, {65, 0.65}, {70, 0.58}, {75, 0.50}, {80, 0.41}, {85, 0.29},
	},
}

// NEC Table 310.15(B)(1) style.
var imperialTempSteps = map[InsulationClass][]tempStep{
	Class60: {
		{35, 0.91}, {40, 0.82}, {45, 0.71}, {50, 0.58}, {55, 0.41},
	},
	Class75: {
		{35, 0.94}, {40, 0.88}, {45, 0.82}, {50, 0.75},
		{55, 0.67}, {60, 0.58}, {65, 0.47}, {70, 0.33},
	},
	Class90: {
		{35, 0.96}, {40, 0.91}, {45, 0.87}, {50, 0.82}, {55, 0.76},
		{60, 0.71}, {65, 0.65}, {70, 0.58}, {75, 0.50}, {80, 0.41}, {85, 0.29},
	},
}

// TemperatureFactor returns the ambient correction in [0,1].
// 1.0 at or below the reference ambient, exactly 0.0 once the ambient
// meets the insulation rating (the cable cannot be used), stepwise in
// between. Above the highest step but still below the rating the last
// step value applies.
func TemperatureFactor(ambientC float64, class InsulationClass, std Standard) float64 {
	if ambientC >= float64(class) {
		return 0.0
	}
	if ambientC <= referenceAmbientC {
		return 1.0
	}
	var steps []tempStep
	switch std {
	case ImperialStandard:
		steps = imperialTempSteps[class]
	default:
		steps = metricTempSteps[class]
	}
	if len(steps) == 0 {
		return 0.0
	}
	for _, s := range steps {
		if ambientC <= s.upToC {
			return s.factor
		}
	}
	return steps[len(steps)-1].factor
}

type groupStep struct {
	upToCount int
	factor    float64
}

// Grouping reductions. The first three conductors never derate; the two
// standards step down at different group sizes and must not share a
// table. Metric cable tray groupings run milder than bunched/conduit.
var (
	metricGroupBunched = []groupStep{
		{3, 1.0}, {4, 0.75}, {5, 0.73}, {6, 0.72},
		{9, 0.68}, {12, 0.60}, {20, 0.54},
	}
	metricGroupTray = []groupStep{
		{3, 1.0}, {4, 0.87}, {6, 0.82}, {9, 0.78}, {12, 0.73}, {20, 0.68},
	}
	imperialGroup = []groupStep{
		{3, 1.0}, {6, 0.80}, {9, 0.70}, {20, 0.50}, {30, 0.45}, {40, 0.40},
	}
	// Beyond the last tabulated group size.
	metricGroupFloorBunched = 0.50
	metricGroupFloorTray    = 0.64
	imperialGroupFloor      = 0.35
)

// GroupingFactor returns the bundling correction in [0,1] for the number
// of current-carrying conductors installed together.
func GroupingFactor(count int, std Standard, installMethod string) float64 {
	if count <= 3 {
		return 1.0
	}
	steps, floor := imperialGroup, imperialGroupFloor
	if std != ImperialStandard {
		// NEC applies one adjustment table regardless of raceway;
		// the metric tables distinguish tray from bunched groups.
		if installMethod == "tray" || installMethod == "air" {
			steps, floor = metricGroupTray, metricGroupFloorTray
		} else {
			steps, floor = metricGroupBunched, metricGroupFloorBunched
		}
	}
	for _, s := range steps {
		if count <= s.upToCount {
			return s.factor
		}
	}
	return floor
}

// CombinedDerating multiplies the two factors and collects advisories.
func CombinedDerating(ctx DeratingContext) DeratingResult {
	tf := TemperatureFactor(ctx.AmbientC, ctx.Insulation, ctx.Standard)
	gf := GroupingFactor(ctx.ConductorCount, ctx.Standard, ctx.InstallMethod)

	total := tf * gf
	if total < 0 {
		total = 0
	}

	res := DeratingResult{
		TemperatureFactor: tf,
		GroupingFactor:    gf,
		TotalFactor:       total,
	}
	switch ctx.Standard {
	case ImperialStandard:
		res.Reference = "NEC Table 310.15(B)(1), 310.15(C)(1)"
	default:
		res.Reference = "BS 7671 Table 4B1, Table 4C1"
	}

	if tf == 0 {
		res.Warnings = append(res.Warnings,
			fmt.Sprintf("ambient %.0f °C meets or exceeds the %d °C insulation rating: cable cannot be used at this temperature", ctx.AmbientC, ctx.Insulation))
	} else if tf < 0.5 {
		res.Warnings = append(res.Warnings, "severe ambient temperature derating, check installation environment")
	}
	if ctx.ConductorCount > 20 {
		res.Warnings = append(res.Warnings, "very high conductor count, unusual grouping derating applies")
	}
	return res
}
