package conductor

import "math"

// EarthConductorResult is the protective-conductor recommendation
// derived from the finalized phase conductor.
type EarthConductorResult struct {
	Size        string `json:"size"`
	RuleApplied string `json:"rule_applied"`
	Reference   string `json:"reference"`
}

// Adiabatic k values for thermosetting insulation (BS 7671 Table 54.3)
// and the assumed final-circuit disconnection time.
const (
	adiabaticKCopper    = 143.0
	adiabaticKAluminum  = 94.0
	disconnectTimeSec   = 0.4
	proportionalLowMM2  = 16.0
	proportionalMidMM2  = 35.0
)

// NEC Table 250.122 style ladder, keyed by the overcurrent device (or
// prospective fault) rating, copper column.
var imperialEarthLadder = []struct {
	maxAmps float64
	size    string
}{
	{15, "14 AWG"}, {20, "12 AWG"}, {60, "10 AWG"}, {100, "8 AWG"},
	{200, "6 AWG"}, {300, "4 AWG"}, {400, "3 AWG"}, {500, "2 AWG"},
	{600, "1 AWG"}, {800, "1/0 AWG"}, {1000, "2/0 AWG"}, {1200, "3/0 AWG"},
	{1600, "4/0 AWG"}, {2000, "250 kcmil"}, {2500, "350 kcmil"},
	{3000, "400 kcmil"}, {4000, "500 kcmil"},
}

// ResolveEarthConductor sizes the protective conductor for the chosen
// phase conductor. This is a separate rule set from ampacity and voltage
// drop and runs only after the phase size (or parallel configuration) is
// final.
//
// Metric: with a known fault current the adiabatic S = I·√t / k formula
// applies, otherwise the proportional rule (same size up to 16 mm²,
// 16 mm² up to 35 mm², half size above), always rounded up to a real
// catalog section. Imperial: the protective-conductor ladder keyed by
// fault current, falling back to the phase conductor's base ampacity
// when no fault level is given.
func ResolveEarthConductor(phase CatalogEntry, faultCurrentAmps float64, mat Material, std Standard) EarthConductorResult {
	if std == ImperialStandard {
		return resolveImperialEarth(phase, faultCurrentAmps, mat)
	}
	return resolveMetricEarth(phase, faultCurrentAmps, mat)
}

func resolveMetricEarth(phase CatalogEntry, faultAmps float64, mat Material) EarthConductorResult {
	if faultAmps > 0 {
		k := adiabaticKCopper
		if mat == Aluminum {
			k = adiabaticKAluminum
		}
		required := faultAmps * math.Sqrt(disconnectTimeSec) / k
		entry, ok := nextSizeAtLeast(mat, required)
		if !ok {
			// Fault level beyond the largest catalog section.
			sizes := AllSizes(MetricStandard, mat)
			entry = sizes[len(sizes)-1]
		}
		return EarthConductorResult{
			Size:        entry.MetricLabel,
			RuleApplied: "adiabatic",
			Reference:   "BS 7671 543.1.1",
		}
	}

	var required float64
	switch {
	case phase.SizeMM2 <= proportionalLowMM2:
		required = phase.SizeMM2
	case phase.SizeMM2 <= proportionalMidMM2:
		required = proportionalLowMM2
	default:
		required = phase.SizeMM2 / 2
	}
	entry, ok := nextSizeAtLeast(mat, required)
	if !ok {
		entry = phase
	}
	return EarthConductorResult{
		Size:        entry.MetricLabel,
		RuleApplied: "proportional",
		Reference:   "BS 7671 Table 54.7",
	}
}

func resolveImperialEarth(phase CatalogEntry, faultAmps float64, mat Material) EarthConductorResult {
	rating := faultAmps
	if rating <= 0 {
		// No fault level supplied: approximate the protective device by
		// the phase conductor's 75 °C ampacity.
		rating, _ = phase.BaseAmpacity(Class75)
	}

	size := imperialEarthLadder[len(imperialEarthLadder)-1].size
	idx := len(imperialEarthLadder) - 1
	for i, step := range imperialEarthLadder {
		if rating <= step.maxAmps {
			size, idx = step.size, i
			break
		}
	}
	// The ladder is the copper column; aluminum protective conductors
	// step one size up.
	if mat == Aluminum && idx < len(imperialEarthLadder)-1 {
		size = imperialEarthLadder[idx+1].size
	}
	return EarthConductorResult{
		Size:        size,
		RuleApplied: "ocpd ladder",
		Reference:   "NEC Table 250.122",
	}
}
