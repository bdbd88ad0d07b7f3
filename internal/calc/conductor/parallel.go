package conductor

import "sort"

// Parallel-run policy. The bounds reflect installation practicality, not
// a normative table; adjust to local practice if needed.
const (
	minParallelRuns      = 2
	maxParallelRuns      = 6
	minParallelSizeMM2   = 50.0      // smallest metric size worth paralleling
	minParallelSizeLabel = "1/0 AWG" // smallest imperial size worth paralleling

	// Near-compliance retention band: an option short of the load by up
	// to this factor, with drop under the band limit, is still reported.
	nearAmpacityFactor   = 1.2
	nearDropLimitPercent = 5.0

	maxParallelOptions = 6
)

// ParallelRunOption is one (size, runs-per-phase) candidate with the
// load split evenly across the runs.
type ParallelRunOption struct {
	RunsPerPhase          int               `json:"runs_per_phase"`
	Size                  string            `json:"size"`
	CurrentPerConductor   float64           `json:"current_per_conductor"`
	DeratedAmpacityPerRun float64           `json:"derated_ampacity_per_run"`
	TotalDeratedAmpacity  float64           `json:"total_derated_ampacity"`
	VoltageDrop           VoltageDropResult `json:"voltage_drop"`
	UtilizationPercent    float64           `json:"utilization_percent"`
	IsCompliant           bool              `json:"is_compliant"`
	CostScore             int               `json:"cost_score"` // 1 (poor) to 5 (best)
}

// parallelBand returns the practical candidate slice of the catalog:
// small sizes are excluded, multiple tiny conductors per phase are not
// an installation anyone terminates.
func parallelBand(std Standard, mat Material) []CatalogEntry {
	entries := AllSizes(std, mat)
	for i, e := range entries {
		if std == ImperialStandard {
			if e.ImperialLabel == minParallelSizeLabel {
				return entries[i:]
			}
			continue
		}
		if e.SizeMM2 >= minParallelSizeMM2 {
			return entries[i:]
		}
	}
	return nil
}

// costScore ranks installation economy: many runs cost terminations and
// tray space, oversizing wastes copper, and running hot leaves no margin.
func costScore(runs int, utilization float64) int {
	score := 5
	if runs > 4 {
		score--
	}
	if runs > 5 {
		score--
	}
	if utilization < 50 {
		score--
	}
	if utilization > 90 {
		score--
	}
	if score < 1 {
		score = 1
	}
	return score
}

// OptimizeParallelRuns explores (size × run count) combinations after the
// single-conductor search has failed. Splitting the load over n runs
// multiplies total ampacity by n and divides each run's drop by n, which
// can satisfy both constraints at once. Compliant options rank first,
// then higher cost score, then fewer runs; the top six are returned.
func OptimizeParallelRuns(req SizingRequest, derating DeratingResult) []ParallelRunOption {
	var options []ParallelRunOption

	for _, entry := range parallelBand(req.Standard, req.Material) {
		perAmp, err := DeratedAmpacity(entry, req.Insulation, derating)
		if err != nil {
			continue
		}
		for runs := minParallelRuns; runs <= maxParallelRuns; runs++ {
			perCurrent := req.CurrentAmps / float64(runs)
			drop, err := EvaluateVoltageDrop(perCurrent, req.Length, entry, req.Phase, req.SystemVoltage, req.Standard, req.MaxDropPercent)
			if err != nil {
				continue
			}
			totalAmp := perAmp * float64(runs)

			compliant := !drop.IsViolation && totalAmp >= req.CurrentAmps
			near := totalAmp*nearAmpacityFactor >= req.CurrentAmps && drop.DropPercent < nearDropLimitPercent
			if !compliant && !near {
				continue
			}

			utilization := 0.0
			if totalAmp > 0 {
				utilization = round2(req.CurrentAmps / totalAmp * 100)
			}
			options = append(options, ParallelRunOption{
				RunsPerPhase:          runs,
				Size:                  entry.Label(req.Standard),
				CurrentPerConductor:   round2(perCurrent),
				DeratedAmpacityPerRun: round2(perAmp),
				TotalDeratedAmpacity:  round2(totalAmp),
				VoltageDrop:           drop,
				UtilizationPercent:    utilization,
				IsCompliant:           compliant,
				CostScore:             costScore(runs, utilization),
			})
		}
	}

	sort.Slice(options, func(i, j int) bool {
		a, b := options[i], options[j]
		if a.IsCompliant != b.IsCompliant {
			return a.IsCompliant
		}
		if a.CostScore != b.CostScore {
			return a.CostScore > b.CostScore
		}
		return a.RunsPerPhase < b.RunsPerPhase
	})
	if len(options) > maxParallelOptions {
		options = options[:maxParallelOptions]
	}
	return options
}

func firstCompliantOption(options []ParallelRunOption) (ParallelRunOption, bool) {
	for _, o := range options {
		if o.IsCompliant {
			return o, true
		}
	}
	return ParallelRunOption{}, false
}
