package conductor

import "fmt"

// SizingRequest is consumed exactly once; the engine is a pure function
// of the request plus the compiled-in tables. Length is metres under the
// metric standard and feet under the imperial one.
type SizingRequest struct {
	SystemVoltage    float64         `json:"system_voltage"`
	CurrentAmps      float64         `json:"current_amps"`
	Length           float64         `json:"length"`
	Material         Material        `json:"material"`
	InstallMethod    string          `json:"install_method"`
	AmbientC         float64         `json:"ambient_c"`
	Phase            PhaseConfig     `json:"phase"`
	ConductorCount   int             `json:"conductor_count"`
	Insulation       InsulationClass `json:"insulation_class"`
	Standard         Standard        `json:"standard"`
	MaxDropPercent   float64         `json:"max_drop_percent,omitempty"`
	FaultCurrentAmps float64         `json:"fault_current_amps,omitempty"`
}

type ComplianceSummary struct {
	VoltageDropCompliant bool `json:"voltage_drop_compliant"`
	AmpacityCompliant    bool `json:"ampacity_compliant"`
	IsFullyCompliant     bool `json:"is_fully_compliant"`
}

// AlternativeSize is a larger size that also satisfies both constraints.
type AlternativeSize struct {
	Size               string  `json:"size"`
	DeratedAmpacity    float64 `json:"derated_ampacity"`
	DropPercent        float64 `json:"drop_percent"`
	UtilizationPercent float64 `json:"utilization_percent"`
}

type SizingResult struct {
	RecommendedSize    string               `json:"recommended_size"`
	ParallelRuns       int                  `json:"parallel_runs"` // 1 for a single conductor
	VoltageDrop        VoltageDropResult    `json:"voltage_drop"`
	BaseAmpacity       float64              `json:"base_ampacity"`
	DeratedAmpacity    float64              `json:"derated_ampacity"`
	UtilizationPercent float64              `json:"utilization_percent"`
	Derating           DeratingResult       `json:"derating"`
	Compliance         ComplianceSummary    `json:"compliance"`
	Warnings           []string             `json:"warnings,omitempty"`
	Alternatives       []AlternativeSize    `json:"alternatives,omitempty"`
	StandardReferences []string             `json:"standard_references"`
	ParallelOptions    []ParallelRunOption  `json:"parallel_run_options,omitempty"`
	Earth              EarthConductorResult `json:"earth_conductor"`
}

// Absolute physical bounds for validation; the stepwise tables handle
// everything inside them.
const (
	minAmbientC       = -60.0
	maxAmbientC       = 200.0
	maxConductorCount = 120
	highUtilization   = 80.0
)

func (r *SizingRequest) applyDefaults() {
	if r.Standard == "" {
		r.Standard = MetricStandard
	}
	if r.Material == "" {
		r.Material = Copper
	}
	if r.Phase == "" {
		r.Phase = SinglePhase
	}
	if r.InstallMethod == "" {
		r.InstallMethod = "conduit"
	}
	if r.Insulation == 0 {
		if r.Standard == ImperialStandard {
			r.Insulation = Class75
		} else {
			r.Insulation = Class70
		}
	}
	if r.ConductorCount == 0 {
		if r.Phase == ThreePhase {
			r.ConductorCount = 3
		} else {
			r.ConductorCount = 2
		}
	}
	if r.SystemVoltage == 0 {
		switch {
		case r.Standard == ImperialStandard && r.Phase == ThreePhase:
			r.SystemVoltage = 208
		case r.Standard == ImperialStandard:
			r.SystemVoltage = 120
		case r.Phase == ThreePhase:
			r.SystemVoltage = 400
		default:
			r.SystemVoltage = 230
		}
	}
	if r.MaxDropPercent <= 0 {
		r.MaxDropPercent = DefaultDropLimitPercent
	}
}

func (r *SizingRequest) validate() error {
	if r.CurrentAmps <= 0 {
		return fmt.Errorf("%w: current must be positive", ErrInvalidInput)
	}
	if r.Length <= 0 {
		return fmt.Errorf("%w: length must be positive", ErrInvalidInput)
	}
	if r.SystemVoltage <= 0 {
		return fmt.Errorf("%w: system voltage must be positive", ErrInvalidInput)
	}
	if r.AmbientC < minAmbientC || r.AmbientC > maxAmbientC {
		return fmt.Errorf("%w: ambient %.1f °C outside physical range", ErrInvalidInput, r.AmbientC)
	}
	if r.ConductorCount < 1 || r.ConductorCount > maxConductorCount {
		return fmt.Errorf("%w: conductor count %d outside supported range", ErrInvalidInput, r.ConductorCount)
	}
	if r.Material != Copper && r.Material != Aluminum {
		return fmt.Errorf("%w: unknown material %q", ErrInvalidInput, r.Material)
	}
	if r.Phase != SinglePhase && r.Phase != ThreePhase {
		return fmt.Errorf("%w: unknown phase configuration %q", ErrInvalidInput, r.Phase)
	}
	if r.Standard != MetricStandard && r.Standard != ImperialStandard {
		return fmt.Errorf("%w: unknown standard %q", ErrInvalidInput, r.Standard)
	}
	if _, ok := AllSizes(r.Standard, r.Material)[0].BaseAmpacity(r.Insulation); !ok {
		return fmt.Errorf("%w: insulation class %d °C not supported by the %s standard", ErrInvalidInput, r.Insulation, r.Standard)
	}
	return nil
}

// singleEval is one catalog entry scored at the full (unsplit) current.
type singleEval struct {
	entry       CatalogEntry
	base        float64
	derated     float64
	drop        VoltageDropResult
	utilization float64
}

func evaluateSingle(req SizingRequest, entry CatalogEntry, derating DeratingResult) (singleEval, error) {
	base, _ := entry.BaseAmpacity(req.Insulation)
	derated, err := DeratedAmpacity(entry, req.Insulation, derating)
	if err != nil {
		return singleEval{}, err
	}
	drop, err := EvaluateVoltageDrop(req.CurrentAmps, req.Length, entry, req.Phase, req.SystemVoltage, req.Standard, req.MaxDropPercent)
	if err != nil {
		return singleEval{}, err
	}
	ev := singleEval{entry: entry, base: base, derated: derated, drop: drop}
	if derated > 0 {
		ev.utilization = round2(req.CurrentAmps / derated * 100)
	}
	return ev, nil
}

func (e singleEval) compliant(current float64) bool {
	return !e.drop.IsViolation && !IsOverloaded(current, e.derated)
}

// searchSingle scans the catalog ascending and accepts the first entry
// meeting both constraints. Ampacity is monotone non-decreasing and drop
// monotone non-increasing with size, so the first hit is the global
// minimum. Up to three larger compliant sizes are kept as alternatives.
func searchSingle(req SizingRequest, derating DeratingResult) (best singleEval, alts []AlternativeSize, found bool, err error) {
	for _, entry := range AllSizes(req.Standard, req.Material) {
		ev, evalErr := evaluateSingle(req, entry, derating)
		if evalErr != nil {
			return singleEval{}, nil, false, evalErr
		}
		if !ev.compliant(req.CurrentAmps) {
			continue
		}
		if !found {
			best, found = ev, true
			continue
		}
		alts = append(alts, AlternativeSize{
			Size:               ev.entry.Label(req.Standard),
			DeratedAmpacity:    round2(ev.derated),
			DropPercent:        ev.drop.DropPercent,
			UtilizationPercent: ev.utilization,
		})
		if len(alts) == 3 {
			break
		}
	}
	return best, alts, found, nil
}

// SizeConductor is the engine entry point: validate, derate, search,
// fall back to parallel runs, resolve the protective conductor and
// assemble the result. Deterministic; a failed search is not an error,
// the result carries compliance flags and warnings instead.
func SizeConductor(req SizingRequest) (SizingResult, error) {
	req.applyDefaults()
	if err := req.validate(); err != nil {
		return SizingResult{}, err
	}

	derating := CombinedDerating(DeratingContext{
		AmbientC:       req.AmbientC,
		Insulation:     req.Insulation,
		ConductorCount: req.ConductorCount,
		InstallMethod:  req.InstallMethod,
		Standard:       req.Standard,
	})

	res := SizingResult{
		ParallelRuns:       1,
		Derating:           derating,
		StandardReferences: standardReferences(req.Standard),
	}
	res.Warnings = append(res.Warnings, derating.Warnings...)
	res.Warnings = append(res.Warnings, environmentWarnings(req)...)

	best, alts, found, err := searchSingle(req, derating)
	if err != nil {
		return SizingResult{}, err
	}

	var chosen CatalogEntry
	switch {
	case found:
		chosen = best.entry
		res.RecommendedSize = best.entry.Label(req.Standard)
		res.VoltageDrop = best.drop
		res.BaseAmpacity = best.base
		res.DeratedAmpacity = round2(best.derated)
		res.UtilizationPercent = best.utilization
		res.Alternatives = alts
		res.Compliance = ComplianceSummary{
			VoltageDropCompliant: true,
			AmpacityCompliant:    true,
			IsFullyCompliant:     true,
		}
		if best.utilization > highUtilization {
			res.Warnings = append(res.Warnings,
				fmt.Sprintf("utilization %.1f%% exceeds %.0f%%, consider the next size up", best.utilization, highUtilization))
		}
	default:
		chosen = fillFromParallel(&res, req, derating)
	}

	res.Earth = ResolveEarthConductor(chosen, req.FaultCurrentAmps, req.Material, req.Standard)
	return res, nil
}

// fillFromParallel runs the optimizer and writes the recommendation into
// the result. Returns the catalog entry the earth conductor derives from.
func fillFromParallel(res *SizingResult, req SizingRequest, derating DeratingResult) CatalogEntry {
	options := OptimizeParallelRuns(req, derating)
	res.ParallelOptions = options

	pick, ok := firstCompliantOption(options)
	if !ok && len(options) > 0 {
		pick = options[0]
	}
	if !ok {
		res.Warnings = append(res.Warnings,
			"no compliant configuration found within practical parallel limits, consider a different installation method, insulation class or supply voltage")
	}
	if len(options) == 0 {
		// Nothing even near-compliant: report the largest catalog size
		// so the caller still sees the closest physical option.
		sizes := AllSizes(req.Standard, req.Material)
		largest := sizes[len(sizes)-1]
		ev, _ := evaluateSingle(req, largest, derating)
		res.RecommendedSize = largest.Label(req.Standard)
		res.VoltageDrop = ev.drop
		res.BaseAmpacity = ev.base
		res.DeratedAmpacity = round2(ev.derated)
		res.UtilizationPercent = ev.utilization
		res.Compliance = ComplianceSummary{
			VoltageDropCompliant: !ev.drop.IsViolation,
			AmpacityCompliant:    !IsOverloaded(req.CurrentAmps, ev.derated),
		}
		return largest
	}

	entry, _ := Lookup(req.Standard, req.Material, pick.Size)
	base, _ := entry.BaseAmpacity(req.Insulation)
	res.RecommendedSize = pick.Size
	res.ParallelRuns = pick.RunsPerPhase
	res.VoltageDrop = pick.VoltageDrop
	res.BaseAmpacity = base
	res.DeratedAmpacity = pick.TotalDeratedAmpacity
	res.UtilizationPercent = pick.UtilizationPercent
	res.Compliance = ComplianceSummary{
		VoltageDropCompliant: !pick.VoltageDrop.IsViolation,
		AmpacityCompliant:    !IsOverloaded(req.CurrentAmps, pick.TotalDeratedAmpacity),
		IsFullyCompliant:     pick.IsCompliant,
	}
	res.Warnings = append(res.Warnings,
		fmt.Sprintf("no single conductor satisfies both constraints, %d parallel runs of %s recommended", pick.RunsPerPhase, pick.Size))
	return entry
}

func environmentWarnings(req SizingRequest) []string {
	var w []string
	longRun := req.Length > 100
	if req.Standard == ImperialStandard {
		longRun = req.Length > 300
	}
	if longRun {
		w = append(w, "long conductor run, voltage drop dominates the sizing")
	}
	if req.SystemVoltage < 50 {
		w = append(w, "low voltage system, drop limits are reached quickly")
	}
	return w
}

func standardReferences(std Standard) []string {
	if std == ImperialStandard {
		return []string{
			"NEC Table 310.16",
			"NEC Table 310.15(B)(1)",
			"NEC 310.15(C)(1)",
			"NEC Chapter 9 Table 8",
			"NEC Table 250.122",
		}
	}
	return []string{
		"BS 7671 Table 4D2A / 4E2A",
		"BS 7671 Table 4B1",
		"BS 7671 Table 4C1",
		"BS 7671 Appendix 4 section 6",
		"BS 7671 543.1",
	}
}
