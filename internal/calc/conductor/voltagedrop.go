package conductor

import (
	"fmt"
	"math"
)

type PhaseConfig string

const (
	SinglePhase PhaseConfig = "single"
	ThreePhase  PhaseConfig = "three"
)

const (
	// DefaultDropLimitPercent applies when a request does not override it.
	DefaultDropLimitPercent = 3.0
	// DangerDropPercent is a hard ceiling, never configurable.
	DangerDropPercent = 10.0
)

type VoltageDropResult struct {
	DropVolts       float64 `json:"drop_volts"`
	DropPercent     float64 `json:"drop_percent"`
	IsViolation     bool    `json:"is_violation"`
	IsDanger        bool    `json:"is_danger"`
	ResistanceUsed  float64 `json:"resistance_used"`
	PhaseMultiplier float64 `json:"phase_multiplier"`
}

func phaseMultiplier(phase PhaseConfig) float64 {
	if phase == ThreePhase {
		return math.Sqrt(3)
	}
	// Single phase: out and return.
	return 2.0
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// EvaluateVoltageDrop computes the drop for one conductor carrying the
// given current over the given length (metres for metric, feet for
// imperial; the resistance form matches, so units never cross).
// Limit comparisons use the rounded percentage so the engine and any UI
// showing two decimals always agree. limitPercent <= 0 selects the
// default 3%.
func EvaluateVoltageDrop(current, length float64, entry CatalogEntry, phase PhaseConfig, systemVoltage float64, std Standard, limitPercent float64) (VoltageDropResult, error) {
	if current <= 0 || length <= 0 || systemVoltage <= 0 {
		return VoltageDropResult{}, fmt.Errorf("%w: current, length and system voltage must be positive", ErrInvalidInput)
	}
	if limitPercent <= 0 {
		limitPercent = DefaultDropLimitPercent
	}

	mult := phaseMultiplier(phase)
	r := entry.resistance(std)

	drop := current * length * mult * r / 1000.0
	percent := drop / systemVoltage * 100.0

	drop = round2(drop)
	percent = round2(percent)

	return VoltageDropResult{
		DropVolts:       drop,
		DropPercent:     percent,
		IsViolation:     percent > limitPercent,
		IsDanger:        percent > DangerDropPercent,
		ResistanceUsed:  r,
		PhaseMultiplier: mult,
	}, nil
}
