package lighting

import (
	"fmt"
	"math"
)

// Lumen method room lighting layout.
type Input struct {
	RoomLengthM       float64 `json:"room_length_m"`
	RoomWidthM        float64 `json:"room_width_m"`
	RequiredLux       float64 `json:"required_lux"`
	LumensPerFixture  float64 `json:"lumens_per_fixture"`
	UtilizationFactor float64 `json:"utilization_factor"` // 0..1
	MaintenanceFactor float64 `json:"maintenance_factor"` // 0..1
}

type Result struct {
	FixtureCount int     `json:"fixture_count"`
	Rows         int     `json:"rows"`
	Columns      int     `json:"columns"`
	AchievedLux  float64 `json:"achieved_lux"`
	Notes        string  `json:"notes"`
}

func Calculate(in Input) (Result, error) {
	if in.RoomLengthM <= 0 || in.RoomWidthM <= 0 || in.RequiredLux <= 0 {
		return Result{}, fmt.Errorf("invalid input")
	}
	if in.LumensPerFixture <= 0 {
		in.LumensPerFixture = 3000
	}
	if in.UtilizationFactor <= 0 || in.UtilizationFactor > 1 {
		in.UtilizationFactor = 0.6
	}
	if in.MaintenanceFactor <= 0 || in.MaintenanceFactor > 1 {
		in.MaintenanceFactor = 0.8
	}

	area := in.RoomLengthM * in.RoomWidthM
	effective := in.LumensPerFixture * in.UtilizationFactor * in.MaintenanceFactor

	// N = E * A / (F * UF * MF)
	count := int(math.Ceil(in.RequiredLux * area / effective))
	if count < 1 {
		count = 1
	}

	// Grid suggestion proportional to room aspect ratio.
	rows := int(math.Round(math.Sqrt(float64(count) * in.RoomWidthM / in.RoomLengthM)))
	if rows < 1 {
		rows = 1
	}
	cols := int(math.Ceil(float64(count) / float64(rows)))

	achieved := float64(count) * effective / area

	return Result{
		FixtureCount: count,
		Rows:         rows,
		Columns:      cols,
		AchievedLux:  achieved,
		Notes:        "Lumen method layout; verify uniformity for rooms with high aspect ratio.",
	}, nil
}
