package solar

import (
	"fmt"
	"math"
)

type Input struct {
	DailyLoadKWh     float64 `json:"daily_load_kwh"`
	PeakSunHours     float64 `json:"peak_sun_hours"`
	PanelW           float64 `json:"panel_w"`
	PerformanceRatio float64 `json:"performance_ratio"` // 0..1, wiring and soiling losses
	SystemVoltage    float64 `json:"system_voltage"`
}

type Result struct {
	RequiredArrayW    float64 `json:"required_array_w"`
	PanelCount        int     `json:"panel_count"`
	InstalledArrayKW  float64 `json:"installed_array_kw"`
	ControllerCurrent float64 `json:"controller_current_a"`
	Notes             string  `json:"notes"`
}

func Calculate(in Input) (Result, error) {
	if in.DailyLoadKWh <= 0 {
		return Result{}, fmt.Errorf("invalid input")
	}
	if in.PeakSunHours <= 0 {
		in.PeakSunHours = 5
	}
	if in.PanelW <= 0 {
		in.PanelW = 450
	}
	if in.PerformanceRatio <= 0 || in.PerformanceRatio > 1 {
		in.PerformanceRatio = 0.8
	}
	if in.SystemVoltage <= 0 {
		in.SystemVoltage = 48
	}

	arrayW := in.DailyLoadKWh * 1000 / (in.PeakSunHours * in.PerformanceRatio)
	panels := int(math.Ceil(arrayW / in.PanelW))
	if panels < 1 {
		panels = 1
	}
	installedW := float64(panels) * in.PanelW

	// 1.25 margin for controller sizing, standard practice.
	controller := installedW / in.SystemVoltage * 1.25

	return Result{
		RequiredArrayW:    arrayW,
		PanelCount:        panels,
		InstalledArrayKW:  installedW / 1000,
		ControllerCurrent: controller,
		Notes:             "Array sized on daily energy and peak sun hours.",
	}, nil
}
