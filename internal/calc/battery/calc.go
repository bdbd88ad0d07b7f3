package battery

import (
	"fmt"
	"math"
)

type Input struct {
	LoadW              float64 `json:"load_w"`
	BackupHours        float64 `json:"backup_hours"`
	SystemVoltage      float64 `json:"system_voltage"`
	DepthOfDischarge   float64 `json:"depth_of_discharge"`  // 0..1
	InverterEfficiency float64 `json:"inverter_efficiency"` // 0..1
	AgingFactor        float64 `json:"aging_factor"`
	BatteryVoltage     float64 `json:"battery_voltage"`
	BatteryAh          float64 `json:"battery_ah"`
}

type Result struct {
	RequiredAh      float64 `json:"required_ah"`
	SeriesCount     int     `json:"series_count"`
	ParallelStrings int     `json:"parallel_strings"`
	TotalBatteries  int     `json:"total_batteries"`
	BankEnergyWh    float64 `json:"bank_energy_wh"`
	Notes           string  `json:"notes"`
}

func Calculate(in Input) (Result, error) {
	if in.LoadW <= 0 || in.BackupHours <= 0 || in.SystemVoltage <= 0 {
		return Result{}, fmt.Errorf("invalid input")
	}
	if in.DepthOfDischarge <= 0 || in.DepthOfDischarge > 1 {
		in.DepthOfDischarge = 0.8
	}
	if in.InverterEfficiency <= 0 || in.InverterEfficiency > 1 {
		in.InverterEfficiency = 0.9
	}
	if in.AgingFactor <= 0 {
		in.AgingFactor = 1.25
	}
	if in.BatteryVoltage <= 0 {
		in.BatteryVoltage = 12
	}
	if in.BatteryAh <= 0 {
		in.BatteryAh = 100
	}

	energyWh := in.LoadW * in.BackupHours / in.InverterEfficiency
	requiredAh := energyWh / in.SystemVoltage / in.DepthOfDischarge * in.AgingFactor

	series := int(math.Round(in.SystemVoltage / in.BatteryVoltage))
	if series < 1 {
		series = 1
	}
	strings := int(math.Ceil(requiredAh / in.BatteryAh))
	if strings < 1 {
		strings = 1
	}

	bankWh := float64(strings) * in.BatteryAh * in.SystemVoltage * in.DepthOfDischarge

	return Result{
		RequiredAh:      requiredAh,
		SeriesCount:     series,
		ParallelStrings: strings,
		TotalBatteries:  series * strings,
		BankEnergyWh:    bankWh,
		Notes:           "Battery bank sized for steady load with aging margin.",
	}, nil
}
