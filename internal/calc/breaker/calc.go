package breaker

import "fmt"

type Input struct {
	LoadCurrentA float64 `json:"load_current_a"`
	Continuous   bool    `json:"continuous"`
	LoadType     string  `json:"load_type"` // resistive, mixed, motor
	Phase        string  `json:"phase"`
}

type Result struct {
	DesignCurrentA     float64 `json:"design_current_a"`
	BreakerRatingA     float64 `json:"breaker_rating_a"`
	TripCurve          string  `json:"trip_curve"`
	UtilizationPercent float64 `json:"utilization_percent"`
	Notes              string  `json:"notes"`
}

// Preferred breaker ratings (IEC 60898 ladder).
var ratings = []float64{
	6, 10, 13, 16, 20, 25, 32, 40, 50, 63, 80, 100, 125, 160,
	200, 250, 320, 400, 500, 630, 800, 1000, 1250, 1600, 2000,
}

func Calculate(in Input) (Result, error) {
	if in.LoadCurrentA <= 0 {
		return Result{}, fmt.Errorf("invalid input")
	}

	design := in.LoadCurrentA
	if in.Continuous {
		// Continuous loads count at 125%.
		design *= 1.25
	}

	rating := 0.0
	for _, r := range ratings {
		if r >= design {
			rating = r
			break
		}
	}
	if rating == 0 {
		return Result{}, fmt.Errorf("load exceeds largest standard rating")
	}

	curve := "C"
	switch in.LoadType {
	case "resistive":
		curve = "B"
	case "motor":
		curve = "D"
	}

	return Result{
		DesignCurrentA:     design,
		BreakerRatingA:     rating,
		TripCurve:          curve,
		UtilizationPercent: in.LoadCurrentA / rating * 100,
		Notes:              "Next standard rating above the design current.",
	}, nil
}
