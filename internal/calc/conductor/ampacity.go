package conductor

import "fmt"

// DeratedAmpacity applies the combined derating factor to the entry's
// base ampacity at the given insulation class.
func DeratedAmpacity(entry CatalogEntry, class InsulationClass, derating DeratingResult) (float64, error) {
	base, ok := entry.BaseAmpacity(class)
	if !ok {
		return 0, fmt.Errorf("%w: insulation class %d °C not tabulated for %s", ErrInvalidInput, class, entry.MetricLabel+entry.ImperialLabel)
	}
	return base * derating.TotalFactor, nil
}

// IsOverloaded reports whether the load exceeds the derated ampacity.
func IsOverloaded(current, deratedAmpacity float64) bool {
	return current > deratedAmpacity
}
