package conductor

import (
	"fmt"
	"strconv"
)

// Standard selects which catalog, default voltages and derating tables
// apply to a calculation. A request never mixes standards.
type Standard string

const (
	// MetricStandard follows the IEC/BS 7671 tables: mm² sizes, lengths
	// in metres, resistance consumed as mV/A/m.
	MetricStandard Standard = "metric"
	// ImperialStandard follows the NEC tables: AWG/kcmil sizes, lengths
	// in feet, resistance consumed as ohms per 1000 ft.
	ImperialStandard Standard = "imperial"
)

type Material string

const (
	Copper   Material = "copper"
	Aluminum Material = "aluminum"
)

// InsulationClass is the insulation temperature rating in °C.
// Metric catalogs carry 70 and 90; imperial catalogs carry 60, 75 and 90.
type InsulationClass int

const (
	Class60 InsulationClass = 60
	Class70 InsulationClass = 70
	Class75 InsulationClass = 75
	Class90 InsulationClass = 90
)

// CatalogEntry is one discrete conductor size of a (standard, material)
// catalog. Resistance is stored one way (per conductor); the phase
// multiplier is applied by the voltage drop calculation. Both unit forms
// are populated so either standard reads its native one without
// conversion.
type CatalogEntry struct {
	SizeMM2       float64 `json:"size_mm2,omitempty"`
	MetricLabel   string  `json:"metric_label,omitempty"`
	ImperialLabel string  `json:"imperial_label,omitempty"`

	Ampacity map[InsulationClass]float64 `json:"ampacity"`

	// MilliVoltPerAmpMeter is numerically mΩ/m (= Ω/km) per conductor.
	MilliVoltPerAmpMeter float64 `json:"mv_per_am"`
	// OhmsPerKilofoot is Ω per 1000 ft per conductor.
	OhmsPerKilofoot float64 `json:"ohms_per_kft"`
}

// Label returns the size label native to the given standard.
func (e CatalogEntry) Label(std Standard) string {
	if std == ImperialStandard {
		return e.ImperialLabel
	}
	return e.MetricLabel
}

// BaseAmpacity returns the tabulated ampacity at the given insulation
// class, or false when the catalog does not carry that class.
func (e CatalogEntry) BaseAmpacity(class InsulationClass) (float64, bool) {
	a, ok := e.Ampacity[class]
	return a, ok
}

// resistance returns the per-unit-length value native to the standard.
func (e CatalogEntry) resistance(std Standard) float64 {
	if std == ImperialStandard {
		return e.OhmsPerKilofoot
	}
	return e.MilliVoltPerAmpMeter
}

const footPerMeterRatio = 0.3048

func metricEntry(mm2, amp70, amp90, milliOhmPerM float64) CatalogEntry {
	return CatalogEntry{
		SizeMM2:              mm2,
		MetricLabel:          strconv.FormatFloat(mm2, 'f', -1, 64) + " mm²",
		Ampacity:             map[InsulationClass]float64{Class70: amp70, Class90: amp90},
		MilliVoltPerAmpMeter: milliOhmPerM,
		OhmsPerKilofoot:      milliOhmPerM * footPerMeterRatio,
	}
}

func imperialEntry(label string, amp60, amp75, amp90, ohmsPerKft float64) CatalogEntry {
	return CatalogEntry{
		ImperialLabel:        label,
		Ampacity:             map[InsulationClass]float64{Class60: amp60, Class75: amp75, Class90: amp90},
		MilliVoltPerAmpMeter: ohmsPerKft / footPerMeterRatio,
		OhmsPerKilofoot:      ohmsPerKft,
	}
}

// Catalogs follow BS 7671 Tables 4D2A/4E2A (metric, installation method C)
// and NEC Table 310.16 with Chapter 9 Table 8 resistances (imperial).
// Entries are ascending by physical size; ampacity is monotone
// non-decreasing within a catalog.
var metricCopper = []CatalogEntry{
	metricEntry(1.5, 19.5, 23, 12.1),
	metricEntry(2.5, 27, 31, 7.41),
	metricEntry(4, 36, 42, 4.61),
	metricEntry(6, 46, 54, 3.08),
	metricEntry(10, 63, 75, 1.83),
	metricEntry(16, 85, 100, 1.15),
	metricEntry(25, 112, 127, 0.727),
	metricEntry(35, 138, 158, 0.524),
	metricEntry(50, 168, 192, 0.387),
	metricEntry(70, 213, 246, 0.268),
	metricEntry(95, 258, 298, 0.193),
	metricEntry(120, 299, 346, 0.153),
	metricEntry(150, 344, 399, 0.124),
	metricEntry(185, 392, 456, 0.0991),
	metricEntry(240, 461, 538, 0.0754),
	metricEntry(300, 530, 621, 0.0601),
	metricEntry(400, 634, 741, 0.047),
	metricEntry(500, 723, 845, 0.0366),
	metricEntry(630, 826, 966, 0.0283),
}

var metricAluminum = []CatalogEntry{
	metricEntry(16, 66, 79, 1.91),
	metricEntry(25, 83, 99, 1.2),
	metricEntry(35, 103, 122, 0.868),
	metricEntry(50, 125, 149, 0.641),
	metricEntry(70, 160, 190, 0.443),
	metricEntry(95, 195, 232, 0.32),
	metricEntry(120, 226, 269, 0.253),
	metricEntry(150, 261, 310, 0.206),
	metricEntry(185, 298, 354, 0.164),
	metricEntry(240, 352, 419, 0.125),
	metricEntry(300, 406, 483, 0.1),
	metricEntry(400, 483, 574, 0.0778),
	metricEntry(500, 551, 656, 0.0605),
	metricEntry(630, 636, 756, 0.0469),
}

var imperialCopper = []CatalogEntry{
	imperialEntry("14 AWG", 15, 20, 25, 3.07),
	imperialEntry("12 AWG", 20, 25, 30, 1.93),
	imperialEntry("10 AWG", 30, 35, 40, 1.21),
	imperialEntry("8 AWG", 40, 50, 55, 0.764),
	imperialEntry("6 AWG", 55, 65, 75, 0.491),
	imperialEntry("4 AWG", 70, 85, 95, 0.308),
	imperialEntry("3 AWG", 85, 100, 110, 0.245),
	imperialEntry("2 AWG", 95, 115, 130, 0.194),
	imperialEntry("1 AWG", 110, 130, 145, 0.154),
	imperialEntry("1/0 AWG", 125, 150, 170, 0.122),
	imperialEntry("2/0 AWG", 145, 175, 195, 0.0967),
	imperialEntry("3/0 AWG", 165, 200, 225, 0.0766),
	imperialEntry("4/0 AWG", 195, 230, 260, 0.0608),
	imperialEntry("250 kcmil", 215, 255, 290, 0.0515),
	imperialEntry("300 kcmil", 240, 285, 320, 0.0429),
	imperialEntry("350 kcmil", 260, 310, 350, 0.0367),
	imperialEntry("400 kcmil", 280, 335, 380, 0.0321),
	imperialEntry("500 kcmil", 320, 380, 430, 0.0258),
}

var imperialAluminum = []CatalogEntry{
	imperialEntry("12 AWG", 15, 20, 25, 3.18),
	imperialEntry("10 AWG", 25, 30, 35, 2.0),
	imperialEntry("8 AWG", 30, 40, 45, 1.26),
	imperialEntry("6 AWG", 40, 50, 55, 0.808),
	imperialEntry("4 AWG", 55, 65, 75, 0.508),
	imperialEntry("3 AWG", 65, 75, 85, 0.403),
	imperialEntry("2 AWG", 75, 90, 100, 0.319),
	imperialEntry("1 AWG", 85, 100, 115, 0.253),
	imperialEntry("1/0 AWG", 100, 120, 135, 0.201),
	imperialEntry("2/0 AWG", 115, 135, 150, 0.159),
	imperialEntry("3/0 AWG", 130, 155, 175, 0.126),
	imperialEntry("4/0 AWG", 150, 180, 205, 0.1),
	imperialEntry("250 kcmil", 170, 205, 230, 0.0847),
	imperialEntry("300 kcmil", 195, 230, 260, 0.0707),
	imperialEntry("350 kcmil", 210, 250, 280, 0.0605),
	imperialEntry("400 kcmil", 225, 270, 305, 0.0529),
	imperialEntry("500 kcmil", 260, 310, 350, 0.0424),
}

type catalogKey struct {
	Standard Standard
	Material Material
}

var catalogs = map[catalogKey][]CatalogEntry{
	{MetricStandard, Copper}:     metricCopper,
	{MetricStandard, Aluminum}:   metricAluminum,
	{ImperialStandard, Copper}:   imperialCopper,
	{ImperialStandard, Aluminum}: imperialAluminum,
}

// AllSizes returns the catalog for one (standard, material) pair,
// ascending by size. The slice is shared reference data; callers must
// not modify it.
func AllSizes(std Standard, mat Material) []CatalogEntry {
	return catalogs[catalogKey{std, mat}]
}

// Lookup finds the entry whose native label matches the selector.
func Lookup(std Standard, mat Material, sizeLabel string) (CatalogEntry, error) {
	for _, e := range AllSizes(std, mat) {
		if e.Label(std) == sizeLabel {
			return e, nil
		}
	}
	return CatalogEntry{}, fmt.Errorf("%w: %q (%s, %s)", ErrSizeNotFound, sizeLabel, std, mat)
}

// nextSizeAtLeast returns the smallest metric entry with a cross section
// of at least mm2. Used when rounding a computed protective-conductor
// section up to a real size.
func nextSizeAtLeast(mat Material, mm2 float64) (CatalogEntry, bool) {
	for _, e := range AllSizes(MetricStandard, mat) {
		if e.SizeMM2 >= mm2 {
			return e, true
		}
	}
	return CatalogEntry{}, false
}
