package production

import "github.com/mlevant/wattfrance/internal/temporal"

// Plausibility ceilings for French production data, in GW. Base covers
// the full nuclear fleet plus hydro with margin; solar is the theoretical
// peak at 500 GWc installed.
const (
	DefaultMaxBaseGW  = 65
	DefaultMaxSolarGW = 150
	DefaultMarginGW   = 20
)

// Anomaly flags a period whose production exceeds what the sunset model
// says is physically possible.
type Anomaly struct {
	Period        temporal.Period
	ProductionGW  float64
	ExpectedMaxGW float64
	SolarFraction float64
}

// AnomalyLimits bounds the plausibility check.
type AnomalyLimits struct {
	MaxBaseGW  float64
	MaxSolarGW float64
	MarginGW   float64
}

// DefaultAnomalyLimits returns the standard ceilings.
func DefaultAnomalyLimits() AnomalyLimits {
	return AnomalyLimits{
		MaxBaseGW:  DefaultMaxBaseGW,
		MaxSolarGW: DefaultMaxSolarGW,
		MarginGW:   DefaultMarginGW,
	}
}

// DetectAnomalies scans a dataset for periods producing more than the
// base ceiling plus the sunlit share of the solar ceiling. Downloaded
// data that trips this check is mislabeled or corrupt.
func DetectAnomalies(d Dataset, limits AnomalyLimits) []Anomaly {
	var out []Anomaly
	for _, p := range temporal.Periods() {
		frac := temporal.ExpectedSolarFraction(p.Month, p.Slot)
		maxGW := limits.MaxBaseGW + frac*limits.MaxSolarGW
		gotGW := d.TotalKW(p) / 1e6
		if gotGW > maxGW+limits.MarginGW {
			out = append(out, Anomaly{
				Period:        p,
				ProductionGW:  gotGW,
				ExpectedMaxGW: maxGW,
				SolarFraction: frac,
			})
		}
	}
	return out
}
