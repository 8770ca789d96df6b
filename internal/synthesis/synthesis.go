// Package synthesis reconciles period-resolved production against
// period-resolved demand and computes the annual backup-fuel
// requirement.
package synthesis

import (
	"fmt"

	"github.com/mlevant/wattfrance/internal/production"
	"github.com/mlevant/wattfrance/internal/temporal"
)

// DemandComponent is one annual electricity demand distributed over the
// year by a temporal profile.
type DemandComponent struct {
	Name      string
	AnnualTWh float64
	Profile   temporal.Profile
}

// PowerKW is the component's average power during a period, derived from
// the profile weight and the period duration.
func (d DemandComponent) PowerKW(p temporal.Period) float64 {
	hours := p.Hours()
	if hours == 0 {
		return 0
	}
	return d.AnnualTWh * d.Profile[p.Index()] * 1e9 / hours
}

// Record is the balance of one of the 60 periods.
type Record struct {
	Period        temporal.Period
	BaseKW        float64
	SolarKW       float64
	ProductionKW  float64
	ConsumptionKW float64
	// ComponentsKW maps demand component name to its average power.
	ComponentsKW map[string]float64
	DeficitKW    float64
	SurplusKW    float64
	// BackupTWh is the deficit energy over the period.
	BackupTWh float64
}

// Result is the full annual synthesis.
type Result struct {
	Records []Record
	// BackupTWh is the delivered-electricity deficit summed over the year.
	BackupTWh float64
	// FuelTWh is the primary fuel burned to deliver the backup energy.
	FuelTWh float64
	// PeakDeficitGW is the largest period deficit.
	PeakDeficitGW float64
}

// Compute folds production against demand over the 60 periods. Surplus
// periods contribute nothing to backup and are never carried forward;
// inter-period storage is out of scope here. The plant efficiency
// converts delivered backup electricity into fuel and must be positive.
func Compute(prod production.Dataset, demands []DemandComponent, plantEfficiency float64) (Result, error) {
	if plantEfficiency <= 0 {
		return Result{}, fmt.Errorf("plant efficiency must be > 0, got %g", plantEfficiency)
	}

	res := Result{Records: make([]Record, 0, temporal.PeriodCount)}
	for _, p := range temporal.Periods() {
		rec := Record{
			Period:       p,
			BaseKW:       prod.BaseKW(p.Month),
			SolarKW:      prod.SolarKW(p),
			ComponentsKW: make(map[string]float64, len(demands)),
		}
		rec.ProductionKW = rec.BaseKW + rec.SolarKW

		for _, d := range demands {
			kw := d.PowerKW(p)
			rec.ComponentsKW[d.Name] = kw
			rec.ConsumptionKW += kw
		}

		if diff := rec.ConsumptionKW - rec.ProductionKW; diff > 0 {
			rec.DeficitKW = diff
		} else {
			rec.SurplusKW = -diff
		}
		rec.BackupTWh = rec.DeficitKW * p.Hours() / 1e9

		res.BackupTWh += rec.BackupTWh
		if gw := rec.DeficitKW / 1e6; gw > res.PeakDeficitGW {
			res.PeakDeficitGW = gw
		}
		res.Records = append(res.Records, rec)
	}

	res.FuelTWh = res.BackupTWh / plantEfficiency
	return res, nil
}
