// Package production holds the period-resolved electricity production
// model: monthly nuclear and hydro baselines plus solar output derived
// from installed capacity and per-period capacity factors.
package production

import (
	"github.com/mlevant/wattfrance/internal/temporal"
)

// Dataset is the production side of the period balance. Capacity factors
// are indexed like a temporal.Profile (month-major). Wind is deliberately
// absent from the model.
type Dataset struct {
	NuclearGW [temporal.MonthCount]float64
	HydroGW   [temporal.MonthCount]float64
	SolarGWc  float64
	// SolarCF is the fraction of installed capacity producing during
	// each period. Nighttime periods are zero.
	SolarCF [temporal.PeriodCount]float64
}

// BaseKW is the dispatchable nuclear + hydro power for a month, in kW.
func (d Dataset) BaseKW(m temporal.Month) float64 {
	return (d.NuclearGW[m] + d.HydroGW[m]) * 1e6
}

// SolarKW is the solar power produced in a period, in kW.
func (d Dataset) SolarKW(p temporal.Period) float64 {
	return d.SolarCF[p.Index()] * d.SolarGWc * 1e6
}

// TotalKW is the full production for a period, in kW.
func (d Dataset) TotalKW(p temporal.Period) float64 {
	return d.BaseKW(p.Month) + d.SolarKW(p)
}

// ScaleSolar re-derives the dataset at a different installed solar
// capacity. Capacity factors are intrinsic to the resource and carry
// over unchanged.
func (d Dataset) ScaleSolar(newGWc float64) Dataset {
	out := d
	out.SolarGWc = newGWc
	return out
}

// AnnualTWh sums production over the model year.
func (d Dataset) AnnualTWh() float64 {
	var kwh float64
	for _, p := range temporal.Periods() {
		kwh += d.TotalKW(p) * p.Hours()
	}
	return kwh / 1e9
}

// monthlyNuclearGW follows the observed seasonal modulation of the
// French fleet: full availability in winter, maintenance outages
// concentrated in summer.
var monthlyNuclearGW = [temporal.MonthCount]float64{
	50, 49, 46, 42, 37, 32, 30, 30, 35, 41, 46, 50,
}

// solarPeakCF is the midday capacity factor per month.
var solarPeakCF = [temporal.MonthCount]float64{
	0.09, 0.12, 0.17, 0.22, 0.26, 0.29, 0.30, 0.27, 0.22, 0.15, 0.10, 0.08,
}

// slotShape scales the midday capacity factor by sun elevation during
// the slot. Combined with the month's expected solar fraction it yields
// the per-period factor.
var slotShape = [temporal.SlotCount]float64{0.90, 1.00, 0.35, 0.15, 0}

// Baseline2023 is the canonical production dataset: the 2023-equivalent
// nuclear seasonal profile, run-of-river hydro at its 7.5 GW average,
// and the target scenario's 500 GWc of installed solar.
func Baseline2023() Dataset {
	d := Dataset{
		NuclearGW: monthlyNuclearGW,
		SolarGWc:  500,
	}
	for m := range d.HydroGW {
		d.HydroGW[m] = 7.5
	}
	for _, p := range temporal.Periods() {
		cf := solarPeakCF[p.Month] * slotShape[p.Slot] * temporal.ExpectedSolarFraction(p.Month, p.Slot)
		d.SolarCF[p.Index()] = cf
	}
	return d
}
