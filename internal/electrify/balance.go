package electrify

import (
	"fmt"

	"github.com/mlevant/wattfrance/internal/refdata"
)

// SectorBalance is the target balance of one sector across the four vectors.
type SectorBalance struct {
	Name              string
	CurrentTWh        float64
	ElecTWh           float64
	H2TWh             float64
	BioEnrTWh         float64
	FossilResidualTWh float64
}

// TargetTotalTWh is the sector's consumption after conversion.
func (b SectorBalance) TargetTotalTWh() float64 {
	return b.ElecTWh + b.H2TWh + b.BioEnrTWh + b.FossilResidualTWh
}

// ReductionPct is the fractional drop from current to target consumption.
// A sector with no current consumption reports 0.
func (b SectorBalance) ReductionPct() float64 {
	if b.CurrentTWh == 0 {
		return 0
	}
	return (b.CurrentTWh - b.TargetTotalTWh()) / b.CurrentTWh
}

// SystemBalance aggregates the six sector balances into national totals.
// It is built only through SystemFromSectors so that the hydrogen-to-
// electricity derivation has a single auditable path.
type SystemBalance struct {
	Sectors map[string]SectorBalance

	CurrentTotalTWh      float64
	DirectElectricityTWh float64
	H2DemandTWh          float64
	H2ProductionElecTWh  float64 // electricity to electrolyse the H2 demand
	TotalElectricityTWh  float64 // direct + hydrogen production
	BioEnrTWh            float64
	FossilResidualTWh    float64
}

// SystemFromSectors combines sector balances and converts the hydrogen
// demand back into an electricity-generation obligation via the
// electrolysis efficiency. A non-positive efficiency is a configuration
// error.
func SystemFromSectors(sectors map[string]SectorBalance, electrolyseEfficiency float64) (SystemBalance, error) {
	if electrolyseEfficiency <= 0 {
		return SystemBalance{}, fmt.Errorf("electrolyse efficiency must be > 0, got %g", electrolyseEfficiency)
	}

	sb := SystemBalance{Sectors: make(map[string]SectorBalance, len(sectors))}
	for name, b := range sectors {
		sb.Sectors[name] = b
		sb.CurrentTotalTWh += b.CurrentTWh
		sb.DirectElectricityTWh += b.ElecTWh
		sb.H2DemandTWh += b.H2TWh
		sb.BioEnrTWh += b.BioEnrTWh
		sb.FossilResidualTWh += b.FossilResidualTWh
	}
	sb.H2ProductionElecTWh = sb.H2DemandTWh / electrolyseEfficiency
	sb.TotalElectricityTWh = sb.DirectElectricityTWh + sb.H2ProductionElecTWh
	return sb, nil
}

// ComputeSystemBalance runs the six sector conversions on a reference
// dataset and aggregates them. This is the one-call entry point for a
// scenario run.
func ComputeSystemBalance(ref refdata.ReferenceData, p Params) (SystemBalance, error) {
	sectors := map[string]SectorBalance{
		refdata.SectorResidential: Residential(ref.Residential, p),
		refdata.SectorTertiary:    Tertiary(ref.Tertiary, p),
		refdata.SectorIndustry:    Industry(ref.Industry, p),
		refdata.SectorTransport:   Transport(ref.Transport, p),
		refdata.SectorAgriculture: Agriculture(ref.Agriculture, p),
		refdata.SectorNonEnergy:   NonEnergy(ref.NonEnergy, p),
	}
	return SystemFromSectors(sectors, p.ElectrolyseEfficiency)
}
