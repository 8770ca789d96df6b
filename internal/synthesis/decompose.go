package synthesis

import (
	"github.com/mlevant/wattfrance/internal/electrify"
	"github.com/mlevant/wattfrance/internal/refdata"
	"github.com/mlevant/wattfrance/internal/temporal"
)

// Demand component names.
const (
	ComponentHeating      = "chauffage"
	ComponentCharging     = "recharge_ve"
	ComponentAgriculture  = "agriculture"
	ComponentElectrolysis = "electrolyse"
	ComponentBaseload     = "base"
)

// SplitConfig controls how sector electricity is assigned to temporal
// profiles. The heating shares are the post-conversion weight of space
// heating inside each sector's electricity total.
type SplitConfig struct {
	ResHeatingShare float64
	TerHeatingShare float64
}

// DefaultSplitConfig matches the default conversion outputs: heat pumps
// are about 45% of residential electricity and 25% of tertiary.
func DefaultSplitConfig() SplitConfig {
	return SplitConfig{ResHeatingShare: 0.45, TerHeatingShare: 0.25}
}

// Decompose turns a system balance into profiled demand components:
// building heat on the physical heating profile, road transport on the
// charging curve, agriculture on its seasonal curve, electrolysis and
// everything else as flat baseload.
func Decompose(sb electrify.SystemBalance, heat temporal.HeatingConfig, split SplitConfig) []DemandComponent {
	sector := func(name string) float64 {
		return sb.Sectors[name].ElecTWh
	}

	resElec := sector(refdata.SectorResidential)
	terElec := sector(refdata.SectorTertiary)
	heatingTWh := resElec*split.ResHeatingShare + terElec*split.TerHeatingShare

	chargingTWh := sector(refdata.SectorTransport)
	agricultureTWh := sector(refdata.SectorAgriculture)

	baseloadTWh := sb.DirectElectricityTWh - heatingTWh - chargingTWh - agricultureTWh
	if baseloadTWh < 0 {
		baseloadTWh = 0
	}

	return []DemandComponent{
		{Name: ComponentHeating, AnnualTWh: heatingTWh, Profile: temporal.HeatingProfile(heat)},
		{Name: ComponentCharging, AnnualTWh: chargingTWh, Profile: temporal.ChargingProfile()},
		{Name: ComponentAgriculture, AnnualTWh: agricultureTWh, Profile: temporal.AgricultureProfile()},
		{Name: ComponentElectrolysis, AnnualTWh: sb.H2ProductionElecTWh, Profile: temporal.Flat()},
		{Name: ComponentBaseload, AnnualTWh: baseloadTWh, Profile: temporal.Flat()},
	}
}
