package electrify

import (
	"github.com/mlevant/wattfrance/internal/refdata"
)

// Residential converts the residential sector. Fossil heating moves to heat
// pumps after renovation, water heating to thermodynamic heaters, cooking
// to induction, lighting is relamped; wood and district heat carry through
// the renovated need.
func Residential(s refdata.SectorReference, p Params) SectorBalance {
	rules := map[string]Rule{
		"chauffage": ThermalSubstitution{
			COP:            mustPositive("ResChauffageCOP", p.ResChauffageCOP),
			RenovationGain: p.ResRenovationGain,
		},
		"ecs": ThermalSubstitution{
			COP: mustPositive("ResECSCOP", p.ResECSCOP),
		},
		"cuisson": FixedAllocation{
			ElecFraction: 1.0,
			ElecFactor:   p.ResCuissonFactor,
		},
		"electricite_specifique": CarryOver{},
		"eclairage":              EfficiencyScaling{Gain: p.ResEclairageLEDGain},
	}
	return convertSector(s, rules)
}

// Tertiary converts offices, shops and public buildings. Renovation and
// building controls shrink the whole heating need, electric included; misc
// fossil uses are partially electrified and the rest stays fossil.
func Tertiary(s refdata.SectorReference, p Params) SectorBalance {
	rules := map[string]Rule{
		"chauffage": ThermalSubstitution{
			COP:            mustPositive("TerChauffageCOP", p.TerChauffageCOP),
			RenovationGain: p.TerRenovationGain,
			ElecGain:       p.TerRenovationGain,
		},
		"ecs": ThermalSubstitution{
			COP: mustPositive("TerECSCOP", p.TerECSCOP),
		},
		"climatisation":          EfficiencyScaling{Gain: p.TerClimGain},
		"eclairage":              EfficiencyScaling{Gain: p.TerEclairageLEDGain},
		"electricite_specifique": EfficiencyScaling{Gain: p.TerEspecGain},
		"autres": FixedAllocation{
			ElecFraction:   p.TerAutresElecFraction,
			ElecFactor:     p.TerAutresElecFactor,
			FossilFraction: 1 - p.TerAutresElecFraction,
		},
	}
	return convertSector(s, rules)
}

// Industry converts industrial heat by temperature level: high-temperature
// heat splits across electric arc, hydrogen, biomass and retained fossil;
// medium and low-temperature heat move to industrial heat pumps. Existing
// electric uses shrink by the process-optimization gain.
func Industry(s refdata.SectorReference, p Params) SectorBalance {
	rules := map[string]Rule{
		"chaleur_haute_temp": FixedAllocation{
			ElecFraction:   p.IndHtElecFraction,
			ElecFactor:     p.IndHtElecFactor,
			H2Fraction:     p.IndHtH2Fraction,
			H2Factor:       p.IndHtH2Factor,
			BioFraction:    p.IndHtBioFraction,
			FossilFraction: p.IndHtFossilFraction,
			ElecGain:       p.IndProcessGain,
		},
		"chaleur_moyenne_temp": FixedAllocation{
			ElecFraction: p.IndMtElectrifiable,
			ElecFactor:   1 / mustPositive("IndMtCOP", p.IndMtCOP),
			BioFraction:  1 - p.IndMtElectrifiable,
			ElecGain:     p.IndProcessGain,
		},
		"chaleur_basse_temp": FixedAllocation{
			ElecFraction: 1.0,
			ElecFactor:   1 / mustPositive("IndBtCOP", p.IndBtCOP),
			ElecGain:     p.IndProcessGain,
		},
		"force_motrice": EfficiencyScaling{Gain: p.IndProcessGain},
		"electrochimie": EfficiencyScaling{Gain: p.IndProcessGain},
		"autres": FixedAllocation{
			ElecFraction: p.IndAutresElecFraction,
			ElecFactor:   p.IndAutresElecFactor,
			BioFraction:  1 - p.IndAutresElecFraction,
			ElecGain:     p.IndProcessGain,
		},
	}
	return convertSector(s, rules)
}

// Transport converts the ten modes. Cars shrink by sobriety and modal shift
// before EV conversion; heavy trucks split across batteries, fuel cells and
// liquid fuel; short-haul domestic aviation shifts to rail and the rest of
// the kerosene splits between bio-SAF and fossil.
func Transport(s refdata.SectorReference, p Params) SectorBalance {
	carReduction := 1 - (1-p.TptSobrieteGain)*(1-p.TptReportModal)
	rules := map[string]Rule{
		"voitures": FixedAllocation{
			Reduction:    carReduction,
			ElecFraction: 1.0,
			ElecFactor:   p.TptVpEvFactor,
		},
		"deux_roues": FixedAllocation{
			ElecFraction: 1.0,
			ElecFactor:   p.Tpt2rEvFactor,
		},
		"bus_cars": FixedAllocation{
			ElecFraction: 1.0,
			ElecFactor:   p.TptBusEvFactor,
		},
		"poids_lourds": FixedAllocation{
			ElecFraction:   p.TptPlBatterieFraction,
			ElecFactor:     p.TptPlBatterieFactor,
			H2Fraction:     p.TptPlH2Fraction,
			H2Factor:       p.TptPlH2Factor,
			FossilFraction: p.TptPlFossilFraction,
		},
		"vul": FixedAllocation{
			ElecFraction:   p.TptVulElectrifiable,
			ElecFactor:     p.TptVulEvFactor,
			FossilFraction: 1 - p.TptVulElectrifiable,
		},
		"rail": FixedAllocation{
			ElecFraction:   p.TptRailElectrifiable,
			ElecFactor:     p.TptRailElecFactor,
			FossilFraction: 1 - p.TptRailElectrifiable,
		},
		"aviation_domestique": FixedAllocation{
			Reduction:      p.TptAvionReportTGV,
			BioFraction:    p.TptAvionSafBioFraction,
			FossilFraction: 1 - p.TptAvionSafBioFraction,
		},
		"aviation_internationale": FixedAllocation{
			BioFraction:    p.TptAvionSafBioFraction,
			FossilFraction: 1 - p.TptAvionSafBioFraction,
		},
		"maritime": FixedAllocation{
			ElecFraction:   p.TptMaritimeElecFraction,
			ElecFactor:     p.TptMaritimeElecFactor,
			H2Fraction:     p.TptMaritimeH2Fraction,
			H2Factor:       p.TptMaritimeH2Factor,
			FossilFraction: 1 - p.TptMaritimeElecFraction - p.TptMaritimeH2Fraction,
		},
		"fluvial": FixedAllocation{
			ElecFraction:   p.TptFluvialElecFraction,
			ElecFactor:     p.TptFluvialElecFactor,
			FossilFraction: 1 - p.TptFluvialElecFraction,
		},
	}
	return convertSector(s, rules)
}

// Agriculture converts farm energy. Machinery splits across batteries,
// hydrogen and biofuel; greenhouse gas heating moves to heat pumps;
// irrigation and livestock buildings stay electric with modest gains.
func Agriculture(s refdata.SectorReference, p Params) SectorBalance {
	machFossil := 1 - p.AgrMachinismeEvFraction - p.AgrMachinismeH2Fraction - p.AgrMachinismeBioFraction
	if machFossil < 0 {
		machFossil = 0
	}
	rules := map[string]Rule{
		"machinisme": FixedAllocation{
			ElecFraction:   p.AgrMachinismeEvFraction,
			ElecFactor:     p.AgrMachinismeEvFactor,
			H2Fraction:     p.AgrMachinismeH2Fraction,
			H2Factor:       p.AgrMachinismeH2Factor,
			BioFraction:    p.AgrMachinismeBioFraction,
			FossilFraction: machFossil,
		},
		"serres": FixedAllocation{
			ElecFraction: p.AgrSerresPacFraction,
			ElecFactor:   1 / mustPositive("AgrSerresPacCOP", p.AgrSerresPacCOP),
			BioFraction:  1 - p.AgrSerresPacFraction, // biogas boilers
		},
		"irrigation": EfficiencyScaling{Gain: p.AgrIrrigationGain},
		"elevage":    EfficiencyScaling{Gain: p.AgrElevageGain},
		"autres": FixedAllocation{
			ElecFraction: p.AgrAutresElecFraction,
			ElecFactor:   p.AgrAutresElecFactor,
			BioFraction:  1 - p.AgrAutresElecFraction,
		},
	}
	return convertSector(s, rules)
}

// NonEnergy converts feedstocks. Recycling shrinks the naphtha need before
// a bio/fossil split; ammonia moves to green hydrogen with some synthesis
// electricity; bitumen is partially bio-sourced.
func NonEnergy(s refdata.SectorReference, p Params) SectorBalance {
	rules := map[string]Rule{
		"petrochimie": FixedAllocation{
			Reduction:      p.NePetrochimieRecyclingGain,
			BioFraction:    p.NePetrochimieBioFraction,
			FossilFraction: 1 - p.NePetrochimieBioFraction,
		},
		"engrais": FixedAllocation{
			H2Fraction:   1.0,
			H2Factor:     p.NeEngraisH2Factor,
			ElecFraction: p.NeEngraisElecFraction,
			ElecFactor:   1.0,
		},
		"autres_chimie": FixedAllocation{
			ElecFraction:   p.NeChimieElecFraction,
			ElecFactor:     1.0,
			H2Fraction:     p.NeChimieH2Fraction,
			H2Factor:       1.0,
			BioFraction:    p.NeChimieBioFraction,
			FossilFraction: p.NeChimieFossilFraction,
		},
		"bitumes": FixedAllocation{
			BioFraction:    p.NeBitumesBioFraction,
			FossilFraction: 1 - p.NeBitumesBioFraction,
		},
	}
	return convertSector(s, rules)
}
