// Package electrify converts the baseline sector consumption into the
// target decarbonized balance across four vectors: electricity, hydrogen,
// biomass/renewables and residual fossil.
//
// Every conversion is a pure function of a refdata.SectorReference and a
// Params value; results are recomputed on every call with no hidden state.
package electrify

// Params is the flat bag of technical coefficients driving the conversion.
// Fields are grouped by sector but carry no cross-field invariants: each is
// independently adjustable for sensitivity analysis. Construction never
// fails; start from DefaultParams and override what the scenario changes.
//
// Fractions are dimensionless in [0,1]; COPs are kWh of useful heat per kWh
// of electricity; factors are kWh of target vector per kWh of displaced
// fossil energy.
type Params struct {
	// Residential.
	ResRenovationGain   float64 // insulation gain on non-electric heating need
	ResChauffageCOP     float64 // heat pumps replacing fossil heating
	ResECSCOP           float64 // thermodynamic water heaters
	ResCuissonFactor    float64 // induction kWh per fossil cooking kWh
	ResEclairageLEDGain float64 // LED relamping saving

	// Tertiary.
	TerRenovationGain     float64 // renovation + controls, applies to all heating vectors
	TerChauffageCOP       float64
	TerECSCOP             float64
	TerClimGain           float64 // cooling efficiency improvement
	TerEclairageLEDGain   float64
	TerEspecGain          float64 // IT and appliance efficiency
	TerAutresElecFraction float64 // share of misc fossil uses electrified
	TerAutresElecFactor   float64

	// Industry.
	IndHtElecFraction     float64 // high-temp heat to electric arc / plasma
	IndHtElecFactor       float64
	IndHtH2Fraction       float64 // high-temp heat to hydrogen burners / DRI
	IndHtH2Factor         float64
	IndHtBioFraction      float64
	IndHtFossilFraction   float64 // hard-to-abate remainder
	IndMtElectrifiable    float64 // medium-temp heat via industrial heat pumps
	IndMtCOP              float64
	IndBtCOP              float64 // low-temp heat, fully electrified
	IndAutresElecFraction float64
	IndAutresElecFactor   float64
	IndProcessGain        float64 // process optimization on existing electric uses

	// Transport.
	TptSobrieteGain        float64 // telecommuting, speed limits, downsizing
	TptReportModal         float64 // car-km shifted to rail/bus/bike
	TptVpEvFactor          float64 // EV kWh per ICE kWh, private cars
	Tpt2rEvFactor          float64
	TptBusEvFactor         float64
	TptPlBatterieFraction  float64 // heavy trucks on batteries
	TptPlBatterieFactor    float64
	TptPlH2Fraction        float64 // heavy trucks on fuel cells
	TptPlH2Factor          float64
	TptPlFossilFraction    float64 // heavy trucks staying on liquid fuel
	TptVulElectrifiable    float64 // light commercial vehicles
	TptVulEvFactor         float64
	TptRailElectrifiable   float64 // remaining diesel rail lines
	TptRailElecFactor      float64
	TptAvionReportTGV      float64 // short-haul domestic flights shifted to rail
	TptAvionSafBioFraction float64 // kerosene replaced by bio-SAF
	TptMaritimeElecFraction float64
	TptMaritimeElecFactor   float64
	TptMaritimeH2Fraction  float64
	TptMaritimeH2Factor    float64
	TptFluvialElecFraction float64
	TptFluvialElecFactor   float64

	// Agriculture.
	AgrMachinismeEvFraction  float64 // battery tractors and harvesters
	AgrMachinismeEvFactor    float64
	AgrMachinismeH2Fraction  float64
	AgrMachinismeH2Factor    float64
	AgrMachinismeBioFraction float64 // biofuel for the heaviest machinery
	AgrSerresPacFraction     float64 // greenhouse gas heating to heat pumps
	AgrSerresPacCOP          float64
	AgrIrrigationGain        float64
	AgrElevageGain           float64
	AgrAutresElecFraction    float64
	AgrAutresElecFactor      float64

	// Non-energy feedstocks.
	NePetrochimieRecyclingGain float64 // plastics recycling shrinking naphtha need
	NePetrochimieBioFraction   float64 // bio-sourced naphtha
	NeEngraisH2Factor          float64 // green H2 per kWh of gas feedstock
	NeEngraisElecFraction      float64 // synthesis electricity
	NeChimieElecFraction       float64
	NeChimieH2Fraction         float64
	NeChimieBioFraction        float64
	NeChimieFossilFraction     float64
	NeBitumesBioFraction       float64

	// System-level.
	ElectrolyseEfficiency float64 // H2 energy out per electricity in
	PlantEfficiency       float64 // backup thermal plant, electricity out per fuel in
}

// DefaultParams returns the central scenario coefficients. Sources and the
// reconciliation against the published sector targets are documented in
// DESIGN.md; COPs and EV factors follow ADEME/RTE midpoints.
func DefaultParams() Params {
	return Params{
		ResRenovationGain:   0.20,
		ResChauffageCOP:     3.5,
		ResECSCOP:           2.5,
		ResCuissonFactor:    0.80,
		ResEclairageLEDGain: 0.50,

		TerRenovationGain:     0.30,
		TerChauffageCOP:       3.0,
		TerECSCOP:             2.5,
		TerClimGain:           0.20,
		TerEclairageLEDGain:   0.50,
		TerEspecGain:          0.10,
		TerAutresElecFraction: 0.75,
		TerAutresElecFactor:   0.50,

		IndHtElecFraction:     0.40,
		IndHtElecFactor:       0.85,
		IndHtH2Fraction:       0.30,
		IndHtH2Factor:         1.10,
		IndHtBioFraction:      0.10,
		IndHtFossilFraction:   0.20,
		IndMtElectrifiable:    0.90,
		IndMtCOP:              2.5,
		IndBtCOP:              3.5,
		IndAutresElecFraction: 0.85,
		IndAutresElecFactor:   0.60,
		IndProcessGain:        0.15,

		TptSobrieteGain:         0.10,
		TptReportModal:          0.15,
		TptVpEvFactor:           0.33,
		Tpt2rEvFactor:           0.33,
		TptBusEvFactor:          0.40,
		TptPlBatterieFraction:   0.50,
		TptPlBatterieFactor:     0.40,
		TptPlH2Fraction:         0.35,
		TptPlH2Factor:           0.55,
		TptPlFossilFraction:     0.15,
		TptVulElectrifiable:     0.90,
		TptVulEvFactor:          0.35,
		TptRailElectrifiable:    0.90,
		TptRailElecFactor:       0.50,
		TptAvionReportTGV:       0.40,
		TptAvionSafBioFraction:  0.65,
		TptMaritimeElecFraction: 0.30,
		TptMaritimeElecFactor:   0.40,
		TptMaritimeH2Fraction:   0.30,
		TptMaritimeH2Factor:     0.70,
		TptFluvialElecFraction:  0.70,
		TptFluvialElecFactor:    0.40,

		AgrMachinismeEvFraction:  0.50,
		AgrMachinismeEvFactor:    0.35,
		AgrMachinismeH2Fraction:  0.25,
		AgrMachinismeH2Factor:    0.60,
		AgrMachinismeBioFraction: 0.15,
		AgrSerresPacFraction:     0.80,
		AgrSerresPacCOP:          3.0,
		AgrIrrigationGain:        0.10,
		AgrElevageGain:           0.10,
		AgrAutresElecFraction:    0.60,
		AgrAutresElecFactor:      0.40,

		NePetrochimieRecyclingGain: 0.25,
		NePetrochimieBioFraction:   0.45,
		NeEngraisH2Factor:          0.85,
		NeEngraisElecFraction:      0.10,
		NeChimieElecFraction:       0.10,
		NeChimieH2Fraction:         0.30,
		NeChimieBioFraction:        0.30,
		NeChimieFossilFraction:     0.30,
		NeBitumesBioFraction:       0.30,

		ElectrolyseEfficiency: 0.65,
		PlantEfficiency:       0.55,
	}
}
