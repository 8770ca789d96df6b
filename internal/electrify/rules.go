package electrify

import (
	"fmt"

	"github.com/mlevant/wattfrance/internal/refdata"
)

// contribution is one end-use's share of the four target vectors (TWh).
type contribution struct {
	elec   float64
	h2     float64
	bio    float64
	fossil float64
}

// Rule is one end-use's conversion recipe. The four variants cover every
// transformation the model needs; sector tables in sectors.go map end-use
// names to rules, and convertSector interprets them uniformly.
type Rule interface {
	apply(u refdata.UsageReference) contribution
}

// ThermalSubstitution replaces the fossil share of a thermal end-use with
// heat-pump electricity. Renovation shrinks the fossil, biomass and
// district-heat need before conversion; the existing electric share is
// scaled by its own gain. Biomass and district heat carry through to the
// bio vector.
type ThermalSubstitution struct {
	COP            float64 // useful heat per kWh of electricity, > 0
	RenovationGain float64
	ElecGain       float64
}

func (r ThermalSubstitution) apply(u refdata.UsageReference) contribution {
	keep := 1 - r.RenovationGain
	return contribution{
		elec: u.ElecTWh*(1-r.ElecGain) + u.FossilTWh()*keep/r.COP,
		bio:  (u.EnrTWh + u.ReseauTWh) * keep,
	}
}

// EfficiencyScaling shrinks an already-electric end-use by a fixed gain
// (LED relamping, appliance efficiency) with no vector change.
type EfficiencyScaling struct {
	Gain float64
}

func (r EfficiencyScaling) apply(u refdata.UsageReference) contribution {
	return contribution{
		elec:   u.ElecTWh * (1 - r.Gain),
		bio:    u.EnrTWh + u.ReseauTWh,
		fossil: u.FossilTWh(),
	}
}

// FixedAllocation splits an end-use's fossil total across the target
// vectors with fixed fractions and per-unit conversion factors. Reduction
// shrinks the fossil need first (sobriety, modal shift, recycling); the
// existing electric share is carried, and biomass carries to bio.
type FixedAllocation struct {
	Reduction      float64
	ElecFraction   float64
	ElecFactor     float64
	H2Fraction     float64
	H2Factor       float64
	BioFraction    float64
	FossilFraction float64
	ElecGain       float64 // gain on the existing electric share
}

func (r FixedAllocation) apply(u refdata.UsageReference) contribution {
	base := u.FossilTWh() * (1 - r.Reduction)
	return contribution{
		elec:   u.ElecTWh*(1-r.ElecGain) + base*r.ElecFraction*r.ElecFactor,
		h2:     base * r.H2Fraction * r.H2Factor,
		bio:    u.EnrTWh + u.ReseauTWh + base*r.BioFraction,
		fossil: base * r.FossilFraction,
	}
}

// CarryOver keeps an end-use unchanged: already-electric processes
// (electrochemistry, irrigation pumping) stay on their current vectors.
type CarryOver struct{}

func (CarryOver) apply(u refdata.UsageReference) contribution {
	return contribution{
		elec:   u.ElecTWh,
		bio:    u.EnrTWh + u.ReseauTWh,
		fossil: u.FossilTWh(),
	}
}

// convertSector interprets a sector's rule table. A usage without a rule is
// a programming fault (the tables are maintained alongside the reference
// dataset), not a runtime condition, so it panics.
func convertSector(s refdata.SectorReference, rules map[string]Rule) SectorBalance {
	b := SectorBalance{Name: s.Name, CurrentTWh: s.TotalTWh()}
	for _, u := range s.Usages {
		r, ok := rules[u.Name]
		if !ok {
			panic(fmt.Sprintf("electrify: no conversion rule for %s/%s", s.Name, u.Name))
		}
		c := r.apply(u)
		b.ElecTWh += c.elec
		b.H2TWh += c.h2
		b.BioEnrTWh += c.bio
		b.FossilResidualTWh += c.fossil
	}
	return b
}

// mustPositive guards divisions by configurable coefficients. A COP or
// efficiency of zero is a configuration fault the caller must fix.
func mustPositive(name string, v float64) float64 {
	if v <= 0 {
		panic(fmt.Sprintf("electrify: %s must be > 0, got %g", name, v))
	}
	return v
}
