// Package refdata holds the baseline-year national energy consumption
// breakdown: six sectors, each decomposed into end-uses, each end-use
// decomposed by energy vector. All figures are annual TWh.
//
// Values are validated at construction and never mutated afterwards;
// sector and national totals are always derived from the components so
// they cannot drift.
package refdata

import (
	"fmt"
	"math"
)

// Tolerances for construction-time validation.
const (
	// UsageTolerance is the maximum allowed gap between an end-use's
	// declared total and the sum of its vector components (TWh).
	UsageTolerance = 0.5

	// GrandTotalTWh is the published national final-consumption total the
	// reference dataset must reproduce.
	GrandTotalTWh = 1615.0

	// GrandTotalTolerance is the allowed deviation from GrandTotalTWh.
	GrandTotalTolerance = 2.0
)

// UsageReference is one end-use within a sector (e.g. residential heating,
// 312 TWh). The six vector components must sum to TotalTWh within
// UsageTolerance.
type UsageReference struct {
	Name       string
	TotalTWh   float64
	ElecTWh    float64
	GazTWh     float64
	PetroleTWh float64
	CharbonTWh float64
	EnrTWh     float64 // biomass and other directly-used renewables
	ReseauTWh  float64 // district heating networks
}

// NewUsageReference validates that the vector components sum to the declared
// total. A mismatch larger than UsageTolerance is a data error: the value
// cannot exist in an inconsistent state.
func NewUsageReference(name string, total, elec, gaz, petrole, charbon, enr, reseau float64) (UsageReference, error) {
	u := UsageReference{
		Name:       name,
		TotalTWh:   total,
		ElecTWh:    elec,
		GazTWh:     gaz,
		PetroleTWh: petrole,
		CharbonTWh: charbon,
		EnrTWh:     enr,
		ReseauTWh:  reseau,
	}
	sum := elec + gaz + petrole + charbon + enr + reseau
	if math.Abs(sum-total) > UsageTolerance {
		return UsageReference{}, fmt.Errorf("usage %s: vectors sum to %.1f TWh, expected %.1f", name, sum, total)
	}
	return u, nil
}

// mustUsage is for the hard-coded reference dataset, where a mismatch is a
// bug in this package rather than a runtime condition.
func mustUsage(name string, total, elec, gaz, petrole, charbon, enr, reseau float64) UsageReference {
	u, err := NewUsageReference(name, total, elec, gaz, petrole, charbon, enr, reseau)
	if err != nil {
		panic(err)
	}
	return u
}

// FossilTWh is the combined fossil component (gas + petroleum + coal).
func (u UsageReference) FossilTWh() float64 {
	return u.GazTWh + u.PetroleTWh + u.CharbonTWh
}

// SectorReference is one sector with its end-use breakdown. Totals are
// derived from the usages on every call.
type SectorReference struct {
	Name   string
	Usages []UsageReference
}

// Usage returns the named end-use and whether it exists.
func (s SectorReference) Usage(name string) (UsageReference, bool) {
	for _, u := range s.Usages {
		if u.Name == name {
			return u, true
		}
	}
	return UsageReference{}, false
}

func (s SectorReference) TotalTWh() float64 {
	var t float64
	for _, u := range s.Usages {
		t += u.TotalTWh
	}
	return t
}

func (s SectorReference) ElecTWh() float64 {
	var t float64
	for _, u := range s.Usages {
		t += u.ElecTWh
	}
	return t
}

func (s SectorReference) FossilTWh() float64 {
	var t float64
	for _, u := range s.Usages {
		t += u.FossilTWh()
	}
	return t
}

func (s SectorReference) EnrTWh() float64 {
	var t float64
	for _, u := range s.Usages {
		t += u.EnrTWh
	}
	return t
}

func (s SectorReference) ReseauTWh() float64 {
	var t float64
	for _, u := range s.Usages {
		t += u.ReseauTWh
	}
	return t
}

// ReferenceData is the full national baseline: exactly six sectors.
type ReferenceData struct {
	Residential SectorReference
	Tertiary    SectorReference
	Industry    SectorReference
	Transport   SectorReference
	Agriculture SectorReference
	NonEnergy   SectorReference
}

// New validates that the six sectors reproduce the published grand total.
func New(residential, tertiary, industry, transport, agriculture, nonEnergy SectorReference) (ReferenceData, error) {
	r := ReferenceData{
		Residential: residential,
		Tertiary:    tertiary,
		Industry:    industry,
		Transport:   transport,
		Agriculture: agriculture,
		NonEnergy:   nonEnergy,
	}
	if got := r.TotalTWh(); math.Abs(got-GrandTotalTWh) > GrandTotalTolerance {
		return ReferenceData{}, fmt.Errorf("reference data: grand total %.1f TWh, expected %.0f ± %.0f", got, GrandTotalTWh, GrandTotalTolerance)
	}
	return r, nil
}

// AllSectors returns the six sectors in canonical order.
func (r ReferenceData) AllSectors() []SectorReference {
	return []SectorReference{
		r.Residential, r.Tertiary, r.Industry,
		r.Transport, r.Agriculture, r.NonEnergy,
	}
}

func (r ReferenceData) TotalTWh() float64 {
	var t float64
	for _, s := range r.AllSectors() {
		t += s.TotalTWh()
	}
	return t
}

// ElecTWh is the national electricity consumption in the baseline year.
func (r ReferenceData) ElecTWh() float64 {
	var t float64
	for _, s := range r.AllSectors() {
		t += s.ElecTWh()
	}
	return t
}
