package electrify

import (
	"math"
	"testing"

	"github.com/mlevant/wattfrance/internal/refdata"
)

func approx(t *testing.T, name string, got, want, tol float64) {
	t.Helper()
	if math.Abs(got-want) > tol {
		t.Errorf("%s = %.2f, want %.2f ± %.2f", name, got, want, tol)
	}
}

func TestResidentialDefaults(t *testing.T) {
	b := Residential(refdata.SDES2023().Residential, DefaultParams())

	approx(t, "elec", b.ElecTWh, 175, 5)
	approx(t, "bio", b.BioEnrTWh, 107, 5)
	approx(t, "total", b.TargetTotalTWh(), 282, 5)
	if b.H2TWh != 0 {
		t.Errorf("h2 = %.2f, want 0", b.H2TWh)
	}
	if b.FossilResidualTWh != 0 {
		t.Errorf("fossil = %.2f, want 0", b.FossilResidualTWh)
	}
	if b.CurrentTWh != 422 {
		t.Errorf("current = %.2f, want 422", b.CurrentTWh)
	}
}

func TestTertiaryDefaults(t *testing.T) {
	b := Tertiary(refdata.SDES2023().Tertiary, DefaultParams())

	approx(t, "elec", b.ElecTWh, 120, 5)
	approx(t, "bio", b.BioEnrTWh, 8, 3)
	approx(t, "fossil", b.FossilResidualTWh, 2, 2)
	approx(t, "total", b.TargetTotalTWh(), 135, 10)
	if b.H2TWh != 0 {
		t.Errorf("h2 = %.2f, want 0", b.H2TWh)
	}
}

func TestIndustryDefaults(t *testing.T) {
	b := Industry(refdata.SDES2023().Industry, DefaultParams())

	approx(t, "elec", b.ElecTWh, 158, 10)
	approx(t, "h2", b.H2TWh, 25, 5)
	approx(t, "bio", b.BioEnrTWh, 26, 5)
	approx(t, "fossil", b.FossilResidualTWh, 15, 3)
	approx(t, "total", b.TargetTotalTWh(), 223, 10)
}

func TestTransportDefaults(t *testing.T) {
	b := Transport(refdata.SDES2023().Transport, DefaultParams())

	approx(t, "elec", b.ElecTWh, 118, 10)
	approx(t, "h2", b.H2TWh, 30, 5)
	approx(t, "bio", b.BioEnrTWh, 48, 5)
	approx(t, "fossil", b.FossilResidualTWh, 50, 5)
	approx(t, "total", b.TargetTotalTWh(), 248, 10)
}

func TestAgricultureDefaults(t *testing.T) {
	b := Agriculture(refdata.SDES2023().Agriculture, DefaultParams())

	approx(t, "elec", b.ElecTWh, 18, 3)
	approx(t, "h2", b.H2TWh, 5, 2)
	approx(t, "bio", b.BioEnrTWh, 11, 3)
	approx(t, "fossil", b.FossilResidualTWh, 3, 2)
	approx(t, "total", b.TargetTotalTWh(), 37, 5)
}

func TestNonEnergyDefaults(t *testing.T) {
	b := NonEnergy(refdata.SDES2023().NonEnergy, DefaultParams())

	approx(t, "elec", b.ElecTWh, 5, 2)
	approx(t, "h2", b.H2TWh, 29, 3)
	approx(t, "bio", b.BioEnrTWh, 27, 3)
	approx(t, "fossil", b.FossilResidualTWh, 35, 3)
	approx(t, "total", b.TargetTotalTWh(), 96, 5)
}

// Each sector should shrink or hold its total; electrification never
// increases final energy demand under the default assumptions.
func TestAllSectorsReduceConsumption(t *testing.T) {
	ref := refdata.SDES2023()
	p := DefaultParams()

	balances := []SectorBalance{
		Residential(ref.Residential, p),
		Tertiary(ref.Tertiary, p),
		Industry(ref.Industry, p),
		Transport(ref.Transport, p),
		Agriculture(ref.Agriculture, p),
		NonEnergy(ref.NonEnergy, p),
	}
	for _, b := range balances {
		t.Run(b.Name, func(t *testing.T) {
			if b.TargetTotalTWh() > b.CurrentTWh {
				t.Errorf("target %.2f exceeds current %.2f", b.TargetTotalTWh(), b.CurrentTWh)
			}
			if b.ReductionPct() < 0 || b.ReductionPct() > 1 {
				t.Errorf("reduction %.3f outside [0,1]", b.ReductionPct())
			}
		})
	}
}

func TestAllVectorsNonNegative(t *testing.T) {
	ref := refdata.SDES2023()
	p := DefaultParams()

	balances := []SectorBalance{
		Residential(ref.Residential, p),
		Tertiary(ref.Tertiary, p),
		Industry(ref.Industry, p),
		Transport(ref.Transport, p),
		Agriculture(ref.Agriculture, p),
		NonEnergy(ref.NonEnergy, p),
	}
	for _, b := range balances {
		t.Run(b.Name, func(t *testing.T) {
			for name, v := range map[string]float64{
				"elec":   b.ElecTWh,
				"h2":     b.H2TWh,
				"bio":    b.BioEnrTWh,
				"fossil": b.FossilResidualTWh,
			} {
				if v < 0 {
					t.Errorf("%s = %.2f, want >= 0", name, v)
				}
			}
		})
	}
}

// Conversions are pure: the same inputs give the same outputs.
func TestConversionIdempotent(t *testing.T) {
	ref := refdata.SDES2023()
	p := DefaultParams()

	a := Transport(ref.Transport, p)
	b := Transport(ref.Transport, p)
	if a != b {
		t.Errorf("repeated conversion diverged: %+v vs %+v", a, b)
	}
}

func TestHigherHeatPumpCOPLowersElectricity(t *testing.T) {
	ref := refdata.SDES2023()

	base := DefaultParams()
	better := DefaultParams()
	better.ResChauffageCOP = base.ResChauffageCOP + 1

	lo := Residential(ref.Residential, base)
	hi := Residential(ref.Residential, better)
	if hi.ElecTWh >= lo.ElecTWh {
		t.Errorf("elec with COP %.1f = %.2f, not below %.2f at COP %.1f",
			better.ResChauffageCOP, hi.ElecTWh, lo.ElecTWh, base.ResChauffageCOP)
	}
}

func TestHigherIndustryH2ShareRaisesH2(t *testing.T) {
	ref := refdata.SDES2023()

	base := DefaultParams()
	more := DefaultParams()
	more.IndHtH2Fraction = base.IndHtH2Fraction + 0.10
	more.IndHtElecFraction = base.IndHtElecFraction - 0.10

	lo := Industry(ref.Industry, base)
	hi := Industry(ref.Industry, more)
	if hi.H2TWh <= lo.H2TWh {
		t.Errorf("h2 = %.2f with larger share, not above %.2f", hi.H2TWh, lo.H2TWh)
	}
}

func TestLowerEVFactorLowersTransportElectricity(t *testing.T) {
	ref := refdata.SDES2023()

	base := DefaultParams()
	leaner := DefaultParams()
	leaner.TptVpEvFactor = base.TptVpEvFactor - 0.10

	lo := Transport(ref.Transport, leaner)
	hi := Transport(ref.Transport, base)
	if lo.ElecTWh >= hi.ElecTWh {
		t.Errorf("elec with factor %.2f = %.2f, not below %.2f", leaner.TptVpEvFactor, lo.ElecTWh, hi.ElecTWh)
	}
}

func TestHigherMachineryEVShareRaisesAgricultureElectricity(t *testing.T) {
	ref := refdata.SDES2023()

	base := DefaultParams()
	more := DefaultParams()
	more.AgrMachinismeEvFraction = base.AgrMachinismeEvFraction + 0.20
	more.AgrMachinismeH2Fraction = base.AgrMachinismeH2Fraction - 0.10
	more.AgrMachinismeBioFraction = base.AgrMachinismeBioFraction - 0.10

	lo := Agriculture(ref.Agriculture, base)
	hi := Agriculture(ref.Agriculture, more)
	if hi.ElecTWh <= lo.ElecTWh {
		t.Errorf("elec = %.2f with larger EV share, not above %.2f", hi.ElecTWh, lo.ElecTWh)
	}
}

func TestMoreRecyclingLowersNonEnergyTotal(t *testing.T) {
	ref := refdata.SDES2023()

	base := DefaultParams()
	more := DefaultParams()
	more.NePetrochimieRecyclingGain = base.NePetrochimieRecyclingGain + 0.15

	lo := NonEnergy(ref.NonEnergy, more)
	hi := NonEnergy(ref.NonEnergy, base)
	if lo.TargetTotalTWh() >= hi.TargetTotalTWh() {
		t.Errorf("total with gain %.2f = %.2f, not below %.2f",
			more.NePetrochimieRecyclingGain, lo.TargetTotalTWh(), hi.TargetTotalTWh())
	}
}
