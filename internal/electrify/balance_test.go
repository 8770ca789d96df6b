package electrify

import (
	"math"
	"testing"

	"github.com/mlevant/wattfrance/internal/refdata"
)

func TestSystemFromSectorsIdentities(t *testing.T) {
	sectors := map[string]SectorBalance{
		"a": {Name: "a", CurrentTWh: 100, ElecTWh: 40, H2TWh: 13, BioEnrTWh: 20, FossilResidualTWh: 5},
		"b": {Name: "b", CurrentTWh: 50, ElecTWh: 10, H2TWh: 0, BioEnrTWh: 6, FossilResidualTWh: 4},
	}

	sb, err := SystemFromSectors(sectors, 0.65)
	if err != nil {
		t.Fatalf("SystemFromSectors: %v", err)
	}

	approx(t, "current", sb.CurrentTotalTWh, 150, 1e-9)
	approx(t, "direct elec", sb.DirectElectricityTWh, 50, 1e-9)
	approx(t, "h2 demand", sb.H2DemandTWh, 13, 1e-9)
	approx(t, "h2 production", sb.H2ProductionElecTWh, 20, 1e-9)
	approx(t, "total elec", sb.TotalElectricityTWh, 70, 1e-9)
	approx(t, "bio", sb.BioEnrTWh, 26, 1e-9)
	approx(t, "fossil", sb.FossilResidualTWh, 9, 1e-9)
	if len(sb.Sectors) != 2 {
		t.Errorf("kept %d sectors, want 2", len(sb.Sectors))
	}
}

func TestSystemFromSectorsRejectsBadEfficiency(t *testing.T) {
	for _, eff := range []float64{0, -0.5} {
		if _, err := SystemFromSectors(nil, eff); err == nil {
			t.Errorf("efficiency %g accepted, want error", eff)
		}
	}
}

func TestComputeSystemBalanceDefaults(t *testing.T) {
	sb, err := ComputeSystemBalance(refdata.SDES2023(), DefaultParams())
	if err != nil {
		t.Fatalf("ComputeSystemBalance: %v", err)
	}

	approx(t, "current total", sb.CurrentTotalTWh, 1615, 1)
	approx(t, "direct elec", sb.DirectElectricityTWh, 596, 10)
	approx(t, "h2 demand", sb.H2DemandTWh, 89, 5)
	approx(t, "h2 production elec", sb.H2ProductionElecTWh, 137, 10)
	approx(t, "total elec", sb.TotalElectricityTWh, 733, 10)
	approx(t, "bio", sb.BioEnrTWh, 233, 10)
	approx(t, "fossil", sb.FossilResidualTWh, 105, 10)

	if len(sb.Sectors) != 6 {
		t.Fatalf("got %d sectors, want 6", len(sb.Sectors))
	}
	for _, name := range []string{
		refdata.SectorResidential, refdata.SectorTertiary, refdata.SectorIndustry,
		refdata.SectorTransport, refdata.SectorAgriculture, refdata.SectorNonEnergy,
	} {
		if _, ok := sb.Sectors[name]; !ok {
			t.Errorf("missing sector %q", name)
		}
	}
}

func TestComputeSystemBalanceTotalConsistency(t *testing.T) {
	sb, err := ComputeSystemBalance(refdata.SDES2023(), DefaultParams())
	if err != nil {
		t.Fatalf("ComputeSystemBalance: %v", err)
	}

	var sum float64
	for _, b := range sb.Sectors {
		sum += b.TargetTotalTWh()
	}
	want := sb.DirectElectricityTWh + sb.H2DemandTWh + sb.BioEnrTWh + sb.FossilResidualTWh
	if math.Abs(sum-want) > 1e-6 {
		t.Errorf("sector targets sum to %.4f, system vectors sum to %.4f", sum, want)
	}
}

func TestComputeSystemBalanceRespondsToParams(t *testing.T) {
	ref := refdata.SDES2023()

	base, err := ComputeSystemBalance(ref, DefaultParams())
	if err != nil {
		t.Fatalf("ComputeSystemBalance: %v", err)
	}

	p := DefaultParams()
	p.ElectrolyseEfficiency = 0.80
	better, err := ComputeSystemBalance(ref, p)
	if err != nil {
		t.Fatalf("ComputeSystemBalance: %v", err)
	}
	if better.H2ProductionElecTWh >= base.H2ProductionElecTWh {
		t.Errorf("h2 production elec %.2f at 0.80 efficiency, not below %.2f at %.2f",
			better.H2ProductionElecTWh, base.H2ProductionElecTWh, DefaultParams().ElectrolyseEfficiency)
	}
	if better.H2DemandTWh != base.H2DemandTWh {
		t.Errorf("h2 demand changed with efficiency: %.2f vs %.2f", better.H2DemandTWh, base.H2DemandTWh)
	}
}

func TestComputeSystemBalanceRejectsBadEfficiency(t *testing.T) {
	p := DefaultParams()
	p.ElectrolyseEfficiency = 0
	if _, err := ComputeSystemBalance(refdata.SDES2023(), p); err == nil {
		t.Error("zero electrolyse efficiency accepted, want error")
	}
}

func TestReductionPct(t *testing.T) {
	tests := []struct {
		name string
		b    SectorBalance
		want float64
	}{
		{"quarter drop", SectorBalance{CurrentTWh: 100, ElecTWh: 75}, 0.25},
		{"no change", SectorBalance{CurrentTWh: 50, ElecTWh: 50}, 0},
		{"empty sector", SectorBalance{}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.b.ReductionPct(); math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("ReductionPct() = %.4f, want %.4f", got, tt.want)
			}
		})
	}
}
