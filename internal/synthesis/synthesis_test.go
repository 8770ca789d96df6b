package synthesis

import (
	"math"
	"testing"

	"github.com/mlevant/wattfrance/internal/electrify"
	"github.com/mlevant/wattfrance/internal/production"
	"github.com/mlevant/wattfrance/internal/refdata"
	"github.com/mlevant/wattfrance/internal/temporal"
)

// constantProduction builds a dataset producing the same power in every
// period, with no solar.
func constantProduction(gw float64) production.Dataset {
	var d production.Dataset
	for m := range d.NuclearGW {
		d.NuclearGW[m] = gw
	}
	return d
}

func TestDemandComponentPower(t *testing.T) {
	// A flat component spreads constant power over the whole year.
	d := DemandComponent{Name: "base", AnnualTWh: 87.6 * 8640 / 8760, Profile: temporal.Flat()}

	p := temporal.Period{Month: temporal.Janvier, Slot: temporal.Slot23h8h}
	got := d.PowerKW(p)
	want := d.AnnualTWh * 1e9 / (24 * 30 * 12)
	if math.Abs(got-want) > 1 {
		t.Errorf("PowerKW = %.0f, want %.0f", got, want)
	}
}

func TestComputeBalancedSystemHasNoDeficit(t *testing.T) {
	// 50 GW flat production against 40 GW flat demand.
	annualTWh := 40.0 * 24 * 30 * 12 / 1e3 // GW × hours → TWh
	demands := []DemandComponent{{Name: "base", AnnualTWh: annualTWh, Profile: temporal.Flat()}}

	res, err := Compute(constantProduction(50), demands, 0.55)
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}
	if res.BackupTWh != 0 {
		t.Errorf("backup = %.3f TWh, want 0 with surplus everywhere", res.BackupTWh)
	}
	if res.FuelTWh != 0 {
		t.Errorf("fuel = %.3f TWh, want 0", res.FuelTWh)
	}
	for _, rec := range res.Records {
		if rec.DeficitKW != 0 {
			t.Fatalf("%v deficit %.0f kW, want 0", rec.Period, rec.DeficitKW)
		}
		if rec.SurplusKW <= 0 {
			t.Fatalf("%v surplus %.0f kW, want > 0", rec.Period, rec.SurplusKW)
		}
	}
}

func TestComputeUniformDeficit(t *testing.T) {
	// 40 GW production against 50 GW flat demand: a constant 10 GW
	// deficit over 8640 model hours is 86.4 TWh delivered.
	annualTWh := 50.0 * 24 * 30 * 12 / 1e3
	demands := []DemandComponent{{Name: "base", AnnualTWh: annualTWh, Profile: temporal.Flat()}}

	res, err := Compute(constantProduction(40), demands, 0.5)
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}
	if math.Abs(res.BackupTWh-86.4) > 0.01 {
		t.Errorf("backup = %.3f TWh, want 86.4", res.BackupTWh)
	}
	if math.Abs(res.FuelTWh-172.8) > 0.01 {
		t.Errorf("fuel = %.3f TWh, want 172.8 at 0.5 efficiency", res.FuelTWh)
	}
	if math.Abs(res.PeakDeficitGW-10) > 0.001 {
		t.Errorf("peak deficit = %.2f GW, want 10", res.PeakDeficitGW)
	}
}

func TestComputeDeficitNeverNegative(t *testing.T) {
	// Demand concentrated on a single period: every other period is in
	// surplus and must contribute exactly nothing.
	var raw [temporal.PeriodCount]float64
	raw[0] = 1
	demands := []DemandComponent{{Name: "spike", AnnualTWh: 100, Profile: temporal.Normalize(raw)}}

	res, err := Compute(constantProduction(5), demands, 0.55)
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}
	for _, rec := range res.Records {
		if rec.DeficitKW < 0 {
			t.Fatalf("%v deficit %.0f kW below zero", rec.Period, rec.DeficitKW)
		}
	}
	if res.Records[0].DeficitKW == 0 {
		t.Error("spike period should be in deficit")
	}
	var fromOthers float64
	for _, rec := range res.Records[1:] {
		fromOthers += rec.BackupTWh
	}
	if fromOthers != 0 {
		t.Errorf("surplus periods contributed %.3f TWh of backup", fromOthers)
	}
}

func TestComputeRejectsBadPlantEfficiency(t *testing.T) {
	for _, eff := range []float64{0, -1} {
		if _, err := Compute(constantProduction(40), nil, eff); err == nil {
			t.Errorf("plant efficiency %g accepted, want error", eff)
		}
	}
}

func TestComputeRecordShape(t *testing.T) {
	demands := []DemandComponent{
		{Name: "a", AnnualTWh: 100, Profile: temporal.Flat()},
		{Name: "b", AnnualTWh: 50, Profile: temporal.ChargingProfile()},
	}
	res, err := Compute(production.Baseline2023(), demands, 0.55)
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}
	if len(res.Records) != 60 {
		t.Fatalf("got %d records, want 60", len(res.Records))
	}
	for _, rec := range res.Records {
		if len(rec.ComponentsKW) != 2 {
			t.Fatalf("%v has %d components, want 2", rec.Period, len(rec.ComponentsKW))
		}
		sum := rec.ComponentsKW["a"] + rec.ComponentsKW["b"]
		if math.Abs(sum-rec.ConsumptionKW) > 1e-6*rec.ConsumptionKW {
			t.Fatalf("%v components sum %.0f != consumption %.0f", rec.Period, sum, rec.ConsumptionKW)
		}
		if math.Abs(rec.ProductionKW-(rec.BaseKW+rec.SolarKW)) > 1 {
			t.Fatalf("%v production %.0f != base+solar", rec.Period, rec.ProductionKW)
		}
	}
}

func TestDecomposeCoversDirectAndHydrogenElectricity(t *testing.T) {
	sb, err := electrify.ComputeSystemBalance(refdata.SDES2023(), electrify.DefaultParams())
	if err != nil {
		t.Fatalf("ComputeSystemBalance: %v", err)
	}

	demands := Decompose(sb, temporal.DefaultHeatingConfig(), DefaultSplitConfig())
	if len(demands) != 5 {
		t.Fatalf("got %d components, want 5", len(demands))
	}

	var total float64
	for _, d := range demands {
		if d.AnnualTWh < 0 {
			t.Errorf("component %s has negative demand %.2f", d.Name, d.AnnualTWh)
		}
		total += d.AnnualTWh
	}
	want := sb.TotalElectricityTWh
	if math.Abs(total-want) > 0.01 {
		t.Errorf("components total %.2f TWh, want system total %.2f", total, want)
	}
}

func TestFullScenarioBackup(t *testing.T) {
	sb, err := electrify.ComputeSystemBalance(refdata.SDES2023(), electrify.DefaultParams())
	if err != nil {
		t.Fatalf("ComputeSystemBalance: %v", err)
	}

	demands := Decompose(sb, temporal.DefaultHeatingConfig(), DefaultSplitConfig())
	res, err := Compute(production.Baseline2023(), demands, electrify.DefaultParams().PlantEfficiency)
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}

	// Winter nights run a deficit; summer middays a large solar surplus.
	if res.BackupTWh <= 0 {
		t.Error("expected a positive backup requirement in the default scenario")
	}
	if res.FuelTWh <= res.BackupTWh {
		t.Error("fuel must exceed delivered backup at sub-unity plant efficiency")
	}

	janNight := res.Records[temporal.Period{Month: temporal.Janvier, Slot: temporal.Slot23h8h}.Index()]
	julNoon := res.Records[temporal.Period{Month: temporal.Juillet, Slot: temporal.Slot13h18h}.Index()]
	if janNight.DeficitKW <= 0 {
		t.Errorf("january night deficit = %.0f kW, want > 0", janNight.DeficitKW)
	}
	if julNoon.SurplusKW <= 0 {
		t.Errorf("july midday surplus = %.0f kW, want > 0", julNoon.SurplusKW)
	}
}
