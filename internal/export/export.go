// Package export writes scenario results as CSV files.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/mlevant/wattfrance/internal/electrify"
	"github.com/mlevant/wattfrance/internal/refdata"
	"github.com/mlevant/wattfrance/internal/synthesis"
)

// sectorOrder fixes the row order of sector exports.
var sectorOrder = []string{
	refdata.SectorResidential,
	refdata.SectorTertiary,
	refdata.SectorIndustry,
	refdata.SectorTransport,
	refdata.SectorAgriculture,
	refdata.SectorNonEnergy,
}

// WriteSectorBalances writes one row per sector plus a total row.
func WriteSectorBalances(w io.Writer, sb electrify.SystemBalance) error {
	cw := csv.NewWriter(w)

	header := []string{
		"sector", "current_twh", "elec_twh", "h2_twh",
		"bio_enr_twh", "fossil_residual_twh", "target_total_twh", "reduction_pct",
	}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	for _, name := range sectorOrder {
		b, ok := sb.Sectors[name]
		if !ok {
			return fmt.Errorf("missing sector %q in system balance", name)
		}
		row := []string{
			name,
			ftoa(b.CurrentTWh),
			ftoa(b.ElecTWh),
			ftoa(b.H2TWh),
			ftoa(b.BioEnrTWh),
			ftoa(b.FossilResidualTWh),
			ftoa(b.TargetTotalTWh()),
			ftoa(b.ReductionPct() * 100),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write sector %s: %w", name, err)
		}
	}

	total := []string{
		"total",
		ftoa(sb.CurrentTotalTWh),
		ftoa(sb.DirectElectricityTWh),
		ftoa(sb.H2DemandTWh),
		ftoa(sb.BioEnrTWh),
		ftoa(sb.FossilResidualTWh),
		"", "",
	}
	if err := cw.Write(total); err != nil {
		return fmt.Errorf("write total row: %w", err)
	}

	cw.Flush()
	return cw.Error()
}

// WriteSystemSummary writes the national aggregates and the annual
// synthesis figures as key/value rows.
func WriteSystemSummary(w io.Writer, sb electrify.SystemBalance, res synthesis.Result) error {
	cw := csv.NewWriter(w)

	rows := [][]string{
		{"metric", "value_twh"},
		{"current_total", ftoa(sb.CurrentTotalTWh)},
		{"direct_electricity", ftoa(sb.DirectElectricityTWh)},
		{"h2_demand", ftoa(sb.H2DemandTWh)},
		{"h2_production_electricity", ftoa(sb.H2ProductionElecTWh)},
		{"total_electricity", ftoa(sb.TotalElectricityTWh)},
		{"bio_enr", ftoa(sb.BioEnrTWh)},
		{"fossil_residual", ftoa(sb.FossilResidualTWh)},
		{"backup_electricity", ftoa(res.BackupTWh)},
		{"backup_fuel", ftoa(res.FuelTWh)},
		{"peak_deficit_gw", ftoa(res.PeakDeficitGW)},
	}
	for _, row := range rows {
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write summary row: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// WritePeriodBalance writes the 60-row period balance, one row per
// month and slot cell.
func WritePeriodBalance(w io.Writer, records []synthesis.Record) error {
	cw := csv.NewWriter(w)

	header := []string{
		"month", "slot", "hours",
		"base_gw", "solar_gw", "production_gw",
		"consumption_gw", "deficit_gw", "surplus_gw", "backup_twh",
	}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	for _, rec := range records {
		row := []string{
			rec.Period.Month.String(),
			rec.Period.Slot.String(),
			ftoa(rec.Period.Hours()),
			ftoa(rec.BaseKW / 1e6),
			ftoa(rec.SolarKW / 1e6),
			ftoa(rec.ProductionKW / 1e6),
			ftoa(rec.ConsumptionKW / 1e6),
			ftoa(rec.DeficitKW / 1e6),
			ftoa(rec.SurplusKW / 1e6),
			ftoa(rec.BackupTWh),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write period %s: %w", rec.Period, err)
		}
	}

	cw.Flush()
	return cw.Error()
}

func ftoa(v float64) string {
	return strconv.FormatFloat(v, 'f', 3, 64)
}
