package main

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"text/tabwriter"
	"time"

	"github.com/alecthomas/kong"
	"github.com/google/uuid"
	kongdotenv "github.com/titusjaka/kong-dotenv-go"
	_ "modernc.org/sqlite"

	"github.com/mlevant/wattfrance/internal/chart"
	"github.com/mlevant/wattfrance/internal/electrify"
	"github.com/mlevant/wattfrance/internal/export"
	"github.com/mlevant/wattfrance/internal/ingest"
	"github.com/mlevant/wattfrance/internal/metrics"
	"github.com/mlevant/wattfrance/internal/narrative"
	"github.com/mlevant/wattfrance/internal/production"
	"github.com/mlevant/wattfrance/internal/refdata"
	"github.com/mlevant/wattfrance/internal/store"
	"github.com/mlevant/wattfrance/internal/synthesis"
	"github.com/mlevant/wattfrance/internal/tarif"
	"github.com/mlevant/wattfrance/internal/temporal"
)

type cli struct {
	DB string `help:"Path to SQLite database." default:"data/wattfrance.db" env:"WATTFRANCE_DB"`

	Run      runCmd      `cmd:"" help:"Compute a scenario and persist the results."`
	Download downloadCmd `cmd:"" help:"Download reference series from RTE, PVGIS and Météo-France."`
	Report   reportCmd   `cmd:"" help:"Print the tables of a stored run."`
}

func main() {
	var c cli
	ctx := kong.Parse(&c,
		kong.Name("wattfrance"),
		kong.Description("Scenario model of a fully electrified French energy system."),
		kong.Configuration(kongdotenv.ENVFileReader, ".env"),
		kong.UsageOnError(),
	)
	ctx.FatalIfErrorf(ctx.Run(&c))
}

func openStore(path string) (*store.Store, *sql.DB, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, nil, fmt.Errorf("create database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, nil, fmt.Errorf("open database: %w", err)
	}
	db.Exec("PRAGMA journal_mode=WAL")
	db.Exec("PRAGMA busy_timeout=5000")

	st := store.New(db)
	if err := st.Migrate(); err != nil {
		db.Close()
		return nil, nil, fmt.Errorf("migrate: %w", err)
	}
	return st, db, nil
}

type runCmd struct {
	Label                 string  `help:"Label stored with the run." default:"default"`
	SolarGWc              float64 `help:"Installed solar capacity in GWc." default:"500"`
	HeatPumpCOP           float64 `help:"Average residential heat pump COP." default:"3.5"`
	ElectrolyseEfficiency float64 `help:"Hydrogen energy out per electricity in." default:"0.65"`
	PlantEfficiency       float64 `help:"Backup plant electricity out per fuel in." default:"0.55"`
	OutDir                string  `help:"Directory for CSV and chart outputs." default:"out" type:"path"`
	Narrative             bool    `help:"Generate a written commentary (requires OPENAI_API_KEY)."`
}

func (c *runCmd) Run(g *cli) error {
	params := electrify.DefaultParams()
	params.ResChauffageCOP = c.HeatPumpCOP
	params.ElectrolyseEfficiency = c.ElectrolyseEfficiency
	params.PlantEfficiency = c.PlantEfficiency

	sb, err := electrify.ComputeSystemBalance(refdata.SDES2023(), params)
	if err != nil {
		metrics.ScenarioRunsTotal.WithLabelValues("error").Inc()
		return fmt.Errorf("system balance: %w", err)
	}

	prod := production.Baseline2023().ScaleSolar(c.SolarGWc)
	if anomalies := production.DetectAnomalies(prod, production.DefaultAnomalyLimits()); len(anomalies) > 0 {
		for _, a := range anomalies {
			log.Printf("production anomaly: %s at %.1f GW (expected max %.1f GW)",
				a.Period, a.ProductionGW, a.ExpectedMaxGW)
		}
		metrics.ScenarioRunsTotal.WithLabelValues("error").Inc()
		return fmt.Errorf("production dataset has %d anomalous periods", len(anomalies))
	}

	demands := synthesis.Decompose(sb, temporal.DefaultHeatingConfig(), synthesis.DefaultSplitConfig())
	res, err := synthesis.Compute(prod, demands, params.PlantEfficiency)
	if err != nil {
		metrics.ScenarioRunsTotal.WithLabelValues("error").Inc()
		return fmt.Errorf("synthesis: %w", err)
	}

	metrics.ScenarioRunsTotal.WithLabelValues("ok").Inc()
	metrics.BackupEnergyTWh.Set(res.BackupTWh)

	st, db, err := openStore(g.DB)
	if err != nil {
		return err
	}
	defer db.Close()

	paramsJSON, err := json.Marshal(params)
	if err != nil {
		return fmt.Errorf("marshal params: %w", err)
	}

	run := store.Run{
		ID:                    uuid.New(),
		CreatedAt:             time.Now().UTC(),
		Label:                 c.Label,
		SolarGWc:              c.SolarGWc,
		ElectrolyseEfficiency: c.ElectrolyseEfficiency,
		PlantEfficiency:       c.PlantEfficiency,
		BackupTWh:             res.BackupTWh,
		FuelTWh:               res.FuelTWh,
		ParamsJSON:            string(paramsJSON),
	}
	if err := st.InsertRun(run); err != nil {
		return fmt.Errorf("persist run: %w", err)
	}
	if err := st.InsertSectorBalances(run.ID, sb.Sectors); err != nil {
		return fmt.Errorf("persist sector balances: %w", err)
	}
	if err := st.InsertSynthesisRecords(run.ID, res.Records); err != nil {
		return fmt.Errorf("persist synthesis records: %w", err)
	}
	log.Printf("run %s persisted", run.ID)

	if err := writeOutputs(c.OutDir, sb, res); err != nil {
		return err
	}

	printScenario(sb, res, run)

	if c.Narrative {
		text, err := summarize(sb, res)
		if err != nil {
			return err
		}
		fmt.Println()
		fmt.Println(text)
		path := filepath.Join(c.OutDir, "narrative.txt")
		if err := os.WriteFile(path, []byte(text+"\n"), 0o644); err != nil {
			return fmt.Errorf("write narrative: %w", err)
		}
	}
	return nil
}

func writeOutputs(dir string, sb electrify.SystemBalance, res synthesis.Result) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	writeCSV := func(name string, write func(f *os.File) error) error {
		f, err := os.Create(filepath.Join(dir, name))
		if err != nil {
			return fmt.Errorf("create %s: %w", name, err)
		}
		defer f.Close()
		if err := write(f); err != nil {
			return fmt.Errorf("write %s: %w", name, err)
		}
		return f.Close()
	}

	if err := writeCSV("sector_balances.csv", func(f *os.File) error {
		return export.WriteSectorBalances(f, sb)
	}); err != nil {
		return err
	}
	if err := writeCSV("system_summary.csv", func(f *os.File) error {
		return export.WriteSystemSummary(f, sb, res)
	}); err != nil {
		return err
	}
	if err := writeCSV("period_balance.csv", func(f *os.File) error {
		return export.WritePeriodBalance(f, res.Records)
	}); err != nil {
		return err
	}

	png, err := chart.RenderMonthlyBackup(res.Records, "Backup mensuel (TWh)")
	if err != nil {
		return err
	}
	chartPath := filepath.Join(dir, "backup_monthly.png")
	if err := os.WriteFile(chartPath, png, 0o644); err != nil {
		return fmt.Errorf("write chart: %w", err)
	}

	log.Printf("outputs written to %s", dir)
	return nil
}

func summarize(sb electrify.SystemBalance, res synthesis.Result) (string, error) {
	sum, err := narrative.NewSummarizer()
	if err != nil {
		return "", fmt.Errorf("narrative: %w", err)
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()
	return sum.Summarize(ctx, sb, res)
}

var sectorOrder = []string{
	refdata.SectorResidential,
	refdata.SectorTertiary,
	refdata.SectorIndustry,
	refdata.SectorTransport,
	refdata.SectorAgriculture,
	refdata.SectorNonEnergy,
}

func printScenario(sb electrify.SystemBalance, res synthesis.Result, run store.Run) {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)

	fmt.Fprintf(w, "\nBilan sectoriel (TWh)\n")
	fmt.Fprintln(w, "secteur\tactuel\telec\tH2\tbio/EnR\tfossile\tcible\treduction")
	for _, name := range sectorOrder {
		b := sb.Sectors[name]
		fmt.Fprintf(w, "%s\t%.0f\t%.1f\t%.1f\t%.1f\t%.1f\t%.1f\t%.0f%%\n",
			name, b.CurrentTWh, b.ElecTWh, b.H2TWh, b.BioEnrTWh, b.FossilResidualTWh,
			b.TargetTotalTWh(), b.ReductionPct()*100)
	}
	fmt.Fprintf(w, "total\t%.0f\t%.1f\t%.1f\t%.1f\t%.1f\t\t\n",
		sb.CurrentTotalTWh, sb.DirectElectricityTWh, sb.H2DemandTWh,
		sb.BioEnrTWh, sb.FossilResidualTWh)

	fmt.Fprintf(w, "\nSystème\n")
	fmt.Fprintf(w, "électricité directe\t%.1f TWh\n", sb.DirectElectricityTWh)
	fmt.Fprintf(w, "électrolyse\t%.1f TWh\n", sb.H2ProductionElecTWh)
	fmt.Fprintf(w, "électricité totale\t%.1f TWh\n", sb.TotalElectricityTWh)
	fmt.Fprintf(w, "backup\t%.1f TWh\n", res.BackupTWh)
	fmt.Fprintf(w, "combustible backup\t%.1f TWh\n", res.FuelTWh)
	fmt.Fprintf(w, "pointe de déficit\t%.1f GW\n", res.PeakDeficitGW)
	w.Flush()

	printTariff(res.FuelTWh, sb.TotalElectricityTWh)
	fmt.Printf("\nrun %s (%s)\n", run.ID, run.Label)
}

func printTariff(fuelTWh, consumptionTWh float64) {
	cfg := tarif.DefaultConfig().WithScenario(fuelTWh, consumptionTWh)
	bd, err := tarif.Equilibrium(cfg)
	if err != nil {
		log.Printf("tariff: %v", err)
		return
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "\nTarif d'équilibre (€/MWh)\n")
	fmt.Fprintf(w, "production\t%s\n", bd.ProductionPerMWh.StringFixed(1))
	fmt.Fprintf(w, "réseau\t%s\n", bd.GridPerMWh.StringFixed(1))
	fmt.Fprintf(w, "services\t%s\n", bd.ServicesPerMWh.StringFixed(1))
	fmt.Fprintf(w, "taxes\t%s\n", bd.TaxesPerMWh.StringFixed(1))
	fmt.Fprintf(w, "total TTC\t%s\n", bd.TotalInclTax.StringFixed(1))
	w.Flush()
}

type downloadCmd struct {
	Source string `help:"Data source to refresh." enum:"all,rte,pvgis,meteo" default:"all"`
	Year   int    `help:"éCO2mix year to average." default:"2023"`
}

func (c *downloadCmd) Run(g *cli) error {
	st, db, err := openStore(g.DB)
	if err != nil {
		return err
	}
	defer db.Close()

	if c.Source == "all" || c.Source == "rte" {
		log.Printf("downloading éCO2mix %d monthly averages", c.Year)
		avg, err := ingest.NewRTEClient().FetchMonthlyAverages(c.Year)
		if err != nil {
			return fmt.Errorf("rte: %w", err)
		}
		if err := st.SaveProductionAverages(store.SourceNuclear, avg.NuclearGW); err != nil {
			return fmt.Errorf("save nuclear averages: %w", err)
		}
		if err := st.SaveProductionAverages(store.SourceHydro, avg.HydroGW); err != nil {
			return fmt.Errorf("save hydro averages: %w", err)
		}
	}

	if c.Source == "all" || c.Source == "pvgis" {
		log.Println("downloading PVGIS hourly output for the reference locations")
		factors, err := ingest.NewPVGISClient().FetchCapacityFactors()
		if err != nil {
			return fmt.Errorf("pvgis: %w", err)
		}
		if err := st.SaveSolarFactors(factors); err != nil {
			return fmt.Errorf("save solar factors: %w", err)
		}
	}

	if c.Source == "all" || c.Source == "meteo" {
		log.Println("downloading Météo-France temperature normals")
		normals, err := ingest.NewMeteoClient().FetchNormals()
		if err != nil {
			return fmt.Errorf("meteo: %w", err)
		}
		if err := st.SaveTemperatureNormals(normals, "meteo_france"); err != nil {
			return fmt.Errorf("save normals: %w", err)
		}
	}

	if err := st.SetMetadata("last_download", time.Now().UTC().Format(time.RFC3339)); err != nil {
		return fmt.Errorf("record download time: %w", err)
	}
	log.Println("done")
	return nil
}

type reportCmd struct {
	RunID     string `help:"Run to report on; defaults to the most recent."`
	Narrative bool   `help:"Generate a written commentary (requires OPENAI_API_KEY)."`
}

func (c *reportCmd) Run(g *cli) error {
	st, db, err := openStore(g.DB)
	if err != nil {
		return err
	}
	defer db.Close()

	var run *store.Run
	if c.RunID != "" {
		id, err := uuid.Parse(c.RunID)
		if err != nil {
			return fmt.Errorf("parse run id: %w", err)
		}
		run, err = st.GetRun(id)
		if err != nil {
			return fmt.Errorf("load run: %w", err)
		}
	} else {
		run, err = st.GetLatestRun()
		if err != nil {
			return fmt.Errorf("load latest run: %w", err)
		}
	}
	if run == nil {
		return fmt.Errorf("no stored run found, use the run command first")
	}

	balances, err := st.GetSectorBalances(run.ID)
	if err != nil {
		return fmt.Errorf("load sector balances: %w", err)
	}
	records, err := st.GetSynthesisRecords(run.ID)
	if err != nil {
		return fmt.Errorf("load synthesis records: %w", err)
	}

	sb, err := electrify.SystemFromSectors(balances, run.ElectrolyseEfficiency)
	if err != nil {
		return fmt.Errorf("rebuild system balance: %w", err)
	}

	res := synthesis.Result{
		Records:   records,
		BackupTWh: run.BackupTWh,
		FuelTWh:   run.FuelTWh,
	}
	for _, rec := range records {
		if gw := rec.DeficitKW / 1e6; gw > res.PeakDeficitGW {
			res.PeakDeficitGW = gw
		}
	}

	printScenario(sb, res, *run)
	printMonthlyBackup(records)

	if c.Narrative {
		text, err := summarize(sb, res)
		if err != nil {
			return err
		}
		fmt.Println()
		fmt.Println(text)
	}
	return nil
}

func printMonthlyBackup(records []synthesis.Record) {
	monthly := chart.MonthlyBackup(records)

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "\nBackup par mois (TWh)\n")
	for _, m := range temporal.Months() {
		fmt.Fprintf(w, "%s\t%.2f\n", m, monthly[m])
	}
	w.Flush()
}
