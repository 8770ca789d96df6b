// Package store persists scenario runs and downloaded reference series
// in SQLite. The computation engine itself stays stateless; this layer
// only records inputs and outputs for later reporting.
package store

import (
	"database/sql"
	"time"

	"github.com/google/uuid"

	"github.com/mlevant/wattfrance/internal/electrify"
	"github.com/mlevant/wattfrance/internal/synthesis"
	"github.com/mlevant/wattfrance/internal/temporal"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// Run is one persisted scenario execution.
type Run struct {
	ID                    uuid.UUID
	CreatedAt             time.Time
	Label                 string
	SolarGWc              float64
	ElectrolyseEfficiency float64
	PlantEfficiency       float64
	BackupTWh             float64
	FuelTWh               float64
	ParamsJSON            string
}

func (s *Store) InsertRun(r Run) error {
	_, err := s.db.Exec(`
		INSERT INTO runs (run_id, created_at, label, solar_gwc, electrolyse_efficiency, plant_efficiency, backup_twh, fuel_twh, params_json)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, r.ID.String(), r.CreatedAt, r.Label, r.SolarGWc, r.ElectrolyseEfficiency, r.PlantEfficiency, r.BackupTWh, r.FuelTWh, r.ParamsJSON)
	return err
}

func (s *Store) GetRun(id uuid.UUID) (*Run, error) {
	row := s.db.QueryRow(`
		SELECT run_id, created_at, label, solar_gwc, electrolyse_efficiency, plant_efficiency, backup_twh, fuel_twh, params_json
		FROM runs WHERE run_id = ?
	`, id.String())
	return scanRun(row)
}

// GetLatestRun returns the most recent run, or nil when none exist.
func (s *Store) GetLatestRun() (*Run, error) {
	row := s.db.QueryRow(`
		SELECT run_id, created_at, label, solar_gwc, electrolyse_efficiency, plant_efficiency, backup_twh, fuel_twh, params_json
		FROM runs ORDER BY created_at DESC LIMIT 1
	`)
	return scanRun(row)
}

func scanRun(row *sql.Row) (*Run, error) {
	var r Run
	var id string
	err := row.Scan(&id, &r.CreatedAt, &r.Label, &r.SolarGWc, &r.ElectrolyseEfficiency, &r.PlantEfficiency, &r.BackupTWh, &r.FuelTWh, &r.ParamsJSON)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	r.ID, err = uuid.Parse(id)
	if err != nil {
		return nil, err
	}
	return &r, nil
}

func (s *Store) ListRuns() ([]Run, error) {
	rows, err := s.db.Query(`
		SELECT run_id, created_at, label, solar_gwc, electrolyse_efficiency, plant_efficiency, backup_twh, fuel_twh, params_json
		FROM runs ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		var id string
		if err := rows.Scan(&id, &r.CreatedAt, &r.Label, &r.SolarGWc, &r.ElectrolyseEfficiency, &r.PlantEfficiency, &r.BackupTWh, &r.FuelTWh, &r.ParamsJSON); err != nil {
			return nil, err
		}
		if r.ID, err = uuid.Parse(id); err != nil {
			return nil, err
		}
		runs = append(runs, r)
	}
	return runs, rows.Err()
}

func (s *Store) InsertSectorBalances(runID uuid.UUID, balances map[string]electrify.SectorBalance) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	for sector, b := range balances {
		if _, err := tx.Exec(`
			INSERT INTO sector_balances (run_id, sector, current_twh, elec_twh, h2_twh, bio_twh, fossil_twh)
			VALUES (?, ?, ?, ?, ?, ?, ?)
			ON CONFLICT(run_id, sector) DO NOTHING
		`, runID.String(), sector, b.CurrentTWh, b.ElecTWh, b.H2TWh, b.BioEnrTWh, b.FossilResidualTWh); err != nil {
			tx.Rollback()
			return err
		}
	}
	return tx.Commit()
}

func (s *Store) GetSectorBalances(runID uuid.UUID) (map[string]electrify.SectorBalance, error) {
	rows, err := s.db.Query(`
		SELECT sector, current_twh, elec_twh, h2_twh, bio_twh, fossil_twh
		FROM sector_balances WHERE run_id = ?
	`, runID.String())
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make(map[string]electrify.SectorBalance)
	for rows.Next() {
		var b electrify.SectorBalance
		if err := rows.Scan(&b.Name, &b.CurrentTWh, &b.ElecTWh, &b.H2TWh, &b.BioEnrTWh, &b.FossilResidualTWh); err != nil {
			return nil, err
		}
		out[b.Name] = b
	}
	return out, rows.Err()
}

func (s *Store) InsertSynthesisRecords(runID uuid.UUID, records []synthesis.Record) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	for _, rec := range records {
		if _, err := tx.Exec(`
			INSERT INTO synthesis_records (run_id, month, slot, base_kw, solar_kw, production_kw, consumption_kw, deficit_kw, surplus_kw, backup_twh)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
			ON CONFLICT(run_id, month, slot) DO NOTHING
		`, runID.String(), int(rec.Period.Month), int(rec.Period.Slot),
			rec.BaseKW, rec.SolarKW, rec.ProductionKW, rec.ConsumptionKW,
			rec.DeficitKW, rec.SurplusKW, rec.BackupTWh); err != nil {
			tx.Rollback()
			return err
		}
	}
	return tx.Commit()
}

func (s *Store) GetSynthesisRecords(runID uuid.UUID) ([]synthesis.Record, error) {
	rows, err := s.db.Query(`
		SELECT month, slot, base_kw, solar_kw, production_kw, consumption_kw, deficit_kw, surplus_kw, backup_twh
		FROM synthesis_records WHERE run_id = ?
		ORDER BY month, slot
	`, runID.String())
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []synthesis.Record
	for rows.Next() {
		var rec synthesis.Record
		var month, slot int
		if err := rows.Scan(&month, &slot, &rec.BaseKW, &rec.SolarKW, &rec.ProductionKW,
			&rec.ConsumptionKW, &rec.DeficitKW, &rec.SurplusKW, &rec.BackupTWh); err != nil {
			return nil, err
		}
		rec.Period = temporal.Period{Month: temporal.Month(month), Slot: temporal.Slot(slot)}
		records = append(records, rec)
	}
	return records, rows.Err()
}

func (s *Store) SetMetadata(key, value string) error {
	_, err := s.db.Exec(`
		INSERT INTO metadata (key, value, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
	`, key, value, time.Now().UTC())
	return err
}

// GetMetadata returns the stored value, or "" when the key is absent.
func (s *Store) GetMetadata(key string) (string, error) {
	var value string
	err := s.db.QueryRow("SELECT value FROM metadata WHERE key = ?", key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", nil
	}
	return value, err
}
