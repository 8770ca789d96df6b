package store

import (
	"database/sql"
	"fmt"
	"log"
	"time"
)

type migration struct {
	Version     int
	Description string
	SQL         string
}

var migrations = []migration{
	{
		Version:     1,
		Description: "Initial schema",
		SQL: `
CREATE TABLE IF NOT EXISTS runs (
    run_id TEXT PRIMARY KEY,
    created_at DATETIME NOT NULL,
    label TEXT,
    solar_gwc REAL,
    electrolyse_efficiency REAL,
    plant_efficiency REAL,
    backup_twh REAL,
    fuel_twh REAL,
    params_json TEXT
);

CREATE TABLE IF NOT EXISTS sector_balances (
    run_id TEXT NOT NULL REFERENCES runs(run_id),
    sector TEXT NOT NULL,
    current_twh REAL,
    elec_twh REAL,
    h2_twh REAL,
    bio_twh REAL,
    fossil_twh REAL,
    PRIMARY KEY (run_id, sector)
);

CREATE TABLE IF NOT EXISTS synthesis_records (
    run_id TEXT NOT NULL REFERENCES runs(run_id),
    month INTEGER NOT NULL,
    slot INTEGER NOT NULL,
    base_kw REAL,
    solar_kw REAL,
    production_kw REAL,
    consumption_kw REAL,
    deficit_kw REAL,
    surplus_kw REAL,
    backup_twh REAL,
    PRIMARY KEY (run_id, month, slot)
);

CREATE TABLE IF NOT EXISTS metadata (
    key TEXT PRIMARY KEY,
    value TEXT,
    updated_at DATETIME
);

CREATE INDEX IF NOT EXISTS idx_runs_created ON runs(created_at);
`,
	},
	{
		Version:     2,
		Description: "Downloaded reference series: temperature normals, production averages, solar factors",
		SQL: `
CREATE TABLE IF NOT EXISTS temperature_normals (
    month INTEGER PRIMARY KEY,
    temp_c REAL NOT NULL,
    source TEXT,
    fetched_at DATETIME
);

CREATE TABLE IF NOT EXISTS production_averages (
    source TEXT NOT NULL,
    month INTEGER NOT NULL,
    avg_gw REAL NOT NULL,
    fetched_at DATETIME,
    PRIMARY KEY (source, month)
);

CREATE TABLE IF NOT EXISTS solar_factors (
    month INTEGER NOT NULL,
    slot INTEGER NOT NULL,
    capacity_factor REAL NOT NULL,
    fetched_at DATETIME,
    PRIMARY KEY (month, slot)
);
`,
	},
}

func (s *Store) Migrate() error {
	if err := s.ensureMigrationsTable(); err != nil {
		return fmt.Errorf("ensure migrations table: %w", err)
	}

	applied, err := s.getAppliedMigrations()
	if err != nil {
		return fmt.Errorf("get applied migrations: %w", err)
	}

	for _, m := range migrations {
		if applied[m.Version] {
			continue
		}

		log.Printf("migrations: applying %d - %s", m.Version, m.Description)

		tx, err := s.db.Begin()
		if err != nil {
			return fmt.Errorf("begin tx for migration %d: %w", m.Version, err)
		}

		if _, err := tx.Exec(m.SQL); err != nil {
			tx.Rollback()
			return fmt.Errorf("execute migration %d: %w", m.Version, err)
		}

		if _, err := tx.Exec(
			"INSERT INTO schema_migrations (version, description, applied_at) VALUES (?, ?, ?)",
			m.Version, m.Description, time.Now().UTC(),
		); err != nil {
			tx.Rollback()
			return fmt.Errorf("record migration %d: %w", m.Version, err)
		}

		if err := tx.Commit(); err != nil {
			return fmt.Errorf("commit migration %d: %w", m.Version, err)
		}

		log.Printf("migrations: completed %d", m.Version)
	}

	return nil
}

func (s *Store) ensureMigrationsTable() error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			description TEXT,
			applied_at DATETIME
		)
	`)
	return err
}

func (s *Store) getAppliedMigrations() (map[int]bool, error) {
	rows, err := s.db.Query("SELECT version FROM schema_migrations")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	applied := make(map[int]bool)
	for rows.Next() {
		var version int
		if err := rows.Scan(&version); err != nil {
			return nil, err
		}
		applied[version] = true
	}
	return applied, rows.Err()
}

func (s *Store) MigrationVersion() (int, error) {
	var version sql.NullInt64
	err := s.db.QueryRow("SELECT MAX(version) FROM schema_migrations").Scan(&version)
	if err != nil {
		return 0, err
	}
	if !version.Valid {
		return 0, nil
	}
	return int(version.Int64), nil
}
