package store

import (
	"time"

	"github.com/mlevant/wattfrance/internal/temporal"
)

// Production average sources.
const (
	SourceNuclear = "nucleaire"
	SourceHydro   = "hydraulique"
)

// SaveTemperatureNormals replaces the monthly temperature normals used
// by the heating model.
func (s *Store) SaveTemperatureNormals(normals [temporal.MonthCount]float64, source string) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	now := time.Now().UTC()
	for m, tempC := range normals {
		if _, err := tx.Exec(`
			INSERT INTO temperature_normals (month, temp_c, source, fetched_at)
			VALUES (?, ?, ?, ?)
			ON CONFLICT(month) DO UPDATE SET temp_c = excluded.temp_c, source = excluded.source, fetched_at = excluded.fetched_at
		`, m, tempC, source, now); err != nil {
			tx.Rollback()
			return err
		}
	}
	return tx.Commit()
}

// GetTemperatureNormals returns the stored normals and whether a full
// set of twelve months was present.
func (s *Store) GetTemperatureNormals() ([temporal.MonthCount]float64, bool, error) {
	var normals [temporal.MonthCount]float64
	rows, err := s.db.Query("SELECT month, temp_c FROM temperature_normals")
	if err != nil {
		return normals, false, err
	}
	defer rows.Close()

	count := 0
	for rows.Next() {
		var m int
		var tempC float64
		if err := rows.Scan(&m, &tempC); err != nil {
			return normals, false, err
		}
		if m >= 0 && m < temporal.MonthCount {
			normals[m] = tempC
			count++
		}
	}
	return normals, count == temporal.MonthCount, rows.Err()
}

// SaveProductionAverages replaces the monthly production averages for a
// source (nuclear or hydro), in GW.
func (s *Store) SaveProductionAverages(source string, monthlyGW [temporal.MonthCount]float64) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	now := time.Now().UTC()
	for m, gw := range monthlyGW {
		if _, err := tx.Exec(`
			INSERT INTO production_averages (source, month, avg_gw, fetched_at)
			VALUES (?, ?, ?, ?)
			ON CONFLICT(source, month) DO UPDATE SET avg_gw = excluded.avg_gw, fetched_at = excluded.fetched_at
		`, source, m, gw, now); err != nil {
			tx.Rollback()
			return err
		}
	}
	return tx.Commit()
}

func (s *Store) GetProductionAverages(source string) ([temporal.MonthCount]float64, bool, error) {
	var out [temporal.MonthCount]float64
	rows, err := s.db.Query("SELECT month, avg_gw FROM production_averages WHERE source = ?", source)
	if err != nil {
		return out, false, err
	}
	defer rows.Close()

	count := 0
	for rows.Next() {
		var m int
		var gw float64
		if err := rows.Scan(&m, &gw); err != nil {
			return out, false, err
		}
		if m >= 0 && m < temporal.MonthCount {
			out[m] = gw
			count++
		}
	}
	return out, count == temporal.MonthCount, rows.Err()
}

// SaveSolarFactors replaces the per-period solar capacity factors.
func (s *Store) SaveSolarFactors(factors [temporal.PeriodCount]float64) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	now := time.Now().UTC()
	for _, p := range temporal.Periods() {
		if _, err := tx.Exec(`
			INSERT INTO solar_factors (month, slot, capacity_factor, fetched_at)
			VALUES (?, ?, ?, ?)
			ON CONFLICT(month, slot) DO UPDATE SET capacity_factor = excluded.capacity_factor, fetched_at = excluded.fetched_at
		`, int(p.Month), int(p.Slot), factors[p.Index()], now); err != nil {
			tx.Rollback()
			return err
		}
	}
	return tx.Commit()
}

func (s *Store) GetSolarFactors() ([temporal.PeriodCount]float64, bool, error) {
	var out [temporal.PeriodCount]float64
	rows, err := s.db.Query("SELECT month, slot, capacity_factor FROM solar_factors")
	if err != nil {
		return out, false, err
	}
	defer rows.Close()

	count := 0
	for rows.Next() {
		var m, sl int
		var cf float64
		if err := rows.Scan(&m, &sl, &cf); err != nil {
			return out, false, err
		}
		if m >= 0 && m < temporal.MonthCount && sl >= 0 && sl < temporal.SlotCount {
			out[temporal.Period{Month: temporal.Month(m), Slot: temporal.Slot(sl)}.Index()] = cf
			count++
		}
	}
	return out, count == temporal.PeriodCount, rows.Err()
}
