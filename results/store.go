// Package results - SQLite persistence of survival and phase tables.
package results

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // pure-Go sqlite driver

	"github.com/katalvlaran/godelsim/batch"
	"github.com/katalvlaran/godelsim/phase"
)

// Store keeps simulation tables in a SQLite database. Rows are keyed by
// a run ID so repeated sweeps accumulate instead of overwriting.
type Store struct {
	db *sql.DB
}

// NewRunID returns a fresh identifier for one sweep's rows.
func NewRunID() string { return uuid.New().String() }

// Open opens (or creates) the database at path and ensures the schema.
// Use ":memory:" for an ephemeral store.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("results: opening store: %w", err)
	}
	s := &Store{db: db}
	if err = s.init(); err != nil {
		_ = db.Close()
		return nil, err
	}
	return s, nil
}

// Close releases the underlying database handle.
func (s *Store) Close() error { return s.db.Close() }

func (s *Store) init() error {
	schema := []string{
		`CREATE TABLE IF NOT EXISTS survival (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			run_id TEXT NOT NULL,
			noise_level REAL NOT NULL,
			complexity INTEGER NOT NULL,
			survival_rate REAL NOT NULL,
			created_at TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS phase_grid (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			run_id TEXT NOT NULL,
			omega REAL NOT NULL,
			noise REAL NOT NULL,
			r_crit REAL,
			geometry_has_ctc INTEGER NOT NULL,
			l_info REAL NOT NULL,
			l_combined REAL NOT NULL,
			phase TEXT NOT NULL,
			created_at TEXT NOT NULL
		)`,
	}
	for _, stmt := range schema {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("results: creating schema: %w", err)
		}
	}
	return nil
}

// SaveSurvival persists one survival table under runID, tagged with the
// noise level it was produced at.
func (s *Store) SaveSurvival(runID string, noiseLevel float64, records []batch.SurvivalRecord) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("results: beginning survival insert: %w", err)
	}
	now := time.Now().UTC().Format(time.RFC3339)
	for _, rec := range records {
		if _, err = tx.Exec(
			`INSERT INTO survival (run_id, noise_level, complexity, survival_rate, created_at)
			 VALUES (?, ?, ?, ?, ?)`,
			runID, noiseLevel, rec.Complexity, rec.SurvivalRate, now,
		); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("results: inserting survival row: %w", err)
		}
	}
	return tx.Commit()
}

// LoadSurvival returns the survival table of a run ordered by complexity.
func (s *Store) LoadSurvival(runID string) ([]batch.SurvivalRecord, error) {
	rows, err := s.db.Query(
		`SELECT complexity, survival_rate FROM survival WHERE run_id = ? ORDER BY complexity`,
		runID,
	)
	if err != nil {
		return nil, fmt.Errorf("results: querying survival: %w", err)
	}
	defer rows.Close()

	var out []batch.SurvivalRecord
	for rows.Next() {
		var rec batch.SurvivalRecord
		if err = rows.Scan(&rec.Complexity, &rec.SurvivalRate); err != nil {
			return nil, fmt.Errorf("results: scanning survival row: %w", err)
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

// SavePhaseGrid persists one phase diagram under runID. The critical
// radius column is NULL for points without a transition.
func (s *Store) SavePhaseGrid(runID string, points []phase.GridPoint) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("results: beginning phase insert: %w", err)
	}
	now := time.Now().UTC().Format(time.RFC3339)
	for _, p := range points {
		var rCrit any
		if p.HasRCrit {
			rCrit = p.RCrit
		}
		if _, err = tx.Exec(
			`INSERT INTO phase_grid (run_id, omega, noise, r_crit, geometry_has_ctc, l_info, l_combined, phase, created_at)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			runID, p.Omega, p.Noise, rCrit, p.GeometryHasCTC, p.InfoIndex, p.CombinedIndex, string(p.Phase), now,
		); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("results: inserting phase row: %w", err)
		}
	}
	return tx.Commit()
}

// LoadPhaseGrid returns the phase diagram of a run ordered by insertion,
// which preserves the sweep's omega-outermost order.
func (s *Store) LoadPhaseGrid(runID string) ([]phase.GridPoint, error) {
	rows, err := s.db.Query(
		`SELECT omega, noise, r_crit, geometry_has_ctc, l_info, l_combined, phase
		 FROM phase_grid WHERE run_id = ? ORDER BY id`,
		runID,
	)
	if err != nil {
		return nil, fmt.Errorf("results: querying phase grid: %w", err)
	}
	defer rows.Close()

	var out []phase.GridPoint
	for rows.Next() {
		var (
			p     phase.GridPoint
			rCrit sql.NullFloat64
			label string
		)
		if err = rows.Scan(&p.Omega, &p.Noise, &rCrit, &p.GeometryHasCTC, &p.InfoIndex, &p.CombinedIndex, &label); err != nil {
			return nil, fmt.Errorf("results: scanning phase row: %w", err)
		}
		if rCrit.Valid {
			p.RCrit = rCrit.Float64
			p.HasRCrit = true
		}
		p.Phase = phase.Phase(label)
		out = append(out, p)
	}
	return out, rows.Err()
}
