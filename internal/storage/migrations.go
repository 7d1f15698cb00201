package storage

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
)

// ExpectedSchemaVersion is the latest schema version that the application expects.
const ExpectedSchemaVersion = 2

// Migration represents a database schema migration.
type Migration struct {
	Up          func(*sql.Tx) error
	Description string
	Version     int
}

var migrations = []Migration{
	{
		Version:     1,
		Description: "Initial appraisal schema",
		Up: func(tx *sql.Tx) error {
			queries := []string{
				`CREATE TABLE IF NOT EXISTS appraisals (
					id TEXT PRIMARY KEY,
					name TEXT NOT NULL,
					basis TEXT NOT NULL,
					adjustment_mode TEXT NOT NULL,
					basis_size REAL NOT NULL DEFAULT 0,
					land_only INTEGER NOT NULL DEFAULT 0,
					created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
					updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
				)`,

				`CREATE TABLE IF NOT EXISTS comparables (
					id TEXT NOT NULL,
					appraisal_id TEXT NOT NULL,
					position INTEGER NOT NULL,
					name TEXT,
					sale_price REAL NOT NULL DEFAULT 0,
					basis_size REAL NOT NULL DEFAULT 0,
					land_size_sqft REAL NOT NULL DEFAULT 0,
					weight REAL NOT NULL DEFAULT 0,
					PRIMARY KEY (appraisal_id, id),
					FOREIGN KEY (appraisal_id) REFERENCES appraisals(id) ON DELETE CASCADE
				)`,
				`CREATE INDEX idx_comparables_appraisal ON comparables(appraisal_id)`,

				`CREATE TABLE IF NOT EXISTS adjustments (
					id INTEGER PRIMARY KEY AUTOINCREMENT,
					appraisal_id TEXT NOT NULL,
					comparable_id TEXT NOT NULL,
					position INTEGER NOT NULL,
					key TEXT NOT NULL,
					kind TEXT NOT NULL,
					raw_value TEXT,
					delta REAL NOT NULL DEFAULT 0,
					FOREIGN KEY (appraisal_id, comparable_id)
						REFERENCES comparables(appraisal_id, id) ON DELETE CASCADE
				)`,
				`CREATE INDEX idx_adjustments_comparable ON adjustments(appraisal_id, comparable_id)`,

				`CREATE TABLE IF NOT EXISTS income_inputs (
					appraisal_id TEXT PRIMARY KEY,
					net_operating_income REAL NOT NULL DEFAULT 0,
					cap_rate_low REAL NOT NULL DEFAULT 0,
					cap_rate_market REAL NOT NULL DEFAULT 0,
					cap_rate_high REAL NOT NULL DEFAULT 0,
					eval_weight REAL NOT NULL DEFAULT 0,
					FOREIGN KEY (appraisal_id) REFERENCES appraisals(id) ON DELETE CASCADE
				)`,
			}

			for _, query := range queries {
				if _, err := tx.Exec(query); err != nil {
					return fmt.Errorf("failed to execute query: %w", err)
				}
			}
			return nil
		},
	},
	{
		Version:     2,
		Description: "Add conclusions with manual override state",
		Up: func(tx *sql.Tx) error {
			_, err := tx.Exec(`
				CREATE TABLE IF NOT EXISTS conclusions (
					appraisal_id TEXT PRIMARY KEY,
					exact_value REAL NOT NULL DEFAULT 0,
					displayed_value REAL NOT NULL DEFAULT 0,
					manual_override INTEGER NOT NULL DEFAULT 0,
					updated_at DATETIME DEFAULT CURRENT_TIMESTAMP,
					FOREIGN KEY (appraisal_id) REFERENCES appraisals(id) ON DELETE CASCADE
				)
			`)
			return err
		},
	},
}

// Migrate brings the schema up to the expected version.
func (s *SQLiteStorage) Migrate(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS schema_versions (
			version INTEGER PRIMARY KEY,
			description TEXT,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`); err != nil {
		return fmt.Errorf("failed to create schema_versions table: %w", err)
	}

	var current int
	err := s.db.QueryRowContext(ctx, `SELECT COALESCE(MAX(version), 0) FROM schema_versions`).Scan(&current)
	if err != nil {
		return fmt.Errorf("failed to read schema version: %w", err)
	}

	for _, m := range migrations {
		if m.Version <= current {
			continue
		}

		slog.Info("Applying migration", "version", m.Version, "description", m.Description)

		if err := s.withTx(ctx, func(tx *sql.Tx) error {
			if err := m.Up(tx); err != nil {
				return fmt.Errorf("migration %d failed: %w", m.Version, err)
			}
			if _, err := tx.Exec(`INSERT INTO schema_versions (version, description) VALUES (?, ?)`,
				m.Version, m.Description); err != nil {
				return fmt.Errorf("failed to record migration %d: %w", m.Version, err)
			}
			return nil
		}); err != nil {
			return err
		}
	}

	var finalVersion int
	if err := s.db.QueryRowContext(ctx, `SELECT COALESCE(MAX(version), 0) FROM schema_versions`).Scan(&finalVersion); err != nil {
		return fmt.Errorf("failed to verify schema version: %w", err)
	}
	if finalVersion != ExpectedSchemaVersion {
		return fmt.Errorf("database schema version mismatch: expected %d, got %d", ExpectedSchemaVersion, finalVersion)
	}

	return nil
}
