package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations. Statements are idempotent; duplicate
// column errors from re-run ALTER TABLE statements are tolerated.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS assessments (
		id TEXT PRIMARY KEY,
		company TEXT NOT NULL DEFAULT '',
		employees INTEGER NOT NULL DEFAULT 0,
		turnover_m REAL NOT NULL DEFAULT 0,
		balance_m REAL NOT NULL DEFAULT 0,
		eligibility_confirmed INTEGER NOT NULL DEFAULT 0,
		is_sme INTEGER,
		allow_non_sme INTEGER NOT NULL DEFAULT 0,
		sector_confirmed INTEGER NOT NULL DEFAULT 0,
		is_logistics INTEGER,
		allow_non_logistics INTEGER NOT NULL DEFAULT 0,
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS answers (
		assessment_id TEXT NOT NULL,
		dimension TEXT NOT NULL,
		concept TEXT NOT NULL,
		check_a INTEGER NOT NULL DEFAULT 0,
		check_b INTEGER NOT NULL DEFAULT 0,
		check_c INTEGER NOT NULL DEFAULT 0,
		check_rt INTEGER NOT NULL DEFAULT 0,
		check_none INTEGER NOT NULL DEFAULT 0,
		override_enabled INTEGER NOT NULL DEFAULT 0,
		override_level INTEGER,
		updated_at TEXT NOT NULL,
		PRIMARY KEY (assessment_id, dimension, concept),
		FOREIGN KEY (assessment_id) REFERENCES assessments(id) ON DELETE CASCADE
	)`,

	`CREATE INDEX IF NOT EXISTS idx_answers_assessment ON answers(assessment_id)`,
}
