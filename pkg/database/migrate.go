package database

import (
	"context"
	"database/sql"
	"fmt"
)

var schema = []string{
	`CREATE TABLE IF NOT EXISTS assessment_results (
		id             TEXT PRIMARY KEY,
		user_id        TEXT NOT NULL,
		instrument     TEXT NOT NULL,
		taken_at       TIMESTAMP NOT NULL,
		score          INTEGER NOT NULL,
		severity_label TEXT NOT NULL,
		description    TEXT NOT NULL,
		color          TEXT NOT NULL,
		risk_flag      INTEGER NOT NULL DEFAULT 0,
		answers        TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_assessment_results_user
		ON assessment_results (user_id, taken_at)`,
	`CREATE TABLE IF NOT EXISTS journal_entries (
		id         TEXT PRIMARY KEY,
		user_id    TEXT NOT NULL,
		mood       INTEGER NOT NULL,
		note       TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMP NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_journal_entries_user
		ON journal_entries (user_id, created_at)`,
}

// Migrate creates the schema. Statements are idempotent, so running the
// migrate command against an existing database is safe.
func Migrate(ctx context.Context, db *sql.DB) error {
	for _, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("run migration: %w", err)
		}
	}
	return nil
}
