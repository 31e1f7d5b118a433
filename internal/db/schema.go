package db

import (
	"context"
	"fmt"
)

// Bootstrap creates the tables the store needs if they do not exist yet.
// Schema migration tooling is out of scope; the schema is small enough that
// idempotent creation at startup covers it.
func Bootstrap(ctx context.Context, d *DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS users (
			username   TEXT PRIMARY KEY,
			created    INTEGER NOT NULL,
			last_login INTEGER NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS roadmaps (
			id      TEXT PRIMARY KEY,
			user_id TEXT NOT NULL,
			created INTEGER NOT NULL,
			updated INTEGER NOT NULL,
			doc     TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_roadmaps_user ON roadmaps (user_id, created DESC)`,
	}

	for _, stmt := range stmts {
		if _, err := d.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("bootstrap schema: %w", err)
		}
	}
	return nil
}
