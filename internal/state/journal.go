// Package state persists a per-project journal of hook invocations.
//
// The journal exists only so `nudge status` can show how often each hook has
// fired. Writes from hook commands are best-effort: a broken or locked
// database never affects advisory output.
package state

import (
	"context"
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

// Journal records hook invocations in SQLite.
type Journal struct {
	db        *sql.DB
	projectID string
}

// Open opens (and if needed bootstraps) the journal database at dbPath.
func Open(dbPath, projectID string) (*Journal, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA synchronous = NORMAL",
		"PRAGMA temp_store = MEMORY",
	}

	ctx := context.Background()
	for _, pragma := range pragmas {
		if _, err := db.ExecContext(ctx, pragma); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("failed to set pragma: %w", err)
		}
	}

	if err := runSchemaMigration(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to run schema migration: %w", err)
	}

	return &Journal{db: db, projectID: projectID}, nil
}

// runSchemaMigration ensures the invocations table exists
func runSchemaMigration(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS invocations (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			project_id TEXT NOT NULL,
			hook TEXT NOT NULL,
			recorded_at INTEGER NOT NULL DEFAULT (unixepoch())
		);
		CREATE INDEX IF NOT EXISTS idx_invocations_project ON invocations(project_id, hook);
	`)
	return err //nolint:wrapcheck // Schema migration error is self-explanatory
}

// Record stores one invocation of the named hook.
func (j *Journal) Record(ctx context.Context, hook string) error {
	_, err := j.db.ExecContext(ctx,
		"INSERT INTO invocations (project_id, hook) VALUES (?, ?)",
		j.projectID, hook)
	if err != nil {
		return fmt.Errorf("failed to record invocation: %w", err)
	}
	return nil
}

// Counts returns the number of recorded invocations per hook for this project.
func (j *Journal) Counts(ctx context.Context) (map[string]int64, error) {
	rows, err := j.db.QueryContext(ctx,
		"SELECT hook, COUNT(*) FROM invocations WHERE project_id = ? GROUP BY hook",
		j.projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to query invocation counts: %w", err)
	}
	defer func() { _ = rows.Close() }()

	counts := make(map[string]int64)
	for rows.Next() {
		var hook string
		var count int64
		if err := rows.Scan(&hook, &count); err != nil {
			return nil, fmt.Errorf("failed to scan invocation count: %w", err)
		}
		counts[hook] = count
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate invocation counts: %w", err)
	}
	return counts, nil
}

// Close closes the journal database.
func (j *Journal) Close() error {
	if j.db != nil {
		return j.db.Close() //nolint:wrapcheck // Database close error is self-explanatory
	}
	return nil
}
