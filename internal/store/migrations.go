package store

import (
	"database/sql"
	"fmt"
)

type migration struct {
	version int
	name    string
	sql     string
}

var migrations = []migration{
	{
		version: 1,
		name:    "initial_schema",
		sql: `
CREATE TABLE IF NOT EXISTS schema_migrations (
  version INTEGER PRIMARY KEY,
  name TEXT NOT NULL,
  applied_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS water_intake (
  id TEXT PRIMARY KEY,
  user_id TEXT NOT NULL,
  amount_ml INTEGER NOT NULL CHECK(amount_ml >= 0),
  intake_date TEXT NOT NULL,
  logged_at DATETIME NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_water_intake_user_date ON water_intake(user_id, intake_date);
CREATE INDEX IF NOT EXISTS idx_water_intake_logged_at ON water_intake(logged_at);
`,
	},
	{
		version: 2,
		name:    "hydration_goals",
		sql: `
CREATE TABLE IF NOT EXISTS goals (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  user_id TEXT NOT NULL,
  goal_ml INTEGER NOT NULL CHECK(goal_ml > 0),
  effective_date TEXT NOT NULL,
  created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
  UNIQUE(user_id, effective_date)
);
`,
	},
	{
		version: 3,
		name:    "app_config",
		sql: `
CREATE TABLE IF NOT EXISTS app_config (
  key TEXT PRIMARY KEY,
  value TEXT NOT NULL,
  updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);
`,
	},
}

// ApplyMigrations brings the schema up to date. Each pending migration runs
// in its own transaction and is recorded in schema_migrations, so reruns are
// no-ops.
func (s *Store) ApplyMigrations() error {
	if _, err := s.db.Exec(`
CREATE TABLE IF NOT EXISTS schema_migrations (
  version INTEGER PRIMARY KEY,
  name TEXT NOT NULL,
  applied_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);
`); err != nil {
		return fmt.Errorf("%w: ensure schema_migrations table: %v", ErrPersistence, err)
	}

	for _, m := range migrations {
		var exists int
		err := s.db.QueryRow(`SELECT 1 FROM schema_migrations WHERE version = ?`, m.version).Scan(&exists)
		if err == nil {
			continue
		}
		if err != sql.ErrNoRows {
			return fmt.Errorf("%w: check migration version %d: %v", ErrPersistence, m.version, err)
		}

		tx, err := s.db.Begin()
		if err != nil {
			return fmt.Errorf("%w: begin migration tx: %v", ErrPersistence, err)
		}
		if _, err := tx.Exec(m.sql); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("%w: apply migration version %d (%s): %v", ErrPersistence, m.version, m.name, err)
		}
		if _, err := tx.Exec(`INSERT INTO schema_migrations(version, name) VALUES(?, ?)`, m.version, m.name); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("%w: record migration version %d: %v", ErrPersistence, m.version, err)
		}
		if err := tx.Commit(); err != nil {
			return fmt.Errorf("%w: commit migration version %d: %v", ErrPersistence, m.version, err)
		}
		s.log.Info("applied migration", "version", m.version, "name", m.name)
	}
	return nil
}
