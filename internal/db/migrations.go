package db

import "fmt"

// migrate runs database migrations.
func (s *SQLite) migrate() error {
	query := `
		CREATE TABLE IF NOT EXISTS grids (
			id           INTEGER PRIMARY KEY AUTOINCREMENT,
			name         TEXT NOT NULL UNIQUE,
			start_date   TEXT,
			unit_minutes INTEGER NOT NULL DEFAULT 15,
			num_days     INTEGER NOT NULL DEFAULT 0,
			created_at   TEXT NOT NULL
		);

		CREATE TABLE IF NOT EXISTS cells (
			grid_id     INTEGER NOT NULL REFERENCES grids(id),
			day_index   INTEGER NOT NULL,
			position    INTEGER NOT NULL,
			is_gap      INTEGER NOT NULL DEFAULT 0,
			number      TEXT,
			external_id TEXT,
			reserved    INTEGER NOT NULL DEFAULT 0,
			selected    INTEGER NOT NULL DEFAULT 0,
			periods     INTEGER NOT NULL DEFAULT 1,
			PRIMARY KEY (grid_id, day_index, position)
		);

		CREATE TABLE IF NOT EXISTS decisions (
			id            INTEGER PRIMARY KEY AUTOINCREMENT,
			session       TEXT NOT NULL,
			action        TEXT NOT NULL CHECK(action IN ('select', 'deselect', 'replace')),
			add_day       TEXT,
			add_number    TEXT,
			remove_day    TEXT,
			remove_number TEXT,
			decision      TEXT NOT NULL CHECK(decision IN ('accept', 'reject')),
			created_at    TEXT NOT NULL
		);

		CREATE INDEX IF NOT EXISTS idx_decisions_session ON decisions(session);
	`

	if _, err := s.db.Exec(query); err != nil {
		return fmt.Errorf("creating tables: %w", err)
	}

	return nil
}
