// Package db provides SQLite storage for grids and the decision journal.
package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/javiermolinar/slotpick/internal/decide"
	"github.com/javiermolinar/slotpick/internal/grid"
)

var (
	_ grid.Repository  = (*SQLite)(nil)
	_ decide.Journaler = (*SQLite)(nil)
)

// SQLite implements grid.Repository and decide.Journaler using SQLite.
type SQLite struct {
	db *sql.DB
}

// New creates a new SQLite repository and runs migrations.
func New(path string) (*SQLite, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("connecting to database: %w", err)
	}

	s := &SQLite{db: db}
	if err := s.migrate(); err != nil {
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return s, nil
}

// Close releases database resources.
func (s *SQLite) Close() error {
	return s.db.Close()
}

// SaveGrid stores a grid under its name, replacing any previous version.
func (s *SQLite) SaveGrid(ctx context.Context, g *grid.Grid) error {
	if g.Name == "" {
		return fmt.Errorf("grid name is required")
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if err := deleteGridTx(ctx, tx, g.Name); err != nil && !errors.Is(err, grid.ErrGridNotFound) {
		return err
	}

	var start sql.NullString
	if !g.Start.IsZero() {
		start = sql.NullString{String: g.Start.Format(time.RFC3339), Valid: true}
	}

	result, err := tx.ExecContext(ctx,
		`INSERT INTO grids (name, start_date, unit_minutes, num_days, created_at) VALUES (?, ?, ?, ?, ?)`,
		g.Name,
		start,
		int(g.UnitOrDefault()/time.Minute),
		len(g.Days),
		time.Now().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting grid: %w", err)
	}
	gridID, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("getting last insert id: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO cells (
			grid_id, day_index, position, is_gap, number, external_id, reserved, selected, periods
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("preparing statement: %w", err)
	}
	defer func() { _ = stmt.Close() }()

	for d, day := range g.Days {
		for pos, c := range day {
			var (
				number   sql.NullString
				extID    sql.NullString
				reserved bool
				selected bool
			)
			isGap := true
			if slot, ok := c.(grid.Slot); ok {
				isGap = false
				number = sql.NullString{String: slot.Number, Valid: true}
				extID = sql.NullString{String: slot.ID, Valid: slot.ID != ""}
				reserved = slot.Reserved
				selected = slot.Selected
			}
			if _, err := stmt.ExecContext(ctx, gridID, d, pos, isGap, number, extID, reserved, selected, c.Span()); err != nil {
				return fmt.Errorf("inserting cell %d/%d: %w", d, pos, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}

	return nil
}

// LoadGrid retrieves a grid by name.
func (s *SQLite) LoadGrid(ctx context.Context, name string) (*grid.Grid, error) {
	var (
		gridID      int64
		start       sql.NullString
		unitMinutes int
		numDays     int
	)
	err := s.db.QueryRowContext(ctx,
		`SELECT id, start_date, unit_minutes, num_days FROM grids WHERE name = ?`, name,
	).Scan(&gridID, &start, &unitMinutes, &numDays)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("%s: %w", name, grid.ErrGridNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("querying grid: %w", err)
	}

	g := &grid.Grid{
		Name: name,
		Unit: time.Duration(unitMinutes) * time.Minute,
		Days: make([]grid.Day, numDays),
	}
	if start.Valid {
		g.Start, err = time.Parse(time.RFC3339, start.String)
		if err != nil {
			return nil, fmt.Errorf("parsing start date: %w", err)
		}
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT day_index, is_gap, number, external_id, reserved, selected, periods
		FROM cells
		WHERE grid_id = ?
		ORDER BY day_index, position
	`, gridID)
	if err != nil {
		return nil, fmt.Errorf("querying cells: %w", err)
	}
	defer func() { _ = rows.Close() }()

	for rows.Next() {
		var (
			day      int
			isGap    bool
			number   sql.NullString
			extID    sql.NullString
			reserved bool
			selected bool
			periods  int
		)
		if err := rows.Scan(&day, &isGap, &number, &extID, &reserved, &selected, &periods); err != nil {
			return nil, fmt.Errorf("scanning cell: %w", err)
		}
		if day < 0 || day >= numDays {
			return nil, fmt.Errorf("cell day %d out of range for grid %s", day, name)
		}

		if isGap {
			g.Days[day] = append(g.Days[day], grid.Gap{})
			continue
		}
		slot := grid.Slot{
			ID:       extID.String,
			Number:   number.String,
			Reserved: reserved,
			Selected: selected,
		}
		if periods > 1 {
			slot.Periods = periods
		}
		g.Days[day] = append(g.Days[day], slot)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating cells: %w", err)
	}

	return g, nil
}

// ListGrids returns summaries of all stored grids ordered by name.
func (s *SQLite) ListGrids(ctx context.Context) ([]grid.Summary, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT g.name, g.num_days, COALESCE(SUM(CASE WHEN c.is_gap = 0 THEN 1 ELSE 0 END), 0)
		FROM grids g
		LEFT JOIN cells c ON c.grid_id = g.id
		GROUP BY g.id
		ORDER BY g.name
	`)
	if err != nil {
		return nil, fmt.Errorf("querying grids: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var out []grid.Summary
	for rows.Next() {
		var sum grid.Summary
		if err := rows.Scan(&sum.Name, &sum.NumDays, &sum.NumSlots); err != nil {
			return nil, fmt.Errorf("scanning grid: %w", err)
		}
		out = append(out, sum)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating grids: %w", err)
	}

	return out, nil
}

// DeleteGrid removes a grid and its cells.
func (s *SQLite) DeleteGrid(ctx context.Context, name string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if err := deleteGridTx(ctx, tx, name); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}
	return nil
}

func deleteGridTx(ctx context.Context, tx *sql.Tx, name string) error {
	var gridID int64
	err := tx.QueryRowContext(ctx, `SELECT id FROM grids WHERE name = ?`, name).Scan(&gridID)
	if err == sql.ErrNoRows {
		return fmt.Errorf("%s: %w", name, grid.ErrGridNotFound)
	}
	if err != nil {
		return fmt.Errorf("querying grid: %w", err)
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM cells WHERE grid_id = ?`, gridID); err != nil {
		return fmt.Errorf("deleting cells: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM grids WHERE id = ?`, gridID); err != nil {
		return fmt.Errorf("deleting grid: %w", err)
	}
	return nil
}

// Record appends a decision to the journal.
func (s *SQLite) Record(ctx context.Context, e decide.JournalEntry) error {
	at := e.At
	if at.IsZero() {
		at = time.Now()
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO decisions (
			session, action, add_day, add_number, remove_day, remove_number, decision, created_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`,
		e.Session,
		e.Action,
		nullString(e.AddDay),
		nullString(e.AddNumber),
		nullString(e.RemoveDay),
		nullString(e.RemoveNumber),
		e.Decision,
		at.Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("inserting decision: %w", err)
	}
	return nil
}

// ListDecisions returns journal entries in the order they were recorded.
// An empty session returns entries of every session.
func (s *SQLite) ListDecisions(ctx context.Context, session string) ([]decide.JournalEntry, error) {
	query := `
		SELECT id, session, action, add_day, add_number, remove_day, remove_number, decision, created_at
		FROM decisions
	`
	var args []any
	if session != "" {
		query += ` WHERE session = ?`
		args = append(args, session)
	}
	query += ` ORDER BY id`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying decisions: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var out []decide.JournalEntry
	for rows.Next() {
		var (
			e            decide.JournalEntry
			addDay       sql.NullString
			addNumber    sql.NullString
			removeDay    sql.NullString
			removeNumber sql.NullString
			createdAt    string
		)
		err := rows.Scan(
			&e.ID,
			&e.Session,
			&e.Action,
			&addDay,
			&addNumber,
			&removeDay,
			&removeNumber,
			&e.Decision,
			&createdAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning decision: %w", err)
		}
		e.AddDay, e.AddNumber = addDay.String, addNumber.String
		e.RemoveDay, e.RemoveNumber = removeDay.String, removeNumber.String

		e.At, err = time.Parse(time.RFC3339Nano, createdAt)
		if err != nil {
			return nil, fmt.Errorf("parsing created at: %w", err)
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating decisions: %w", err)
	}

	return out, nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
