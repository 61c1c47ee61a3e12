// Package export writes a concert report to files other tools can read:
// a SQLite database and an iCalendar file. Exports are snapshots of one
// run; showfinder never reads them back.
package export

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"github.com/jfmyers9/showfinder/internal/concerts"
)

// Snapshot is a SQLite database holding the result of the latest run
type Snapshot struct {
	db *sql.DB
}

// OpenSnapshot opens or creates the snapshot database at dbPath.
func OpenSnapshot(dbPath string) (*Snapshot, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// One connection keeps :memory: databases consistent
	db.SetMaxOpenConns(1)

	pragmas := []string{
		"PRAGMA busy_timeout = 10000",
		"PRAGMA synchronous = NORMAL",
		"PRAGMA journal_mode = WAL",
		"PRAGMA temp_store = MEMORY",
	}

	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("failed to set pragma: %w", err)
		}
	}

	schema := `
		CREATE TABLE IF NOT EXISTS concerts (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			run_id TEXT NOT NULL,
			position INTEGER NOT NULL,
			artist TEXT NOT NULL,
			date TEXT NOT NULL,
			time TEXT NOT NULL,
			venue TEXT,
			city TEXT,
			title TEXT,
			opening_acts TEXT,
			ticket_url TEXT,
			provider TEXT,
			exported_at INTEGER NOT NULL
		);

		CREATE TABLE IF NOT EXISTS failures (
			run_id TEXT NOT NULL,
			artist TEXT NOT NULL,
			error TEXT NOT NULL
		);

		CREATE INDEX IF NOT EXISTS idx_concerts_date ON concerts(date, position);
	`

	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}

	return &Snapshot{db: db}, nil
}

// Close closes the database connection
func (s *Snapshot) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Write replaces the stored snapshot with report.
func (s *Snapshot) Write(ctx context.Context, report *concerts.Report) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for _, table := range []string{"concerts", "failures"} {
		if _, err := tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return fmt.Errorf("failed to clear %s: %w", table, err)
		}
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO concerts (run_id, position, artist, date, time, venue, city, title, opening_acts, ticket_url, provider, exported_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare statement: %w", err)
	}
	defer func() { _ = stmt.Close() }()

	now := time.Now().Unix()
	for i, e := range report.Events {
		_, err := stmt.ExecContext(ctx,
			report.RunID,
			i,
			e.Artist,
			e.Date.Format("2006-01-02"),
			e.Time,
			e.Venue,
			e.City,
			e.Title,
			strings.Join(e.OpeningActs, ", "),
			e.TicketURL,
			e.Provider,
			now,
		)
		if err != nil {
			return fmt.Errorf("failed to insert concert %d: %w", i, err)
		}
	}

	for _, f := range report.Failures {
		_, err := tx.ExecContext(ctx,
			"INSERT INTO failures (run_id, artist, error) VALUES (?, ?, ?)",
			report.RunID, f.Artist, f.Err.Error(),
		)
		if err != nil {
			return fmt.Errorf("failed to insert failure for %s: %w", f.Artist, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// Count returns the number of concerts in the snapshot
func (s *Snapshot) Count(ctx context.Context) (int, error) {
	var count int
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM concerts").Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count concerts: %w", err)
	}
	return count, nil
}

// WriteSnapshot writes report to the database at dbPath.
func WriteSnapshot(ctx context.Context, dbPath string, report *concerts.Report) error {
	snap, err := OpenSnapshot(dbPath)
	if err != nil {
		return err
	}
	defer func() { _ = snap.Close() }()

	return snap.Write(ctx, report)
}
