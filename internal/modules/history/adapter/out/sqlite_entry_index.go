package out

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"breathe/internal/modules/history/domain"
	historyout "breathe/internal/modules/history/port/out"

	_ "modernc.org/sqlite"
)

type SQLiteEntryIndex struct {
	db *sql.DB
}

func NewSQLiteEntryIndex(dbPath string) (historyout.EntryIndex, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	index := &SQLiteEntryIndex{db: db}
	if err := index.ensureSchema(context.Background()); err != nil {
		return nil, err
	}
	return index, nil
}

func (s *SQLiteEntryIndex) ensureSchema(ctx context.Context) error {
	const ddl = `
CREATE TABLE IF NOT EXISTS entries (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  ts INTEGER NOT NULL,
  phase TEXT NOT NULL,
  seconds INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS entries_ts ON entries (ts);
`
	if _, err := s.db.ExecContext(ctx, ddl); err != nil {
		return fmt.Errorf("create entries table: %w", err)
	}
	return nil
}

func (s *SQLiteEntryIndex) Insert(ctx context.Context, entry domain.Entry) error {
	const stmt = `INSERT INTO entries (ts, phase, seconds) VALUES (?, ?, ?)`
	if _, err := s.db.ExecContext(ctx, stmt, entry.Timestamp.Unix(), entry.Phase, entry.Seconds); err != nil {
		return fmt.Errorf("insert entry: %w", err)
	}
	return nil
}

// QueryRange returns entries with ts >= from in insertion order; a zero
// from returns everything.
func (s *SQLiteEntryIndex) QueryRange(ctx context.Context, from time.Time) ([]domain.Entry, error) {
	query := `SELECT ts, phase, seconds FROM entries ORDER BY id`
	args := []any{}
	if !from.IsZero() {
		query = `SELECT ts, phase, seconds FROM entries WHERE ts >= ? ORDER BY id`
		args = append(args, from.Unix())
	}
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query entries: %w", err)
	}
	defer rows.Close()

	entries := []domain.Entry{}
	for rows.Next() {
		var ts int64
		var phase string
		var seconds int
		if err := rows.Scan(&ts, &phase, &seconds); err != nil {
			return nil, fmt.Errorf("scan entry: %w", err)
		}
		entries = append(entries, domain.Entry{Timestamp: time.Unix(ts, 0), Phase: phase, Seconds: seconds})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate entries: %w", err)
	}
	return entries, nil
}

func (s *SQLiteEntryIndex) Reset(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM entries`); err != nil {
		return fmt.Errorf("reset entries: %w", err)
	}
	return nil
}
