// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package transcript persists the printed lines of tour runs in SQLite so
// earlier runs can be listed, replayed and exported.
package transcript

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/typetour/pkg/types"
)

const (
	// DefaultDBPath is used when RecordConfig.DBPath is empty.
	DefaultDBPath = "typetour.db"

	defaultMaxRuns = 20

	// timeLayout has a fixed width so stored times sort lexically.
	timeLayout = "2006-01-02T15:04:05.000000000Z07:00"
)

var (
	// ErrRunNotFound is returned when a run ID has no recorded run.
	ErrRunNotFound = errors.New("run not found")

	// ErrNoDatabase is returned by OpenStore when the database file is missing.
	ErrNoDatabase = errors.New("transcript database does not exist")
)

// Store manages the transcript SQLite database.
type Store struct {
	db      *sql.DB
	maxRuns int
	now     func() time.Time
}

// NewStore opens or creates the transcript database at cfg.DBPath and
// creates the schema if it does not exist.
func NewStore(cfg types.RecordConfig) (*Store, error) {
	dbPath := databasePath(cfg)
	if dir := filepath.Dir(dbPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	maxRuns := cfg.MaxRuns
	if maxRuns <= 0 {
		maxRuns = defaultMaxRuns
	}

	s := &Store{db: db, maxRuns: maxRuns, now: time.Now}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return s, nil
}

// OpenStore opens an existing transcript database. Unlike NewStore it never
// creates the file or its directory.
func OpenStore(cfg types.RecordConfig) (*Store, error) {
	dbPath := databasePath(cfg)
	if _, err := os.Stat(dbPath); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNoDatabase, dbPath)
		}
		return nil, fmt.Errorf("checking database %s: %w", dbPath, err)
	}
	return NewStore(cfg)
}

func databasePath(cfg types.RecordConfig) string {
	if cfg.DBPath == "" {
		return DefaultDBPath
	}
	return cfg.DBPath
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS runs (
			id TEXT PRIMARY KEY,
			started_at TEXT NOT NULL,
			format TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS lines (
			run_id TEXT NOT NULL REFERENCES runs(id) ON DELETE CASCADE,
			seq INTEGER NOT NULL,
			name TEXT NOT NULL,
			section TEXT NOT NULL,
			text TEXT NOT NULL,
			PRIMARY KEY (run_id, seq)
		)`,
		`CREATE INDEX IF NOT EXISTS idx_runs_started_at ON runs(started_at)`,
	}
	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// Record stores lines as a new run and returns it. All lines are written in
// one transaction.
func (s *Store) Record(ctx context.Context, format types.OutputFormat, lines []types.Line) (types.Run, error) {
	run := types.Run{
		ID:        uuid.NewString(),
		StartedAt: s.now().UTC(),
		Format:    format,
		LineCount: len(lines),
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return types.Run{}, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx,
		`INSERT INTO runs (id, started_at, format) VALUES (?, ?, ?)`,
		run.ID, run.StartedAt.Format(timeLayout), string(format),
	); err != nil {
		return types.Run{}, fmt.Errorf("inserting run: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO lines (run_id, seq, name, section, text) VALUES (?, ?, ?, ?, ?)`)
	if err != nil {
		return types.Run{}, fmt.Errorf("preparing line insert: %w", err)
	}
	defer stmt.Close()

	for _, l := range lines {
		if _, err := stmt.ExecContext(ctx, run.ID, l.Seq, l.Name, string(l.Section), l.Text); err != nil {
			return types.Run{}, fmt.Errorf("inserting line %d: %w", l.Seq, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return types.Run{}, fmt.Errorf("committing run: %w", err)
	}
	return run, nil
}

// Runs returns the most recent runs, newest first, without their lines.
func (s *Store) Runs(ctx context.Context) ([]types.Run, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT r.id, r.started_at, r.format, count(l.seq)
		FROM runs r LEFT JOIN lines l ON l.run_id = r.id
		GROUP BY r.id
		ORDER BY r.started_at DESC, r.id
		LIMIT ?`, s.maxRuns)
	if err != nil {
		return nil, fmt.Errorf("querying runs: %w", err)
	}
	defer rows.Close()

	var runs []types.Run
	for rows.Next() {
		var (
			run       types.Run
			startedAt string
			format    string
		)
		if err := rows.Scan(&run.ID, &startedAt, &format, &run.LineCount); err != nil {
			return nil, fmt.Errorf("scanning run: %w", err)
		}
		run.StartedAt, err = time.Parse(timeLayout, startedAt)
		if err != nil {
			return nil, fmt.Errorf("parsing start time of run %s: %w", run.ID, err)
		}
		run.Format = types.OutputFormat(format)
		runs = append(runs, run)
	}
	return runs, rows.Err()
}

// Run returns one recorded run with its lines in print order.
func (s *Store) Run(ctx context.Context, runID string) (types.Run, error) {
	var (
		run       types.Run
		startedAt string
		format    string
	)
	err := s.db.QueryRowContext(ctx,
		`SELECT id, started_at, format FROM runs WHERE id = ?`, runID,
	).Scan(&run.ID, &startedAt, &format)
	if errors.Is(err, sql.ErrNoRows) {
		return types.Run{}, fmt.Errorf("%w: %s", ErrRunNotFound, runID)
	}
	if err != nil {
		return types.Run{}, fmt.Errorf("querying run %s: %w", runID, err)
	}
	if run.StartedAt, err = time.Parse(timeLayout, startedAt); err != nil {
		return types.Run{}, fmt.Errorf("parsing start time of run %s: %w", runID, err)
	}
	run.Format = types.OutputFormat(format)

	run.Lines, err = s.lines(ctx, runID)
	if err != nil {
		return types.Run{}, err
	}
	run.LineCount = len(run.Lines)
	return run, nil
}

func (s *Store) lines(ctx context.Context, runID string) ([]types.Line, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT seq, name, section, text FROM lines WHERE run_id = ? ORDER BY seq`, runID)
	if err != nil {
		return nil, fmt.Errorf("querying lines of run %s: %w", runID, err)
	}
	defer rows.Close()

	var lines []types.Line
	for rows.Next() {
		var (
			l       types.Line
			section string
		)
		if err := rows.Scan(&l.Seq, &l.Name, &section, &l.Text); err != nil {
			return nil, fmt.Errorf("scanning line: %w", err)
		}
		l.Section = types.Section(section)
		lines = append(lines, l)
	}
	return lines, rows.Err()
}
