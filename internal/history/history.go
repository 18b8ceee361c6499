// Package history is the ledger of every recorded run, kept in SQLite.
package history

import (
	"context"
	"database/sql"
	_ "embed"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
)

//go:embed schema.sql
var schemaSQL string

// Schema version tracking:
// 0 - initial runs table
// 1 - index on runs(algorithm, executed_at)
const currentSchemaVersion = 1

var ErrNotFound = errors.New("history: run not found")

// Record is one executed run.
type Record struct {
	ID         string
	Algorithm  string
	Original   []int
	Sorted     []int
	Steps      int
	ExecutedAt time.Time
}

// Store is the run ledger. Uses SQLite in WAL mode with a single connection.
type Store struct {
	db *sql.DB
}

// Open creates or opens the ledger at path, applying pragmas and migrations.
// It is safe to call repeatedly on the same file.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("history: open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("history: connect: %w", err)
	}

	// SQLite has a single writer.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if err := applyPragmas(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("history: pragmas: %w", err)
	}
	if err := applySchema(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("history: schema: %w", err)
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

func applyPragmas(db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = NORMAL",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			return fmt.Errorf("execute %q: %w", pragma, err)
		}
	}
	return nil
}

func applySchema(db *sql.DB) error {
	if _, err := db.Exec(schemaSQL); err != nil {
		return err
	}

	var version int
	if err := db.QueryRow("PRAGMA user_version").Scan(&version); err != nil {
		return fmt.Errorf("get user_version: %w", err)
	}
	if version < 1 {
		_, err := db.Exec(`CREATE INDEX IF NOT EXISTS idx_runs_algorithm ON runs(algorithm, executed_at)`)
		if err != nil {
			return fmt.Errorf("migrate to v1: %w", err)
		}
	}
	if _, err := db.Exec(fmt.Sprintf("PRAGMA user_version = %d", currentSchemaVersion)); err != nil {
		return fmt.Errorf("set user_version: %w", err)
	}
	return nil
}

// Save stores rec and returns its id. A missing id is generated and a zero
// ExecutedAt becomes the current time.
func (s *Store) Save(ctx context.Context, rec Record) (string, error) {
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	if rec.ExecutedAt.IsZero() {
		rec.ExecutedAt = time.Now()
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO runs (id, algorithm, original, sorted, steps, executed_at) VALUES (?, ?, ?, ?, ?, ?)`,
		rec.ID, rec.Algorithm, encodeInts(rec.Original), encodeInts(rec.Sorted), rec.Steps, rec.ExecutedAt.UnixNano())
	if err != nil {
		return "", fmt.Errorf("history: save %s: %w", rec.ID, err)
	}
	return rec.ID, nil
}

// List returns up to limit records, newest first. limit <= 0 returns all.
func (s *Store) List(ctx context.Context, limit int) ([]Record, error) {
	if limit <= 0 {
		limit = -1
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, algorithm, original, sorted, steps, executed_at FROM runs
		 ORDER BY executed_at DESC, rowid DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("history: list: %w", err)
	}
	defer rows.Close()

	out := make([]Record, 0)
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

func (s *Store) Get(ctx context.Context, id string) (Record, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, algorithm, original, sorted, steps, executed_at FROM runs WHERE id = ?`, id)
	rec, err := scanRecord(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Record{}, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return rec, err
}

// CountByAlgorithm returns how many runs each algorithm has recorded.
func (s *Store) CountByAlgorithm(ctx context.Context) (map[string]int, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT algorithm, COUNT(*) FROM runs GROUP BY algorithm`)
	if err != nil {
		return nil, fmt.Errorf("history: count: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var alg string
		var n int
		if err := rows.Scan(&alg, &n); err != nil {
			return nil, err
		}
		counts[alg] = n
	}
	return counts, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRecord(sc scanner) (Record, error) {
	var (
		rec              Record
		original, sorted string
		executedAt       int64
	)
	if err := sc.Scan(&rec.ID, &rec.Algorithm, &original, &sorted, &rec.Steps, &executedAt); err != nil {
		return Record{}, err
	}

	var err error
	if rec.Original, err = decodeInts(original); err != nil {
		return Record{}, fmt.Errorf("history: run %s original: %w", rec.ID, err)
	}
	if rec.Sorted, err = decodeInts(sorted); err != nil {
		return Record{}, fmt.Errorf("history: run %s sorted: %w", rec.ID, err)
	}
	rec.ExecutedAt = time.Unix(0, executedAt)
	return rec, nil
}

func encodeInts(vs []int) string {
	parts := make([]string, len(vs))
	for i, v := range vs {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, ",")
}

func decodeInts(s string) ([]int, error) {
	if s == "" {
		return []int{}, nil
	}
	parts := strings.Split(s, ",")
	out := make([]int, len(parts))
	for i, p := range parts {
		v, err := strconv.Atoi(p)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}
