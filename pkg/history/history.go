// Package history keeps an append-only log of routing decisions in SQLite.
// It is an audit trail; the stats tally remains the source of truth for
// aggregate counts.
package history

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

const schema = `
CREATE TABLE IF NOT EXISTS decisions (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	routed_at TIMESTAMP NOT NULL,
	description TEXT NOT NULL,
	task_type TEXT NOT NULL,
	confidence REAL NOT NULL,
	primary_agent TEXT NOT NULL,
	fallback_agent TEXT NOT NULL,
	optimize TEXT NOT NULL,
	estimated_cost TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_decisions_routed_at ON decisions(routed_at);
`

// Record is one logged routing decision.
type Record struct {
	ID            int64
	RoutedAt      time.Time
	Description   string
	TaskType      string
	Confidence    float64
	Primary       string
	Fallback      string
	Optimize      string
	EstimatedCost string
}

// Log is a SQLite-backed decision log.
type Log struct {
	db *sql.DB
}

// Open opens (or creates) the decision log at path.
func Open(path string) (*Log, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create history directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open history database: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize history schema: %w", err)
	}

	return &Log{db: db}, nil
}

// Close closes the underlying database.
func (l *Log) Close() error {
	return l.db.Close()
}

// Append logs one routing decision. A zero RoutedAt is set to now.
func (l *Log) Append(ctx context.Context, rec *Record) error {
	if rec.RoutedAt.IsZero() {
		rec.RoutedAt = time.Now().UTC()
	}

	res, err := l.db.ExecContext(ctx,
		`INSERT INTO decisions
		 (routed_at, description, task_type, confidence, primary_agent, fallback_agent, optimize, estimated_cost)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.RoutedAt, rec.Description, rec.TaskType, rec.Confidence,
		rec.Primary, rec.Fallback, rec.Optimize, rec.EstimatedCost,
	)
	if err != nil {
		return fmt.Errorf("failed to append decision: %w", err)
	}

	if id, err := res.LastInsertId(); err == nil {
		rec.ID = id
	}
	return nil
}

// Recent returns up to limit decisions, newest first.
func (l *Log) Recent(ctx context.Context, limit int) ([]Record, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := l.db.QueryContext(ctx,
		`SELECT id, routed_at, description, task_type, confidence, primary_agent, fallback_agent, optimize, estimated_cost
		 FROM decisions ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query decisions: %w", err)
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		var rec Record
		if err := rows.Scan(&rec.ID, &rec.RoutedAt, &rec.Description, &rec.TaskType,
			&rec.Confidence, &rec.Primary, &rec.Fallback, &rec.Optimize, &rec.EstimatedCost); err != nil {
			return nil, fmt.Errorf("failed to scan decision: %w", err)
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

// Count returns the number of logged decisions.
func (l *Log) Count(ctx context.Context) (int, error) {
	var count int
	if err := l.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM decisions").Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count decisions: %w", err)
	}
	return count, nil
}
