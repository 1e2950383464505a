package database

import (
	"context"
	"database/sql"
	"fmt"
	"math"
	"time"

	"github.com/mfribeiro/windprof/internal/dataset"
	_ "modernc.org/sqlite"
)

// Repository reads campaign measurements back out of a provisioned
// database.
type Repository struct {
	db *sql.DB
}

// Open opens a provisioned measurements database.
func Open(dbPath string) (*Repository, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	// Set pragmas for performance
	_, _ = db.Exec("PRAGMA journal_mode=WAL")
	_, _ = db.Exec("PRAGMA synchronous=NORMAL")
	_, _ = db.Exec("PRAGMA cache_size=10000")
	return &Repository{db: db}, nil
}

// Close releases the underlying connection.
func (r *Repository) Close() error {
	return r.db.Close()
}

// Channels lists the distinct measurement channels, sorted by name.
func (r *Repository) Channels(ctx context.Context) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, "SELECT DISTINCT channel FROM measurements ORDER BY channel")
	if err != nil {
		return nil, fmt.Errorf("querying channels: %w", err)
	}
	defer rows.Close()

	var channels []string
	for rows.Next() {
		var channel string
		if err := rows.Scan(&channel); err != nil {
			return nil, fmt.Errorf("scanning channel: %w", err)
		}
		channels = append(channels, channel)
	}
	return channels, rows.Err()
}

// Range reports the time span covered by the stored measurements.
func (r *Repository) Range(ctx context.Context) (time.Time, time.Time, error) {
	var first, last string
	err := r.db.QueryRowContext(ctx,
		"SELECT MIN(observed_at), MAX(observed_at) FROM measurements").Scan(&first, &last)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("querying time range: %w", err)
	}

	start, err := time.Parse(time.RFC3339, first)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("parsing range start: %w", err)
	}
	end, err := time.Parse(time.RFC3339, last)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("parsing range end: %w", err)
	}
	return start, end, nil
}

// LoadTable pivots the long-format rows back into a wide measurement
// table, one row per observation time. Channels absent at a given time
// stay NaN.
func (r *Repository) LoadTable(ctx context.Context) (*dataset.Table, error) {
	channels, err := r.Channels(ctx)
	if err != nil {
		return nil, err
	}
	if len(channels) == 0 {
		return nil, fmt.Errorf("database holds no measurements")
	}

	colIdx := make(map[string]int, len(channels))
	for i, c := range channels {
		colIdx[c] = i
	}

	rows, err := r.db.QueryContext(ctx,
		"SELECT observed_at, channel, value FROM measurements ORDER BY observed_at")
	if err != nil {
		return nil, fmt.Errorf("querying measurements: %w", err)
	}
	defer rows.Close()

	table := dataset.New(channels)
	var currentAt string
	var current []float64

	flush := func() error {
		if current == nil {
			return nil
		}
		ts, err := time.Parse(time.RFC3339, currentAt)
		if err != nil {
			return fmt.Errorf("parsing observation time %q: %w", currentAt, err)
		}
		return table.AppendRow(ts, current)
	}

	for rows.Next() {
		var observedAt, channel string
		var value float64
		if err := rows.Scan(&observedAt, &channel, &value); err != nil {
			return nil, fmt.Errorf("scanning measurement: %w", err)
		}

		if observedAt != currentAt {
			if err := flush(); err != nil {
				return nil, err
			}
			currentAt = observedAt
			current = make([]float64, len(channels))
			for i := range current {
				current[i] = math.NaN()
			}
		}
		current[colIdx[channel]] = value
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reading measurements: %w", err)
	}
	if err := flush(); err != nil {
		return nil, err
	}

	return table, nil
}
