package database

import (
	"database/sql"
	"fmt"
	"log"
	"math"
	"os"
	"path/filepath"
	"time"

	"github.com/mfribeiro/windprof/internal/dataset"
	_ "modernc.org/sqlite"
)

// ProvisionDatabase checks if the measurements table exists and builds it
// from the loaded campaign table if not. Measurements are stored in long
// format (observed_at, channel, value) so campaigns with different mast
// configurations share one schema. NaN values are not stored.
//
// The analytical core never calls this; it runs from the provisioning
// command before the terminal is started against a database source.
func ProvisionDatabase(dbPath string, table *dataset.Table) error {
	dataDir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return fmt.Errorf("creating data directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer db.Close()

	var count int
	err = db.QueryRow("SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name='measurements'").Scan(&count)
	if err != nil {
		return fmt.Errorf("checking for measurements table: %w", err)
	}
	if count > 0 {
		log.Printf("Database %s already provisioned", dbPath)
		return nil
	}

	log.Println("Measurements table not found, provisioning...")

	_, err = db.Exec(`
		CREATE TABLE measurements (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			observed_at DATETIME NOT NULL,
			channel TEXT NOT NULL,
			value REAL NOT NULL
		);

		CREATE UNIQUE INDEX idx_measurements_time_channel ON measurements(observed_at, channel);
		CREATE INDEX idx_measurements_channel ON measurements(channel);
	`)
	if err != nil {
		return fmt.Errorf("creating measurements table: %w", err)
	}

	inserted, err := importTable(db, table)
	if err != nil {
		return fmt.Errorf("importing measurements: %w", err)
	}

	log.Printf("Successfully provisioned %d measurements into %s", inserted, dbPath)
	return nil
}

// importTable writes every finite value of the table in one transaction.
func importTable(db *sql.DB, table *dataset.Table) (int, error) {
	tx, err := db.Begin()
	if err != nil {
		return 0, fmt.Errorf("starting transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare("INSERT INTO measurements (observed_at, channel, value) VALUES (?, ?, ?)")
	if err != nil {
		return 0, fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	inserted := 0
	for row := 0; row < table.Len(); row++ {
		observedAt := table.Times[row].UTC().Format(time.RFC3339)
		for _, col := range table.Columns {
			v := table.Value(row, col)
			if math.IsNaN(v) {
				continue
			}
			if _, err := stmt.Exec(observedAt, col, v); err != nil {
				return 0, fmt.Errorf("inserting %s at %s: %w", col, observedAt, err)
			}
			inserted++
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("committing import: %w", err)
	}
	return inserted, nil
}
