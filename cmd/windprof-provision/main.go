package main

import (
	"flag"
	"log"

	"github.com/mfribeiro/windprof/internal/config"
	"github.com/mfribeiro/windprof/internal/database"
	"github.com/mfribeiro/windprof/internal/dataset"
)

// Provisioning script: loads a campaign CSV and bootstraps the measurements
// database if it does not exist yet. The terminal can then be started with
// --db instead of re-parsing the CSV.
func main() {
	dataPath := flag.String("data", "", "Campaign CSV to import (overrides WINDPROF_DATA_PATH)")
	dbPath := flag.String("db", "", "Target SQLite database (overrides WINDPROF_DB_PATH)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Loading configuration: %v", err)
	}
	if *dataPath != "" {
		cfg.DataPath = *dataPath
	}
	if *dbPath != "" {
		cfg.DBPath = *dbPath
	}

	log.Printf("Loading campaign data from %s...", cfg.DataPath)
	table, err := dataset.LoadCSV(cfg.DataPath)
	if err != nil {
		log.Fatalf("Loading dataset: %v", err)
	}
	log.Printf("Loaded %d observations across %d channels", table.Len(), len(table.Columns))

	if err := database.ProvisionDatabase(cfg.DBPath, table); err != nil {
		log.Fatalf("Provisioning database: %v", err)
	}
}
