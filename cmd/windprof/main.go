package main

import (
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mfribeiro/windprof/internal/config"
	"github.com/mfribeiro/windprof/internal/ui"
)

func main() {
	dataPath := flag.String("data", "", "Campaign CSV to analyze (overrides WINDPROF_DATA_PATH)")
	dbPath := flag.String("db", "", "Load measurements from a provisioned SQLite database instead of CSV")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Error loading configuration: %v\n", err)
		os.Exit(1)
	}
	if *dataPath != "" {
		cfg.DataPath = *dataPath
	}
	useDB := *dbPath != ""
	if useDB {
		cfg.DBPath = *dbPath
	}

	m := ui.NewModel(ui.Options{
		CSVPath:  cfg.DataPath,
		DBPath:   cfg.DBPath,
		UseDB:    useDB,
		Resample: cfg.Resample,
		Alpha:    cfg.Alpha,
	})

	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Error running application: %v\n", err)
		os.Exit(1)
	}
}
