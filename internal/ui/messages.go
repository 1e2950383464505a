package ui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mfribeiro/windprof/internal/database"
	"github.com/mfribeiro/windprof/internal/dataset"
)

// datasetLoadedMsg is sent when the campaign table has been loaded from
// CSV or from the database.
type datasetLoadedMsg struct {
	table *dataset.Table
	err   error
}

// errMsg is a message type for errors
type errMsg struct {
	err error
}

// loadCSVDataset loads the campaign CSV in the background.
func loadCSVDataset(path string) tea.Cmd {
	return func() tea.Msg {
		table, err := dataset.LoadCSV(path)
		return datasetLoadedMsg{table: table, err: err}
	}
}

// loadDatabaseDataset loads measurements from a provisioned database.
func loadDatabaseDataset(dbPath string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		repo, err := database.Open(dbPath)
		if err != nil {
			return datasetLoadedMsg{err: err}
		}
		defer repo.Close()

		table, err := repo.LoadTable(ctx)
		return datasetLoadedMsg{table: table, err: err}
	}
}
