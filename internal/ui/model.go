package ui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mfribeiro/windprof/internal/dataset"
	"github.com/mfribeiro/windprof/internal/profile"
)

// AppState represents the current state of the application
type AppState int

const (
	StateLoading AppState = iota // Loading the campaign dataset
	StateDisplay                 // Display the chart panes
	StateError                   // Error state
)

// ActivePane represents which chart pane is currently shown
type ActivePane int

const (
	PaneProfile ActivePane = iota
	PaneTimeSeries
	PaneHeatmap
	PaneRose

	paneCount
)

func (p ActivePane) String() string {
	switch p {
	case PaneProfile:
		return "Vertical Profile"
	case PaneTimeSeries:
		return "Time Series"
	case PaneHeatmap:
		return "Heatmap"
	case PaneRose:
		return "Wind Rose"
	}
	return "Unknown"
}

// Options configures a new model. Zero values fall back to defaults.
type Options struct {
	CSVPath  string
	DBPath   string
	UseDB    bool // load from the provisioned database instead of CSV
	Resample time.Duration
	Alpha    float64
	Theme    *Theme
}

// Model represents the application's state
type Model struct {
	state      AppState
	activePane ActivePane
	width      int
	height     int
	err        error
	theme      Theme

	opts Options

	// Data
	table     *dataset.Table
	resampled *dataset.Table

	// Selection
	prefixes  []string
	prefixIdx int
	rowIdx    int
	channel   string

	// Channel picker
	channelList    list.Model
	pickingChannel bool

	spinner spinner.Model
}

// NewModel creates a new application model
func NewModel(opts Options) Model {
	if opts.Resample <= 0 {
		opts.Resample = 24 * time.Hour
	}
	if opts.Alpha <= 0 {
		opts.Alpha = profile.DefaultShearExponent
	}

	theme := DefaultTheme()
	if opts.Theme != nil {
		theme = *opts.Theme
	}

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(theme.Series[0])

	return Model{
		state:      StateLoading,
		activePane: PaneProfile,
		theme:      theme,
		opts:       opts,
		spinner:    s,
	}
}

// Init starts loading the dataset.
func (m Model) Init() tea.Cmd {
	load := loadCSVDataset(m.opts.CSVPath)
	if m.opts.UseDB {
		load = loadDatabaseDataset(m.opts.DBPath)
	}
	return tea.Batch(m.spinner.Tick, load)
}

// SetTable installs an already-built measurement table, bypassing loading.
// Used by the demo command.
func (m *Model) SetTable(table *dataset.Table) error {
	resampled, err := table.Resample(m.opts.Resample)
	if err != nil {
		return err
	}
	m.table = table
	m.resampled = resampled
	m.prefixes = table.VariablePrefixes()
	m.prefixIdx = 0
	m.rowIdx = table.Len() - 1
	m.channel = m.defaultChannel()
	m.channelList = createChannelList(table.Columns, m.width-4, m.height-10)
	return nil
}

// SetState sets the application state directly. Used by the demo command.
func (m *Model) SetState(state AppState) {
	m.state = state
}

// Update handles messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	if msg, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = msg.Width
		m.height = msg.Height
		if m.table != nil {
			m.channelList.SetSize(msg.Width-4, msg.Height-10)
		}
		return m, nil
	}

	switch msg := msg.(type) {
	case errMsg:
		m.err = msg.err
		m.state = StateError
		return m, nil

	case datasetLoadedMsg:
		if msg.err != nil {
			m.err = fmt.Errorf("loading dataset: %w", msg.err)
			m.state = StateError
			return m, nil
		}
		if err := m.SetTable(msg.table); err != nil {
			m.err = fmt.Errorf("preparing dataset: %w", err)
			m.state = StateError
			return m, nil
		}
		m.state = StateDisplay
		return m, nil
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.String() == "ctrl+c" || (keyMsg.String() == "q" && !m.pickingChannel) {
			return m, tea.Quit
		}
		if m.state == StateDisplay {
			return m.handleDisplayKeys(keyMsg)
		}
		return m, nil
	}

	if m.state == StateLoading {
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

// handleDisplayKeys handles keyboard input in the display state
func (m Model) handleDisplayKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	if m.pickingChannel {
		switch msg.Type {
		case tea.KeyEnter:
			if item, ok := m.channelList.SelectedItem().(channelItem); ok {
				m.channel = string(item)
			}
			m.pickingChannel = false
			return m, nil
		case tea.KeyEsc:
			m.pickingChannel = false
			return m, nil
		}
		m.channelList, cmd = m.channelList.Update(msg)
		return m, cmd
	}

	switch msg.String() {
	case "tab":
		m.activePane = (m.activePane + 1) % paneCount
	case "shift+tab":
		m.activePane = (m.activePane + paneCount - 1) % paneCount
	case "left":
		if m.rowIdx > 0 {
			m.rowIdx--
		}
	case "right":
		if m.rowIdx < m.table.Len()-1 {
			m.rowIdx++
		}
	case "v":
		if len(m.prefixes) > 0 {
			m.prefixIdx = (m.prefixIdx + 1) % len(m.prefixes)
		}
	case "c":
		if m.activePane == PaneTimeSeries {
			m.pickingChannel = true
		}
	}
	return m, nil
}

// prefix returns the currently selected variable prefix.
func (m Model) prefix() string {
	if len(m.prefixes) == 0 {
		return ""
	}
	return m.prefixes[m.prefixIdx]
}

// defaultChannel picks the lowest-height column of the first variable as
// the initial time-series channel.
func (m Model) defaultChannel() string {
	for _, prefix := range m.prefixes {
		mapping, err := profile.ResolveHeightColumns(m.table.Columns, prefix)
		if err == nil && len(mapping) > 0 {
			return mapping[0].Column
		}
	}
	if len(m.table.Columns) > 0 {
		return m.table.Columns[0]
	}
	return ""
}

// View renders the UI
func (m Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	switch m.state {
	case StateLoading:
		return m.viewLoading()
	case StateDisplay:
		return m.viewDisplay()
	case StateError:
		return m.viewError()
	}
	return ""
}

// viewLoading renders the loading screen
func (m Model) viewLoading() string {
	source := m.opts.CSVPath
	if m.opts.UseDB {
		source = m.opts.DBPath
	}

	return lipgloss.JoinVertical(
		lipgloss.Center,
		"",
		m.theme.Title.Render("Wind Profile Terminal"),
		"",
		fmt.Sprintf("%s Loading campaign data from %s...", m.spinner.View(), source),
	)
}

// viewError renders the error view
func (m Model) viewError() string {
	title := m.theme.Error.Render("✗ Error")

	var errorMsg string
	if m.err != nil {
		errorMsg = m.err.Error()
	} else {
		errorMsg = "An unknown error occurred"
	}

	help := m.theme.Help.Render("Q: Quit")

	return lipgloss.JoinVertical(lipgloss.Left, title, "", errorMsg, "", help)
}

// viewDisplay renders the selected chart pane with a header and help line
func (m Model) viewDisplay() string {
	if m.table == nil || m.table.Len() == 0 {
		return "No data loaded"
	}

	if m.pickingChannel {
		return m.viewChannelPicker()
	}

	var sections []string

	header := m.theme.Header.Render(fmt.Sprintf("Wind Profile Terminal — %s", m.activePane))
	sections = append(sections, header)

	first := m.table.Times[0]
	last := m.table.Times[m.table.Len()-1]
	info := m.theme.Muted.Render(fmt.Sprintf("%d observations  %s – %s  variable: %s",
		m.table.Len(),
		first.Format("2006-01-02"),
		last.Format("2006-01-02"),
		m.prefix()))
	sections = append(sections, info, "")

	paneWidth := m.width - 4
	paneHeight := m.height - 10

	var pane string
	switch m.activePane {
	case PaneProfile:
		pane = m.renderProfilePane(paneWidth)
	case PaneTimeSeries:
		pane = m.renderTimeSeriesPane(paneWidth, paneHeight)
	case PaneHeatmap:
		pane = m.renderHeatmapPane(paneWidth, paneHeight)
	case PaneRose:
		pane = m.renderRosePane(paneWidth, paneHeight)
	}
	sections = append(sections, m.theme.Pane.Width(paneWidth).Render(pane))

	help := m.theme.Help.Render("Tab: Next pane • ←/→: Step timestamp • V: Variable • C: Channel (time series) • Q: Quit")
	sections = append(sections, help)

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// viewChannelPicker renders the channel selection list
func (m Model) viewChannelPicker() string {
	title := m.theme.Title.Render("Select a channel")
	help := m.theme.Help.Render("↑/↓: Navigate • Enter: Select • Esc: Cancel")
	return lipgloss.JoinVertical(lipgloss.Left, title, "", m.channelList.View(), "", help)
}
