package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/grotlabs/grot/internal/storage"
)

// maxRuns is the most history rows loaded into the table at once.
const maxRuns = 100

// StatsKeyMap defines the key bindings for the run history screen.
type StatsKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	NextRoom key.Binding
	PrevRoom key.Binding
	Quit     key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k StatsKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextRoom, k.PrevRoom, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k StatsKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.NextRoom, k.PrevRoom, k.Quit},
	}
}

// DefaultStatsKeyMap returns default key bindings.
func DefaultStatsKeyMap() StatsKeyMap {
	return StatsKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		NextRoom: key.NewBinding(
			key.WithKeys("tab", "right", "l"),
			key.WithHelp("tab", "next room"),
		),
		PrevRoom: key.NewBinding(
			key.WithKeys("shift+tab", "left", "h"),
			key.WithHelp("S-tab", "prev room"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// StatsModel is the Bubble Tea model for the run history screen.
// It shows the longest runs per room, cycling through rooms with tab.
type StatsModel struct {
	rooms      []string
	roomCursor int
	store      *storage.Store
	runs       []storage.RunEntry
	table      table.Model
	help       help.Model
	keys       StatsKeyMap
	width      int
	height     int
	quitting   bool
}

// NewStatsModel creates a run history model over the given room IDs.
func NewStatsModel(store *storage.Store, rooms []string, width, height int) StatsModel {
	h := help.New()
	h.ShowAll = false

	m := StatsModel{
		rooms:  rooms,
		store:  store,
		keys:   DefaultStatsKeyMap(),
		help:   h,
		width:  width,
		height: height,
	}

	m.table = m.createTable()
	if len(m.rooms) > 0 {
		m.loadRuns(m.rooms[0])
	}

	return m
}

// createTable creates a new table with appropriate columns.
func (m *StatsModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Rank", Width: 6},
		{Title: "Ticks", Width: 10},
		{Title: "Duration", Width: 10},
		{Title: "Dropped", Width: 8},
		{Title: "Date", Width: 18},
	}

	height := m.height - 8
	if height < 3 {
		height = 3
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(height),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// loadRuns loads runs for the given room ID.
func (m *StatsModel) loadRuns(roomID string) {
	if m.store == nil {
		m.runs = nil
		m.updateTableRows()
		return
	}

	runs, err := m.store.LongestRuns(roomID, maxRuns)
	if err != nil {
		m.runs = nil
	} else {
		m.runs = runs
	}
	m.updateTableRows()
}

// updateTableRows updates the table with current runs.
func (m *StatsModel) updateTableRows() {
	rows := make([]table.Row, len(m.runs))
	for i, r := range m.runs {
		duration := time.Duration(r.DurationMS) * time.Millisecond
		dropped := "-"
		if r.DroppedMS > 0 {
			dropped = (time.Duration(r.DroppedMS) * time.Millisecond).String()
		}
		rows[i] = table.Row{
			fmt.Sprintf("#%d", i+1),
			fmt.Sprintf("%d", r.Ticks),
			duration.Round(100 * time.Millisecond).String(),
			dropped,
			r.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// Init initializes the stats model.
func (m StatsModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the stats screen.
func (m StatsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.NextRoom):
			if len(m.rooms) > 0 {
				m.roomCursor = (m.roomCursor + 1) % len(m.rooms)
				m.loadRuns(m.rooms[m.roomCursor])
			}
			return m, nil

		case key.Matches(msg, m.keys.PrevRoom):
			if len(m.rooms) > 0 {
				m.roomCursor--
				if m.roomCursor < 0 {
					m.roomCursor = len(m.rooms) - 1
				}
				m.loadRuns(m.rooms[m.roomCursor])
			}
			return m, nil

		case key.Matches(msg, m.keys.Up), key.Matches(msg, m.keys.Down):
			m.table, cmd = m.table.Update(msg)
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the run history.
func (m StatsModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		MarginBottom(1)

	title := "LONGEST RUNS"
	if len(m.rooms) > 0 {
		title = fmt.Sprintf("LONGEST RUNS - %s", m.rooms[m.roomCursor])
	}
	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n\n")

	if len(m.runs) == 0 {
		b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color("241")).
			Render("No runs recorded yet."))
	} else {
		b.WriteString(m.table.View())
	}

	b.WriteString("\n")
	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}
