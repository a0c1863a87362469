package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/grotlabs/grot/internal/core"
	"github.com/grotlabs/grot/internal/editor"
	"github.com/grotlabs/grot/internal/room"
	"github.com/grotlabs/grot/internal/sim"
	"github.com/grotlabs/grot/internal/storage"
)

// Mode selects what the play screen is doing.
type Mode int

const (
	ModeRun Mode = iota
	ModeEdit
)

// PlayModel is the Bubble Tea model that hosts a simulation session.
// The simulation advances by real elapsed time between frames; rendering
// interpolates between ticks so motion stays smooth at any frame rate.
type PlayModel struct {
	model  *sim.Model
	keys   *KeyMapper
	screen *core.Screen
	store  *storage.Store
	logger *log.Logger
	config core.RuntimeConfig

	mode   Mode
	editor *editor.Editor

	roomID   string
	roomName string
	roomPath string

	lastFrame time.Time
	started   time.Time
	dropped   time.Duration
	runSaved  bool
	quitting  bool
}

// NewPlayModel creates a play model for the given simulation and room.
// roomPath may be empty for rooms that only live in memory; editing still
// works but saving is disabled.
func NewPlayModel(model *sim.Model, r room.Room, store *storage.Store, logger *log.Logger, cfg core.RuntimeConfig) PlayModel {
	return PlayModel{
		model:    model,
		keys:     NewKeyMapper(),
		screen:   core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:    store,
		logger:   logger,
		config:   cfg,
		roomID:   r.ID,
		roomName: r.File.Name,
		roomPath: r.FilePath,
	}
}

// StartEditing returns a copy of the model that opens in the room editor
// instead of running the simulation.
func (m PlayModel) StartEditing() PlayModel {
	m.editor = editor.New(m.model.Grid(), 0, 0)
	m.mode = ModeEdit
	return m
}

// Init starts the frame loop.
func (m PlayModel) Init() tea.Cmd {
	return frameCmd(m.config.FrameRate)
}

// Update handles messages and updates the model state.
func (m PlayModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case FrameMsg:
		return m.handleFrame(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m PlayModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case keyQuitCtrl, keyQuit:
		if m.mode == ModeEdit {
			// Quitting mid-edit keeps the work: save it like the original
			// did on exit.
			m.saveRoom(m.editor.Grid())
		}
		m.saveRun()
		m.quitting = true
		return m, tea.Quit
	case keyEditMode:
		return m.toggleEdit()
	}

	if m.mode == ModeEdit {
		return m.handleEditKey(msg)
	}

	if in := m.keys.MapKey(msg); in != core.IntentNone {
		m.model.Apply(in)
	}
	return m, nil
}

// handleEditKey processes keyboard input while the editor is open.
func (m PlayModel) handleEditKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keys.MapKeyToEditAction(msg) {
	case EditActionUp:
		m.editor.Move(0, -1)
	case EditActionDown:
		m.editor.Move(0, 1)
	case EditActionLeft:
		m.editor.Move(-1, 0)
	case EditActionRight:
		m.editor.Move(1, 0)
	case EditActionToggle:
		if err := m.editor.Toggle(); err != nil {
			m.logger.Warn("toggle failed", "error", err)
		}
	case EditActionSave:
		m.saveRoom(m.editor.Grid())
	}
	return m, nil
}

// toggleEdit switches between running the simulation and editing the room.
// The editor works on a clone; the live grid is swapped in one piece when
// editing ends, so the simulation never sees a half-edited room.
func (m PlayModel) toggleEdit() (tea.Model, tea.Cmd) {
	if m.mode == ModeRun {
		for _, in := range m.keys.ReleaseAll() {
			m.model.Apply(in)
		}
		p := m.model.Player()
		col, row, _, _ := m.model.Grid().TileAtPoint(p.X, p.Y)
		m.editor = editor.New(m.model.Grid(), col, row)
		m.mode = ModeEdit
		return m, nil
	}

	m.model.SetGrid(m.editor.Grid())
	m.editor = nil
	m.mode = ModeRun
	// Forget the pause so the simulation does not try to catch it up.
	m.lastFrame = time.Time{}
	return m, nil
}

// handleFrame advances the simulation by the real time since the last frame
// and schedules the next one.
func (m PlayModel) handleFrame(now time.Time) (tea.Model, tea.Cmd) {
	if m.started.IsZero() {
		m.started = now
	}

	if m.mode == ModeRun {
		for _, in := range m.keys.Frame() {
			m.model.Apply(in)
		}
		if !m.lastFrame.IsZero() {
			_, dropped := m.model.Advance(now.Sub(m.lastFrame))
			if dropped > 0 {
				m.dropped += dropped
				m.logger.Warn("simulation fell behind, dropping backlog",
					"dropped", dropped, "room", m.roomID)
			}
		}
	}

	m.lastFrame = now
	return m, frameCmd(m.config.FrameRate)
}

// saveRun records the finished session. Best effort; quitting proceeds
// regardless.
func (m *PlayModel) saveRun() {
	if m.runSaved || m.store == nil || m.model.Ticks() == 0 {
		return
	}
	duration := time.Duration(0)
	if !m.started.IsZero() {
		duration = time.Since(m.started)
	}
	if _, err := m.store.SaveRun(m.roomID, int64(m.model.Ticks()), duration, m.dropped); err != nil {
		m.logger.Warn("could not save run", "error", err)
	}
	m.runSaved = true
}

// saveRoom writes the edited grid back to the room file.
func (m *PlayModel) saveRoom(g *sim.Grid) {
	if m.roomPath == "" {
		m.logger.Warn("room has no file, cannot save", "room", m.roomID)
		return
	}
	if err := room.Save(m.roomPath, room.FromGrid(m.roomName, g)); err != nil {
		m.logger.Error("could not save room", "error", err)
		return
	}
	m.logger.Info("room saved", "path", m.roomPath)
}

// View renders the current state to a string for display.
func (m PlayModel) View() string {
	if m.quitting {
		return ""
	}

	m.drawWorld()
	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program with the given model.
func Run(model PlayModel) error {
	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
