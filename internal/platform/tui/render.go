package tui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/grotlabs/grot/internal/core"
	"github.com/grotlabs/grot/internal/sim"
)

// World-to-terminal scale: one tile maps to two columns by one row, which
// roughly squares up tiles on common terminal fonts.
const cellsPerTileX = 2

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:     lipgloss.NewStyle(),
	core.ColorRed:         lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	core.ColorGreen:       lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	core.ColorYellow:      lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	core.ColorBlue:        lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
	core.ColorMagenta:     lipgloss.NewStyle().Foreground(lipgloss.Color("5")),
	core.ColorCyan:        lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	core.ColorWhite:       lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
	core.ColorBrightWhite: lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
	core.ColorOrange:      lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	core.ColorGray:        lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := 0; y < s.Height(); y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}

// drawWorld renders the room, the player, and the status line into the
// screen buffer.
func (m PlayModel) drawWorld() {
	m.screen.Clear()

	grid := m.model.Grid()
	if m.mode == ModeEdit {
		grid = m.editor.Grid()
	}

	// Center the room on the screen; one tile is cellsPerTileX columns wide
	// and one row tall.
	roomW := grid.Width() * cellsPerTileX
	roomH := grid.Height()
	ox := core.Max(0, (m.screen.Width()-roomW)/2)
	oy := core.Max(0, (m.screen.Height()-roomH)/2)

	for row := 0; row < grid.Height(); row++ {
		for col := 0; col < grid.Width(); col++ {
			if grid.TileAt(col, row) != sim.TileFilled {
				continue
			}
			for i := 0; i < cellsPerTileX; i++ {
				m.screen.SetCell(ox+col*cellsPerTileX+i, oy+row,
					core.Cell{Rune: '█', Color: core.ColorGray})
			}
		}
	}

	m.drawPlayer(grid, ox, oy)

	if m.mode == ModeEdit {
		col, row := m.editor.Cursor()
		for i := 0; i < cellsPerTileX; i++ {
			x, y := ox+col*cellsPerTileX+i, oy+row
			cursor := core.Cell{Rune: '▒', Color: core.ColorYellow}
			if m.screen.GetCell(x, y).Rune == '█' {
				cursor.Rune = '▓'
			}
			m.screen.SetCell(x, y, cursor)
		}
	}

	m.drawStatus()
}

// drawPlayer maps the interpolated player rectangle from pixel space to
// terminal cells.
func (m PlayModel) drawPlayer(grid *sim.Grid, ox, oy int) {
	p := m.model.RenderState()
	tile := float64(grid.TileSize())

	left := int(math.Floor(p.X / tile * cellsPerTileX))
	right := int(math.Ceil((p.X + p.Params.Width) / tile * cellsPerTileX))
	top := int(math.Floor(p.Y / tile))
	bottom := int(math.Ceil((p.Y + p.Params.Height) / tile))

	for y := top; y < bottom; y++ {
		for x := left; x < right; x++ {
			m.screen.SetCell(ox+x, oy+y, core.Cell{Rune: '█', Color: core.ColorOrange})
		}
	}
}

// drawStatus renders the bottom status line.
func (m PlayModel) drawStatus() {
	name := m.roomName
	if name == "" {
		name = m.roomID
	}

	var status string
	switch m.mode {
	case ModeEdit:
		col, row := m.editor.Cursor()
		status = fmt.Sprintf(" EDIT %s (%d,%d)  arrows: move  space: toggle  s: save  e: resume  q: quit",
			name, col, row)
	default:
		p := m.model.Player()
		status = fmt.Sprintf(" %s  tick %d  %s/%s  e: edit  q: quit",
			name, m.model.Ticks(), p.Horiz, p.Vert)
	}

	m.screen.DrawText(0, m.screen.Height()-1, status)
}
