// Package tui provides the Bubble Tea integration for the platformer.
// It handles the terminal UI loop, input mapping, and rendering; the
// simulation itself advances on a fixed timestep independent of frame rate.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// FrameMsg is sent once per render frame. It carries the wall-clock time so
// the model can measure real elapsed time between frames and feed it to the
// fixed-step simulation.
type FrameMsg time.Time

// frameCmd returns a Bubble Tea command that sends frame messages at the
// specified rate.
func frameCmd(frameRate int) tea.Cmd {
	interval := time.Second / time.Duration(frameRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return FrameMsg(t)
	})
}
