// Package editor implements cursor-based tile editing on a copy of a grid.
// The simulation keeps running on its own grid while the editor works on a
// clone; the edited grid is handed back in one piece when editing ends.
package editor

import (
	"github.com/grotlabs/grot/internal/core"
	"github.com/grotlabs/grot/internal/sim"
)

// Editor holds a working copy of a grid and a tile cursor.
type Editor struct {
	grid *sim.Grid
	col  int
	row  int
}

// New starts an editing session on a clone of the given grid with the
// cursor at the given tile. The cursor is clamped into the grid.
func New(g *sim.Grid, col, row int) *Editor {
	e := &Editor{grid: g.Clone()}
	e.col = core.Clamp(col, 0, g.Width()-1)
	e.row = core.Clamp(row, 0, g.Height()-1)
	return e
}

// Move shifts the cursor by the given tile deltas, clamped to the grid.
func (e *Editor) Move(dcol, drow int) {
	e.col = core.Clamp(e.col+dcol, 0, e.grid.Width()-1)
	e.row = core.Clamp(e.row+drow, 0, e.grid.Height()-1)
}

// Toggle flips the tile under the cursor.
func (e *Editor) Toggle() error {
	return e.grid.Toggle(e.col, e.row)
}

// Cursor returns the cursor tile coordinates.
func (e *Editor) Cursor() (col, row int) {
	return e.col, e.row
}

// Grid returns the working grid. Callers hand it to the simulation when the
// session ends; further edits through the editor keep mutating it.
func (e *Editor) Grid() *sim.Grid {
	return e.grid
}
