package sim

import (
	"time"

	"github.com/grotlabs/grot/internal/core"
)

// Model composes the scheduler, the current and previous player snapshots,
// and the active grid. The host loop calls Advance once per frame with the
// real elapsed time, then RenderState once to draw.
//
// The model is not safe for concurrent use: one goroutine owns it, and every
// mutation happens between ticks. A multi-threaded host must serialize all
// access onto one goroutine or guard the whole tick with a single mutex.
type Model struct {
	sched  *Scheduler
	grid   *Grid
	player Player
	prev   Player
	ticks  uint64
}

// NewModel creates a model driving the given player against the given grid.
func NewModel(tick time.Duration, grid *Grid, player Player) (*Model, error) {
	sched, err := NewScheduler(tick)
	if err != nil {
		return nil, err
	}
	return &Model{
		sched:  sched,
		grid:   grid,
		player: player,
		prev:   player,
	}, nil
}

// Apply forwards a movement intent to the player immediately.
func (m *Model) Apply(in core.Intent) {
	m.player.Apply(in)
}

// SetGrid replaces the active grid wholesale. The player re-queries live
// tiles every tick, so the swap takes effect on the very next tick with no
// special-casing.
func (m *Model) SetGrid(g *Grid) {
	m.grid = g
}

// Grid returns the active grid.
func (m *Model) Grid() *Grid {
	return m.grid
}

// Player returns the current-tick player snapshot.
func (m *Model) Player() Player {
	return m.player
}

// Ticks returns the total number of ticks simulated.
func (m *Model) Ticks() uint64 {
	return m.ticks
}

// TickDuration returns the fixed simulation tick duration.
func (m *Model) TickDuration() time.Duration {
	return m.sched.TickDuration()
}

// Advance consumes elapsed wall-clock time in whole ticks. Each tick
// snapshots the pre-update player as "previous" and updates the live one.
func (m *Model) Advance(elapsed time.Duration) (ticks int, dropped time.Duration) {
	ticks, dropped = m.sched.Advance(elapsed, func(dt float64) {
		m.prev = m.player
		m.player.Update(dt, m.grid)
	})
	m.ticks += uint64(ticks)
	return ticks, dropped
}

// RenderState returns the previous snapshot extrapolated by the current
// velocity over the accumulated residue. Visual only: the result never
// feeds back into simulation state, so physics stays deterministic at the
// fixed tick rate while rendering is smooth at any frame rate.
func (m *Model) RenderState() Player {
	rp := m.prev
	alpha := m.sched.Alpha()
	rp.X += m.player.VX * alpha
	rp.Y += m.player.VY * alpha
	return rp
}
