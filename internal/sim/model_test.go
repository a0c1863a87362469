package sim

import (
	"testing"
	"time"

	"github.com/grotlabs/grot/internal/core"
)

func testModel(t *testing.T, tick time.Duration) *Model {
	t.Helper()
	g, err := NewGrid(20, 10, 16)
	if err != nil {
		t.Fatalf("NewGrid: %v", err)
	}
	m, err := NewModel(tick, g, NewPlayer(testParams(), 10, 10))
	if err != nil {
		t.Fatalf("NewModel: %v", err)
	}
	return m
}

func TestModelAdvanceSnapshotsPrevious(t *testing.T) {
	m := testModel(t, 20*time.Millisecond)
	initial := m.Player()

	ticks, _ := m.Advance(20 * time.Millisecond)
	if ticks != 1 {
		t.Fatalf("ran %d ticks, want 1", ticks)
	}
	if m.prev != initial {
		t.Error("previous snapshot should be the pre-update state")
	}
	if m.Player().VY <= 0 {
		t.Errorf("falling player should have gained downward speed, vy = %v", m.Player().VY)
	}
	if m.Ticks() != 1 {
		t.Errorf("tick counter = %d, want 1", m.Ticks())
	}
}

func TestModelRenderStateInterpolates(t *testing.T) {
	m := testModel(t, 20*time.Millisecond)

	m.Advance(30 * time.Millisecond) // 1 tick, 10ms residue
	alpha := 0.01

	rp := m.RenderState()
	wantY := m.prev.Y + m.Player().VY*alpha
	if rp.Y != wantY {
		t.Errorf("interpolated y = %v, want %v", rp.Y, wantY)
	}

	// Extrapolation is visual only: simulation state must be untouched.
	before := m.Player()
	m.RenderState()
	if m.Player() != before {
		t.Error("RenderState must not feed back into simulation state")
	}
}

func TestModelRenderStateAtTickBoundary(t *testing.T) {
	m := testModel(t, 20*time.Millisecond)

	m.Advance(40 * time.Millisecond) // 2 ticks, no residue
	rp := m.RenderState()
	if rp.X != m.prev.X || rp.Y != m.prev.Y {
		t.Error("zero residue should render the previous snapshot unshifted")
	}
}

func TestModelGridSwapTakesEffectNextTick(t *testing.T) {
	m := testModel(t, 20*time.Millisecond)

	// Remove the floor entirely; the player now falls forever.
	empty, err := FromTiles(20, 10, 16, make([]Tile, 200))
	if err != nil {
		t.Fatalf("FromTiles: %v", err)
	}
	m.SetGrid(empty)

	for i := 0; i < 50; i++ {
		m.Advance(20 * time.Millisecond)
	}
	if m.Player().Vert != Falling {
		t.Fatalf("player on floorless grid is %v, want Falling", m.Player().Vert)
	}

	// Swap a floored grid back in: landing happens with no special-casing.
	floored, err := NewGrid(20, 60, 16)
	if err != nil {
		t.Fatalf("NewGrid: %v", err)
	}
	m.SetGrid(floored)
	for i := 0; i < 2000 && m.Player().Vert != Standing; i++ {
		m.Advance(20 * time.Millisecond)
	}
	if m.Player().Vert != Standing {
		t.Error("player never landed after grid swap")
	}
}

func TestModelFloorLandingScenario(t *testing.T) {
	// Room 20x10, 16 px tiles, floor at row 9. The player starts airborne
	// at (10, 10) with an 8x20 hitbox and lands with its bottom edge
	// exactly on the floor top: y = 9*16 - 20 = 124.
	m := testModel(t, time.Second/150)

	for i := 0; i < 5000 && m.Player().Vert != Standing; i++ {
		m.Advance(m.TickDuration())
	}

	p := m.Player()
	if p.Vert != Standing {
		t.Fatal("player never landed")
	}
	if p.VY != 0 {
		t.Errorf("landed vy = %v, want 0", p.VY)
	}
	if p.Y != 124 {
		t.Errorf("landed y = %v, want exactly 124", p.Y)
	}
}

func TestModelAppliesIntentsImmediately(t *testing.T) {
	m := testModel(t, 20*time.Millisecond)

	m.Apply(core.PressRight)
	if m.Player().Horiz != MovingRight {
		t.Errorf("intent not applied to mode: %v", m.Player().Horiz)
	}

	// Mode is read at the top of Update, so the intent shapes the next tick.
	m.Advance(20 * time.Millisecond)
	if m.Player().VX <= 0 {
		t.Errorf("press-right should accelerate on the next tick, vx = %v", m.Player().VX)
	}
}
