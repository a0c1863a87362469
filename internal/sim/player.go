package sim

import (
	"github.com/grotlabs/grot/internal/core"
)

// HorizMode is the player's horizontal motion mode.
type HorizMode uint8

const (
	HorizIdle HorizMode = iota
	MovingLeft
	MovingRight
	// StopMovingLeft and StopMovingRight are transitional modes entered on
	// key release: deceleration uses a larger acceleration constant than
	// walking so stopping feels snappier than starting. They transition to
	// HorizIdle once velocity reaches exactly zero.
	StopMovingLeft
	StopMovingRight
)

// String returns a human-readable name for the mode.
func (m HorizMode) String() string {
	switch m {
	case HorizIdle:
		return "Idle"
	case MovingLeft:
		return "MovingLeft"
	case MovingRight:
		return "MovingRight"
	case StopMovingLeft:
		return "StopMovingLeft"
	case StopMovingRight:
		return "StopMovingRight"
	default:
		return "Unknown"
	}
}

// VertMode is the player's vertical motion mode.
type VertMode uint8

const (
	Standing VertMode = iota
	Falling
	Jumping
)

// String returns a human-readable name for the mode.
func (m VertMode) String() string {
	switch m {
	case Standing:
		return "Standing"
	case Falling:
		return "Falling"
	case Jumping:
		return "Jumping"
	default:
		return "Unknown"
	}
}

// Params are the player's tuning constants, derived from configuration.
// Vertical values follow screen coordinates: positive is down, so JumpSpeed
// and JumpAccel are negative.
type Params struct {
	WalkSpeed float64 // Maximum walk speed, px/s
	WalkAccel float64 // Acceleration while a direction is held, px/s^2
	StopAccel float64 // Deceleration after release, px/s^2 (larger than WalkAccel)
	FallSpeed float64 // Terminal fall speed, px/s
	FallAccel float64 // Gravity, px/s^2
	JumpSpeed float64 // Jump speed ceiling, px/s (negative)
	JumpAccel float64 // Acceleration while jump is held, px/s^2 (negative)
	Width     float64 // Hitbox width, px
	Height    float64 // Hitbox height, px
}

// Player is the character's kinematic state plus the per-tick update rule.
// It is a plain value: the model keeps two snapshots (previous and current
// tick) by copying, purely for render interpolation.
type Player struct {
	Horiz  HorizMode
	Vert   VertMode
	X, Y   float64 // Position in continuous pixel coordinates (top-left)
	VX, VY float64 // Velocity, px/s
	Params Params
}

// NewPlayer creates a player at the given position. Vertical mode starts
// Falling; the first ground contact settles it to Standing.
func NewPlayer(params Params, x, y float64) Player {
	return Player{
		Horiz:  HorizIdle,
		Vert:   Falling,
		X:      x,
		Y:      y,
		Params: params,
	}
}

// Bounds returns the player hitbox in pixel coordinates.
func (p Player) Bounds() core.Rect {
	return core.NewRect(p.X, p.Y, p.Params.Width, p.Params.Height)
}

// Apply applies a movement intent immediately to the mode state. Mode is
// read at the top of Update, so an intent arriving mid-tick affects that
// tick's next update only.
func (p *Player) Apply(in core.Intent) {
	switch in {
	case core.PressLeft:
		p.Horiz = MovingLeft
	case core.ReleaseLeft:
		if p.Horiz == MovingLeft {
			p.Horiz = StopMovingLeft
		}
	case core.PressRight:
		p.Horiz = MovingRight
	case core.ReleaseRight:
		if p.Horiz == MovingRight {
			p.Horiz = StopMovingRight
		}
	case core.PressJump:
		if p.Vert == Standing {
			p.Vert = Jumping
		}
	case core.ReleaseJump:
		if p.Vert == Jumping {
			p.Vert = Falling
		}
	}
}

// Update advances the player by dt seconds against the live grid.
// Integration is semi-implicit Euler: velocity is updated and clamped
// before it moves position.
func (p *Player) Update(dt float64, g *Grid) {
	var ax, minVX, maxVX float64
	switch p.Horiz {
	case HorizIdle:
		ax, minVX, maxVX = 0, 0, 0
	case MovingLeft:
		ax, minVX, maxVX = -p.Params.WalkAccel, -p.Params.WalkSpeed, p.Params.WalkSpeed
	case MovingRight:
		ax, minVX, maxVX = p.Params.WalkAccel, -p.Params.WalkSpeed, p.Params.WalkSpeed
	case StopMovingLeft:
		ax, minVX, maxVX = p.Params.StopAccel, -p.Params.WalkSpeed, 0
	case StopMovingRight:
		ax, minVX, maxVX = -p.Params.StopAccel, 0, p.Params.WalkSpeed
	}

	var ay float64
	switch p.Vert {
	case Standing:
		ay = 0
	case Falling:
		ay = p.Params.FallAccel
	case Jumping:
		ay = p.Params.JumpAccel
	}

	p.VX = core.ClampF(p.VX+ax*dt, minVX, maxVX)
	p.VY = core.ClampF(p.VY+ay*dt, p.Params.JumpSpeed, p.Params.FallSpeed)

	p.X += p.VX * dt
	p.Y += p.VY * dt

	// Horizontal mode settles to idle once velocity reaches exactly zero;
	// the clamp above guarantees that happens instead of oscillating.
	if p.VX == 0 {
		p.Horiz = HorizIdle
	}
	// Jump apex: the clamp pins velocity to the jump-speed ceiling.
	if p.VY == p.Params.JumpSpeed {
		p.Vert = Falling
	}

	p.collideHorizontal(g)
	p.collideVertical(g)
}

// collideHorizontal probes the two tile rows at the hitbox's top and bottom
// edges on the leading side. A probe only counts as a wall when the tile's
// neighbor on the approach side is empty: a true wall face, not a tile the
// hitbox edge already overlaps while standing on it.
//
// The probes are point lookups, not a swept test; fast enough motion can
// tunnel through a one-tile wall within a single tick.
func (p *Player) collideHorizontal(g *Grid) {
	top := p.Y
	bottom := p.Y + p.Params.Height

	switch {
	case p.VX > 0:
		edge := p.X + p.Params.Width
		for _, py := range [2]float64{top, bottom} {
			col, row, t, bounds := g.TileAtPoint(edge, py)
			if t == TileFilled && g.TileAt(col-1, row) == TileEmpty {
				p.VX = 0
				p.X = bounds.Left() - p.Params.Width
				break
			}
		}
	case p.VX < 0:
		for _, py := range [2]float64{top, bottom} {
			col, row, t, bounds := g.TileAtPoint(p.X, py)
			if t == TileFilled && g.TileAt(col+1, row) == TileEmpty {
				p.VX = 0
				p.X = bounds.Right()
				break
			}
		}
	}
}

// collideVertical resolves floor contact, ledge walk-off and ceiling
// strikes using the two tile columns at the hitbox's horizontal extent.
func (p *Player) collideVertical(g *Grid) {
	left := p.X
	right := p.X + p.Params.Width

	switch {
	case p.VY > 0: // Falling
		feet := p.Y + p.Params.Height
		for _, px := range [2]float64{left, right} {
			_, _, t, bounds := g.TileAtPoint(px, feet)
			if t == TileFilled {
				p.VY = 0
				p.Y = bounds.Top() - p.Params.Height
				p.Vert = Standing
				break
			}
		}
	case p.VY < 0: // Jumping
		for _, px := range [2]float64{left, right} {
			_, _, t, bounds := g.TileAtPoint(px, p.Y)
			if t == TileFilled {
				p.VY = 0
				p.Y = bounds.Bottom()
				p.Vert = Falling
				break
			}
		}
	default: // At rest
		if p.Vert != Standing {
			return
		}
		// Ledge walk-off: both feet probes over open space.
		feet := p.Y + p.Params.Height
		_, _, tl, _ := g.TileAtPoint(left, feet)
		_, _, tr, _ := g.TileAtPoint(right, feet)
		if tl == TileEmpty && tr == TileEmpty {
			p.Vert = Falling
		}
	}
}
