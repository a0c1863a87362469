package sim

import "errors"

// Error taxonomy for the simulation core. Callers wrap these with context
// using fmt.Errorf and %w.
var (
	// ErrOutOfBounds reports a tile index outside the grid dimensions.
	// Recoverable: surfaced to the caller, never crashes the simulation.
	ErrOutOfBounds = errors.New("tile index out of bounds")

	// ErrInvalidGridData reports a persisted tile count that does not match
	// the declared grid dimensions. The load fails; the core never runs
	// with an inconsistent grid.
	ErrInvalidGridData = errors.New("tile data does not match grid dimensions")

	// ErrMisconfiguration reports construction parameters no downstream
	// arithmetic can be made safe for (non-positive tick duration, tile
	// size, hitbox, ...). Fatal at construction.
	ErrMisconfiguration = errors.New("invalid configuration")
)
