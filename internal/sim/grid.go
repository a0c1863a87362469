// Package sim is the simulation core: a fixed-timestep physics and collision
// engine that advances a player character against a grid of solid tiles,
// decoupled from the rate at which frames are drawn.
//
// The package contains no external dependencies to keep the simulation pure
// and testable; logging, input mapping and rendering live in the platform
// layer.
package sim

import (
	"fmt"
	"math"

	"github.com/grotlabs/grot/internal/core"
)

// Tile is the kind of a single grid cell.
type Tile uint8

const (
	TileEmpty Tile = iota
	TileFilled
)

// String returns a human-readable name for the tile kind.
func (t Tile) String() string {
	switch t {
	case TileEmpty:
		return "Empty"
	case TileFilled:
		return "Filled"
	default:
		return "Unknown"
	}
}

// Grid is a 2D grid of tiles in row-major order: index = row*width + col.
// One grid is active per room; the simulation reads it every tick and never
// mutates it. Tile toggling exists for the editor only.
type Grid struct {
	width    int
	height   int
	tileSize int // Pixels per tile edge; the grid is uniform
	tiles    []Tile
}

// NewGrid creates a grid with all cells empty except a solid floor stamped
// on the last row.
func NewGrid(width, height, tileSize int) (*Grid, error) {
	g, err := emptyGrid(width, height, tileSize)
	if err != nil {
		return nil, err
	}
	for col := 0; col < width; col++ {
		g.tiles[(height-1)*width+col] = TileFilled
	}
	return g, nil
}

// FromTiles creates a grid from an existing row-major tile sequence, as
// loaded from a room file. The sequence length must equal width*height.
func FromTiles(width, height, tileSize int, tiles []Tile) (*Grid, error) {
	g, err := emptyGrid(width, height, tileSize)
	if err != nil {
		return nil, err
	}
	if len(tiles) != width*height {
		return nil, fmt.Errorf("sim: %d tiles for %dx%d grid: %w",
			len(tiles), width, height, ErrInvalidGridData)
	}
	copy(g.tiles, tiles)
	return g, nil
}

func emptyGrid(width, height, tileSize int) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("sim: grid dimensions %dx%d: %w", width, height, ErrMisconfiguration)
	}
	if tileSize <= 0 {
		return nil, fmt.Errorf("sim: tile size %d: %w", tileSize, ErrMisconfiguration)
	}
	return &Grid{
		width:    width,
		height:   height,
		tileSize: tileSize,
		tiles:    make([]Tile, width*height),
	}, nil
}

// Width returns the grid width in tiles.
func (g *Grid) Width() int {
	return g.width
}

// Height returns the grid height in tiles.
func (g *Grid) Height() int {
	return g.height
}

// TileSize returns the tile edge length in pixels.
func (g *Grid) TileSize() int {
	return g.tileSize
}

// PixelWidth returns the grid width in pixels.
func (g *Grid) PixelWidth() int {
	return g.width * g.tileSize
}

// PixelHeight returns the grid height in pixels.
func (g *Grid) PixelHeight() int {
	return g.height * g.tileSize
}

// TileAt returns the tile at the given index. Any out-of-range index
// returns TileEmpty, so probes past the grid edge behave as open space.
func (g *Grid) TileAt(col, row int) Tile {
	if col < 0 || col >= g.width || row < 0 || row >= g.height {
		return TileEmpty
	}
	return g.tiles[row*g.width+col]
}

// TileAtPoint converts continuous pixel coordinates to a tile index and
// returns the tile kind together with its pixel-space bounding rectangle,
// needed for clamping the player against the tile edge.
func (g *Grid) TileAtPoint(x, y float64) (col, row int, t Tile, bounds core.Rect) {
	size := float64(g.tileSize)
	col = int(math.Floor(x / size))
	row = int(math.Floor(y / size))
	t = g.TileAt(col, row)
	bounds = core.NewRect(float64(col)*size, float64(row)*size, size, size)
	return col, row, t, bounds
}

// TileBounds returns the pixel-space bounding rectangle of the tile at the
// given index, whether or not the index is inside the grid.
func (g *Grid) TileBounds(col, row int) core.Rect {
	size := float64(g.tileSize)
	return core.NewRect(float64(col)*size, float64(row)*size, size, size)
}

// Toggle flips the tile at the given index between empty and filled.
// Consumed by the editor only; the simulation never mutates tiles.
func (g *Grid) Toggle(col, row int) error {
	if col < 0 || col >= g.width || row < 0 || row >= g.height {
		return fmt.Errorf("sim: toggle (%d, %d) in %dx%d grid: %w",
			col, row, g.width, g.height, ErrOutOfBounds)
	}
	i := row*g.width + col
	if g.tiles[i] == TileEmpty {
		g.tiles[i] = TileFilled
	} else {
		g.tiles[i] = TileEmpty
	}
	return nil
}

// Tiles returns a copy of the row-major tile sequence, for serialization.
func (g *Grid) Tiles() []Tile {
	tiles := make([]Tile, len(g.tiles))
	copy(tiles, g.tiles)
	return tiles
}

// Clone returns a deep copy of the grid. Used when handing a working copy
// to the editor so the running simulation is never partially mutated.
func (g *Grid) Clone() *Grid {
	tiles := make([]Tile, len(g.tiles))
	copy(tiles, g.tiles)
	return &Grid{
		width:    g.width,
		height:   g.height,
		tileSize: g.tileSize,
		tiles:    tiles,
	}
}

// Equal returns true if two grids have identical dimensions, tile size and
// tile contents.
func (g *Grid) Equal(other *Grid) bool {
	if g.width != other.width || g.height != other.height || g.tileSize != other.tileSize {
		return false
	}
	for i, t := range g.tiles {
		if t != other.tiles[i] {
			return false
		}
	}
	return true
}
