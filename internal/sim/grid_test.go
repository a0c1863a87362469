package sim

import (
	"errors"
	"testing"
)

func TestNewGridStampsFloor(t *testing.T) {
	g, err := NewGrid(20, 10, 16)
	if err != nil {
		t.Fatalf("NewGrid: %v", err)
	}

	for col := 0; col < 20; col++ {
		if g.TileAt(col, 9) != TileFilled {
			t.Errorf("floor tile (%d, 9) should be filled", col)
		}
	}
	for row := 0; row < 9; row++ {
		for col := 0; col < 20; col++ {
			if g.TileAt(col, row) != TileEmpty {
				t.Errorf("tile (%d, %d) should be empty", col, row)
			}
		}
	}
}

func TestNewGridMisconfiguration(t *testing.T) {
	cases := []struct {
		name          string
		w, h, tileSize int
	}{
		{"zero width", 0, 10, 16},
		{"negative height", 20, -1, 16},
		{"zero tile size", 20, 10, 0},
	}
	for _, tc := range cases {
		if _, err := NewGrid(tc.w, tc.h, tc.tileSize); !errors.Is(err, ErrMisconfiguration) {
			t.Errorf("%s: want ErrMisconfiguration, got %v", tc.name, err)
		}
	}
}

func TestTileAtOutOfRangeIsEmpty(t *testing.T) {
	g, _ := NewGrid(20, 10, 16)

	probes := [][2]int{{-1, 0}, {0, -1}, {20, 0}, {0, 10}, {100, 100}}
	for _, p := range probes {
		if g.TileAt(p[0], p[1]) != TileEmpty {
			t.Errorf("TileAt(%d, %d) past the edge should be empty", p[0], p[1])
		}
	}
}

func TestTileAtPoint(t *testing.T) {
	g, _ := NewGrid(20, 10, 16)

	col, row, tile, bounds := g.TileAtPoint(33.5, 150.0)
	if col != 2 || row != 9 {
		t.Errorf("TileAtPoint(33.5, 150) index = (%d, %d), want (2, 9)", col, row)
	}
	if tile != TileFilled {
		t.Errorf("TileAtPoint(33.5, 150) = %v, want Filled (floor row)", tile)
	}
	if bounds.Left() != 32 || bounds.Top() != 144 || bounds.Right() != 48 || bounds.Bottom() != 160 {
		t.Errorf("bounds = %+v, want 32,144 to 48,160", bounds)
	}

	// Negative coordinates resolve to negative indices, not a wrapped cell.
	col, row, tile, _ = g.TileAtPoint(-0.5, -0.5)
	if col != -1 || row != -1 {
		t.Errorf("TileAtPoint(-0.5, -0.5) index = (%d, %d), want (-1, -1)", col, row)
	}
	if tile != TileEmpty {
		t.Errorf("tile past the left edge should be empty, got %v", tile)
	}
}

func TestToggle(t *testing.T) {
	g, _ := NewGrid(20, 10, 16)

	if err := g.Toggle(3, 4); err != nil {
		t.Fatalf("Toggle(3, 4): %v", err)
	}
	if g.TileAt(3, 4) != TileFilled {
		t.Error("toggled tile should be filled")
	}
	if err := g.Toggle(3, 4); err != nil {
		t.Fatalf("second Toggle(3, 4): %v", err)
	}
	if g.TileAt(3, 4) != TileEmpty {
		t.Error("double-toggled tile should be empty again")
	}
}

func TestToggleOutOfBounds(t *testing.T) {
	g, _ := NewGrid(20, 10, 16)

	for _, p := range [][2]int{{-1, 0}, {20, 0}, {0, 10}} {
		err := g.Toggle(p[0], p[1])
		if !errors.Is(err, ErrOutOfBounds) {
			t.Errorf("Toggle(%d, %d): want ErrOutOfBounds, got %v", p[0], p[1], err)
		}
	}
}

func TestFromTilesValidatesCount(t *testing.T) {
	tiles := make([]Tile, 19) // One short of 4x5
	if _, err := FromTiles(4, 5, 16, tiles); !errors.Is(err, ErrInvalidGridData) {
		t.Errorf("want ErrInvalidGridData, got %v", err)
	}

	tiles = make([]Tile, 20)
	tiles[7] = TileFilled
	g, err := FromTiles(4, 5, 16, tiles)
	if err != nil {
		t.Fatalf("FromTiles: %v", err)
	}
	if g.TileAt(3, 1) != TileFilled {
		t.Error("tile (3, 1) should be filled")
	}
}

func TestCloneIsIndependent(t *testing.T) {
	g, _ := NewGrid(4, 4, 16)
	c := g.Clone()

	if !g.Equal(c) {
		t.Fatal("clone should equal original")
	}
	if err := c.Toggle(0, 0); err != nil {
		t.Fatalf("Toggle: %v", err)
	}
	if g.TileAt(0, 0) != TileEmpty {
		t.Error("toggling the clone must not touch the original")
	}
	if g.Equal(c) {
		t.Error("grids should differ after clone mutation")
	}
}
