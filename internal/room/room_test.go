package room

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/grotlabs/grot/internal/sim"
)

func TestRoundTripThroughFile(t *testing.T) {
	g, err := sim.NewGrid(20, 10, 16)
	if err != nil {
		t.Fatalf("NewGrid: %v", err)
	}
	if err := g.Toggle(3, 4); err != nil {
		t.Fatalf("Toggle: %v", err)
	}

	for _, ext := range []string{".yaml", ".json"} {
		data, err := Encode(FromGrid("test", g), ext)
		if err != nil {
			t.Fatalf("%s encode: %v", ext, err)
		}
		f, err := Parse(data, ext)
		if err != nil {
			t.Fatalf("%s parse: %v", ext, err)
		}
		back, err := f.ToGrid()
		if err != nil {
			t.Fatalf("%s ToGrid: %v", ext, err)
		}
		if !g.Equal(back) {
			t.Errorf("%s round trip changed the grid", ext)
		}
		if f.Name != "test" {
			t.Errorf("%s round trip lost the name: %q", ext, f.Name)
		}
	}
}

func TestToGridRejectsMismatchedDimensions(t *testing.T) {
	base := File{
		Width:    3,
		Height:   2,
		TileSize: 16,
		Rows:     []string{"...", "###"},
	}
	if _, err := base.ToGrid(); err != nil {
		t.Fatalf("valid file rejected: %v", err)
	}

	f := base
	f.Rows = []string{"..."}
	if _, err := f.ToGrid(); !errors.Is(err, sim.ErrInvalidGridData) {
		t.Errorf("missing row: want ErrInvalidGridData, got %v", err)
	}

	f = base
	f.Rows = []string{"....", "###"}
	if _, err := f.ToGrid(); !errors.Is(err, sim.ErrInvalidGridData) {
		t.Errorf("wide row: want ErrInvalidGridData, got %v", err)
	}

	f = base
	f.Rows = []string{"..x", "###"}
	if _, err := f.ToGrid(); !errors.Is(err, sim.ErrInvalidGridData) {
		t.Errorf("unknown tile char: want ErrInvalidGridData, got %v", err)
	}

	f = base
	f.TileSize = 0
	if _, err := f.ToGrid(); !errors.Is(err, sim.ErrMisconfiguration) {
		t.Errorf("zero tile size: want ErrMisconfiguration, got %v", err)
	}
}

func TestParseUnsupportedExtension(t *testing.T) {
	if _, err := Parse([]byte("width: 3"), ".toml"); err == nil {
		t.Error("parsing .toml should fail")
	}
	if _, err := Encode(File{}, ".toml"); err == nil {
		t.Error("encoding .toml should fail")
	}
}

func TestLoaderFindsAndSortsRooms(t *testing.T) {
	dir := t.TempDir()

	g, _ := sim.NewGrid(4, 3, 16)
	for _, name := range []string{"bravo.yaml", "alpha.json", "nested/charlie.yml"} {
		path := filepath.Join(dir, name)
		if err := Save(path, FromGrid("", g)); err != nil {
			t.Fatalf("Save %s: %v", name, err)
		}
	}
	// A bad room file gets skipped, not surfaced.
	if err := os.WriteFile(filepath.Join(dir, "broken.yaml"), []byte("width: [oops"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	l := NewLoader(dir)
	ids, err := l.ListIDs()
	if err != nil {
		t.Fatalf("ListIDs: %v", err)
	}
	want := []string{"alpha", "bravo", "charlie"}
	if len(ids) != len(want) {
		t.Fatalf("ids = %v, want %v", ids, want)
	}
	for i := range want {
		if ids[i] != want[i] {
			t.Errorf("ids[%d] = %q, want %q", i, ids[i], want[i])
		}
	}
}

func TestLoaderLoadByID(t *testing.T) {
	dir := t.TempDir()
	g, _ := sim.NewGrid(4, 3, 16)
	if err := Save(filepath.Join(dir, "pit.yaml"), FromGrid("The Pit", g)); err != nil {
		t.Fatalf("Save: %v", err)
	}

	l := NewLoader(dir)
	r, err := l.LoadByID("pit")
	if err != nil {
		t.Fatalf("LoadByID: %v", err)
	}
	if r.File.Name != "The Pit" {
		t.Errorf("name = %q, want %q", r.File.Name, "The Pit")
	}
	loaded, err := r.Grid()
	if err != nil {
		t.Fatalf("Grid: %v", err)
	}
	if !g.Equal(loaded) {
		t.Error("loaded grid differs from saved grid")
	}

	if _, err := l.LoadByID("nope"); err == nil {
		t.Error("unknown room ID should fail")
	}
}

func TestLoaderSkipsInvalidGrid(t *testing.T) {
	dir := t.TempDir()
	// Parseable YAML, but tile count does not match dimensions.
	bad := File{Width: 4, Height: 3, TileSize: 16, Rows: []string{"...."}}
	data, err := Encode(bad, ".yaml")
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "bad.yaml"), data, 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	l := NewLoader(dir)
	if _, err := l.LoadFile(filepath.Join(dir, "bad.yaml")); !errors.Is(err, sim.ErrInvalidGridData) {
		t.Errorf("LoadFile: want ErrInvalidGridData, got %v", err)
	}

	rooms, err := l.LoadAll()
	if err != nil {
		t.Fatalf("LoadAll: %v", err)
	}
	if len(rooms) != 0 {
		t.Errorf("LoadAll picked up %d invalid rooms", len(rooms))
	}
}
