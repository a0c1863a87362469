// Package room persists tile grids as room files. Formats are routed by
// file extension: YAML for hand-edited rooms, JSON for compatibility with
// older room dumps. This package depends on sim but sim does not depend on
// it.
package room

import (
	"encoding/json"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/grotlabs/grot/internal/sim"
)

// Tile characters in the rows encoding.
const (
	charEmpty  = '.'
	charFilled = '#'
)

// File is the on-disk room shape. Tiles are stored as one string per row,
// '#' for filled and '.' for empty, which keeps room files readable and
// diffable while still validating against the declared dimensions.
type File struct {
	Name     string   `yaml:"name,omitempty" json:"name,omitempty"`
	Width    int      `yaml:"width" json:"width"`
	Height   int      `yaml:"height" json:"height"`
	TileSize int      `yaml:"tile_size" json:"tile_size"`
	Rows     []string `yaml:"tiles" json:"tiles"`
}

// FromGrid captures a grid into its file representation.
func FromGrid(name string, g *sim.Grid) File {
	tiles := g.Tiles()
	rows := make([]string, g.Height())
	for row := 0; row < g.Height(); row++ {
		var sb strings.Builder
		sb.Grow(g.Width())
		for col := 0; col < g.Width(); col++ {
			if tiles[row*g.Width()+col] == sim.TileFilled {
				sb.WriteByte(charFilled)
			} else {
				sb.WriteByte(charEmpty)
			}
		}
		rows[row] = sb.String()
	}
	return File{
		Name:     name,
		Width:    g.Width(),
		Height:   g.Height(),
		TileSize: g.TileSize(),
		Rows:     rows,
	}
}

// ToGrid validates the file against its declared dimensions and builds the
// grid. A tile count that does not match width*height fails the load; the
// simulation never runs with an inconsistent grid.
func (f File) ToGrid() (*sim.Grid, error) {
	if len(f.Rows) != f.Height {
		return nil, fmt.Errorf("room: %d rows declared %d: %w",
			len(f.Rows), f.Height, sim.ErrInvalidGridData)
	}
	tiles := make([]sim.Tile, 0, f.Width*f.Height)
	for i, row := range f.Rows {
		if len(row) != f.Width {
			return nil, fmt.Errorf("room: row %d has %d tiles, declared %d: %w",
				i, len(row), f.Width, sim.ErrInvalidGridData)
		}
		for j := 0; j < len(row); j++ {
			switch row[j] {
			case charFilled:
				tiles = append(tiles, sim.TileFilled)
			case charEmpty:
				tiles = append(tiles, sim.TileEmpty)
			default:
				return nil, fmt.Errorf("room: row %d col %d: unknown tile %q: %w",
					i, j, row[j], sim.ErrInvalidGridData)
			}
		}
	}
	return sim.FromTiles(f.Width, f.Height, f.TileSize, tiles)
}

// Parse decodes room file data routed by extension (".yaml", ".yml", ".json").
func Parse(data []byte, ext string) (File, error) {
	var f File
	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &f); err != nil {
			return File{}, fmt.Errorf("room: yaml unmarshal: %w", err)
		}
	case ".json":
		if err := json.Unmarshal(data, &f); err != nil {
			return File{}, fmt.Errorf("room: json unmarshal: %w", err)
		}
	default:
		return File{}, fmt.Errorf("room: unsupported extension %q", ext)
	}
	return f, nil
}

// Encode serializes a room file routed by extension.
func Encode(f File, ext string) ([]byte, error) {
	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		data, err := yaml.Marshal(f)
		if err != nil {
			return nil, fmt.Errorf("room: yaml marshal: %w", err)
		}
		return data, nil
	case ".json":
		data, err := json.MarshalIndent(f, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("room: json marshal: %w", err)
		}
		return append(data, '\n'), nil
	default:
		return nil, fmt.Errorf("room: unsupported extension %q", ext)
	}
}

// SupportedExtensions returns the file extensions the codec understands.
func SupportedExtensions() []string {
	return []string{".yaml", ".yml", ".json"}
}
