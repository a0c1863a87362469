package room

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/grotlabs/grot/internal/sim"
)

// Room is a loaded room: its parsed file plus where it came from.
// ID is the file name without extension.
type Room struct {
	ID       string
	File     File
	FilePath string
}

// Grid builds the validated grid for this room.
func (r Room) Grid() (*sim.Grid, error) {
	return r.File.ToGrid()
}

// Loader loads rooms from a directory.
type Loader struct {
	Root string
}

// NewLoader creates a loader rooted at the given directory.
func NewLoader(root string) *Loader {
	return &Loader{Root: root}
}

// LoadAll recursively scans and loads all room files, sorted by ID for
// deterministic ordering. Files that fail to parse or validate are skipped.
func (l *Loader) LoadAll() ([]Room, error) {
	var rooms []Room

	err := filepath.WalkDir(l.Root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if !isSupportedExtension(filepath.Ext(path)) {
			return nil
		}

		r, err := l.LoadFile(path)
		if err != nil {
			// Skip invalid files
			return nil
		}
		rooms = append(rooms, r)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("room: walking directory %s: %w", l.Root, err)
	}

	sort.Slice(rooms, func(i, j int) bool {
		return rooms[i].ID < rooms[j].ID
	})
	return rooms, nil
}

// LoadFile loads and validates a single room file.
func (l *Loader) LoadFile(path string) (Room, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Room{}, fmt.Errorf("room: reading %s: %w", path, err)
	}

	f, err := Parse(data, filepath.Ext(path))
	if err != nil {
		return Room{}, fmt.Errorf("room: parsing %s: %w", path, err)
	}
	// Validate eagerly so a bad room never reaches the simulation.
	if _, err := f.ToGrid(); err != nil {
		return Room{}, fmt.Errorf("room: validating %s: %w", path, err)
	}

	return Room{
		ID:       roomID(path),
		File:     f,
		FilePath: path,
	}, nil
}

// LoadByID loads a specific room by ID.
func (l *Loader) LoadByID(id string) (Room, error) {
	rooms, err := l.LoadAll()
	if err != nil {
		return Room{}, err
	}
	for _, r := range rooms {
		if r.ID == id {
			return r, nil
		}
	}
	return Room{}, fmt.Errorf("room: not found: %s", id)
}

// ListIDs returns all room IDs in sorted order.
func (l *Loader) ListIDs() ([]string, error) {
	rooms, err := l.LoadAll()
	if err != nil {
		return nil, err
	}
	ids := make([]string, len(rooms))
	for i, r := range rooms {
		ids[i] = r.ID
	}
	return ids, nil
}

// Save writes a room file, format chosen by the path's extension, creating
// parent directories as needed.
func Save(path string, f File) error {
	data, err := Encode(f, filepath.Ext(path))
	if err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("room: creating directory %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("room: writing %s: %w", path, err)
	}
	return nil
}

func roomID(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

func isSupportedExtension(ext string) bool {
	ext = strings.ToLower(ext)
	for _, supported := range SupportedExtensions() {
		if ext == supported {
			return true
		}
	}
	return false
}
