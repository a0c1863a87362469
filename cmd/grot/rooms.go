package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/grotlabs/grot/internal/config"
	"github.com/grotlabs/grot/internal/room"
	"github.com/grotlabs/grot/internal/sim"
)

var (
	flagNewWidth    int
	flagNewHeight   int
	flagNewTileSize int
)

var roomsCmd = &cobra.Command{
	Use:   "rooms",
	Short: "List available rooms",
	Long: `List the rooms found in the rooms directory.

Examples:
  grot rooms
  grot rooms --rooms ./my-rooms`,
	Run: runRooms,
}

var roomsNewCmd = &cobra.Command{
	Use:   "new <id>",
	Short: "Create a new room file",
	Long: `Create a new room file in the rooms directory. The room starts as
an empty box with a solid floor; edit it in-game with 'grot play <id>'
and the E key.

Examples:
  grot rooms new cavern
  grot rooms new wide --width 40 --height 12`,
	Args: cobra.ExactArgs(1),
	Run:  runRoomsNew,
}

func init() {
	roomsNewCmd.Flags().IntVar(&flagNewWidth, "width", config.DefaultRoomWidth, "Room width in tiles")
	roomsNewCmd.Flags().IntVar(&flagNewHeight, "height", config.DefaultRoomHeight, "Room height in tiles")
	roomsNewCmd.Flags().IntVar(&flagNewTileSize, "tile-size", config.DefaultTileSize, "Tile size in pixels")

	roomsCmd.AddCommand(roomsNewCmd)
}

func runRooms(_ *cobra.Command, _ []string) {
	rooms, err := room.NewLoader(flagRoomsDir).LoadAll()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading rooms: %v\n", err)
		os.Exit(1)
	}

	if len(rooms) == 0 {
		fmt.Printf("No rooms in %s. Create one with 'grot rooms new <id>'.\n", flagRoomsDir)
		return
	}

	fmt.Printf("%-16s %-24s %s\n", "ID", "NAME", "SIZE")
	for _, r := range rooms {
		name := r.File.Name
		if name == "" {
			name = "-"
		}
		fmt.Printf("%-16s %-24s %dx%d tiles (%dpx)\n",
			r.ID, name, r.File.Width, r.File.Height, r.File.TileSize)
	}
}

func runRoomsNew(_ *cobra.Command, args []string) {
	id := args[0]
	path := filepath.Join(flagRoomsDir, id+".yaml")

	if _, err := os.Stat(path); err == nil {
		fmt.Fprintf(os.Stderr, "Error: %s already exists\n", path)
		os.Exit(1)
	}

	g, err := sim.NewGrid(flagNewWidth, flagNewHeight, flagNewTileSize)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := room.Save(path, room.FromGrid(id, g)); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving room: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Created %s (%dx%d tiles). Play it with 'grot play %s'.\n",
		path, flagNewWidth, flagNewHeight, id)
}
