// grot is a tile platformer that runs in the terminal.
//
// Usage:
//
//	grot play [room]      - Play a room (the built-in room by default)
//	grot edit <room>      - Open a room straight in the editor
//	grot rooms            - List available rooms
//	grot rooms new <id>   - Create a new room file
//	grot stats [room]     - Show run history
//	grot serve            - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>     - Render frame rate (default: 60)
//	--db <path>      - Run database path (default: ~/.grot/runs.db)
//	--rooms <dir>    - Rooms directory (default: ./rooms)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS      int
	flagDBPath   string
	flagRoomsDir string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "grot",
	Short: "Grot - a tile platformer in your terminal",
	Long: `Grot is a terminal tile platformer with a fixed-timestep simulation.
The player walks, jumps, and falls through rooms of tiles; rooms can be
edited in place and saved back to disk.

Available commands:
  play     - Play a room
  edit     - Open a room straight in the editor
  rooms    - List or create rooms
  stats    - View run history
  serve    - Start SSH server for remote play

Examples:
  grot play
  grot play pit --preset floaty
  grot edit pit
  grot rooms
  grot rooms new cavern
  grot stats pit
  grot serve --ssh :2222`,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Render frame rate")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.grot/runs.db", "Path to run database")
	rootCmd.PersistentFlags().StringVar(&flagRoomsDir, "rooms", "rooms", "Rooms directory")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(editCmd)
	rootCmd.AddCommand(roomsCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(serveCmd)
}
