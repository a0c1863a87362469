package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/grotlabs/grot/internal/config"
	"github.com/grotlabs/grot/internal/core"
	"github.com/grotlabs/grot/internal/platform/tui"
	"github.com/grotlabs/grot/internal/room"
	"github.com/grotlabs/grot/internal/sim"
	"github.com/grotlabs/grot/internal/storage"
)

var (
	flagConfig string
	flagPreset string
)

var playCmd = &cobra.Command{
	Use:   "play [room]",
	Short: "Play a room",
	Long: `Start the simulation in the given room. Without an argument the
built-in room is used: a flat floor to walk and jump on.

Controls:
  Left/A, Right/D  - Walk
  Up/W/Space       - Jump (while standing)
  E                - Toggle room editor
  Q/Ctrl+C         - Quit

In the editor:
  Arrows/WASD      - Move cursor
  Space/Enter      - Toggle tile
  S                - Save room to disk
  E                - Resume playing with the edited room

Physics presets:
  normal - Default tuning
  floaty - Slow falls and long jumps
  heavy  - Fast falls and short jumps

Examples:
  grot play
  grot play pit
  grot play pit --preset heavy
  grot play pit --config ./my-tuning.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom physics config YAML")
	playCmd.Flags().StringVar(&flagPreset, "preset", "", "Physics preset: normal, floaty, heavy")
}

func runPlay(_ *cobra.Command, args []string) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	if flagPreset != "" {
		preset, perr := config.ParsePreset(flagPreset)
		if perr != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", perr)
			os.Exit(1)
		}
		config.ApplyPreset(&cfg, preset)
	}

	r, err := resolveRoom(args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading room: %v\n", err)
		os.Exit(1)
	}

	grid, err := r.Grid()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid room %q: %v\n", r.ID, err)
		os.Exit(1)
	}

	model, err := sim.NewModel(
		cfg.TickDuration(),
		grid,
		sim.NewPlayer(cfg.Params(), cfg.Player.X, cfg.Player.Y),
	)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating simulation: %v\n", err)
		os.Exit(1)
	}

	// Terminal size for the initial screen buffer
	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	rtCfg := core.RuntimeConfig{
		ScreenW:   width,
		ScreenH:   height,
		FrameRate: flagFPS,
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open run database: %v\n", err)
		// Continue without storage - the game still works
		store = nil
	}

	logger := log.NewWithOptions(os.Stderr, log.Options{Prefix: "grot"})

	runErr := tui.Run(tui.NewPlayModel(model, r, store, logger, rtCfg))

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

// resolveRoom picks the room to play: the named one from the rooms
// directory, or the built-in default room.
func resolveRoom(args []string) (room.Room, error) {
	if len(args) == 1 {
		return room.NewLoader(flagRoomsDir).LoadByID(args[0])
	}

	g, err := sim.NewGrid(config.DefaultRoomWidth, config.DefaultRoomHeight, config.DefaultTileSize)
	if err != nil {
		return room.Room{}, err
	}
	return room.Room{ID: "default", File: room.FromGrid("default", g)}, nil
}
