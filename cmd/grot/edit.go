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
)

var editCmd = &cobra.Command{
	Use:   "edit <room>",
	Short: "Edit a room",
	Long: `Open a room straight in the editor. The same screen as 'grot play'
with the E key, just skipping the play half.

Controls:
  Arrows/WASD   - Move cursor
  Space/Enter   - Toggle tile
  S             - Save room to disk
  E             - Try the room (resume simulation)
  Q/Ctrl+C      - Save and quit

Examples:
  grot edit pit`,
	Args: cobra.ExactArgs(1),
	Run:  runEdit,
}

func runEdit(_ *cobra.Command, args []string) {
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	r, err := room.NewLoader(flagRoomsDir).LoadByID(args[0])
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

	logger := log.NewWithOptions(os.Stderr, log.Options{Prefix: "grot"})

	// No run database: editing is not a run.
	play := tui.NewPlayModel(model, r, nil, logger, rtCfg).StartEditing()
	if err := tui.Run(play); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
