package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/grotlabs/grot/internal/platform/tui"
	"github.com/grotlabs/grot/internal/room"
	"github.com/grotlabs/grot/internal/storage"
)

var statsCmd = &cobra.Command{
	Use:   "stats [room]",
	Short: "Show run history",
	Long: `Show the longest recorded runs, per room. With a room argument the
view opens on that room; tab cycles through the rest.

Examples:
  grot stats
  grot stats pit`,
	Args: cobra.MaximumNArgs(1),
	Run:  runStats,
}

func runStats(_ *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening run database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	// Rooms on disk plus the built-in one, requested room first.
	ids, _ := room.NewLoader(flagRoomsDir).ListIDs()
	ids = append(ids, "default")
	if len(args) == 1 {
		ordered := []string{args[0]}
		for _, id := range ids {
			if id != args[0] {
				ordered = append(ordered, id)
			}
		}
		ids = ordered
	}

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	model := tui.NewStatsModel(store, ids, width, height)
	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
