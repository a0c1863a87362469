package tui

import (
	"io"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/grotlabs/grot/internal/core"
	"github.com/grotlabs/grot/internal/room"
	"github.com/grotlabs/grot/internal/sim"
)

func testPlayModel(t *testing.T) PlayModel {
	t.Helper()

	g, err := sim.NewGrid(20, 10, 16)
	if err != nil {
		t.Fatalf("NewGrid: %v", err)
	}
	params := sim.Params{
		WalkSpeed: 120, WalkAccel: 600, StopAccel: 400,
		FallSpeed: 300, FallAccel: 300,
		JumpSpeed: -120, JumpAccel: -1200,
		Width: 8, Height: 20,
	}
	model, err := sim.NewModel(time.Second/150, g, sim.NewPlayer(params, 10, 10))
	if err != nil {
		t.Fatalf("NewModel: %v", err)
	}

	r := room.Room{ID: "test", File: room.FromGrid("test", g)}
	logger := log.New(io.Discard)
	cfg := core.RuntimeConfig{ScreenW: 60, ScreenH: 16, FrameRate: 60}

	return NewPlayModel(model, r, nil, logger, cfg)
}

func TestRenderScreenGroupsColorRuns(t *testing.T) {
	s := core.NewScreen(6, 1)
	s.SetCell(0, 0, core.Cell{Rune: 'a', Color: core.ColorRed})
	s.SetCell(1, 0, core.Cell{Rune: 'b', Color: core.ColorRed})
	s.SetCell(2, 0, core.Cell{Rune: 'c', Color: core.ColorDefault})

	out := RenderScreen(s)
	// The styled output still contains the raw text in order.
	for _, want := range []string{"ab", "c"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q: %q", want, out)
		}
	}
}

func TestRenderScreenLineCount(t *testing.T) {
	s := core.NewScreen(8, 5)
	out := RenderScreen(s)
	if got := strings.Count(out, "\n"); got != 4 {
		t.Errorf("got %d newlines, want 4", got)
	}
}

func TestDrawWorldShowsFloorAndPlayer(t *testing.T) {
	m := testPlayModel(t)
	m.drawWorld()

	var tiles, player bool
	for y := 0; y < m.screen.Height(); y++ {
		for x := 0; x < m.screen.Width(); x++ {
			switch m.screen.GetCell(x, y).Color {
			case core.ColorGray:
				tiles = true
			case core.ColorOrange:
				player = true
			}
		}
	}
	if !tiles {
		t.Error("floor tiles not drawn")
	}
	if !player {
		t.Error("player not drawn")
	}

	// Status line mentions the room.
	view := RenderScreen(m.screen)
	if !strings.Contains(view, "test") {
		t.Error("status line missing room name")
	}
}

func TestDrawWorldEditorCursor(t *testing.T) {
	m := testPlayModel(t).StartEditing()
	m.drawWorld()

	found := false
	for y := 0; y < m.screen.Height(); y++ {
		for x := 0; x < m.screen.Width(); x++ {
			if m.screen.GetCell(x, y).Color == core.ColorYellow {
				found = true
			}
		}
	}
	if !found {
		t.Error("editor cursor not drawn")
	}
}
