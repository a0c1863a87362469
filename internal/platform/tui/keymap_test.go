package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/grotlabs/grot/internal/core"
)

func keyMsg(s string) tea.KeyMsg {
	if s == " " {
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	}
	switch s {
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestMapKeyBindings(t *testing.T) {
	tests := []struct {
		key  string
		want core.Intent
	}{
		{"left", core.PressLeft},
		{"a", core.PressLeft},
		{"right", core.PressRight},
		{"d", core.PressRight},
		{"up", core.PressJump},
		{"w", core.PressJump},
		{" ", core.PressJump},
		{"x", core.IntentNone},
	}

	for _, tt := range tests {
		km := NewKeyMapper()
		if got := km.MapKey(keyMsg(tt.key)); got != tt.want {
			t.Errorf("MapKey(%q) = %v, want %v", tt.key, got, tt.want)
		}
	}
}

func TestAutorepeatDoesNotReEmitPress(t *testing.T) {
	km := NewKeyMapper()

	if got := km.MapKey(keyMsg("left")); got != core.PressLeft {
		t.Fatalf("first event = %v, want PressLeft", got)
	}
	// Autorepeat events refresh the hold silently.
	for i := 0; i < 5; i++ {
		if got := km.MapKey(keyMsg("left")); got != core.IntentNone {
			t.Errorf("repeat %d = %v, want IntentNone", i, got)
		}
	}
}

func TestReleaseSynthesizedAfterSilence(t *testing.T) {
	km := NewKeyMapper()
	km.MapKey(keyMsg("right"))

	// The hold survives while frames are within the TTL.
	for i := 0; i < holdFrames-1; i++ {
		if rel := km.Frame(); len(rel) != 0 {
			t.Fatalf("frame %d released early: %v", i, rel)
		}
	}

	rel := km.Frame()
	if len(rel) != 1 || rel[0] != core.ReleaseRight {
		t.Errorf("released = %v, want [ReleaseRight]", rel)
	}

	// Nothing left to release.
	if rel := km.Frame(); len(rel) != 0 {
		t.Errorf("second release = %v, want none", rel)
	}
}

func TestAutorepeatRefreshesHold(t *testing.T) {
	km := NewKeyMapper()
	km.MapKey(keyMsg("a"))

	for i := 0; i < holdFrames*3; i++ {
		km.MapKey(keyMsg("a")) // key still held, terminal keeps repeating
		if rel := km.Frame(); len(rel) != 0 {
			t.Fatalf("frame %d released while key repeating: %v", i, rel)
		}
	}
}

func TestReleaseAll(t *testing.T) {
	km := NewKeyMapper()
	km.MapKey(keyMsg("left"))
	km.MapKey(keyMsg(" "))

	rel := km.ReleaseAll()
	if len(rel) != 2 {
		t.Fatalf("released %d intents, want 2", len(rel))
	}
	seen := map[core.Intent]bool{}
	for _, in := range rel {
		seen[in] = true
	}
	if !seen[core.ReleaseLeft] || !seen[core.ReleaseJump] {
		t.Errorf("released = %v, want ReleaseLeft and ReleaseJump", rel)
	}

	// A fresh press after ReleaseAll emits again.
	if got := km.MapKey(keyMsg("left")); got != core.PressLeft {
		t.Errorf("press after ReleaseAll = %v, want PressLeft", got)
	}
}

func TestMapKeyToEditAction(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		key  string
		want EditAction
	}{
		{"up", EditActionUp},
		{"k", EditActionUp},
		{"j", EditActionDown},
		{"h", EditActionLeft},
		{"l", EditActionRight},
		{" ", EditActionToggle},
		{"s", EditActionSave},
		{"x", EditActionNone},
	}

	for _, tt := range tests {
		if got := km.MapKeyToEditAction(keyMsg(tt.key)); got != tt.want {
			t.Errorf("MapKeyToEditAction(%q) = %v, want %v", tt.key, got, tt.want)
		}
	}
}
