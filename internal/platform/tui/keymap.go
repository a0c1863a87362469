package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/grotlabs/grot/internal/core"
)

// Control keys outside the movement set.
const (
	keyQuit     = "q"
	keyQuitCtrl = "ctrl+c"
	keyEditMode = "e"
	keySaveRoom = "s"
)

// holdFrames is how many render frames a movement key stays "held" after its
// last key event. Terminals report key presses and autorepeat but never key
// releases, so the mapper treats autorepeat silence as a release: while a key
// is physically held the terminal keeps repeating it, refreshing the counter;
// once events stop the counter runs out and a release intent is synthesized.
const holdFrames = 12

// KeyMapper translates Bubble Tea key messages to simulation intents.
// This centralizes key bindings and makes them testable.
type KeyMapper struct {
	held map[core.Intent]int
}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{held: make(map[core.Intent]int)}
}

// MapKey translates a key message to press intents. The first event of a
// held key yields its press intent; autorepeat events refresh the hold
// without emitting anything. Returns IntentNone for unbound keys.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) core.Intent {
	var press core.Intent

	switch msg.String() {
	case "left", "a":
		press = core.PressLeft
	case "right", "d":
		press = core.PressRight
	case "up", "w", " ":
		press = core.PressJump
	default:
		return core.IntentNone
	}

	_, alreadyHeld := km.held[press]
	km.held[press] = holdFrames
	if alreadyHeld {
		return core.IntentNone
	}
	return press
}

// Frame ages all held keys by one render frame and returns release intents
// for keys whose autorepeat has gone quiet.
func (km *KeyMapper) Frame() []core.Intent {
	var released []core.Intent
	for press, ttl := range km.held {
		ttl--
		if ttl <= 0 {
			delete(km.held, press)
			released = append(released, press.Release())
			continue
		}
		km.held[press] = ttl
	}
	return released
}

// ReleaseAll drops every held key and returns their release intents.
// Used when leaving play mode so no key stays stuck.
func (km *KeyMapper) ReleaseAll() []core.Intent {
	released := make([]core.Intent, 0, len(km.held))
	for press := range km.held {
		delete(km.held, press)
		released = append(released, press.Release())
	}
	return released
}

// EditAction represents an editor-specific action derived from input.
type EditAction int

const (
	EditActionNone EditAction = iota
	EditActionUp
	EditActionDown
	EditActionLeft
	EditActionRight
	EditActionToggle
	EditActionSave
)

// MapKeyToEditAction translates a key to an editor action.
func (km *KeyMapper) MapKeyToEditAction(msg tea.KeyMsg) EditAction {
	switch msg.String() {
	case "up", "w", "k": // vim-style k for up
		return EditActionUp
	case "down", "j": // vim-style j for down
		return EditActionDown
	case "left", "a", "h":
		return EditActionLeft
	case "right", "d", "l":
		return EditActionRight
	case " ", "enter":
		return EditActionToggle
	case keySaveRoom:
		return EditActionSave
	}
	return EditActionNone
}
