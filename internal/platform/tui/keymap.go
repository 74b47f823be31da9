package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/cubesnake/internal/core"
)

// KeyMapper translates Bubble Tea key messages to game actions.
type KeyMapper struct{}

// NewKeyMapper creates a key mapper with the default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key to an action (possibly ActionNone) and reports
// whether it is a quit request.
//
// Arrows, WASD and HJKL steer in the local frame of the face the head is on.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	switch msg.String() {
	case "ctrl+c", "q":
		return core.ActionQuit, true
	case "up", "w", "k":
		return core.ActionUp, false
	case "down", "s", "j":
		return core.ActionDown, false
	case "left", "a", "h":
		return core.ActionLeft, false
	case "right", "d", "l":
		return core.ActionRight, false
	case "p", " ":
		return core.ActionPause, false
	case "r":
		return core.ActionRestart, false
	case "enter":
		return core.ActionConfirm, false
	case "esc", "b":
		return core.ActionBack, false
	}
	return core.ActionNone, false
}

// MapKeyToFrame sets the mapped action on frame.
// Returns true if the key was a quit request.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) bool {
	action, isQuit := km.MapKey(msg)
	if action != core.ActionNone {
		frame.Set(action)
	}
	return isQuit
}
