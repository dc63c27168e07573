package tui

import (
	"math"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-farm/internal/core"
)

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to an action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	key := msg.String()

	// Global quit keys
	switch key {
	case "ctrl+c", "q":
		return core.ActionQuit, true
	}

	switch key {
	case "w", "up":
		return core.ActionUp, false
	case "s", "down":
		return core.ActionDown, false
	case "a", "left":
		return core.ActionLeft, false
	case "d", "right":
		return core.ActionRight, false
	case " ":
		return core.ActionPlant, false
	case "f":
		return core.ActionWater, false
	case "e":
		return core.ActionHarvest, false
	case "x":
		return core.ActionPull, false
	case "tab":
		return core.ActionNextSeed, false
	case "g":
		return core.ActionRefill, false
	case "enter":
		return core.ActionConfirm, false
	case "b", "esc":
		return core.ActionBack, false
	case "p":
		return core.ActionPause, false
	case "r":
		return core.ActionRestart, false
	}

	return core.ActionNone, false
}

// MapKeyToFrame updates an input frame based on a key message. Movement
// keys go through held so that key repeats read as a held direction.
// Returns true if the key was a quit request.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame, held *HeldKeys) bool {
	action, isQuit := km.MapKey(msg)
	switch {
	case action == core.ActionNone:
	case action.IsMovement() && held != nil:
		held.Press(action)
	default:
		frame.Set(action)
	}
	return isQuit
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionLeft
	MenuActionRight
	MenuActionSelect
	MenuActionScoreboard
	MenuActionBack
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	key := msg.String()

	switch key {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "a", "left", "h":
		return MenuActionLeft
	case "d", "right", "l":
		return MenuActionRight
	case "enter", " ":
		return MenuActionSelect
	case "tab":
		return MenuActionScoreboard
	case "b", "esc":
		return MenuActionBack
	}

	return MenuActionNone
}

// Terminals report no key releases, only the press and then auto-repeats
// after an initial delay. HeldKeys turns that stream into a held axis: a
// fresh press holds for the first window (long enough to bridge the repeat
// delay), each repeat re-arms a shorter window, and the direction drops
// once the window runs out.
const (
	holdFirstSeconds  = 0.35
	holdRepeatSeconds = 0.1
)

// HeldKeys tracks movement directions over ticks.
type HeldKeys struct {
	first  int
	repeat int
	ticks  map[core.Action]int
}

// NewHeldKeys creates a tracker for the given simulation tick rate.
func NewHeldKeys(tickRate int) *HeldKeys {
	if tickRate <= 0 {
		tickRate = 60
	}
	return &HeldKeys{
		first:  max(1, int(math.Round(holdFirstSeconds*float64(tickRate)))),
		repeat: max(1, int(math.Round(holdRepeatSeconds*float64(tickRate)))),
		ticks:  make(map[core.Action]int),
	}
}

// Press registers a key press (or repeat) for a movement action.
// Pressing a direction releases the opposite one.
func (h *HeldKeys) Press(a core.Action) {
	if !a.IsMovement() {
		return
	}
	delete(h.ticks, opposite(a))
	if h.ticks[a] > 0 {
		h.ticks[a] = h.repeat
		return
	}
	h.ticks[a] = h.first
}

// Apply sets every held direction on frame and ages the hold by one tick.
func (h *HeldKeys) Apply(frame *core.InputFrame) {
	for a, n := range h.ticks {
		frame.Set(a)
		if n <= 1 {
			delete(h.ticks, a)
			continue
		}
		h.ticks[a] = n - 1
	}
}

// Held reports whether a is currently held.
func (h *HeldKeys) Held(a core.Action) bool {
	return h.ticks[a] > 0
}

// Release drops every held direction.
func (h *HeldKeys) Release() {
	clear(h.ticks)
}

func opposite(a core.Action) core.Action {
	switch a {
	case core.ActionUp:
		return core.ActionDown
	case core.ActionDown:
		return core.ActionUp
	case core.ActionLeft:
		return core.ActionRight
	case core.ActionRight:
		return core.ActionLeft
	}
	return core.ActionNone
}
