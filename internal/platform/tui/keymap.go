package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/flounder/internal/core"
)

// Terminals only report key presses, never releases. A movement key counts
// as held for initialHold after the first press, which covers the delay
// before auto-repeat kicks in, and for repeatHold after each repeat.
const (
	initialHold = 500 * time.Millisecond
	repeatHold  = 150 * time.Millisecond
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
	case "a", "h", "left":
		return core.ActionLeft, false
	case "d", "l", "right":
		return core.ActionRight, false
	case " ", "w", "k", "up":
		return core.ActionJump, false
	case "p", "esc":
		return core.ActionPause, false
	case "r":
		return core.ActionRestart, false
	case "`", "~":
		return core.ActionConsole, false
	}

	return core.ActionNone, false
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionRuns
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
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	case "tab":
		return MenuActionRuns
	}

	return MenuActionNone
}

type press struct {
	first time.Time
	last  time.Time
}

// HeldKeys turns a stream of key presses into per-frame held state.
// Movement keys stay held while presses keep arriving; every other action
// is held for exactly one frame.
type HeldKeys struct {
	moves   map[core.Action]press
	pending core.InputFrame
}

// NewHeldKeys creates an empty tracker.
func NewHeldKeys() *HeldKeys {
	return &HeldKeys{
		moves:   make(map[core.Action]press),
		pending: core.NewInputFrame(),
	}
}

// Press records a key press at time now.
func (h *HeldKeys) Press(a core.Action, now time.Time) {
	switch a {
	case core.ActionNone, core.ActionQuit:
		return
	case core.ActionLeft, core.ActionRight:
		// Reversing direction releases the opposite key immediately.
		opposite := core.ActionRight
		if a == core.ActionRight {
			opposite = core.ActionLeft
		}
		delete(h.moves, opposite)

		p, ok := h.moves[a]
		if !ok || !h.active(p, now) {
			p = press{first: now}
		}
		p.last = now
		h.moves[a] = p
	default:
		h.pending.Set(a)
	}
}

// Frame returns the actions held at time now and consumes one-shot
// actions.
func (h *HeldKeys) Frame(now time.Time) core.InputFrame {
	frame := h.pending.Clone()
	h.pending.Clear()
	for a, p := range h.moves {
		if h.active(p, now) {
			frame.Set(a)
		} else {
			delete(h.moves, a)
		}
	}
	return frame
}

// Release drops all held state.
func (h *HeldKeys) Release() {
	clear(h.moves)
	h.pending.Clear()
}

func (h *HeldKeys) active(p press, now time.Time) bool {
	window := repeatHold
	if p.last.Equal(p.first) {
		window = initialHold
	}
	return now.Sub(p.last) < window
}
