package core

import "strings"

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // W, Up arrow
	ActionDown           // S, Down arrow (soft drop)
	ActionLeft           // A, Left arrow
	ActionRight          // D, Right arrow
	ActionFire           // Space - fire or hard drop
	ActionRotate         // Z - counter-clockwise rotation
	ActionHold           // C, Shift - tetris hold slot
	ActionZap            // X - tempest superzapper
	ActionConfirm        // Enter - start / restart
	ActionBack           // B, Escape - go back to menu
	ActionQuit           // Q, Ctrl+C - exit game/session
	ActionPause          // P - pause/unpause game
	actionCount
)

var actionNames = [...]string{
	ActionNone:    "None",
	ActionUp:      "Up",
	ActionDown:    "Down",
	ActionLeft:    "Left",
	ActionRight:   "Right",
	ActionFire:    "Fire",
	ActionRotate:  "Rotate",
	ActionHold:    "Hold",
	ActionZap:     "Zap",
	ActionConfirm: "Confirm",
	ActionBack:    "Back",
	ActionQuit:    "Quit",
	ActionPause:   "Pause",
}

// String returns a human-readable name for the action.
func (a Action) String() string {
	if a < 0 || a >= actionCount {
		return "Unknown"
	}
	return actionNames[a]
}

// ActionSet is a bitset of actions.
type ActionSet uint32

// With returns the set with a added.
func (s ActionSet) With(a Action) ActionSet {
	return s | 1<<uint(a)
}

// Without returns the set with a removed.
func (s ActionSet) Without(a Action) ActionSet {
	return s &^ (1 << uint(a))
}

// Has reports whether a is in the set.
func (s ActionSet) Has(a Action) bool {
	return s&(1<<uint(a)) != 0
}

// String lists the actions in the set, e.g. "Left+Fire".
func (s ActionSet) String() string {
	var parts []string
	for a := ActionUp; a < actionCount; a++ {
		if s.Has(a) {
			parts = append(parts, a.String())
		}
	}
	if len(parts) == 0 {
		return "None"
	}
	return strings.Join(parts, "+")
}

// InputFrame is the input sampled once at the start of a frame.
//
// Pressed and Released are edges (the key went down or up since the last
// frame); Held is the level state. An action pressed this frame is also held.
type InputFrame struct {
	Pressed  ActionSet
	Held     ActionSet
	Released ActionSet
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{}
}

// Press records a key-down edge for a.
func (f *InputFrame) Press(a Action) {
	f.Pressed = f.Pressed.With(a)
	f.Held = f.Held.With(a)
}

// Release records a key-up edge for a.
func (f *InputFrame) Release(a Action) {
	f.Released = f.Released.With(a)
	f.Held = f.Held.Without(a)
}

// JustPressed returns true if a went down this frame.
func (f InputFrame) JustPressed(a Action) bool {
	return f.Pressed.Has(a)
}

// IsHeld returns true if a is currently down.
func (f InputFrame) IsHeld(a Action) bool {
	return f.Held.Has(a)
}

// JustReleased returns true if a went up this frame.
func (f InputFrame) JustReleased(a Action) bool {
	return f.Released.Has(a)
}

// Empty reports whether the frame carries no input at all.
func (f InputFrame) Empty() bool {
	return f.Pressed == 0 && f.Held == 0 && f.Released == 0
}

// Clear resets all actions.
func (f *InputFrame) Clear() {
	*f = InputFrame{}
}
