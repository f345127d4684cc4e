package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/neon-arcade/internal/core"
)

// Terminals report key presses and auto-repeats but no releases. An action
// stays held for holdFirst after a press and holdRepeat after each repeat;
// when no repeat arrives in time it is released. A press that follows the
// previous one by at least holdRepeat is a new tap, not a repeat.
const (
	holdFirst  = 250 * time.Millisecond
	holdRepeat = 90 * time.Millisecond
)

type holdState struct {
	until time.Time // release deadline
	last  time.Time // last key message for the action
}

// InputAdapter turns key messages into per-frame input.
type InputAdapter struct {
	keys    KeyMap
	pressed core.ActionSet
	held    map[core.Action]holdState
}

// NewInputAdapter creates an adapter for a key profile.
func NewInputAdapter(keys KeyMap) *InputAdapter {
	return &InputAdapter{
		keys: keys,
		held: make(map[core.Action]holdState),
	}
}

// Key records a key message received at now and returns the intents it mapped to.
func (a *InputAdapter) Key(msg tea.KeyMsg, now time.Time) []core.Action {
	actions := a.keys.Actions(msg)
	for _, act := range actions {
		st, held := a.held[act]
		if held && (a.pressed.Has(act) || now.Sub(st.last) < holdRepeat) {
			// auto-repeat, or a second press before the first was sampled
			a.held[act] = holdState{until: now.Add(holdRepeat), last: now}
			continue
		}
		a.pressed = a.pressed.With(act)
		a.held[act] = holdState{until: now.Add(holdFirst), last: now}
	}
	return actions
}

// Frame returns the input for a frame sampled at now and consumes the
// press edges.
func (a *InputAdapter) Frame(now time.Time) core.InputFrame {
	var f core.InputFrame
	for act, st := range a.held {
		switch {
		case a.pressed.Has(act):
			f.Press(act)
		case !now.Before(st.until):
			f.Release(act)
			delete(a.held, act)
		default:
			f.Held = f.Held.With(act)
		}
	}
	a.pressed = 0
	return f
}

// Reset releases everything.
func (a *InputAdapter) Reset() {
	a.pressed = 0
	clear(a.held)
}
