package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/neon-arcade/internal/core"
)

// KeyMap binds physical keys to game intents for one game.
// Host keys (pause, back, quit) are handled by the model itself.
type KeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Left    key.Binding
	Right   key.Binding
	Fire    key.Binding
	Rotate  key.Binding
	Hold    key.Binding
	Zap     key.Binding
	Confirm key.Binding
	Pause   key.Binding
	Back    key.Binding
	Quit    key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return bound(k.Left, k.Right, k.Up, k.Down, k.Fire, k.Rotate, k.Hold, k.Zap, k.Pause, k.Quit)
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		bound(k.Up, k.Down, k.Left, k.Right),
		bound(k.Fire, k.Rotate, k.Hold, k.Zap),
		bound(k.Confirm, k.Pause, k.Back, k.Quit),
	}
}

// bound drops bindings the profile leaves unset.
func bound(bs ...key.Binding) []key.Binding {
	out := bs[:0]
	for _, b := range bs {
		if len(b.Keys()) > 0 {
			out = append(out, b)
		}
	}
	return out
}

// Actions returns the game intents a key triggers.
func (k KeyMap) Actions(msg tea.KeyMsg) []core.Action {
	pairs := []struct {
		b key.Binding
		a core.Action
	}{
		{k.Up, core.ActionUp},
		{k.Down, core.ActionDown},
		{k.Left, core.ActionLeft},
		{k.Right, core.ActionRight},
		{k.Fire, core.ActionFire},
		{k.Rotate, core.ActionRotate},
		{k.Hold, core.ActionHold},
		{k.Zap, core.ActionZap},
		{k.Confirm, core.ActionConfirm},
	}
	var out []core.Action
	for _, p := range pairs {
		if key.Matches(msg, p.b) {
			out = append(out, p.a)
		}
	}
	return out
}

func baseKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "w"),
			key.WithHelp("↑/w", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "s"),
			key.WithHelp("↓/s", "down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "a"),
			key.WithHelp("←/a", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d"),
			key.WithHelp("→/d", "right"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter", "r"),
			key.WithHelp("enter/r", "start"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p", "esc"),
			key.WithHelp("p/esc", "pause"),
		),
		Back: key.NewBinding(
			key.WithKeys("b", "esc"),
			key.WithHelp("b/esc", "menu"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// KeyMapFor returns the key profile for a game.
func KeyMapFor(gameID string) KeyMap {
	k := baseKeyMap()
	switch gameID {
	case "asteroids":
		k.Up = key.NewBinding(key.WithKeys("up", "w"), key.WithHelp("↑/w", "thrust"))
		k.Left.SetHelp("←/a", "rotate")
		k.Right.SetHelp("→/d", "rotate")
		k.Down = key.Binding{}
		k.Fire = key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "fire"))
	case "snake":
		// directions only
	case "tetris":
		k.Up = key.NewBinding(key.WithKeys("up", "w", "x"), key.WithHelp("↑/x", "rotate"))
		k.Down = key.NewBinding(key.WithKeys("down", "s"), key.WithHelp("↓/s", "soft drop"))
		k.Rotate = key.NewBinding(key.WithKeys("z"), key.WithHelp("z", "rotate ccw"))
		k.Hold = key.NewBinding(key.WithKeys("c", "shift+left", "shift+right"), key.WithHelp("c", "hold"))
		k.Fire = key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "hard drop"))
	case "tempest":
		k.Up = key.Binding{}
		k.Down = key.Binding{}
		k.Fire = key.NewBinding(key.WithKeys(" ", "up", "w"), key.WithHelp("space/↑", "fire"))
		k.Zap = key.NewBinding(key.WithKeys("z", "x"), key.WithHelp("z/x", "superzapper"))
	}
	return k
}

// MenuKeyMap defines the key bindings for the game picker.
type MenuKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Back   key.Binding
	Quit   key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k MenuKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Select, k.Back, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k MenuKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down}, {k.Select, k.Back, k.Quit}}
}

// DefaultMenuKeyMap returns default menu bindings.
func DefaultMenuKeyMap() MenuKeyMap {
	return MenuKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k", "w"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j", "s"),
			key.WithHelp("↓/j", "down"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "play"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}
