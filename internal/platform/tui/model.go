package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/neon-arcade/internal/config"
	"github.com/vovakirdan/neon-arcade/internal/core"
	"github.com/vovakirdan/neon-arcade/internal/platform/sfx"
	"github.com/vovakirdan/neon-arcade/internal/registry"
)

// Options configures the host shell around a game.
type Options struct {
	Logger   *log.Logger // Engine events are logged at debug level; nil disables
	Sound    *sfx.Player // nil disables sound cues
	ShowHelp bool        // Reserve the bottom row for the key help line

	// Difficulty preselected in the menu.
	Difficulty config.DifficultyPreset
	// Prepare loads and installs a game's tunables before the menu creates it.
	Prepare func(gameID string, preset config.DifficultyPreset) error
}

// Model is the Bubble Tea model for running one game.
type Model struct {
	game   registry.Game
	screen *core.Screen
	config core.RuntimeConfig
	opts   Options

	keys  KeyMap
	input *InputAdapter
	help  help.Model

	state       core.GameState
	events      *[]core.Event
	fx          *Interference
	unsubscribe func()
	tickID      int
	lastTick    time.Time
	frame       uint64

	ready      bool
	paused     bool
	quitting   bool
	backToMenu bool
	exitOnBack bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, cfg core.RuntimeConfig, opts Options) Model {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = 60
	}

	events := &[]core.Event{}
	unsubscribe := game.Subscribe(func(ev core.Event) {
		*events = append(*events, ev)
	})

	keys := KeyMapFor(game.ID())
	m := Model{
		game:        game,
		config:      cfg,
		opts:        opts,
		keys:        keys,
		input:       NewInputAdapter(keys),
		help:        help.New(),
		events:      events,
		fx:          &Interference{},
		unsubscribe: unsubscribe,
		tickID:      nextTickID(),
	}
	m.screen = core.NewScreen(cfg.ScreenW, m.gameHeight(cfg.ScreenH))
	return m
}

// gameHeight is the number of rows the game may draw on.
func (m Model) gameHeight(h int) int {
	if m.opts.ShowHelp && h > 1 {
		return h - 1
	}
	return h
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate, m.tickID)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg, time.Now())
	case tea.WindowSizeMsg:
		return m.handleResize(msg), nil
	case TickMsg:
		if msg.ID != m.tickID {
			return m, nil
		}
		return m.handleTick(msg.Time)
	}
	return m, nil
}

// reset restarts the game on the current surface. Without a surface the
// game is left alone.
func (m Model) reset() Model {
	cfg := m.config
	cfg.ScreenH = m.screen.Height()
	if cfg.ScreenW <= 0 || cfg.ScreenH <= 0 {
		m.ready = false
		return m
	}
	m.game.Reset(cfg)
	m.state = m.game.State()
	m.input.Reset()
	m.ready = true
	return m
}

func (m Model) handleResize(msg tea.WindowSizeMsg) Model {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, m.gameHeight(msg.Height))
	m.help.Width = msg.Width

	// a running game keeps its world; only the start screen adopts the new size
	if !m.ready || m.state.Phase == core.PhaseStart {
		m = m.reset()
	}
	return m
}

func (m Model) handleKey(msg tea.KeyMsg, now time.Time) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		m.quitting = true
		return m, tea.Quit
	}

	if m.paused {
		switch {
		case key.Matches(msg, m.keys.Back):
			return m.leave()
		case key.Matches(msg, m.keys.Pause):
			m.paused = false
		}
		return m, nil
	}

	idle := m.state.GameOver || m.state.Phase == core.PhaseStart
	if idle && key.Matches(msg, m.keys.Back) {
		return m.leave()
	}
	if !idle && key.Matches(msg, m.keys.Pause) {
		m.paused = true
		m.input.Reset()
		return m, nil
	}

	m.input.Key(msg, now)
	return m, nil
}

func (m Model) leave() (tea.Model, tea.Cmd) {
	m.backToMenu = true
	if m.exitOnBack {
		return m, tea.Quit
	}
	return m, nil
}

func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	dt := 0.0
	if !m.lastTick.IsZero() {
		dt = now.Sub(m.lastTick).Seconds()
	}
	m.lastTick = now

	if !m.ready {
		m = m.reset()
	}
	in := m.input.Frame(now)
	if m.ready && !m.paused {
		result := m.game.Step(dt, in)
		m.state = result.State
		m.frame++
	}
	m.dispatch(now)

	return m, tickCmd(m.config.TickRate, m.tickID)
}

// dispatch hands the events of the last step to the overlay, sound and log.
func (m Model) dispatch(now time.Time) {
	for _, ev := range *m.events {
		m.fx.Trigger(ev, now)
		if m.opts.Sound != nil {
			m.opts.Sound.Play(ev)
		}
		if m.opts.Logger != nil {
			LogEvent(m.opts.Logger, ev)
		}
	}
	*m.events = (*m.events)[:0]
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if !m.ready {
		return "waiting for terminal size..."
	}

	m.screen.Clear()
	m.game.Render(m.screen)
	m.fx.Apply(m.screen, time.Now(), m.frame)
	if m.paused {
		m.screen.DrawPanel(core.ColorNeonPink, core.ColorBrightWhite, "PAUSED", "P resume  B menu  Q quit")
	}

	out := RenderScreen(m.screen)
	if m.opts.ShowHelp {
		out += "\n" + m.help.View(m.keys)
	}
	return out
}

// State returns the last published game state.
func (m Model) State() core.GameState {
	return m.state
}

// Paused reports whether the host has paused the game.
func (m Model) Paused() bool {
	return m.paused
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Close detaches the model from its game's events.
func (m Model) Close() {
	if m.unsubscribe != nil {
		m.unsubscribe()
	}
}

// Run starts the Bubble Tea program for a single game.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) error {
	model := NewModel(game, cfg, opts)
	model.exitOnBack = true
	defer model.Close()

	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
