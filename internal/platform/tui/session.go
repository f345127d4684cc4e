package tui

import (
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/neon-arcade/internal/config"
	"github.com/vovakirdan/neon-arcade/internal/core"
	"github.com/vovakirdan/neon-arcade/internal/registry"
)

// createMu serializes installing tunables and creating a game, since SSH
// sessions share the games' package-level config.
var createMu sync.Mutex

// SessionModel manages the full arcade session flow: menu -> game -> menu.
// It is the top-level model for `arcade menu` and for SSH sessions.
type SessionModel struct {
	config   core.RuntimeConfig
	opts     Options
	menu     MenuModel
	game     *Model
	quitting bool
}

// NewSessionModel creates a new session model.
func NewSessionModel(cfg core.RuntimeConfig, opts Options) SessionModel {
	return SessionModel{
		config: cfg,
		opts:   opts,
		menu:   NewMenuModel(cfg, opts.Difficulty),
	}
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW = wsm.Width
		m.config.ScreenH = wsm.Height
		next, _ := m.menu.Update(msg)
		m.menu = next.(MenuModel)
	}

	if m.game != nil {
		return m.updateGame(msg)
	}
	return m.updateMenu(msg)
}

func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	if _, ok := msg.(tea.WindowSizeMsg); ok {
		return m, nil
	}
	next, cmd := m.menu.Update(msg)
	m.menu = next.(MenuModel)

	if m.menu.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	id, preset := m.menu.Selected()
	if id == "" {
		return m, cmd
	}
	m.menu = m.menu.clearSelection()

	game, err := m.create(id, preset)
	if err != nil {
		m.menu = m.menu.withStatus(err.Error())
		return m, nil
	}
	gm := NewModel(game, m.config, m.opts)
	gm = gm.handleResize(tea.WindowSizeMsg{Width: m.config.ScreenW, Height: m.config.ScreenH})
	m.game = &gm
	return m, gm.Init()
}

func (m SessionModel) create(id string, preset config.DifficultyPreset) (registry.Game, error) {
	createMu.Lock()
	defer createMu.Unlock()

	if m.opts.Prepare != nil {
		if err := m.opts.Prepare(id, preset); err != nil {
			return nil, err
		}
	}
	return registry.Create(id)
}

func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.game.Update(msg)
	gm := next.(Model)
	m.game = &gm

	if gm.IsQuitting() {
		gm.Close()
		m.quitting = true
		return m, tea.Quit
	}
	if gm.BackToMenu() {
		gm.Close()
		m.game = nil
		m.menu = m.menu.withStatus("")
		return m, m.menu.Init()
	}
	return m, cmd
}

// View renders the current view.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}
	if m.game != nil {
		return m.game.View()
	}
	return m.menu.View()
}

// InGame reports whether a game is running.
func (m SessionModel) InGame() bool {
	return m.game != nil
}

// RunSession starts the menu-driven arcade in the local terminal.
func RunSession(cfg core.RuntimeConfig, opts Options) error {
	p := tea.NewProgram(NewSessionModel(cfg, opts), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
