package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/neon-arcade/internal/config"
	"github.com/vovakirdan/neon-arcade/internal/core"
	"github.com/vovakirdan/neon-arcade/internal/registry"
)

var (
	menuTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("198")).
			Padding(0, 2)
	menuItemStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	menuSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14"))
	menuBlurbStyle    = lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("93"))
	menuErrorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	menuFrameStyle    = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color("198")).
				Padding(1, 4)
)

var blurbs = map[string]string{
	"asteroids": "split the rocks, mind the debris",
	"snake":     "eat, grow, catch the virus",
	"tetris":    "seven-bag, SRS kicks, hold",
	"tempest":   "hold the rim of the tube",
}

var presets = []config.DifficultyPreset{
	config.DifficultyEasy,
	config.DifficultyNormal,
	config.DifficultyHard,
}

// MenuModel is the Bubble Tea model for the game picker. Picking a game
// asks for a difficulty before the game starts.
type MenuModel struct {
	items        []registry.GameInfo
	cursor       int
	presetCursor int
	choosing     bool // on the difficulty step
	width        int
	height       int
	config       core.RuntimeConfig
	keys         MenuKeyMap
	help         help.Model
	status       string
	quitting     bool
	selected     string
	preset       config.DifficultyPreset
}

// NewMenuModel creates a new menu model. The difficulty step starts on def.
func NewMenuModel(cfg core.RuntimeConfig, def config.DifficultyPreset) MenuModel {
	m := MenuModel{
		items:  registry.List(),
		width:  cfg.ScreenW,
		height: cfg.ScreenH,
		config: cfg,
		keys:   DefaultMenuKeyMap(),
		help:   help.New(),
	}
	for i, p := range presets {
		if p == def {
			m.presetCursor = i
		}
	}
	if def == "" {
		m.presetCursor = 1
	}
	return m
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.help.Width = msg.Width
	}
	return m, nil
}

func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		m.quitting = true
		return m, tea.Quit
	}
	if m.choosing {
		return m.handlePresetKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Back):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Select):
		if len(m.items) > 0 {
			m.choosing = true
			m.status = ""
		}
	}
	return m, nil
}

func (m MenuModel) handlePresetKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Back):
		m.choosing = false
	case key.Matches(msg, m.keys.Up):
		if m.presetCursor > 0 {
			m.presetCursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.presetCursor < len(presets)-1 {
			m.presetCursor++
		}
	case key.Matches(msg, m.keys.Select):
		m.choosing = false
		m.selected = m.items[m.cursor].ID
		m.preset = presets[m.presetCursor]
		return m, tea.Quit
	}
	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(menuTitleStyle.Render("N E O N   A R C A D E"))
	b.WriteString("\n\n")
	if m.choosing {
		m.viewPresets(&b)
	} else {
		m.viewGames(&b)
	}
	if m.status != "" {
		b.WriteString("\n" + menuErrorStyle.Render(m.status) + "\n")
	}

	body := menuFrameStyle.Render(b.String()) + "\n\n" + m.help.View(m.keys)
	if m.width <= 0 || m.height <= 0 {
		return body
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, body)
}

func (m MenuModel) viewGames(b *strings.Builder) {
	for i, item := range m.items {
		if i == m.cursor {
			b.WriteString(menuSelectedStyle.Render("▶ " + item.Title))
			if blurb, ok := blurbs[item.ID]; ok {
				b.WriteString("  " + menuBlurbStyle.Render(blurb))
			}
		} else {
			b.WriteString(menuItemStyle.Render("  " + item.Title))
		}
		b.WriteString("\n")
	}
}

func (m MenuModel) viewPresets(b *strings.Builder) {
	b.WriteString(menuBlurbStyle.Render(fmt.Sprintf("%s: select difficulty", m.items[m.cursor].Title)))
	b.WriteString("\n\n")
	for i, p := range presets {
		if i == m.presetCursor {
			b.WriteString(menuSelectedStyle.Render("▶ " + string(p)))
		} else {
			b.WriteString(menuItemStyle.Render("  " + string(p)))
		}
		b.WriteString("\n")
	}
}

// Selected returns the chosen game ID and difficulty, or "" if none.
func (m MenuModel) Selected() (string, config.DifficultyPreset) {
	return m.selected, m.preset
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// clearSelection readies the menu for another pick, keeping the cursors.
func (m MenuModel) clearSelection() MenuModel {
	m.selected = ""
	m.preset = ""
	return m
}

// withStatus shows a one-line message under the list.
func (m MenuModel) withStatus(s string) MenuModel {
	m.status = s
	return m
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}
