package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/neon-arcade/internal/core"
)

// colorStyles holds one lipgloss style per palette entry.
var colorStyles = buildStyles()

func buildStyles() map[core.Color]lipgloss.Style {
	styles := make(map[core.Color]lipgloss.Style)
	for _, c := range core.Palette() {
		st := lipgloss.NewStyle()
		if code := c.ANSI(); code != "" {
			st = st.Foreground(lipgloss.Color(code))
		}
		styles[c] = st
	}
	return styles
}

func styleFor(c core.Color) lipgloss.Style {
	if st, ok := colorStyles[c]; ok {
		return st
	}
	return colorStyles[core.ColorDefault]
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Runs of cells sharing a color are rendered with one style call.
func RenderScreen(s *core.Screen) string {
	w, h := s.Width(), s.Height()
	var sb strings.Builder
	sb.Grow(w*h*2 + h)

	run := make([]rune, 0, w)
	for y := range h {
		if y > 0 {
			sb.WriteByte('\n')
		}
		runColor := core.ColorDefault
		run = run[:0]
		for x := range w {
			cell := s.GetCell(x, y)
			if len(run) > 0 && cell.Color != runColor {
				sb.WriteString(styleFor(runColor).Render(string(run)))
				run = run[:0]
			}
			runColor = cell.Color
			run = append(run, cell.Rune)
		}
		if len(run) > 0 {
			sb.WriteString(styleFor(runColor).Render(string(run)))
		}
	}
	return sb.String()
}
