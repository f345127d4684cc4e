package tui

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/neon-arcade/internal/core"
)

// LogEvent writes an engine event to l at debug level.
func LogEvent(l *log.Logger, ev core.Event) {
	l.Debug("event",
		"game", ev.Game,
		"kind", ev.Kind,
		"category", ev.Category,
		"intensity", ev.Intensity,
		"duration", ev.Duration,
	)
}
