// Package tui is the Bubble Tea host shell for the arcade: the frame loop,
// key profiles, the glitch interference overlay, the game picker and the
// SSH server.
package tui

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick. ID names the tick loop
// that scheduled it so a replaced game ignores stale ticks.
type TickMsg struct {
	Time time.Time
	ID   int
}

var lastTickID atomic.Int64

func nextTickID() int {
	return int(lastTickID.Add(1))
}

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
// The engines step by the measured time between ticks, not by this interval.
func tickCmd(tickRate, id int) tea.Cmd {
	tickRate = max(tickRate, 1)
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{Time: t, ID: id}
	})
}
