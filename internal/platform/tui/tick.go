// Package tui runs the farm in a terminal: the Bubble Tea tick loop, key
// mapping, the menu and scoreboard screens, and the SSH server.
package tui

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick. Each Model only
// consumes ticks from its own loop, so a tick still in flight when a
// session leaves a game never reaches the next one.
type TickMsg struct {
	At   time.Time
	loop uint64
}

var loopIDs atomic.Uint64

func nextLoopID() uint64 {
	return loopIDs.Add(1)
}

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int, loop uint64) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{At: t, loop: loop}
	})
}
