// Package tui runs games in the terminal with Bubble Tea: the frame loop,
// key mapping, the start menu, the scoreboard and the SSH server.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg drives one game frame.
type TickMsg time.Time

// tickCmd schedules the next frame at tickRate frames per second.
func tickCmd(tickRate int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
