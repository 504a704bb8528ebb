// Package tui provides the Bubble Tea integration for the quantum maze.
// It handles the terminal UI loop, input mapping, and screen orchestration.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger an automatic move.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends a tick after delay.
func tickCmd(delay time.Duration) tea.Cmd {
	if delay <= 0 {
		delay = time.Millisecond
	}
	return tea.Tick(delay, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
