// Package tui provides the Bubble Tea integration for raincatch.
// It owns the frame loop, input mapping, world/screen coordinate
// conversion, and rendering.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg carries the wall-clock time of a frame callback. The model
// derives the frame delta from consecutive TickMsg times rather than
// assuming a fixed step.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the
// specified rate.
func tickCmd(tickRate int) tea.Cmd {
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
