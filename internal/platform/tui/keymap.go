package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"raincatch/internal/game"
)

// KeyMap declares the key bindings for a raincatch session.
type KeyMap struct {
	Left    key.Binding
	Right   key.Binding
	Pause   key.Binding
	Restart key.Binding
	Mute    key.Binding
	Quit    key.Binding
}

// DefaultKeyMap returns the standard bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left: key.NewBinding(
			key.WithKeys("left", "a"),
			key.WithHelp("←/a", "move left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d"),
			key.WithHelp("→/d", "move right"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "pause"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart"),
		),
		Mute: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "mute"),
		),
		Quit: key.NewBinding(
			key.WithKeys("esc", "q", "ctrl+c"),
			key.WithHelp("esc/q", "quit"),
		),
	}
}

// control is a platform-level action that never reaches the game session.
type control int

const (
	controlNone control = iota
	controlQuit
	controlPause
	controlRestart
	controlMute
)

// mapKey translates a key message into either a game movement key or a
// platform control. Quit keys (including escape) are intercepted here and
// never enqueued as game events.
func (km KeyMap) mapKey(msg tea.KeyMsg) (k game.Key, isMove bool, ctl control) {
	switch {
	case key.Matches(msg, km.Quit):
		return 0, false, controlQuit
	case key.Matches(msg, km.Pause):
		return 0, false, controlPause
	case key.Matches(msg, km.Restart):
		return 0, false, controlRestart
	case key.Matches(msg, km.Mute):
		return 0, false, controlMute
	case key.Matches(msg, km.Left):
		return game.KeyLeft, true, controlNone
	case key.Matches(msg, km.Right):
		return game.KeyRight, true, controlNone
	}
	return 0, false, controlNone
}
