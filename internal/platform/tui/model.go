package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"raincatch/internal/config"
	"raincatch/internal/core"
	"raincatch/internal/game"
)

// holdWindow is how long a direction key stays held without a new press or
// auto-repeat before a synthetic release is issued. Terminals deliver no
// key-release events, and the initial auto-repeat delay is commonly around
// 500ms, so the window must comfortably exceed that or held movement
// stutters before the first repeat arrives.
const holdWindow = 600 * time.Millisecond

// Model is the Bubble Tea model driving a raincatch session. It is the
// sole consumer of the input event stream: key and mouse messages are
// mapped into game events, buffered in a pending batch, and drained into
// the session once per frame.
type Model struct {
	session *game.Session
	screen  *core.Screen
	runtime core.RuntimeConfig
	field   config.PlayfieldConfig
	keymap  KeyMap

	sound  SoundControl
	muted  bool
	volume float64

	pending  []game.Event
	heldAt   map[game.Key]time.Time
	lastTick time.Time

	quitting bool
}

// SoundControl is the slice of the audio player the platform needs for the
// mute toggle.
type SoundControl interface {
	SetVolume(vol float64)
}

// NewModel creates a model for the given session. sound may be nil when
// audio is disabled. The runtime is taken as-is; Run is the one place
// that defaults a zero seed.
func NewModel(session *game.Session, field config.PlayfieldConfig, runtime core.RuntimeConfig, sound SoundControl, volume float64) Model {
	return Model{
		session: session,
		screen:  core.NewScreen(runtime.ScreenW, runtime.ScreenH),
		runtime: runtime,
		field:   field,
		keymap:  DefaultKeyMap(),
		sound:   sound,
		volume:  volume,
		pending: make([]game.Event, 0, 16),
		heldAt:  make(map[game.Key]time.Time),
	}
}

// Init resets the session and starts the frame loop.
func (m Model) Init() tea.Cmd {
	m.session.Reset(m.runtime)
	return tickCmd(m.runtime.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey maps keyboard input to game events or platform controls.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	k, isMove, ctl := m.keymap.mapKey(msg)

	switch ctl {
	case controlQuit:
		m.quitting = true
		return m, tea.Quit
	case controlPause:
		m.session.TogglePause()
		return m, nil
	case controlRestart:
		m.runtime.Seed = time.Now().UnixNano()
		m.session.Reset(m.runtime)
		return m, nil
	case controlMute:
		m.muted = !m.muted
		if m.sound != nil {
			if m.muted {
				m.sound.SetVolume(0)
			} else {
				m.sound.SetVolume(m.volume)
			}
		}
		return m, nil
	}

	if isMove {
		// Presses and auto-repeats both land here; the repeat keeps
		// the hold alive until handleTick times it out.
		m.pending = append(m.pending, game.KeyDown(k))
		m.heldAt[k] = time.Now()
	}

	return m, nil
}

// handleMouse maps mouse input to cursor and button events in world units.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	wx, wy := m.toWorld(msg.X, msg.Y)

	switch msg.Action {
	case tea.MouseActionMotion:
		m.pending = append(m.pending, game.CursorTo(wx, wy))
	case tea.MouseActionPress:
		if msg.Button == tea.MouseButtonLeft {
			m.pending = append(m.pending, game.ButtonDown(game.ButtonPrimary, wx, wy))
		}
	case tea.MouseActionRelease:
		m.pending = append(m.pending, game.ButtonUp(game.ButtonPrimary))
	}

	return m, nil
}

// handleResize adjusts the screen buffer. Gameplay runs in world units, so
// a resize never touches simulation state.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.runtime.ScreenW = msg.Width
	m.runtime.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	return m, nil
}

// handleTick runs one frame: synthesize expired key releases, drain the
// pending event batch into the session, then step by the wall-clock delta.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	for k, at := range m.heldAt {
		if now.Sub(at) > holdWindow {
			m.pending = append(m.pending, game.KeyUp(k))
			delete(m.heldAt, k)
		}
	}

	var dt float64
	if !m.lastTick.IsZero() {
		dt = now.Sub(m.lastTick).Seconds()
	}
	m.lastTick = now

	m.session.HandleEvents(m.pending)
	m.pending = m.pending[:0]
	m.session.Step(dt)

	return m, tickCmd(m.runtime.TickRate)
}

// toWorld unprojects a terminal cell into world coordinates
// (origin bottom-left, y up).
func (m Model) toWorld(cx, cy int) (float64, float64) {
	w := float64(core.Max(m.runtime.ScreenW, 1))
	h := float64(core.Max(m.runtime.ScreenH, 1))
	wx := (float64(cx) + 0.5) / w * m.field.Width
	wy := (float64(m.runtime.ScreenH-1-cy) + 0.5) / h * m.field.Height
	return wx, wy
}

// View renders the current session state.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.session.Render(m.screen)
	return RenderScreen(m.screen)
}
