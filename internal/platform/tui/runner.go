package tui

import (
	"fmt"
	"io"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"raincatch/internal/audio"
	"raincatch/internal/config"
	"raincatch/internal/core"
	"raincatch/internal/game"
)

// Phase tracks the frame driver lifecycle.
type Phase int

const (
	PhaseInitializing Phase = iota
	PhaseRunning
	PhaseShuttingDown
	PhaseTerminated
)

func (p Phase) String() string {
	switch p {
	case PhaseInitializing:
		return "initializing"
	case PhaseRunning:
		return "running"
	case PhaseShuttingDown:
		return "shutting down"
	case PhaseTerminated:
		return "terminated"
	default:
		return "unknown"
	}
}

// Options configures a session run.
type Options struct {
	Game    config.GameConfig
	Runtime core.RuntimeConfig
	Mute    bool   // Skip audio device acquisition entirely
	LogPath string // Debug log file; empty discards debug output
}

// Runner acquires the session's resources, drives the frame loop, and
// releases everything in reverse acquisition order on every exit path.
type Runner struct {
	phase    Phase
	logger   *log.Logger
	player   *audio.Player
	releases []func()
}

// Run executes a full session lifecycle and returns the first error
// encountered. On an initialization error, everything acquired so far has
// already been released.
func Run(opts Options) error {
	if opts.Runtime.TickRate < 1 {
		return fmt.Errorf("tick rate must be at least 1, got %d", opts.Runtime.TickRate)
	}

	r := &Runner{phase: PhaseInitializing}
	defer r.shutdown()

	if err := r.initialize(opts); err != nil {
		return err
	}

	if opts.Runtime.Seed == 0 {
		opts.Runtime.Seed = time.Now().UnixNano()
	}

	session := game.NewSession(opts.Game, r.sounds(), r.logger)
	model := NewModel(session, opts.Game.Playfield, opts.Runtime, r.soundControl(), opts.Game.Audio.MasterVolume)

	r.phase = PhaseRunning
	r.logger.Debug("session starting", "phase", r.phase, "seed", opts.Runtime.Seed)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Cursor position for bucket dragging
	)

	_, err := p.Run()
	return err
}

// initialize acquires resources in order: log sink, then audio. Each
// success pushes its release; a failure returns with nothing left to the
// caller to clean up.
func (r *Runner) initialize(opts Options) error {
	sink := io.Discard
	if opts.LogPath != "" {
		f, err := os.OpenFile(opts.LogPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("open debug log: %w", err)
		}
		r.releases = append(r.releases, func() { f.Close() })
		sink = f
	}
	r.logger = log.NewWithOptions(sink, log.Options{
		Level:           log.DebugLevel,
		ReportTimestamp: true,
	})

	if opts.Game.Audio.Enabled && !opts.Mute {
		player := audio.NewPlayer()
		if err := player.Open(opts.Game.Audio.MasterVolume); err != nil {
			return fmt.Errorf("open audio device: %w", err)
		}
		r.player = player
		r.releases = append(r.releases, player.Close)
	}

	return nil
}

// shutdown releases acquired resources in reverse acquisition order.
func (r *Runner) shutdown() {
	r.phase = PhaseShuttingDown
	if r.logger != nil {
		r.logger.Debug("session ending", "phase", r.phase)
	}
	for i := len(r.releases) - 1; i >= 0; i-- {
		r.releases[i]()
	}
	r.releases = nil
	r.phase = PhaseTerminated
}

// sounds returns the session-facing audio surface, or nil when muted.
func (r *Runner) sounds() game.Sounds {
	if r.player == nil {
		return nil
	}
	return r.player
}

// soundControl returns the platform-facing audio surface, or nil when muted.
func (r *Runner) soundControl() SoundControl {
	if r.player == nil {
		return nil
	}
	return r.player
}
