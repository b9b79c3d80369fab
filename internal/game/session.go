package game

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"raincatch/internal/config"
	"raincatch/internal/core"
)

// Visual characters for rendering
const (
	DropChar      = '◉'
	BucketChar    = '█'
	BucketRimChar = '▓'
)

// logInterval throttles the bucket position debug log to at most one line
// per second of simulated time.
const logInterval = 1.0

// Sounds is the audio surface the session needs. The platform provides a
// speaker-backed implementation; tests provide counters.
type Sounds interface {
	// PlayCollect fires the one-shot chime for a caught drop.
	PlayCollect()
}

// noopSounds is used when no audio player is wired in.
type noopSounds struct{}

func (noopSounds) PlayCollect() {}

// Session holds all mutable gameplay state for one run: the folded input
// state, the bucket, the drop field, score counters, and timers. It is
// touched only from the frame-loop goroutine.
type Session struct {
	cfg     config.GameConfig
	runtime core.RuntimeConfig

	input  Accumulator
	bucket Bucket
	drops  *DropField

	score  int
	missed int
	paused bool

	logger      *log.Logger
	logTimer    float64
	lastLoggedX float64

	sfx Sounds
}

// NewSession creates a session with the given gameplay config. A nil sfx
// mutes collection sounds; a nil logger discards the bucket debug log.
func NewSession(cfg config.GameConfig, sfx Sounds, logger *log.Logger) *Session {
	if sfx == nil {
		sfx = noopSounds{}
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Session{
		cfg:    cfg,
		sfx:    sfx,
		logger: logger,
	}
}

// Reset initializes or restarts the session.
func (s *Session) Reset(runtime core.RuntimeConfig) {
	s.runtime = runtime
	s.input.Reset()
	s.bucket = Bucket{
		X: (s.cfg.Playfield.Width - s.cfg.Bucket.Width) / 2,
		Y: 0,
		W: s.cfg.Bucket.Width,
		H: s.cfg.Bucket.Height,
	}
	if s.drops == nil {
		s.drops = NewDropField(s.cfg.Drops, s.cfg.Playfield.Width, s.cfg.Playfield.Height, runtime.Seed)
	} else {
		s.drops.Reset(runtime.Seed)
	}
	s.score = 0
	s.missed = 0
	s.paused = false
	s.logTimer = 0
	s.lastLoggedX = s.bucket.X
}

// HandleEvents folds one frame's drained input batch into the accumulator.
// Safe to call with an empty batch.
func (s *Session) HandleEvents(batch []Event) {
	s.input.Apply(batch)
}

// TogglePause flips the paused state. A paused session ignores Step time.
func (s *Session) TogglePause() {
	s.paused = !s.paused
}

// Step advances the simulation by dt seconds of wall-clock frame time:
// bucket movement and clamping, timed spawning, then collision and
// lifetime culling. Negative deltas are treated as zero.
func (s *Session) Step(dt float64) core.StepResult {
	if dt < 0 {
		dt = 0
	}
	if s.paused {
		return core.StepResult{State: s.State()}
	}

	s.bucket.Advance(&s.input, dt, s.cfg.Bucket.Speed, s.cfg.Playfield.Width)
	s.logBucket(dt)

	collected, missed := s.drops.Update(dt, s.bucket.Rect())
	s.score += collected
	s.missed += missed
	for i := 0; i < collected; i++ {
		s.sfx.PlayCollect()
	}

	return core.StepResult{State: s.State(), Collected: collected}
}

// logBucket emits a debug line with the bucket's x position, at most once
// per simulated second and only when the position changed since the last
// line.
func (s *Session) logBucket(dt float64) {
	s.logTimer += dt
	if s.bucket.X == s.lastLoggedX {
		return
	}
	if s.logTimer < logInterval {
		return
	}
	s.logger.Debug("bucket moved", "x", s.bucket.X)
	s.logTimer = 0
	s.lastLoggedX = s.bucket.X
}

// State returns the current session status.
func (s *Session) State() core.GameState {
	return core.GameState{
		Score:  s.score,
		Missed: s.missed,
		Paused: s.paused,
	}
}

// Render draws the playfield into the screen buffer. World coordinates
// (origin bottom-left, y up) are mapped onto terminal cells (origin
// top-left, y down) here and nowhere else.
func (s *Session) Render(dst *core.Screen) {
	dst.Clear()

	for _, d := range s.drops.Drops() {
		cx, cy := s.toCell(dst, d.X+d.W/2, d.Y+d.H/2)
		dst.SetCell(cx, cy, DropChar, core.ColorBrightCyan)
	}

	s.renderBucket(dst)

	hud := fmt.Sprintf(" Score: %d  Missed: %d ", s.score, s.missed)
	dst.DrawTextColor(1, 0, hud, core.ColorBrightYellow)

	if s.paused {
		s.renderCenteredMessage(dst, "PAUSED", "Press p to resume")
	}
}

// renderBucket draws the bucket as a filled block with a rim row.
func (s *Session) renderBucket(dst *core.Screen) {
	left, top := s.toCell(dst, s.bucket.X, s.bucket.Y+s.bucket.H)
	right, bottom := s.toCell(dst, s.bucket.X+s.bucket.W, s.bucket.Y)

	w := core.Max(right-left, 1)
	h := core.Max(bottom-top, 1)

	dst.DrawHLine(left, top, w, BucketRimChar, core.ColorYellow)
	if h > 1 {
		dst.FillRect(left, top+1, w, h-1, BucketChar, core.ColorYellow)
	}
}

// renderCenteredMessage draws a boxed message in the center of the screen.
func (s *Session) renderCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.FillRect(boxX, boxY, boxW, boxH, ' ', core.ColorDefault)
	dst.DrawBox(boxX, boxY, boxW, boxH)

	dst.DrawText(boxX+(boxW-len(title))/2, boxY+1, title)
	dst.DrawText(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle)
}

// toCell converts a world position to a terminal cell.
func (s *Session) toCell(dst *core.Screen, wx, wy float64) (int, int) {
	cx := int(wx / s.cfg.Playfield.Width * float64(dst.Width()))
	cy := dst.Height() - 1 - int(wy/s.cfg.Playfield.Height*float64(dst.Height()))
	return core.ClampInt(cx, 0, dst.Width()-1), core.ClampInt(cy, 0, dst.Height()-1)
}
