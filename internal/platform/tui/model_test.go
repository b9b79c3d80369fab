package tui

import (
	"testing"
	"time"

	"raincatch/internal/config"
	"raincatch/internal/core"
	"raincatch/internal/game"
)

func quietModel(t *testing.T, seed int64) Model {
	t.Helper()

	cfg := config.Default()
	cfg.Drops.SpawnInterval = 1e9
	cfg.Audio.Enabled = false

	rt := core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: seed}
	session := game.NewSession(cfg, nil, nil)
	session.Reset(rt)

	return NewModel(session, cfg.Playfield, rt, nil, 0)
}

func TestHoldSurvivesAutoRepeatDelay(t *testing.T) {
	m := quietModel(t, 1)

	base := time.Now()
	m.heldAt[game.KeyLeft] = base

	// No repeat has arrived yet 500ms in, the typical terminal initial
	// auto-repeat delay. The hold must still be alive.
	nm, _ := m.handleTick(base.Add(500 * time.Millisecond))
	m = nm.(Model)
	if _, held := m.heldAt[game.KeyLeft]; !held {
		t.Fatalf("hold dropped before the window expired")
	}

	// Past the window with no press or repeat, a release is synthesized.
	nm, _ = m.handleTick(base.Add(holdWindow + 50*time.Millisecond))
	m = nm.(Model)
	if _, held := m.heldAt[game.KeyLeft]; held {
		t.Fatalf("hold still alive after the window expired")
	}
}

func TestNewModelKeepsRuntimeVerbatim(t *testing.T) {
	m := quietModel(t, 0)

	// Zero-seed defaulting belongs to Run alone; the model must not
	// substitute its own seed.
	if m.runtime.Seed != 0 {
		t.Fatalf("runtime.Seed = %d, expected 0", m.runtime.Seed)
	}
}
