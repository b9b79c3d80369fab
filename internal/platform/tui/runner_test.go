package tui

import (
	"testing"

	"raincatch/internal/config"
	"raincatch/internal/core"
)

func TestRunRejectsBadTickRate(t *testing.T) {
	for _, rate := range []int{0, -1} {
		opts := Options{
			Game:    config.Default(),
			Runtime: core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: rate},
			Mute:    true,
		}
		if err := Run(opts); err == nil {
			t.Errorf("tick rate %d: expected an error, got nil", rate)
		}
	}
}
