// Package config provides YAML-based game configuration loading
// for raincatch.
package config

import "fmt"

// GameConfig contains all tunable parameters for a raincatch session.
type GameConfig struct {
	Playfield PlayfieldConfig `yaml:"playfield"`
	Bucket    BucketConfig    `yaml:"bucket"`
	Drops     DropsConfig     `yaml:"drops"`
	Audio     AudioConfig     `yaml:"audio"`
}

// PlayfieldConfig defines the logical playfield in world units.
type PlayfieldConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// BucketConfig defines the player-controlled bucket.
type BucketConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Speed  float64 `yaml:"speed"` // Horizontal speed in units per second
}

// DropMode selects how the live drop set is bounded.
type DropMode string

const (
	// ModeClassic spawns without a live cap and removes drops on
	// collection or expiry.
	ModeClassic DropMode = "classic"

	// ModeFIFO keeps an oldest-first queue capped at MaxLive. Spawning
	// past the cap evicts the oldest drop and collision checks are
	// disabled; drops leave only by eviction or expiry.
	ModeFIFO DropMode = "fifo"
)

// DropsConfig defines falling drop behavior.
type DropsConfig struct {
	Width         float64  `yaml:"width"`
	Height        float64  `yaml:"height"`
	Speed         float64  `yaml:"speed"`          // Fall speed in units per second
	SpawnInterval float64  `yaml:"spawn_interval"` // Seconds of simulated time between spawns
	Mode          DropMode `yaml:"mode"`
	MaxLive       int      `yaml:"max_live"` // FIFO queue cap; ignored in classic mode
}

// AudioConfig defines sound output.
type AudioConfig struct {
	Enabled      bool    `yaml:"enabled"`
	MasterVolume float64 `yaml:"master_volume"` // 0.0 to 1.0
}

// Validate checks the configuration for values the simulation cannot run with.
func (c GameConfig) Validate() error {
	if c.Playfield.Width <= 0 || c.Playfield.Height <= 0 {
		return fmt.Errorf("config: playfield dimensions must be positive, got %gx%g",
			c.Playfield.Width, c.Playfield.Height)
	}
	if c.Bucket.Width <= 0 || c.Bucket.Height <= 0 {
		return fmt.Errorf("config: bucket dimensions must be positive, got %gx%g",
			c.Bucket.Width, c.Bucket.Height)
	}
	if c.Bucket.Width > c.Playfield.Width {
		return fmt.Errorf("config: bucket width %g exceeds playfield width %g",
			c.Bucket.Width, c.Playfield.Width)
	}
	if c.Bucket.Speed <= 0 {
		return fmt.Errorf("config: bucket speed must be positive, got %g", c.Bucket.Speed)
	}
	if c.Drops.Width <= 0 || c.Drops.Height <= 0 {
		return fmt.Errorf("config: drop dimensions must be positive, got %gx%g",
			c.Drops.Width, c.Drops.Height)
	}
	if c.Drops.Speed <= 0 {
		return fmt.Errorf("config: drop speed must be positive, got %g", c.Drops.Speed)
	}
	if c.Drops.SpawnInterval <= 0 {
		return fmt.Errorf("config: spawn interval must be positive, got %g", c.Drops.SpawnInterval)
	}
	switch c.Drops.Mode {
	case ModeClassic:
	case ModeFIFO:
		if c.Drops.MaxLive <= 0 {
			return fmt.Errorf("config: fifo mode requires max_live > 0, got %d", c.Drops.MaxLive)
		}
	default:
		return fmt.Errorf("config: unknown drop mode %q", c.Drops.Mode)
	}
	if c.Audio.MasterVolume < 0 || c.Audio.MasterVolume > 1 {
		return fmt.Errorf("config: master volume must be in [0, 1], got %g", c.Audio.MasterVolume)
	}
	return nil
}
