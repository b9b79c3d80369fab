package core

// RuntimeConfig contains platform parameters passed to the game session.
// The session uses it to map the logical playfield onto the terminal and
// for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Frame callbacks per second (default 60)
	Seed     int64 // RNG seed for deterministic drop placement
}

// DefaultRuntimeConfig returns a RuntimeConfig with sensible defaults.
func DefaultRuntimeConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState describes the current session status for the platform layer.
type GameState struct {
	Score  int  // Drops caught
	Missed int  // Drops that fell past the bucket
	Paused bool // Whether the simulation is paused
}

// StepResult is returned by Session.Step after each frame update.
type StepResult struct {
	State     GameState
	Collected int // Drops caught during this frame
}
