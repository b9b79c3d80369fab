package config

import (
	_ "embed"
)

//go:embed defaults/raincatch.yaml
var defaultYAML []byte

// Default returns the built-in raincatch configuration.
func Default() GameConfig {
	return GameConfig{
		Playfield: PlayfieldConfig{
			Width:  800,
			Height: 500,
		},
		Bucket: BucketConfig{
			Width:  100,
			Height: 50,
			Speed:  400,
		},
		Drops: DropsConfig{
			Width:         20,
			Height:        20,
			Speed:         200,
			SpawnInterval: 1.0,
			Mode:          ModeClassic,
			MaxLive:       1,
		},
		Audio: AudioConfig{
			Enabled:      true,
			MasterVolume: 0.7,
		},
	}
}
