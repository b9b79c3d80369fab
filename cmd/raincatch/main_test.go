package main

import "testing"

func TestRunGameRejectsBadFPS(t *testing.T) {
	old := flagFPS
	defer func() { flagFPS = old }()

	for _, fps := range []int{0, -30} {
		flagFPS = fps
		if err := runGame(rootCmd, nil); err == nil {
			t.Errorf("fps %d: expected an error, got nil", fps)
		}
	}
}
