// raincatch is a terminal arcade game: drops fall from the top of the
// screen and the player slides a bucket along the bottom to catch them.
//
// Usage:
//
//	raincatch [flags]
//
// Controls:
//
//	Left/Right or A/D  - Move the bucket (hold to slide)
//	Mouse drag         - Drag the bucket under the cursor
//	P                  - Pause
//	R                  - Restart
//	M                  - Mute
//	Esc/Q/Ctrl+C       - Quit
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"raincatch/internal/config"
	"raincatch/internal/core"
	"raincatch/internal/platform/tui"
)

var (
	flagFPS     int
	flagSeed    int64
	flagConfig  string
	flagMute    bool
	flagVolume  float64
	flagLogPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "raincatch",
	Short: "Catch falling drops in a bucket, in your terminal",
	Long: `raincatch is a single-screen terminal arcade game. Drops fall from
the top of an 800x500 playfield; slide the bucket along the bottom with
the arrow keys (or A/D), or drag it with the mouse, and catch them.

Examples:
  raincatch
  raincatch --seed 42 --fps 30
  raincatch --config ./my-raincatch.yaml --mute
  raincatch --debug-log /tmp/raincatch.log`,
	Args: cobra.NoArgs,
	RunE: runGame,
	// Errors are printed once in main
	SilenceErrors: true,
	SilenceUsage:  true,
}

func init() {
	rootCmd.Flags().IntVar(&flagFPS, "fps", 60, "Frame rate (ticks per second)")
	rootCmd.Flags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable audio output")
	rootCmd.Flags().Float64Var(&flagVolume, "volume", -1, "Master volume 0.0-1.0 (overrides config)")
	rootCmd.Flags().StringVar(&flagLogPath, "debug-log", "", "Write the bucket position debug log to this file")
}

func runGame(cmd *cobra.Command, args []string) error {
	if flagFPS < 1 {
		return fmt.Errorf("fps must be at least 1, got %d", flagFPS)
	}

	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	if flagVolume >= 0 {
		cfg.Audio.MasterVolume = flagVolume
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	runtime := core.DefaultRuntimeConfig()
	runtime.TickRate = flagFPS
	runtime.Seed = flagSeed
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		runtime.ScreenW = w
		runtime.ScreenH = h
	}

	return tui.Run(tui.Options{
		Game:    cfg,
		Runtime: runtime,
		Mute:    flagMute,
		LogPath: flagLogPath,
	})
}
