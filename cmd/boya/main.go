// boya is a Flappy-style arcade game for the terminal.
//
// Usage:
//
//	boya play               - Play in the terminal
//	boya sim                - Run a headless simulation and print the result
//	boya render --out f.png - Simulate a few ticks and save the frame as PNG
//
// Global flags:
//
//	--config <path>       - Custom config YAML
//	--difficulty <preset> - easy, normal, hard or fixed
//	--fps <rate>          - Tick rate for play (default: 60)
//	--seed <value>        - RNG seed for reproducible gameplay
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/boya/internal/config"
)

var (
	// Global flags
	flagConfig     string
	flagDifficulty string
	flagFPS        int
	flagSeed       int64
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "boya",
	Short: "The Boya Game - fly through the pipes in your terminal",
	Long: `The Boya Game is a single-screen arcade game. Flap to keep the bird in
the air and steer it through the gaps between scrolling pipes. Every pipe
cleared scores a point and makes the pipes a little faster.

Available commands:
  play    - Play in the terminal
  sim     - Run a headless, deterministic simulation
  render  - Save a simulated frame as a PNG image

Examples:
  boya play
  boya play --difficulty hard
  boya play --config ./my-flappy.yaml --watch
  boya sim --seed 42 --ticks 2000 --autopilot
  boya render --out frame.png`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (play treats 0 as random)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(renderCmd)
}

// loadConfig resolves the game config from the global flags.
func loadConfig() (config.FlappyConfig, config.DifficultyPreset, error) {
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return config.FlappyConfig{}, "", err
	}

	cfg, err := config.LoadFlappy(flagConfig)
	if err != nil {
		return config.FlappyConfig{}, "", err
	}
	config.ApplyPreset(&cfg, preset)

	if err := config.Validate(cfg); err != nil {
		return config.FlappyConfig{}, "", err
	}
	return cfg, preset, nil
}
