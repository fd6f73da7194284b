package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/boya/internal/assets"
	"github.com/vovakirdan/boya/internal/config"
	"github.com/vovakirdan/boya/internal/core"
	"github.com/vovakirdan/boya/internal/games/flappy"
	"github.com/vovakirdan/boya/internal/render/canvas"
)

var (
	flagTicks     int
	flagAutopilot bool
	flagPNG       string
	flagVerbose   bool
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run a headless simulation",
	Long: `Run the game without a terminal UI and print how the round went.

The round starts on the first tick. Without --autopilot the bird never
flaps again after that and soon hits the ground. With the same --seed a
simulation always plays out the same way.

Examples:
  boya sim --seed 42
  boya sim --seed 42 --ticks 5000 --autopilot
  boya sim --autopilot --png last.png`,
	Args: cobra.NoArgs,
	RunE: runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagTicks, "ticks", 1000, "Maximum number of ticks to simulate")
	simCmd.Flags().BoolVar(&flagAutopilot, "autopilot", false, "Let the built-in pilot flap")
	simCmd.Flags().StringVar(&flagPNG, "png", "", "Save the final frame as PNG")
	simCmd.Flags().BoolVarP(&flagVerbose, "verbose", "v", false, "Log every point scored")
}

// simResult summarizes a headless run.
type simResult struct {
	Round string
	Ticks int
	Score int
	Phase flappy.Phase
	Cause string
	Speed float64
}

func runSim(cmd *cobra.Command, args []string) error {
	cfg, _, err := loadConfig()
	if err != nil {
		return err
	}

	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "boya-sim",
	})
	if flagVerbose {
		logger.SetLevel(log.DebugLevel)
	}

	game, err := flappy.New(cfg)
	if err != nil {
		return err
	}

	res := simulate(game, flagSeed, flagTicks, flagAutopilot, logger)
	fmt.Fprintf(cmd.OutOrStdout(), "round %s: %s after %d ticks, score %d, speed %.2f",
		res.Round, res.Phase, res.Ticks, res.Score, res.Speed)
	if res.Cause != "" {
		fmt.Fprintf(cmd.OutOrStdout(), " (%s)", res.Cause)
	}
	fmt.Fprintln(cmd.OutOrStdout())

	if flagPNG != "" {
		return saveFrame(game, cfg, flagPNG, logger)
	}
	return nil
}

// simulate runs at most ticks ticks, stopping early when the round ends.
func simulate(game *flappy.Game, seed int64, ticks int, autopilot bool, logger *log.Logger) simResult {
	game.Reset(core.RuntimeConfig{Seed: seed})

	res := simResult{Round: uuid.NewString()}
	in := core.NewInputFrame()

	for res.Ticks < ticks {
		in.Clear()
		snap := game.Snapshot()
		if snap.Phase == flappy.PhaseIdle || (autopilot && flappy.Autopilot(snap)) {
			in.Set(core.ActionJump)
		}

		step := game.Step(in)
		res.Ticks++

		if step.Passed > 0 {
			logger.Debug("obstacle passed", "round", res.Round, "tick", res.Ticks, "score", step.State.Score)
		}
		if step.Ended {
			res.Cause = step.Cause
			logger.Info("round over", "round", res.Round, "tick", res.Ticks, "score", step.State.Score, "cause", step.Cause)
			break
		}
	}

	snap := game.Snapshot()
	res.Score = snap.Score
	res.Phase = snap.Phase
	res.Speed = snap.Speed
	return res
}

// saveFrame renders the game's current frame to path.
func saveFrame(game *flappy.Game, cfg config.FlappyConfig, path string, logger *log.Logger) error {
	art, err := assets.Load(cfg)
	if err != nil {
		logger.Warn("using built-in art", "error", err)
		art = assets.Generated(cfg)
	}
	if err := canvas.NewRenderer(art).SavePNG(game.Snapshot(), path); err != nil {
		return err
	}
	logger.Info("frame saved", "path", path)
	return nil
}
