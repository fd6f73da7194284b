package main

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/boya/internal/games/flappy"
)

var (
	flagOut         string
	flagRenderTicks int
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Save a simulated frame as PNG",
	Long: `Play the given number of ticks with the autopilot and save the frame
at that point as a PNG image. With --ticks 0 the title screen is saved.

Examples:
  boya render --out frame.png
  boya render --out late.png --ticks 600 --seed 7`,
	Args: cobra.NoArgs,
	RunE: runRender,
}

func init() {
	renderCmd.Flags().StringVarP(&flagOut, "out", "o", "frame.png", "Output PNG path")
	renderCmd.Flags().IntVar(&flagRenderTicks, "ticks", 240, "Ticks to simulate before rendering")
}

func runRender(cmd *cobra.Command, args []string) error {
	cfg, _, err := loadConfig()
	if err != nil {
		return err
	}

	logger := log.NewWithOptions(os.Stderr, log.Options{Prefix: "boya-render"})

	game, err := flappy.New(cfg)
	if err != nil {
		return err
	}
	simulate(game, flagSeed, flagRenderTicks, true, logger)
	return saveFrame(game, cfg, flagOut, logger)
}
