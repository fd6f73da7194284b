package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/boya/internal/config"
	"github.com/vovakirdan/boya/internal/core"
	"github.com/vovakirdan/boya/internal/games/flappy"
	"github.com/vovakirdan/boya/internal/platform/tui"
)

var (
	flagWatch   bool
	flagLogPath string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start the game in the terminal.

Controls:
  Space/Up/W/Click - Flap (also starts the game)
  P/Esc            - Pause
  R                - Restart
  Ctrl+S           - Save a PNG screenshot to ~/.arcade/screenshots
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - Slower pipes, gentle speed-up
  normal - Values from the config
  hard   - Faster pipes, steep speed-up
  fixed  - Pipes never speed up

Examples:
  boya play
  boya play --difficulty easy
  boya play --config ./my-flappy.yaml --watch
  boya play --log /tmp/boya.log`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagWatch, "watch", false, "Reload --config when the file changes")
	playCmd.Flags().StringVar(&flagLogPath, "log", "", "Write a log to this file")
}

func runPlay(cmd *cobra.Command, args []string) error {
	cfg, preset, err := loadConfig()
	if err != nil {
		return err
	}

	logger, closeLog, err := openLog(flagLogPath)
	if err != nil {
		return err
	}
	defer closeLog()

	game, err := flappy.New(cfg)
	if err != nil {
		return err
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	opts := tui.Options{
		Runtime: core.RuntimeConfig{
			ScreenW:  width,
			ScreenH:  height,
			TickRate: flagFPS,
			Seed:     flagSeed,
		},
		Logger: logger,
	}

	if flagWatch {
		if flagConfig == "" {
			return fmt.Errorf("--watch needs --config")
		}
		w, err := config.Watch(flagConfig, logger)
		if err != nil {
			return err
		}
		defer w.Close()
		opts.Reloads = withPreset(w.Updates(), preset)
	}

	logger.Info("starting", "game", game.Title(), "difficulty", preset, "seed", flagSeed)
	if err := tui.Run(game, opts); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}

// openLog returns a file logger, or a discarding one when path is empty.
// The terminal belongs to the game, so play never logs to stderr.
func openLog(path string) (*log.Logger, func(), error) {
	if path == "" {
		return log.New(io.Discard), func() {}, nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log %s: %w", path, err)
	}
	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "boya",
		Level:           log.DebugLevel,
	})
	return logger, func() { f.Close() }, nil
}

// withPreset re-applies the difficulty preset to every reloaded config.
func withPreset(in <-chan config.FlappyConfig, preset config.DifficultyPreset) <-chan config.FlappyConfig {
	out := make(chan config.FlappyConfig, 1)
	go func() {
		defer close(out)
		for cfg := range in {
			config.ApplyPreset(&cfg, preset)
			out <- cfg
		}
	}()
	return out
}
