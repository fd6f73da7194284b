// Package tui runs the game in a terminal with Bubble Tea. It drives the
// fixed-rate tick loop, maps keys and mouse clicks to actions, and turns
// the game's character screen into styled output.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/boya/internal/assets"
	"github.com/vovakirdan/boya/internal/config"
)

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// AssetsReadyMsg reports that asset loading finished. Err is set when the
// configured art could not be loaded; Assets then holds the built-in art.
type AssetsReadyMsg struct {
	Assets *assets.Assets
	Err    error
}

// ConfigReloadedMsg carries a configuration picked up by the file watcher.
type ConfigReloadedMsg struct {
	Config config.FlappyConfig
}

// screenshotMsg reports the outcome of a screenshot.
type screenshotMsg struct {
	path string
	err  error
}

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int) tea.Cmd {
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// loadAssetsCmd loads art off the update loop.
func loadAssetsCmd(cfg config.FlappyConfig) tea.Cmd {
	return func() tea.Msg {
		a, err := assets.Load(cfg)
		if err != nil {
			return AssetsReadyMsg{Assets: assets.Generated(cfg), Err: err}
		}
		return AssetsReadyMsg{Assets: a}
	}
}

// waitForReload blocks until the watcher publishes a config. A nil or
// closed channel yields no message.
func waitForReload(ch <-chan config.FlappyConfig) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		cfg, ok := <-ch
		if !ok {
			return nil
		}
		return ConfigReloadedMsg{Config: cfg}
	}
}
