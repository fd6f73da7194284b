package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/boya/internal/assets"
	"github.com/vovakirdan/boya/internal/config"
	"github.com/vovakirdan/boya/internal/core"
	"github.com/vovakirdan/boya/internal/games/flappy"
	"github.com/vovakirdan/boya/internal/render/canvas"
)

// Game is the host-facing shape of a playable game.
type Game interface {
	ID() string
	Title() string
	Reset(cfg core.RuntimeConfig)
	Step(in core.InputFrame) core.StepResult
	Render(dst *core.Screen)
	State() core.GameState
	ApplyConfig(cfg config.FlappyConfig) error
	Snapshot() flappy.Snapshot
	Config() config.FlappyConfig
}

// Options configures the host around a game.
type Options struct {
	Runtime core.RuntimeConfig

	// Logger receives round and reload events. Nil discards them.
	Logger *log.Logger

	// Reloads delivers validated configs from a file watcher. May be nil.
	Reloads <-chan config.FlappyConfig

	// ScreenshotDir is where ctrl+s writes PNG frames.
	// Defaults to ~/.arcade/screenshots.
	ScreenshotDir string
}

// Model is the Bubble Tea model for running the game.
type Model struct {
	game       Game
	screen     *core.Screen
	config     core.RuntimeConfig
	logger     *log.Logger
	reloads    <-chan config.FlappyConfig
	shotDir    string
	assets     *assets.Assets
	keys       KeyMap
	help       help.Model
	inputFrame core.InputFrame
	gameState  core.GameState
	roundID    string
	ready      bool // Assets loaded, ticking
	quitting   bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game Game, opts Options) Model {
	cfg := opts.Runtime
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	shotDir := opts.ScreenshotDir
	if shotDir == "" {
		home, _ := os.UserHomeDir()
		shotDir = filepath.Join(home, ".arcade", "screenshots")
	}

	h := help.New()
	h.ShowAll = false

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, playHeight(cfg.ScreenH)),
		config:     cfg,
		logger:     logger,
		reloads:    opts.Reloads,
		shotDir:    shotDir,
		keys:       DefaultKeyMap(),
		help:       h,
		inputFrame: core.NewInputFrame(),
	}
}

// playHeight leaves the last terminal row for the help line.
func playHeight(h int) int {
	return core.Max(h-1, 1)
}

// Init resets the game and starts loading assets. Ticking begins once
// they are ready.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tea.Batch(loadAssetsCmd(m.game.Config()), waitForReload(m.reloads))
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		if action := MouseAction(msg); action != core.ActionNone {
			m.inputFrame.Set(action)
		}
		return m, nil

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case AssetsReadyMsg:
		return m.handleAssets(msg)

	case ConfigReloadedMsg:
		return m.handleReload(msg)

	case screenshotMsg:
		if msg.err != nil {
			m.logger.Warn("screenshot failed", "error", msg.err)
		} else {
			m.logger.Info("screenshot saved", "path", msg.path)
		}
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Screenshot) {
		return m, m.screenshotCmd()
	}

	switch action := m.keys.Action(msg); action {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case core.ActionNone:
	default:
		m.inputFrame.Set(action)
	}
	return m, nil
}

// handleResize processes window resize events. The field is independent of
// the terminal size, so the round keeps going.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, playHeight(msg.Height))
	m.help.Width = msg.Width
	return m, nil
}

// handleAssets starts the tick loop on the first readiness signal. Later
// signals come from reloads and only swap the art.
func (m Model) handleAssets(msg AssetsReadyMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		m.logger.Warn("using built-in art", "error", msg.Err)
	}
	m.assets = msg.Assets
	if m.ready {
		return m, nil
	}
	m.ready = true
	m.logger.Debug("assets ready")
	return m, tickCmd(m.config.TickRate)
}

// handleReload stages a new config and keeps listening.
func (m Model) handleReload(msg ConfigReloadedMsg) (tea.Model, tea.Cmd) {
	prev := m.game.Config()
	if err := m.game.ApplyConfig(msg.Config); err != nil {
		m.logger.Warn("config rejected", "error", err)
		return m, waitForReload(m.reloads)
	}
	m.logger.Info("config reloaded", "applied", !m.gameState.Started)

	cmds := []tea.Cmd{waitForReload(m.reloads)}
	if msg.Config.Assets != prev.Assets || msg.Config.Actor != prev.Actor {
		cmds = append(cmds, loadAssetsCmd(msg.Config))
	}
	return m, tea.Batch(cmds...)
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	prev := m.gameState
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	switch {
	case !prev.Started && m.gameState.Started:
		m.roundID = uuid.NewString()
		m.logger.Info("round started", "round", m.roundID)
	case prev.Started && !m.gameState.Started:
		m.logger.Debug("round reset", "round", m.roundID)
		m.roundID = ""
	}
	if result.Passed > 0 {
		m.logger.Debug("obstacle passed", "round", m.roundID, "score", m.gameState.Score)
	}
	if result.Ended {
		m.logger.Info("round over", "round", m.roundID, "score", m.gameState.Score, "cause", result.Cause)
	}

	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate)
}

// screenshotCmd renders the current frame to a PNG off the update loop.
func (m Model) screenshotCmd() tea.Cmd {
	snap := m.game.Snapshot()
	art := m.assets
	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(m.shotDir, fmt.Sprintf("%s_%s.png", m.game.ID(), timestamp))

	return func() tea.Msg {
		err := canvas.NewRenderer(art).SavePNG(snap, path)
		return screenshotMsg{path: path, err: err}
	}
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if !m.ready {
		return "Loading " + m.game.Title() + "..."
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// Run starts the Bubble Tea program for the given game.
func Run(game Game, opts Options) error {
	model := NewModel(game, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err := p.Run()
	return err
}
