// Package tui provides the Bubble Tea front-end for 2048, locally and over SSH.
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

	"github.com/vovakirdan/term2048/internal/core"
	"github.com/vovakirdan/term2048/internal/t2048"
)

// helpHeight is the number of rows kept below the board for the help bar.
const helpHeight = 1

// Model is the Bubble Tea model for a 2048 session.
type Model struct {
	game     *t2048.Game
	screen   *core.Screen
	renderer *ScreenRenderer
	keys     KeyMap
	help     help.Model
	config   core.RuntimeConfig
	logger   *log.Logger
	quitting bool
}

// NewModel creates a model for game. A zero cfg.Seed is replaced with the clock.
// A nil renderer uses the default lipgloss renderer; a nil logger discards.
func NewModel(game *t2048.Game, cfg core.RuntimeConfig, renderer *ScreenRenderer, logger *log.Logger) Model {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if renderer == nil {
		renderer = NewScreenRenderer(nil)
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	h := help.New()
	h.Width = cfg.ScreenW

	return Model{
		game:     game,
		screen:   core.NewScreen(cfg.ScreenW, max(cfg.ScreenH-helpHeight, 0)),
		renderer: renderer,
		keys:     DefaultKeyMap(),
		help:     h,
		config:   cfg,
		logger:   logger,
	}
}

// Init starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.boardConfig())
	return nil
}

// boardConfig is the runtime config with the help bar subtracted.
func (m Model) boardConfig() core.RuntimeConfig {
	cfg := m.config
	cfg.ScreenH = max(cfg.ScreenH-helpHeight, 0)
	return cfg
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)
	}

	return m, nil
}

// handleKey processes keyboard input. The game only advances on key presses.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	case key.Matches(msg, m.keys.Screenshot):
		if err := m.saveScreenshot(); err != nil {
			m.logger.Warn("screenshot failed", "error", err)
		}
		return m, nil
	}

	action := m.keys.Action(msg)
	switch action {
	case core.ActionNone:
		return m, nil
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case core.ActionRestart:
		m.restart()
	default:
		m.game.Step(core.NewInputFrame(action))
	}

	m.keys.Restart.SetEnabled(m.game.Over())
	return m, nil
}

// restart begins a new game with a fresh clock seed.
func (m *Model) restart() {
	m.config.Seed = time.Now().UnixNano()
	m.game.Reset(m.boardConfig())
	m.logger.Debug("restart", "seed", m.config.Seed)
}

// handleResize resizes the screen without resetting the game.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.help.Width = msg.Width

	board := m.boardConfig()
	m.screen.Resize(board.ScreenW, board.ScreenH)
	m.game.SetScreenSize(board.ScreenW, board.ScreenH)

	return m, nil
}

// saveScreenshot writes the current screen, without colors, to ~/.t2048/screenshots.
func (m Model) saveScreenshot() error {
	home, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("tui: screenshot: %w", err)
	}
	dir := filepath.Join(home, ".t2048", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("tui: screenshot: %w", err)
	}

	m.game.Render(m.screen)
	name := fmt.Sprintf("t2048_%s.txt", time.Now().Format("20060102_150405"))
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return fmt.Errorf("tui: screenshot: %w", err)
	}

	m.logger.Info("screenshot saved", "path", path)
	return nil
}

// View renders the board followed by the help bar.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return m.renderer.Render(m.screen) + "\n" + m.help.View(m.keys)
}

// Game returns the session driven by the model.
func (m Model) Game() *t2048.Game {
	return m.game
}

// Run starts a local Bubble Tea program for game.
func Run(game *t2048.Game, cfg core.RuntimeConfig, logger *log.Logger) error {
	model := NewModel(game, cfg, nil, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}
