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

	"github.com/vovakirdan/mukbang/internal/core"
	"github.com/vovakirdan/mukbang/internal/registry"
)

// HoldWindow is how long a movement key counts as held after its last
// press or auto-repeat. It must exceed the gap between auto-repeat events.
const HoldWindow = 180 * time.Millisecond

// footerHeight is the number of rows reserved for the key help line.
const footerHeight = 1

// Model is the Bubble Tea model for running a game.
type Model struct {
	game     registry.Game
	screen   *core.Screen
	config   core.RuntimeConfig
	keys     KeyMap
	help     help.Model
	holds    *core.HoldTracker
	input    core.InputFrame
	state    core.GameState
	lastTick time.Time
	logger   *log.Logger
	quitting bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, cfg core.RuntimeConfig, logger *log.Logger) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	return Model{
		game:   game,
		screen: core.NewScreen(cfg.ScreenW, max(cfg.ScreenH-footerHeight, 1)),
		config: cfg,
		keys:   DefaultKeyMap(),
		help:   help.New(),
		holds:  core.NewHoldTracker(HoldWindow),
		input:  core.NewInputFrame(),
		logger: logger,
	}
}

// Init resets the game and starts the tick loop.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.logger.Info("game ready", "game", m.game.ID(), "seed", m.config.Seed, "fps", m.config.TickRate)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg, time.Now())

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey records key input for the next tick.
// Movement keys refresh their hold window; pressing one direction releases
// the other so direction changes are immediate.
func (m Model) handleKey(msg tea.KeyMsg, now time.Time) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Screenshot) {
		if path, err := m.saveScreenshot(); err != nil {
			m.logger.Warn("screenshot failed", "error", err)
		} else {
			m.logger.Info("screenshot saved", "path", path)
		}
		return m, nil
	}

	switch action := m.keys.Action(msg); action {
	case core.ActionLeft:
		m.holds.Release(core.ActionRight)
		m.holds.Press(core.ActionLeft, now)
	case core.ActionRight:
		m.holds.Release(core.ActionLeft)
		m.holds.Press(core.ActionRight, now)
	case core.ActionConfirm, core.ActionQuit:
		m.input.Set(action)
	}

	return m, nil
}

// handleResize processes window resize events.
// Games draw in world units, so a resize only changes the cell buffer.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, max(msg.Height-footerHeight, 1))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick runs one simulation step with the real time since the last tick.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	var dt time.Duration
	if !m.lastTick.IsZero() {
		dt = max(now.Sub(m.lastTick), 0)
	}
	m.lastTick = now

	m.holds.Apply(&m.input, now)

	prev := m.state
	result := m.game.Step(m.input, dt)
	m.state = result.State
	m.logTransition(prev, m.state)

	// Clear input for next frame
	m.input.Clear()

	if result.Quit {
		m.quitting = true
		m.logger.Info("quit", "score", m.state.Score)
		return m, tea.Quit
	}

	return m, tickCmd(m.config.TickRate)
}

// logTransition reports round starts and ends.
func (m Model) logTransition(prev, cur core.GameState) {
	switch {
	case cur.Playing && !prev.Playing:
		if prev.GameOver {
			m.logger.Info("round restarted")
		} else {
			m.logger.Info("round started")
		}
	case cur.GameOver && !prev.GameOver:
		m.logger.Info("round over", "score", cur.Score, "lives", cur.Lives, "result", cur.Result)
	}
}

// saveScreenshot writes the current screen as plain text and returns its path.
func (m Model) saveScreenshot() (string, error) {
	m.screen.Clear()
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot get home directory: %w", err)
	}
	dir := filepath.Join(home, ".mukbang", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("cannot create screenshot directory: %w", err)
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return "", fmt.Errorf("cannot write screenshot: %w", err)
	}
	return path, nil
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.screen.Clear()
	m.game.Render(m.screen)

	return RenderScreen(m.screen) + "\n" + footerStyle.Render(m.help.View(m.keys))
}

// Run starts the Bubble Tea program for game on the alternate screen.
func Run(game registry.Game, cfg core.RuntimeConfig, logger *log.Logger) error {
	model := NewModel(game, cfg, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	if err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}
