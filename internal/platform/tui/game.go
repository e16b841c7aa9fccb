package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/lightcycle/internal/core"
	"github.com/vovakirdan/lightcycle/internal/tron"
)

var gameIDs atomic.Uint64

// GameModel drives one tron.Controller and renders its frames.
type GameModel struct {
	id         uint64
	controller *tron.Controller
	screen     *core.Screen
	config     core.RuntimeConfig
	frame      tron.Frame
	gameState  core.GameState
	keyMapper  *KeyMapper
	help       help.Model
	demo       bool
	quitting   bool
	backToMenu bool
	lastShot   string
}

// NewGameModel wraps a controller and starts a run under cfg.PlayerName.
func NewGameModel(ctrl *tron.Controller, cfg core.RuntimeConfig, demo bool) GameModel {
	ctrl.StartNewGame(cfg.PlayerName)
	h := help.New()
	h.Width = cfg.ScreenW
	frame := ctrl.Frame()
	return GameModel{
		id:         gameIDs.Add(1),
		controller: ctrl,
		screen:     core.NewScreen(cfg.ScreenW, boardHeight(cfg.ScreenH, frame.Height)),
		config:     cfg,
		frame:      frame,
		gameState:  stateOf(frame),
		keyMapper:  NewKeyMapper(),
		help:       h,
		demo:       demo,
	}
}

// Init begins listening for frames.
func (m GameModel) Init() tea.Cmd {
	return waitForEvent(m.id, m.controller.Events())
}

// Update handles messages.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, boardHeight(msg.Height, m.frame.Height))
		m.help.Width = msg.Width
		return m, nil

	case GameEventMsg:
		if msg.Game != m.id {
			return m, nil
		}
		m.applyEvent(msg.Event)
		return m, waitForEvent(m.id, m.controller.Events())
	}

	return m, nil
}

func (m *GameModel) applyEvent(evt tron.Event) {
	var frame tron.Frame
	switch e := evt.(type) {
	case tron.FrameEvent:
		frame = e.Frame
	case tron.EndEvent:
		frame = e.Frame
	default:
		return
	}
	if frame.Round < m.frame.Round {
		return
	}
	m.frame = frame
	m.gameState = stateOf(m.frame)
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keyMapper.Keys().Screenshot) {
		m.saveScreenshot()
		return m, nil
	}

	action := m.keyMapper.MapKey(msg)
	switch action {
	case core.ActionQuit:
		m.controller.Close()
		m.quitting = true
		return m, tea.Quit

	case core.ActionBack:
		m.controller.Close()
		m.backToMenu = true
		return m, nil

	case core.ActionRestart:
		m.controller.Restart()
		m.frame = m.controller.Frame()

	case core.ActionNextLevel:
		if m.gameState.GameOver && m.frame.Winner == tron.WinnerPlayer {
			m.controller.AdvanceToNextLevel()
			m.frame = m.controller.Frame()
		}

	default:
		if m.demo || !action.IsSteering() {
			return m, nil
		}
		if h, ok := tron.HeadingForAction(action); ok {
			m.controller.SetPlayerHeading(h)
		}
	}

	m.gameState = stateOf(m.frame)
	return m, nil
}

// saveScreenshot writes the current screen as plain text.
func (m *GameModel) saveScreenshot() {
	tron.Render(m.screen, m.frame)

	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, ".lightcycle", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	filename := fmt.Sprintf("level%d_%s.txt", m.frame.Level, time.Now().Format("20060102_150405"))
	path := filepath.Join(dir, filename)
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err == nil {
		m.lastShot = path
	}
}

// View renders the game.
func (m GameModel) View() string {
	if m.quitting || m.backToMenu {
		return ""
	}

	tron.Render(m.screen, m.frame)
	if m.screen.Height() == m.config.ScreenH {
		return RenderScreen(m.screen)
	}
	footer := m.help.ShortHelpView(m.keyMapper.Keys().ShortHelp())
	if m.demo {
		footer = "demo  " + footer
	}
	if m.lastShot != "" {
		footer = "saved " + filepath.Base(m.lastShot) + "  " + footer
	}
	footerStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	return RenderScreen(m.screen) + "\n" + footerStyle.Render(footer)
}

// State returns the last observed score, level and game-over flag.
func (m GameModel) State() core.GameState {
	return m.gameState
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// boardHeight leaves a row for the key help when the terminal is tall
// enough to fit it below the arena.
func boardHeight(screenH, gridH int) int {
	if screenH-1 >= gridH+4 {
		return screenH - 1
	}
	return max(screenH, 1)
}

func stateOf(f tron.Frame) core.GameState {
	return core.GameState{Score: f.Score, Level: f.Level, GameOver: f.GameOver}
}
