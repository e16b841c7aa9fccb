package tui

import (
	"io"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/lightcycle/internal/config"
	"github.com/vovakirdan/lightcycle/internal/core"
	"github.com/vovakirdan/lightcycle/internal/leaderboard"
	"github.com/vovakirdan/lightcycle/internal/tron"
)

// Deps are the collaborators shared by every screen of one app instance.
type Deps struct {
	Config   config.TronConfig
	Backend  leaderboard.Backend  // Defaults to an in-memory board
	History  tron.HistoryRecorder // Optional
	Stats    StatsSource          // Optional
	Feed     FeedSource           // Optional
	Logger   *log.Logger
	Identity leaderboard.Identity

	// IdentityPath, when set, receives the identity with the last name
	// typed into the menu.
	IdentityPath string
}

type screenKind int

const (
	screenMenu screenKind = iota
	screenGame
	screenScoreboard
)

// AppModel manages the full flow: menu -> game or leaderboard -> menu.
// The same model is used locally and for SSH sessions.
type AppModel struct {
	deps       Deps
	board      *leaderboard.Board
	config     core.RuntimeConfig
	screen     screenKind
	menu       MenuModel
	game       *GameModel
	scoreboard *ScoreboardModel
	quitting   bool
	live       *liveGame
}

// liveGame tracks the running controller so it can be stopped when the
// program ends without the game screen seeing a quit key.
type liveGame struct {
	mu   sync.Mutex
	ctrl *tron.Controller
}

func (l *liveGame) set(c *tron.Controller) {
	l.mu.Lock()
	prev := l.ctrl
	l.ctrl = c
	l.mu.Unlock()
	if prev != nil && prev != c {
		prev.Close()
	}
}

// NewAppModel creates the app, starting on the menu.
func NewAppModel(deps Deps, cfg core.RuntimeConfig) AppModel {
	if deps.Logger == nil {
		deps.Logger = log.New(io.Discard)
	}
	if deps.Backend == nil {
		deps.Backend = leaderboard.NewMemoryBackend()
	}
	if cfg.PlayerName == "" {
		cfg.PlayerName = deps.Identity.Name
	}

	board := leaderboard.NewBoard(deps.Backend, deps.Identity, leaderboard.BoardOptions{
		Cooldown: deps.Config.Leaderboard.Cooldown,
		Timeout:  deps.Config.Leaderboard.Timeout,
		Logger:   deps.Logger,
	})

	return AppModel{
		deps:   deps,
		board:  board,
		config: cfg,
		menu:   NewMenuModel(cfg.PlayerName, cfg.ScreenW, cfg.ScreenH),
		live:   &liveGame{},
	}
}

// Shutdown stops any running game, submitting an abandoned run, and waits
// for pending leaderboard submissions.
func (m AppModel) Shutdown() {
	m.live.set(nil)
	m.board.Wait()
}

// Board returns the leaderboard collaborator used by games.
func (m AppModel) Board() *leaderboard.Board {
	return m.board
}

// Init initializes the app.
func (m AppModel) Init() tea.Cmd {
	if m.screen == screenGame {
		return m.game.Init()
	}
	return m.menu.Init()
}

// Update handles messages for the current screen.
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW = wsm.Width
		m.config.ScreenH = wsm.Height
	}

	switch m.screen {
	case screenGame:
		return m.updateGame(msg)
	case screenScoreboard:
		return m.updateScoreboard(msg)
	}
	return m.updateMenu(msg)
}

// updateMenu handles updates when in menu mode.
func (m AppModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	newMenu, cmd := m.menu.Update(msg)
	if menuModel, ok := newMenu.(MenuModel); ok {
		m.menu = menuModel
	}

	switch m.menu.Selected() {
	case ChoiceQuit:
		m.quitting = true
		return m, tea.Quit

	case ChoicePlay, ChoiceDemo:
		demo := m.menu.Selected() == ChoiceDemo
		m.config.PlayerName = m.menu.PlayerName()
		if !demo {
			m.rememberName(m.config.PlayerName)
		}
		m = m.startGame(demo)
		return m, m.game.Init()

	case ChoiceLeaderboard:
		m.config.PlayerName = m.menu.PlayerName()
		sb := NewScoreboardModel(m.board, m.deps.Stats, m.deps.Feed, m.config.ScreenW, m.config.ScreenH)
		m.scoreboard = &sb
		m.screen = screenScoreboard
		return m, m.scoreboard.Init()
	}

	return m, cmd
}

// startGame switches to the game screen with a fresh controller.
func (m AppModel) startGame(demo bool) AppModel {
	ctrl := m.newController(demo)
	m.live.set(ctrl)
	game := NewGameModel(ctrl, m.config, demo)
	m.game = &game
	m.screen = screenGame
	return m
}

// newController builds a controller for one game. Demo runs are never
// submitted to the leaderboard.
func (m AppModel) newController(demo bool) *tron.Controller {
	seed := m.config.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	opts := tron.Options{
		Config:    m.deps.Config,
		Seed:      seed,
		Logger:    m.deps.Logger,
		History:   m.deps.History,
		Autopilot: demo,
	}
	if !demo {
		opts.Submitter = m.board
	}
	return tron.NewController(opts)
}

// rememberName persists a changed display name to the identity file.
func (m *AppModel) rememberName(name string) {
	if m.deps.IdentityPath == "" || name == m.deps.Identity.Name {
		return
	}
	m.deps.Identity.Name = name
	if err := m.deps.Identity.Save(m.deps.IdentityPath); err != nil {
		m.deps.Logger.Warn("could not save identity", "err", err)
	}
}

func (m AppModel) backToMenu() (tea.Model, tea.Cmd) {
	m.live.set(nil)
	m.screen = screenMenu
	m.game = nil
	m.scoreboard = nil
	m.menu = NewMenuModel(m.config.PlayerName, m.config.ScreenW, m.config.ScreenH)
	return m, m.menu.Init()
}

// updateGame handles updates when in game mode.
func (m AppModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.game.Update(msg)
	if gameModel, ok := newModel.(GameModel); ok {
		m.game = &gameModel
	}

	if m.game.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}
	if m.game.BackToMenu() {
		return m.backToMenu()
	}
	return m, cmd
}

// updateScoreboard handles updates when the leaderboard is shown.
func (m AppModel) updateScoreboard(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.scoreboard.Update(msg)
	if sb, ok := newModel.(ScoreboardModel); ok {
		m.scoreboard = &sb
	}

	if m.scoreboard.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}
	if m.scoreboard.IsGoingBack() {
		return m.backToMenu()
	}
	return m, cmd
}

// View renders the current screen.
func (m AppModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.screen {
	case screenGame:
		return m.game.View()
	case screenScoreboard:
		return m.scoreboard.View()
	}
	return m.menu.View()
}

// Run starts the app on the local terminal and blocks until it exits and
// pending leaderboard submissions have finished.
func Run(deps Deps, cfg core.RuntimeConfig) error {
	return run(NewAppModel(deps, cfg))
}

// RunDemo skips the menu and starts an autopilot game. Esc returns to the
// menu as usual.
func RunDemo(deps Deps, cfg core.RuntimeConfig) error {
	return run(NewAppModel(deps, cfg).startGame(true))
}

func run(model AppModel) error {
	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	model.Shutdown()
	return err
}
