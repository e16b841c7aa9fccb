package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/lightcycle/internal/leaderboard"
	"github.com/vovakirdan/lightcycle/internal/storage"
)

// maxScores is how many leaderboard rows are requested.
const maxScores = 10

// StatsSource provides local play statistics.
type StatsSource interface {
	Stats(ctx context.Context) (*storage.Stats, error)
}

// FeedSource pushes newly accepted leaderboard entries.
type FeedSource interface {
	Watch(ctx context.Context, fn func(leaderboard.Entry)) error
}

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Refresh key.Binding
	Back    key.Binding
	Quit    key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Refresh, k.Back, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Refresh},
		{k.Back, k.Quit},
	}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "refresh"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

type statsLoadedMsg struct {
	stats *storage.Stats
}

// ScoreboardModel is the Bubble Tea model for the leaderboard screen.
type ScoreboardModel struct {
	board     *leaderboard.Board
	stats     StatsSource
	feed      FeedSource
	entries   []leaderboard.Entry
	summary   *storage.Stats
	loaded    bool
	table     table.Model
	help      help.Model
	keys      ScoreboardKeyMap
	width     int
	height    int
	quitting  bool
	goingBack bool

	feedCh chan leaderboard.Entry
	ctx    context.Context
	cancel context.CancelFunc
}

// NewScoreboardModel creates a new scoreboard model. stats and feed may be nil.
func NewScoreboardModel(board *leaderboard.Board, stats StatsSource, feed FeedSource, width, height int) ScoreboardModel {
	h := help.New()
	h.ShowAll = false

	ctx, cancel := context.WithCancel(context.Background())
	m := ScoreboardModel{
		board:  board,
		stats:  stats,
		feed:   feed,
		keys:   DefaultScoreboardKeyMap(),
		help:   h,
		width:  width,
		height: height,
		feedCh: make(chan leaderboard.Entry, 16),
		ctx:    ctx,
		cancel: cancel,
	}
	m.table = m.createTable()
	return m
}

// createTable creates a new table with appropriate columns.
func (m *ScoreboardModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Rank", Width: 6},
		{Title: "Name", Width: leaderboard.MaxNameLength},
		{Title: "Score", Width: 8},
		{Title: "Level", Width: 6},
		{Title: "Date", Width: 14},
	}

	// Shrink the name column on narrow terminals
	used := 6 + 8 + 6 + 14 + 12
	if avail := m.width - used; avail < leaderboard.MaxNameLength {
		columns[1].Width = max(avail, 8)
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-10, 3)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// updateTableRows updates the table with current entries.
func (m *ScoreboardModel) updateTableRows() {
	rows := make([]table.Row, len(m.entries))
	for i, e := range m.entries {
		rows[i] = table.Row{
			fmt.Sprintf("#%d", i+1),
			e.PlayerName,
			fmt.Sprintf("%d", e.Score),
			fmt.Sprintf("%d", e.Level),
			e.CreatedAt.Local().Format("Jan 02 15:04"),
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// Init loads the board and starts the live feed.
func (m ScoreboardModel) Init() tea.Cmd {
	return tea.Batch(m.loadTop(), m.loadStats(), m.watchFeed())
}

func (m ScoreboardModel) loadTop() tea.Cmd {
	board := m.board
	ctx := m.ctx
	return func() tea.Msg {
		if board == nil {
			return TopLoadedMsg{}
		}
		return TopLoadedMsg{Entries: board.Top(ctx, maxScores)}
	}
}

func (m ScoreboardModel) loadStats() tea.Cmd {
	src := m.stats
	if src == nil {
		return nil
	}
	ctx := m.ctx
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		stats, err := src.Stats(ctx)
		if err != nil {
			return statsLoadedMsg{}
		}
		return statsLoadedMsg{stats: stats}
	}
}

// watchFeed subscribes to the feed and waits for its first entry.
func (m ScoreboardModel) watchFeed() tea.Cmd {
	feed := m.feed
	if feed == nil {
		return nil
	}
	ctx, ch := m.ctx, m.feedCh
	return func() tea.Msg {
		go func() {
			defer close(ch)
			//nolint:errcheck // The feed is optional; the table still loads
			feed.Watch(ctx, func(e leaderboard.Entry) {
				select {
				case ch <- e:
				default:
				}
			})
		}()
		return waitForFeed(ch)()
	}
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.cancel()
			m.quitting = true
			return m, nil

		case key.Matches(msg, m.keys.Back):
			m.cancel()
			m.goingBack = true
			return m, nil

		case key.Matches(msg, m.keys.Refresh):
			return m, tea.Batch(m.loadTop(), m.loadStats())

		case key.Matches(msg, m.keys.Up), key.Matches(msg, m.keys.Down):
			m.table, cmd = m.table.Update(msg)
			return m, cmd
		}

	case TopLoadedMsg:
		m.entries = msg.Entries
		m.loaded = true
		m.updateTableRows()
		return m, nil

	case statsLoadedMsg:
		m.summary = msg.stats
		return m, nil

	case FeedEntryMsg:
		if m.goingBack || m.quitting {
			return m, nil
		}
		return m, tea.Batch(m.loadTop(), waitForFeed(m.feedCh))

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229"))
	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render("HIGH SCORES"), m.width))
	b.WriteString("\n\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	b.WriteString(tableStyle.Render(m.renderTableContent()))
	b.WriteString("\n")

	if line := m.statsLine(); line != "" {
		b.WriteString(line)
		b.WriteString("\n")
	}

	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// renderTableContent renders the table or an empty message.
func (m ScoreboardModel) renderTableContent() string {
	if len(m.entries) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(2, 4)
		if !m.loaded {
			return emptyStyle.Render("Loading...")
		}
		return emptyStyle.Render("No scores recorded yet.\nBeat the CPU to get on the board!")
	}
	return m.table.View()
}

func (m ScoreboardModel) statsLine() string {
	s := m.summary
	if s == nil || s.Rounds == 0 {
		return ""
	}
	line := fmt.Sprintf("Rounds %d  Won %d  Lost %d  Best level %d", s.Rounds, s.Wins, s.Losses, s.BestLevel)
	if s.FastestWin > 0 {
		line += fmt.Sprintf("  Fastest win %.1fs", s.FastestWin.Seconds())
	}
	return line
}

// IsGoingBack returns true if user wants to go back to menu.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}
