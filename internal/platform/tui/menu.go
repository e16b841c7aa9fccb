package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/lightcycle/internal/leaderboard"
	"github.com/vovakirdan/lightcycle/internal/tron"
)

// MenuChoice is what the user picked on the start screen.
type MenuChoice int

const (
	ChoiceNone MenuChoice = iota
	ChoicePlay
	ChoiceDemo
	ChoiceLeaderboard
	ChoiceQuit
)

// MenuItem represents a selectable entry in the menu.
type MenuItem struct {
	Title  string
	Choice MenuChoice
}

var menuItems = []MenuItem{
	{Title: "Play", Choice: ChoicePlay},
	{Title: "Demo", Choice: ChoiceDemo},
	{Title: "Leaderboard", Choice: ChoiceLeaderboard},
	{Title: "Quit", Choice: ChoiceQuit},
}

// MenuModel is the start screen: a name field and a short list of actions.
type MenuModel struct {
	name      textinput.Model
	items     []MenuItem
	cursor    int
	width     int
	height    int
	keyMapper *KeyMapper
	selected  MenuChoice
}

// NewMenuModel creates a menu with the name field prefilled.
func NewMenuModel(name string, width, height int) MenuModel {
	ti := textinput.New()
	ti.Placeholder = tron.DefaultPlayerName
	ti.CharLimit = leaderboard.MaxNameLength
	ti.Width = leaderboard.MaxNameLength
	ti.Prompt = "Name: "
	ti.SetValue(name)
	ti.Focus()

	return MenuModel{
		name:      ti,
		items:     menuItems,
		width:     width,
		height:    height,
		keyMapper: NewKeyMapper(),
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch m.keyMapper.MapKeyToMenuAction(msg) {
		case MenuActionQuit, MenuActionBack:
			m.selected = ChoiceQuit
			return m, nil
		case MenuActionUp:
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil
		case MenuActionDown:
			if m.cursor < len(m.items)-1 {
				m.cursor++
			}
			return m, nil
		case MenuActionSelect:
			m.selected = m.items[m.cursor].Choice
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}

	var cmd tea.Cmd
	m.name, cmd = m.name.Update(msg)
	return m, cmd
}

// View renders the menu.
func (m MenuModel) View() string {
	var b strings.Builder

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("51"))
	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render("L I G H T   C Y C L E"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Outlast the CPU. Don't touch walls or trails.", m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(m.name.View(), m.width))
	b.WriteString("\n\n")

	for i, item := range m.items {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}
		b.WriteString(centerText(fmt.Sprintf("%s%-12s", cursor, item.Title), m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	help := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	b.WriteString(centerText(help.Render("Up/Down: Navigate  |  Enter: Select  |  Esc: Quit"), m.width))
	b.WriteString("\n")

	return b.String()
}

// Selected returns the picked entry, or ChoiceNone.
func (m MenuModel) Selected() MenuChoice {
	return m.selected
}

// PlayerName returns the trimmed name, falling back to the default.
func (m MenuModel) PlayerName() string {
	name := strings.TrimSpace(m.name.Value())
	if name == "" {
		return tron.DefaultPlayerName
	}
	return name
}
