// Package tui provides the Bubble Tea front end for the light cycle game:
// start menu, game view, leaderboard and SSH hosting.
package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/lightcycle/internal/leaderboard"
	"github.com/vovakirdan/lightcycle/internal/tron"
)

// GameEventMsg carries a controller event into the Bubble Tea loop. Game is
// the id of the GameModel whose controller produced it.
type GameEventMsg struct {
	Game  uint64
	Event tron.Event
}

// eventsClosedMsg is sent when a controller's event stream ends.
type eventsClosedMsg struct {
	Game uint64
}

// waitForEvent returns a command that waits for the next controller event.
func waitForEvent(game uint64, ch <-chan tron.Event) tea.Cmd {
	return func() tea.Msg {
		if ch == nil {
			return nil
		}
		evt, ok := <-ch
		if !ok {
			return eventsClosedMsg{Game: game}
		}
		return GameEventMsg{Game: game, Event: evt}
	}
}

// TopLoadedMsg delivers a leaderboard page.
type TopLoadedMsg struct {
	Entries []leaderboard.Entry
}

// FeedEntryMsg is pushed when the remote board accepts a new score.
type FeedEntryMsg struct {
	Entry leaderboard.Entry
}

// waitForFeed returns a command that waits for the next feed entry.
func waitForFeed(ch <-chan leaderboard.Entry) tea.Cmd {
	return func() tea.Msg {
		if ch == nil {
			return nil
		}
		e, ok := <-ch
		if !ok {
			return nil
		}
		return FeedEntryMsg{Entry: e}
	}
}
