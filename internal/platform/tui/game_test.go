package tui

import (
	"testing"

	"github.com/vovakirdan/lightcycle/internal/config"
	"github.com/vovakirdan/lightcycle/internal/core"
	"github.com/vovakirdan/lightcycle/internal/tron"
)

func TestGameIgnoresFramesFromEarlierRound(t *testing.T) {
	ctrl := tron.NewController(tron.Options{Config: config.DefaultTronConfig(), Seed: 1})
	t.Cleanup(ctrl.Close)
	m := NewGameModel(ctrl, core.RuntimeConfig{ScreenW: 80, ScreenH: 34, PlayerName: "Ada"}, false)

	stale := m.frame
	stale.Tick = 99
	stale.GameOver = true
	stale.Winner = tron.WinnerCPU

	next, _ := m.Update(runeKey("r"))
	m = next.(GameModel)
	round := m.frame.Round
	if round <= stale.Round {
		t.Fatalf("round after restart = %d, expected > %d", round, stale.Round)
	}

	tests := []struct {
		name  string
		event tron.Event
	}{
		{"frame", tron.FrameEvent{Frame: stale}},
		{"end", tron.EndEvent{Frame: stale}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next, _ := m.Update(GameEventMsg{Game: m.id, Event: tt.event})
			got := next.(GameModel)
			if got.frame.Round != round || got.frame.Tick == 99 {
				t.Errorf("stale %s applied: round %d tick %d", tt.name, got.frame.Round, got.frame.Tick)
			}
			if got.State().GameOver {
				t.Error("stale end event ended the new round")
			}
		})
	}

	current := m.frame
	current.Tick = 7
	next, _ = m.Update(GameEventMsg{Game: m.id, Event: tron.FrameEvent{Frame: current}})
	if got := next.(GameModel).frame.Tick; got != 7 {
		t.Errorf("tick = %d, expected current-round frame applied", got)
	}
}
