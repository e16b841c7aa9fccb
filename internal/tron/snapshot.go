package tron

import (
	"time"

	"github.com/vovakirdan/lightcycle/internal/core"
)

// Frame is an immutable copy of everything needed to draw one tick.
// Round identifies the level reset the frame belongs to; frames from an
// earlier round are stale.
type Frame struct {
	Round      uint64
	Width      int
	Height     int
	Level      int
	Score      int
	Tick       uint64
	PlayerName string
	Elapsed    time.Duration
	Obstacles  []core.Point
	Player     Entity
	CPU        Entity
	GameOver   bool
	Winner     Winner
	Reason     string
}

// Frame captures the current state for rendering.
func (s *Session) Frame() Frame {
	if s.world == nil {
		return Frame{Width: s.cfg.Grid.Width, Height: s.cfg.Grid.Height}
	}
	elapsed := s.now().Sub(s.state.LevelStart)
	if s.state.GameOver {
		elapsed = s.result.Elapsed
	}
	return Frame{
		Round:      s.round,
		Width:      s.world.Width,
		Height:     s.world.Height,
		Level:      s.state.Level,
		Score:      s.state.Score,
		Tick:       s.state.Tick,
		PlayerName: s.state.PlayerName,
		Elapsed:    elapsed,
		Obstacles:  s.world.Obstacles(),
		Player:     s.player.Clone(),
		CPU:        s.cpu.Clone(),
		GameOver:   s.state.GameOver,
		Winner:     s.state.Winner,
		Reason:     s.state.Reason,
	}
}
