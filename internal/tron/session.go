package tron

import (
	"math/rand"
	"strings"
	"time"

	"github.com/vovakirdan/lightcycle/internal/config"
)

// DefaultPlayerName is used when a blank name is given.
const DefaultPlayerName = "Player"

// MatchState is the cross-level progress of one run.
type MatchState struct {
	PlayerName string
	Level      int
	Score      int
	GameOver   bool
	Winner     Winner
	Reason     string
	LevelStart time.Time
	Tick       uint64
}

// Result summarizes a finished level.
type Result struct {
	PlayerName string
	Level      int
	Winner     Winner
	Reason     string
	Score      int // Run total after this level
	Reward     LevelReward
	Elapsed    time.Duration
	Ticks      uint64
}

// Session owns the world, both cycles and the match state. It is not safe
// for concurrent use; Controller serializes access to it.
type Session struct {
	cfg config.TronConfig
	rng *rand.Rand
	now func() time.Time

	state     MatchState
	world     *World
	player    *Entity
	cpu       *Entity
	result    Result
	autopilot bool
	round     uint64 // bumped on every level reset
}

// SessionOption configures a Session.
type SessionOption func(*Session)

// WithClock overrides the wall clock used for elapsed time.
func WithClock(now func() time.Time) SessionOption {
	return func(s *Session) { s.now = now }
}

// WithAutopilot lets the heuristic steer the player as well.
func WithAutopilot(on bool) SessionOption {
	return func(s *Session) { s.autopilot = on }
}

// NewSession creates an idle session. Call StartNewGame before Tick.
func NewSession(cfg config.TronConfig, seed int64, opts ...SessionOption) *Session {
	s := &Session{
		cfg: cfg,
		rng: rand.New(rand.NewSource(seed)),
		now: time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// StartNewGame begins a run at level 1 with zero score.
func (s *Session) StartNewGame(name string) {
	name = strings.TrimSpace(name)
	if name == "" {
		name = DefaultPlayerName
	}
	s.state = MatchState{PlayerName: name, Level: 1}
	s.resetLevel()
}

// Restart begins a fresh run for the same player: level 1, zero score.
func (s *Session) Restart() {
	s.state = MatchState{PlayerName: s.state.PlayerName, Level: 1}
	s.resetLevel()
}

// AdvanceToNextLevel moves to the next level after a player win.
// It reports false and does nothing otherwise.
func (s *Session) AdvanceToNextLevel() bool {
	if !s.state.GameOver || s.state.Winner != WinnerPlayer {
		return false
	}
	s.state.Level++
	s.resetLevel()
	return true
}

func (s *Session) resetLevel() {
	s.round++
	s.world = SetupLevel(s.cfg, s.state.Level, s.rng)
	s.player = NewPlayer(s.world, s.cfg.Trail.Length)
	s.cpu = NewCPU(s.world, s.cfg.Trail.Length)
	s.state.GameOver = false
	s.state.Winner = WinnerNone
	s.state.Reason = ""
	s.state.Tick = 0
	s.state.LevelStart = s.now()
	s.result = Result{}
}

// EntityRef selects one of the two cycles.
type EntityRef int

const (
	PlayerRef EntityRef = iota
	CPURef
)

// SetPendingHeading buffers the next heading of a cycle. Ignored once the
// level is over or when h would reverse the cycle.
func (s *Session) SetPendingHeading(ref EntityRef, h Heading) {
	if s.world == nil || s.state.GameOver {
		return
	}
	if ref == CPURef {
		s.cpu.SetPendingHeading(h)
		return
	}
	s.player.SetPendingHeading(h)
}

// Tick advances the simulation one step: the CPU decides, both cycles
// move, then collisions are checked. Ticks after the level ended are
// no-ops that return the final outcome.
func (s *Session) Tick() Outcome {
	if s.world == nil {
		return Outcome{}
	}
	if s.state.GameOver {
		return Outcome{Winner: s.state.Winner, Reason: s.state.Reason}
	}

	s.state.Tick++
	s.cpu.PendingHeading = DecideCPUHeading(s.world, s.player, s.cpu, s.rng)
	if s.autopilot {
		s.player.SetPendingHeading(DecideAutopilotHeading(s.world, s.player, s.cpu, s.rng))
	}
	s.player.Move()
	s.cpu.Move()

	outcome := CheckCollisions(s.world, s.player, s.cpu)
	if outcome.Decisive() {
		s.finish(outcome)
	}
	return outcome
}

func (s *Session) finish(o Outcome) {
	elapsed := s.now().Sub(s.state.LevelStart)
	s.state.GameOver = true
	s.state.Winner = o.Winner
	s.state.Reason = o.Reason

	var reward LevelReward
	if o.Winner == WinnerPlayer {
		reward = RewardFor(s.cfg, s.state.Level, elapsed)
		s.state.Score += reward.Total()
	}

	s.result = Result{
		PlayerName: s.state.PlayerName,
		Level:      s.state.Level,
		Winner:     o.Winner,
		Reason:     o.Reason,
		Score:      s.state.Score,
		Reward:     reward,
		Elapsed:    elapsed,
		Ticks:      s.state.Tick,
	}
}

// State returns a copy of the match state.
func (s *Session) State() MatchState {
	return s.state
}

// Result returns the last finished level, or a zero Result while playing.
func (s *Session) Result() Result {
	return s.result
}

// World returns the current level. Nil before StartNewGame.
func (s *Session) World() *World {
	return s.world
}

// TickInterval returns the current level's simulation period.
func (s *Session) TickInterval() time.Duration {
	if s.world == nil {
		return s.cfg.TickInterval(1)
	}
	return s.world.TickInterval
}

// Started reports whether a run is in progress.
func (s *Session) Started() bool {
	return s.world != nil
}
