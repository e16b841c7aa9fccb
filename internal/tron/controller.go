package tron

import (
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/vovakirdan/lightcycle/internal/config"
)

// Submitter receives final run scores. Implementations must not block.
type Submitter interface {
	Submit(name string, score, level int)
}

// HistoryRecorder stores finished levels. Called off the tick goroutine.
type HistoryRecorder interface {
	RecordRound(r Result)
}

// Options configures a Controller.
type Options struct {
	Config      config.TronConfig
	Seed        int64
	Now         func() time.Time // Defaults to time.Now
	Logger      *log.Logger      // Defaults to a discarding logger
	Submitter   Submitter        // Optional
	History     HistoryRecorder  // Optional
	Autopilot   bool
	EventBuffer int // Defaults to 64
}

// Controller runs a Session on a Clock and publishes frames. Transitions
// stop the clock, mutate the session, then restart the clock, so a tick
// never observes a half-reset level.
type Controller struct {
	transition sync.Mutex // Serializes lifecycle transitions
	mu         sync.Mutex // Guards session and submitted
	session    *Session
	clock      Clock
	submitted  bool // Current run already sent to the leaderboard

	logger    *log.Logger
	submitter Submitter
	history   HistoryRecorder

	events chan Event
	closed bool // Guarded by transition
}

// NewController creates an idle controller.
func NewController(opts Options) *Controller {
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.EventBuffer <= 0 {
		opts.EventBuffer = 64
	}

	sessOpts := []SessionOption{WithAutopilot(opts.Autopilot)}
	if opts.Now != nil {
		sessOpts = append(sessOpts, WithClock(opts.Now))
	}

	return &Controller{
		session:   NewSession(opts.Config, opts.Seed, sessOpts...),
		logger:    opts.Logger,
		submitter: opts.Submitter,
		history:   opts.History,
		events:    make(chan Event, opts.EventBuffer),
	}
}

// Events returns the frame and end-of-level stream.
func (c *Controller) Events() <-chan Event {
	return c.events
}

// StartNewGame begins a new run at level 1.
func (c *Controller) StartNewGame(name string) {
	c.runTransition("new game", func() bool {
		c.flushRun()
		c.session.StartNewGame(name)
		c.submitted = false
		return true
	})
}

// Restart begins a new run from level 1 under the same name.
func (c *Controller) Restart() {
	c.runTransition("restart", func() bool {
		if !c.session.Started() {
			return false
		}
		c.flushRun()
		c.session.Restart()
		c.submitted = false
		return true
	})
}

// AdvanceToNextLevel moves on after a player win. It reports false when the
// last level was not won by the player.
func (c *Controller) AdvanceToNextLevel() bool {
	return c.runTransition("next level", c.session.AdvanceToNextLevel)
}

// SetPlayerHeading buffers the player's next heading.
func (c *Controller) SetPlayerHeading(h Heading) {
	c.mu.Lock()
	c.session.SetPendingHeading(PlayerRef, h)
	c.mu.Unlock()
}

// Quit stops the clock. A run with a positive score that was not already
// submitted is sent to the leaderboard.
func (c *Controller) Quit() {
	c.transition.Lock()
	defer c.transition.Unlock()
	c.quitLocked()
}

// quitLocked stops the clock and flushes the run. Caller holds transition.
func (c *Controller) quitLocked() {
	c.clock.Stop()

	c.mu.Lock()
	c.flushRun()
	state := c.session.State()
	c.mu.Unlock()
	c.logger.Debug("quit", "level", state.Level, "score", state.Score)
}

// flushRun submits the current run when it is being abandoned with a
// positive score that was never submitted. Caller holds mu.
func (c *Controller) flushRun() {
	state := c.session.State()
	if !c.session.Started() || c.submitted || state.Score <= 0 {
		return
	}
	c.submitted = true
	c.submit(state.PlayerName, state.Score, state.Level)
}

// Close quits and closes the event stream. Later transitions are ignored.
func (c *Controller) Close() {
	c.transition.Lock()
	defer c.transition.Unlock()
	if c.closed {
		return
	}
	c.closed = true
	c.quitLocked()
	close(c.events)
}

// Frame returns a snapshot of the current state.
func (c *Controller) Frame() Frame {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.session.Frame()
}

// State returns the current match state.
func (c *Controller) State() MatchState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.session.State()
}

// Running reports whether the simulation clock is ticking.
func (c *Controller) Running() bool {
	return c.clock.Running()
}

// runTransition stops the clock, applies fn under the session lock and, if
// fn reports success, publishes a frame and restarts the clock at the
// level's interval.
func (c *Controller) runTransition(name string, fn func() bool) bool {
	c.transition.Lock()
	defer c.transition.Unlock()
	if c.closed {
		return false
	}
	c.clock.Stop()

	c.mu.Lock()
	ok := fn()
	frame := c.session.Frame()
	interval := c.session.TickInterval()
	gameOver := c.session.State().GameOver
	c.mu.Unlock()

	if !ok {
		c.logger.Debug("transition rejected", "transition", name)
		return false
	}

	c.logger.Info(name, "player", frame.PlayerName, "level", frame.Level, "score", frame.Score, "interval", interval)
	c.publish(FrameEvent{Frame: frame})
	if !gameOver {
		c.clock.Start(interval, c.step)
	}
	return true
}

// step runs on the clock goroutine.
func (c *Controller) step() bool {
	c.mu.Lock()
	outcome := c.session.Tick()
	frame := c.session.Frame()
	result := c.session.Result()
	submit := outcome.Winner == WinnerCPU && !c.submitted
	if submit {
		c.submitted = true
	}
	c.mu.Unlock()

	if !outcome.Decisive() {
		c.publish(FrameEvent{Frame: frame})
		return true
	}

	c.logger.Info("level over",
		"level", result.Level,
		"winner", result.Winner,
		"reason", result.Reason,
		"score", result.Score,
		"ticks", result.Ticks,
		"elapsed", result.Elapsed.Round(time.Millisecond),
	)
	if c.history != nil {
		go c.history.RecordRound(result)
	}
	if submit {
		c.submit(result.PlayerName, result.Score, result.Level)
	}
	c.publish(EndEvent{Frame: frame, Result: result})
	return false
}

func (c *Controller) submit(name string, score, level int) {
	if c.submitter == nil {
		return
	}
	c.logger.Debug("submitting score", "player", name, "score", score, "level", level)
	c.submitter.Submit(name, score, level)
}

// publish never blocks: when the buffer is full the oldest event is
// dropped to make room.
func (c *Controller) publish(evt Event) {
	select {
	case c.events <- evt:
		return
	default:
	}
	select {
	case <-c.events:
	default:
	}
	select {
	case c.events <- evt:
	default:
	}
}
