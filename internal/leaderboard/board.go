package leaderboard

import (
	"context"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/log"
)

// Board is the client-side leaderboard collaborator. Submissions are
// rate limited per identity and persisted in the background; reads degrade
// to an empty list on failure.
type Board struct {
	backend  Backend
	identity Identity
	cooldown *Cooldown
	timeout  time.Duration
	logger   *log.Logger
	now      func() time.Time

	wg sync.WaitGroup
}

// BoardOptions configures a Board.
type BoardOptions struct {
	Cooldown time.Duration // Minimum gap between submissions
	Timeout  time.Duration // Per-request deadline, zero means none
	Logger   *log.Logger
}

// NewBoard creates a Board writing to backend as identity.
func NewBoard(backend Backend, identity Identity, opts BoardOptions) *Board {
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	return &Board{
		backend:  backend,
		identity: identity,
		cooldown: NewCooldown(opts.Cooldown),
		timeout:  opts.Timeout,
		logger:   opts.Logger,
		now:      time.Now,
	}
}

// Identity returns the identity scores are submitted as.
func (b *Board) Identity() Identity {
	return b.identity
}

// Submit records a finished run without blocking. Submissions inside the
// cooldown window are dropped; failures are logged.
func (b *Board) Submit(name string, score, level int) {
	name = strings.TrimSpace(name)
	if name == "" {
		name = b.identity.Name
	}
	entry := Entry{
		UserID:     b.identity.UserID,
		PlayerName: name,
		Score:      score,
		Level:      level,
		CreatedAt:  b.now().UTC(),
	}
	if err := entry.Validate(); err != nil {
		b.logger.Warn("score not submitted", "err", err)
		return
	}
	if !b.cooldown.Allow(entry.UserID) {
		b.logger.Warn("score not submitted", "err", ErrRateLimited, "retry_in", b.cooldown.Remaining(entry.UserID).Round(time.Second))
		return
	}

	b.wg.Add(1)
	go func() {
		defer b.wg.Done()
		ctx, cancel := b.context()
		defer cancel()
		if err := b.backend.Save(ctx, entry); err != nil {
			b.logger.Error("score submission failed", "player", entry.PlayerName, "score", entry.Score, "err", err)
			return
		}
		b.logger.Info("score submitted", "player", entry.PlayerName, "score", entry.Score, "level", entry.Level)
	}()
}

// Top returns up to n ranked entries. Any failure yields an empty list.
func (b *Board) Top(ctx context.Context, n int) []Entry {
	if b.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, b.timeout)
		defer cancel()
	}
	entries, err := b.backend.Top(ctx, n)
	if err != nil {
		b.logger.Warn("leaderboard unavailable", "err", err)
		return []Entry{}
	}
	if entries == nil {
		entries = []Entry{}
	}
	return entries
}

// Wait blocks until pending submissions have finished.
func (b *Board) Wait() {
	b.wg.Wait()
}

func (b *Board) context() (context.Context, context.CancelFunc) {
	if b.timeout > 0 {
		return context.WithTimeout(context.Background(), b.timeout)
	}
	return context.WithCancel(context.Background())
}
