package leaderboard

import (
	"sync"
	"time"
)

// pruneThreshold is the map size at which stale keys are swept.
const pruneThreshold = 1024

// Cooldown allows one action per key per window.
type Cooldown struct {
	mu     sync.Mutex
	window time.Duration
	last   map[string]time.Time
	now    func() time.Time
}

// NewCooldown creates a limiter with the given window.
func NewCooldown(window time.Duration) *Cooldown {
	return &Cooldown{
		window: window,
		last:   make(map[string]time.Time),
		now:    time.Now,
	}
}

// Allow reports whether key may act now and, if so, records the attempt.
// Rejected attempts do not extend the window.
func (c *Cooldown) Allow(key string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	if last, ok := c.last[key]; ok && now.Sub(last) < c.window {
		return false
	}
	c.last[key] = now

	if len(c.last) >= pruneThreshold {
		c.pruneLocked(now)
	}
	return true
}

// Remaining returns how long key must wait before its next action.
func (c *Cooldown) Remaining(key string) time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()
	last, ok := c.last[key]
	if !ok {
		return 0
	}
	return max(0, c.window-c.now().Sub(last))
}

func (c *Cooldown) pruneLocked(now time.Time) {
	cutoff := now.Add(-c.window)
	for key, t := range c.last {
		if t.Before(cutoff) {
			delete(c.last, key)
		}
	}
}
