package leaderboard

import (
	"fmt"
	"testing"
	"time"
)

func TestCooldown(t *testing.T) {
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	c := NewCooldown(10 * time.Second)
	c.now = func() time.Time { return now }

	if !c.Allow("u1") {
		t.Fatal("first submission rejected")
	}
	if !c.Allow("u2") {
		t.Fatal("other user rejected")
	}

	now = now.Add(9 * time.Second)
	if c.Allow("u1") {
		t.Error("submission inside the window accepted")
	}
	if got := c.Remaining("u1"); got != time.Second {
		t.Errorf("Remaining = %v, want 1s", got)
	}

	now = now.Add(time.Second)
	if !c.Allow("u1") {
		t.Error("submission after the window rejected")
	}
	if got := c.Remaining("nobody"); got != 0 {
		t.Errorf("Remaining for unknown key = %v", got)
	}
}

func TestCooldownPrunesStaleKeys(t *testing.T) {
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	c := NewCooldown(time.Second)
	c.now = func() time.Time { return now }

	for i := 0; i < pruneThreshold-1; i++ {
		c.Allow(fmt.Sprintf("user-%d", i))
	}
	now = now.Add(time.Minute)
	c.Allow("fresh")

	if len(c.last) != 1 {
		t.Errorf("after prune %d keys remain, want 1", len(c.last))
	}
}
