package tron

import (
	"sync"
	"time"
)

// Clock drives a tick function at a fixed interval on its own goroutine.
// At most one loop runs at a time.
type Clock struct {
	mu   sync.Mutex
	stop chan struct{}
	done chan struct{}
}

// Start launches a loop calling tick every interval until tick returns
// false or Stop is called. A running loop is stopped first.
func (c *Clock) Start(interval time.Duration, tick func() bool) {
	c.Stop()

	c.mu.Lock()
	defer c.mu.Unlock()
	stop := make(chan struct{})
	done := make(chan struct{})
	c.stop, c.done = stop, done

	go func() {
		defer close(done)
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				if !tick() {
					return
				}
			case <-stop:
				return
			}
		}
	}()
}

// Stop ends the loop and waits for it to exit. Safe to call when idle.
// Must not be called from inside the tick function.
func (c *Clock) Stop() {
	c.mu.Lock()
	stop, done := c.stop, c.done
	c.stop, c.done = nil, nil
	c.mu.Unlock()

	if stop == nil {
		return
	}
	close(stop)
	<-done
}

// Running reports whether a loop is active.
func (c *Clock) Running() bool {
	c.mu.Lock()
	done := c.done
	c.mu.Unlock()
	if done == nil {
		return false
	}
	select {
	case <-done:
		return false
	default:
		return true
	}
}
