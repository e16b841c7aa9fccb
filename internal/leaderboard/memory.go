package leaderboard

import (
	"cmp"
	"context"
	"slices"
	"sync"
)

// MemoryBackend keeps entries in process. Used when no database is
// available and in tests.
type MemoryBackend struct {
	mu      sync.RWMutex
	entries []Entry
	nextID  int64
}

// NewMemoryBackend creates an empty backend.
func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{}
}

// Save stores a copy of e with a fresh ID.
func (m *MemoryBackend) Save(_ context.Context, e Entry) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextID++
	e.ID = m.nextID
	m.entries = append(m.entries, e)
	return nil
}

// Top returns up to n entries in rank order.
func (m *MemoryBackend) Top(_ context.Context, n int) ([]Entry, error) {
	m.mu.RLock()
	sorted := slices.Clone(m.entries)
	m.mu.RUnlock()

	SortEntries(sorted)
	if n >= 0 && len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted, nil
}

// SortEntries orders entries by score descending, then by creation time
// and ID ascending.
func SortEntries(entries []Entry) {
	slices.SortStableFunc(entries, func(a, b Entry) int {
		if c := cmp.Compare(b.Score, a.Score); c != 0 {
			return c
		}
		if c := a.CreatedAt.Compare(b.CreatedAt); c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})
}
