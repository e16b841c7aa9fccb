// Package leaderboard submits finished runs and serves the ranked top-N
// list, either from the local store or from a remote leaderboard server.
package leaderboard

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"
)

// MaxNameLength bounds display names on the board.
const MaxNameLength = 24

var (
	// ErrRateLimited is returned when a user submits again inside the cooldown.
	ErrRateLimited = errors.New("leaderboard: rate limited")
	// ErrInvalidEntry is returned for entries that fail validation.
	ErrInvalidEntry = errors.New("leaderboard: invalid entry")
)

// Entry is one leaderboard row.
type Entry struct {
	ID         int64     `json:"id,omitempty"`
	UserID     string    `json:"user_id"`
	PlayerName string    `json:"player_name"`
	Score      int       `json:"score"`
	Level      int       `json:"level"`
	CreatedAt  time.Time `json:"created_at"`
}

// Validate normalizes the name and checks field ranges.
func (e *Entry) Validate() error {
	e.PlayerName = strings.TrimSpace(e.PlayerName)
	switch {
	case e.UserID == "":
		return fmt.Errorf("%w: missing user id", ErrInvalidEntry)
	case e.PlayerName == "":
		return fmt.Errorf("%w: missing player name", ErrInvalidEntry)
	case utf8.RuneCountInString(e.PlayerName) > MaxNameLength:
		return fmt.Errorf("%w: player name longer than %d", ErrInvalidEntry, MaxNameLength)
	case e.Score < 0:
		return fmt.Errorf("%w: negative score", ErrInvalidEntry)
	case e.Level < 1:
		return fmt.Errorf("%w: level must be at least 1", ErrInvalidEntry)
	}
	return nil
}

// Backend persists entries and returns them ranked by score, highest
// first; ties go to the earlier entry.
type Backend interface {
	Save(ctx context.Context, e Entry) error
	Top(ctx context.Context, n int) ([]Entry, error)
}
