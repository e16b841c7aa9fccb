package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/vovakirdan/lightcycle/internal/tron"
)

// RoundRecord is one finished level.
type RoundRecord struct {
	ID         int64
	PlayerName string
	Level      int
	Winner     string // "player" or "cpu"
	Reason     string
	Score      int // Run total after the level
	TimeBonus  int
	Elapsed    time.Duration
	Ticks      uint64
	CreatedAt  time.Time
}

// RoundFromResult converts an engine result into a record.
func RoundFromResult(r tron.Result) RoundRecord {
	return RoundRecord{
		PlayerName: r.PlayerName,
		Level:      r.Level,
		Winner:     r.Winner.String(),
		Reason:     r.Reason,
		Score:      r.Score,
		TimeBonus:  r.Reward.TimeBonus,
		Elapsed:    r.Elapsed,
		Ticks:      r.Ticks,
	}
}

// SaveRound records a finished level and returns its ID.
func (s *Store) SaveRound(ctx context.Context, r RoundRecord) (int64, error) {
	if r.CreatedAt.IsZero() {
		r.CreatedAt = s.now()
	}
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO rounds
		 (player_name, level, winner, reason, score, time_bonus, elapsed_ms, ticks, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.PlayerName,
		r.Level,
		r.Winner,
		r.Reason,
		r.Score,
		r.TimeBonus,
		r.Elapsed.Milliseconds(),
		int64(r.Ticks),
		formatTime(r.CreatedAt),
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save round: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// RecordRound implements tron.HistoryRecorder. Failures are logged.
func (s *Store) RecordRound(r tron.Result) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if _, err := s.SaveRound(ctx, RoundFromResult(r)); err != nil {
		s.logger.Error("cannot record round", "level", r.Level, "err", err)
	}
}

var _ tron.HistoryRecorder = (*Store)(nil)

// RecentRounds retrieves the most recent rounds, newest first.
func (s *Store) RecentRounds(ctx context.Context, limit int) ([]RoundRecord, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, player_name, level, winner, reason, score, time_bonus, elapsed_ms, ticks, created_at
		 FROM rounds
		 ORDER BY created_at DESC, id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query rounds: %w", err)
	}
	defer rows.Close()

	var records []RoundRecord
	for rows.Next() {
		var r RoundRecord
		var elapsedMS, ticks int64
		var createdAt any
		if err := rows.Scan(
			&r.ID,
			&r.PlayerName,
			&r.Level,
			&r.Winner,
			&r.Reason,
			&r.Score,
			&r.TimeBonus,
			&elapsedMS,
			&ticks,
			&createdAt,
		); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.Elapsed = time.Duration(elapsedMS) * time.Millisecond
		r.Ticks = uint64(ticks)
		r.CreatedAt = parseTime(createdAt)
		records = append(records, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return records, nil
}

// Stats contains aggregated play statistics.
type Stats struct {
	Rounds       int
	Wins         int
	Losses       int
	BestLevel    int // Highest level won
	FastestWin   time.Duration
	HighScore    int
	ScoreEntries int
	LastPlayed   time.Time
}

// Stats aggregates the rounds and scores tables.
func (s *Store) Stats(ctx context.Context) (*Stats, error) {
	stats := &Stats{}
	var fastest int64

	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*),
		        COALESCE(SUM(CASE WHEN winner = 'player' THEN 1 ELSE 0 END), 0),
		        COALESCE(SUM(CASE WHEN winner = 'cpu' THEN 1 ELSE 0 END), 0),
		        COALESCE(MAX(CASE WHEN winner = 'player' THEN level END), 0),
		        COALESCE(MIN(CASE WHEN winner = 'player' THEN elapsed_ms END), 0)
		 FROM rounds`,
	).Scan(&stats.Rounds, &stats.Wins, &stats.Losses, &stats.BestLevel, &fastest)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get round stats: %w", err)
	}
	stats.FastestWin = time.Duration(fastest) * time.Millisecond

	err = s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM scores`).Scan(&stats.ScoreEntries)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get score stats: %w", err)
	}
	if stats.HighScore, err = s.HighScore(ctx); err != nil {
		return nil, err
	}

	var lastPlayed any
	err = s.db.QueryRowContext(ctx,
		`SELECT created_at FROM rounds ORDER BY created_at DESC LIMIT 1`,
	).Scan(&lastPlayed)
	if err != nil && !isNoRows(err) {
		return nil, fmt.Errorf("storage: cannot get last played: %w", err)
	}
	if err == nil {
		stats.LastPlayed = parseTime(lastPlayed)
	}

	return stats, nil
}
