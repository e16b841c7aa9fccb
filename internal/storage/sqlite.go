// Package storage provides SQLite-based persistence for leaderboard scores
// and round history. Uses the pure-Go modernc.org/sqlite driver to avoid
// CGO dependencies.
package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/lightcycle/internal/leaderboard"
)

// timeLayout is fixed-width so text ordering matches time ordering.
const timeLayout = "2006-01-02 15:04:05.000000000"

// Store manages the SQLite database connection.
type Store struct {
	db     *sql.DB
	logger *log.Logger
	now    func() time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}
	// Board submissions and round records arrive from separate goroutines
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db, logger: log.New(io.Discard), now: time.Now}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// DefaultPath returns ~/.lightcycle/lightcycle.db.
func DefaultPath() string {
	return "~/.lightcycle/lightcycle.db"
}

// SetLogger sets the logger used for failures that cannot be returned.
func (s *Store) SetLogger(l *log.Logger) {
	if l != nil {
		s.logger = l
	}
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS scores (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			user_id TEXT NOT NULL,
			player_name TEXT NOT NULL,
			score INTEGER NOT NULL,
			level INTEGER NOT NULL,
			created_at DATETIME NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_scores_top ON scores(score DESC, created_at ASC);
		CREATE INDEX IF NOT EXISTS idx_scores_user ON scores(user_id);

		CREATE TABLE IF NOT EXISTS rounds (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			player_name TEXT NOT NULL,
			level INTEGER NOT NULL,
			winner TEXT NOT NULL,
			reason TEXT NOT NULL,
			score INTEGER NOT NULL DEFAULT 0,
			time_bonus INTEGER NOT NULL DEFAULT 0,
			elapsed_ms INTEGER NOT NULL DEFAULT 0,
			ticks INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_rounds_created ON rounds(created_at DESC);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Save records a leaderboard entry. Implements leaderboard.Backend.
func (s *Store) Save(ctx context.Context, e leaderboard.Entry) error {
	_, err := s.SaveScore(ctx, e)
	return err
}

// SaveScore records a leaderboard entry and returns its ID.
func (s *Store) SaveScore(ctx context.Context, e leaderboard.Entry) (int64, error) {
	if e.CreatedAt.IsZero() {
		e.CreatedAt = s.now()
	}
	result, err := s.db.ExecContext(ctx,
		"INSERT INTO scores (user_id, player_name, score, level, created_at) VALUES (?, ?, ?, ?, ?)",
		e.UserID, e.PlayerName, e.Score, e.Level, formatTime(e.CreatedAt),
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save score: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// Top retrieves the top n entries ordered by score descending; ties go to
// the earlier entry. Implements leaderboard.Backend.
func (s *Store) Top(ctx context.Context, n int) ([]leaderboard.Entry, error) {
	if n <= 0 {
		n = 10
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, user_id, player_name, score, level, created_at
		 FROM scores
		 ORDER BY score DESC, created_at ASC, id ASC
		 LIMIT ?`,
		n,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query scores: %w", err)
	}
	defer rows.Close()

	entries := []leaderboard.Entry{}
	for rows.Next() {
		var e leaderboard.Entry
		var createdAt any
		if err := rows.Scan(&e.ID, &e.UserID, &e.PlayerName, &e.Score, &e.Level, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.CreatedAt = parseTime(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// HighScore returns the highest recorded score, or 0 if none exist.
func (s *Store) HighScore(ctx context.Context) (int, error) {
	var score sql.NullInt64
	err := s.db.QueryRowContext(ctx, "SELECT MAX(score) FROM scores").Scan(&score)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}

	if !score.Valid {
		return 0, nil
	}

	return int(score.Int64), nil
}

// ClearScores deletes all leaderboard entries.
func (s *Store) ClearScores(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM scores")
	if err != nil {
		return fmt.Errorf("storage: cannot clear scores: %w", err)
	}
	return nil
}

var _ leaderboard.Backend = (*Store)(nil)

func formatTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}

// parseTime handles both driver-decoded times and raw text.
func parseTime(v any) time.Time {
	switch v := v.(type) {
	case time.Time:
		return v.UTC()
	case string:
		for _, layout := range []string{timeLayout, time.RFC3339Nano, "2006-01-02 15:04:05"} {
			if parsed, err := time.Parse(layout, v); err == nil {
				return parsed
			}
		}
	case []byte:
		return parseTime(string(v))
	}
	return time.Time{}
}

// isNoRows reports whether err is sql.ErrNoRows.
func isNoRows(err error) bool {
	return errors.Is(err, sql.ErrNoRows)
}
