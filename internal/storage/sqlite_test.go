package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/vovakirdan/lightcycle/internal/leaderboard"
	"github.com/vovakirdan/lightcycle/internal/tron"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "nested", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Check that the file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreReopenKeepsData(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")
	ctx := context.Background()

	store, err := Open(dbPath)
	if err != nil {
		t.Fatal(err)
	}
	if err := store.Save(ctx, leaderboard.Entry{UserID: "u", PlayerName: "Ada", Score: 10, Level: 1}); err != nil {
		t.Fatal(err)
	}
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer store.Close()

	top, err := store.Top(ctx, 10)
	if err != nil || len(top) != 1 {
		t.Errorf("Top() after reopen = %+v, %v", top, err)
	}
}

func TestStoreTopOrdering(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()
	base := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

	entries := []leaderboard.Entry{
		{UserID: "u1", PlayerName: "Ada", Score: 100, Level: 1},
		{UserID: "u2", PlayerName: "Flynn", Score: 350, Level: 3},
		{UserID: "u3", PlayerName: "Tron", Score: 50, Level: 1},
		{UserID: "u4", PlayerName: "Quorra", Score: 350, Level: 4},
	}
	for i, e := range entries {
		e.CreatedAt = base.Add(time.Duration(i) * time.Minute)
		if _, err := store.SaveScore(ctx, e); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}

	top, err := store.Top(ctx, 3)
	if err != nil {
		t.Fatalf("Top() failed: %v", err)
	}
	if len(top) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(top))
	}

	wantNames := []string{"Flynn", "Quorra", "Ada"}
	for i, e := range top {
		if e.PlayerName != wantNames[i] {
			t.Errorf("rank %d = %s, want %s", i+1, e.PlayerName, wantNames[i])
		}
	}
	if !top[0].CreatedAt.Equal(base.Add(time.Minute)) {
		t.Errorf("CreatedAt = %v, want %v", top[0].CreatedAt, base.Add(time.Minute))
	}
	if top[1].Level != 4 || top[1].UserID != "u4" {
		t.Errorf("entry fields lost: %+v", top[1])
	}
}

func TestStoreEmpty(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	top, err := store.Top(ctx, 10)
	if err != nil {
		t.Fatalf("Top() failed: %v", err)
	}
	if top == nil || len(top) != 0 {
		t.Errorf("Top() on empty store = %#v, want empty list", top)
	}

	high, err := store.HighScore(ctx)
	if err != nil || high != 0 {
		t.Errorf("HighScore() = %d, %v", high, err)
	}
}

func TestStoreHighScoreAndClear(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	for _, score := range []int{100, 500, 250} {
		if err := store.Save(ctx, leaderboard.Entry{UserID: "u", PlayerName: "Ada", Score: score, Level: 1}); err != nil {
			t.Fatal(err)
		}
	}

	high, err := store.HighScore(ctx)
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 500 {
		t.Errorf("HighScore() = %d, want 500", high)
	}

	stats, err := store.Stats(ctx)
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.HighScore != 500 || stats.ScoreEntries != 3 {
		t.Errorf("stats before clear = %+v", stats)
	}

	if err := store.ClearScores(ctx); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}
	if high, _ := store.HighScore(ctx); high != 0 {
		t.Errorf("HighScore() after clear = %d", high)
	}
	if stats, _ := store.Stats(ctx); stats == nil || stats.HighScore != 0 || stats.ScoreEntries != 0 {
		t.Errorf("stats after clear = %+v", stats)
	}
}

func TestStoreRounds(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	store.RecordRound(tron.Result{
		PlayerName: "Ada",
		Level:      1,
		Winner:     tron.WinnerPlayer,
		Reason:     tron.ReasonCPUCrashed,
		Score:      250,
		Reward:     tron.LevelReward{Base: 150, TimeBonus: 100},
		Elapsed:    8 * time.Second,
		Ticks:      53,
	})
	store.RecordRound(tron.Result{
		PlayerName: "Ada",
		Level:      2,
		Winner:     tron.WinnerCPU,
		Reason:     tron.ReasonPlayerOwnTrail,
		Score:      250,
		Elapsed:    12 * time.Second,
		Ticks:      85,
	})

	rounds, err := store.RecentRounds(ctx, 10)
	if err != nil {
		t.Fatalf("RecentRounds() failed: %v", err)
	}
	if len(rounds) != 2 {
		t.Fatalf("expected 2 rounds, got %d", len(rounds))
	}
	if rounds[0].Level != 2 || rounds[0].Winner != "cpu" || rounds[0].Reason != tron.ReasonPlayerOwnTrail {
		t.Errorf("newest round = %+v", rounds[0])
	}
	if rounds[1].TimeBonus != 100 || rounds[1].Elapsed != 8*time.Second || rounds[1].Ticks != 53 {
		t.Errorf("oldest round = %+v", rounds[1])
	}

	stats, err := store.Stats(ctx)
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.Rounds != 2 || stats.Wins != 1 || stats.Losses != 1 || stats.BestLevel != 1 {
		t.Errorf("stats = %+v", stats)
	}
	if stats.FastestWin != 8*time.Second {
		t.Errorf("FastestWin = %v", stats.FastestWin)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("LastPlayed not set")
	}
}

func TestStoreStatsEmpty(t *testing.T) {
	store := openTestStore(t)

	stats, err := store.Stats(context.Background())
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.Rounds != 0 || stats.HighScore != 0 || !stats.LastPlayed.IsZero() {
		t.Errorf("stats = %+v", stats)
	}
}

func TestStoreBacksBoard(t *testing.T) {
	store := openTestStore(t)
	b := leaderboard.NewBoard(store, leaderboard.NewIdentity("Flynn"), leaderboard.BoardOptions{Cooldown: time.Second})

	b.Submit("Ada", 350, 3)
	b.Wait()

	top := b.Top(context.Background(), 5)
	if len(top) != 1 || top[0].Score != 350 {
		t.Errorf("Top() = %+v", top)
	}
}
