package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/lightcycle/internal/leaderboard"
	"github.com/vovakirdan/lightcycle/internal/storage"
)

var (
	flagRounds int
	flagRemote bool
	flagClear  bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the leaderboard",
	Long: `Display the top scores, local play statistics and, optionally, the
most recent rounds.

Examples:
  lightcycle scores
  lightcycle scores --rounds 5
  lightcycle scores --remote
  lightcycle scores --clear`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagRounds, "rounds", 0, "Also list this many recent rounds")
	scoresCmd.Flags().BoolVar(&flagRemote, "remote", false, "Read the leaderboard from leaderboard.remote_url")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all local leaderboard entries")
	scoresCmd.MarkFlagsMutuallyExclusive("remote", "clear")
}

func runScores(_ *cobra.Command, _ []string) {
	cfg := loadConfig()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var backend leaderboard.Backend
	var store *storage.Store
	if flagRemote {
		if cfg.Leaderboard.RemoteURL == "" {
			fmt.Fprintln(os.Stderr, "Error: leaderboard.remote_url is not configured")
			os.Exit(1)
		}
		backend = leaderboard.NewClient(cfg.Leaderboard.RemoteURL, cfg.Leaderboard.Timeout)
	} else {
		var err error
		store, err = storage.Open(flagDBPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
			os.Exit(1)
		}
		defer store.Close()
		backend = store
	}

	if flagClear {
		if err := store.ClearScores(ctx); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing scores: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Leaderboard cleared.")
		return
	}

	entries, err := backend.Top(ctx, cfg.Leaderboard.Size)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("High Scores - Light Cycle")
	fmt.Println()

	if len(entries) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'lightcycle play' to set the first high score!")
	} else {
		fmt.Printf("  %-4s  %-24s  %-8s  %-5s  %s\n", "Rank", "Name", "Score", "Level", "Date")
		fmt.Printf("  %-4s  %-24s  %-8s  %-5s  %s\n", "----", "----", "-----", "-----", "----")
		for i, e := range entries {
			dateStr := e.CreatedAt.Local().Format("2006-01-02 15:04")
			fmt.Printf("  %-4d  %-24s  %-8d  %-5d  %s\n", i+1, e.PlayerName, e.Score, e.Level, dateStr)
		}
	}

	if store == nil {
		return
	}

	stats, err := store.Stats(ctx)
	if err == nil && stats.Rounds > 0 {
		fmt.Println()
		fmt.Printf("Rounds: %d  Won: %d  Lost: %d\n", stats.Rounds, stats.Wins, stats.Losses)
		fmt.Printf("Best level: %d  Best score: %d\n", stats.BestLevel, stats.HighScore)
		if stats.FastestWin > 0 {
			fmt.Printf("Fastest win: %.1fs\n", stats.FastestWin.Seconds())
		}
	}

	if flagRounds <= 0 {
		return
	}
	rounds, err := store.RecentRounds(ctx, flagRounds)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving rounds: %v\n", err)
		os.Exit(1)
	}
	fmt.Println()
	fmt.Println("Recent rounds:")
	for _, r := range rounds {
		fmt.Printf("  L%-3d %-6s %-28s %6.1fs  +%d bonus  %s\n",
			r.Level, r.Winner, r.Reason, r.Elapsed.Seconds(), r.TimeBonus, r.CreatedAt.Local().Format("Jan 02 15:04"))
	}
}
