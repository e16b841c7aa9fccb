package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/lightcycle/internal/core"
	"github.com/vovakirdan/lightcycle/internal/platform/tui"
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Watch the CPU play against itself",
	Long: `Start an attract-mode game where the player's cycle is steered by the
same heuristic as the CPU. Demo runs are recorded in the round history but
never submitted to the leaderboard.

Examples:
  lightcycle demo
  lightcycle demo --seed 7`,
	Args: cobra.NoArgs,
	Run:  runDemo,
}

func runDemo(_ *cobra.Command, _ []string) {
	cfg := loadConfig()
	logger := newLogger("lightcycle")

	rc := core.DefaultConfig()
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		rc.ScreenW = w
		rc.ScreenH = h
	}
	rc.Seed = flagSeed
	rc.PlayerName = "Demo"

	deps, cleanup := openDeps(cfg, logger)
	defer cleanup()

	if err := tui.RunDemo(deps, rc); err != nil {
		fmt.Fprintf(os.Stderr, "Error running demo: %v\n", err)
		os.Exit(1)
	}
}
