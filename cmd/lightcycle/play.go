package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/lightcycle/internal/config"
	"github.com/vovakirdan/lightcycle/internal/core"
	"github.com/vovakirdan/lightcycle/internal/leaderboard"
	"github.com/vovakirdan/lightcycle/internal/platform/tui"
	"github.com/vovakirdan/lightcycle/internal/storage"
)

var flagName string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play locally",
	Long: `Open the menu and play against the CPU.

Controls:
  Arrows/WASD  - Steer
  N/Enter      - Next level (after a win)
  R            - Restart from level 1
  Esc          - Back to menu
  Q/Ctrl+C     - Quit
  Ctrl+S       - Save a screenshot

Scores go to the local database, or to the remote leaderboard when
leaderboard.remote_url is set in the config.

Examples:
  lightcycle play
  lightcycle play --name Ada
  lightcycle play --config ./my-tron.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagName, "name", "", "Display name (defaults to the saved one)")
}

func runPlay(_ *cobra.Command, _ []string) {
	cfg := loadConfig()
	logger := newLogger("lightcycle")

	rc := core.DefaultConfig()
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		rc.ScreenW = w
		rc.ScreenH = h
	}
	rc.Seed = flagSeed
	rc.PlayerName = flagName // Empty means the saved identity name

	deps, cleanup := openDeps(cfg, logger)
	defer cleanup()

	if idPath, err := leaderboard.DefaultIdentityPath(); err == nil {
		if id, idErr := leaderboard.LoadIdentity(idPath); idErr == nil {
			deps.Identity = id
			deps.IdentityPath = idPath
		} else {
			logger.Warn("could not load identity", "err", idErr)
		}
	}
	if deps.Identity.UserID == "" {
		deps.Identity = leaderboard.NewIdentity("")
	}

	if err := tui.Run(deps, rc); err != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		os.Exit(1)
	}
}

// openDeps wires the leaderboard backend and history. Local play uses the
// SQLite store for both; a configured remote URL takes over the
// leaderboard while history stays local.
func openDeps(cfg config.TronConfig, logger *log.Logger) (tui.Deps, func()) {
	deps := tui.Deps{
		Config: cfg,
		Logger: logger,
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	if store != nil {
		store.SetLogger(logger)
		deps.Backend = store
		deps.History = store
		deps.Stats = store
	} else {
		deps.Backend = leaderboard.NewMemoryBackend()
	}

	if cfg.Leaderboard.RemoteURL != "" {
		client := leaderboard.NewClient(cfg.Leaderboard.RemoteURL, cfg.Leaderboard.Timeout)
		deps.Backend = client
		deps.Feed = client
	}

	return deps, func() {
		if store != nil {
			store.Close()
		}
	}
}
