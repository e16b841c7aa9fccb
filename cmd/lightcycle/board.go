package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/lightcycle/internal/leaderboard"
	"github.com/vovakirdan/lightcycle/internal/storage"
)

var flagHTTPAddr string

var boardCmd = &cobra.Command{
	Use:   "board",
	Short: "Start the leaderboard HTTP server",
	Long: `Serve the shared leaderboard over HTTP, backed by the scores database.

Endpoints:
  POST /api/scores          - Submit an entry (429 inside the cooldown)
  GET  /api/scores?limit=N  - Top entries
  GET  /healthz             - Liveness
  GET  /ws/scores           - WebSocket feed of accepted entries

Point clients at it with leaderboard.remote_url in tron.yaml.

Examples:
  lightcycle board
  lightcycle board --http :9000 --db ./board.db`,
	Args: cobra.NoArgs,
	Run:  runBoard,
}

func init() {
	boardCmd.Flags().StringVar(&flagHTTPAddr, "http", ":8080", "HTTP listen address (host:port)")
}

func runBoard(_ *cobra.Command, _ []string) {
	cfg := loadConfig()
	logger := newLogger("lightcycle-board")

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()
	store.SetLogger(logger)

	api := leaderboard.NewServer(store, cfg.Leaderboard.Cooldown, logger)
	defer api.Close()

	httpServer := &http.Server{
		Addr:              flagHTTPAddr,
		Handler:           api.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Info("starting leaderboard server", "address", flagHTTPAddr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", "error", err)
			done <- syscall.SIGTERM
		}
	}()

	<-done
	logger.Info("shutting down...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
	}
}
