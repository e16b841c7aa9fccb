// lightcycle is a terminal light cycle game: steer your cycle, outlast the
// CPU, and climb levels for a spot on the leaderboard.
//
// Usage:
//
//	lightcycle play            - Start the menu and play locally
//	lightcycle demo            - Watch an autopilot game
//	lightcycle serve           - Start SSH server for remote play
//	lightcycle board           - Start the leaderboard HTTP server
//	lightcycle scores          - Show the leaderboard and local stats
//	lightcycle config          - Print the default configuration
//
// Global flags:
//
//	--seed <value>       - Set RNG seed for reproducible levels
//	--db <path>          - Set database path (default: ~/.lightcycle/lightcycle.db)
//	--config <path>      - Use a custom tron.yaml
//	--log-level <level>  - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/lightcycle/internal/config"
)

var (
	// Global flags
	flagSeed     int64
	flagDBPath   string
	flagConfig   string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "lightcycle",
	Short: "Light Cycle - outlast the CPU in your terminal",
	Long: `Light Cycle is a terminal game in the spirit of Tron. You and a CPU
opponent each drag a trail behind you; touch a wall, an obstacle or any
trail and you lose. Beat the CPU to advance through increasingly dense
arenas.

Available commands:
  play     - Play locally
  demo     - Watch an autopilot game
  serve    - Start SSH server for remote play
  board    - Start the leaderboard HTTP server
  scores   - View the leaderboard
  config   - Print the default configuration

Examples:
  lightcycle play
  lightcycle play --seed 42
  lightcycle serve --ssh :2222
  lightcycle board --http :8080
  lightcycle scores`,
}

func init() {
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.lightcycle/lightcycle.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom tron.yaml")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "warn", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(boardCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(demoCmd)
	rootCmd.AddCommand(configCmd)
}

// newLogger builds a stderr logger at the --log-level level.
func newLogger(prefix string) *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		logger.Warn("unknown log level, using warn", "level", flagLogLevel)
		level = log.WarnLevel
	}
	logger.SetLevel(level)
	return logger
}

// loadConfig loads the game config or exits.
func loadConfig() config.TronConfig {
	cfg, err := config.LoadTron(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return cfg
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default configuration",
	Long: `Print the built-in tron.yaml. Save it to ~/.lightcycle/configs/tron.yaml
or ./configs/tron.yaml and edit it to tune the game.`,
	Run: func(_ *cobra.Command, _ []string) {
		fmt.Print(string(config.GetDefaultYAML()))
	},
}
