package core

// RuntimeConfig contains configuration passed to a game session at startup.
type RuntimeConfig struct {
	ScreenW    int    // Screen width in characters
	ScreenH    int    // Screen height in characters
	Seed       int64  // RNG seed for obstacle placement and CPU choices
	PlayerName string // Display name for the leaderboard
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:    80,
		ScreenH:    34,
		Seed:       0, // 0 means use current time in platform layer
		PlayerName: "Player",
	}
}

// GameState summarizes the match for the platform layer.
type GameState struct {
	Score    int  // Accumulated score across levels
	Level    int  // Current level
	GameOver bool // Whether the current level has ended
}
