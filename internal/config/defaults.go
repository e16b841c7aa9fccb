package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/tron.yaml
var defaultTronYAML []byte

// DefaultTronConfig returns the reference configuration: a 40x30 grid of
// 20-unit cells with a 20-cell trail.
func DefaultTronConfig() TronConfig {
	return TronConfig{
		Grid: GridConfig{
			Width:    40,
			Height:   30,
			CellSize: 20,
		},
		Trail: TrailConfig{
			Length: 20,
		},
		Timing: TimingConfig{
			BaseTickMS: 150,
			MinTickMS:  50,
			StepMS:     10,
		},
		CPU: CPUConfig{
			BaseChase:     0.5,
			ChasePerLevel: 0.05,
		},
		Scoring: ScoringConfig{
			Base:             100,
			PerLevel:         50,
			MaxTimeBonus:     100,
			BonusThresholdMS: 10000,
			BonusWindowMS:    20000,
		},
		Leaderboard: LeaderboardConfig{
			Size:     10,
			Cooldown: 10 * time.Second,
			Timeout:  5 * time.Second,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML.
func GetDefaultYAML() []byte {
	return defaultTronYAML
}
