package tron

import (
	"math"
	"time"

	"github.com/vovakirdan/lightcycle/internal/config"
)

// CalculateTimeBonus rewards fast wins. Full bonus up to the threshold,
// then a linear decay to zero across the bonus window.
func CalculateTimeBonus(cfg config.ScoringConfig, elapsed time.Duration) int {
	ms := float64(elapsed.Milliseconds())
	threshold := float64(cfg.BonusThresholdMS)
	window := float64(cfg.BonusWindowMS)

	switch {
	case ms <= threshold:
		return cfg.MaxTimeBonus
	case ms >= threshold+window:
		return 0
	}
	bonus := float64(cfg.MaxTimeBonus) * (1 - (ms-threshold)/window)
	return int(math.Round(bonus))
}

// LevelReward is the score granted for a player win.
type LevelReward struct {
	Base      int
	TimeBonus int
}

// Total returns base plus time bonus.
func (r LevelReward) Total() int {
	return r.Base + r.TimeBonus
}

// RewardFor computes the reward for winning level after elapsed.
func RewardFor(cfg config.TronConfig, level int, elapsed time.Duration) LevelReward {
	return LevelReward{
		Base:      cfg.BaseScore(level),
		TimeBonus: CalculateTimeBonus(cfg.Scoring, elapsed),
	}
}
