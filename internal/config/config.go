// Package config provides YAML-based game configuration loading for the
// light cycle game.
package config

import "time"

// TronConfig contains all tunables for the light cycle game.
type TronConfig struct {
	Grid        GridConfig        `yaml:"grid"`
	Trail       TrailConfig       `yaml:"trail"`
	Timing      TimingConfig      `yaml:"timing"`
	CPU         CPUConfig         `yaml:"cpu"`
	Scoring     ScoringConfig     `yaml:"scoring"`
	Leaderboard LeaderboardConfig `yaml:"leaderboard"`
}

// GridConfig defines the playfield. Width and height are in cells;
// CellSize is the pixel size of a cell for clients that draw pixels.
type GridConfig struct {
	Width    int `yaml:"width"`
	Height   int `yaml:"height"`
	CellSize int `yaml:"cell_size"`
}

// TrailConfig bounds the sliding trail window of each entity.
type TrailConfig struct {
	Length int `yaml:"length"`
}

// TimingConfig derives the per-level tick interval:
// max(MinTickMS, BaseTickMS - (level-1)*StepMS).
type TimingConfig struct {
	BaseTickMS int `yaml:"base_tick_ms"`
	MinTickMS  int `yaml:"min_tick_ms"`
	StepMS     int `yaml:"step_ms"`
}

// CPUConfig tunes the opponent. Chase chance is BaseChase + level*ChasePerLevel.
type CPUConfig struct {
	BaseChase     float64 `yaml:"base_chase"`
	ChasePerLevel float64 `yaml:"chase_per_level"`
}

// ScoringConfig defines level rewards and the time bonus curve.
type ScoringConfig struct {
	Base             int `yaml:"base"`
	PerLevel         int `yaml:"per_level"`
	MaxTimeBonus     int `yaml:"max_time_bonus"`
	BonusThresholdMS int `yaml:"bonus_threshold_ms"`
	BonusWindowMS    int `yaml:"bonus_window_ms"`
}

// LeaderboardConfig controls score submission and display.
type LeaderboardConfig struct {
	Size      int           `yaml:"size"`
	Cooldown  time.Duration `yaml:"cooldown"`
	RemoteURL string        `yaml:"remote_url"` // Empty means local SQLite only
	Timeout   time.Duration `yaml:"timeout"`
}
