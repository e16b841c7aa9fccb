package config

import "time"

// TickInterval returns the simulation period for a level.
// Levels below 1 are treated as level 1.
func (c TronConfig) TickInterval(level int) time.Duration {
	if level < 1 {
		level = 1
	}
	ms := c.Timing.BaseTickMS - (level-1)*c.Timing.StepMS
	if ms < c.Timing.MinTickMS {
		ms = c.Timing.MinTickMS
	}
	return time.Duration(ms) * time.Millisecond
}

// ChaseChance returns the probability that the CPU steers toward the player.
// It is not capped: from level 10 on it reaches 1 and the CPU always chases.
func (c TronConfig) ChaseChance(level int) float64 {
	return c.CPU.BaseChase + float64(level)*c.CPU.ChasePerLevel
}

// BaseScore returns the fixed reward for winning a level.
func (c TronConfig) BaseScore(level int) int {
	return c.Scoring.Base + level*c.Scoring.PerLevel
}
