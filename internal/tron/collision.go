package tron

import "github.com/vovakirdan/lightcycle/internal/core"

// Winner identifies who won a level.
type Winner int

const (
	WinnerNone Winner = iota
	WinnerPlayer
	WinnerCPU
)

func (w Winner) String() string {
	switch w {
	case WinnerPlayer:
		return "player"
	case WinnerCPU:
		return "cpu"
	default:
		return "none"
	}
}

// Collision reasons reported to the player.
const (
	ReasonPlayerCrashed  = "Player hit wall or obstacle"
	ReasonCPUCrashed     = "CPU hit wall or obstacle"
	ReasonPlayerOwnTrail = "Player hit own trail"
	ReasonCPUOwnTrail    = "CPU hit own trail"
	ReasonPlayerHitCPU   = "Player hit CPU trail"
	ReasonCPUHitPlayer   = "CPU hit player trail"
)

// Outcome is the result of a collision check.
type Outcome struct {
	Winner Winner
	Reason string
}

// Decisive reports whether the level ended.
func (o Outcome) Decisive() bool {
	return o.Winner != WinnerNone
}

// CheckCollisions inspects both cycles after they moved. Checks run in a
// fixed order and the first hit decides, so when both cycles crash in the
// same tick the player's crash wins and the CPU is declared winner. A
// cycle entering the other's head cell counts as hitting its trail.
func CheckCollisions(w *World, player, cpu *Entity) Outcome {
	switch {
	case w.Blocked(player.Position):
		return Outcome{WinnerCPU, ReasonPlayerCrashed}
	case w.Blocked(cpu.Position):
		return Outcome{WinnerPlayer, ReasonCPUCrashed}
	case player.OnTrailBehindHead(player.Position):
		return Outcome{WinnerCPU, ReasonPlayerOwnTrail}
	case cpu.OnTrailBehindHead(cpu.Position):
		return Outcome{WinnerPlayer, ReasonCPUOwnTrail}
	case cpu.OnTrail(player.Position):
		return Outcome{WinnerCPU, ReasonPlayerHitCPU}
	case player.OnTrail(cpu.Position):
		return Outcome{WinnerPlayer, ReasonCPUHitPlayer}
	}
	return Outcome{}
}

// Occupied reports whether moving into p would crash: off the grid, onto
// an obstacle, or onto any cell of either trail.
func Occupied(w *World, p core.Point, a, b *Entity) bool {
	return w.Blocked(p) || a.OnTrail(p) || b.OnTrail(p)
}
