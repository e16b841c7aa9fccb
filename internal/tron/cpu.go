package tron

import (
	"math/rand"

	"github.com/vovakirdan/lightcycle/internal/core"
)

// DecideCPUHeading picks the CPU's next heading. With the level's chase
// chance it takes the safe heading closest to the player, otherwise a
// random safe one. With no safe heading it keeps going straight.
func DecideCPUHeading(w *World, player, cpu *Entity, rng *rand.Rand) Heading {
	return steer(w, cpu, player, w.ChaseChance, rng)
}

// DecideAutopilotHeading steers the player with the same heuristic,
// chasing the CPU. Used by the demo mode.
func DecideAutopilotHeading(w *World, player, cpu *Entity, rng *rand.Rand) Heading {
	return steer(w, player, cpu, w.ChaseChance, rng)
}

// SafeHeadings lists the headings self can take this tick without an
// immediate crash, in tie-break order. The reverse heading is never listed.
func SafeHeadings(w *World, self, other *Entity) []Heading {
	safe := make([]Heading, 0, len(Headings))
	for _, h := range Headings {
		if h == self.Heading.Opposite() {
			continue
		}
		if Occupied(w, h.Step(self.Position), self, other) {
			continue
		}
		safe = append(safe, h)
	}
	return safe
}

func steer(w *World, self, target *Entity, chase float64, rng *rand.Rand) Heading {
	safe := SafeHeadings(w, self, target)
	if len(safe) == 0 {
		return self.Heading
	}

	if rng.Float64() < chase {
		return closestHeading(safe, self.Position, target.Position)
	}
	return safe[rng.Intn(len(safe))]
}

// closestHeading returns the first heading whose next cell has the smallest
// Manhattan distance to target.
func closestHeading(options []Heading, from, target core.Point) Heading {
	best := options[0]
	bestDist := best.Step(from).Manhattan(target)
	for _, h := range options[1:] {
		if d := h.Step(from).Manhattan(target); d < bestDist {
			best, bestDist = h, d
		}
	}
	return best
}
