package tron

import (
	"math/rand"

	"github.com/vovakirdan/lightcycle/internal/config"
	"github.com/vovakirdan/lightcycle/internal/core"
)

// Number of hand-authored levels; everything past it is a random scatter.
const AuthoredLevels = 5

// SetupLevel builds the world for a level. Levels 1-5 are fixed patterns
// laid out for the reference 40x30 grid; any other level, including
// out-of-range ones, gets a random scatter drawn from rng.
func SetupLevel(cfg config.TronConfig, level int, rng *rand.Rand) *World {
	w := newWorld(cfg.Grid.Width, cfg.Grid.Height, level)
	w.TickInterval = cfg.TickInterval(level)
	w.ChaseChance = cfg.ChaseChance(level)

	switch level {
	case 1:
		// Open arena
	case 2:
		buildCross(w)
	case 3:
		buildDiagonals(w)
	case 4:
		buildWalls(w)
	case 5:
		buildGappedBorder(w)
	default:
		scatterObstacles(w, RandomObstacleCount(level), rng)
	}

	return w
}

// buildCross places a plus sign centered on the grid.
func buildCross(w *World) {
	for i := 13; i < 28; i++ {
		w.addObstacle(core.Pt(i, 15))
		w.addObstacle(core.Pt(20, i-5))
	}
}

// buildDiagonals places four diagonal barriers across two bands.
func buildDiagonals(w *World) {
	for i := 5; i < 15; i++ {
		w.addObstacle(core.Pt(i, i))
		w.addObstacle(core.Pt(i+20, i))
		w.addObstacle(core.Pt(i, 30-i))
		w.addObstacle(core.Pt(i+20, 30-i))
	}
}

// buildWalls places four vertical walls.
func buildWalls(w *World) {
	for _, x := range []int{5, 15, 25, 35} {
		for y := 5; y < 25; y++ {
			w.addObstacle(core.Pt(x, y))
		}
	}
}

// buildGappedBorder places an inner border with two gaps per side.
func buildGappedBorder(w *World) {
	for x := 0; x < 40; x++ {
		if x != 10 && x != 30 {
			w.addObstacle(core.Pt(x, 3))
			w.addObstacle(core.Pt(x, 27))
		}
	}
	for y := 4; y < 27; y++ {
		if y != 10 && y != 20 {
			w.addObstacle(core.Pt(3, y))
			w.addObstacle(core.Pt(37, y))
		}
	}
}

// RandomObstacleCount returns how many obstacles a randomized level asks for.
func RandomObstacleCount(level int) int {
	return max(0, 30+(level-6)*5)
}

// scatterObstacles draws interior cells until count distinct cells outside
// the start zones are placed. Rejected and duplicate draws are redrawn.
// The count is capped at the number of eligible cells.
func scatterObstacles(w *World, count int, rng *rand.Rand) {
	count = min(count, eligibleScatterCells(w))
	for w.ObstacleCount() < count {
		p := core.Pt(rng.Intn(w.Width-2)+1, rng.Intn(w.Height-2)+1)
		if scatterAllowed(w, p) {
			w.addObstacle(p)
		}
	}
}

// scatterAllowed keeps random obstacles out of the start corridors: only
// cells in the outer columns and away from the starting row qualify.
func scatterAllowed(w *World, p core.Point) bool {
	mid := w.Height / 2
	outerColumn := p.X < 3 || p.X > w.Width-3
	awayFromStartRow := p.Y < mid-2 || p.Y > mid+2
	return outerColumn && awayFromStartRow
}

func eligibleScatterCells(w *World) int {
	n := 0
	for y := 1; y <= w.Height-2; y++ {
		for x := 1; x <= w.Width-2; x++ {
			if scatterAllowed(w, core.Pt(x, y)) {
				n++
			}
		}
	}
	return n
}
