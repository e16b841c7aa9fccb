package tron

import (
	"time"

	"github.com/vovakirdan/lightcycle/internal/core"
)

// World is the static part of a level: grid bounds and obstacles.
// It is rebuilt by SetupLevel and never mutated while the level runs.
type World struct {
	Width        int
	Height       int
	Level        int
	TickInterval time.Duration
	ChaseChance  float64

	obstacles []core.Point            // placement order, for rendering
	blocked   map[core.Point]struct{} // lookup set
}

func newWorld(width, height, level int) *World {
	return &World{
		Width:   width,
		Height:  height,
		Level:   level,
		blocked: make(map[core.Point]struct{}),
	}
}

// addObstacle places an obstacle, ignoring duplicates and off-grid cells.
// Reports whether the cell was newly added.
func (w *World) addObstacle(p core.Point) bool {
	if !w.InBounds(p) {
		return false
	}
	if _, dup := w.blocked[p]; dup {
		return false
	}
	w.blocked[p] = struct{}{}
	w.obstacles = append(w.obstacles, p)
	return true
}

// Bounds returns the playable rectangle.
func (w *World) Bounds() core.Rect {
	return core.NewRect(0, 0, w.Width, w.Height)
}

// InBounds reports whether p lies on the grid.
func (w *World) InBounds(p core.Point) bool {
	return w.Bounds().Contains(p)
}

// HasObstacle reports whether p holds an obstacle.
func (w *World) HasObstacle(p core.Point) bool {
	_, ok := w.blocked[p]
	return ok
}

// Blocked reports whether p is off the grid or holds an obstacle.
func (w *World) Blocked(p core.Point) bool {
	return !w.InBounds(p) || w.HasObstacle(p)
}

// Obstacles returns a copy of the obstacle cells in placement order.
func (w *World) Obstacles() []core.Point {
	out := make([]core.Point, len(w.obstacles))
	copy(out, w.obstacles)
	return out
}

// ObstacleCount returns the number of obstacle cells.
func (w *World) ObstacleCount() int {
	return len(w.obstacles)
}
