package tron

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/lightcycle/internal/config"
	"github.com/vovakirdan/lightcycle/internal/core"
)

func obstacleSet(w *World) map[core.Point]bool {
	set := make(map[core.Point]bool)
	for _, p := range w.Obstacles() {
		set[p] = true
	}
	return set
}

func TestAuthoredLevelsExact(t *testing.T) {
	cfg := config.DefaultTronConfig()

	want := map[int]map[core.Point]bool{1: {}, 2: {}, 3: {}, 4: {}, 5: {}}
	for y := 8; y < 23; y++ {
		want[2][core.Pt(20, y)] = true
	}
	for x := 13; x < 28; x++ {
		want[2][core.Pt(x, 15)] = true
	}
	for i := 5; i < 15; i++ {
		want[3][core.Pt(i, i)] = true
		want[3][core.Pt(i+20, i)] = true
		want[3][core.Pt(i, 30-i)] = true
		want[3][core.Pt(i+20, 30-i)] = true
	}
	for _, x := range []int{5, 15, 25, 35} {
		for y := 5; y < 25; y++ {
			want[4][core.Pt(x, y)] = true
		}
	}
	for x := 0; x < 40; x++ {
		if x != 10 && x != 30 {
			want[5][core.Pt(x, 3)] = true
			want[5][core.Pt(x, 27)] = true
		}
	}
	for y := 4; y < 27; y++ {
		if y != 10 && y != 20 {
			want[5][core.Pt(3, y)] = true
			want[5][core.Pt(37, y)] = true
		}
	}

	counts := map[int]int{1: 0, 2: 29, 3: 40, 4: 80, 5: 118}

	for level := 1; level <= AuthoredLevels; level++ {
		w := SetupLevel(cfg, level, rand.New(rand.NewSource(1)))
		got := obstacleSet(w)
		if len(got) != counts[level] || w.ObstacleCount() != counts[level] {
			t.Errorf("level %d: %d obstacles, want %d", level, len(got), counts[level])
		}
		for p := range want[level] {
			if !got[p] {
				t.Errorf("level %d: missing obstacle %v", level, p)
			}
		}
		for p := range got {
			if !want[level][p] {
				t.Errorf("level %d: unexpected obstacle %v", level, p)
			}
		}
	}
}

// Level 4 walls pass under both start cells; the cycles leave them on the
// first tick, so only the first cell ahead must be open.
func TestAuthoredLevelsFirstMoveClear(t *testing.T) {
	cfg := config.DefaultTronConfig()
	for level := 1; level <= AuthoredLevels; level++ {
		w := SetupLevel(cfg, level, rand.New(rand.NewSource(1)))
		for _, e := range []*Entity{NewPlayer(w, 20), NewCPU(w, 20)} {
			if next := e.Heading.Step(e.Position); w.Blocked(next) {
				t.Errorf("level %d: first move into %v is blocked", level, next)
			}
		}
	}
}

func TestRandomLevels(t *testing.T) {
	cfg := config.DefaultTronConfig()

	tests := []struct {
		level int
		want  int
	}{
		{6, 30},
		{7, 35},
		{12, 60},
		{13, 65},
		{14, 69}, // asks for 70, only 69 cells qualify
		{40, 69},
		{0, 0},
		{-3, 0},
	}

	for _, tt := range tests {
		for seed := int64(1); seed <= 5; seed++ {
			w := SetupLevel(cfg, tt.level, rand.New(rand.NewSource(seed)))
			if w.ObstacleCount() != tt.want {
				t.Errorf("level %d seed %d: %d obstacles, want %d", tt.level, seed, w.ObstacleCount(), tt.want)
			}
			if len(obstacleSet(w)) != w.ObstacleCount() {
				t.Errorf("level %d seed %d: duplicate obstacles", tt.level, seed)
			}
			for _, p := range w.Obstacles() {
				if p.X < 1 || p.X > 38 || p.Y < 1 || p.Y > 28 {
					t.Errorf("level %d: obstacle %v outside interior", tt.level, p)
				}
				if !((p.X < 3 || p.X > 37) && (p.Y < 13 || p.Y > 17)) {
					t.Errorf("level %d: obstacle %v violates placement rule", tt.level, p)
				}
			}
		}
	}
}

func TestRandomLevelDeterminism(t *testing.T) {
	cfg := config.DefaultTronConfig()
	a := SetupLevel(cfg, 8, rand.New(rand.NewSource(42))).Obstacles()
	b := SetupLevel(cfg, 8, rand.New(rand.NewSource(42))).Obstacles()

	if len(a) != len(b) {
		t.Fatalf("length mismatch: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("obstacle %d differs: %v vs %v", i, a[i], b[i])
		}
	}
}

func TestSetupLevelDerivedValues(t *testing.T) {
	cfg := config.DefaultTronConfig()
	w := SetupLevel(cfg, 3, rand.New(rand.NewSource(1)))

	if w.Width != 40 || w.Height != 30 || w.Level != 3 {
		t.Errorf("world = %dx%d level %d", w.Width, w.Height, w.Level)
	}
	if w.TickInterval != cfg.TickInterval(3) {
		t.Errorf("TickInterval = %v, want %v", w.TickInterval, cfg.TickInterval(3))
	}
	if w.ChaseChance != cfg.ChaseChance(3) {
		t.Errorf("ChaseChance = %v, want %v", w.ChaseChance, cfg.ChaseChance(3))
	}
}

func TestWorldBlocked(t *testing.T) {
	w := newWorld(10, 8, 1)
	w.addObstacle(core.Pt(4, 4))

	tests := []struct {
		p    core.Point
		want bool
	}{
		{core.Pt(0, 0), false},
		{core.Pt(9, 7), false},
		{core.Pt(4, 4), true},
		{core.Pt(-1, 3), true},
		{core.Pt(10, 3), true},
		{core.Pt(3, -1), true},
		{core.Pt(3, 8), true},
	}

	for _, tt := range tests {
		if got := w.Blocked(tt.p); got != tt.want {
			t.Errorf("Blocked(%v) = %v, want %v", tt.p, got, tt.want)
		}
	}

	if w.addObstacle(core.Pt(4, 4)) {
		t.Error("duplicate obstacle should be rejected")
	}
	obs := w.Obstacles()
	obs[0] = core.Pt(0, 0)
	if !w.HasObstacle(core.Pt(4, 4)) || w.HasObstacle(core.Pt(0, 0)) {
		t.Error("Obstacles should return a copy")
	}
}
