package tron

import (
	"testing"

	"github.com/vovakirdan/lightcycle/internal/core"
)

// cycle builds an entity whose trail is the given cells, last one as head.
func cycle(h Heading, cells ...core.Point) *Entity {
	e := NewEntity(cells[0], h, 20)
	e.Trail = append([]core.Point(nil), cells...)
	e.Position = cells[len(cells)-1]
	return e
}

func TestCheckCollisions(t *testing.T) {
	w := newWorld(40, 30, 1)
	w.addObstacle(core.Pt(20, 20))

	tests := []struct {
		name   string
		player *Entity
		cpu    *Entity
		want   Outcome
	}{
		{
			name:   "no collision",
			player: cycle(HeadingRight, core.Pt(4, 15), core.Pt(5, 15)),
			cpu:    cycle(HeadingLeft, core.Pt(35, 15), core.Pt(34, 15)),
			want:   Outcome{},
		},
		{
			name:   "player off grid",
			player: cycle(HeadingLeft, core.Pt(0, 15), core.Pt(-1, 15)),
			cpu:    cycle(HeadingLeft, core.Pt(35, 15), core.Pt(34, 15)),
			want:   Outcome{WinnerCPU, ReasonPlayerCrashed},
		},
		{
			name:   "player on obstacle",
			player: cycle(HeadingDown, core.Pt(20, 19), core.Pt(20, 20)),
			cpu:    cycle(HeadingLeft, core.Pt(35, 15), core.Pt(34, 15)),
			want:   Outcome{WinnerCPU, ReasonPlayerCrashed},
		},
		{
			name:   "cpu off grid",
			player: cycle(HeadingRight, core.Pt(4, 15), core.Pt(5, 15)),
			cpu:    cycle(HeadingRight, core.Pt(39, 15), core.Pt(40, 15)),
			want:   Outcome{WinnerPlayer, ReasonCPUCrashed},
		},
		{
			name:   "player own trail",
			player: cycle(HeadingUp, core.Pt(5, 5), core.Pt(6, 5), core.Pt(6, 6), core.Pt(5, 6), core.Pt(5, 5)),
			cpu:    cycle(HeadingLeft, core.Pt(35, 15), core.Pt(34, 15)),
			want:   Outcome{WinnerCPU, ReasonPlayerOwnTrail},
		},
		{
			name:   "cpu own trail",
			player: cycle(HeadingRight, core.Pt(4, 15), core.Pt(5, 15)),
			cpu:    cycle(HeadingUp, core.Pt(30, 5), core.Pt(31, 5), core.Pt(31, 6), core.Pt(30, 6), core.Pt(30, 5)),
			want:   Outcome{WinnerPlayer, ReasonCPUOwnTrail},
		},
		{
			name:   "player hits cpu trail",
			player: cycle(HeadingRight, core.Pt(9, 10), core.Pt(10, 10)),
			cpu:    cycle(HeadingDown, core.Pt(10, 9), core.Pt(10, 10), core.Pt(10, 11)),
			want:   Outcome{WinnerCPU, ReasonPlayerHitCPU},
		},
		{
			name:   "cpu hits player trail",
			player: cycle(HeadingDown, core.Pt(10, 9), core.Pt(10, 10), core.Pt(10, 11)),
			cpu:    cycle(HeadingLeft, core.Pt(11, 10), core.Pt(10, 10)),
			want:   Outcome{WinnerPlayer, ReasonCPUHitPlayer},
		},
		{
			name:   "head-on into same cell",
			player: cycle(HeadingRight, core.Pt(19, 15), core.Pt(20, 15)),
			cpu:    cycle(HeadingLeft, core.Pt(21, 15), core.Pt(20, 15)),
			want:   Outcome{WinnerCPU, ReasonPlayerHitCPU},
		},
		{
			name:   "both crash, player checked first",
			player: cycle(HeadingLeft, core.Pt(0, 15), core.Pt(-1, 15)),
			cpu:    cycle(HeadingRight, core.Pt(39, 15), core.Pt(40, 15)),
			want:   Outcome{WinnerCPU, ReasonPlayerCrashed},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CheckCollisions(w, tt.player, tt.cpu)
			if got != tt.want {
				t.Errorf("CheckCollisions() = %+v, want %+v", got, tt.want)
			}
			if got.Decisive() != (tt.want.Winner != WinnerNone) {
				t.Errorf("Decisive() = %v", got.Decisive())
			}
		})
	}
}

func TestOccupied(t *testing.T) {
	w := newWorld(10, 10, 1)
	w.addObstacle(core.Pt(5, 5))
	a := cycle(HeadingRight, core.Pt(1, 1), core.Pt(2, 1))
	b := cycle(HeadingLeft, core.Pt(8, 8), core.Pt(7, 8))

	for _, p := range []core.Point{core.Pt(5, 5), core.Pt(-1, 0), core.Pt(1, 1), core.Pt(2, 1), core.Pt(7, 8)} {
		if !Occupied(w, p, a, b) {
			t.Errorf("Occupied(%v) = false", p)
		}
	}
	if Occupied(w, core.Pt(3, 3), a, b) {
		t.Error("Occupied((3,3)) = true")
	}
}
