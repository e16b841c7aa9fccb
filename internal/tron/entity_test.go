package tron

import (
	"testing"

	"github.com/vovakirdan/lightcycle/internal/core"
)

func TestEntityTrailBounded(t *testing.T) {
	e := NewEntity(core.Pt(0, 5), HeadingRight, 20)
	if len(e.Trail) != 0 {
		t.Fatalf("new cycle trail = %v, want empty", e.Trail)
	}

	for i := 1; i <= 30; i++ {
		e.Move()
		want := min(i, 20)
		if len(e.Trail) != want {
			t.Fatalf("after %d moves trail has %d cells, want %d", i, len(e.Trail), want)
		}
		if e.Trail[len(e.Trail)-1] != e.Position {
			t.Fatalf("trail tail %v is not head %v", e.Trail[len(e.Trail)-1], e.Position)
		}
	}

	if e.Position != core.Pt(30, 5) {
		t.Errorf("Position = %v, want (30,5)", e.Position)
	}
	if e.Trail[0] != core.Pt(11, 5) {
		t.Errorf("oldest trail cell = %v, want (11,5)", e.Trail[0])
	}
}

func TestEntityMoveDirections(t *testing.T) {
	tests := []struct {
		heading Heading
		want    core.Point
	}{
		{HeadingUp, core.Pt(5, 4)},
		{HeadingDown, core.Pt(5, 6)},
		{HeadingLeft, core.Pt(4, 5)},
		{HeadingRight, core.Pt(6, 5)},
	}

	for _, tt := range tests {
		t.Run(tt.heading.String(), func(t *testing.T) {
			e := NewEntity(core.Pt(5, 5), tt.heading, 20)
			e.Move()
			if e.Position != tt.want {
				t.Errorf("Position = %v, want %v", e.Position, tt.want)
			}
		})
	}
}

func TestSetPendingHeadingIgnoresReversal(t *testing.T) {
	e := NewEntity(core.Pt(5, 5), HeadingRight, 20)

	e.SetPendingHeading(HeadingLeft)
	if e.PendingHeading != HeadingRight {
		t.Errorf("reversal accepted: pending = %v", e.PendingHeading)
	}

	e.SetPendingHeading(HeadingUp)
	e.SetPendingHeading(HeadingDown)
	if e.PendingHeading != HeadingDown {
		t.Errorf("last input should win: pending = %v", e.PendingHeading)
	}

	e.Move()
	if e.Heading != HeadingDown || e.Position != core.Pt(5, 6) {
		t.Errorf("after move heading=%v pos=%v", e.Heading, e.Position)
	}
}

func TestEntityClone(t *testing.T) {
	e := NewEntity(core.Pt(1, 1), HeadingRight, 5)
	e.Move()

	c := e.Clone()
	c.Trail[0] = core.Pt(9, 9)
	if e.Trail[0] != core.Pt(2, 1) {
		t.Error("Clone shares trail storage")
	}
}

func TestHeadingOpposite(t *testing.T) {
	for _, h := range Headings {
		if h.Opposite().Opposite() != h {
			t.Errorf("%v: double opposite = %v", h, h.Opposite().Opposite())
		}
		if h.Opposite() == h {
			t.Errorf("%v is its own opposite", h)
		}
	}
}
