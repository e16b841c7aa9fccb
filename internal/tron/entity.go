package tron

import (
	"slices"

	"github.com/vovakirdan/lightcycle/internal/core"
)

// Entity is a light cycle: a head cell, a heading and a bounded trail.
// The trail runs oldest to newest. It is empty until the first move and
// from then on ends with the current head.
type Entity struct {
	Position       core.Point
	Heading        Heading
	PendingHeading Heading // Applied on the next Move
	Trail          []core.Point

	maxTrail int
}

// NewEntity places a cycle at start, facing heading, with an empty trail.
// The start cell only joins the trail if the cycle drives back onto it.
func NewEntity(start core.Point, heading Heading, maxTrail int) *Entity {
	return &Entity{
		Position:       start,
		Heading:        heading,
		PendingHeading: heading,
		Trail:          make([]core.Point, 0, max(1, maxTrail)),
		maxTrail:       max(1, maxTrail),
	}
}

// NewPlayer places the player on the left side of w facing right.
func NewPlayer(w *World, maxTrail int) *Entity {
	return NewEntity(core.Pt(5, w.Height/2), HeadingRight, maxTrail)
}

// NewCPU places the CPU on the right side of w facing left.
func NewCPU(w *World, maxTrail int) *Entity {
	return NewEntity(core.Pt(w.Width-5, w.Height/2), HeadingLeft, maxTrail)
}

// SetPendingHeading buffers a heading for the next move. Reversing onto
// the cycle's own trail is ignored.
func (e *Entity) SetPendingHeading(h Heading) {
	if h == e.Heading.Opposite() {
		return
	}
	e.PendingHeading = h
}

// Move commits the pending heading and advances one cell. The trail keeps
// at most maxTrail cells; the oldest drops off first.
func (e *Entity) Move() {
	e.Heading = e.PendingHeading
	e.Position = e.Heading.Step(e.Position)
	e.Trail = append(e.Trail, e.Position)
	if over := len(e.Trail) - e.maxTrail; over > 0 {
		e.Trail = slices.Delete(e.Trail, 0, over)
	}
}

// OnTrail reports whether p is any cell of the trail, head included.
func (e *Entity) OnTrail(p core.Point) bool {
	return slices.Contains(e.Trail, p)
}

// OnTrailBehindHead reports whether p is a trail cell other than the head.
func (e *Entity) OnTrailBehindHead(p core.Point) bool {
	if len(e.Trail) == 0 {
		return false
	}
	return slices.Contains(e.Trail[:len(e.Trail)-1], p)
}

// MaxTrail returns the trail window size.
func (e *Entity) MaxTrail() int {
	return e.maxTrail
}

// Clone returns a deep copy safe to hand to other goroutines.
func (e *Entity) Clone() Entity {
	c := *e
	c.Trail = slices.Clone(e.Trail)
	return c
}
