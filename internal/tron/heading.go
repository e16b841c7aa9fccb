package tron

import "github.com/vovakirdan/lightcycle/internal/core"

// Heading is a direction of travel on the grid.
type Heading int

// Declaration order is the CPU tie-break order.
const (
	HeadingUp Heading = iota
	HeadingDown
	HeadingLeft
	HeadingRight
)

// Headings lists every heading in tie-break order.
var Headings = [...]Heading{HeadingUp, HeadingDown, HeadingLeft, HeadingRight}

// Opposite returns the reverse heading.
func (h Heading) Opposite() Heading {
	switch h {
	case HeadingUp:
		return HeadingDown
	case HeadingDown:
		return HeadingUp
	case HeadingLeft:
		return HeadingRight
	default:
		return HeadingLeft
	}
}

// Step returns the cell one unit from p in this heading.
func (h Heading) Step(p core.Point) core.Point {
	switch h {
	case HeadingUp:
		return p.Add(0, -1)
	case HeadingDown:
		return p.Add(0, 1)
	case HeadingLeft:
		return p.Add(-1, 0)
	case HeadingRight:
		return p.Add(1, 0)
	}
	return p
}

func (h Heading) String() string {
	switch h {
	case HeadingUp:
		return "up"
	case HeadingDown:
		return "down"
	case HeadingLeft:
		return "left"
	case HeadingRight:
		return "right"
	default:
		return "unknown"
	}
}

// HeadingForAction maps a steering action to a heading.
func HeadingForAction(a core.Action) (Heading, bool) {
	switch a {
	case core.ActionUp:
		return HeadingUp, true
	case core.ActionDown:
		return HeadingDown, true
	case core.ActionLeft:
		return HeadingLeft, true
	case core.ActionRight:
		return HeadingRight, true
	}
	return HeadingUp, false
}
