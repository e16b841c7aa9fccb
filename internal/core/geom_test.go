package core

import "testing"

func TestRectContains(t *testing.T) {
	r := NewRect(0, 0, 40, 30)

	tests := []struct {
		name     string
		p        Point
		expected bool
	}{
		{"inside", Pt(15, 15), true},
		{"top-left corner", Pt(0, 0), true},
		{"last cell", Pt(39, 29), true},
		{"right edge (exclusive)", Pt(40, 10), false},
		{"bottom edge (exclusive)", Pt(10, 30), false},
		{"negative x", Pt(-1, 10), false},
		{"negative y", Pt(10, -1), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := r.Contains(tc.p); got != tc.expected {
				t.Errorf("Contains(%v) = %v, expected %v", tc.p, got, tc.expected)
			}
		})
	}
}

func TestPointManhattan(t *testing.T) {
	tests := []struct {
		a, b     Point
		expected int
	}{
		{Pt(0, 0), Pt(0, 0), 0},
		{Pt(5, 15), Pt(35, 15), 30},
		{Pt(3, 4), Pt(0, 0), 7},
		{Pt(-2, 1), Pt(2, -1), 6},
	}

	for _, tc := range tests {
		if got := tc.a.Manhattan(tc.b); got != tc.expected {
			t.Errorf("%v.Manhattan(%v) = %d, expected %d", tc.a, tc.b, got, tc.expected)
		}
		if got := tc.b.Manhattan(tc.a); got != tc.expected {
			t.Errorf("Manhattan should be symmetric for %v, %v", tc.a, tc.b)
		}
	}
}

func TestPointAdd(t *testing.T) {
	p := Pt(5, 15).Add(1, -1)
	if p != Pt(6, 14) {
		t.Errorf("Add(1, -1) = %v, expected (6, 14)", p)
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},   // within range
		{-5, 0, 10, 0},  // below min
		{15, 0, 10, 10}, // above max
		{0, 0, 10, 0},   // at min
		{10, 0, 10, 10}, // at max
	}

	for _, tc := range tests {
		result := Clamp(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestAbs(t *testing.T) {
	if Abs(5) != 5 {
		t.Error("Abs(5) should be 5")
	}
	if Abs(-5) != 5 {
		t.Error("Abs(-5) should be 5")
	}
	if Abs(0) != 0 {
		t.Error("Abs(0) should be 0")
	}
}

func TestActionSteering(t *testing.T) {
	steering := []Action{ActionUp, ActionDown, ActionLeft, ActionRight}
	for _, a := range steering {
		if !a.IsSteering() {
			t.Errorf("%s should be a steering action", a)
		}
	}
	for _, a := range []Action{ActionNone, ActionBack, ActionQuit, ActionNextLevel} {
		if a.IsSteering() {
			t.Errorf("%s should not be a steering action", a)
		}
	}
}
