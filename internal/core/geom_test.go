package core

import (
	"math"
	"testing"
)

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 20, 15)

	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"inside", 15, 15, true},
		{"top-left corner", 10, 10, true},
		{"bottom-right edge (exclusive)", 30, 25, false},
		{"outside left", 5, 15, false},
		{"outside right", 35, 15, false},
		{"outside top", 15, 5, false},
		{"outside bottom", 15, 30, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := r.Contains(tc.x, tc.y)
			if result != tc.expected {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, result, tc.expected)
			}
		})
	}
}

func TestCenteredRect(t *testing.T) {
	outer := NewRect(0, 2, 80, 20)
	r := CenteredRect(outer, 30, 6)

	if r.X != 25 || r.Y != 9 || r.W != 30 || r.H != 6 {
		t.Errorf("CenteredRect() = %+v, expected {25 9 30 6}", r)
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, lo, hi, expected int
	}{
		{5, 0, 10, 5},   // within range
		{-5, 0, 10, 0},  // below lo
		{15, 0, 10, 10}, // above hi
		{0, 0, 10, 0},   // at lo
		{10, 0, 10, 10}, // at hi
	}

	for _, tc := range tests {
		result := Clamp(tc.val, tc.lo, tc.hi)
		if result != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.lo, tc.hi, result, tc.expected)
		}
	}
}

func TestClampF(t *testing.T) {
	tests := []struct {
		val, lo, hi, expected float64
	}{
		{5.5, 0.0, 10.0, 5.5},
		{-5.5, 0.0, 10.0, 0.0},
		{15.5, 0.0, 10.0, 10.0},
	}

	for _, tc := range tests {
		result := ClampF(tc.val, tc.lo, tc.hi)
		if result != tc.expected {
			t.Errorf("ClampF(%f, %f, %f) = %f, expected %f", tc.val, tc.lo, tc.hi, result, tc.expected)
		}
	}
}

func TestViewportToScreen(t *testing.T) {
	v := NewViewport(NewRect(0, 1, 120, 40), 960, 640)

	tests := []struct {
		name     string
		x, y     float64
		col, row int
	}{
		{"origin", 0, 0, 0, 1},
		{"inside first cell", 7.9, 15.9, 0, 1},
		{"centre", 480, 320, 60, 21},
		{"far corner", 959, 639, 119, 40},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			col, row := v.ToScreen(tc.x, tc.y)
			if col != tc.col || row != tc.row {
				t.Errorf("ToScreen(%v, %v) = (%d, %d), expected (%d, %d)", tc.x, tc.y, col, row, tc.col, tc.row)
			}
		})
	}
}

func TestViewportRoundTrip(t *testing.T) {
	v := NewViewport(NewRect(2, 3, 40, 20), 960, 640)

	for _, cell := range [][2]int{{2, 3}, {10, 7}, {41, 22}} {
		x, y := v.ToWorld(cell[0], cell[1])
		col, row := v.ToScreen(x, y)
		if col != cell[0] || row != cell[1] {
			t.Errorf("round trip of (%d, %d) gave (%d, %d)", cell[0], cell[1], col, row)
		}
	}
}

func TestViewportEmptyArea(t *testing.T) {
	v := NewViewport(NewRect(4, 5, 0, 0), 960, 640)
	col, row := v.ToScreen(100, 100)
	if col != 4 || row != 5 {
		t.Errorf("empty viewport should pin to its origin, got (%d, %d)", col, row)
	}
	if math.IsNaN(v.ScaleX) || math.IsNaN(v.ScaleY) {
		t.Error("empty viewport scale should not be NaN")
	}
}
