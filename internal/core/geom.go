// Package core provides fundamental types and utilities for the game platform.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

import "math"

// Rect is an axis-aligned rectangle in screen cells.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate one past the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate one past the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// CenteredRect returns a w×h rectangle centred inside outer.
func CenteredRect(outer Rect, w, h int) Rect {
	return NewRect(outer.X+(outer.W-w)/2, outer.Y+(outer.H-h)/2, w, h)
}

// Clamp restricts a value to be within [lo, hi].
func Clamp(val, lo, hi int) int {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}

// ClampF restricts a float64 value to be within [lo, hi].
func ClampF(val, lo, hi float64) float64 {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}

// Viewport maps a continuous world rectangle onto a block of screen cells.
// Each screen cell covers a world area of ScaleX × ScaleY units.
type Viewport struct {
	Area           Rect
	WorldW, WorldH float64
	ScaleX, ScaleY float64
}

// NewViewport fits a worldW × worldH world into area.
func NewViewport(area Rect, worldW, worldH float64) Viewport {
	v := Viewport{Area: area, WorldW: worldW, WorldH: worldH}
	if area.W > 0 {
		v.ScaleX = worldW / float64(area.W)
	}
	if area.H > 0 {
		v.ScaleY = worldH / float64(area.H)
	}
	return v
}

// ToScreen converts a world position to a screen cell. The result may lie
// outside Area when the position is outside the world.
func (v Viewport) ToScreen(x, y float64) (int, int) {
	if v.ScaleX == 0 || v.ScaleY == 0 {
		return v.Area.X, v.Area.Y
	}
	col := int(math.Floor(x / v.ScaleX))
	row := int(math.Floor(y / v.ScaleY))
	return v.Area.X + col, v.Area.Y + row
}

// ToWorld returns the world position at the centre of a screen cell.
func (v Viewport) ToWorld(col, row int) (float64, float64) {
	x := (float64(col-v.Area.X) + 0.5) * v.ScaleX
	y := (float64(row-v.Area.Y) + 0.5) * v.ScaleY
	return x, y
}
