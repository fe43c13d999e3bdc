package arena

// clamp restricts a float64 to [lo, hi].
func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// CircleIntersectsMask reports whether a circle overlaps any true cell of
// the mask. Only the cells under the circle's bounding box are tested, each
// against its nearest point to the circle centre.
func CircleIntersectsMask(m Mask, x, y, radius float64) bool {
	cols, rows, cell := m.Cols(), m.Rows(), m.CellSize()

	minCol := ToCell(x-radius, cell, cols-1)
	maxCol := ToCell(x+radius, cell, cols-1)
	minRow := ToCell(y-radius, cell, rows-1)
	maxRow := ToCell(y+radius, cell, rows-1)

	r2 := radius * radius
	for row := minRow; row <= maxRow; row++ {
		for col := minCol; col <= maxCol; col++ {
			if !m.At(Index(col, row, cols)) {
				continue
			}
			left := float64(col) * cell
			top := float64(row) * cell
			dx := x - clamp(x, left, left+cell)
			dy := y - clamp(y, top, top+cell)
			if dx*dx+dy*dy <= r2 {
				return true
			}
		}
	}
	return false
}

// CirclesOverlap reports whether two circles touch or overlap.
func CirclesOverlap(ax, ay, ar, bx, by, br float64) bool {
	dx := bx - ax
	dy := by - ay
	sum := ar + br
	return dx*dx+dy*dy <= sum*sum
}
