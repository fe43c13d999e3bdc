package arena

// NearestOpenCell searches expanding square rings around (col, row) for an
// unclaimed interior cell. Within a ring cells are scanned row-major, so
// ties resolve to the topmost, then leftmost candidate.
func NearestOpenCell(claimed *BoolMask, col, row int) (int, bool) {
	maxRadius := max(claimed.cols, claimed.rows)
	for radius := 0; radius <= maxRadius; radius++ {
		for r := row - radius; r <= row+radius; r++ {
			for c := col - radius; c <= col+radius; c++ {
				if !claimed.IsInterior(c, r) {
					continue
				}
				idx := claimed.Index(c, r)
				if !claimed.cells[idx] {
					return idx, true
				}
			}
		}
	}
	return 0, false
}

// hazardStart returns the BFS seed for a hazard, reseeding from the nearest
// open cell when the hazard sits on claimed ground.
func hazardStart(claimed *BoolMask, h *Hazard) (int, bool) {
	col := ToCell(h.X, claimed.cell, claimed.cols-1)
	row := ToCell(h.Y, claimed.cell, claimed.rows-1)
	idx := claimed.Index(col, row)
	if claimed.cells[idx] {
		return NearestOpenCell(claimed, col, row)
	}
	return idx, true
}

// FloodFromHazards returns the set of interior cells reachable from any
// hazard through unclaimed cells using 4-way adjacency.
func FloodFromHazards(claimed *BoolMask, hazards []*Hazard) *BoolMask {
	visited := NewBoolMask(claimed.Grid)
	queue := make([]int, 0, claimed.InteriorCount())

	for _, h := range hazards {
		start, ok := hazardStart(claimed, h)
		if !ok || visited.cells[start] {
			continue
		}
		visited.cells[start] = true
		queue = append(queue, start)
	}

	neighbours := [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
	for head := 0; head < len(queue); head++ {
		col, row := claimed.ColRow(queue[head])
		for _, d := range neighbours {
			nc, nr := col+d[0], row+d[1]
			if !claimed.IsInterior(nc, nr) {
				continue
			}
			n := claimed.Index(nc, nr)
			if visited.cells[n] || claimed.cells[n] {
				continue
			}
			visited.cells[n] = true
			queue = append(queue, n)
		}
	}

	return visited
}

// ResolveEnclosures claims every interior pocket no hazard can reach.
// Returns the number of newly claimed cells.
func ResolveEnclosures(claimed *BoolMask, hazards []*Hazard) int {
	reachable := FloodFromHazards(claimed, hazards)
	added := 0
	for row := 1; row < claimed.rows-1; row++ {
		for col := 1; col < claimed.cols-1; col++ {
			idx := claimed.Index(col, row)
			if claimed.cells[idx] || reachable.cells[idx] {
				continue
			}
			claimed.cells[idx] = true
			added++
		}
	}
	return added
}

// RelocateTrappedHazards moves hazards standing on claimed cells to the
// centre of the nearest open cell. Hazards with nowhere to go stay put.
func RelocateTrappedHazards(claimed *BoolMask, hazards []*Hazard) {
	for _, h := range hazards {
		col := ToCell(h.X, claimed.cell, claimed.cols-1)
		row := ToCell(h.Y, claimed.cell, claimed.rows-1)
		if !claimed.cells[claimed.Index(col, row)] {
			continue
		}
		open, ok := NearestOpenCell(claimed, col, row)
		if !ok {
			continue
		}
		h.X, h.Y = claimed.CellCenter(open)
	}
}
