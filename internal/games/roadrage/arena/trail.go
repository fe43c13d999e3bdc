package arena

// Trail tracks the player's open path across unclaimed cells.
// Every index in cells is set in mask and every set cell of mask appears
// exactly once in cells.
type Trail struct {
	mask  *BoolMask
	cells []int
}

// NewTrail creates an empty trail over the grid.
func NewTrail(g Grid) *Trail {
	return &Trail{
		mask:  NewBoolMask(g),
		cells: make([]int, 0, 256),
	}
}

// Mask returns the trail mask for collision queries.
func (t *Trail) Mask() *BoolMask {
	return t.mask
}

// Cells returns the trail cells in path order.
func (t *Trail) Cells() []int {
	return t.cells
}

// Len returns the number of recorded cells.
func (t *Trail) Len() int {
	return len(t.cells)
}

// Contains reports whether the cell is on the open trail.
func (t *Trail) Contains(idx int) bool {
	return t.mask.At(idx)
}

// Last returns the most recently recorded cell.
func (t *Trail) Last() (int, bool) {
	if len(t.cells) == 0 {
		return 0, false
	}
	return t.cells[len(t.cells)-1], true
}

// Record appends a cell to the trail. Re-recording the last cell is a no-op.
func (t *Trail) Record(idx int) {
	if last, ok := t.Last(); ok && last == idx {
		return
	}
	t.mask.Set(idx)
	t.cells = append(t.cells, idx)
}

// Clear discards the trail.
func (t *Trail) Clear() {
	for _, idx := range t.cells {
		t.mask.Unset(idx)
	}
	t.cells = t.cells[:0]
}

// CommitTo marks every trail cell as claimed and clears the trail.
// Returns the number of cells committed.
func (t *Trail) CommitTo(claimed *BoolMask) int {
	n := len(t.cells)
	for _, idx := range t.cells {
		claimed.Set(idx)
		t.mask.Unset(idx)
	}
	t.cells = t.cells[:0]
	return n
}
