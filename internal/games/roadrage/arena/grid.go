// Package arena contains the territory-claim simulation for Road Rage.
// It is pure game logic: no terminal, no timers, no I/O. Everything is
// advanced by Engine.Update with a fixed dt and a seeded random source.
package arena

import "math"

// Mask is a read-only boolean cell grid. Claimed territory and the open
// trail are both masks, so collision queries work on either.
type Mask interface {
	Cols() int
	Rows() int
	CellSize() float64
	At(idx int) bool
}

// Grid describes the arena subdivision into square cells.
// Cells are stored in row-major order: index = row*Cols + col.
type Grid struct {
	cols int
	rows int
	cell float64
}

// NewGrid creates a grid covering worldW x worldH with the given cell size.
func NewGrid(worldW, worldH, cell float64) Grid {
	return Grid{
		cols: int(math.Floor(worldW / cell)),
		rows: int(math.Floor(worldH / cell)),
		cell: cell,
	}
}

// Cols returns the number of columns.
func (g Grid) Cols() int { return g.cols }

// Rows returns the number of rows.
func (g Grid) Rows() int { return g.rows }

// CellSize returns the side length of a cell in world units.
func (g Grid) CellSize() float64 { return g.cell }

// Len returns the total number of cells.
func (g Grid) Len() int { return g.cols * g.rows }

// Index converts a column/row pair into a flat index.
func (g Grid) Index(col, row int) int {
	return Index(col, row, g.cols)
}

// ColRow converts a flat index back into column and row.
func (g Grid) ColRow(idx int) (col, row int) {
	return idx % g.cols, idx / g.cols
}

// CellAt returns the clamped index of the cell containing world point (x, y).
func (g Grid) CellAt(x, y float64) int {
	col := ToCell(x, g.cell, g.cols-1)
	row := ToCell(y, g.cell, g.rows-1)
	return g.Index(col, row)
}

// CellCenter returns the world coordinates of a cell's centre.
func (g Grid) CellCenter(idx int) (x, y float64) {
	col, row := g.ColRow(idx)
	return (float64(col) + 0.5) * g.cell, (float64(row) + 0.5) * g.cell
}

// IsInterior reports whether the cell is not part of the border ring.
func (g Grid) IsInterior(col, row int) bool {
	return col >= 1 && row >= 1 && col < g.cols-1 && row < g.rows-1
}

// InteriorCount returns the number of cells inside the border ring.
func (g Grid) InteriorCount() int {
	if g.cols < 2 || g.rows < 2 {
		return 0
	}
	return (g.cols - 2) * (g.rows - 2)
}

// Index converts a column/row pair into a flat row-major index.
func Index(col, row, cols int) int {
	return row*cols + col
}

// ToCell maps a continuous coordinate to a cell index clamped to [0, maxCell].
func ToCell(value, cellSize float64, maxCell int) int {
	c := int(math.Floor(value / cellSize))
	if c < 0 {
		return 0
	}
	if c > maxCell {
		return maxCell
	}
	return c
}

// BoolMask is a slice-backed Mask bound to a Grid.
type BoolMask struct {
	Grid
	cells []bool
}

// NewBoolMask creates an all-false mask for the grid.
func NewBoolMask(g Grid) *BoolMask {
	return &BoolMask{Grid: g, cells: make([]bool, g.Len())}
}

// NewClaimedMask creates a mask with the outer ring of cells claimed.
func NewClaimedMask(g Grid) *BoolMask {
	m := NewBoolMask(g)
	for row := 0; row < g.rows; row++ {
		for col := 0; col < g.cols; col++ {
			if !g.IsInterior(col, row) {
				m.cells[g.Index(col, row)] = true
			}
		}
	}
	return m
}

// At returns the value of the cell at idx. Out of range reads as false.
func (m *BoolMask) At(idx int) bool {
	if idx < 0 || idx >= len(m.cells) {
		return false
	}
	return m.cells[idx]
}

// Set marks a cell true.
func (m *BoolMask) Set(idx int) {
	m.cells[idx] = true
}

// Unset marks a cell false.
func (m *BoolMask) Unset(idx int) {
	m.cells[idx] = false
}

// Reset clears every cell.
func (m *BoolMask) Reset() {
	clear(m.cells)
}

// Clone returns a deep copy.
func (m *BoolMask) Clone() *BoolMask {
	cells := make([]bool, len(m.cells))
	copy(cells, m.cells)
	return &BoolMask{Grid: m.Grid, cells: cells}
}

// Equal reports whether two masks hold identical cells.
func (m *BoolMask) Equal(other *BoolMask) bool {
	if len(m.cells) != len(other.cells) {
		return false
	}
	for i, v := range m.cells {
		if other.cells[i] != v {
			return false
		}
	}
	return true
}

// Count returns the number of true cells.
func (m *BoolMask) Count() int {
	n := 0
	for _, v := range m.cells {
		if v {
			n++
		}
	}
	return n
}

// Bounds is an inclusive cell-space bounding box.
type Bounds struct {
	MinCol int `json:"minCol"`
	MinRow int `json:"minRow"`
	MaxCol int `json:"maxCol"`
	MaxRow int `json:"maxRow"`
}

// TerritoryStats summarises claimed interior cells.
type TerritoryStats struct {
	Claimed int
	Percent float64
	Bounds  *Bounds // nil when no interior cell is claimed
}

// ClaimedStats scans the interior of a claimed mask.
func ClaimedStats(m *BoolMask) TerritoryStats {
	var stats TerritoryStats
	b := Bounds{MinCol: m.cols, MinRow: m.rows, MaxCol: -1, MaxRow: -1}

	for row := 1; row < m.rows-1; row++ {
		for col := 1; col < m.cols-1; col++ {
			if !m.cells[m.Index(col, row)] {
				continue
			}
			stats.Claimed++
			b.MinCol = min(b.MinCol, col)
			b.MinRow = min(b.MinRow, row)
			b.MaxCol = max(b.MaxCol, col)
			b.MaxRow = max(b.MaxRow, row)
		}
	}

	if total := m.InteriorCount(); total > 0 {
		stats.Percent = float64(stats.Claimed) / float64(total)
	}
	if stats.Claimed > 0 {
		stats.Bounds = &b
	}
	return stats
}

// ClaimedPercent returns claimed interior cells over total interior cells.
func ClaimedPercent(m *BoolMask) float64 {
	return ClaimedStats(m).Percent
}
