package arena

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGridDimensions(t *testing.T) {
	g := NewGrid(960, 640, 8)

	assert.Equal(t, 120, g.Cols())
	assert.Equal(t, 80, g.Rows())
	assert.Equal(t, 9600, g.Len())
	assert.Equal(t, 118*78, g.InteriorCount())
}

func TestNewGridTruncatesPartialCells(t *testing.T) {
	g := NewGrid(100, 60, 8)
	assert.Equal(t, 12, g.Cols())
	assert.Equal(t, 7, g.Rows())
}

func TestToCell(t *testing.T) {
	tests := []struct {
		name  string
		value float64
		want  int
	}{
		{"origin", 0, 0},
		{"inside first", 7.99, 0},
		{"cell boundary", 8, 1},
		{"negative clamps", -30, 0},
		{"past end clamps", 5000, 9},
		{"last cell", 79.5, 9},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ToCell(tc.value, 8, 9))
		})
	}
}

func TestCellAtAndCenterRoundTrip(t *testing.T) {
	g := NewGrid(960, 640, 8)
	for _, idx := range []int{0, 121, g.Len() - 1} {
		x, y := g.CellCenter(idx)
		assert.Equal(t, idx, g.CellAt(x, y))
	}
	assert.Equal(t, g.Len()-1, g.CellAt(1e6, 1e6), "out of range points clamp to the last cell")
}

func TestClaimedMaskBorderRing(t *testing.T) {
	g := NewGrid(80, 80, 8)
	m := NewClaimedMask(g)

	assert.Equal(t, 2*10+2*10-4, m.Count())
	for row := range g.Rows() {
		for col := range g.Cols() {
			assert.Equal(t, !g.IsInterior(col, row), m.At(g.Index(col, row)), "cell (%d,%d)", col, row)
		}
	}

	stats := ClaimedStats(m)
	assert.Zero(t, stats.Claimed)
	assert.Zero(t, stats.Percent)
	assert.Nil(t, stats.Bounds)
}

func TestClaimedStatsBounds(t *testing.T) {
	m := NewClaimedMask(NewGrid(80, 80, 8))
	claimCells(m, [2]int{2, 3}, [2]int{5, 1}, [2]int{4, 6})

	stats := ClaimedStats(m)
	assert.Equal(t, 3, stats.Claimed)
	assert.InDelta(t, 3.0/64.0, stats.Percent, 1e-12)
	require.NotNil(t, stats.Bounds)
	assert.Equal(t, Bounds{MinCol: 2, MinRow: 1, MaxCol: 5, MaxRow: 6}, *stats.Bounds)
}

func TestBoolMaskCloneIsIndependent(t *testing.T) {
	m := NewBoolMask(NewGrid(80, 80, 8))
	m.Set(11)
	c := m.Clone()
	c.Set(12)

	assert.True(t, c.At(11))
	assert.False(t, m.At(12))
	assert.False(t, m.Equal(c))
	m.Set(12)
	assert.True(t, m.Equal(c))

	m.Reset()
	assert.Zero(t, m.Count())
}

func TestBoolMaskOutOfRangeReadsFalse(t *testing.T) {
	m := NewClaimedMask(NewGrid(80, 80, 8))
	assert.False(t, m.At(-1))
	assert.False(t, m.At(m.Len()))
}

func TestCircleIntersectsMask(t *testing.T) {
	m := NewClaimedMask(NewGrid(80, 80, 8))

	tests := []struct {
		name    string
		x, y, r float64
		want    bool
	}{
		{"centre of open arena", 40, 40, 5, false},
		{"overlapping top border", 40, 12.5, 5, true},
		{"just clear of top border", 40, 13.01, 5, false},
		{"overlapping corner", 10, 10, 3, true},
		{"inside border cell", 4, 40, 1, true},
		{"large circle reaches wall", 40, 40, 32, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, CircleIntersectsMask(m, tc.x, tc.y, tc.r))
		})
	}
}

func TestCircleIntersectsTrailMask(t *testing.T) {
	g := NewGrid(80, 80, 8)
	trail := NewTrail(g)
	assert.False(t, CircleIntersectsMask(trail.Mask(), 44, 44, 10))

	trail.Record(g.Index(5, 5))
	assert.True(t, CircleIntersectsMask(trail.Mask(), 44, 44, 1))
	assert.False(t, CircleIntersectsMask(trail.Mask(), 20, 20, 4))
}

func TestCirclesOverlap(t *testing.T) {
	assert.True(t, CirclesOverlap(0, 0, 5, 10, 0, 5), "touching counts")
	assert.False(t, CirclesOverlap(0, 0, 5, 10.01, 0, 5))
	assert.True(t, CirclesOverlap(3, 4, 1, 3, 4, 1))
}
