package arena

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/roadrage/internal/config"
	"github.com/vovakirdan/roadrage/internal/core"
)

const dt = core.FixedStep

func newTestEngine(t *testing.T, cfg config.RoadRageConfig) *Engine {
	t.Helper()
	require.NoError(t, cfg.Validate())
	return NewEngine(cfg, rand.New(rand.NewSource(7)))
}

// startedEngine returns an engine already in a run with the default config.
func startedEngine(t *testing.T) *Engine {
	t.Helper()
	e := newTestEngine(t, config.DefaultRoadRageConfig())
	e.Start()
	e.DrainEvents()
	return e
}

func squareWorld(size float64) config.RoadRageConfig {
	cfg := config.DefaultRoadRageConfig()
	cfg.World.Width = size
	cfg.World.Height = size
	return cfg
}

func idle() *core.InputFrame {
	f := core.NewInputFrame()
	return &f
}

func steer(x, y float64) *core.InputFrame {
	f := core.NewInputFrame()
	f.SetAxis(x, y)
	return &f
}

func press(a core.Action) *core.InputFrame {
	f := core.NewInputFrame()
	f.Set(a)
	return &f
}

func kinds(events []Event) []EventKind {
	out := make([]EventKind, len(events))
	for i, ev := range events {
		out[i] = ev.Kind
	}
	return out
}

// claimCells marks (col,row) pairs as claimed.
func claimCells(m *BoolMask, cells ...[2]int) {
	for _, c := range cells {
		m.Set(m.Index(c[0], c[1]))
	}
}

// claimRect marks an inclusive cell rectangle as claimed.
func claimRect(m *BoolMask, minCol, minRow, maxCol, maxRow int) {
	for row := minRow; row <= maxRow; row++ {
		for col := minCol; col <= maxCol; col++ {
			m.Set(m.Index(col, row))
		}
	}
}

// hazardAt builds a stationary-heading hazard for flood tests.
func hazardAt(x, y float64) *Hazard {
	return &Hazard{X: x, Y: y, VX: 180, Radius: 19}
}

// requireTrailDisjoint checks that no open trail cell is already claimed.
func requireTrailDisjoint(t *testing.T, s *State) {
	t.Helper()
	for _, idx := range s.Trail.Cells() {
		require.False(t, s.Claimed.At(idx), "trail cell %d is also claimed", idx)
	}
	require.Equal(t, s.Trail.Len(), s.Trail.Mask().Count(), "trail list and mask disagree")
}
