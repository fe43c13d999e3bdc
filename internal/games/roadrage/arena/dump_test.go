package arena

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeDump(t *testing.T, e *Engine, pres Presentation) map[string]any {
	t.Helper()
	data, err := e.Dump(pres)
	require.NoError(t, err)
	var out map[string]any
	require.NoError(t, json.Unmarshal(data, &out))
	return out
}

func TestDumpFreshRun(t *testing.T) {
	e := startedEngine(t)
	out := decodeDump(t, e, Presentation{Renderer: "terminal", Sound: true})

	assert.Equal(t, CoordinateSystem, out["coordinateSystem"])
	assert.Equal(t, "playing", out["mode"])

	player := out["player"].(map[string]any)
	assert.Equal(t, 480.0, player["x"])
	assert.Equal(t, 4.0, player["y"])
	assert.Equal(t, 3.0, player["lives"])
	assert.Equal(t, false, player["trailActive"])

	level := out["level"].(map[string]any)
	assert.Equal(t, 1.0, level["number"])
	assert.Equal(t, 1.0, level["activeHazardCount"])
	assert.Equal(t, 1.0, level["selectedStartingHazardCount"])

	assert.Len(t, out["hazards"], 1)
	assert.NotNil(t, out["hazard"])

	territory := out["territory"].(map[string]any)
	assert.Equal(t, 0.0, territory["claimedPercent"])
	assert.Equal(t, 0.0, territory["claimedInteriorCells"])
	assert.Contains(t, territory, "claimedBounds")
	assert.Nil(t, territory["claimedBounds"])
	assert.Equal(t, 0.75, territory["targetPercent"])

	pres := out["presentation"].(map[string]any)
	assert.Equal(t, "terminal", pres["renderer"])
	assert.Equal(t, true, pres["sound"])

	nitro := out["nitro"].(map[string]any)
	assert.Equal(t, 1.0, nitro["speedMultiplier"])
}

func TestDumpRoundsFloats(t *testing.T) {
	e := startedEngine(t)
	s := e.State()
	s.Player.X = 123.45678
	s.Player.Angle = 0.1234567
	s.Player.Invuln = 0.98765
	s.ClaimedPercent = 0.123456

	snap := e.Snapshot(Presentation{})

	assert.Equal(t, 123.46, snap.Player.X)
	assert.Equal(t, 0.123, snap.Player.Angle)
	assert.Equal(t, 0.988, snap.Player.Invuln)
	assert.Equal(t, 0.1235, snap.Territory.ClaimedPercent)
}

func TestDumpSamplesSparks(t *testing.T) {
	e := startedEngine(t)
	for range 20 {
		e.Update(dt, idle())
	}
	require.Greater(t, len(e.State().Sparks), dumpSparkSamples)

	snap := e.Snapshot(Presentation{})
	assert.Equal(t, len(e.State().Sparks), snap.Sparks.Count)
	assert.Len(t, snap.Sparks.Sample, dumpSparkSamples)
	assert.Equal(t, len(e.State().Smoke), snap.Smoke.Count)
}

func TestDumpClaimedBoundsAndTrail(t *testing.T) {
	e := startedEngine(t)
	s := e.State()
	g := e.Grid()
	claimCells(s.Claimed, [2]int{4, 5}, [2]int{9, 2})
	s.ClaimedPercent = ClaimedPercent(s.Claimed)
	s.Trail.Record(g.Index(20, 20))

	snap := e.Snapshot(Presentation{})

	require.NotNil(t, snap.Territory.ClaimedBounds)
	assert.Equal(t, Bounds{MinCol: 4, MinRow: 2, MaxCol: 9, MaxRow: 5}, *snap.Territory.ClaimedBounds)
	assert.Equal(t, 2, snap.Territory.ClaimedInteriorCells)
	assert.Equal(t, 1, snap.Territory.ActiveTrailCells)
}
