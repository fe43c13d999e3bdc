package arena

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/roadrage/internal/config"
	"github.com/vovakirdan/roadrage/internal/core"
)

func TestNewEngineStartsInMenu(t *testing.T) {
	e := newTestEngine(t, config.DefaultRoadRageConfig())

	s := e.State()
	assert.Equal(t, ModeMenu, s.Mode)
	assert.Equal(t, 1, s.Level)
	assert.Equal(t, 3, s.Lives)
	assert.Equal(t, 1, e.SelectedHazards())
	assert.Equal(t, 1, s.HazardCount())
	assert.Zero(t, s.ClaimedPercent)
}

func TestMenuAdjustsStartingHazards(t *testing.T) {
	e := newTestEngine(t, config.DefaultRoadRageConfig())

	for range 3 {
		e.Update(dt, press(core.ActionRight))
	}
	assert.Equal(t, 4, e.SelectedHazards())

	for range 10 {
		e.Update(dt, press(core.ActionLeft))
	}
	assert.Equal(t, 1, e.SelectedHazards(), "clamped to min_selectable")

	for range 20 {
		e.Update(dt, press(core.ActionRight))
	}
	assert.Equal(t, 8, e.SelectedHazards(), "clamped to max_selectable")
	assert.Equal(t, ModeMenu, e.State().Mode)
}

func TestMenuIgnoresSteering(t *testing.T) {
	e := newTestEngine(t, config.DefaultRoadRageConfig())
	p := e.State().Player
	x, y := p.X, p.Y

	for range 30 {
		e.Update(dt, steer(1, 1))
	}

	assert.Equal(t, x, p.X)
	assert.Equal(t, y, p.Y)
	assert.Empty(t, e.State().Sparks)
}

func TestConfirmStartsRun(t *testing.T) {
	e := newTestEngine(t, config.DefaultRoadRageConfig())
	e.SetSelectedHazards(3)

	e.Update(dt, press(core.ActionConfirm))

	s := e.State()
	assert.Equal(t, ModePlaying, s.Mode)
	assert.Equal(t, 3, s.HazardCount())
	assert.Equal(t, 3, s.Lives)
	assert.Equal(t, []EventKind{EventRunStart}, kinds(e.DrainEvents()))
	assert.Empty(t, e.DrainEvents(), "drain clears the queue")
}

func TestTrailStartsWhenLeavingClaimedGround(t *testing.T) {
	e := startedEngine(t)
	s := e.State()

	for i := 0; i < 5 && !s.Player.TrailActive; i++ {
		e.Update(dt, steer(0, 1))
	}

	require.True(t, s.Player.TrailActive)
	assert.Equal(t, 1, s.Trail.Len())
	assert.Contains(t, kinds(e.DrainEvents()), EventTrailStart)
	requireTrailDisjoint(t, s)
}

func TestClosedLoopClaimsPocket(t *testing.T) {
	e := startedEngine(t)
	s := e.State()

	drive := func(x, y float64, steps int) {
		for range steps {
			e.Update(dt, steer(x, y))
			requireTrailDisjoint(t, s)
		}
	}
	drive(0, 1, 20)
	drive(1, 0, 20)
	require.True(t, s.Player.TrailActive)
	require.Equal(t, 17, s.Trail.Len())

	for i := 0; i < 40 && s.Player.TrailActive; i++ {
		e.Update(dt, steer(0, -1))
		requireTrailDisjoint(t, s)
	}

	require.False(t, s.Player.TrailActive)
	assert.Zero(t, s.Trail.Len())
	stats := ClaimedStats(s.Claimed)
	assert.Equal(t, 25+56, stats.Claimed)
	assert.InDelta(t, 81.0/float64(e.Grid().InteriorCount()), s.ClaimedPercent, 1e-12)

	var claims []Event
	for _, ev := range e.DrainEvents() {
		if ev.Kind == EventClaim {
			claims = append(claims, ev)
		}
	}
	require.Len(t, claims, 1)
	assert.Equal(t, 81, claims[0].Cells)
	assert.Equal(t, 3, s.Lives)
}

func TestStationaryInLastCellAppendsNothing(t *testing.T) {
	e := startedEngine(t)
	s := e.State()
	g := e.Grid()
	s.Trail.Record(g.Index(30, 30))
	s.Trail.Record(g.Index(31, 30))
	s.Player.X, s.Player.Y = g.CellCenter(g.Index(31, 30))
	s.Player.TrailActive = true

	for range 10 {
		e.Update(dt, idle())
	}

	assert.Equal(t, 2, s.Trail.Len())
	assert.Equal(t, 3, s.Lives)
	assert.True(t, s.Player.TrailActive)
}

func TestShortTrailCommitIsAborted(t *testing.T) {
	e := startedEngine(t)
	s := e.State()
	g := e.Grid()
	borderCells := s.Claimed.Count()

	s.Trail.Record(g.Index(60, 1))
	s.Player.X, s.Player.Y = 484, 9
	s.Player.TrailActive = true

	e.Update(dt, steer(0, -1))

	assert.False(t, s.Player.TrailActive)
	assert.Zero(t, s.Trail.Len())
	assert.Equal(t, borderCells, s.Claimed.Count())
	assert.NotContains(t, kinds(e.DrainEvents()), EventClaim)
	assert.Equal(t, 3, s.Lives)
}

func TestSelfIntersectionCostsLife(t *testing.T) {
	e := startedEngine(t)
	s := e.State()
	g := e.Grid()

	for _, c := range [][2]int{{10, 10}, {11, 10}, {11, 11}, {10, 11}} {
		s.Trail.Record(g.Index(c[0], c[1]))
	}
	s.Player.X, s.Player.Y = 84, 88.5
	s.Player.TrailActive = true

	e.Update(dt, steer(0, -1))

	assert.Equal(t, 2, s.Lives)
	assert.Zero(t, s.Trail.Len())
	assert.Zero(t, s.Trail.Mask().Count())
	assert.False(t, s.Player.TrailActive)
	assert.Equal(t, 480.0, s.Player.X)
	assert.Equal(t, 4.0, s.Player.Y)
	assert.Equal(t, e.Config().Player.InvulnSeconds, s.Player.Invuln)
	assert.Contains(t, kinds(e.DrainEvents()), EventLifeLost)
	assert.Equal(t, 1.0, e.Shake().Amount)

	e.Update(dt, idle())
	assert.InDelta(t, e.Config().Player.InvulnSeconds-dt, s.Player.Invuln, 1e-12)
}

func TestHazardContactCostsOneLife(t *testing.T) {
	e := startedEngine(t)
	s := e.State()
	h := s.Hazards[0]
	h.X, h.Y = 300, 300
	s.Player.X, s.Player.Y = 310, 300

	e.Update(dt, idle())

	assert.Equal(t, 2, s.Lives)
	assert.Equal(t, e.Config().Player.InvulnSeconds, s.Player.Invuln)

	// Invulnerable: touching again costs nothing.
	h.X, h.Y = s.Player.X, s.Player.Y+40
	s.Player.Y = h.Y - 10
	e.Update(dt, idle())
	assert.Equal(t, 2, s.Lives)
}

func TestHazardOnTrailCostsLifeEvenWhenInvulnerable(t *testing.T) {
	e := startedEngine(t)
	s := e.State()
	g := e.Grid()

	for _, c := range [][2]int{{30, 30}, {31, 30}, {32, 30}} {
		s.Trail.Record(g.Index(c[0], c[1]))
	}
	s.Player.X, s.Player.Y = g.CellCenter(g.Index(32, 30))
	s.Player.TrailActive = true
	s.Player.Invuln = 1

	h := s.Hazards[0]
	h.X, h.Y = g.CellCenter(g.Index(30, 30))

	e.Update(dt, idle())

	assert.Equal(t, 2, s.Lives)
	assert.Zero(t, s.Trail.Len())
	assert.False(t, s.Player.TrailActive)
}

func TestReachingTargetAdvancesLevelInSameUpdate(t *testing.T) {
	setup := func(t *testing.T, target float64) *Engine {
		cfg := squareWorld(160)
		cfg.Rules.WinClaimPercent = target
		e := newTestEngine(t, cfg)
		e.Start()
		e.DrainEvents()

		s := e.State()
		g := e.Grid()
		require.Equal(t, 324, g.InteriorCount())

		claimRect(s.Claimed, 1, 1, 18, 13)
		claimRect(s.Claimed, 1, 14, 7, 14)
		s.Hazards[0].X, s.Hazards[0].Y = 124, 140
		s.Trail.Record(g.Index(9, 14))
		s.Trail.Record(g.Index(8, 14))
		s.Player.X, s.Player.Y = 65, 116
		s.Player.TrailActive = true
		return e
	}

	t.Run("exactly on target", func(t *testing.T) {
		e := setup(t, 0.75)
		e.Update(dt, steer(-1, 0))

		s := e.State()
		assert.Equal(t, 2, s.Level)
		assert.Equal(t, 2, s.HazardCount())
		assert.Equal(t, 3, s.Lives)
		assert.Equal(t, ModePlaying, s.Mode)
		assert.Zero(t, s.ClaimedPercent)
		assert.Zero(t, s.Trail.Len())

		events := e.DrainEvents()
		require.Len(t, events, 2)
		assert.Equal(t, EventClaim, events[0].Kind)
		assert.Equal(t, 2, events[0].Cells)
		assert.Equal(t, 1, events[0].Level)
		assert.Equal(t, EventLevelUp, events[1].Kind)
		assert.Equal(t, 2, events[1].Level)
	})

	t.Run("just below target", func(t *testing.T) {
		e := setup(t, 0.76)
		e.Update(dt, steer(-1, 0))

		s := e.State()
		assert.Equal(t, 1, s.Level)
		assert.Equal(t, 0.75, s.ClaimedPercent)
	})
}

func TestLevelAdvanceKeepsLives(t *testing.T) {
	e := startedEngine(t)
	e.state.Lives = 2
	e.advanceLevel()

	s := e.State()
	assert.Equal(t, 2, s.Lives)
	assert.Equal(t, 2, s.Level)
	assert.Equal(t, 2, s.HazardCount())
	assert.Equal(t, NewClaimedMask(e.Grid()).Count(), s.Claimed.Count())
}

func TestGameOverFreezesSimulation(t *testing.T) {
	e := startedEngine(t)
	for range 10 {
		e.Update(dt, idle())
	}
	s := e.State()
	s.Lives = 1
	e.loseLife()

	require.Equal(t, ModeLost, s.Mode)
	require.Zero(t, s.Lives)
	assert.Equal(t, []EventKind{EventGameOver}, kinds(e.DrainEvents()))

	hx, hy := s.Hazards[0].X, s.Hazards[0].Y
	px, py := s.Player.X, s.Player.Y
	sparks, smoke := len(s.Sparks), len(s.Smoke)
	nitro := s.Nitro

	for range 60 {
		in := steer(1, 1)
		in.Set(core.ActionNitro)
		e.Update(dt, in)
	}

	assert.Equal(t, hx, s.Hazards[0].X)
	assert.Equal(t, hy, s.Hazards[0].Y)
	assert.Equal(t, px, s.Player.X)
	assert.Equal(t, py, s.Player.Y)
	assert.Len(t, s.Sparks, sparks)
	assert.Len(t, s.Smoke, smoke)
	assert.Equal(t, nitro, s.Nitro)
	assert.Empty(t, e.DrainEvents())

	e.Update(dt, press(core.ActionConfirm))
	ns := e.State()
	assert.Equal(t, ModePlaying, ns.Mode)
	assert.Equal(t, 3, ns.Lives)
	assert.Equal(t, 1, ns.Level)
}

func TestNitroMutualExclusion(t *testing.T) {
	e := startedEngine(t)
	s := e.State()
	cfg := e.Config()
	s.Player.Invuln = 1000

	e.Update(dt, press(core.ActionNitro))
	assert.Equal(t, cfg.Nitro.Duration, s.Nitro.Active)
	assert.Zero(t, s.Nitro.Cooldown)
	assert.Equal(t, []EventKind{EventNitro}, kinds(e.DrainEvents()))
	assert.Equal(t, cfg.Nitro.Multiplier, e.NitroMultiplier())

	e.Update(dt, press(core.ActionNitro))
	assert.InDelta(t, cfg.Nitro.Duration-dt, s.Nitro.Active, 1e-12, "re-press while active does not refresh")

	for i := 0; i < 200 && s.Nitro.Active > 0; i++ {
		e.Update(dt, idle())
		require.False(t, s.Nitro.Active > 0 && s.Nitro.Cooldown > 0)
	}
	require.Zero(t, s.Nitro.Active)
	assert.Equal(t, cfg.Nitro.Cooldown, s.Nitro.Cooldown)
	assert.Equal(t, 1.0, e.NitroMultiplier())

	e.Update(dt, press(core.ActionNitro))
	assert.Zero(t, s.Nitro.Active, "press during cooldown is ignored")
	assert.NotContains(t, kinds(e.DrainEvents()), EventNitro)

	for i := 0; i < 400 && s.Nitro.Cooldown > 0; i++ {
		e.Update(dt, idle())
		require.False(t, s.Nitro.Active > 0 && s.Nitro.Cooldown > 0)
	}
	require.Zero(t, s.Nitro.Cooldown)

	e.Update(dt, press(core.ActionNitro))
	assert.Equal(t, cfg.Nitro.Duration, s.Nitro.Active)
}

func TestNitroBoostsPlayerSpeed(t *testing.T) {
	e := startedEngine(t)
	in := steer(0, 1)
	in.Set(core.ActionNitro)

	e.Update(dt, in)

	assert.InDelta(t, 210*1.85, e.State().Player.VY, 1e-9)
	assert.Equal(t, 0.26, e.Shake().Amount)
}

func TestUpdateIsDeterministic(t *testing.T) {
	run := func() []byte {
		e := NewEngine(config.DefaultRoadRageConfig(), rand.New(rand.NewSource(42)))
		e.Update(dt, press(core.ActionRight))
		e.Update(dt, press(core.ActionConfirm))
		for range 30 {
			e.Update(dt, steer(0, 1))
		}
		e.Update(dt, press(core.ActionNitro))
		for range 45 {
			e.Update(dt, steer(1, 0))
		}
		out, err := e.Dump(Presentation{Renderer: "test"})
		require.NoError(t, err)
		return out
	}

	assert.Equal(t, string(run()), string(run()))
}

func TestShakeDecays(t *testing.T) {
	var s Shake
	s.hit()
	assert.Equal(t, 1.0, s.Amount)

	s.decay(0.1)
	assert.InDelta(t, 0.5, s.Amount, 1e-12)

	s.decay(0.2)
	assert.Zero(t, s.Amount)

	s.kick(0.32, 0.08)
	s.kick(0.1, 0.01)
	assert.Equal(t, 0.32, s.Amount)
	assert.Equal(t, 0.08, s.Time)
}

func TestEventKindString(t *testing.T) {
	assert.Equal(t, "level_up", EventLevelUp.String())
	assert.Equal(t, "unknown", EventKind(99).String())
}
