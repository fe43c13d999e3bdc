package arena

import (
	"github.com/vovakirdan/roadrage/internal/config"
	"github.com/vovakirdan/roadrage/internal/core"
)

// Input is what the engine needs from an input source: a steering axis
// clamped to the unit disk and edge-triggered actions.
type Input interface {
	Axis() (x, y float64)
	Consume(a core.Action) bool
}

// Engine owns the live State and advances it one fixed step at a time.
// It never schedules itself; a driver calls Update zero or more times per
// rendered frame with a constant dt.
type Engine struct {
	cfg  config.RoadRageConfig
	grid Grid
	rng  Rand

	elapsed         float64
	shake           Shake
	selectedHazards int // starting hazard count chosen in the menu
	hazardCount     int // hazards on the current level

	state  *State
	events []Event
}

// NewEngine creates an engine in menu mode.
func NewEngine(cfg config.RoadRageConfig, rng Rand) *Engine {
	e := &Engine{
		cfg:  cfg,
		grid: NewGrid(cfg.World.Width, cfg.World.Height, cfg.World.Cell),
		rng:  rng,
	}
	e.selectedHazards = cfg.ClampHazardCount(cfg.Hazards.StartCount)
	e.hazardCount = e.selectedHazards
	e.state = newState(cfg, e.grid, rng, ModeMenu, 1, cfg.Player.Lives, e.hazardCount)
	return e
}

// Config returns the configuration the engine was built with.
func (e *Engine) Config() config.RoadRageConfig { return e.cfg }

// Grid returns the arena grid.
func (e *Engine) Grid() Grid { return e.grid }

// State returns the live snapshot. Callers must treat it as read-only.
func (e *Engine) State() *State { return e.state }

// Elapsed returns simulated seconds since the engine was created.
func (e *Engine) Elapsed() float64 { return e.elapsed }

// Shake returns the current screen-shake request.
func (e *Engine) Shake() Shake { return e.shake }

// SelectedHazards returns the starting hazard count for the next run.
func (e *Engine) SelectedHazards() int { return e.selectedHazards }

// SetSelectedHazards sets the starting hazard count, clamped to the
// configured selectable range. Returns the applied value.
func (e *Engine) SetSelectedHazards(n int) int {
	e.selectedHazards = e.cfg.ClampHazardCount(n)
	return e.selectedHazards
}

// DrainEvents returns queued events and clears the queue.
func (e *Engine) DrainEvents() []Event {
	out := e.events
	e.events = nil
	return out
}

func (e *Engine) emit(ev Event) {
	ev.Level = e.state.Level
	ev.Lives = e.state.Lives
	e.events = append(e.events, ev)
}

// Start begins a new run at level 1 with the selected hazard count.
func (e *Engine) Start() {
	e.hazardCount = e.selectedHazards
	e.state = newState(e.cfg, e.grid, e.rng, ModePlaying, 1, e.cfg.Player.Lives, e.hazardCount)
	e.emit(Event{Kind: EventRunStart})
}

// Restart replaces the current run with a fresh one.
func (e *Engine) Restart() {
	e.Start()
}

// advanceLevel builds the next board: one more hazard, lives carried over.
func (e *Engine) advanceLevel() {
	lives := e.state.Lives
	level := e.state.Level + 1
	e.hazardCount++
	e.state = newState(e.cfg, e.grid, e.rng, ModePlaying, level, lives, e.hazardCount)
	e.emit(Event{Kind: EventLevelUp})
}

// Update advances the simulation by one fixed step of dt seconds.
func (e *Engine) Update(dt float64, in Input) {
	e.elapsed += dt
	e.shake.decay(dt)

	switch e.state.Mode {
	case ModeMenu:
		if in.Consume(core.ActionLeft) {
			e.SetSelectedHazards(e.selectedHazards - 1)
		}
		if in.Consume(core.ActionRight) {
			e.SetSelectedHazards(e.selectedHazards + 1)
		}
		if in.Consume(core.ActionConfirm) {
			e.Start()
		}
		return
	case ModeLost:
		if in.Consume(core.ActionLeft) {
			e.SetSelectedHazards(e.selectedHazards - 1)
		}
		if in.Consume(core.ActionRight) {
			e.SetSelectedHazards(e.selectedHazards + 1)
		}
		if in.Consume(core.ActionConfirm) {
			e.Restart()
		}
		return
	}

	lives := e.state.Lives
	e.updateNitro(dt, in)
	e.updatePlayer(dt, in)
	if e.state.Mode != ModePlaying {
		return
	}
	e.updateHazards(dt)
	e.updateSparks(dt)
	e.updateSmoke(dt)
	e.detectDamage()
	if e.state.Mode != ModePlaying {
		return
	}

	// Invulnerability granted this step starts counting on the next one.
	p := e.state.Player
	if e.state.Lives == lives && p.Invuln > 0 {
		p.Invuln = max(0, p.Invuln-dt)
	}
}

// updateNitro advances the boost timers and handles the activation edge.
func (e *Engine) updateNitro(dt float64, in Input) {
	n := &e.state.Nitro
	if n.Active > 0 {
		n.Active = max(0, n.Active-dt)
		if n.Active == 0 && n.Cooldown <= 0 {
			n.Cooldown = e.cfg.Nitro.Cooldown
		}
	} else if n.Cooldown > 0 {
		n.Cooldown = max(0, n.Cooldown-dt)
	}

	if in.Consume(core.ActionNitro) {
		e.activateNitro()
	}
}

// activateNitro fires the boost unless it is running or cooling down.
func (e *Engine) activateNitro() bool {
	if e.state.Mode != ModePlaying {
		return false
	}
	n := &e.state.Nitro
	if n.Active > 0 || n.Cooldown > 0 {
		return false
	}
	n.Active = e.cfg.Nitro.Duration
	e.shake.kick(0.26, 0.1)
	e.emit(Event{Kind: EventNitro})
	return true
}

// NitroMultiplier returns the current speed multiplier from the boost.
func (e *Engine) NitroMultiplier() float64 {
	if e.state.Nitro.Active > 0 {
		return e.cfg.Nitro.Multiplier
	}
	return 1
}

// detectDamage costs a life when a hazard touches the player or the open
// trail. At most one life is lost per step.
func (e *Engine) detectDamage() {
	s := e.state
	p := s.Player

	if p.Invuln <= 0 {
		for _, h := range s.Hazards {
			if CirclesOverlap(h.X, h.Y, h.Radius, p.X, p.Y, p.Radius) {
				e.loseLife()
				return
			}
		}
	}

	if p.TrailActive {
		for _, h := range s.Hazards {
			if CircleIntersectsMask(s.Trail.Mask(), h.X, h.Y, h.Radius) {
				e.loseLife()
				return
			}
		}
	}
}

// loseLife clears the trail and either respawns the player or ends the run.
func (e *Engine) loseLife() {
	s := e.state
	s.Lives--
	s.Trail.Clear()
	s.Player.TrailActive = false
	e.shake.hit()

	if s.Lives <= 0 {
		s.Lives = 0
		s.Mode = ModeLost
		e.emit(Event{Kind: EventGameOver})
		return
	}

	e.resetPlayer()
	s.Player.Invuln = e.cfg.Player.InvulnSeconds
	e.emit(Event{Kind: EventLifeLost})
}

// resetPlayer puts the player back at the spawn point, at rest.
func (e *Engine) resetPlayer() {
	p := e.state.Player
	p.X, p.Y = spawnPoint(e.cfg)
	p.VX, p.VY = 0, 0
	p.Angle = 0
	p.TrailActive = false
}
