package arena

import "math"

// Hazard animation rates in radians per second.
const (
	hazardSpinRate = 2.2
	hazardFireRate = 4.5
)

// NormalizeHazardSpeed rescales the hazard's velocity into [lo, hi] while
// keeping its heading. Velocities already in range are untouched.
func NormalizeHazardSpeed(h *Hazard, lo, hi float64) {
	speed := h.Speed()
	if speed >= lo && speed <= hi {
		return
	}
	angle := h.Heading()
	next := clamp(speed, lo, hi)
	h.VX = math.Cos(angle) * next
	h.VY = math.Sin(angle) * next
}

// updateHazards moves every hazard, bouncing off claimed territory, and
// feeds their exhaust into the particle pools.
func (e *Engine) updateHazards(dt float64) {
	s := e.state
	for _, h := range s.Hazards {
		h.Spin += dt * hazardSpinRate
		h.FirePhase += dt * hazardFireRate

		bounced := false

		// Axes are resolved independently so a corner hit reflects both.
		trialX := h.X + h.VX*dt
		if CircleIntersectsMask(s.Claimed, trialX, h.Y, h.Radius) {
			h.VX = -h.VX
			bounced = true
		} else {
			h.X = trialX
		}

		trialY := h.Y + h.VY*dt
		if CircleIntersectsMask(s.Claimed, h.X, trialY, h.Radius) {
			h.VY = -h.VY
			bounced = true
		} else {
			h.Y = trialY
		}

		if bounced {
			boost := randomRange(e.rng, 0.96, 1.05)
			h.VX *= boost
			h.VY *= boost
			e.shake.kick(0.32, 0.08)
			e.emit(Event{Kind: EventBounce})
		}

		NormalizeHazardSpeed(h, e.cfg.Hazards.SpeedMin, e.cfg.Hazards.SpeedMax)

		e.emitSparks(h, dt)
		e.emitSmoke(h, dt)
	}
}

// emitSparks drains the hazard's spark budget, one spark per whole unit.
// Units that arrive while the pool is full are dropped.
func (e *Engine) emitSparks(h *Hazard, dt float64) {
	s := e.state
	h.SparkBudget += e.cfg.Particles.SparkRate * dt
	for h.SparkBudget >= 1 {
		h.SparkBudget--
		if len(s.Sparks) >= e.cfg.Particles.MaxSparks {
			continue
		}
		angle := h.Heading() + math.Pi + jitter(e.rng, 1.5)
		distance := h.Radius * (0.6 + e.rng.Float64()*0.6)
		s.Sparks = append(s.Sparks, NewSpark(
			e.rng,
			h.X+math.Cos(angle)*distance,
			h.Y+math.Sin(angle)*distance,
			angle,
			0.85+e.rng.Float64()*0.7,
		))
	}
}

// emitSmoke drains the smoke budget; faster hazards smoke more.
func (e *Engine) emitSmoke(h *Hazard, dt float64) {
	s := e.state
	speedRatio := clamp(h.Speed()/e.cfg.Hazards.SpeedMax, 0.5, 1.25)
	h.SmokeBudget += e.cfg.Particles.SmokeRate * dt * speedRatio
	for h.SmokeBudget >= 1 {
		h.SmokeBudget--
		if len(s.Smoke) >= e.cfg.Particles.MaxSmoke {
			continue
		}
		tailAngle := h.Heading() + math.Pi + jitter(e.rng, 1.2)
		tailRadius := h.Radius + 4 + e.rng.Float64()*8
		hotness := 0.65 + e.rng.Float64()*0.45
		s.Smoke = append(s.Smoke, NewSmoke(
			e.rng,
			h.X+math.Cos(tailAngle)*tailRadius,
			h.Y+math.Sin(tailAngle)*tailRadius,
			tailAngle,
			0.65+e.rng.Float64()*0.6,
			hotness,
		))
	}
}
