package arena

import "math"

// Margins past the arena edge before a particle is culled.
const (
	sparkCullMargin = 20
	smokeCullMargin = 40
)

// Chance that a bouncing spark leaves a smoke puff at the impact point.
const sparkImpactSmokeChance = 0.35

// outside reports whether (x, y) lies beyond the arena by more than margin.
func (e *Engine) outside(x, y, margin float64) bool {
	w, h := e.cfg.World.Width, e.cfg.World.Height
	return x < -margin || y < -margin || x > w+margin || y > h+margin
}

// updateSparks advances sparks and compacts the pool in place.
func (e *Engine) updateSparks(dt float64) {
	s := e.state
	sparks := s.Sparks
	t := e.elapsed
	alive := 0

	for i := range sparks {
		sp := sparks[i]
		sp.Life += dt
		if sp.Life >= sp.MaxLife {
			continue
		}

		sp.PrevX, sp.PrevY = sp.X, sp.Y
		sp.VX *= sp.Drag
		sp.VY *= sp.Drag
		sp.VY += 28 * dt
		sp.VY += math.Sin((t*11+sp.Flicker+float64(i)*0.07)*1.4) * 13 * dt
		sp.VX += math.Cos(t*7+sp.Flicker) * 6 * dt

		nextX := sp.X + sp.VX*dt
		nextY := sp.Y + sp.VY*dt
		hit := false

		if CircleIntersectsMask(s.Claimed, nextX, sp.Y, sp.Size) {
			sp.VX *= -sp.BounceLoss
			sp.VY *= 0.95
			sp.Heat = math.Max(0.2, sp.Heat*0.9)
			hit = true
		} else {
			sp.X = nextX
		}

		if CircleIntersectsMask(s.Claimed, sp.X, nextY, sp.Size) {
			sp.VY *= -sp.BounceLoss * 0.92
			sp.VX *= 0.95
			sp.Heat = math.Max(0.2, sp.Heat*0.88)
			hit = true
		} else {
			sp.Y = nextY
		}

		if e.outside(sp.X, sp.Y, sparkCullMargin) {
			continue
		}

		lifeRatio := sp.Life / sp.MaxLife
		sp.Heat = math.Max(0.12, sp.Heat-dt*0.22-lifeRatio*0.04)

		if hit && e.rng.Float64() < sparkImpactSmokeChance && len(s.Smoke) < e.cfg.Particles.MaxSmoke {
			impact := math.Atan2(-sp.VY, -sp.VX)
			s.Smoke = append(s.Smoke, NewSmoke(
				e.rng,
				sp.X,
				sp.Y,
				impact+jitter(e.rng, 1.3),
				0.4+e.rng.Float64()*0.45,
				0.35+sp.Heat*0.45,
			))
		}

		sparks[alive] = sp
		alive++
	}
	s.Sparks = sparks[:alive]
}

// updateSmoke advances smoke puffs and compacts the pool in place.
func (e *Engine) updateSmoke(dt float64) {
	s := e.state
	smoke := s.Smoke
	t := e.elapsed
	alive := 0

	for i := range smoke {
		p := smoke[i]
		p.Life += dt
		if p.Life >= p.MaxLife {
			continue
		}

		p.PrevX, p.PrevY = p.X, p.Y
		p.VX *= 0.982
		p.VY *= 0.982
		p.VY -= (8 + p.Buoyancy*7) * dt
		p.VX += math.Sin(t*5.3+p.Turbulence) * 5.5 * dt
		p.VY += math.Cos(t*4.7+p.Turbulence) * 2.5 * dt

		p.X += p.VX * dt
		p.Y += p.VY * dt
		p.Size += dt * (8 + p.Hotness*8)

		if e.outside(p.X, p.Y, smokeCullMargin) {
			continue
		}

		smoke[alive] = p
		alive++
	}
	s.Smoke = smoke[:alive]
}
