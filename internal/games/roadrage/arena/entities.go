package arena

import (
	"math"

	"github.com/vovakirdan/roadrage/internal/config"
)

// Rand is the random source threaded through every spawn. *rand.Rand
// satisfies it; tests substitute a seeded one for replay.
type Rand interface {
	Float64() float64
}

// randomRange returns a uniform value in [lo, hi).
func randomRange(rng Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}

// jitter returns a uniform value in [-spread/2, spread/2).
func jitter(rng Rand, spread float64) float64 {
	return (rng.Float64() - 0.5) * spread
}

// Player is the vehicle laying trails.
type Player struct {
	X, Y        float64
	VX, VY      float64
	Angle       float64
	Speed       float64
	Radius      float64
	Invuln      float64 // seconds of remaining invulnerability, never negative
	TrailActive bool
}

// NewPlayer creates a player at rest at (x, y).
func NewPlayer(cfg config.RoadRagePlayer, x, y float64) *Player {
	return &Player{
		X:      x,
		Y:      y,
		Speed:  cfg.Speed,
		Radius: cfg.Radius,
	}
}

// Hazard is a bouncing spike ball that patrols unclaimed ground.
type Hazard struct {
	X, Y        float64
	VX, VY      float64
	Radius      float64
	SpikeCount  int
	Spin        float64
	FirePhase   float64
	SparkBudget float64
	SmokeBudget float64
}

// NewHazard creates a hazard at (x, y) heading in a random direction.
func NewHazard(cfg config.RoadRageHazards, rng Rand, x, y float64) *Hazard {
	angle := rng.Float64() * math.Pi * 2
	return &Hazard{
		X:          x,
		Y:          y,
		VX:         math.Cos(angle) * cfg.InitialSpeed,
		VY:         math.Sin(angle) * cfg.InitialSpeed,
		Radius:     cfg.Radius,
		SpikeCount: cfg.SpikeCount,
	}
}

// Speed returns the hazard's velocity magnitude.
func (h *Hazard) Speed() float64 {
	return math.Hypot(h.VX, h.VY)
}

// Heading returns the direction of travel in radians.
func (h *Hazard) Heading() float64 {
	return math.Atan2(h.VY, h.VX)
}

// BuildHazardWave places count hazards around the arena centre: a single
// hazard sits at the centre, more are spread on a ring.
func BuildHazardWave(cfg config.RoadRageConfig, rng Rand, count int) []*Hazard {
	count = max(1, count)
	w, h, cell := cfg.World.Width, cfg.World.Height, cfg.World.Cell
	cx, cy := w*0.5, h*0.5
	ringRadius := math.Min(w, h) * 0.18

	hazards := make([]*Hazard, 0, count)
	for i := range count {
		t, spread := 0.0, 0.0
		if count > 1 {
			t = float64(i) / float64(count)
			spread = ringRadius
		}
		angle := t*math.Pi*2 + randomRange(rng, -0.18, 0.18)
		x := clamp(cx+math.Cos(angle)*spread, cell*4, w-cell*4)
		y := clamp(cy+math.Sin(angle)*spread, cell*4, h-cell*4)
		hazards = append(hazards, NewHazard(cfg.Hazards, rng, x, y))
	}
	return hazards
}

// Spark is a short-lived ember thrown off a hazard.
type Spark struct {
	X, Y         float64
	PrevX, PrevY float64
	VX, VY       float64
	Life         float64
	MaxLife      float64
	Size         float64
	Glow         float64
	Drag         float64
	Heat         float64
	Flicker      float64
	BounceLoss   float64
}

// NewSpark creates a spark travelling roughly along baseAngle.
func NewSpark(rng Rand, x, y, baseAngle, speedScale float64) Spark {
	angle := baseAngle + jitter(rng, 0.7)
	speed := (90 + rng.Float64()*160) * speedScale
	return Spark{
		X:          x,
		Y:          y,
		PrevX:      x,
		PrevY:      y,
		VX:         math.Cos(angle) * speed,
		VY:         math.Sin(angle)*speed - 35,
		MaxLife:    0.55 + rng.Float64()*0.65,
		Size:       0.9 + rng.Float64()*1.8,
		Glow:       0.78 + rng.Float64()*0.42,
		Drag:       0.962 + rng.Float64()*0.024,
		Heat:       0.68 + rng.Float64()*0.32,
		Flicker:    rng.Float64() * math.Pi * 2,
		BounceLoss: 0.48 + rng.Float64()*0.2,
	}
}

// Smoke is a buoyant, growing puff.
type Smoke struct {
	X, Y         float64
	PrevX, PrevY float64
	VX, VY       float64
	Life         float64
	MaxLife      float64
	Size         float64
	Density      float64
	Hotness      float64
	Turbulence   float64
	Buoyancy     float64
}

// NewSmoke creates a smoke puff drifting roughly along baseAngle.
func NewSmoke(rng Rand, x, y, baseAngle, speedScale, hotness float64) Smoke {
	angle := baseAngle + jitter(rng, 0.9)
	speed := (14 + rng.Float64()*52) * speedScale
	return Smoke{
		X:          x,
		Y:          y,
		PrevX:      x,
		PrevY:      y,
		VX:         math.Cos(angle) * speed,
		VY:         math.Sin(angle)*speed - 12,
		MaxLife:    0.9 + rng.Float64()*1.3,
		Size:       2.8 + rng.Float64()*5.2 + hotness*1.6,
		Density:    0.18 + rng.Float64()*0.3 + hotness*0.2,
		Hotness:    hotness,
		Turbulence: rng.Float64() * math.Pi * 2,
		Buoyancy:   0.7 + rng.Float64()*0.8,
	}
}
