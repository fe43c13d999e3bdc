package arena

import "github.com/vovakirdan/roadrage/internal/config"

// Mode is the top-level game mode.
type Mode string

const (
	ModeMenu    Mode = "menu"
	ModePlaying Mode = "playing"
	ModeLost    Mode = "lost"
)

// Nitro tracks the boost timers. At most one of them is positive.
type Nitro struct {
	Active   float64 // seconds of boost remaining
	Cooldown float64 // seconds until the boost can fire again
}

// State is the single live snapshot of a run. It is replaced wholesale on
// run start, level advance and restart; nothing in it is shared with a
// previous snapshot.
type State struct {
	Mode           Mode
	Level          int
	Lives          int
	Nitro          Nitro
	Claimed        *BoolMask
	ClaimedPercent float64
	Player         *Player
	Hazards        []*Hazard
	Sparks         []Spark
	Smoke          []Smoke
	Trail          *Trail
}

// HazardCount returns the number of active hazards.
func (s *State) HazardCount() int {
	return len(s.Hazards)
}

// spawnPoint is where the player enters the arena: top border, centred.
func spawnPoint(cfg config.RoadRageConfig) (x, y float64) {
	return cfg.World.Width * 0.5, cfg.World.Cell * 0.5
}

// newState builds a fresh board.
func newState(cfg config.RoadRageConfig, grid Grid, rng Rand, mode Mode, level, lives, hazards int) *State {
	claimed := NewClaimedMask(grid)
	px, py := spawnPoint(cfg)
	return &State{
		Mode:           mode,
		Level:          level,
		Lives:          lives,
		Claimed:        claimed,
		ClaimedPercent: ClaimedPercent(claimed),
		Player:         NewPlayer(cfg.Player, px, py),
		Hazards:        BuildHazardWave(cfg, rng, hazards),
		Sparks:         make([]Spark, 0, cfg.Particles.MaxSparks),
		Smoke:          make([]Smoke, 0, cfg.Particles.MaxSmoke),
		Trail:          NewTrail(grid),
	}
}
