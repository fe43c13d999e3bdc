// Package roadrage adapts the arena simulation to the platform: it loads
// configuration, owns the random source, renders to a character screen and
// turns simulation events into log lines and sound cues.
package roadrage

import (
	"io"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/roadrage/internal/config"
	"github.com/vovakirdan/roadrage/internal/core"
	"github.com/vovakirdan/roadrage/internal/games/roadrage/arena"
	"github.com/vovakirdan/roadrage/internal/registry"
)

// ID is the registry identifier.
const ID = "roadrage"

// Game implements registry.Game for Road Rage: Wasteland Claim.
type Game struct {
	cfg    config.RoadRageConfig
	engine *arena.Engine
	rng    *rand.Rand

	tick    uint64
	screenW int
	screenH int
	paused  bool

	cues []string
}

// Package-level settings applied on the next Reset.
var (
	configPath       string
	difficultyPreset string
	startingHazards  int
	soundEnabled     bool
	logger           = log.New(io.Discard)
)

// SetConfigPath sets a custom config file path.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset (easy, normal, hard).
func SetDifficultyPreset(preset string) {
	difficultyPreset = preset
}

// SetStartingHazards preselects the menu hazard count. 0 keeps the configured default.
func SetStartingHazards(n int) {
	startingHazards = n
}

// SetSoundEnabled records whether the frontend plays audio; it is reported
// in debug dumps.
func SetSoundEnabled(on bool) {
	soundEnabled = on
}

// SetLogger routes game logs to l. A nil logger silences them.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	logger = l
}

// New creates a Road Rage game. Call Reset before use.
func New() *Game {
	return &Game{}
}

func init() {
	registry.Register(ID, func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return ID
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Road Rage: Wasteland Claim"
}

// LoadConfig resolves the effective configuration from the package settings.
// Load failures fall back to the built-in defaults and are returned so the
// caller can report them.
func LoadConfig() (config.RoadRageConfig, error) {
	cfg, err := config.LoadRoadRage(configPath)
	if err != nil {
		cfg = config.DefaultRoadRageConfig()
	}

	preset, perr := config.ParseDifficulty(difficultyPreset)
	if perr != nil {
		if err == nil {
			err = perr
		}
		preset = config.DifficultyNormal
	}
	config.ApplyRoadRagePreset(&cfg, preset)
	return cfg, err
}

// Reset initializes the game into the start menu.
func (g *Game) Reset(rc core.RuntimeConfig) {
	cfg, err := LoadConfig()
	if err != nil {
		logger.Warn("using default configuration", "err", err)
	}

	g.cfg = cfg
	g.rng = rand.New(rand.NewSource(rc.Seed))
	g.engine = arena.NewEngine(cfg, g.rng)
	if startingHazards > 0 {
		g.engine.SetSelectedHazards(startingHazards)
	}
	g.tick = 0
	g.paused = false
	g.cues = g.cues[:0]
	g.screenW = rc.ScreenW
	g.screenH = rc.ScreenH

	logger.Debug("reset", "seed", rc.Seed, "hazards", g.engine.SelectedHazards(),
		"world", cfg.World, "difficulty", difficultyPreset)
}

// Engine exposes the simulation for headless drivers and tests.
func (g *Game) Engine() *arena.Engine {
	return g.engine
}

// Step advances the simulation by one fixed step.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	mode := g.engine.State().Mode

	if in.Consume(core.ActionPause) && mode == arena.ModePlaying {
		g.paused = !g.paused
		logger.Debug("pause toggled", "paused", g.paused)
	}
	if in.Consume(core.ActionRestart) && mode == arena.ModeLost {
		in.Set(core.ActionConfirm)
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.tick++
	g.engine.Update(core.FixedStep, &in)
	g.handleEvents(g.engine.DrainEvents())

	return core.StepResult{State: g.State(), Steps: 1}
}

// handleEvents logs noteworthy events and queues their sound cues.
func (g *Game) handleEvents(events []arena.Event) {
	for _, ev := range events {
		g.cues = append(g.cues, ev.Kind.String())

		switch ev.Kind {
		case arena.EventRunStart:
			logger.Info("run started", "hazards", g.engine.State().HazardCount(), "lives", ev.Lives)
		case arena.EventLevelUp:
			logger.Info("level cleared", "level", ev.Level, "lives", ev.Lives,
				"hazards", g.engine.State().HazardCount())
		case arena.EventLifeLost:
			logger.Info("life lost", "level", ev.Level, "lives", ev.Lives)
		case arena.EventGameOver:
			logger.Info("game over", "level", ev.Level,
				"claimed", g.engine.State().ClaimedPercent, "tick", g.tick)
		case arena.EventClaim:
			logger.Debug("territory claimed", "cells", ev.Cells,
				"claimed", g.engine.State().ClaimedPercent)
		case arena.EventNitro:
			logger.Debug("nitro", "tick", g.tick)
		}
	}
}

// DrainCues returns the sound cues queued since the last call.
func (g *Game) DrainCues() []string {
	out := g.cues
	g.cues = nil
	return out
}

// Dump serialises the simulation for debugging.
func (g *Game) Dump() ([]byte, error) {
	return g.engine.Dump(arena.Presentation{
		Renderer: "terminal",
		Sound:    soundEnabled,
		Paused:   g.paused,
	})
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	s := g.engine.State()
	return core.GameState{
		Score:    int(s.ClaimedPercent * 100),
		Level:    s.Level,
		Lives:    s.Lives,
		GameOver: s.Mode == arena.ModeLost,
		Paused:   g.paused,
	}
}
