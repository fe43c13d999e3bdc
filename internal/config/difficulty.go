package config

import (
	"fmt"
	"strings"
)

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// DifficultyPresets lists the accepted preset names in menu order.
func DifficultyPresets() []DifficultyPreset {
	return []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard}
}

// ParseDifficulty converts a user-supplied name to a preset.
// The empty string selects normal.
func ParseDifficulty(name string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(strings.ToLower(strings.TrimSpace(name))); p {
	case "":
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return p, nil
	default:
		return "", fmt.Errorf("unknown difficulty %q (want easy, normal or hard)", name)
	}
}

// presetTuning is how a preset shifts the loaded configuration.
type presetTuning struct {
	lives      int     // absolute lives, 0 keeps the configured value
	speedScale float64 // applied to every hazard speed
	extraStart int     // added to the starting hazard count
}

var presetTunings = map[DifficultyPreset]presetTuning{
	DifficultyEasy:   {lives: 5, speedScale: 0.85},
	DifficultyNormal: {speedScale: 1},
	DifficultyHard:   {lives: 2, speedScale: 1.15, extraStart: 1},
}

// ApplyRoadRagePreset modifies the config based on a difficulty preset.
// Unknown presets leave the config untouched.
func ApplyRoadRagePreset(cfg *RoadRageConfig, preset DifficultyPreset) {
	tuning, ok := presetTunings[preset]
	if !ok {
		return
	}
	if tuning.lives > 0 {
		cfg.Player.Lives = tuning.lives
	}
	cfg.Hazards.InitialSpeed *= tuning.speedScale
	cfg.Hazards.SpeedMin *= tuning.speedScale
	cfg.Hazards.SpeedMax *= tuning.speedScale
	cfg.Hazards.StartCount = cfg.ClampHazardCount(cfg.Hazards.StartCount + tuning.extraStart)
}
