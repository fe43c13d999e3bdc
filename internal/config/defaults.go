package config

import (
	_ "embed"
)

//go:embed defaults/roadrage.yaml
var defaultRoadRageYAML []byte

// DefaultRoadRageConfig returns the built-in Road Rage configuration.
// It matches defaults/roadrage.yaml and is used when that fails to parse.
func DefaultRoadRageConfig() RoadRageConfig {
	return RoadRageConfig{
		World: RoadRageWorld{
			Cell:   8,
			Width:  960,
			Height: 640,
		},
		Player: RoadRagePlayer{
			Lives:         3,
			Speed:         210,
			Radius:        11,
			InvulnSeconds: 1.2,
		},
		Nitro: RoadRageNitro{
			Duration:   1.35,
			Multiplier: 1.85,
			Cooldown:   3.4,
		},
		Hazards: RoadRageHazards{
			StartCount:    1,
			MinSelectable: 1,
			MaxSelectable: 8,
			Radius:        19,
			SpikeCount:    14,
			InitialSpeed:  180,
			SpeedMin:      165,
			SpeedMax:      205,
		},
		Particles: RoadRageParticles{
			SparkRate: 72,
			MaxSparks: 760,
			SmokeRate: 32,
			MaxSmoke:  320,
		},
		Rules: RoadRageRules{
			WinClaimPercent: 0.75,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "roadrage":
		return defaultRoadRageYAML
	default:
		return nil
	}
}
