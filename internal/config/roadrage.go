package config

import (
	"errors"
	"fmt"
)

// RoadRageConfig contains all configuration for Road Rage: Wasteland Claim.
// Loaded once per run and treated as immutable afterwards.
type RoadRageConfig struct {
	World     RoadRageWorld     `yaml:"world"`
	Player    RoadRagePlayer    `yaml:"player"`
	Nitro     RoadRageNitro     `yaml:"nitro"`
	Hazards   RoadRageHazards   `yaml:"hazards"`
	Particles RoadRageParticles `yaml:"particles"`
	Rules     RoadRageRules     `yaml:"rules"`
}

// RoadRageWorld defines the arena dimensions in world units.
type RoadRageWorld struct {
	Cell   float64 `yaml:"cell"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// RoadRagePlayer defines the player's vehicle.
type RoadRagePlayer struct {
	Lives         int     `yaml:"lives"`
	Speed         float64 `yaml:"speed"`
	Radius        float64 `yaml:"radius"`
	InvulnSeconds float64 `yaml:"invuln_seconds"`
}

// RoadRageNitro defines the temporary speed boost.
type RoadRageNitro struct {
	Duration   float64 `yaml:"duration"`
	Multiplier float64 `yaml:"multiplier"`
	Cooldown   float64 `yaml:"cooldown"`
}

// RoadRageHazards defines the bouncing spike-ball hazards.
type RoadRageHazards struct {
	StartCount    int     `yaml:"start_count"`
	MinSelectable int     `yaml:"min_selectable"`
	MaxSelectable int     `yaml:"max_selectable"`
	Radius        float64 `yaml:"radius"`
	SpikeCount    int     `yaml:"spike_count"`
	InitialSpeed  float64 `yaml:"initial_speed"`
	SpeedMin      float64 `yaml:"speed_min"`
	SpeedMax      float64 `yaml:"speed_max"`
}

// RoadRageParticles defines spark and smoke emission.
type RoadRageParticles struct {
	SparkRate float64 `yaml:"spark_rate"`
	MaxSparks int     `yaml:"max_sparks"`
	SmokeRate float64 `yaml:"smoke_rate"`
	MaxSmoke  int     `yaml:"max_smoke"`
}

// RoadRageRules defines level completion.
type RoadRageRules struct {
	WinClaimPercent float64 `yaml:"win_claim_percent"`
}

// ClampHazardCount restricts a starting hazard count to the selectable range.
func (c RoadRageConfig) ClampHazardCount(n int) int {
	return max(c.Hazards.MinSelectable, min(c.Hazards.MaxSelectable, n))
}

// Validate checks the configuration and reports every invalid field.
func (c RoadRageConfig) Validate() error {
	var errs []error

	if c.World.Cell <= 0 {
		errs = append(errs, fmt.Errorf("world.cell must be positive, got %v", c.World.Cell))
	} else if c.World.Width < 3*c.World.Cell || c.World.Height < 3*c.World.Cell {
		errs = append(errs, fmt.Errorf("world must be at least 3x3 cells, got %vx%v with cell %v",
			c.World.Width, c.World.Height, c.World.Cell))
	}

	if c.Player.Lives < 1 {
		errs = append(errs, fmt.Errorf("player.lives must be at least 1, got %d", c.Player.Lives))
	}
	if c.Player.Speed <= 0 {
		errs = append(errs, fmt.Errorf("player.speed must be positive, got %v", c.Player.Speed))
	}
	if c.Player.Radius <= 0 {
		errs = append(errs, fmt.Errorf("player.radius must be positive, got %v", c.Player.Radius))
	}
	if c.Player.InvulnSeconds < 0 {
		errs = append(errs, fmt.Errorf("player.invuln_seconds must not be negative, got %v", c.Player.InvulnSeconds))
	}

	if c.Nitro.Duration < 0 || c.Nitro.Cooldown < 0 {
		errs = append(errs, errors.New("nitro.duration and nitro.cooldown must not be negative"))
	}
	if c.Nitro.Multiplier < 1 {
		errs = append(errs, fmt.Errorf("nitro.multiplier must be at least 1, got %v", c.Nitro.Multiplier))
	}

	if c.Hazards.MinSelectable < 1 || c.Hazards.MaxSelectable < c.Hazards.MinSelectable {
		errs = append(errs, fmt.Errorf("hazards selectable range [%d, %d] is invalid",
			c.Hazards.MinSelectable, c.Hazards.MaxSelectable))
	}
	if c.Hazards.Radius <= 0 {
		errs = append(errs, fmt.Errorf("hazards.radius must be positive, got %v", c.Hazards.Radius))
	}
	if c.Hazards.SpeedMin <= 0 || c.Hazards.SpeedMax < c.Hazards.SpeedMin {
		errs = append(errs, fmt.Errorf("hazards speed range [%v, %v] is invalid",
			c.Hazards.SpeedMin, c.Hazards.SpeedMax))
	}

	if c.Particles.SparkRate < 0 || c.Particles.SmokeRate < 0 {
		errs = append(errs, errors.New("particle rates must not be negative"))
	}
	if c.Particles.MaxSparks < 0 || c.Particles.MaxSmoke < 0 {
		errs = append(errs, errors.New("particle pool sizes must not be negative"))
	}

	if c.Rules.WinClaimPercent <= 0 || c.Rules.WinClaimPercent > 1 {
		errs = append(errs, fmt.Errorf("rules.win_claim_percent must be in (0, 1], got %v", c.Rules.WinClaimPercent))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: invalid roadrage config: %w", errors.Join(errs...))
	}
	return nil
}
