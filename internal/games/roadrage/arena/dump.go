package arena

import (
	"encoding/json"
	"math"
)

// CoordinateSystem describes the world axes used by every position in a dump.
const CoordinateSystem = "origin=top-left,+x=right,+y=down"

const dumpSparkSamples = 6

// Presentation carries frontend flags that are reported alongside the
// simulation snapshot but never influence it.
type Presentation struct {
	Renderer string `json:"renderer"`
	Sound    bool   `json:"sound"`
	Paused   bool   `json:"paused"`
}

type dumpPlayer struct {
	X           float64 `json:"x"`
	Y           float64 `json:"y"`
	VX          float64 `json:"vx"`
	VY          float64 `json:"vy"`
	Angle       float64 `json:"angle"`
	Lives       int     `json:"lives"`
	TrailActive bool    `json:"trailActive"`
	Invuln      float64 `json:"invuln"`
}

type dumpLevel struct {
	Number                      int `json:"number"`
	ActiveHazardCount           int `json:"activeHazardCount"`
	SelectedStartingHazardCount int `json:"selectedStartingHazardCount"`
}

type dumpHazard struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	VX     float64 `json:"vx"`
	VY     float64 `json:"vy"`
	Radius float64 `json:"radius"`
}

type dumpTerritory struct {
	ClaimedPercent       float64 `json:"claimedPercent"`
	ClaimedInteriorCells int     `json:"claimedInteriorCells"`
	ClaimedBounds        *Bounds `json:"claimedBounds"`
	TargetPercent        float64 `json:"targetPercent"`
	ActiveTrailCells     int     `json:"activeTrailCells"`
}

type dumpSpark struct {
	X    float64 `json:"x"`
	Y    float64 `json:"y"`
	Life float64 `json:"life"`
}

type dumpSparks struct {
	Count  int         `json:"count"`
	Sample []dumpSpark `json:"sample"`
}

type dumpSmoke struct {
	Count int `json:"count"`
}

type dumpNitro struct {
	ActiveSeconds   float64 `json:"activeSeconds"`
	CooldownSeconds float64 `json:"cooldownSeconds"`
	SpeedMultiplier float64 `json:"speedMultiplier"`
}

// Snapshot is the serialisable view of the engine used for debugging and
// headless runs. Floats are rounded so that equal states print equally.
type Snapshot struct {
	CoordinateSystem string        `json:"coordinateSystem"`
	Mode             Mode          `json:"mode"`
	Player           dumpPlayer    `json:"player"`
	Level            dumpLevel     `json:"level"`
	Hazards          []dumpHazard  `json:"hazards"`
	Hazard           *dumpHazard   `json:"hazard"`
	Territory        dumpTerritory `json:"territory"`
	Sparks           dumpSparks    `json:"sparks"`
	Smoke            dumpSmoke     `json:"smoke"`
	Presentation     Presentation  `json:"presentation"`
	Nitro            dumpNitro     `json:"nitro"`
}

func round(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}

// Snapshot builds the rounded view of the current state.
func (e *Engine) Snapshot(pres Presentation) Snapshot {
	s := e.state
	p := s.Player
	stats := ClaimedStats(s.Claimed)

	hazards := make([]dumpHazard, 0, len(s.Hazards))
	for _, h := range s.Hazards {
		hazards = append(hazards, dumpHazard{
			X:      round(h.X, 2),
			Y:      round(h.Y, 2),
			VX:     round(h.VX, 2),
			VY:     round(h.VY, 2),
			Radius: h.Radius,
		})
	}
	var first *dumpHazard
	if len(hazards) > 0 {
		h := hazards[0]
		first = &h
	}

	n := min(len(s.Sparks), dumpSparkSamples)
	sample := make([]dumpSpark, 0, n)
	for _, sp := range s.Sparks[:n] {
		sample = append(sample, dumpSpark{
			X:    round(sp.X, 1),
			Y:    round(sp.Y, 1),
			Life: round(sp.Life, 3),
		})
	}

	return Snapshot{
		CoordinateSystem: CoordinateSystem,
		Mode:             s.Mode,
		Player: dumpPlayer{
			X:           round(p.X, 2),
			Y:           round(p.Y, 2),
			VX:          round(p.VX, 2),
			VY:          round(p.VY, 2),
			Angle:       round(p.Angle, 3),
			Lives:       s.Lives,
			TrailActive: p.TrailActive,
			Invuln:      round(p.Invuln, 3),
		},
		Level: dumpLevel{
			Number:                      s.Level,
			ActiveHazardCount:           s.HazardCount(),
			SelectedStartingHazardCount: e.selectedHazards,
		},
		Hazards: hazards,
		Hazard:  first,
		Territory: dumpTerritory{
			ClaimedPercent:       round(s.ClaimedPercent, 4),
			ClaimedInteriorCells: stats.Claimed,
			ClaimedBounds:        stats.Bounds,
			TargetPercent:        e.cfg.Rules.WinClaimPercent,
			ActiveTrailCells:     s.Trail.Len(),
		},
		Sparks:       dumpSparks{Count: len(s.Sparks), Sample: sample},
		Smoke:        dumpSmoke{Count: len(s.Smoke)},
		Presentation: pres,
		Nitro: dumpNitro{
			ActiveSeconds:   round(s.Nitro.Active, 3),
			CooldownSeconds: round(s.Nitro.Cooldown, 3),
			SpeedMultiplier: e.NitroMultiplier(),
		},
	}
}

// Dump serialises the current state as indented JSON.
func (e *Engine) Dump(pres Presentation) ([]byte, error) {
	return json.MarshalIndent(e.Snapshot(pres), "", "  ")
}
