package arena

import "math"

// updatePlayer moves the player and drives the trail state machine:
// idle on claimed ground, laying a trail across open ground, then either
// committing on reaching claimed ground or losing a life on crossing the
// open trail.
func (e *Engine) updatePlayer(dt float64, in Input) {
	s := e.state
	p := s.Player
	ax, ay := in.Axis()
	moving := ax != 0 || ay != 0

	boost := e.NitroMultiplier()
	p.VX = ax * p.Speed * boost
	p.VY = ay * p.Speed * boost
	if moving {
		p.Angle = math.Atan2(ay, ax)
	}

	oldX, oldY := p.X, p.Y
	pad := e.cfg.World.Cell * 0.5
	nextX := clamp(p.X+p.VX*dt, pad, e.cfg.World.Width-pad)
	nextY := clamp(p.Y+p.VY*dt, pad, e.cfg.World.Height-pad)

	idx := e.grid.CellAt(nextX, nextY)
	cur := e.grid.CellAt(p.X, p.Y)
	destClaimed := s.Claimed.At(idx)

	if !p.TrailActive {
		switch {
		case destClaimed:
			p.X, p.Y = nextX, nextY
		case s.Claimed.At(cur) && moving:
			p.TrailActive = true
			p.X, p.Y = nextX, nextY
			s.Trail.Record(idx)
			e.emit(Event{Kind: EventTrailStart})
		}
		return
	}

	p.X, p.Y = nextX, nextY

	if destClaimed {
		p.TrailActive = false
		e.closeTrailAndClaim()
		return
	}

	// Grinding against the world edge while trailing counts as a crash.
	if moving && p.X == oldX && p.Y == oldY {
		e.loseLife()
		return
	}

	if s.Trail.Contains(idx) {
		if last, _ := s.Trail.Last(); last != idx {
			e.loseLife()
		}
		return
	}

	s.Trail.Record(idx)
}

// closeTrailAndClaim commits the open trail, claims every pocket the
// hazards can no longer reach, and advances the level once the claimed
// share reaches the target.
func (e *Engine) closeTrailAndClaim() {
	s := e.state
	if s.Trail.Len() < 2 {
		s.Trail.Clear()
		return
	}

	added := s.Trail.CommitTo(s.Claimed)
	added += ResolveEnclosures(s.Claimed, s.Hazards)
	s.ClaimedPercent = ClaimedPercent(s.Claimed)
	RelocateTrappedHazards(s.Claimed, s.Hazards)
	e.emit(Event{Kind: EventClaim, Cells: added})

	if s.ClaimedPercent >= e.cfg.Rules.WinClaimPercent {
		e.advanceLevel()
	}
}
