package arena

// EventKind identifies something noteworthy that happened during Update.
type EventKind int

const (
	EventRunStart EventKind = iota
	EventTrailStart
	EventClaim
	EventBounce
	EventNitro
	EventLifeLost
	EventGameOver
	EventLevelUp
)

// String returns a human-readable name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventRunStart:
		return "run_start"
	case EventTrailStart:
		return "trail_start"
	case EventClaim:
		return "claim"
	case EventBounce:
		return "bounce"
	case EventNitro:
		return "nitro"
	case EventLifeLost:
		return "life_lost"
	case EventGameOver:
		return "game_over"
	case EventLevelUp:
		return "level_up"
	default:
		return "unknown"
	}
}

// Event is queued by the engine for renderers and audio. The simulation
// never reads events back.
type Event struct {
	Kind  EventKind
	Level int // level at the time of the event
	Lives int // lives after the event
	Cells int // cells claimed (EventClaim only)
}

// Shake is the screen-shake effect requested by the simulation.
type Shake struct {
	Amount float64 // 0..1 intensity
	Time   float64 // seconds remaining
}

const shakeDecay = 0.2

// kick raises the shake to at least amount for at least duration seconds.
func (s *Shake) kick(amount, duration float64) {
	s.Amount = max(s.Amount, amount)
	s.Time = max(s.Time, duration)
}

// hit sets a full-strength shake, used on life loss.
func (s *Shake) hit() {
	s.Amount = 1
	s.Time = shakeDecay
}

// decay advances the shake timer.
func (s *Shake) decay(dt float64) {
	if s.Time <= 0 {
		return
	}
	s.Time -= dt
	if s.Time > 0 {
		s.Amount = s.Time / shakeDecay
	} else {
		s.Amount = 0
	}
}
