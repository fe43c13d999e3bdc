package core

// Fixed simulation timing shared by every frontend.
const (
	FixedStep   = 1.0 / 60.0
	MaxFrameDT  = 0.1
	maxCatchUps = 8 // MaxFrameDT worth of steps, plus rounding slack
)

// StepClock turns variable wall-clock frame times into a whole number of
// fixed simulation steps. Leftover time carries over to the next frame.
type StepClock struct {
	step  float64
	accum float64
}

// NewStepClock creates a clock that emits steps of the given size.
// A non-positive step falls back to FixedStep.
func NewStepClock(step float64) *StepClock {
	if step <= 0 {
		step = FixedStep
	}
	return &StepClock{step: step}
}

// Step returns the fixed step size in seconds.
func (c *StepClock) Step() float64 {
	return c.step
}

// Advance adds frameDT seconds (capped at MaxFrameDT, negatives ignored)
// and returns how many fixed steps are now due.
func (c *StepClock) Advance(frameDT float64) int {
	c.accum += ClampF(frameDT, 0, MaxFrameDT)
	n := 0
	for c.accum >= c.step && n < maxCatchUps {
		c.accum -= c.step
		n++
	}
	return n
}

// Alpha returns the fraction of a step accumulated but not yet simulated.
func (c *StepClock) Alpha() float64 {
	return c.accum / c.step
}

// Reset drops any accumulated time.
func (c *StepClock) Reset() {
	c.accum = 0
}
