package core

import "math"

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // W, Up arrow - steer up
	ActionDown           // S, Down arrow - steer down
	ActionLeft           // A, Left arrow - steer left, fewer hazards in menu
	ActionRight          // D, Right arrow - steer right, more hazards in menu
	ActionNitro          // Space, Shift - fire the boost
	ActionConfirm        // Enter - start a run / restart after game over
	ActionBack           // B, Escape - go back to menu
	ActionRestart        // R key - restart game after game over
	ActionQuit           // Q, Ctrl+C - exit game/session
	ActionPause          // P - pause/unpause game
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionNitro:
		return "Nitro"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	case ActionPause:
		return "Pause"
	default:
		return "Unknown"
	}
}

// InputFrame represents the input state for a single player during one simulation tick.
// It carries a continuous steering axis plus the discrete actions triggered this frame.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	// Using a map allows checking multiple actions without order dependency.
	Actions map[Action]bool

	// AxisX and AxisY are the raw steering inputs, each in [-1, 1].
	AxisX, AxisY float64
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Consume reports whether the action was triggered and clears it, so a
// single key press is seen by exactly one simulation step.
func (f *InputFrame) Consume(a Action) bool {
	if !f.Actions[a] {
		return false
	}
	delete(f.Actions, a)
	return true
}

// SetAxis stores the raw steering axis.
func (f *InputFrame) SetAxis(x, y float64) {
	f.AxisX = ClampF(x, -1, 1)
	f.AxisY = ClampF(y, -1, 1)
}

// Axis returns the steering axis clamped to the unit disk, so diagonals
// are no faster than straight lines.
func (f *InputFrame) Axis() (float64, float64) {
	x, y := f.AxisX, f.AxisY
	if l := math.Hypot(x, y); l > 1 {
		return x / l, y / l
	}
	return x, y
}

// Clear resets all actions for the next frame. The axis is kept.
func (f *InputFrame) Clear() {
	clear(f.Actions)
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	clone.AxisX, clone.AxisY = f.AxisX, f.AxisY
	return clone
}
