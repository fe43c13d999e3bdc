package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/roadrage/internal/core"
)

// GameKeyMap defines the key bindings used while a game is running.
type GameKeyMap struct {
	Up         key.Binding
	Down       key.Binding
	Left       key.Binding
	Right      key.Binding
	Stop       key.Binding
	Nitro      key.Binding
	Confirm    key.Binding
	Pause      key.Binding
	Restart    key.Binding
	Dump       key.Binding
	Screenshot key.Binding
	Help       key.Binding
	Quit       key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k GameKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Stop, k.Nitro, k.Pause, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k GameKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right, k.Stop},
		{k.Nitro, k.Confirm, k.Pause, k.Restart},
		{k.Dump, k.Screenshot, k.Help, k.Quit},
	}
}

// DefaultGameKeyMap returns default key bindings.
func DefaultGameKeyMap() GameKeyMap {
	return GameKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "w", "k"),
			key.WithHelp("↑↓←→/wasd", "steer"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "s", "j"),
			key.WithHelp("↓/s", "steer down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "a", "h"),
			key.WithHelp("←/a", "steer left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d", "l"),
			key.WithHelp("→/d", "steer right"),
		),
		Stop: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "stop"),
		),
		Nitro: key.NewBinding(
			key.WithKeys(" ", "space", "n"),
			key.WithHelp("space", "nitro"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "start"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p", "esc"),
			key.WithHelp("p", "pause"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart"),
		),
		Dump: key.NewBinding(
			key.WithKeys("ctrl+d"),
			key.WithHelp("ctrl+d", "copy debug dump"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// Command is a platform-level request that never reaches the game.
type Command int

const (
	CommandNone Command = iota
	CommandQuit
	CommandDump
	CommandScreenshot
	CommandHelp
)

// KeyResult is what a single key press means.
type KeyResult struct {
	// Actions are the discrete game actions for the next step.
	Actions []core.Action

	// Steer is set when the key changes the latched heading.
	Steer        bool
	AxisX, AxisY float64

	Command Command
}

// KeyMapper translates Bubble Tea key messages to game input.
// This centralizes key bindings and makes them testable.
type KeyMapper struct {
	Keys GameKeyMap
}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{Keys: DefaultGameKeyMap()}
}

// MapKey resolves a key press.
//
// Terminals report key presses but not releases, so direction keys latch a
// heading that holds until another direction or the stop key. Direction
// keys also emit their discrete action for menu navigation. Space serves as
// both nitro and confirm; the game only reads the one that fits its mode.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) KeyResult {
	k := km.Keys
	switch {
	case key.Matches(msg, k.Quit):
		return KeyResult{Command: CommandQuit}
	case key.Matches(msg, k.Dump):
		return KeyResult{Command: CommandDump}
	case key.Matches(msg, k.Screenshot):
		return KeyResult{Command: CommandScreenshot}
	case key.Matches(msg, k.Help):
		return KeyResult{Command: CommandHelp}

	case key.Matches(msg, k.Up):
		return steerResult(core.ActionUp, 0, -1)
	case key.Matches(msg, k.Down):
		return steerResult(core.ActionDown, 0, 1)
	case key.Matches(msg, k.Left):
		return steerResult(core.ActionLeft, -1, 0)
	case key.Matches(msg, k.Right):
		return steerResult(core.ActionRight, 1, 0)
	case key.Matches(msg, k.Stop):
		return KeyResult{Steer: true}

	case key.Matches(msg, k.Nitro):
		return KeyResult{Actions: []core.Action{core.ActionNitro, core.ActionConfirm}}
	case key.Matches(msg, k.Confirm):
		return KeyResult{Actions: []core.Action{core.ActionConfirm}}
	case key.Matches(msg, k.Pause):
		return KeyResult{Actions: []core.Action{core.ActionPause}}
	case key.Matches(msg, k.Restart):
		return KeyResult{Actions: []core.Action{core.ActionRestart}}
	}
	return KeyResult{}
}

func steerResult(a core.Action, x, y float64) KeyResult {
	return KeyResult{
		Actions: []core.Action{a},
		Steer:   true,
		AxisX:   x,
		AxisY:   y,
	}
}

// Apply folds the key result into frame.
func (r KeyResult) Apply(frame *core.InputFrame) {
	for _, a := range r.Actions {
		frame.Set(a)
	}
	if r.Steer {
		frame.SetAxis(r.AxisX, r.AxisY)
	}
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	}
	return MenuActionNone
}
