package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/satbox/internal/core"
)

// KeyMap declares the sandbox key bindings. Bindings carry their own help
// text so the HUD help line stays in sync with the actual keys.
type KeyMap struct {
	Left      key.Binding
	Right     key.Binding
	Up        key.Binding
	Down      key.Binding
	RotateCW  key.Binding
	RotateCCW key.Binding
	Cycle     key.Binding
	Resolve   key.Binding
	Pause     key.Binding
	Restart   key.Binding
	Quit      key.Binding
}

// DefaultKeyMap returns the standard sandbox bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left: key.NewBinding(
			key.WithKeys("a", "left"),
			key.WithHelp("a/←", "move left"),
		),
		Right: key.NewBinding(
			key.WithKeys("d", "right"),
			key.WithHelp("d/→", "move right"),
		),
		Up: key.NewBinding(
			key.WithKeys("w", "up"),
			key.WithHelp("w/↑", "move up"),
		),
		Down: key.NewBinding(
			key.WithKeys("s", "down"),
			key.WithHelp("s/↓", "move down"),
		),
		RotateCW: key.NewBinding(
			key.WithKeys("]"),
			key.WithHelp("]", "rotate cw"),
		),
		RotateCCW: key.NewBinding(
			key.WithKeys("["),
			key.WithHelp("[", "rotate ccw"),
		),
		Cycle: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next body"),
		),
		Resolve: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "toggle resolve"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "pause"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap for the single-line HUD help.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Up, k.Down, k.RotateCW, k.Cycle, k.Resolve, k.Pause, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Up, k.Down},
		{k.RotateCW, k.RotateCCW, k.Cycle},
		{k.Resolve, k.Pause, k.Restart, k.Quit},
	}
}

// MapKey translates a key message to a sandbox action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (k KeyMap) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	switch {
	case key.Matches(msg, k.Quit):
		return core.ActionQuit, true
	case key.Matches(msg, k.Left):
		return core.ActionMoveLeft, false
	case key.Matches(msg, k.Right):
		return core.ActionMoveRight, false
	case key.Matches(msg, k.Up):
		return core.ActionMoveUp, false
	case key.Matches(msg, k.Down):
		return core.ActionMoveDown, false
	case key.Matches(msg, k.RotateCW):
		return core.ActionRotateCW, false
	case key.Matches(msg, k.RotateCCW):
		return core.ActionRotateCCW, false
	case key.Matches(msg, k.Cycle):
		return core.ActionCycle, false
	case key.Matches(msg, k.Resolve):
		return core.ActionResolve, false
	case key.Matches(msg, k.Pause):
		return core.ActionPause, false
	case key.Matches(msg, k.Restart):
		return core.ActionRestart, false
	}
	return core.ActionNone, false
}

// MapKeyToFrame updates an input frame based on a key message.
// Returns true if the key was a quit request.
func (k KeyMap) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) bool {
	action, isQuit := k.MapKey(msg)
	if action != core.ActionNone {
		frame.Set(action)
	}
	return isQuit
}
