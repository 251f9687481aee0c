package wizard

import (
	"charm.land/bubbles/v2/key"
	"github.com/mark3labs/hostwiz/internal/state"
)

// KeyMap holds every binding the wizard reacts to. Which of them are live
// depends on the step; see ForStep.
type KeyMap struct {
	Quit key.Binding

	// List steps
	Up   key.Binding
	Down key.Binding
	Move key.Binding // help only, covers Up and Down
	Next key.Binding
	Prev key.Binding

	// Name prompt. Printable characters have no binding, TypeHint only
	// labels them in the footer.
	TypeHint key.Help
	Erase    key.Binding
	Submit   key.Binding
	Cancel   key.Binding
}

// DefaultKeyMap returns the wizard's bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Up: key.NewBinding(
			key.WithKeys("up"),
			key.WithHelp("↑", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down"),
			key.WithHelp("↓", "down"),
		),
		Move: key.NewBinding(
			key.WithKeys("up", "down"),
			key.WithHelp("↑/↓", "move"),
		),
		Next: key.NewBinding(
			key.WithKeys("right", "enter"),
			key.WithHelp("→/enter", "next"),
		),
		Prev: key.NewBinding(
			key.WithKeys("left"),
			key.WithHelp("←", "prev"),
		),
		TypeHint: key.Help{Key: "a-z", Desc: "type"},
		Erase: key.NewBinding(
			key.WithKeys("backspace"),
			key.WithHelp("backspace", "erase"),
		),
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "next"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc", "left"),
			key.WithHelp("esc/←", "prev"),
		),
	}
}

// ForStep returns the bindings shown in the footer for step.
func (k KeyMap) ForStep(step state.Step) []key.Binding {
	switch step {
	case state.ProfileSelection, state.HostConfig:
		return []key.Binding{k.Move, k.Next, k.Prev, k.Quit}
	case state.HostNamePrompt:
		return []key.Binding{k.Erase, k.Submit, k.Cancel, k.Quit}
	case state.Done:
		return []key.Binding{k.Prev, k.Quit}
	default:
		return []key.Binding{k.Quit}
	}
}
