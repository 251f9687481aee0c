package wizard

import (
	"unicode"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"github.com/mark3labs/hostwiz/internal/tui/theme"
)

// newNameInput builds the text field shown on the name prompt.
//
// The field only draws the name and its cursor. Editing goes through
// state.Wizard, because left arrow leaves the prompt and typing always
// appends at the end, neither of which textinput's own key map allows.
func newNameInput() textinput.Model {
	s := theme.Current().S()

	input := textinput.New()
	input.Prompt = ""
	input.SetStyles(textinput.Styles{
		Focused: textinput.StyleState{
			Text:   s.Input,
			Prompt: s.Prompt,
		},
		Blurred: textinput.StyleState{
			Text:   s.Input,
			Prompt: s.Prompt,
		},
		Cursor: textinput.CursorStyle{
			Color: s.Cursor.GetForeground(),
			Shape: tea.CursorBar,
			Blink: false, // a static cursor needs no blink messages
		},
	})
	input.Focus()
	return input
}

// syncInput mirrors the wizard's name buffer into the text field.
func (m *Model) syncInput() {
	m.input.SetValue(m.wiz.HostName())
	m.input.CursorEnd()
}

// appendText adds the printable runes of text to the host name.
// Returns the number of runes kept.
func (m *Model) appendText(text string) int {
	n := 0
	for _, r := range text {
		if unicode.IsPrint(r) {
			m.wiz.AppendChar(r)
			n++
		}
	}
	if n > 0 {
		m.syncInput()
	}
	return n
}
