// Package wizard runs the host setup wizard as a full-screen bubbletea
// program on top of the step machine in internal/state.
package wizard

import (
	"fmt"
	"time"

	"charm.land/bubbles/v2/help"
	"charm.land/bubbles/v2/key"
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"github.com/mark3labs/hostwiz/internal/logger"
	"github.com/mark3labs/hostwiz/internal/state"
	"github.com/mark3labs/hostwiz/internal/tui/theme"
)

// PollInterval bounds how long the loop waits for input before redrawing.
const PollInterval = 100 * time.Millisecond

// pollMsg wakes the loop when no input arrived within PollInterval.
type pollMsg time.Time

// Result is what the wizard leaves behind once the user quits.
type Result struct {
	Selection state.Selection
	Step      state.Step // step the user quit from
	Completed bool       // true when the user quit from the summary
}

// Model is the bubbletea model driving a state.Wizard.
type Model struct {
	wiz      *state.Wizard
	keys     KeyMap
	help     help.Model
	input    textinput.Model // draws the host name on the prompt
	width    int // Terminal width
	height   int // Terminal height
	quitting bool
}

// NewModel wraps w in a bubbletea model.
func NewModel(w *state.Wizard) *Model {
	s := theme.Current().S()

	h := help.New()
	h.ShortSeparator = "  "
	h.Styles.ShortKey = s.HelpKey
	h.Styles.ShortDesc = s.HelpDesc
	h.Styles.ShortSeparator = s.HelpSeparator

	return &Model{
		wiz:   w,
		keys:  DefaultKeyMap(),
		help:  h,
		input: newNameInput(),
	}
}

// Run is the entry point for the wizard. It owns the terminal for the
// duration of the loop; bubbletea restores raw mode, the main screen and
// the cursor on every exit path before Run returns.
func Run(w *state.Wizard, opts ...tea.ProgramOption) (*Result, error) {
	p := tea.NewProgram(NewModel(w), opts...)

	finalModel, err := p.Run()
	if err != nil {
		return nil, fmt.Errorf("wizard failed: %w", err)
	}

	m, ok := finalModel.(*Model)
	if !ok {
		return nil, fmt.Errorf("unexpected model type %T", finalModel)
	}

	return m.Result(), nil
}

// Result reports the current selection.
func (m *Model) Result() *Result {
	return &Result{
		Selection: m.wiz.Selection(),
		Step:      m.wiz.Step(),
		Completed: m.wiz.Step() == state.Done,
	}
}

// Quitting reports whether the quit key has been pressed.
func (m *Model) Quitting() bool {
	return m.quitting
}

// Init starts the poll timer.
func (m *Model) Init() tea.Cmd {
	return poll()
}

func poll() tea.Cmd {
	return tea.Tick(PollInterval, func(t time.Time) tea.Msg {
		return pollMsg(t)
	})
}

// Update handles messages for the wizard.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case pollMsg:
		if m.quitting {
			return m, nil
		}
		// Nothing changes between frames yet; rearming keeps the loop
		// redrawing every PollInterval.
		return m, poll()

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyPressMsg:
		return m.handleKey(msg)

	case tea.PasteMsg:
		return m.handlePaste(msg)
	}

	return m, nil
}

// handleKey dispatches a key press through the current step's table.
func (m *Model) handleKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	if m.quitting {
		return m, nil
	}

	// Quit wins over text entry, so q never reaches the name buffer.
	if key.Matches(msg, m.keys.Quit) {
		m.quitting = true
		logger.Info("Quit from %s", m.wiz.Step())
		return m, tea.Quit
	}

	before := m.wiz.Step()

	switch before {
	case state.ProfileSelection, state.HostConfig:
		switch {
		case key.Matches(msg, m.keys.Up):
			m.wiz.MoveUp()
		case key.Matches(msg, m.keys.Down):
			m.wiz.MoveDown()
		case key.Matches(msg, m.keys.Next):
			m.wiz.Advance()
		case key.Matches(msg, m.keys.Prev):
			m.wiz.Retreat()
		}

	case state.HostNamePrompt:
		switch {
		case key.Matches(msg, m.keys.Submit):
			m.wiz.Advance()
		case key.Matches(msg, m.keys.Erase):
			m.wiz.Backspace()
			m.syncInput()
		case key.Matches(msg, m.keys.Cancel):
			m.wiz.Retreat()
		default:
			m.typeText(msg)
		}

	case state.Done:
		if key.Matches(msg, m.keys.Prev) {
			m.wiz.Retreat()
		}
	}

	if after := m.wiz.Step(); after != before {
		logger.Debug("Step %s -> %s (new host: %t)", before, after, m.wiz.IsNewHost())
		if after == state.HostNamePrompt {
			m.syncInput()
		}
	}

	return m, nil
}

// handlePaste appends pasted text to the host name. Pastes on other steps
// are dropped.
func (m *Model) handlePaste(msg tea.PasteMsg) (tea.Model, tea.Cmd) {
	if m.quitting || m.wiz.Step() != state.HostNamePrompt {
		return m, nil
	}

	if n := m.appendText(msg.Content); n > 0 {
		logger.Debug("Pasted %d chars into host name", n)
	}
	return m, nil
}

// typeText appends the printable characters carried by msg to the name.
func (m *Model) typeText(msg tea.KeyPressMsg) {
	if msg.Text == "" || msg.Mod&(tea.ModCtrl|tea.ModAlt) != 0 {
		return
	}
	m.appendText(msg.Text)
}
