package wizard

import (
	"strings"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	uv "github.com/charmbracelet/ultraviolet"
	"github.com/mark3labs/hostwiz/internal/state"
	"github.com/mark3labs/hostwiz/internal/tui/theme"
)

// Frame geometry. Title and footer keep their height, the body takes the rest.
const (
	frameMargin   = 4
	titleHeight   = 3
	footerHeight  = 3
	minBodyHeight = 3
	minWidth      = 40

	// Used until the first WindowSizeMsg arrives.
	defaultWidth  = 80
	defaultHeight = 24
)

const namePrompt = "Enter new host name (type and press Enter):"

// View renders the wizard UI.
func (m *Model) View() tea.View {
	var view tea.View
	view.AltScreen = true

	width, height := m.size()
	canvas := uv.NewScreenBuffer(width, height)
	uv.NewStyledString(m.render()).Draw(canvas, uv.Rectangle{
		Min: uv.Position{X: 0, Y: 0},
		Max: uv.Position{X: width, Y: height},
	})

	view.Content = lipgloss.NewLayer(canvas.Render())
	return view
}

func (m *Model) size() (int, int) {
	width, height := m.width, m.height
	if width <= 0 {
		width = defaultWidth
	}
	if height <= 0 {
		height = defaultHeight
	}
	return width, height
}

// render lays out title, body and footer inside the frame margin.
func (m *Model) render() string {
	width, height := m.size()

	innerWidth := width - 2*frameMargin
	if innerWidth < minWidth {
		innerWidth = minWidth
	}
	bodyHeight := height - 2*frameMargin - titleHeight - footerHeight
	if bodyHeight < minBodyHeight {
		bodyHeight = minBodyHeight
	}

	frame := lipgloss.JoinVertical(lipgloss.Left,
		m.renderTitle(innerWidth),
		m.renderBody(innerWidth, bodyHeight),
		m.renderFooter(innerWidth),
	)

	return lipgloss.NewStyle().Margin(frameMargin).Render(frame)
}

func (m *Model) renderTitle(width int) string {
	s := theme.Current().S()
	return lipgloss.Place(width, titleHeight,
		lipgloss.Center, lipgloss.Center,
		s.Title.Render(m.wiz.Step().Title()),
	)
}

func (m *Model) renderBody(width, height int) string {
	var title, content string

	switch m.wiz.Step() {
	case state.ProfileSelection:
		title = "Select Profile"
		content = m.renderList(m.wiz.Profiles(), m.wiz.ProfileIndex(), false)
	case state.HostConfig:
		title = "Select Host"
		content = m.renderList(m.wiz.Hosts(), m.wiz.HostIndex(), true)
	case state.HostNamePrompt:
		title = "New Host"
		content = m.renderPrompt()
	case state.Done:
		title = "Summary"
		content = m.renderSummary()
	}

	s := theme.Current().S()
	return s.Block.
		Width(width).
		Height(height).
		Render(s.BlockTitle.Render(title) + "\n" + content)
}

// renderList draws one row per choice with the highlighted row marked "> ".
func (m *Model) renderList(items []string, selected int, markSentinel bool) string {
	s := theme.Current().S()

	rows := make([]string, 0, len(items))
	for i, item := range items {
		switch {
		case i == selected:
			rows = append(rows, s.ListItemSelected.Render("> "+item))
		case markSentinel && m.wiz.IsSentinel(i):
			rows = append(rows, "  "+s.ListItemSentinel.Render(item))
		default:
			rows = append(rows, s.ListItem.Render("  "+item))
		}
	}
	return strings.Join(rows, "\n")
}

func (m *Model) renderPrompt() string {
	s := theme.Current().S()
	return s.Prompt.Render(namePrompt) + "\n" + m.input.View()
}

func (m *Model) renderSummary() string {
	s := theme.Current().S()

	host := m.wiz.SummaryHostLabel()
	hostStyle := s.SummaryValue
	if host == state.UnnamedHostLabel {
		hostStyle = s.Placeholder
	}

	return s.SummaryKey.Render("Profile:") + " " + s.SummaryValue.Render(m.wiz.SummaryProfileLabel()) + "\n" +
		s.SummaryKey.Render("Host:") + " " + hostStyle.Render(host)
}

func (m *Model) renderFooter(width int) string {
	step := m.wiz.Step()
	footer := m.help.ShortHelpView(m.keys.ForStep(step))
	if step == state.HostNamePrompt {
		footer = m.renderHint(m.keys.TypeHint) + m.help.Styles.ShortSeparator.Render(m.help.ShortSeparator) + footer
	}

	return lipgloss.Place(width, footerHeight,
		lipgloss.Center, lipgloss.Center,
		footer,
	)
}

// renderHint draws a footer entry that has no binding behind it.
func (m *Model) renderHint(h key.Help) string {
	return m.help.Styles.ShortKey.Render(h.Key) + " " + m.help.Styles.ShortDesc.Render(h.Desc)
}
