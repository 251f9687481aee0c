package theme

import (
	"sync"

	"charm.land/lipgloss/v2"
)

// Theme defines the color palette for the TUI.
type Theme struct {
	Name   string
	IsDark bool

	// Semantic colors
	Primary   string // lipgloss.Color is a string type
	Secondary string
	Accent    string

	// Background hierarchy (dark→light)
	BgBase     string
	BgSurface0 string

	// Foreground hierarchy (dim→bright)
	FgMuted  string
	FgSubtle string
	FgBase   string

	// Status colors
	Success string
	Warning string
	Error   string

	// Lazy-built styles
	styles     *Styles
	stylesOnce sync.Once
}

var (
	current     *Theme
	currentOnce sync.Once
)

// Current returns the theme shared by every view.
func Current() *Theme {
	currentOnce.Do(func() {
		current = NewCatppuccinMocha()
	})
	return current
}

// S returns the pre-built styles for this theme.
// Styles are lazily initialized on first call.
func (t *Theme) S() *Styles {
	t.stylesOnce.Do(func() {
		t.styles = t.buildStyles()
	})
	return t.styles
}

// buildStyles constructs the pre-built styles from theme colors.
func (t *Theme) buildStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Warning)).
			Bold(true).
			Align(lipgloss.Center),
		Block: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(t.Secondary)).
			Padding(0, 1),
		BlockTitle: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Primary)).
			Bold(true),
		ListItem: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.FgBase)),
		ListItemSelected: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Success)).
			Bold(true).
			Reverse(true),
		ListItemSentinel: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.FgSubtle)).
			Italic(true),
		Prompt: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.FgSubtle)),
		Input: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.FgBase)).
			Bold(true),
		Cursor: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Primary)),
		SummaryKey: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Secondary)).
			Bold(true),
		SummaryValue: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.FgBase)),
		Placeholder: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.FgMuted)).
			Italic(true),
		HelpKey: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Accent)),
		HelpDesc: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.FgSubtle)),
		HelpSeparator: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.FgMuted)),
	}
}
