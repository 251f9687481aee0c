package theme

import "charm.land/lipgloss/v2"

// Styles contains all pre-built lipgloss styles for the TUI.
type Styles struct {
	// Frame
	Title      lipgloss.Style
	Block      lipgloss.Style
	BlockTitle lipgloss.Style

	// Lists
	ListItem         lipgloss.Style
	ListItemSelected lipgloss.Style
	ListItemSentinel lipgloss.Style

	// Text entry
	Prompt lipgloss.Style
	Input  lipgloss.Style
	Cursor lipgloss.Style

	// Summary
	SummaryKey   lipgloss.Style
	SummaryValue lipgloss.Style
	Placeholder  lipgloss.Style

	// Footer
	HelpKey       lipgloss.Style
	HelpDesc      lipgloss.Style
	HelpSeparator lipgloss.Style
}
