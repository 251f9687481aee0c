// Package testfixtures holds shared helpers for TUI tests.
package testfixtures

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/colorprofile"
	"github.com/charmbracelet/x/ansi"
)

// Initialize test environment
func init() {
	// Ascii profile keeps rendered output free of color sequences
	lipgloss.Writer.Profile = colorprofile.Ascii
}

// Canonical terminal size for all tests
const (
	TestTermWidth  = 120
	TestTermHeight = 40
)

// Sample data shared by wizard tests.
var (
	Profiles = []string{"desktop (nix-dots)", "server (nixos-server)"}
	Hosts    = []string{"carbon", "helium"}
)

// Key returns a key press for a special key such as tea.KeyEnter.
func Key(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

// Rune returns a key press for a printable character.
func Rune(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

// CtrlC returns a ctrl+c key press.
func CtrlC() tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl}
}

// Type returns one key press per rune of s.
func Type(s string) []tea.KeyPressMsg {
	msgs := make([]tea.KeyPressMsg, 0, len(s))
	for _, r := range s {
		msgs = append(msgs, Rune(r))
	}
	return msgs
}

// Plain strips styling so assertions can match on text.
func Plain(s string) string {
	return ansi.Strip(s)
}
