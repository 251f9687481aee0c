// Package summary renders the wizard's final selection as markdown.
package summary

import (
	"fmt"
	"strings"

	"charm.land/glamour/v2"
	"github.com/gosimple/slug"
	"github.com/mark3labs/hostwiz/internal/state"
)

// maxWidth caps word wrapping for readability.
const maxWidth = 120

// Hostname derives a DNS-safe hostname from a free-form host name.
// Returns "" when nothing usable is left.
func Hostname(name string) string {
	// slug keeps underscores, hostnames may not contain them
	return strings.ReplaceAll(slug.Make(name), "_", "-")
}

// Markdown describes sel as a short markdown document.
func Markdown(sel state.Selection) string {
	var b strings.Builder

	b.WriteString("# Host setup\n\n")
	fmt.Fprintf(&b, "- **Profile:** %s\n", escape(sel.Profile))
	fmt.Fprintf(&b, "- **Host:** %s\n", escape(sel.Host))

	if sel.NewHost {
		b.WriteString("- **New host:** yes\n")
		if hn := Hostname(sel.Host); hn != "" && sel.Host != state.UnnamedHostLabel {
			fmt.Fprintf(&b, "- **Hostname:** `%s`\n", hn)
		}
	}

	return b.String()
}

// inlineMarkup holds the characters that start inline markdown or HTML
// in the middle of a line.
const inlineMarkup = "\\`*_[]<>&~"

// escape backslash-escapes inline markup so user text renders verbatim.
func escape(text string) string {
	var b strings.Builder
	for _, r := range text {
		if strings.ContainsRune(inlineMarkup, r) {
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}

// Render renders markdown for the terminal using glamour.
// Falls back to the raw markdown if rendering fails.
func Render(content string, width int) string {
	if width <= 0 || width > maxWidth {
		width = maxWidth
	}

	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("dark"),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return content
	}

	rendered, err := r.Render(content)
	if err != nil {
		return content
	}

	// Remove trailing newline that glamour adds
	return strings.TrimSuffix(rendered, "\n")
}
