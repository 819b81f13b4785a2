package mql

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// DefaultANSIStyles returns the fallback terminal styles used when the
// caller does not supply a palette.
func DefaultANSIStyles() map[Kind]lipgloss.Style {
	return map[Kind]lipgloss.Style{
		KindString:  lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
		KindComment: lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Italic(true),
		KindKeyword: lipgloss.NewStyle().Foreground(lipgloss.Color("5")).Bold(true),
		KindAPI:     lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
	}
}

// ToANSI renders the code with terminal colors, one style per segment
// kind. Kinds absent from styleFor (KindText included) render unstyled.
// Multi-line segments are styled line by line because a lipgloss style
// does not survive a newline inside a single Render call. The visible
// character sequence is exactly the input.
func ToANSI(code string, styleFor map[Kind]lipgloss.Style) string {
	if styleFor == nil {
		styleFor = DefaultANSIStyles()
	}

	var b strings.Builder
	for _, seg := range Scan(code) {
		style, styled := styleFor[seg.Kind]

		lines := strings.Split(seg.Text, "\n")
		for i, line := range lines {
			if i > 0 {
				b.WriteString("\n")
			}
			if line == "" {
				continue
			}
			if styled {
				b.WriteString(style.Render(line))
			} else {
				b.WriteString(line)
			}
		}
	}
	return b.String()
}
